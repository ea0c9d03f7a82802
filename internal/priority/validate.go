package priority

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	dateLength    = 5
	dateSeparator = '/'
)

// ValidateTitle accepts any title with a nonzero length.
func ValidateTitle(title string) error {
	if len(title) == 0 {
		return ErrEmptyTitle
	}
	return nil
}

// ValidateDate accepts exactly MM/DD with month 1-12 and day 1-31. Month
// lengths are not checked, so 02/31 is accepted.
func ValidateDate(date string) error {
	_, _, err := ParseDate(date)
	return err
}

// ParseDate splits a validated MM/DD date into month and day.
func ParseDate(date string) (month, day int, err error) {
	if len(date) != dateLength || date[2] != dateSeparator {
		return 0, 0, ErrInvalidDate
	}
	month, ok := parseDigits(date[:2])
	if !ok || month < 1 || month > 12 {
		return 0, 0, ErrInvalidDate
	}
	day, ok = parseDigits(date[3:5])
	if !ok || day < 1 || day > 31 {
		return 0, 0, ErrInvalidDate
	}
	return month, day, nil
}

// ValidateDuration accepts the four estimate shapes "<d>h", "<dd>h", "<dd>m",
// "<d>h <dd>m" and "<dd>h <dd>m" with every number above zero. A lone
// single-digit minute ("5m") is not one of them.
func ValidateDuration(value string) error {
	_, err := ParseDuration(value)
	return err
}

// Duration is a parsed time estimate.
type Duration struct {
	Hours   int
	Minutes int
}

// ParseDuration parses an estimate accepted by ValidateDuration.
func ParseDuration(value string) (Duration, error) {
	var hours, minutes string

	switch len(value) {
	case 2:
		if value[1] != 'h' {
			return Duration{}, ErrInvalidDuration
		}
		hours = value[:1]
	case 3:
		switch value[2] {
		case 'h':
			hours = value[:2]
		case 'm':
			minutes = value[:2]
		default:
			return Duration{}, ErrInvalidDuration
		}
	case 6:
		if value[1] != 'h' || value[2] != ' ' || value[5] != 'm' {
			return Duration{}, ErrInvalidDuration
		}
		hours, minutes = value[:1], value[3:5]
	case 7:
		if value[2] != 'h' || value[3] != ' ' || value[6] != 'm' {
			return Duration{}, ErrInvalidDuration
		}
		hours, minutes = value[:2], value[4:6]
	default:
		return Duration{}, ErrInvalidDuration
	}

	var d Duration
	if hours != "" {
		n, ok := parseDigits(hours)
		if !ok || n <= 0 {
			return Duration{}, ErrInvalidDuration
		}
		d.Hours = n
	}
	if minutes != "" {
		n, ok := parseDigits(minutes)
		if !ok || n <= 0 {
			return Duration{}, ErrInvalidDuration
		}
		d.Minutes = n
	}
	return d, nil
}

// Total converts the estimate to a time.Duration.
func (d Duration) Total() time.Duration {
	return time.Duration(d.Hours)*time.Hour + time.Duration(d.Minutes)*time.Minute
}

// String renders the estimate in the same shape a user types it.
func (d Duration) String() string {
	switch {
	case d.Hours > 0 && d.Minutes > 0:
		return fmt.Sprintf("%dh %02dm", d.Hours, d.Minutes)
	case d.Minutes > 0:
		return fmt.Sprintf("%dm", d.Minutes)
	default:
		return fmt.Sprintf("%dh", d.Hours)
	}
}

func parseDigits(segment string) (int, bool) {
	if segment == "" {
		return 0, false
	}
	for i := 0; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(segment)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Form holds the raw input for a new entry along with per-field outcomes.
type Form struct {
	Title    string
	Date     string
	Duration string

	Errors FieldErrors
}

// FieldErrors records the validation outcome of each form field. A nil
// field means the field passed.
type FieldErrors struct {
	Title    error
	Date     error
	Duration error
}

// OK reports whether every field passed.
func (e FieldErrors) OK() bool {
	return e.Title == nil && e.Date == nil && e.Duration == nil
}

// Err joins the failing fields into one error, or nil when all passed.
func (e FieldErrors) Err() error {
	return errors.Join(e.Title, e.Date, e.Duration)
}

// Validate runs the title, date and duration validators in that order,
// always all three. Invalid fields are cleared so they can be re-entered.
func (f *Form) Validate() bool {
	f.Errors = FieldErrors{
		Title:    ValidateTitle(f.Title),
		Date:     ValidateDate(f.Date),
		Duration: ValidateDuration(f.Duration),
	}
	if f.Errors.Title != nil {
		f.Title = ""
	}
	if f.Errors.Date != nil {
		f.Date = ""
	}
	if f.Errors.Duration != nil {
		f.Duration = ""
	}
	return f.Errors.OK()
}

// Entry builds the entry described by the form. Call it after Validate.
func (f *Form) Entry(tag Tag) Entry {
	return Entry{
		Title:    f.Title,
		Date:     f.Date,
		Duration: f.Duration,
		Tag:      tag.Normalize(),
	}
}

// Reset empties the form after a successful submission.
func (f *Form) Reset() {
	*f = Form{}
}
