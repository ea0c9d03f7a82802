package priority

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// SortByDate orders entries in place by ascending MMDD. Entries sharing a
// date keep their relative order.
func SortByDate(entries []Entry) {
	slices.SortStableFunc(entries, CompareByDate)
}

// CompareByDate compares two entries by the integer formed from their date
// with the separator removed, so "01/20" compares as 120. Dates that do not
// form an integer sort after every date that does.
func CompareByDate(a, b Entry) int {
	left, leftOK := dateKey(a.Date)
	right, rightOK := dateKey(b.Date)
	switch {
	case leftOK && rightOK:
		return cmp.Compare(left, right)
	case leftOK:
		return -1
	case rightOK:
		return 1
	default:
		return 0
	}
}

func dateKey(date string) (int, bool) {
	n, err := strconv.Atoi(strings.Replace(date, "/", "", 1))
	if err != nil {
		return 0, false
	}
	return n, true
}

// FilterByTag returns the entries carrying tag, in their original order.
func FilterByTag(entries []Entry, tag Tag) []Entry {
	tag = tag.Normalize()
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Tag.Normalize() == tag {
			out = append(out, entry)
		}
	}
	return out
}

// TotalEstimate sums the estimates of entries. Entries whose estimate does
// not parse are skipped.
func TotalEstimate(entries []Entry) Duration {
	var total Duration
	for _, entry := range entries {
		d, err := ParseDuration(entry.Duration)
		if err != nil {
			continue
		}
		total.Hours += d.Hours
		total.Minutes += d.Minutes
	}
	total.Hours += total.Minutes / 60
	total.Minutes %= 60
	return total
}
