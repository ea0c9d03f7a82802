package priority

import "errors"

// ErrEmptyTitle is reported when an entry is submitted without a title.
var ErrEmptyTitle = errors.New("title is required")

// ErrInvalidDate is reported when a date is not a valid MM/DD pair.
var ErrInvalidDate = errors.New("date must be MM/DD")

// ErrInvalidDuration is reported when an estimate is not one of the accepted shapes.
var ErrInvalidDuration = errors.New(`estimate must look like "5h", "45m", "10h", "1h 30m" or "12h 30m"`)

// ErrInvalidIndex indicates the caller referenced an entry position outside the list.
var ErrInvalidIndex = errors.New("entry index out of range")

// ErrUnknownTag is returned by ParseTag for names outside the palette.
var ErrUnknownTag = errors.New("unknown tag")
