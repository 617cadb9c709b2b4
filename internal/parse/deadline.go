package parse

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate marks due-date fragments with impossible calendar values
// (month 13, day 32, hour 25...). Callers keep the item and drop the
// deadline instead of aborting the batch.
var ErrInvalidDate = errors.New("invalid due date")

// DateParts is a raw due date as the source API reports it.
type DateParts struct {
	Year  int
	Month int
	Day   int
}

// TimeParts is an optional time of day attached to a due date.
type TimeParts struct {
	Hours   int
	Minutes int
}

// Deadline composes raw date/time fragments into a single UTC instant.
// No date means no deadline (nil, nil). A date without a time defaults to
// 23:59 — many source items carry only a due date. The instant is taken as
// UTC; converting for display is the presentation layer's problem.
func Deadline(date *DateParts, tod *TimeParts) (*time.Time, error) {
	if date == nil {
		return nil, nil
	}

	hour, minute := 23, 59
	if tod != nil {
		hour, minute = tod.Hours, tod.Minutes
	}

	t := time.Date(date.Year, time.Month(date.Month), date.Day, hour, minute, 0, 0, time.UTC)

	// time.Date silently normalizes out-of-range components (month 13 rolls
	// into January); round-trip the fields to catch impossible values.
	if t.Year() != date.Year || t.Month() != time.Month(date.Month) || t.Day() != date.Day ||
		t.Hour() != hour || t.Minute() != minute {
		return nil, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d", ErrInvalidDate,
			date.Year, date.Month, date.Day, hour, minute)
	}

	return &t, nil
}
