// Package dateutil provides calendar-date parsing and arithmetic utilities.
package dateutil

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidDateFormat is returned for date strings not in YYYY-MM-DD form.
var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

// Layout is the wire format for calendar dates. All dates cross package
// boundaries (database, update patches, CLI flags) as strings in this format.
const Layout = "2006-01-02"

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseOptional parses a date string in YYYY-MM-DD format.
// An empty string is not an error; it yields nil (no date).
func ParseOptional(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return &t, nil
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(Layout)
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Sunday on or before t, truncated to midnight.
func StartOfWeek(t time.Time) time.Time {
	t = TruncateToDay(t)
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// DaysBetween returns the number of calendar days from a to b.
// Both arguments are truncated to midnight first; the result is negative
// when b is before a. Rounding absorbs DST-shortened or -lengthened days.
func DaysBetween(a, b time.Time) int {
	a = TruncateToDay(a)
	b = TruncateToDay(b)
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
