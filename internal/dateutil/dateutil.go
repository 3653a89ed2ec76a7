// Package dateutil provides calendar-day parsing and month arithmetic.
package dateutil

import (
	"errors"
	"time"
)

// DayFormat is the canonical calendar-day layout.
const DayFormat = "2006-01-02"

// Validation errors.
var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

// ParseDay parses a calendar day in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDay(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// NormalizeDay parses and re-formats a day string into canonical form.
func NormalizeDay(s string) (string, error) {
	t, err := ParseDay(s)
	if err != nil {
		return "", err
	}
	return FormatDay(t), nil
}

// FormatDay formats a time as a YYYY-MM-DD day string.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// Today returns the current day as a YYYY-MM-DD string.
func Today() string {
	return FormatDay(time.Now())
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FirstOfMonth returns midnight on the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// LastOfMonth returns midnight on the last day of t's month.
func LastOfMonth(t time.Time) time.Time {
	return FirstOfMonth(t).AddDate(0, 1, -1)
}

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	return LastOfMonth(t).Day()
}

// MonthLabel formats t's month for display, e.g. "June 2024".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// StartOffset returns the number of leading blank cells in a month grid
// whose first column is weekStart.
func StartOffset(month time.Time, weekStart time.Weekday) int {
	first := FirstOfMonth(month)
	offset := int(first.Weekday()) - int(weekStart)
	if offset < 0 {
		offset += 7
	}
	return offset
}

// DisplayDay formats a day string for humans, e.g. "Monday, June 3, 2024".
// Unparseable input is returned as is.
func DisplayDay(s string) string {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return s
	}
	return t.Format("Monday, January 2, 2006")
}
