// Package event defines the core domain types for almanac.
package event

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jvaldivia/almanac/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrInvalidRange      = errors.New("end time must be after start time")
	ErrMissingDate       = errors.New("date is required")
)

// Domain errors.
var ErrNotFound = errors.New("event not found")

// FieldError describes a single invalid draft field.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// ValidationErrors aggregates every invalid field of a draft. Validation
// never stops at the first failure, so callers can render each entry next
// to its form field.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

// ByField returns the reason recorded for the given field.
func (e ValidationErrors) ByField(field string) (string, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Reason, true
		}
	}
	return "", false
}

// Event is a single timed entry on one calendar day. Events are immutable
// value snapshots; edits replace the whole record through the Repository.
type Event struct {
	ID          string
	Date        string // "YYYY-MM-DD"
	StartTime   string // "HH:MM"
	EndTime     string // "HH:MM"
	Title       string
	Description string
	Location    string
	Color       string // optional display tag; empty means palette-assigned
	CreatedAt   time.Time
}

// Duration returns the event length in minutes.
func (e Event) Duration() int {
	d, err := Duration(e.StartTime, e.EndTime)
	if err != nil {
		return 0
	}
	return d
}

// TimeRange formats the event's range for display, e.g. "9:00 AM - 10:30 AM".
func (e Event) TimeRange() string {
	return FormatDisplay(e.StartTime) + " - " + FormatDisplay(e.EndTime)
}

// Draft is a raw, caller-supplied payload for create and edit operations.
// EndTime and DurationMinutes are interchangeable: when EndTime is empty
// and DurationMinutes is positive, the end time is derived from the start.
type Draft struct {
	Date            string
	Title           string
	StartTime       string
	EndTime         string
	DurationMinutes int
	Description     string
	Location        string
	Color           string
}

// ValidateDraft checks a draft and returns it with title, date, and times
// normalized. All violations are collected and reported together; the
// title and time-range checks are independent, so a draft can fail both.
func ValidateDraft(d Draft) (Draft, ValidationErrors) {
	var errs ValidationErrors

	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		errs = append(errs, FieldError{Field: "title", Reason: ErrEmptyTitle.Error()})
	}

	if d.Date != "" {
		normalized, err := dateutil.NormalizeDay(d.Date)
		if err != nil {
			errs = append(errs, FieldError{Field: "date", Reason: err.Error()})
		} else {
			d.Date = normalized
		}
	}

	d, timeErrs := validateTimeRange(d)
	errs = append(errs, timeErrs...)

	return d, errs
}

// validateTimeRange normalizes the draft's start and end times, deriving
// the end from DurationMinutes when no end time was supplied.
func validateTimeRange(d Draft) (Draft, ValidationErrors) {
	var errs ValidationErrors

	start, err := ParseClock(d.StartTime)
	if err != nil {
		errs = append(errs, FieldError{
			Field:  "time",
			Reason: fmt.Sprintf("start time %q: %v", d.StartTime, err),
		})
	} else {
		d.StartTime = FormatClock(start)
	}

	if d.EndTime == "" && d.DurationMinutes > 0 && err == nil {
		end, wrapped := AddMinutes(d.StartTime, d.DurationMinutes)
		if wrapped {
			errs = append(errs, FieldError{Field: "time", Reason: "event cannot cross midnight"})
			return d, errs
		}
		d.EndTime = end
	}

	end, endErr := ParseClock(d.EndTime)
	if endErr != nil {
		errs = append(errs, FieldError{
			Field:  "time",
			Reason: fmt.Sprintf("end time %q: %v", d.EndTime, endErr),
		})
		return d, errs
	}
	d.EndTime = FormatClock(end)

	if err == nil && end-start <= 0 {
		errs = append(errs, FieldError{Field: "time", Reason: ErrInvalidRange.Error()})
	}

	return d, errs
}
