package event

import (
	"strings"
	"testing"
)

func TestValidateDraft_Valid(t *testing.T) {
	d, errs := ValidateDraft(Draft{
		Date:      "2024-06-15",
		Title:     "  Dentist  ",
		StartTime: "14:30",
		EndTime:   "15:00",
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if d.Title != "Dentist" {
		t.Errorf("Title: got %q, want trimmed %q", d.Title, "Dentist")
	}
	if d.StartTime != "14:30" || d.EndTime != "15:00" {
		t.Errorf("times: got %s-%s, want 14:30-15:00", d.StartTime, d.EndTime)
	}
}

func TestValidateDraft_CollectsAllErrors(t *testing.T) {
	// Empty title and a broken time range are independent failures and
	// must both be reported.
	_, errs := ValidateDraft(Draft{
		Date:      "2024-06-15",
		Title:     "   ",
		StartTime: "10:00",
		EndTime:   "09:00",
	})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if _, ok := errs.ByField("title"); !ok {
		t.Error("expected a title error")
	}
	if reason, ok := errs.ByField("time"); !ok {
		t.Error("expected a time error")
	} else if reason != ErrInvalidRange.Error() {
		t.Errorf("time reason: got %q, want %q", reason, ErrInvalidRange.Error())
	}
}

func TestValidateDraft_TimeFormat(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "bad start", start: "9am", end: "10:00"},
		{name: "bad end", start: "09:00", end: "ten"},
		{name: "both bad", start: "x", end: "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := ValidateDraft(Draft{
				Date:      "2024-06-15",
				Title:     "Meeting",
				StartTime: tt.start,
				EndTime:   tt.end,
			})
			reason, ok := errs.ByField("time")
			if !ok {
				t.Fatalf("expected a time error, got %v", errs)
			}
			if !strings.Contains(reason, "HH:MM") {
				t.Errorf("reason %q should name the expected format", reason)
			}
		})
	}
}

func TestValidateDraft_DerivesEndFromDuration(t *testing.T) {
	d, errs := ValidateDraft(Draft{
		Date:            "2024-06-15",
		Title:           "Focus block",
		StartTime:       "13:00",
		DurationMinutes: 45,
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if d.EndTime != "13:45" {
		t.Errorf("EndTime: got %q, want %q", d.EndTime, "13:45")
	}
}

func TestValidateDraft_ExplicitEndWinsOverDuration(t *testing.T) {
	d, errs := ValidateDraft(Draft{
		Date:            "2024-06-15",
		Title:           "Focus block",
		StartTime:       "13:00",
		EndTime:         "14:00",
		DurationMinutes: 45,
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if d.EndTime != "14:00" {
		t.Errorf("EndTime: got %q, want explicit %q", d.EndTime, "14:00")
	}
}

func TestValidateDraft_RejectsMidnightWrap(t *testing.T) {
	// 23:50 plus 20 minutes lands on the next day; same-day events
	// cannot cross midnight.
	_, errs := ValidateDraft(Draft{
		Date:            "2024-06-15",
		Title:           "Late call",
		StartTime:       "23:50",
		DurationMinutes: 20,
	})
	reason, ok := errs.ByField("time")
	if !ok {
		t.Fatalf("expected a time error, got %v", errs)
	}
	if reason != "event cannot cross midnight" {
		t.Errorf("reason: got %q", reason)
	}
}

func TestValidateDraft_BadDate(t *testing.T) {
	_, errs := ValidateDraft(Draft{
		Date:      "15/06/2024",
		Title:     "Meeting",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	if _, ok := errs.ByField("date"); !ok {
		t.Fatalf("expected a date error, got %v", errs)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "title", Reason: "title cannot be empty"},
		{Field: "time", Reason: "end time must be after start time"},
	}
	got := errs.Error()
	want := "title: title cannot be empty; time: end time must be after start time"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestEvent_Duration(t *testing.T) {
	ev := Event{StartTime: "09:00", EndTime: "10:30"}
	if got := ev.Duration(); got != 90 {
		t.Errorf("Duration() = %d, want 90", got)
	}

	broken := Event{StartTime: "bad", EndTime: "10:30"}
	if got := broken.Duration(); got != 0 {
		t.Errorf("Duration() on broken times = %d, want 0", got)
	}
}

func TestEvent_TimeRange(t *testing.T) {
	ev := Event{StartTime: "09:00", EndTime: "14:30"}
	if got := ev.TimeRange(); got != "9:00 AM - 2:30 PM" {
		t.Errorf("TimeRange() = %q", got)
	}
}
