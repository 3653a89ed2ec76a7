package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2024-06-15")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.June || got.Day() != 15 {
		t.Errorf("ParseDay = %v", got)
	}
}

func TestParseDay_EmptyMeansToday(t *testing.T) {
	got, err := ParseDay("")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	want := TruncateToDay(time.Now())
	if !got.Equal(want) {
		t.Errorf("ParseDay(\"\") = %v, want %v", got, want)
	}
}

func TestParseDay_Invalid(t *testing.T) {
	for _, input := range []string{"15/06/2024", "2024-6-15", "June 15", "2024-06-15T00:00:00"} {
		if _, err := ParseDay(input); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("ParseDay(%q) error = %v, want ErrInvalidDateFormat", input, err)
		}
	}
}

func TestNormalizeDay(t *testing.T) {
	got, err := NormalizeDay("2024-06-15")
	if err != nil {
		t.Fatalf("NormalizeDay failed: %v", err)
	}
	if got != "2024-06-15" {
		t.Errorf("NormalizeDay = %q", got)
	}

	if _, err := NormalizeDay("not a date"); err == nil {
		t.Error("expected error for malformed day")
	}
}

func TestMonthArithmetic(t *testing.T) {
	tests := []struct {
		name      string
		day       string
		wantFirst string
		wantLast  string
		wantDays  int
	}{
		{name: "thirty days", day: "2024-06-15", wantFirst: "2024-06-01", wantLast: "2024-06-30", wantDays: 30},
		{name: "thirty one days", day: "2024-07-04", wantFirst: "2024-07-01", wantLast: "2024-07-31", wantDays: 31},
		{name: "leap february", day: "2024-02-10", wantFirst: "2024-02-01", wantLast: "2024-02-29", wantDays: 29},
		{name: "plain february", day: "2023-02-10", wantFirst: "2023-02-01", wantLast: "2023-02-28", wantDays: 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := ParseDay(tt.day)
			if err != nil {
				t.Fatalf("ParseDay failed: %v", err)
			}
			if got := FormatDay(FirstOfMonth(day)); got != tt.wantFirst {
				t.Errorf("FirstOfMonth = %q, want %q", got, tt.wantFirst)
			}
			if got := FormatDay(LastOfMonth(day)); got != tt.wantLast {
				t.Errorf("LastOfMonth = %q, want %q", got, tt.wantLast)
			}
			if got := DaysIn(day); got != tt.wantDays {
				t.Errorf("DaysIn = %d, want %d", got, tt.wantDays)
			}
		})
	}
}

func TestStartOffset(t *testing.T) {
	// June 2024 starts on a Saturday.
	june, _ := ParseDay("2024-06-01")

	tests := []struct {
		weekStart time.Weekday
		want      int
	}{
		{time.Sunday, 6},
		{time.Monday, 5},
		{time.Saturday, 0},
	}
	for _, tt := range tests {
		if got := StartOffset(june, tt.weekStart); got != tt.want {
			t.Errorf("StartOffset(june, %v) = %d, want %d", tt.weekStart, got, tt.want)
		}
	}
}

func TestMonthLabel(t *testing.T) {
	day, _ := ParseDay("2024-06-15")
	if got := MonthLabel(day); got != "June 2024" {
		t.Errorf("MonthLabel = %q", got)
	}
}

func TestDisplayDay(t *testing.T) {
	if got := DisplayDay("2024-06-03"); got != "Monday, June 3, 2024" {
		t.Errorf("DisplayDay = %q", got)
	}
	// Unparseable input is passed through
	if got := DisplayDay("garbage"); got != "garbage" {
		t.Errorf("DisplayDay(garbage) = %q", got)
	}
}
