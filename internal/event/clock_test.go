package event

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:30", want: 570},
		{name: "noon", input: "12:00", want: 720},
		{name: "end of day", input: "23:59", want: 1439},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "hour too large", input: "24:00", wantErr: true},
		{name: "minute too large", input: "10:60", wantErr: true},
		{name: "no separator", input: "0930", wantErr: true},
		{name: "wrong separator", input: "09.30", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "trailing garbage", input: "09:30x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTimeFormat) {
					t.Fatalf("ParseClock(%q) error = %v, want ErrInvalidTimeFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{720, "12:00"},
		{1439, "23:59"},
		{1440, "00:00"}, // wraps
		{-5, "00:00"},   // clamped
	}

	for _, tt := range tests {
		if got := FormatClock(tt.minutes); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    int
		wantErr error
	}{
		{name: "one hour", start: "09:00", end: "10:00", want: 60},
		{name: "ninety minutes", start: "14:00", end: "15:30", want: 90},
		{name: "zero length", start: "09:00", end: "09:00", wantErr: ErrInvalidRange},
		{name: "end before start", start: "10:00", end: "09:00", wantErr: ErrInvalidRange},
		{name: "bad start", start: "9:00", end: "10:00", wantErr: ErrInvalidTimeFormat},
		{name: "bad end", start: "09:00", end: "10", wantErr: ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Duration(tt.start, tt.end)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Duration(%q, %q) error = %v, want %v", tt.start, tt.end, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Duration(%q, %q) unexpected error: %v", tt.start, tt.end, err)
			}
			if got != tt.want {
				t.Errorf("Duration(%q, %q) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name        string
		start       string
		delta       int
		want        string
		wantWrapped bool
	}{
		{name: "same day", start: "09:00", delta: 90, want: "10:30"},
		{name: "to end of day", start: "23:00", delta: 59, want: "23:59"},
		{name: "exactly midnight wraps", start: "23:00", delta: 60, want: "00:00", wantWrapped: true},
		{name: "past midnight wraps", start: "23:50", delta: 20, want: "00:10", wantWrapped: true},
		{name: "negative delta", start: "00:10", delta: -20, want: "23:50", wantWrapped: true},
		{name: "zero delta", start: "12:00", delta: 0, want: "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, wrapped := AddMinutes(tt.start, tt.delta)
			if got != tt.want {
				t.Errorf("AddMinutes(%q, %d) = %q, want %q", tt.start, tt.delta, got, tt.want)
			}
			if wrapped != tt.wantWrapped {
				t.Errorf("AddMinutes(%q, %d) wrapped = %v, want %v", tt.start, tt.delta, wrapped, tt.wantWrapped)
			}
		})
	}
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"00:00", "12:00 AM"},
		{"00:10", "12:10 AM"},
		{"09:05", "9:05 AM"},
		{"12:00", "12:00 PM"},
		{"12:30", "12:30 PM"},
		{"13:00", "1:00 PM"},
		{"23:59", "11:59 PM"},
		{"garbage", "garbage"}, // returned as is
	}

	for _, tt := range tests {
		if got := FormatDisplay(tt.input); got != tt.want {
			t.Errorf("FormatDisplay(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
