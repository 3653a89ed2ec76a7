package event

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{name: "partial overlap", a: [2]string{"09:00", "10:00"}, b: [2]string{"09:30", "10:30"}, want: true},
		{name: "contained", a: [2]string{"09:00", "12:00"}, b: [2]string{"10:00", "11:00"}, want: true},
		{name: "identical", a: [2]string{"09:00", "10:00"}, b: [2]string{"09:00", "10:00"}, want: true},
		{name: "back to back", a: [2]string{"09:00", "10:00"}, b: [2]string{"10:00", "11:00"}, want: false},
		{name: "disjoint", a: [2]string{"09:00", "10:00"}, b: [2]string{"14:00", "15:00"}, want: false},
		{name: "one minute overlap", a: [2]string{"09:00", "10:01"}, b: [2]string{"10:00", "11:00"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Event{StartTime: tt.a[0], EndTime: tt.a[1]}
			b := Event{StartTime: tt.b[0], EndTime: tt.b[1]}
			if got := Overlaps(a, b); got != tt.want {
				t.Errorf("Overlaps(%v-%v, %v-%v) = %v, want %v",
					tt.a[0], tt.a[1], tt.b[0], tt.b[1], got, tt.want)
			}
			// Overlap is symmetric
			if got := Overlaps(b, a); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %v/%v", tt.a, tt.b)
			}
		})
	}
}

func TestHasConflict(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   bool
	}{
		{name: "empty", events: nil, want: false},
		{
			name:   "single event",
			events: []Event{{StartTime: "09:00", EndTime: "10:00"}},
			want:   false,
		},
		{
			name: "standup and sync overlap",
			events: []Event{
				{Title: "Standup", StartTime: "09:00", EndTime: "09:30"},
				{Title: "Sync", StartTime: "09:15", EndTime: "10:00"},
			},
			want: true,
		},
		{
			name: "full day without overlap",
			events: []Event{
				{StartTime: "09:00", EndTime: "10:00"},
				{StartTime: "10:00", EndTime: "11:00"},
				{StartTime: "11:00", EndTime: "12:00"},
			},
			want: false,
		},
		{
			name: "late pair conflicts",
			events: []Event{
				{StartTime: "08:00", EndTime: "09:00"},
				{StartTime: "12:00", EndTime: "13:00"},
				{StartTime: "12:30", EndTime: "13:30"},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(tt.events); got != tt.want {
				t.Errorf("HasConflict() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFirstConflict(t *testing.T) {
	events := []Event{
		{Title: "Breakfast", StartTime: "08:00", EndTime: "08:30"},
		{Title: "Standup", StartTime: "09:00", EndTime: "09:30"},
		{Title: "Sync", StartTime: "09:15", EndTime: "10:00"},
		{Title: "Review", StartTime: "09:20", EndTime: "09:40"},
	}

	a, b, found := FirstConflict(events)
	if !found {
		t.Fatal("expected a conflict")
	}
	// The (i, j) scan with i < j reports Standup/Sync before any pair
	// involving Review.
	if a.Title != "Standup" || b.Title != "Sync" {
		t.Errorf("first pair: got %q/%q, want Standup/Sync", a.Title, b.Title)
	}
}

func TestFirstConflict_None(t *testing.T) {
	events := []Event{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "10:00", EndTime: "11:00"},
	}
	if _, _, found := FirstConflict(events); found {
		t.Error("expected no conflict for back-to-back events")
	}
}
