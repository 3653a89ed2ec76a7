package event

// Overlaps reports whether two events' time ranges overlap. Ranges are
// half-open [start, end): back-to-back events sharing an endpoint do not
// overlap. Both events are assumed to be on the same day.
func Overlaps(a, b Event) bool {
	return a.StartTime < b.EndTime && b.StartTime < a.EndTime
}

// HasConflict reports whether any two distinct events in a single day's
// list overlap. Zero or one event never conflicts. The pairwise scan is
// deliberate: per-day event counts are small.
func HasConflict(events []Event) bool {
	_, _, found := FirstConflict(events)
	return found
}

// FirstConflict returns the first overlapping pair in the list, scanning
// pairs (i, j) with i < j in order.
func FirstConflict(events []Event) (Event, Event, bool) {
	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			if Overlaps(events[i], events[j]) {
				return events[i], events[j], true
			}
		}
	}
	return Event{}, Event{}, false
}
