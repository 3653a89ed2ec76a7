package event

import "context"

// Repository defines the storage contract for events.
//
// Implementations keep a single ordered collection: Create appends,
// Update replaces in place, and Query returns a day's events in stable
// insertion order. All mutation goes through these entry points.
type Repository interface {
	// Create validates the draft, assigns a fresh unique ID, and appends
	// the event. Returns ValidationErrors listing every violated field.
	Create(ctx context.Context, d Draft) (Event, error)

	// Update re-validates exactly as Create and replaces the record,
	// preserving its position in the collection. The event's date carries
	// over when the draft leaves it empty. Returns ErrNotFound if the ID
	// is absent.
	Update(ctx context.Context, id string, d Draft) (Event, error)

	// Delete removes the event. Deleting an absent ID is an explicit
	// ErrNotFound, not a silent no-op, so callers can detect stale state.
	Delete(ctx context.Context, id string) error

	// Query returns all events on the given day in insertion order.
	// An empty slice is a valid, non-error result.
	Query(ctx context.Context, date string) ([]Event, error)

	// QueryRange returns all events with from <= date <= to, ordered by
	// date and then insertion order within each day.
	QueryRange(ctx context.Context, from, to string) ([]Event, error)

	// Close releases any resources held by the repository.
	Close() error
}
