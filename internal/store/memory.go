// Package store provides the in-memory event repository.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jvaldivia/almanac/internal/dateutil"
	"github.com/jvaldivia/almanac/internal/event"
)

// Memory implements event.Repository with an ordered in-memory slice.
//
// The slice is the single source of truth: day buckets are recomputed on
// every Query rather than cached, so the view can never go stale. The
// mutex serializes writers when multiple UI surfaces share one store.
type Memory struct {
	mu     sync.Mutex
	events []event.Event
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{}
}

// Create validates the draft and appends a new event in insertion order.
func (m *Memory) Create(_ context.Context, d event.Draft) (event.Event, error) {
	d, errs := event.ValidateDraft(d)
	if d.Date == "" {
		errs = append(errs, event.FieldError{Field: "date", Reason: event.ErrMissingDate.Error()})
	}
	if len(errs) > 0 {
		return event.Event{}, errs
	}

	ev := newEvent(d)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return ev, nil
}

// Update replaces the event with the given ID in place, preserving its
// position in the collection. The stored date carries over when the draft
// leaves it empty.
func (m *Memory) Update(_ context.Context, id string, d event.Draft) (event.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return event.Event{}, fmt.Errorf("updating event %q: %w", id, event.ErrNotFound)
	}

	prev := m.events[idx]
	if d.Date == "" {
		d.Date = prev.Date
	}
	d, errs := event.ValidateDraft(d)
	if len(errs) > 0 {
		return event.Event{}, errs
	}

	ev := newEvent(d)
	ev.ID = prev.ID
	ev.CreatedAt = prev.CreatedAt
	m.events[idx] = ev
	return ev, nil
}

// Delete removes the event with the given ID.
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("deleting event %q: %w", id, event.ErrNotFound)
	}
	m.events = append(m.events[:idx], m.events[idx+1:]...)
	return nil
}

// Query returns the day bucket for the given date in insertion order.
func (m *Memory) Query(_ context.Context, date string) ([]event.Event, error) {
	day, err := dateutil.NormalizeDay(date)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]event.Event, 0)
	for _, ev := range m.events {
		if ev.Date == day {
			result = append(result, ev)
		}
	}
	return result, nil
}

// QueryRange returns all events with from <= date <= to, ordered by date
// and then insertion order within each day.
func (m *Memory) QueryRange(_ context.Context, from, to string) ([]event.Event, error) {
	start, err := dateutil.NormalizeDay(from)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	end, err := dateutil.NormalizeDay(to)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]event.Event, 0)
	for _, ev := range m.events {
		if ev.Date >= start && ev.Date <= end {
			result = append(result, ev)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result, nil
}

// Len returns the number of stored events.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

// Close releases nothing; it exists to satisfy event.Repository.
func (m *Memory) Close() error {
	return nil
}

// indexOf returns the position of the event with the given ID, or -1.
// Callers must hold the mutex.
func (m *Memory) indexOf(id string) int {
	for i, ev := range m.events {
		if ev.ID == id {
			return i
		}
	}
	return -1
}

// newEvent builds an Event from a validated draft with a fresh ID.
func newEvent(d event.Draft) event.Event {
	return event.Event{
		ID:          uuid.NewString(),
		Date:        d.Date,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Title:       d.Title,
		Description: d.Description,
		Location:    d.Location,
		Color:       d.Color,
		CreatedAt:   time.Now(),
	}
}
