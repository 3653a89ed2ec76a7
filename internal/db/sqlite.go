// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jvaldivia/almanac/internal/dateutil"
	"github.com/jvaldivia/almanac/internal/event"
)

// SQLite implements event.Repository using SQLite.
//
// A monotonically increasing position column preserves the collection's
// insertion order; updates keep the row's position so edited events stay
// in their original slot.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Create validates the draft and inserts a new event at the end of the
// collection order.
func (s *SQLite) Create(ctx context.Context, d event.Draft) (event.Event, error) {
	d, errs := event.ValidateDraft(d)
	if d.Date == "" {
		errs = append(errs, event.FieldError{Field: "date", Reason: event.ErrMissingDate.Error()})
	}
	if len(errs) > 0 {
		return event.Event{}, errs
	}

	ev := event.Event{
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

	query := `
		INSERT INTO events (id, date, start_time, end_time, title, description, location, color, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM events), ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		ev.ID,
		ev.Date,
		ev.StartTime,
		ev.EndTime,
		ev.Title,
		ev.Description,
		ev.Location,
		ev.Color,
		ev.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return event.Event{}, fmt.Errorf("inserting event: %w", err)
	}

	return ev, nil
}

// Get retrieves an event by ID. Returns ErrNotFound if the ID is absent.
func (s *SQLite) Get(ctx context.Context, id string) (event.Event, error) {
	query := `
		SELECT id, date, start_time, end_time, title, description, location, color, created_at
		FROM events
		WHERE id = ?
	`

	var (
		ev        event.Event
		createdAt string
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&ev.ID,
		&ev.Date,
		&ev.StartTime,
		&ev.EndTime,
		&ev.Title,
		&ev.Description,
		&ev.Location,
		&ev.Color,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return event.Event{}, fmt.Errorf("event %q: %w", id, event.ErrNotFound)
	}
	if err != nil {
		return event.Event{}, fmt.Errorf("querying event: %w", err)
	}

	ev.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return event.Event{}, fmt.Errorf("parsing created at: %w", err)
	}

	return ev, nil
}

// Update replaces the event with the given ID, keeping its position in
// the collection. The stored date carries over when the draft leaves it
// empty.
func (s *SQLite) Update(ctx context.Context, id string, d event.Draft) (event.Event, error) {
	prev, err := s.Get(ctx, id)
	if err != nil {
		return event.Event{}, err
	}

	if d.Date == "" {
		d.Date = prev.Date
	}
	d, errs := event.ValidateDraft(d)
	if len(errs) > 0 {
		return event.Event{}, errs
	}

	query := `
		UPDATE events
		SET date = ?, start_time = ?, end_time = ?, title = ?, description = ?, location = ?, color = ?
		WHERE id = ?
	`
	_, err = s.db.ExecContext(ctx, query,
		d.Date,
		d.StartTime,
		d.EndTime,
		d.Title,
		d.Description,
		d.Location,
		d.Color,
		id,
	)
	if err != nil {
		return event.Event{}, fmt.Errorf("updating event: %w", err)
	}

	ev := prev
	ev.Date = d.Date
	ev.StartTime = d.StartTime
	ev.EndTime = d.EndTime
	ev.Title = d.Title
	ev.Description = d.Description
	ev.Location = d.Location
	ev.Color = d.Color
	return ev, nil
}

// Delete removes the event with the given ID. Deleting an absent ID is an
// explicit ErrNotFound.
func (s *SQLite) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("event %q: %w", id, event.ErrNotFound)
	}

	return nil
}

// Query returns the day bucket for the given date in insertion order.
func (s *SQLite) Query(ctx context.Context, date string) ([]event.Event, error) {
	day, err := dateutil.NormalizeDay(date)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}

	query := `
		SELECT id, date, start_time, end_time, title, description, location, color, created_at
		FROM events
		WHERE date = ?
		ORDER BY position
	`
	return s.queryEvents(ctx, query, day)
}

// QueryRange returns all events with from <= date <= to, ordered by date
// and then insertion order within each day.
func (s *SQLite) QueryRange(ctx context.Context, from, to string) ([]event.Event, error) {
	start, err := dateutil.NormalizeDay(from)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	end, err := dateutil.NormalizeDay(to)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}

	query := `
		SELECT id, date, start_time, end_time, title, description, location, color, created_at
		FROM events
		WHERE date >= ? AND date <= ?
		ORDER BY date, position
	`
	return s.queryEvents(ctx, query, start, end)
}

func (s *SQLite) queryEvents(ctx context.Context, query string, args ...any) ([]event.Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := make([]event.Event, 0)
	for rows.Next() {
		var (
			ev        event.Event
			createdAt string
		)
		err := rows.Scan(
			&ev.ID,
			&ev.Date,
			&ev.StartTime,
			&ev.EndTime,
			&ev.Title,
			&ev.Description,
			&ev.Location,
			&ev.Color,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}

		ev.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}

		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
