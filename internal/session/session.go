// Package session tracks which modal, if any, a calendar UI should show.
//
// The state machine mirrors the interaction flow of the month view:
// selecting a day opens either the day view or the create form, edits can
// only start from the day view, and every successful store mutation
// returns to idle. The active state fully determines which modal to
// render; there is no hidden state.
package session

import (
	"context"
	"errors"

	"github.com/jvaldivia/almanac/internal/event"
)

// Transition errors.
var (
	ErrNotViewing = errors.New("editing can only start from the day view")
	ErrNotEditing = errors.New("no event is being edited")
)

// StateKind identifies the active interaction state.
type StateKind int

const (
	StateIdle StateKind = iota
	StateViewing
	StateCreating
	StateEditing
)

// String returns the state name for logs and errors.
func (k StateKind) String() string {
	switch k {
	case StateViewing:
		return "viewing"
	case StateCreating:
		return "creating"
	case StateEditing:
		return "editing"
	default:
		return "idle"
	}
}

// State is the current interaction state. Day is set while viewing or
// creating; Event is set while editing.
type State struct {
	Kind  StateKind
	Day   string
	Event *event.Event
}

// Session drives the interaction state machine over a repository. All
// store mutations triggered by the UI flow through its commit methods,
// so a failed commit can never leave the machine in a half-open state.
type Session struct {
	repo  event.Repository
	state State
}

// New creates an idle session over the given repository.
func New(repo event.Repository) *Session {
	return &Session{repo: repo}
}

// State returns the current interaction state.
func (s *Session) State() State {
	return s.state
}

// SelectDay opens the day view when the day has events, and jumps
// straight to the create form otherwise.
func (s *Session) SelectDay(ctx context.Context, day string) error {
	events, err := s.repo.Query(ctx, day)
	if err != nil {
		return err
	}
	if len(events) > 0 {
		s.state = State{Kind: StateViewing, Day: day}
	} else {
		s.state = State{Kind: StateCreating, Day: day}
	}
	return nil
}

// RequestCreate opens the create form for the given day regardless of
// whether the day already has events.
func (s *Session) RequestCreate(day string) {
	s.state = State{Kind: StateCreating, Day: day}
}

// RequestEdit switches from the day view to editing the given event.
func (s *Session) RequestEdit(ev event.Event) error {
	if s.state.Kind != StateViewing {
		return ErrNotViewing
	}
	s.state = State{Kind: StateEditing, Day: ev.Date, Event: &ev}
	return nil
}

// CloseAll returns to idle, clearing any pending selection.
func (s *Session) CloseAll() {
	s.state = State{}
}

// CommitCreate creates an event from the draft. On success the session
// returns to idle; on failure the state and the store are untouched.
func (s *Session) CommitCreate(ctx context.Context, d event.Draft) (event.Event, error) {
	if d.Date == "" {
		d.Date = s.state.Day
	}
	ev, err := s.repo.Create(ctx, d)
	if err != nil {
		return event.Event{}, err
	}
	s.state = State{}
	return ev, nil
}

// CommitEdit replaces the event being edited with the draft. On success
// the session returns to idle; on failure the state and the store are
// untouched.
func (s *Session) CommitEdit(ctx context.Context, d event.Draft) (event.Event, error) {
	if s.state.Kind != StateEditing || s.state.Event == nil {
		return event.Event{}, ErrNotEditing
	}
	ev, err := s.repo.Update(ctx, s.state.Event.ID, d)
	if err != nil {
		return event.Event{}, err
	}
	s.state = State{}
	return ev, nil
}

// CommitDelete deletes the event with the given ID. On success the
// session returns to idle.
func (s *Session) CommitDelete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.state = State{}
	return nil
}

// Query returns the day bucket for the given date.
func (s *Session) Query(ctx context.Context, day string) ([]event.Event, error) {
	return s.repo.Query(ctx, day)
}

// HasConflictOn reports whether any two events on the given day overlap.
func (s *Session) HasConflictOn(ctx context.Context, day string) (bool, error) {
	events, err := s.repo.Query(ctx, day)
	if err != nil {
		return false, err
	}
	return event.HasConflict(events), nil
}
