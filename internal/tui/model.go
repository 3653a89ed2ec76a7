// Package tui provides the terminal user interface for almanac.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jvaldivia/almanac/internal/config"
	"github.com/jvaldivia/almanac/internal/dateutil"
	"github.com/jvaldivia/almanac/internal/event"
	"github.com/jvaldivia/almanac/internal/session"
	"github.com/jvaldivia/almanac/internal/tui/theme"
)

// nowFunc returns the current time; tests substitute a fixed clock.
var nowFunc = time.Now

// Model is the main TUI model. It renders a month grid and drives a
// session for the modal flow; all event state lives in the repository
// and is re-queried after every mutation.
type Model struct {
	// Dependencies
	repo   event.Repository
	sess   *session.Session
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Month view state
	month  time.Time // first day of the displayed month
	cursor int       // day of month under the cursor, 1-based
	byDay  map[string][]event.Event

	// Modal state
	selected      int // highlighted row in the day view
	confirmDelete bool
	pendingDelete *event.Event
	form          eventForm
	formErrors    event.ValidationErrors

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg string

	err error
}

// New creates a new TUI model.
func New(repo event.Repository, cfg *config.Config) Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}

	now := nowFunc()
	m := Model{
		repo:   repo,
		sess:   session.New(repo),
		config: cfg,
		theme:  t,
		styles: NewStyles(t),
		month:  dateutil.FirstOfMonth(now),
		cursor: now.Day(),
		form:   newEventForm(),
		byDay:  map[string][]event.Event{},
	}

	if byDay, err := m.monthEvents(); err != nil {
		m.err = err
	} else {
		m.byDay = byDay
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// monthEvents queries the repository for the displayed month's day
// buckets. Recomputed after every mutation rather than patched in place.
func (m Model) monthEvents() (map[string][]event.Event, error) {
	from := dateutil.FormatDay(dateutil.FirstOfMonth(m.month))
	to := dateutil.FormatDay(dateutil.LastOfMonth(m.month))
	events, err := m.repo.QueryRange(context.Background(), from, to)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string][]event.Event)
	for _, ev := range events {
		byDay[ev.Date] = append(byDay[ev.Date], ev)
	}
	return byDay, nil
}

// cursorDay returns the day under the cursor as a YYYY-MM-DD string.
func (m Model) cursorDay() string {
	d := time.Date(m.month.Year(), m.month.Month(), m.cursor, 0, 0, 0, 0, m.month.Location())
	return dateutil.FormatDay(d)
}

// clampCursor keeps the cursor inside the displayed month.
func (m Model) clampCursor() int {
	days := dateutil.DaysIn(m.month)
	if m.cursor > days {
		return days
	}
	if m.cursor < 1 {
		return 1
	}
	return m.cursor
}

// Run starts the TUI.
func Run(repo event.Repository, cfg *config.Config) error {
	model := New(repo, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
