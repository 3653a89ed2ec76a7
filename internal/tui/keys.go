package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jvaldivia/almanac/internal/dateutil"
	"github.com/jvaldivia/almanac/internal/event"
	"github.com/jvaldivia/almanac/internal/session"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirmDelete {
		return m.handleConfirmKeys(msg)
	}

	switch m.sess.State().Kind {
	case session.StateViewing:
		return m.handleDayViewKeys(msg)
	case session.StateCreating, session.StateEditing:
		return m.handleFormKeys(msg)
	default:
		return m.handleMonthKeys(msg)
	}
}

// handleMonthKeys handles keys while the month grid has focus.
func (m Model) handleMonthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Day navigation, spilling into the adjacent month at the edges.
	case "h", "left":
		m.cursor--
		if m.cursor < 1 {
			m = m.gotoMonth(-1)
			m.cursor = dateutil.DaysIn(m.month)
		}
	case "l", "right":
		m.cursor++
		if m.cursor > dateutil.DaysIn(m.month) {
			m = m.gotoMonth(1)
			m.cursor = 1
		}
	case "j", "down":
		m.cursor += 7
		if days := dateutil.DaysIn(m.month); m.cursor > days {
			overflow := m.cursor - days
			m = m.gotoMonth(1)
			m.cursor = overflow
			m.cursor = m.clampCursor()
		}
	case "k", "up":
		m.cursor -= 7
		if m.cursor < 1 {
			underflow := m.cursor
			m = m.gotoMonth(-1)
			m.cursor = dateutil.DaysIn(m.month) + underflow
			m.cursor = m.clampCursor()
		}

	// Month paging
	case "[", "H", "pgup":
		m = m.gotoMonth(-1)
		m.cursor = m.clampCursor()
	case "]", "L", "pgdown":
		m = m.gotoMonth(1)
		m.cursor = m.clampCursor()
	case "t":
		m = m.gotoToday()

	// Actions
	case "enter":
		if err := m.sess.SelectDay(context.Background(), m.cursorDay()); err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		switch m.sess.State().Kind {
		case session.StateViewing:
			m.selected = 0
		case session.StateCreating:
			m.form.prefill(m.config.Calendar.DefaultStart, m.config.Calendar.DefaultEnd)
			m.formErrors = nil
		}
	case "a":
		m.sess.RequestCreate(m.cursorDay())
		m.form.prefill(m.config.Calendar.DefaultStart, m.config.Calendar.DefaultEnd)
		m.formErrors = nil
	}

	return m, nil
}

// handleDayViewKeys handles keys while the day view modal is open.
func (m Model) handleDayViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	day := m.sess.State().Day
	events := m.byDay[day]

	switch msg.String() {
	case "esc", "q":
		m.sess.CloseAll()
	case "j", "down":
		if m.selected < len(events)-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "enter", "e":
		if m.selected < len(events) {
			if err := m.sess.RequestEdit(events[m.selected]); err != nil {
				m.statusMsg = fmt.Sprintf("Error: %v", err)
				return m, nil
			}
			m.form.load(events[m.selected], m.theme.EventPalette)
			m.formErrors = nil
		}
	case "a":
		m.sess.RequestCreate(day)
		m.form.prefill(m.config.Calendar.DefaultStart, m.config.Calendar.DefaultEnd)
		m.formErrors = nil
	case "d":
		if m.selected < len(events) {
			ev := events[m.selected]
			m.pendingDelete = &ev
			m.confirmDelete = true
		}
	case "y":
		if err := clipboard.WriteAll(agendaText(day, events)); err != nil {
			m.statusMsg = fmt.Sprintf("Clipboard error: %v", err)
		} else {
			m.statusMsg = "Day agenda copied to clipboard"
		}
	}

	return m, nil
}

// handleFormKeys handles keys while the create/edit form is open.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	editing := m.sess.State().Kind == session.StateEditing

	switch msg.String() {
	case "esc":
		m.sess.CloseAll()
		m.formErrors = nil
		return m, nil
	case "tab", "down":
		m.form.focusNext()
		return m, nil
	case "shift+tab", "up":
		m.form.focusPrev()
		return m, nil
	case "left", "right":
		if m.form.focus == fieldColor {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			m.form.cycleColor(delta, len(m.theme.EventPalette))
			return m, nil
		}
	case "ctrl+d":
		if editing {
			m.pendingDelete = m.sess.State().Event
			m.confirmDelete = true
			return m, nil
		}
	case "enter":
		return m.submitForm()
	}

	cmd := m.form.update(msg)
	return m, cmd
}

// submitForm commits the form through the session. Validation failures
// keep the modal open with inline errors; the store is untouched.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	state := m.sess.State()
	draft := m.form.draft(state.Day, m.theme.EventPalette)

	var (
		ev  event.Event
		err error
	)
	if state.Kind == session.StateEditing {
		ev, err = m.sess.CommitEdit(context.Background(), draft)
	} else {
		ev, err = m.sess.CommitCreate(context.Background(), draft)
	}
	if err != nil {
		var verrs event.ValidationErrors
		if errors.As(err, &verrs) {
			m.formErrors = verrs
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	m.formErrors = nil
	m = m.reloaded()
	if state.Kind == session.StateEditing {
		m.statusMsg = fmt.Sprintf("Updated %q", ev.Title)
	} else {
		m.statusMsg = fmt.Sprintf("Created %q at %s", ev.Title, event.FormatDisplay(ev.StartTime))
	}
	return m, nil
}

// handleConfirmKeys handles the delete confirmation dialog.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if m.pendingDelete != nil {
			title := m.pendingDelete.Title
			err := m.sess.CommitDelete(context.Background(), m.pendingDelete.ID)
			if err != nil {
				// The event is already gone; refresh and drop the stale view.
				m.statusMsg = fmt.Sprintf("Error: %v", err)
				m.sess.CloseAll()
			} else {
				m.statusMsg = fmt.Sprintf("Deleted %q", title)
			}
			m = m.reloaded()
		}
		m.confirmDelete = false
		m.pendingDelete = nil
		m.selected = 0
	case "n", "esc":
		m.confirmDelete = false
		m.pendingDelete = nil
	}
	return m, nil
}

// gotoMonth shifts the displayed month by delta months and reloads its
// events.
func (m Model) gotoMonth(delta int) Model {
	m.month = m.month.AddDate(0, delta, 0)
	return m.reloaded()
}

// gotoToday jumps the view back to the current month and day.
func (m Model) gotoToday() Model {
	now := dateutil.TruncateToDay(nowFunc())
	m.month = dateutil.FirstOfMonth(now)
	m.cursor = now.Day()
	return m.reloaded()
}

// reloaded re-queries the displayed month's events.
func (m Model) reloaded() Model {
	byDay, err := m.monthEvents()
	if err != nil {
		m.statusMsg = fmt.Sprintf("Error loading events: %v", err)
		return m
	}
	m.byDay = byDay
	return m
}

// agendaText renders a plain-text agenda for clipboard export.
func agendaText(day string, events []event.Event) string {
	var b strings.Builder
	b.WriteString(dateutil.DisplayDay(day))
	b.WriteString("\n")
	for _, ev := range events {
		b.WriteString(ev.TimeRange())
		b.WriteString("  ")
		b.WriteString(ev.Title)
		if ev.Location != "" {
			b.WriteString(" @ ")
			b.WriteString(ev.Location)
		}
		b.WriteString("\n")
	}
	return b.String()
}
