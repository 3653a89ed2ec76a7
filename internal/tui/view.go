package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jvaldivia/almanac/internal/dateutil"
	"github.com/jvaldivia/almanac/internal/event"
	"github.com/jvaldivia/almanac/internal/session"
)

const (
	cellEventLines = 3 // event chips shown per day cell
	minCellWidth   = 12
	maxCellWidth   = 20
)

// View renders the month grid, with the active modal centered on top of
// it when the session is not idle.
func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress ctrl+c to quit.", m.err)
	}
	if m.width == 0 {
		return "Loading..."
	}

	modal := m.renderModal()
	if modal != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}
	return m.renderMonth()
}

func (m Model) renderModal() string {
	if m.confirmDelete {
		return m.renderConfirmModal()
	}
	switch m.sess.State().Kind {
	case session.StateViewing:
		return m.renderDayModal()
	case session.StateCreating, session.StateEditing:
		return m.renderFormModal()
	default:
		return ""
	}
}

// renderMonth renders the header, weekday row, day grid, and status bar.
func (m Model) renderMonth() string {
	var b strings.Builder

	title := m.styles.Title.Render("almanac")
	label := m.styles.StatusBar.Render(dateutil.MonthLabel(m.month))
	b.WriteString(title + "  " + label + "\n\n")

	cellW := m.cellWidth()
	b.WriteString(m.renderWeekdayHeader(cellW) + "\n")

	offset := dateutil.StartOffset(m.month, m.config.WeekStartDay())
	days := dateutil.DaysIn(m.month)
	today := m.todayInMonth()

	blank := strings.Repeat(" ", cellW)
	day := 1
	for day <= days {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			if (day == 1 && col < offset) || day > days {
				cells = append(cells, blankCell(blank))
				continue
			}
			cells = append(cells, m.renderDayCell(day, cellW, day == today))
			day++
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(m.styles.StatusBar.Render(m.statusMsg))
	} else {
		b.WriteString(m.styles.Help.Render("h/j/k/l move · enter open · a add · [/] month · t today · q quit"))
	}
	return b.String()
}

func (m Model) cellWidth() int {
	w := (m.width - 7) / 7
	if w < minCellWidth {
		w = minCellWidth
	}
	if w > maxCellWidth {
		w = maxCellWidth
	}
	return w
}

// todayInMonth returns today's day number when the displayed month is the
// current one, and 0 otherwise.
func (m Model) todayInMonth() int {
	now := nowFunc()
	if m.month.Year() == now.Year() && m.month.Month() == now.Month() {
		return now.Day()
	}
	return 0
}

func (m Model) renderWeekdayHeader(cellW int) string {
	start := m.config.WeekStartDay()
	parts := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(start) + i) % 7)
		name := wd.String()[:3]
		parts = append(parts, m.styles.WeekdayHeader.Width(cellW+1).Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func blankCell(blank string) string {
	lines := make([]string, cellEventLines+2)
	for i := range lines {
		lines[i] = blank
	}
	return strings.Join(lines, "\n") + " "
}

// renderDayCell renders one day: number, conflict marker, and up to
// cellEventLines event chips with a "+N more" spill line.
func (m Model) renderDayCell(day, cellW int, isToday bool) string {
	date := dateutil.FormatDay(time.Date(m.month.Year(), m.month.Month(), day, 0, 0, 0, 0, m.month.Location()))
	events := m.byDay[date]

	numStyle := m.styles.DayNumber
	if isToday {
		numStyle = m.styles.DayNumberToday
	}
	header := numStyle.Render(fmt.Sprintf("%2d", day))
	if event.HasConflict(events) {
		header += " " + m.styles.ConflictMark.Render("!")
	}

	lines := []string{header}
	for i, ev := range events {
		if i >= cellEventLines {
			break
		}
		chip := m.styles.EventChip(m.theme.EventColor(ev.Color, i))
		lines = append(lines, chip.Render(truncate(ev.Title, cellW-1)))
	}
	if len(events) > cellEventLines {
		lines = append(lines, m.styles.MoreEvents.Render(fmt.Sprintf("+%d more", len(events)-cellEventLines)))
	}

	cell := m.styles.DayCell
	if day == m.cursor {
		cell = m.styles.DayCellCursor
	}
	block := cell.Width(cellW).Height(cellEventLines + 2).Render(strings.Join(lines, "\n"))
	return block + " "
}

// renderDayModal renders the list of events for the viewed day.
func (m Model) renderDayModal() string {
	day := m.sess.State().Day
	events := m.byDay[day]

	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render(dateutil.DisplayDay(day)))
	b.WriteString("\n\n")

	if event.HasConflict(events) {
		b.WriteString(m.styles.ModalError.Render("! Some events overlap"))
		b.WriteString("\n\n")
	}

	for i, ev := range events {
		chip := m.styles.EventChip(m.theme.EventColor(ev.Color, i)).Render(" ")
		line := fmt.Sprintf("%s %s  %s", chip, ev.TimeRange(), ev.Title)
		if ev.Location != "" {
			line += m.styles.ModalMuted.Render(" @ " + ev.Location)
		}
		if i == m.selected {
			line = m.styles.SelectedRow.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.ModalMuted.Render("enter edit · a add · d delete · y copy · esc close"))
	return m.styles.ModalFrame.Render(b.String())
}

// renderFormModal renders the create/edit form with inline field errors.
func (m Model) renderFormModal() string {
	state := m.sess.State()
	title := "New Event"
	if state.Kind == session.StateEditing {
		title = "Edit Event"
	}

	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.styles.ModalMuted.Render(dateutil.DisplayDay(state.Day)))
	b.WriteString("\n\n")

	b.WriteString(m.renderFormField("Title", fieldTitle, "title"))
	b.WriteString(m.styles.ModalLabel.Render("Start") + "  " + m.form.inputs[fieldStart].View() +
		m.styles.ModalLabel.Render("   End") + "  " + m.form.inputs[fieldEnd].View() + "\n")
	if reason, ok := m.formErrors.ByField("time"); ok {
		b.WriteString(m.styles.ModalError.Render(reason) + "\n")
	}
	if reason, ok := m.formErrors.ByField("date"); ok {
		b.WriteString(m.styles.ModalError.Render(reason) + "\n")
	}
	b.WriteString(m.renderFormField("Location", fieldLocation, ""))
	b.WriteString(m.renderFormField("Description", fieldDescription, ""))
	b.WriteString(m.renderColorRow())

	b.WriteString("\n")
	b.WriteString(m.styles.ModalMuted.Render("enter save · tab next field · esc cancel"))
	if state.Kind == session.StateEditing {
		b.WriteString(m.styles.ModalMuted.Render(" · ctrl+d delete"))
	}
	return m.styles.ModalFrame.Render(b.String())
}

func (m Model) renderFormField(label string, field int, errField string) string {
	var b strings.Builder
	b.WriteString(m.styles.ModalLabel.Render(label))
	b.WriteString("\n")
	b.WriteString(m.form.inputs[field].View())
	b.WriteString("\n")
	if errField != "" {
		if reason, ok := m.formErrors.ByField(errField); ok {
			b.WriteString(m.styles.ModalError.Render(reason))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderColorRow renders the palette picker: the automatic slot followed
// by one swatch per palette entry.
func (m Model) renderColorRow() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalLabel.Render("Color"))
	if m.form.focus == fieldColor {
		b.WriteString(m.styles.ModalMuted.Render("  (left/right to change)"))
	}
	b.WriteString("\n")

	auto := "auto"
	if m.form.color == colorAuto {
		auto = "[auto]"
	}
	b.WriteString(m.styles.ModalBody.Render(auto))
	for i, hex := range m.theme.EventPalette {
		swatch := "  "
		if i == m.form.color {
			swatch = "██"
		}
		b.WriteString(" " + m.styles.Swatch(lipgloss.Color(hex), i == m.form.color).Render(swatch))
	}
	b.WriteString("\n")
	return b.String()
}

// renderConfirmModal renders the delete confirmation dialog.
func (m Model) renderConfirmModal() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render("Delete Event?"))
	b.WriteString("\n\n")
	if m.pendingDelete != nil {
		b.WriteString(m.styles.ModalBody.Render(fmt.Sprintf("%q", m.pendingDelete.Title)))
		b.WriteString("\n")
		b.WriteString(m.styles.ModalMuted.Render(m.pendingDelete.TimeRange() + " on " + dateutil.DisplayDay(m.pendingDelete.Date)))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.ModalBody.Render("This action cannot be undone."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.ModalMuted.Render("y delete · n cancel"))
	return m.styles.ModalFrame.Render(b.String())
}

// truncate shortens s to at most w cells, appending an ellipsis.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(r[:w-1]) + "…"
}
