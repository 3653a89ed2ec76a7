package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jvaldivia/almanac/internal/tui/theme"
)

// Styles holds precomputed lipgloss styles derived from a theme.
type Styles struct {
	theme *theme.Theme

	Title         lipgloss.Style
	WeekdayHeader lipgloss.Style
	StatusBar     lipgloss.Style
	Help          lipgloss.Style

	DayNumber      lipgloss.Style
	DayNumberToday lipgloss.Style
	DayCell        lipgloss.Style
	DayCellCursor  lipgloss.Style
	ConflictMark   lipgloss.Style
	MoreEvents     lipgloss.Style

	ModalFrame  lipgloss.Style
	ModalTitle  lipgloss.Style
	ModalLabel  lipgloss.Style
	ModalBody   lipgloss.Style
	ModalMuted  lipgloss.Style
	ModalError  lipgloss.Style
	SelectedRow lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	accent := theme.Color(t.Accent)
	fg := theme.Color(t.Fg)
	muted := theme.Color(t.FgMuted)

	return &Styles{
		theme: t,

		Title:         lipgloss.NewStyle().Foreground(accent).Bold(true),
		WeekdayHeader: lipgloss.NewStyle().Foreground(muted).Bold(true),
		StatusBar:     lipgloss.NewStyle().Foreground(fg),
		Help:          lipgloss.NewStyle().Foreground(muted),

		DayNumber:      lipgloss.NewStyle().Foreground(fg),
		DayNumberToday: lipgloss.NewStyle().Foreground(theme.Color(t.Today)).Bold(true),
		DayCell:        lipgloss.NewStyle().Background(theme.Color(t.BgHighlight)),
		DayCellCursor:  lipgloss.NewStyle().Background(theme.Color(t.BgSelection)),
		ConflictMark:   lipgloss.NewStyle().Foreground(theme.Color(t.Conflict)).Bold(true),
		MoreEvents:     lipgloss.NewStyle().Foreground(muted).Italic(true),

		ModalFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		ModalTitle:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		ModalLabel:  lipgloss.NewStyle().Foreground(muted),
		ModalBody:   lipgloss.NewStyle().Foreground(fg),
		ModalMuted:  lipgloss.NewStyle().Foreground(muted),
		ModalError:  lipgloss.NewStyle().Foreground(theme.Color(t.Error)),
		SelectedRow: lipgloss.NewStyle().Background(theme.Color(t.BgSelection)),
	}
}

// EventChip returns the style for an event chip in the given color.
func (s *Styles) EventChip(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(c).Foreground(theme.Color(s.theme.Bg))
}

// Swatch returns the style for a palette swatch in the color picker.
func (s *Styles) Swatch(c lipgloss.Color, active bool) lipgloss.Style {
	st := lipgloss.NewStyle().Background(c)
	if active {
		st = st.Bold(true).Foreground(theme.Color(s.theme.Fg))
	}
	return st
}
