package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jvaldivia/almanac/internal/event"
)

// Form field indices. fieldColor is a palette row, not a text input.
const (
	fieldTitle = iota
	fieldStart
	fieldEnd
	fieldLocation
	fieldDescription
	fieldColor
	fieldCount
)

// colorAuto selects palette assignment by list position instead of a
// stored color.
const colorAuto = -1

// eventForm holds the create/edit form state.
type eventForm struct {
	inputs []textinput.Model
	focus  int
	color  int // palette index, or colorAuto
}

func newEventForm() eventForm {
	inputs := make([]textinput.Model, fieldColor)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 256
		inputs[i].Width = 32
	}
	inputs[fieldTitle].Placeholder = "Event title"
	inputs[fieldStart].Placeholder = "HH:MM"
	inputs[fieldStart].CharLimit = 5
	inputs[fieldStart].Width = 5
	inputs[fieldEnd].Placeholder = "HH:MM"
	inputs[fieldEnd].CharLimit = 5
	inputs[fieldEnd].Width = 5
	inputs[fieldLocation].Placeholder = "Location (optional)"
	inputs[fieldDescription].Placeholder = "Description (optional)"

	f := eventForm{inputs: inputs, color: colorAuto}
	f.inputs[fieldTitle].Focus()
	return f
}

// prefill seeds the form for a new event with the configured defaults.
func (f *eventForm) prefill(start, end string) {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.inputs[fieldStart].SetValue(start)
	f.inputs[fieldEnd].SetValue(end)
	f.color = colorAuto
	f.setFocus(fieldTitle)
}

// load seeds the form from an existing event for editing.
func (f *eventForm) load(ev event.Event, palette []string) {
	f.inputs[fieldTitle].SetValue(ev.Title)
	f.inputs[fieldStart].SetValue(ev.StartTime)
	f.inputs[fieldEnd].SetValue(ev.EndTime)
	f.inputs[fieldLocation].SetValue(ev.Location)
	f.inputs[fieldDescription].SetValue(ev.Description)
	f.color = colorAuto
	for i, c := range palette {
		if c == ev.Color {
			f.color = i
			break
		}
	}
	f.setFocus(fieldTitle)
}

// draft assembles the form contents into a repository draft.
func (f *eventForm) draft(date string, palette []string) event.Draft {
	color := ""
	if f.color >= 0 && f.color < len(palette) {
		color = palette[f.color]
	}
	return event.Draft{
		Date:        date,
		Title:       f.inputs[fieldTitle].Value(),
		StartTime:   f.inputs[fieldStart].Value(),
		EndTime:     f.inputs[fieldEnd].Value(),
		Location:    f.inputs[fieldLocation].Value(),
		Description: f.inputs[fieldDescription].Value(),
		Color:       color,
	}
}

func (f *eventForm) setFocus(field int) {
	f.focus = field
	for i := range f.inputs {
		if i == field {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *eventForm) focusNext() {
	f.setFocus((f.focus + 1) % fieldCount)
}

func (f *eventForm) focusPrev() {
	f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

// cycleColor moves the palette selection; delta is -1 or 1. The cycle
// includes the automatic slot before the first palette entry.
func (f *eventForm) cycleColor(delta, paletteLen int) {
	n := paletteLen + 1 // palette entries plus the automatic slot
	idx := f.color + 1  // shift so colorAuto becomes 0
	idx = (idx + delta + n) % n
	f.color = idx - 1
}

// update forwards a message to the focused text input.
func (f *eventForm) update(msg tea.Msg) tea.Cmd {
	if f.focus < 0 || f.focus >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
