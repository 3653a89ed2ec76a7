// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Day cells, subtle highlight
	BgSelection string `toml:"bg_selection"` // Cursor, selection
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Adjacent-month days, muted elements
	Accent      string `toml:"accent"`       // Title, borders
	Today       string `toml:"today"`        // Today's day number
	Conflict    string `toml:"conflict"`     // Conflict indicator
	Error       string `toml:"error"`        // Validation messages

	// Palette cycled over a day's events when an event carries no color
	// of its own. Assignment is by position in the day bucket, so the
	// same event keeps the same color across renders.
	EventPalette []string `toml:"event_palette"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// defaultEventPalette matches the classic calendar swatches.
var defaultEventPalette = []string{
	"#4ECDC4", // teal
	"#45B7D1", // blue
	"#FF6B6B", // red
	"#96CEB4", // green
	"#FFEAA7", // yellow
	"#DDA0DD", // purple
	"#98D8C8", // mint
	"#FFB347", // orange
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	if len(t.EventPalette) == 0 {
		t.EventPalette = defaultEventPalette
	}

	return &t, nil
}

// EventColor returns the display color for the event at the given
// position in its day bucket: the event's own color when set, otherwise
// the palette entry for its slot.
func (t *Theme) EventColor(own string, position int) lipgloss.Color {
	if own != "" {
		return lipgloss.Color(own)
	}
	if position < 0 {
		position = 0
	}
	return lipgloss.Color(t.EventPalette[position%len(t.EventPalette)])
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
