// Package styles holds the color themes and the markdown renderer used
// by the rfi TUI.
package styles

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
)

// Theme is a named set of colors.
type Theme struct {
	Name string

	Primary color.Color // prompt, table header
	Accent  color.Color // turn marker
	Muted   color.Color // borders, hints
	Error   color.Color
	Warning color.Color
}

var themes = map[string]Theme{
	"parchment": {
		Name:    "parchment",
		Primary: lipgloss.Color("179"),
		Accent:  lipgloss.Color("203"),
		Muted:   lipgloss.Color("241"),
		Error:   lipgloss.Color("160"),
		Warning: lipgloss.Color("214"),
	},
	"mono": {
		Name:    "mono",
		Primary: lipgloss.Color("252"),
		Accent:  lipgloss.Color("255"),
		Muted:   lipgloss.Color("240"),
		Error:   lipgloss.Color("250"),
		Warning: lipgloss.Color("248"),
	},
}

var current = themes["parchment"]

// SetTheme selects the active theme by name; unknown names keep the
// default.
func SetTheme(name string) {
	if t, ok := themes[name]; ok {
		current = t
	}
}

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	return current
}
