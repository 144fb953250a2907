// Package core defines the small contracts shared by TUI components.
package core

import tea "github.com/charmbracelet/bubbletea/v2"

// Component is the base interface for all TUI components.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (tea.Model, tea.Cmd)
	View() string
}

// Sizeable components can be resized.
type Sizeable interface {
	SetSize(width, height int) tea.Cmd
}
