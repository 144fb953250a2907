// Package queueview renders the initiative order as a table with a
// marker on the entry whose turn is current.
package queueview

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/hexfall/rfi/internal/initiative"
	"github.com/hexfall/rfi/internal/tui/components/core"
	"github.com/hexfall/rfi/internal/tui/styles"
)

// Model holds the latest queue snapshot.
type Model struct {
	entries   []initiative.Entry
	cursorPos int
	cursorSet bool

	width  int
	height int
}

var _ core.Component = (*Model)(nil)
var _ core.Sizeable = (*Model)(nil)

// New creates an empty queue view.
func New() *Model {
	return &Model{}
}

// SetState replaces the rendered snapshot.
func (m *Model) SetState(entries []initiative.Entry, cursorPos int, cursorSet bool) {
	m.entries = entries
	m.cursorPos = cursorPos
	m.cursorSet = cursorSet
}

// Init implements core.Component.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements core.Component. The view is display-only.
func (m *Model) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// SetSize implements core.Sizeable.
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	return nil
}

// View renders the queue table.
func (m *Model) View() string {
	theme := styles.CurrentTheme()

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Primary).
		Render("Initiative")

	if len(m.entries) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(theme.Muted).
			Render("Empty initiative queue.")
		return lipgloss.JoinVertical(lipgloss.Left, title, "", empty)
	}

	markerStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Padding(0, 1)
	currentStyle := rowStyle.Foreground(theme.Accent).Bold(true)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if m.cursorSet && row == m.cursorPos {
				return currentStyle
			}
			return rowStyle
		})
	if m.width > 0 {
		t = t.Width(m.width)
	}

	for pos, e := range m.entries {
		marker := " "
		if m.cursorSet && pos == m.cursorPos {
			marker = markerStyle.Render("▶")
		}
		t = t.Row(marker, strconv.Itoa(e.Priority), e.Name)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render())
}
