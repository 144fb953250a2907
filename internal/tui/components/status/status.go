// Package status implements the one-line status bar: key hints on the
// left, transient command feedback on the right.
package status

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/hexfall/rfi/internal/tui/components/core"
	"github.com/hexfall/rfi/internal/tui/events"
	"github.com/hexfall/rfi/internal/tui/styles"
)

// message is a transient status line entry.
type message struct {
	content   string
	level     events.StatusLevel
	timestamp time.Time
}

// Component is the status bar.
type Component struct {
	message     *message
	leftContent string
	width       int

	clearAfter time.Duration
}

var _ core.Component = (*Component)(nil)
var _ core.Sizeable = (*Component)(nil)

// New creates a status bar. Messages fade after a few seconds.
func New() *Component {
	return &Component{clearAfter: 5 * time.Second}
}

// Show displays a message, returning the command that clears it later.
func (c *Component) Show(content string, level events.StatusLevel) tea.Cmd {
	c.message = &message{
		content:   content,
		level:     level,
		timestamp: time.Now(),
	}
	stamp := c.message.timestamp
	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{timestamp: stamp}
	})
}

// SetLeftContent sets the persistent left side (key hints).
func (c *Component) SetLeftContent(content string) {
	c.leftContent = content
}

// clearMessageMsg is sent when a status message should fade.
type clearMessageMsg struct {
	timestamp time.Time
}

// Init implements core.Component.
func (c *Component) Init() tea.Cmd {
	return nil
}

// Update implements core.Component.
func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m, ok := msg.(clearMessageMsg); ok {
		// Only clear if the fade belongs to the current message.
		if c.message != nil && m.timestamp.Equal(c.message.timestamp) {
			c.message = nil
		}
	}
	return c, nil
}

// SetSize implements core.Sizeable.
func (c *Component) SetSize(width, _ int) tea.Cmd {
	c.width = width
	return nil
}

// View implements core.Component.
func (c *Component) View() string {
	if c.width == 0 {
		return ""
	}
	theme := styles.CurrentTheme()

	bar := lipgloss.NewStyle().
		Width(c.width).
		Foreground(theme.Muted).
		Padding(0, 1)

	left := c.leftContent
	right := ""
	if c.message != nil {
		style := lipgloss.NewStyle()
		switch c.message.level {
		case events.StatusError:
			style = style.Foreground(theme.Error).Bold(true)
		case events.StatusWarning:
			style = style.Foreground(theme.Warning)
		default:
			style = style.Foreground(theme.Primary)
		}
		right = style.Render(c.message.content)
	}

	gap := c.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return bar.Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)
}
