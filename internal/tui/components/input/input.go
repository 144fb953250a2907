// Package input is the command line at the bottom of the screen:
// a single-line prompt with command-name completion and history recall.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textarea"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/hexfall/rfi/internal/tui/components/core"
	"github.com/hexfall/rfi/internal/tui/styles"
)

const maxHistory = 100

// Model wraps a one-line textarea with history and completion state.
type Model struct {
	text     textarea.Model
	commands []string

	history    []string
	historyPos int // len(history) means "past the newest entry"

	// completion cycling state
	completeMatches []string
	completeIdx     int

	width int
}

var _ core.Component = (*Model)(nil)
var _ core.Sizeable = (*Model)(nil)

// New creates the command line. commands feeds completion.
func New(commands []string) *Model {
	ta := textarea.New()
	ta.Placeholder = "Type a command, or help"
	ta.Prompt = "> "
	ta.CharLimit = -1
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	return &Model{
		text:     ta,
		commands: commands,
	}
}

// Init implements core.Component.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update forwards messages to the underlying textarea. Any edit resets
// the completion cycle.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	before := m.text.Value()
	m.text, cmd = m.text.Update(msg)
	if m.text.Value() != before {
		m.completeMatches = nil
	}
	return m, cmd
}

// Value returns the current line.
func (m *Model) Value() string {
	return m.text.Value()
}

// Submit returns the current line, records it in history and clears the
// prompt.
func (m *Model) Submit() string {
	line := m.text.Value()
	m.text.Reset()
	m.completeMatches = nil

	trimmed := strings.TrimSpace(line)
	if trimmed != "" && (len(m.history) == 0 || m.history[len(m.history)-1] != trimmed) {
		m.history = append(m.history, trimmed)
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
	}
	m.historyPos = len(m.history)
	return line
}

// HistoryPrev recalls the previous submitted line.
func (m *Model) HistoryPrev() {
	if m.historyPos == 0 {
		return
	}
	m.historyPos--
	m.text.SetValue(m.history[m.historyPos])
}

// HistoryNext walks back toward the newest line, clearing the prompt
// once past it.
func (m *Model) HistoryNext() {
	if m.historyPos >= len(m.history) {
		return
	}
	m.historyPos++
	if m.historyPos == len(m.history) {
		m.text.Reset()
		return
	}
	m.text.SetValue(m.history[m.historyPos])
}

// Complete cycles through command names matching the typed prefix. It
// only fires while the first word is being typed.
func (m *Model) Complete() {
	line := m.text.Value()
	if strings.Contains(strings.TrimSpace(line), " ") {
		return
	}

	if len(m.completeMatches) > 0 {
		// Repeated tab: advance the cycle.
		m.completeIdx = (m.completeIdx + 1) % len(m.completeMatches)
		m.text.SetValue(m.completeMatches[m.completeIdx])
		return
	}

	prefix := strings.TrimSpace(line)
	var matches []string
	for _, name := range m.commands {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 0 {
		return
	}
	m.completeMatches = matches
	m.completeIdx = 0
	m.text.SetValue(matches[0])
}

// SetSize implements core.Sizeable.
func (m *Model) SetSize(width, _ int) tea.Cmd {
	m.width = width
	m.text.SetWidth(width)
	return nil
}

// View renders the prompt line.
func (m *Model) View() string {
	theme := styles.CurrentTheme()
	return lipgloss.NewStyle().Foreground(theme.Primary).Render(m.text.View())
}
