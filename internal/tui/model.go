// Package tui is the interactive shell around the initiative tracker:
// a command line, a scrollback area for command output, the queue pane
// and a status bar.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/hexfall/rfi/internal/app"
	"github.com/hexfall/rfi/internal/tui/components/input"
	"github.com/hexfall/rfi/internal/tui/components/queueview"
	"github.com/hexfall/rfi/internal/tui/components/status"
	"github.com/hexfall/rfi/internal/tui/events"
	"github.com/hexfall/rfi/internal/tui/styles"
)

// Model is the top-level bubbletea model.
type Model struct {
	width  int
	height int

	viewport  viewport.Model
	queueView *queueview.Model
	inputLine *input.Model
	statusBar *status.Component
	help      help.Model
	keys      KeyMap

	app         *app.App
	eventBroker *events.Broker
	eventSub    <-chan events.Event

	// scrollback is everything printed so far, newest last.
	scrollback []string
}

// New creates the TUI model over an app instance.
func New(appInstance *app.App, eventBroker *events.Broker) *Model {
	styles.SetTheme(appInstance.Config.Theme)

	m := &Model{
		viewport:    viewport.New(),
		queueView:   queueview.New(),
		inputLine:   input.New(appInstance.Commands.Names()),
		statusBar:   status.New(),
		help:        help.New(),
		keys:        DefaultKeyMap(),
		app:         appInstance,
		eventBroker: eventBroker,
	}
	m.eventSub = eventBroker.Subscribe()
	m.scrollback = []string{banner()}
	return m
}

func banner() string {
	return fmt.Sprintf("rfi version %s\nType help to list available commands.\n\nRoll for initiative!", app.Version)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.inputLine.Init(),
		m.listenForEvents(),
	)
}

// listenForEvents waits for the next broker event.
func (m *Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		return <-m.eventSub
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.resize(msg.Width, msg.Height)

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case events.Event:
		return m.handleEvent(msg)
	}

	// Everything else (blinks, ticks, mouse) goes to the components.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	_, cmd = m.inputLine.Update(msg)
	cmds = append(cmds, cmd)
	_, cmd = m.statusBar.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		line := m.inputLine.Submit()
		m.app.Commands.Execute(line)
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		m.inputLine.Complete()
		return m, nil

	case key.Matches(msg, m.keys.HistoryPrev):
		m.inputLine.HistoryPrev()
		return m, nil

	case key.Matches(msg, m.keys.HistoryNext):
		m.inputLine.HistoryNext()
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown),
		key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		// Arrows and paging scroll the output area, like the viewport's
		// own bindings expect.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	_, cmd := m.inputLine.Update(msg)
	return m, cmd
}

func (m *Model) handleEvent(event events.Event) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.listenForEvents()}

	switch event.Type {
	case events.QueueUpdatedEvent:
		if p, ok := event.Payload.(events.QueuePayload); ok {
			m.queueView.SetState(p.Entries, p.CursorPos, p.CursorSet)
		}

	case events.OutputEvent:
		if p, ok := event.Payload.(events.OutputPayload); ok {
			m.appendOutput(p)
		}

	case events.StatusMessageEvent:
		if p, ok := event.Payload.(events.StatusPayload); ok {
			cmds = append(cmds, m.statusBar.Show(p.Message, p.Level))
		}

	case events.QuitEvent:
		return m, tea.Quit
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) appendOutput(p events.OutputPayload) {
	text := p.Text
	if p.Markdown {
		text = styles.RenderMarkdown(text, m.contentWidth())
	}
	m.scrollback = append(m.scrollback, text)
	m.viewport.SetContent(strings.Join(m.scrollback, "\n\n"))
	m.viewport.GotoBottom()
}

// contentWidth is the wrap width for scrollback text, capped by the
// configured table width.
func (m *Model) contentWidth() int {
	w := m.mainWidth()
	if limit := m.app.Config.MaxTableWidth; w > limit {
		w = limit
	}
	if w < 20 {
		w = 20
	}
	return w
}

// mainWidth is the width of the output column, next to the queue pane.
func (m *Model) mainWidth() int {
	w := m.width - m.sidebarWidth() - 1
	if w < 30 {
		w = 30
	}
	return w
}

// sidebarWidth sizes the queue pane: a quarter of the screen, within
// reason.
func (m *Model) sidebarWidth() int {
	w := m.width / 4
	if w < 24 {
		w = 24
	}
	if w > 40 {
		w = 40
	}
	return w
}

func (m *Model) resize(width, height int) tea.Cmd {
	m.width = width
	m.height = height

	mainWidth := m.mainWidth()
	viewportHeight := height - 3 // input line, status bar, spacer
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	m.viewport = viewport.New(
		viewport.WithWidth(mainWidth),
		viewport.WithHeight(viewportHeight),
	)
	m.viewport.MouseWheelEnabled = true
	m.viewport.SetContent(strings.Join(m.scrollback, "\n\n"))
	m.viewport.GotoBottom()

	m.help.Width = mainWidth
	m.statusBar.SetLeftContent(m.help.View(m.keys))

	return tea.Batch(
		m.inputLine.SetSize(mainWidth, 1),
		m.queueView.SetSize(m.sidebarWidth(), viewportHeight),
		m.statusBar.SetSize(width, 1),
	)
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("Loading...")
	}

	theme := styles.CurrentTheme()
	divider := lipgloss.NewStyle().
		Foreground(theme.Muted).
		Render(strings.Repeat("─", m.mainWidth()))

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		divider,
		m.inputLine.View(),
	)
	sidebar := lipgloss.NewStyle().
		PaddingLeft(1).
		Render(m.queueView.View())

	screen := lipgloss.JoinHorizontal(lipgloss.Top, left, sidebar)
	return tea.NewView(lipgloss.JoinVertical(lipgloss.Left, screen, m.statusBar.View()))
}
