package app

import (
	"fmt"
	"strings"

	"github.com/hexfall/rfi/internal/tui/events"
)

// Command describes one shell command: its usage line, help text and
// handler. The closed registry in commands.go is the whole command
// surface; dispatch is a map lookup, nothing dynamic.
type Command struct {
	Name  string
	Usage string
	Short string
	Help  string // markdown body for "help <name>"

	MinArgs int
	MaxArgs int

	Run func(s *CommandService, args []string) (string, error)
}

// CommandService parses command lines and runs them against the
// tracker, reporting results over the event broker.
type CommandService struct {
	app         *App
	eventBroker *events.Broker
	registry    []Command
	index       map[string]*Command
}

// NewCommandService creates the command service with the full registry.
func NewCommandService(app *App, eventBroker *events.Broker) *CommandService {
	s := &CommandService{
		app:         app,
		eventBroker: eventBroker,
		registry:    commands(),
	}
	s.index = make(map[string]*Command, len(s.registry))
	for i := range s.registry {
		s.index[s.registry[i].Name] = &s.registry[i]
	}
	return s
}

// Execute runs one command line. An empty line repeats "next". Errors
// never escape: they are reported on the status bar and the session
// continues.
func (s *CommandService) Execute(line string) {
	fields := strings.Fields(line)

	name := "next"
	var args []string
	if len(fields) > 0 {
		name = fields[0]
		args = fields[1:]
	}

	cmd, ok := s.index[name]
	if !ok {
		s.status(events.StatusWarning, "Unknown command: "+name)
		s.output(fmt.Sprintf("Unknown command: %s. Type help to list commands.", name), false)
		return
	}

	if len(args) < cmd.MinArgs || (cmd.MaxArgs >= 0 && len(args) > cmd.MaxArgs) {
		s.status(events.StatusWarning, "Invalid usage of "+cmd.Name)
		s.output(fmt.Sprintf("Invalid usage of %s.\nExpected usage: %s\nType help %s for more information.",
			cmd.Name, cmd.Usage, cmd.Name), false)
		return
	}

	out, err := cmd.Run(s, args)
	if err != nil {
		s.status(events.StatusError, err.Error())
		s.output("Error: "+err.Error(), false)
		return
	}

	s.publishQueue()
	if out != "" {
		s.output(out, cmd.Name == "help")
	}
}

// Names returns every command name, in help order. Used by the input
// completer.
func (s *CommandService) Names() []string {
	names := make([]string, len(s.registry))
	for i, c := range s.registry {
		names[i] = c.Name
	}
	return names
}

// publishQueue snapshots the queue and cursor for the queue view.
func (s *CommandService) publishQueue() {
	pos, ok := s.app.Tracker.CursorPosition()
	s.eventBroker.Publish(events.Event{
		Type: events.QueueUpdatedEvent,
		Payload: events.QueuePayload{
			Entries:   s.app.Tracker.Entries(),
			CursorPos: pos,
			CursorSet: ok,
		},
	})
}

func (s *CommandService) output(text string, markdown bool) {
	s.eventBroker.Publish(events.Event{
		Type:    events.OutputEvent,
		Payload: events.OutputPayload{Text: text, Markdown: markdown},
	})
}

func (s *CommandService) status(level events.StatusLevel, message string) {
	s.eventBroker.Publish(events.Event{
		Type:    events.StatusMessageEvent,
		Payload: events.StatusPayload{Message: message, Level: level},
	})
}

func (s *CommandService) quit() {
	s.eventBroker.Publish(events.Event{Type: events.QuitEvent})
}
