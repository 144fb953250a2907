package events

import "github.com/hexfall/rfi/internal/initiative"

// EventType identifies the type of event.
type EventType string

const (
	// QueueUpdatedEvent fires after any command that may have changed
	// the queue or the cursor.
	QueueUpdatedEvent EventType = "queue.updated"

	// OutputEvent carries text for the scrollback area (command
	// results, help pages, error lines).
	OutputEvent EventType = "ui.output"

	// StatusMessageEvent carries a one-line status bar message.
	StatusMessageEvent EventType = "ui.status"

	// QuitEvent asks the program to exit.
	QuitEvent EventType = "app.quit"
)

// Event is one message on the broker.
type Event struct {
	Type    EventType
	Payload any
}

// QueuePayload is a snapshot of the turn order plus the cursor.
type QueuePayload struct {
	Entries   []initiative.Entry
	CursorPos int
	CursorSet bool
}

// OutputPayload is text for the scrollback area. Markdown output is
// rendered by the UI with its current theme.
type OutputPayload struct {
	Text     string
	Markdown bool
}

// StatusLevel classifies a status message.
type StatusLevel string

const (
	StatusInfo    StatusLevel = "info"
	StatusWarning StatusLevel = "warning"
	StatusError   StatusLevel = "error"
)

// StatusPayload is a one-line status bar message.
type StatusPayload struct {
	Message string
	Level   StatusLevel
}
