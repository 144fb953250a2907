// Package app wires the initiative tracker, the dice roller and the
// command dispatch together behind the TUI.
package app

import (
	"github.com/hexfall/rfi/internal/config"
	"github.com/hexfall/rfi/internal/dice"
	"github.com/hexfall/rfi/internal/initiative"
	"github.com/hexfall/rfi/internal/tui/events"
)

// Version is the rfi release version, shown in the banner and by the
// version command.
const Version = "0.4.1"

// App holds the services behind one interactive session.
type App struct {
	Tracker  *initiative.Tracker
	Roller   *dice.Roller
	Commands *CommandService
	Config   config.Config

	EventBroker *events.Broker
}

// New creates an app with all services initialized.
func New(cfg config.Config, eventBroker *events.Broker) *App {
	a := &App{
		Tracker:     initiative.NewTracker(),
		Roller:      dice.New(cfg.Seed),
		Config:      cfg,
		EventBroker: eventBroker,
	}
	a.Commands = NewCommandService(a, eventBroker)
	return a
}
