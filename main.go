// Command rfi is an interactive initiative tracker for tabletop games.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/hexfall/rfi/internal/app"
	"github.com/hexfall/rfi/internal/config"
	"github.com/hexfall/rfi/internal/tui"
	"github.com/hexfall/rfi/internal/tui/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rfi: %v\n", err)
		os.Exit(1)
	}

	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "rfi")
		if err != nil {
			fmt.Fprintf(os.Stderr, "rfi: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	eventBroker := events.NewBroker()
	application := app.New(cfg, eventBroker)

	p := tea.NewProgram(tui.New(application, eventBroker), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "rfi: %v\n", err)
		os.Exit(1)
	}
}
