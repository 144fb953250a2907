package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hexfall/rfi/internal/dice"
	"github.com/hexfall/rfi/internal/initiative"
)

// commands returns the full command registry, in the order help lists
// them.
func commands() []Command {
	return []Command{
		{
			Name:  "help",
			Usage: "help [command]",
			Short: "Display help for one or all commands",
			Help: "If a command name is given, show its full help page;" +
				" otherwise show the overview of all commands.\n\n" +
				"Examples:\n\n```\nhelp\nhelp add\nhelp help\n```",
			MinArgs: 0, MaxArgs: 1,
			Run: runHelp,
		},
		{
			Name:  "add",
			Usage: "add {name} {init_expr}",
			Short: "Add entry to initiative order",
			Help: "The initiative expression may be a dice expression or a" +
				" constant. Entries tied on initiative keep their insertion" +
				" order; use `move` to rearrange them.\n\n" +
				"Examples:\n\n```\nadd Buzz 1d20+1\nadd Explictica 15\n```",
			MinArgs: 2, MaxArgs: 2,
			Run: runAdd,
		},
		{
			Name:    "remove",
			Usage:   "remove {name}",
			Short:   "Remove an entry from initiative order",
			Help:    "Examples:\n\n```\nremove Elyn\n```",
			MinArgs: 1, MaxArgs: 1,
			Run: runRemove,
		},
		{
			Name:  "show",
			Usage: "show",
			Short: "Show current state of the initiative queue",
			Help:  "Redraws the queue pane. Useful after scrolling the output away.",
			Run:   runShow,
		},
		{
			Name:  "start",
			Usage: "start",
			Short: "Point the turn marker at the first entry",
			Help: "Starts the round: the turn marker lands on the entry with" +
				" the highest initiative. Use `next` and `prev` to step.",
			Run: runStart,
		},
		{
			Name:  "reset",
			Usage: "reset",
			Short: "Return the turn marker to the top",
			Help: "Only valid once `start` has been used at some point in the" +
				" session.",
			Run: runReset,
		},
		{
			Name:  "removeall",
			Usage: "removeall",
			Short: "Remove all entries of the initiative queue",
			Help:  "Empties the queue. The turn marker is cleared until the next `start` or `reset`.",
			Run:   runRemoveall,
		},
		{
			Name:  "next",
			Usage: "next",
			Short: "Advance the turn marker to the next entry",
			Help: "Wraps around to the top after the last entry. Pressing" +
				" enter on an empty line also runs `next`.",
			Run: runNext,
		},
		{
			Name:  "prev",
			Usage: "prev",
			Short: "Move the turn marker back one entry",
			Help:  "Wraps around to the bottom before the first entry.",
			Run:   runPrev,
		},
		{
			Name:    "chname",
			Usage:   "chname {current_name} {new_name}",
			Short:   "Rename an existing entry",
			Help:    "The entry keeps its position.\n\nExamples:\n\n```\nchname Monster1 Troglodyte\n```",
			MinArgs: 2, MaxArgs: 2,
			Run: runChname,
		},
		{
			Name:  "chinit",
			Usage: "chinit {name} {init_expr}",
			Short: "Reassign initiative to an existing entry",
			Help: "The entry is re-ranked as the most recent arrival at its" +
				" new initiative.\n\nExamples:\n\n```\nchinit Monster1 14\nchinit Tasha 1d20+3\n```",
			MinArgs: 2, MaxArgs: 2,
			Run: runChinit,
		},
		{
			Name:  "move",
			Usage: "move {name} (up|down)",
			Short: "Reorder entries with tied initiative",
			Help: "Only valid between entries whose initiative is tied.\n\n" +
				"Examples:\n\n```\nmove Elyn up\nmove Isis down\n```",
			MinArgs: 2, MaxArgs: 2,
			Run: runMove,
		},
		{
			Name:  "version",
			Usage: "version",
			Short: "Show version information",
			Help:  "Prints the rfi version.",
			Run:   runVersion,
		},
		{
			Name:  "quit",
			Usage: "quit",
			Short: "Quit rfi",
			Help:  "Ends the session. Nothing is persisted.",
			Run:   runQuit,
		},
	}
}

func runHelp(s *CommandService, args []string) (string, error) {
	if len(args) == 0 {
		return s.helpOverview(), nil
	}

	cmd, ok := s.index[args[0]]
	if !ok {
		return "", fmt.Errorf("no help available for command %s", args[0])
	}
	return fmt.Sprintf("## %s\n\nUsage: `%s`\n\n%s\n\n%s",
		cmd.Name, cmd.Usage, cmd.Short+".", cmd.Help), nil
}

func (s *CommandService) helpOverview() string {
	var b strings.Builder
	b.WriteString("## Commands\n\n| Command | Description | Usage |\n| --- | --- | --- |\n")
	for _, c := range s.registry {
		fmt.Fprintf(&b, "| %s | %s | `%s` |\n", c.Name, c.Short, c.Usage)
	}
	b.WriteString("\nType `help {command}` for more information about a specific command.\n")
	return b.String()
}

func runAdd(s *CommandService, args []string) (string, error) {
	name, expr := args[0], args[1]

	// Validate before rolling so a duplicate name doesn't burn a roll.
	if s.app.Tracker.Contains(name) {
		return "", fmt.Errorf("%w: %s", initiative.ErrDuplicateName, name)
	}
	parsed, err := dice.Parse(expr)
	if err != nil {
		return "", err
	}

	value := s.app.Roller.Eval(parsed)
	if err := s.app.Tracker.Add(name, value); err != nil {
		return "", err
	}
	if parsed.IsConstant {
		return fmt.Sprintf("Added %s at initiative %d.", name, value), nil
	}
	return fmt.Sprintf("Rolled %d on %s. Added %s at initiative %d.", value, expr, name, value), nil
}

func runRemove(s *CommandService, args []string) (string, error) {
	if err := s.app.Tracker.Remove(args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Removed %s.", args[0]), nil
}

func runShow(s *CommandService, _ []string) (string, error) {
	if s.app.Tracker.Empty() {
		return "Empty initiative queue.", nil
	}
	return "", nil
}

func runStart(s *CommandService, _ []string) (string, error) {
	s.app.Tracker.Start()
	return s.turnLine(), nil
}

func runReset(s *CommandService, _ []string) (string, error) {
	if err := s.app.Tracker.Reset(); err != nil {
		return "", fmt.Errorf("nothing to reset, start was not used (%w)", err)
	}
	return s.turnLine(), nil
}

func runRemoveall(s *CommandService, _ []string) (string, error) {
	s.app.Tracker.Clear()
	return "Removed all entries.", nil
}

func runNext(s *CommandService, _ []string) (string, error) {
	if err := s.app.Tracker.Next(); err != nil {
		return "", fmt.Errorf("attempt to move turn marker before call to start (%w)", err)
	}
	return s.turnLine(), nil
}

func runPrev(s *CommandService, _ []string) (string, error) {
	if err := s.app.Tracker.Prev(); err != nil {
		return "", fmt.Errorf("attempt to move turn marker before call to start (%w)", err)
	}
	return s.turnLine(), nil
}

func runChname(s *CommandService, args []string) (string, error) {
	if err := s.app.Tracker.Rename(args[0], args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Renamed %s to %s.", args[0], args[1]), nil
}

func runChinit(s *CommandService, args []string) (string, error) {
	name, expr := args[0], args[1]

	if !s.app.Tracker.Contains(name) {
		return "", fmt.Errorf("%w: %s", initiative.ErrNameNotFound, name)
	}
	parsed, err := dice.Parse(expr)
	if err != nil {
		return "", err
	}

	value := s.app.Roller.Eval(parsed)
	if err := s.app.Tracker.Update(name, value); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s is now at initiative %d.", name, value), nil
}

func runMove(s *CommandService, args []string) (string, error) {
	name := args[0]
	switch args[1] {
	case "up":
		if err := s.app.Tracker.MoveUp(name); err != nil {
			return "", err
		}
	case "down":
		if err := s.app.Tracker.MoveDown(name); err != nil {
			return "", err
		}
	default:
		return "", errors.New("direction must be up or down")
	}
	return fmt.Sprintf("Moved %s %s.", name, args[1]), nil
}

func runVersion(_ *CommandService, _ []string) (string, error) {
	return "rfi version " + Version, nil
}

func runQuit(s *CommandService, _ []string) (string, error) {
	s.quit()
	return "", nil
}

// turnLine names the entry the turn marker points at.
func (s *CommandService) turnLine() string {
	pos, ok := s.app.Tracker.CursorPosition()
	if !ok {
		return "Empty initiative queue."
	}
	e, err := s.app.Tracker.At(pos)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s's turn.", e.Name)
}
