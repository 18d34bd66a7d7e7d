package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/keyup/internal/keyup"
	"github.com/renato0307/keyup/internal/logging"
	"github.com/renato0307/keyup/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	ShowHelp bool `help:"Show the full key binding help on start" default:"false"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if !r.ShowHelp && cli.settings != nil && cli.settings.ShowHelp != nil {
		r.ShowHelp = *cli.settings.ShowHelp
	}

	keysConfig, err := cli.keyBindings()
	if err != nil {
		return err
	}

	window := keyup.NewWindow()
	lifetime := keyup.NewLifetime()
	// Covers every exit path; the model closes it first on a normal quit
	defer lifetime.Close()

	model, err := ui.NewModel(window, lifetime, keysConfig, r.ShowHelp)
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting TUI program")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
