package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/tui"
)

// launchTUIFunc is a function variable so tests can stub the TUI launch.
var launchTUIFunc = launchTUI

// newTUICommand creates the tui command for launching the interactive TUI.
// Running taskdeck without a subcommand does the same thing.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for managing tasks.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
	return cmd
}

// launchTUI starts the bubbletea program on the alternate screen.
func launchTUI(c *app.Container) error {
	model := tui.NewApp(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
