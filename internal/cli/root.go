// Package cli provides the command-line interface for taskdeck.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupQuery = "query"
	groupAdmin = "admin"
)

// NewRootCommand creates the root command for taskdeck.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "Task tracking client",
		Long: `taskdeck is a client for a task-tracking backend. It talks to the
backend over stdio and keeps query results in a local cache so reads
stay responsive while mutations settle remotely.

Running taskdeck without a subcommand launches the interactive TUI.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Default: launch the TUI
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupQuery, Title: "Query Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupAdmin, Title: "Admin Commands:"},
	)

	root.AddCommand(
		newListCommand(c),
		newShowCommand(c),
		newHistoryCommand(c),
		newCreateCommand(c),
		newEditCommand(c),
		newStatusCommand(c),
		newDeleteCommand(c),
		newStepCommand(c),
		newUndoCommand(c),
		newRedoCommand(c),
		newNamespacesCommand(c),
		newStorageCommand(c),
		newConfigCommand(c),
		newTUICommand(c),
	)

	return root
}
