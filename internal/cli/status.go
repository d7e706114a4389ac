package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newStatusCommand creates the status command for status transitions.
func newStatusCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status <task-id> <status>",
		Short:   "Change a task's status",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(2),
		Long: `Transition a task to a new status (todo, active, done).

The change is applied to the local view immediately and reverted if the
backend rejects it.

Examples:
  taskdeck status T-1 active
  taskdeck status T-1 done`,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return fmt.Errorf("invalid status %q (expected todo, active, or done)", args[1])
			}

			uc := c.UpdateStatusUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.UpdateStatusInput{
				TaskID: args[0],
				Status: status,
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s is now %s\n", args[0], status.Display())
			return nil
		},
	}
	return cmd
}

// newDeleteCommand creates the delete command for removing tasks.
func newDeleteCommand(c *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <task-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				ok, err := confirm(cmd, fmt.Sprintf("Delete task %s?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			uc := c.DeleteTaskUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{
				TaskID: args[0],
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without confirmation")

	return cmd
}

// confirm asks a yes/no question on the command's streams.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
	var answer string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &answer); err != nil {
		return false, nil
	}
	return answer == "y" || answer == "Y" || answer == "yes", nil
}
