package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newStepCommand creates the step command for toggling step completion.
func newStepCommand(c *app.Container) *cobra.Command {
	var undone bool

	cmd := &cobra.Command{
		Use:     "step <task-id> <path>",
		Short:   "Mark a step done or not done",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(2),
		Long: `Set the completion flag of one step in a task's step tree.

The path is dot-separated indices into the tree, as printed by
'taskdeck show'. The top-level steps are 0, 1, 2, ...; a step inside the
first step's plan is 0.0, and so on.

Examples:
  # Mark the second top-level step done
  taskdeck step T-1 1

  # Mark a nested step done
  taskdeck step T-1 0.2

  # Un-mark a step
  taskdeck step T-1 0.2 --undone`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := domain.ParseStepPath(args[1])
			if err != nil {
				return fmt.Errorf("invalid step path %q", args[1])
			}

			uc := c.ToggleStepUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.ToggleStepInput{
				TaskID:    args[0],
				Path:      path,
				Completed: !undone,
			}); err != nil {
				return err
			}

			state := "done"
			if undone {
				state = "not done"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Step %s of task %s marked %s\n", path, args[0], state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&undone, "undone", false, "Mark the step not done instead")

	return cmd
}
