package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newEditCommand creates the edit command for partial task updates.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Context     string
		Priority    string
		Tags        []string
	}

	cmd := &cobra.Command{
		Use:     "edit <task-id>",
		Short:   "Edit task fields",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		Long: `Update fields of an existing task. Only the flags you pass are
changed; everything else is left as is.

Examples:
  taskdeck edit T-1 --title "New title"
  taskdeck edit T-1 --priority high --tag urgent --tag q3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &opts.Title
			}
			if cmd.Flags().Changed("body") {
				patch.Description = &opts.Description
			}
			if cmd.Flags().Changed("context") {
				patch.Context = &opts.Context
			}
			if cmd.Flags().Changed("priority") {
				patch.Priority = &opts.Priority
			}
			if cmd.Flags().Changed("tag") {
				patch.Tags = &opts.Tags
			}

			uc := c.EditTaskUseCase()
			if _, err := uc.Execute(cmd.Context(), usecase.EditTaskInput{
				TaskID: args[0],
				Patch:  patch,
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New description")
	cmd.Flags().StringVar(&opts.Context, "context", "", "New context")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "New priority")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "Replace tags (can specify multiple)")

	return cmd
}
