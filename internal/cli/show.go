package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newShowCommand creates the show command for displaying task details.
func newShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Domain  string
		Refresh bool
	}

	cmd := &cobra.Command{
		Use:     "show <task-id>",
		Short:   "Show task details",
		GroupID: groupQuery,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{
				TaskID:  args[0],
				Domain:  opts.Domain,
				Refresh: opts.Refresh,
			})
			if err != nil {
				return err
			}
			printTaskDetail(cmd.OutOrStdout(), out.Task)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Domain, "domain", "d", "", "Domain to resolve the task in")
	cmd.Flags().BoolVarP(&opts.Refresh, "refresh", "r", false, "Bypass the local cache")

	return cmd
}

// printTaskDetail prints a full task view including the step tree.
func printTaskDetail(w io.Writer, task *domain.Task) {
	_, _ = fmt.Fprintf(w, "%s %s\n", task.Status.Glyph(), task.Title)
	_, _ = fmt.Fprintf(w, "ID:        %s\n", task.ID)
	_, _ = fmt.Fprintf(w, "Status:    %s\n", task.Status.Display())
	if task.Namespace != "" {
		_, _ = fmt.Fprintf(w, "Namespace: %s\n", task.Namespace)
	}
	if task.Priority != "" {
		_, _ = fmt.Fprintf(w, "Priority:  %s\n", task.Priority)
	}
	if len(task.Tags) > 0 {
		_, _ = fmt.Fprintf(w, "Tags:      [%s]\n", strings.Join(task.Tags, ", "))
	}
	if task.Created != nil {
		_, _ = fmt.Fprintf(w, "Created:   %s\n", task.Created.Format("2006-01-02 15:04"))
	}
	if task.Updated != nil {
		_, _ = fmt.Fprintf(w, "Updated:   %s\n", task.Updated.Format("2006-01-02 15:04"))
	}
	if task.Description != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", task.Description)
	}
	if len(task.Steps) > 0 {
		done, total := task.StepCounts()
		_, _ = fmt.Fprintf(w, "\nSteps (%d/%d, %d%%):\n", done, total, task.Progress())
		printSteps(w, task.Steps, nil)
	}
}

// printSteps renders the step tree with dot-path prefixes, so the printed
// path can be fed straight back into `taskdeck step`.
func printSteps(w io.Writer, steps []domain.Step, prefix domain.StepPath) {
	for i, step := range steps {
		path := append(append(domain.StepPath(nil), prefix...), i)
		mark := " "
		if step.Completed {
			mark = "x"
		}
		indent := strings.Repeat("  ", len(prefix))
		_, _ = fmt.Fprintf(w, "%s[%s] %s  %s\n", indent, mark, path.String(), step.Title)
		if step.Plan != nil && len(step.Plan.Steps) > 0 {
			printSteps(w, step.Plan.Steps, path)
		}
	}
}
