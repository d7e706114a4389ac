package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Namespace string
		Status    string
		Domain    string
		All       bool
		Refresh   bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		GroupID: groupQuery,
		Long: `Display tasks matching the current namespace and filters.

Output format is tab-separated with columns:
  ID, STATUS, PRIORITY, PROGRESS, TITLE

Examples:
  # List tasks in the current namespace
  taskdeck list

  # List only active tasks
  taskdeck list --status active

  # List tasks across all namespaces
  taskdeck list --all

  # Bypass the local cache
  taskdeck list --refresh`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := defaultFilter(c)
			if cmd.Flags().Changed("namespace") {
				filter.Namespace = opts.Namespace
			}
			if opts.All {
				filter.Namespace = ""
			}
			if cmd.Flags().Changed("status") {
				status, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
				filter.Status = status
			}
			if cmd.Flags().Changed("domain") {
				filter.Domain = opts.Domain
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				Filter:  filter,
				Refresh: opts.Refresh,
			})
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks)
			if out.Total > len(out.Tasks) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d tasks shown\n", len(out.Tasks), out.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Namespace, "namespace", "n", "", "Namespace to list (default: current)")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Filter by status (todo, active, done)")
	cmd.Flags().StringVarP(&opts.Domain, "domain", "d", "", "Filter by domain")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "List tasks across all namespaces")
	cmd.Flags().BoolVarP(&opts.Refresh, "refresh", "r", false, "Bypass the local cache")

	return cmd
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []*domain.Task) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tPROGRESS\tTITLE")

	for _, task := range tasks {
		priority := "-"
		if task.Priority != "" {
			priority = task.Priority
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			task.Status.Display(),
			priority,
			formatProgress(task),
			task.Title,
		)
	}
}

// formatProgress renders step completion as "done/total", or "-" when the
// task has no steps.
func formatProgress(task *domain.Task) string {
	done, total := task.StepCounts()
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%d/%d", done, total)
}
