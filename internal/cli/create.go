package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newCreateCommand creates the create command for creating tasks.
func newCreateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Tags        []string
		From        string
		DryRun      bool
	}

	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"new"},
		Short:   "Create a new task",
		GroupID: groupTask,
		Long: `Create one or more tasks.

Examples:
  # Create a single task
  taskdeck create --title "Write quarterly report"

  # Create a task with metadata
  taskdeck create --title "Fix login bug" --priority high --tag bug

  # Create tasks from a YAML file
  taskdeck create --from tasks.yaml

  # Preview tasks from a file without creating
  taskdeck create --from tasks.yaml --dry-run

File format for --from (a bare list or a document with a tasks key):
  - title: Task 1
    priority: high
    tags: [backend]
  - title: Task 2
    description: |
      Longer body here.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var drafts []domain.TaskDraft
			if opts.From != "" {
				content, err := os.ReadFile(opts.From)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				drafts, err = domain.ParseTaskDrafts(content)
				if err != nil {
					return err
				}
			} else {
				if opts.Title == "" {
					return fmt.Errorf("required flag(s) \"title\" not set")
				}
				drafts = []domain.TaskDraft{{
					Title:       opts.Title,
					Description: opts.Description,
					Priority:    opts.Priority,
					Tags:        opts.Tags,
				}}
			}

			// Drafts without an explicit namespace land in the current one.
			if ns := currentNamespace(c); ns != "" {
				for i := range drafts {
					if drafts[i].Namespace == "" {
						drafts[i].Namespace = ns
					}
				}
			}

			uc := c.CreateTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CreateTasksInput{
				Drafts: drafts,
				DryRun: opts.DryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.DryRun {
				_, _ = fmt.Fprintf(w, "Dry run - %d task(s) would be created:\n", len(drafts))
				for i, d := range drafts {
					_, _ = fmt.Fprintf(w, "  %d. %s", i+1, d.Title)
					if len(d.Tags) > 0 {
						_, _ = fmt.Fprintf(w, " [%s]", strings.Join(d.Tags, ", "))
					}
					_, _ = fmt.Fprintln(w)
				}
				return nil
			}

			for _, task := range out.Tasks {
				_, _ = fmt.Fprintf(w, "Created task %s: %s\n", task.ID, task.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title (required unless --from is used)")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Task priority")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "Tags (can specify multiple)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Create tasks from a YAML file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Validate without creating")

	return cmd
}
