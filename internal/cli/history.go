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

// newHistoryCommand creates the history command for listing past operations.
func newHistoryCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Limit   int
		Refresh bool
	}

	cmd := &cobra.Command{
		Use:     "history",
		Short:   "Show operation history",
		GroupID: groupQuery,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.GetHistoryUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.GetHistoryInput{
				Namespace: currentNamespace(c),
				Limit:     opts.Limit,
				Refresh:   opts.Refresh,
			})
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), out.Entries)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", usecase.DefaultHistoryLimit, "Maximum entries to show")
	cmd.Flags().BoolVarP(&opts.Refresh, "refresh", "r", false, "Bypass the local cache")

	return cmd
}

// printHistory prints history entries in TSV format.
func printHistory(w io.Writer, entries []domain.HistoryEntry) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "No history")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "TIME\tOPERATION\tTASK\tSTATE")
	for _, e := range entries {
		state := "applied"
		if e.Undone {
			state = "undone"
		}
		task := e.TaskID
		if task == "" {
			task = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			e.Time.Format("2006-01-02 15:04"),
			e.Intent,
			task,
			state,
		)
	}
}

// newUndoCommand creates the undo command.
func newUndoCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "undo",
		Short:   "Undo the last operation",
		GroupID: groupTask,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.UndoUseCase()
			_, err := uc.Execute(cmd.Context(), usecase.UndoInput{
				Namespace: currentNamespace(c),
			})
			return err
		},
	}
	return cmd
}

// newRedoCommand creates the redo command.
func newRedoCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "redo",
		Short:   "Redo the last undone operation",
		GroupID: groupTask,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.RedoUseCase()
			_, err := uc.Execute(cmd.Context(), usecase.RedoInput{
				Namespace: currentNamespace(c),
			})
			return err
		},
	}
	return cmd
}
