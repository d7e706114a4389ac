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

// newNamespacesCommand creates the namespaces command.
func newNamespacesCommand(c *app.Container) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:     "namespaces",
		Aliases: []string{"ns"},
		Short:   "List namespaces",
		GroupID: groupQuery,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.GetStorageUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.GetStorageInput{Refresh: refresh})
			if err != nil {
				return err
			}
			printNamespaces(cmd.OutOrStdout(), out.Storage, currentNamespace(c))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&refresh, "refresh", "r", false, "Bypass the local cache")

	cmd.AddCommand(&cobra.Command{
		Use:   "use <name>",
		Short: "Select the current namespace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := saveNamespace(c, args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Now using namespace %s\n", args[0])
			return nil
		},
	})

	return cmd
}

// printNamespaces prints namespaces in TSV format, marking the current one.
func printNamespaces(w io.Writer, info *domain.StorageInfo, current string) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, " \tNAME\tTASKS")
	for _, ns := range info.Namespaces {
		mark := " "
		if ns.Name == current || (current == "" && ns.Name == info.CurrentNamespace) {
			mark = "*"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\n", mark, ns.Name, ns.TaskCount)
	}
}

// newStorageCommand creates the storage command group.
func newStorageCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "storage",
		Short:   "Show or switch the backend storage mode",
		GroupID: groupAdmin,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.GetStorageUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.GetStorageInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Storage:   %s\n", out.Storage.CurrentStorage)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Namespace: %s\n", out.Storage.CurrentNamespace)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set-mode <file|sqlite>",
		Short: "Switch the backend storage mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.SetStorageModeUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SetStorageModeInput{Mode: args[0]})
			if err != nil {
				return err
			}
			if out.Restarted {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Backend restarted")
			}
			return nil
		},
	})

	return cmd
}
