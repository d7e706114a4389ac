package cli

import (
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/app"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		GroupID: groupAdmin,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective configuration after merging the global and
project-local config files with the built-in defaults.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := c.AppConfig
			if cfg == nil {
				var err error
				cfg, err = c.ConfigLoader.Load()
				if err != nil {
					return err
				}
			}

			// Render as TOML so the output can be pasted into a config
			// file directly.
			rendered := struct {
				Backend struct {
					Command string   `toml:"command"`
					Args    []string `toml:"args,omitempty"`
				} `toml:"backend"`
				Log struct {
					Level string `toml:"level"`
				} `toml:"log"`
				UI struct {
					Namespace string `toml:"namespace,omitempty"`
					Status    string `toml:"status,omitempty"`
					Domain    string `toml:"domain,omitempty"`
				} `toml:"ui"`
			}{}
			rendered.Backend.Command = cfg.Backend.Command
			rendered.Backend.Args = cfg.Backend.Args
			rendered.Log.Level = cfg.Log.Level
			rendered.UI.Namespace = cfg.UI.Namespace
			rendered.UI.Status = cfg.UI.Status
			rendered.UI.Domain = cfg.UI.Domain

			out, err := toml.Marshal(rendered)
			if err != nil {
				return fmt.Errorf("render config: %w", err)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), strings.TrimLeft(string(out), "\n"))
			return nil
		},
	}
	return cmd
}
