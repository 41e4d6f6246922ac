// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/swinstall/swinstall/internal/config"
	"github.com/swinstall/swinstall/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `swinstall config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect swinstall configuration",
		Long: `Inspect swinstall configuration.

swinstall has no configuration file. Settings come from built-in defaults,
SWINSTALL_* environment variables and command-line flags, in increasing
order of precedence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return showConfig(cmd, app, config.Format(format))
		},
	}
	showCmd.Flags().String("format", string(config.FormatTOML), "output format: toml, yaml")

	cfgCmd.AddCommand(showCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "env",
		Short: "List the environment variables swinstall reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, key := range config.Keys() {
				fmt.Fprintf(app.stdout, "%-24s %s\n", config.EnvVar(key), SubtitleStyle.Render(key))
			}
			return nil
		},
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App, format config.Format) error {
	if err := format.Validate(); err != nil {
		return issue.NewErrorContext().
			WithOperation("show configuration").
			WithResource("--format").
			WithSuggestion("Use --format toml or --format yaml").
			Wrap(err).
			BuildError()
	}

	cfg, err := app.loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	out, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}
	_, err = app.stdout.Write(out)
	return err
}
