// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"log/slog"
	"strings"

	"github.com/swinstall/swinstall/internal/config"
	"github.com/swinstall/swinstall/internal/issue"
	"github.com/swinstall/swinstall/internal/pyenv"

	"github.com/spf13/cobra"
)

func newVenvCommand(app *App) *cobra.Command {
	venvCmd := &cobra.Command{
		Use:   "venv [dir] [packages...]",
		Short: "Create a Python virtual environment and install packages into it",
		Long: `Create a Python virtual environment with 'python -m venv <dir>' and then
run 'pip install <package>' for each package.

A failure to create the environment stops the command. A failed package
install is reported and the remaining packages are still attempted.
Defaults come from SWINSTALL_VENV_DIR and SWINSTALL_VENV_PACKAGES.`,
		Example: `  swinstall venv
  swinstall venv .venv requests rich
  swinstall venv --runner dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVenv(cmd, app, args)
		},
	}

	addRunnerFlags(venvCmd)

	return venvCmd
}

func runVenv(cmd *cobra.Command, app *App, args []string) error {
	overrides := map[string]any{}
	if len(args) > 0 {
		overrides[config.KeyVenvDir] = args[0]
	}
	if len(args) > 1 {
		overrides[config.KeyVenvPackages] = strings.Join(args[1:], ",")
	}

	cfg, err := app.loadConfig(cmd, overrides)
	if err != nil {
		return err
	}

	r, err := app.newRunner(cfg)
	if err != nil {
		return err
	}

	res := pyenv.Setup(cmd.Context(), r, app.stdout, pyenv.Options{
		Dir:      cfg.Venv.Dir,
		Packages: cfg.Venv.Packages,
	})

	setupErr := res.Err()
	if setupErr == nil {
		return nil
	}
	slog.Debug("virtual environment setup incomplete", "dir", res.Dir, "created", res.Created, "error", setupErr)

	if cfg.Verbose {
		app.renderIssue(issue.VenvSetupFailedId)
	}
	if cfg.Strict {
		return &ExitError{Code: 1, Err: setupErr}
	}
	return nil
}
