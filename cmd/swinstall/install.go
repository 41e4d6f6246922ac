// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/swinstall/swinstall/internal/config"
	"github.com/swinstall/swinstall/internal/installer"
	"github.com/swinstall/swinstall/internal/issue"

	"github.com/spf13/cobra"
)

func newInstallCommand(app *App) *cobra.Command {
	installCmd := &cobra.Command{
		Use:   "install [software]",
		Short: "Install software with the host platform's routine",
		Long: `Install software with the routine for the host operating system.

The platform is detected from the host unless --platform (or
SWINSTALL_PLATFORM) names one. Linux runs 'apt-get install <software>';
Windows and macOS report that they would install it. Any other platform
name prints an "Unsupported operating system" notice.

The exit status is 0 for every outcome unless --strict is set, in which
case anything but a completed install exits with status 1.`,
		Example: `  swinstall install
  swinstall install htop --runner dry-run
  swinstall install --platform Windows
  SWINSTALL_STRICT=true swinstall install --platform Plan9`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, app, args)
		},
	}

	installCmd.Flags().String("platform", "", "platform to install for instead of the detected host (Linux, Windows, Darwin)")
	addRunnerFlags(installCmd)

	return installCmd
}

// addRunnerFlags registers the flags shared by commands that run external
// programs.
func addRunnerFlags(cmd *cobra.Command) {
	cmd.Flags().String("runner", "", "how commands are run: exec, shell, dry-run")
	cmd.Flags().Bool("strict", false, "exit with status 1 unless the operation completed")
}

func runInstall(cmd *cobra.Command, app *App, args []string) error {
	overrides := map[string]any{}
	if len(args) > 0 {
		overrides[config.KeySoftware] = args[0]
	}

	cfg, err := app.loadConfig(cmd, overrides)
	if err != nil {
		return err
	}

	r, err := app.newRunner(cfg)
	if err != nil {
		return err
	}

	slog.Debug("runner selected", "runner", r.Name())

	res := installer.NewDispatcher(r, app.stdout).InstallSystem(cmd.Context(), app.targetSystem(cfg), cfg.Software)

	if res.Succeeded() {
		return nil
	}

	if cfg.Verbose {
		app.renderIssue(installIssue(res))
	}
	if cfg.Strict {
		return &ExitError{Code: 1, Err: res.Err()}
	}
	return nil
}

// installIssue picks the catalog entry explaining a non-success outcome.
func installIssue(res installer.Result) issue.Id {
	switch res.Outcome {
	case installer.OutcomeUnsupported:
		return issue.UnsupportedPlatformId
	case installer.OutcomeNotImplemented:
		return issue.InstallNotImplementedId
	case installer.OutcomeFailed:
		if errors.Is(res.Cause, os.ErrPermission) {
			return issue.PermissionDeniedId
		}
		return issue.InstallFailedId
	case installer.OutcomeSucceeded:
		return 0
	default:
		return issue.InstallFailedId
	}
}
