// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand creates the swinstall command tree for app.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swinstall",
		Short: "Install software using the host platform's package manager",
		Long: TitleStyle.Render("swinstall") + SubtitleStyle.Render(" - install software with the host package manager") + `

swinstall detects the operating system and runs the matching installation
routine. On Linux it runs 'apt-get install <software>'. The Windows and
macOS routines are not implemented yet and only report what they would do.

Running swinstall without a subcommand is the same as 'swinstall install'.

` + SubtitleStyle.Render("Examples:") + `
  swinstall                              Install example_software on this host
  swinstall install htop --runner dry-run
  swinstall install --platform Darwin    Run the macOS routine
  swinstall platforms                    List platforms and their commands
  swinstall venv myenv requests          Create a Python virtual environment
  swinstall config show --format yaml    Show the effective configuration`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, app, args)
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging and issue explanations")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newInstallCommand(app))
	rootCmd.AddCommand(newPlatformsCommand(app))
	rootCmd.AddCommand(newVenvCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	if code := exitCode(err); code != 0 {
		os.Exit(code)
	}
}
