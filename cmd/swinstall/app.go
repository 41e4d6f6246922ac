// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/swinstall/swinstall/internal/config"
	"github.com/swinstall/swinstall/internal/runner"
	"github.com/swinstall/swinstall/pkg/platform"

	"github.com/spf13/cobra"
)

type (
	// App is the CLI composition root. Commands reach the configuration,
	// the runner and the output streams only through it.
	App struct {
		Config     ConfigProvider
		NewRunner  RunnerFactory
		SystemName func() string

		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injectable App dependencies. Nil fields get
	// production defaults in NewApp.
	Dependencies struct {
		Config     ConfigProvider
		NewRunner  RunnerFactory
		SystemName func() string
		Stdin      io.Reader
		Stdout     io.Writer
		Stderr     io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// RunnerFactory builds the runner for a configured mode.
	RunnerFactory func(mode runner.Mode, streams runner.IO) (runner.Runner, error)
)

// flagConfigKeys maps CLI flags to the configuration keys they override.
var flagConfigKeys = map[string]string{
	"verbose":   config.KeyVerbose,
	"log-level": config.KeyLogLevel,
	"platform":  config.KeyPlatform,
	"runner":    config.KeyRunner,
	"strict":    config.KeyStrict,
}

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.NewRunner == nil {
		deps.NewRunner = runner.New
	}
	if deps.SystemName == nil {
		deps.SystemName = platform.SystemName
	}

	return &App{
		Config:     deps.Config,
		NewRunner:  deps.NewRunner,
		SystemName: deps.SystemName,
		stdin:      deps.Stdin,
		stdout:     deps.Stdout,
		stderr:     deps.Stderr,
	}, nil
}

// loadConfig loads the configuration with the flags the user set on cmd and
// the given positional overrides applied on top, then configures logging.
func (a *App) loadConfig(cmd *cobra.Command, overrides map[string]any) (*config.Config, error) {
	merged := make(map[string]any, len(overrides)+len(flagConfigKeys))
	for name, key := range flagConfigKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		merged[key] = f.Value.String()
	}
	for key, value := range overrides {
		merged[key] = value
	}

	cfg, err := a.Config.Load(cmd.Context(), config.LoadOptions{Overrides: merged})
	if err != nil {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			a.reportError(err)
		}
		return nil, err
	}

	configureLogging(a.stderr, cfg)
	return cfg, nil
}

// newRunner builds the runner selected by cfg, wired to the App streams.
func (a *App) newRunner(cfg *config.Config) (runner.Runner, error) {
	return a.NewRunner(runner.Mode(cfg.Runner), runner.IO{
		Stdin:  a.stdin,
		Stdout: a.stdout,
		Stderr: a.stderr,
	})
}

// targetSystem returns the configured platform override, or the host's
// operating system name.
func (a *App) targetSystem(cfg *config.Config) string {
	if cfg.Platform != "" {
		return cfg.Platform
	}
	return a.SystemName()
}
