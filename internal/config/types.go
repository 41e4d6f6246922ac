// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/swinstall/swinstall/pkg/platform"
	"github.com/swinstall/swinstall/pkg/types"
)

const (
	// RunnerExec spawns the install command directly.
	// Defined locally to avoid coupling config to internal/runner;
	// the CLI casts to runner.Mode at the boundary.
	RunnerExec RunnerMode = "exec"
	// RunnerShell runs the install command in the embedded shell interpreter.
	RunnerShell RunnerMode = "shell"
	// RunnerDryRun prints the install command without running it.
	RunnerDryRun RunnerMode = "dry-run"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var (
	// ErrInvalidRunnerMode is returned when a RunnerMode value is not recognized.
	ErrInvalidRunnerMode = errors.New("invalid runner mode")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidVenvConfig is returned for an unusable venv section.
	ErrInvalidVenvConfig = errors.New("invalid venv config")
)

type (
	// RunnerMode specifies how commands are executed.
	RunnerMode string

	// LogLevel is the minimum level of diagnostic log records.
	LogLevel string

	// Config is the effective swinstall configuration.
	Config struct {
		Software types.PackageName `json:"software" toml:"software" yaml:"software"`
		Platform string            `json:"platform" toml:"platform" yaml:"platform"`
		Runner   RunnerMode        `json:"runner" toml:"runner" yaml:"runner"`
		Strict   bool              `json:"strict" toml:"strict" yaml:"strict"`
		LogLevel LogLevel          `json:"log_level" toml:"log_level" yaml:"log_level"`
		Verbose  bool              `json:"verbose" toml:"verbose" yaml:"verbose"`
		Venv     VenvConfig        `json:"venv" toml:"venv" yaml:"venv"`
	}

	// VenvConfig configures the Python virtual environment setup.
	VenvConfig struct {
		Dir      string              `json:"dir" toml:"dir" yaml:"dir"`
		Packages []types.PackageName `json:"packages" toml:"packages" yaml:"packages"`
	}
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Software: "example_software",
		Runner:   RunnerExec,
		LogLevel: LogLevelInfo,
		Venv: VenvConfig{
			Dir:      "myenv",
			Packages: []types.PackageName{"package-name"},
		},
	}
}

// Validate returns an error if the RunnerMode is not recognized.
func (m RunnerMode) Validate() error {
	switch m {
	case RunnerExec, RunnerShell, RunnerDryRun:
		return nil
	default:
		return fmt.Errorf("%w: %q (expected exec, shell or dry-run)", ErrInvalidRunnerMode, string(m))
	}
}

// String returns the string representation of the RunnerMode.
func (m RunnerMode) String() string { return string(m) }

// Validate returns an error if the LogLevel is not recognized.
func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return fmt.Errorf("%w: %q (expected debug, info, warn or error)", ErrInvalidLogLevel, string(l))
	}
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// Validate checks the venv section.
func (v VenvConfig) Validate() error {
	if strings.TrimSpace(v.Dir) == "" {
		return fmt.Errorf("%w: dir must not be empty", ErrInvalidVenvConfig)
	}
	if platform.IsWindowsReservedName(v.Dir) {
		return fmt.Errorf("%w: dir %q is a reserved device name on Windows", ErrInvalidVenvConfig, v.Dir)
	}
	if len(v.Packages) == 0 {
		return fmt.Errorf("%w: at least one package is required", ErrInvalidVenvConfig)
	}
	var errs []error
	for _, p := range v.Packages {
		errs = append(errs, p.Validate())
	}
	return errors.Join(errs...)
}

// Validate checks every field and returns all problems joined.
func (c *Config) Validate() error {
	return errors.Join(
		c.Software.Validate(),
		c.Runner.Validate(),
		c.LogLevel.Validate(),
		c.Venv.Validate(),
	)
}
