// SPDX-License-Identifier: MPL-2.0

// Package pyenv creates a Python virtual environment and installs packages
// into it with pip.
package pyenv

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/swinstall/swinstall/internal/runner"
	"github.com/swinstall/swinstall/pkg/types"
)

const (
	// DefaultDir is the virtual environment directory used when none is given.
	DefaultDir = "myenv"
	// DefaultPackage is the package installed when none is given.
	DefaultPackage types.PackageName = "package-name"
)

type (
	// Options configures Setup.
	Options struct {
		Dir      string
		Packages []types.PackageName
	}

	// StepResult is the outcome of one command.
	StepResult struct {
		Command runner.Command
		// ExitCode is the command's exit status. Like the install routine,
		// a non-zero status is logged but does not fail the step.
		ExitCode types.ExitCode
		// Err is set when the command could not be run.
		Err error
	}

	// Result summarizes a Setup run.
	Result struct {
		Dir   string
		Steps []StepResult
		// Created reports whether the venv command ran.
		Created bool
	}
)

// VenvCommand returns the command that creates the environment.
func VenvCommand(dir string) runner.Command {
	return runner.NewCommand("python", "-m", "venv", dir)
}

// PipInstallCommand returns the command that installs one package.
func PipInstallCommand(pkg types.PackageName) runner.Command {
	return runner.NewCommand("pip", "install", pkg.String())
}

// Setup creates the virtual environment and then installs each package.
// A failed venv command stops the run; a failed pip command is reported and
// the remaining packages are still attempted.
func Setup(ctx context.Context, r runner.Runner, out io.Writer, opts Options) Result {
	if out == nil {
		out = os.Stdout
	}
	opts = opts.withDefaults()
	res := Result{Dir: opts.Dir}

	venv := VenvCommand(opts.Dir)
	fmt.Fprintf(out, "Creating virtual environment %s...\n", opts.Dir)
	step := runStep(ctx, r, venv)
	res.Steps = append(res.Steps, step)
	if step.Err != nil {
		fmt.Fprintf(out, "Error creating virtual environment %s: %v\n", opts.Dir, step.Err)
		return res
	}
	res.Created = true

	for _, pkg := range opts.Packages {
		pip := PipInstallCommand(pkg)
		fmt.Fprintf(out, "Installing %s...\n", pkg)
		step := runStep(ctx, r, pip)
		res.Steps = append(res.Steps, step)
		if step.Err != nil {
			fmt.Fprintf(out, "Error installing %s: %v\n", pkg, step.Err)
			continue
		}
		fmt.Fprintf(out, "%s installed successfully.\n", pkg)
	}

	if res.Err() == nil {
		fmt.Fprintf(out, "Virtual environment %s is ready.\n", opts.Dir)
	}
	return res
}

func runStep(ctx context.Context, r runner.Runner, cmd runner.Command) StepResult {
	run := r.Run(ctx, cmd)
	if run.Error == nil && !run.ExitCode.IsSuccess() {
		slog.Warn("command exited with non-zero status", "command", cmd.String(), "exitCode", run.ExitCode, "meaning", run.ExitCode.Meaning())
	}
	return StepResult{Command: cmd, ExitCode: run.ExitCode, Err: run.Error}
}

// Err returns the first step error, or nil when every command ran.
func (r Result) Err() error {
	for _, s := range r.Steps {
		if s.Err != nil {
			return fmt.Errorf("%s: %w", s.Command, s.Err)
		}
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	if len(o.Packages) == 0 {
		o.Packages = []types.PackageName{DefaultPackage}
	}
	return o
}
