// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/swinstall/swinstall/pkg/types"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ShellRunner runs commands through the embedded mvdan/sh interpreter, so the
// same command line behaves identically on hosts without a POSIX shell.
type ShellRunner struct {
	streams IO
	// Env is the environment seen by the interpreter; nil means os.Environ().
	Env []string
}

// NewShellRunner creates a ShellRunner attached to streams.
func NewShellRunner(streams IO) *ShellRunner {
	return &ShellRunner{streams: streams.withDefaults()}
}

// Name returns the runner name.
func (r *ShellRunner) Name() string {
	return string(ModeShell)
}

// Run quotes cmd into a single shell statement and interprets it.
// A 127 exit status (command not found) is reported as an error, matching
// what ExecRunner returns for a missing executable.
func (r *ShellRunner) Run(ctx context.Context, cmd Command) Result {
	if cmd.Name == "" {
		return NewErrorResult(errors.New("no command to run"))
	}

	line, err := cmd.Quoted()
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to run %s: %w", cmd.Name, err))
	}
	prog, err := syntax.NewParser().Parse(strings.NewReader(line), cmd.Name)
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to parse command %q: %w", line, err))
	}

	env := r.Env
	if env == nil {
		env = os.Environ()
	}

	sh, err := interp.New(
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(r.streams.Stdin, r.streams.Stdout, r.streams.Stderr),
	)
	if err != nil {
		return NewErrorResult(fmt.Errorf("failed to create interpreter: %w", err))
	}

	slog.Debug("running command", "runner", r.Name(), "command", line)

	if err := sh.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			code := types.ExitCode(status)
			if code.IsCommandNotFound() {
				return Result{ExitCode: code, Error: fmt.Errorf("failed to run %s: command not found", cmd.Name)}
			}
			return NewExitCodeResult(code)
		}
		return NewErrorResult(fmt.Errorf("failed to run %s: %w", cmd.Name, err))
	}

	return NewExitCodeResult(0)
}
