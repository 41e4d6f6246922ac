// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/swinstall/swinstall/pkg/platform"
	"github.com/swinstall/swinstall/pkg/types"
)

// ExecRunner spawns commands with os/exec. It sets no timeout; the process
// runs until it exits or ctx is cancelled.
type ExecRunner struct {
	streams IO
	// hostCommand rewrites the command for sandboxed processes. Tests replace it.
	hostCommand func(name string, args []string) (string, []string)
}

// NewExecRunner creates an ExecRunner attached to streams.
func NewExecRunner(streams IO) *ExecRunner {
	return &ExecRunner{
		streams:     streams.withDefaults(),
		hostCommand: platform.HostCommand,
	}
}

// Name returns the runner name.
func (r *ExecRunner) Name() string {
	return string(ModeExec)
}

// Run spawns cmd and waits for it.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) Result {
	if cmd.Name == "" {
		return NewErrorResult(errors.New("no command to run"))
	}

	name, args := r.hostCommand(cmd.Name, cmd.Args)
	if name != cmd.Name {
		slog.Debug("spawning command on sandbox host", "spawn", name, "command", cmd.Name)
	}

	c := exec.CommandContext(ctx, name, args...)
	c.Stdin = r.streams.Stdin
	c.Stdout = r.streams.Stdout
	c.Stderr = r.streams.Stderr

	slog.Debug("running command", "runner", r.Name(), "command", cmd.String())

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			code := types.ExitCode(exitErr.ExitCode())
			// ExitCode is -1 when the process was killed by a signal.
			if verr := code.Validate(); verr != nil {
				return NewErrorResult(fmt.Errorf("failed to run %s: %s: %w", cmd.Name, exitErr, verr))
			}
			return NewExitCodeResult(code)
		}
		return NewErrorResult(fmt.Errorf("failed to run %s: %w", cmd.Name, err))
	}

	return NewExitCodeResult(0)
}
