// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/swinstall/swinstall/pkg/types"

	"mvdan.cc/sh/v3/syntax"
)

const (
	// ModeExec spawns the command directly.
	ModeExec Mode = "exec"
	// ModeShell runs the command in the embedded POSIX shell interpreter.
	ModeShell Mode = "shell"
	// ModeDryRun prints the command without running it.
	ModeDryRun Mode = "dry-run"
)

// ErrInvalidMode is returned when a Mode value is not recognized.
var ErrInvalidMode = errors.New("invalid runner mode")

type (
	// Mode selects a Runner implementation.
	Mode string

	// Command is a program name plus its argument list. No shell parsing is
	// applied to Args by ExecRunner.
	Command struct {
		Name string
		Args []string
	}

	// Result is the outcome of running a Command.
	Result struct {
		// ExitCode is the exit status of a process that was started.
		ExitCode types.ExitCode
		// Error is set when the command could not be run at all.
		Error error
	}

	// IO holds the standard streams handed to child processes.
	IO struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// Runner runs a single Command and blocks until it finishes.
	Runner interface {
		Name() string
		Run(ctx context.Context, cmd Command) Result
	}
)

// NewCommand builds a Command from a name and arguments.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// Argv returns the full argument vector, name first.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	return append(argv, c.Args...)
}

// Quoted returns the command line as a single shell statement, each word
// quoted so the shell sees exactly Argv. Words that cannot be quoted, such as
// ones holding control characters, are an error.
func (c Command) Quoted() (string, error) {
	words := c.Argv()
	quoted := make([]string, len(words))
	for i, w := range words {
		q, err := syntax.Quote(w, syntax.LangPOSIX)
		if err != nil {
			return "", fmt.Errorf("cannot quote %q for the shell: %w", w, err)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}

// String returns the command line for display. Words that cannot be quoted
// are shown in Go string syntax.
func (c Command) String() string {
	if line, err := c.Quoted(); err == nil {
		return line
	}
	words := c.Argv()
	shown := make([]string, len(words))
	for i, w := range words {
		if q, err := syntax.Quote(w, syntax.LangPOSIX); err == nil {
			shown[i] = q
			continue
		}
		shown[i] = strconv.Quote(w)
	}
	return strings.Join(shown, " ")
}

// Validate returns an error if the Mode is not one of the known runners.
func (m Mode) Validate() error {
	switch m {
	case ModeExec, ModeShell, ModeDryRun:
		return nil
	default:
		return fmt.Errorf("%w: %q (expected %s, %s or %s)", ErrInvalidMode, string(m), ModeExec, ModeShell, ModeDryRun)
	}
}

// String returns the string representation of the Mode.
func (m Mode) String() string { return string(m) }

// Modes lists the valid runner modes.
func Modes() []Mode {
	return []Mode{ModeExec, ModeShell, ModeDryRun}
}

// New returns the Runner for mode. Nil streams are replaced by the process's
// own standard streams.
func New(mode Mode, streams IO) (Runner, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	streams = streams.withDefaults()

	switch mode {
	case ModeExec:
		return NewExecRunner(streams), nil
	case ModeShell:
		return NewShellRunner(streams), nil
	case ModeDryRun:
		return NewDryRunRunner(streams.Stdout), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, string(mode))
	}
}

// NewErrorResult creates a Result for a command that could not be run.
func NewErrorResult(err error) Result {
	return Result{ExitCode: 1, Error: err}
}

// NewExitCodeResult creates a Result for a process that ran and exited with code.
func NewExitCodeResult(code types.ExitCode) Result {
	return Result{ExitCode: code}
}

func (s IO) withDefaults() IO {
	if s.Stdin == nil {
		s.Stdin = os.Stdin
	}
	if s.Stdout == nil {
		s.Stdout = os.Stdout
	}
	if s.Stderr == nil {
		s.Stderr = os.Stderr
	}
	return s
}
