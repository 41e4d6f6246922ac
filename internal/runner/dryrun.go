// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
)

// DryRunRunner prints each command prefixed with "+ " and records it.
// It never starts a process.
type DryRunRunner struct {
	out      io.Writer
	commands []Command
}

// NewDryRunRunner creates a DryRunRunner writing to out (stdout when nil).
func NewDryRunRunner(out io.Writer) *DryRunRunner {
	if out == nil {
		out = os.Stdout
	}
	return &DryRunRunner{out: out}
}

// Name returns the runner name.
func (r *DryRunRunner) Name() string {
	return string(ModeDryRun)
}

// Run prints cmd and reports success.
func (r *DryRunRunner) Run(ctx context.Context, cmd Command) Result {
	if err := ctx.Err(); err != nil {
		return NewErrorResult(err)
	}
	r.commands = append(r.commands, Command{Name: cmd.Name, Args: slices.Clone(cmd.Args)})
	fmt.Fprintf(r.out, "+ %s\n", cmd)
	return NewExitCodeResult(0)
}

// Commands returns the commands seen so far, in order.
func (r *DryRunRunner) Commands() []Command {
	return slices.Clone(r.commands)
}
