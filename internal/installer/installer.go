// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/swinstall/swinstall/internal/runner"
	"github.com/swinstall/swinstall/pkg/platform"
	"github.com/swinstall/swinstall/pkg/types"
)

// DefaultSoftware is the software installed when none is named.
const DefaultSoftware types.PackageName = "example_software"

// Dispatcher routes an installation to the routine for a platform.
type Dispatcher struct {
	out io.Writer
	// systemName names the host in the unsupported notice for Install.
	systemName func() string
	linux      Routine
	windows    Routine
	macOS      Routine
}

// NewDispatcher creates a Dispatcher whose Linux routine runs commands
// through r. Status lines are written to out (stdout when nil).
func NewDispatcher(r runner.Runner, out io.Writer) *Dispatcher {
	if out == nil {
		out = os.Stdout
	}
	return &Dispatcher{
		out:        out,
		systemName: platform.SystemName,
		linux:      NewLinuxRoutine(r, out),
		windows:    NewWindowsRoutine(out),
		macOS:      NewMacOSRoutine(out),
	}
}

// Routine returns the routine for p. The second result is false for
// platform.Unsupported.
func (d *Dispatcher) Routine(p platform.Platform) (Routine, bool) {
	switch p {
	case platform.LinuxPlatform:
		return d.linux, true
	case platform.WindowsPlatform:
		return d.windows, true
	case platform.MacOSPlatform:
		return d.macOS, true
	case platform.Unsupported:
		return nil, false
	default:
		return nil, false
	}
}

// Install runs the routine for p exactly once. For platform.Unsupported the
// notice names the host's operating system, as reported by SystemName; use
// InstallSystem to report a different name.
func (d *Dispatcher) Install(ctx context.Context, p platform.Platform, software types.PackageName) Result {
	name := p.String()
	if !p.IsSupported() {
		name = d.systemName()
	}
	return d.dispatch(ctx, p, name, software)
}

// InstallSystem parses an operating system name (as reported by uname or
// runtime.GOOS) and installs on the matching platform.
func (d *Dispatcher) InstallSystem(ctx context.Context, systemName string, software types.PackageName) Result {
	return d.dispatch(ctx, platform.Parse(systemName), systemName, software)
}

func (d *Dispatcher) dispatch(ctx context.Context, p platform.Platform, systemName string, software types.PackageName) Result {
	slog.Debug("dispatching installation", "system", systemName, "platform", p.String(), "software", software.String())

	routine, ok := d.Routine(p)
	if !ok {
		fmt.Fprintf(d.out, "Unsupported operating system: %s\n", systemName)
		return Result{
			Platform: platform.Unsupported,
			Software: software,
			Outcome:  OutcomeUnsupported,
			Reason:   systemName,
		}
	}

	res := routine.Install(ctx, software)
	slog.Debug("installation finished", "platform", p.String(), "outcome", res.Outcome.String())
	return res
}

// Install detects the host platform and installs software with the exec
// runner, printing status lines to stdout.
func Install(ctx context.Context, software types.PackageName) Result {
	d := NewDispatcher(runner.NewExecRunner(runner.IO{}), os.Stdout)
	return d.InstallSystem(ctx, platform.SystemName(), software)
}
