// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/swinstall/swinstall/internal/runner"
	"github.com/swinstall/swinstall/pkg/platform"
	"github.com/swinstall/swinstall/pkg/types"
)

// Routine installs software on one platform.
type Routine interface {
	Platform() platform.Platform
	Install(ctx context.Context, software types.PackageName) Result
}

type (
	// LinuxRoutine installs with apt-get.
	LinuxRoutine struct {
		runner runner.Runner
		out    io.Writer
		euid   func() int
	}

	// stubRoutine prints the install messages of a platform that has no
	// install action yet.
	stubRoutine struct {
		platform platform.Platform
		out      io.Writer
	}
)

// AptInstallCommand returns the command the Linux routine runs.
func AptInstallCommand(software types.PackageName) runner.Command {
	return runner.NewCommand("apt-get", "install", software.String())
}

// NewLinuxRoutine creates the apt-get routine.
func NewLinuxRoutine(r runner.Runner, out io.Writer) *LinuxRoutine {
	return &LinuxRoutine{runner: r, out: out, euid: effectiveUID}
}

// NewWindowsRoutine creates the Windows routine. It invokes no process.
func NewWindowsRoutine(out io.Writer) Routine {
	return &stubRoutine{platform: platform.WindowsPlatform, out: out}
}

// NewMacOSRoutine creates the macOS routine. It invokes no process.
func NewMacOSRoutine(out io.Writer) Routine {
	return &stubRoutine{platform: platform.MacOSPlatform, out: out}
}

// Platform returns platform.LinuxPlatform.
func (l *LinuxRoutine) Platform() platform.Platform {
	return platform.LinuxPlatform
}

// Install runs apt-get install once. Only a failure to run the command counts
// as a failed installation; the command's exit status is recorded and logged.
func (l *LinuxRoutine) Install(ctx context.Context, software types.PackageName) Result {
	p := l.Platform()
	cmd := AptInstallCommand(software)
	res := Result{Platform: p, Software: software, Command: &cmd}

	fmt.Fprintf(l.out, "Installing %s on %s...\n", software, p)

	if uid := l.euid(); uid > 0 {
		slog.Warn("apt-get usually requires root privileges", "euid", uid)
	}

	run := l.runner.Run(ctx, cmd)
	res.ExitCode = run.ExitCode
	if run.Error != nil {
		fmt.Fprintf(l.out, "Error installing %s on %s: %v\n", software, p, run.Error)
		res.Outcome = OutcomeFailed
		res.Reason = run.Error.Error()
		res.Cause = run.Error
		return res
	}
	if !run.ExitCode.IsSuccess() {
		slog.Warn("install command exited with non-zero status", "command", cmd.String(), "exitCode", run.ExitCode, "meaning", run.ExitCode.Meaning())
	}

	fmt.Fprintf(l.out, "%s installed successfully on %s.\n", software, p)
	res.Outcome = OutcomeSucceeded
	return res
}

func (s *stubRoutine) Platform() platform.Platform {
	return s.platform
}

// Install prints the same two lines as a real installation but performs no
// action, and says so in the Result.
func (s *stubRoutine) Install(_ context.Context, software types.PackageName) Result {
	fmt.Fprintf(s.out, "Installing %s on %s...\n", software, s.platform)
	fmt.Fprintf(s.out, "%s installed successfully on %s.\n", software, s.platform)

	slog.Warn("no install action is implemented for this platform", "platform", s.platform.String(), "software", software.String())

	return Result{
		Platform: s.platform,
		Software: software,
		Outcome:  OutcomeNotImplemented,
		Reason:   fmt.Sprintf("no install action is implemented for %s", s.platform),
	}
}
