// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/swinstall/swinstall/internal/config"
	"github.com/swinstall/swinstall/internal/installer"
	"github.com/swinstall/swinstall/internal/issue"
	"github.com/swinstall/swinstall/internal/runner"
	"github.com/swinstall/swinstall/internal/testutil"
)

// Commands install a process-wide slog handler, so tests that execute a
// command tree do not run in parallel.

type (
	testHarness struct {
		app    *App
		stdout *bytes.Buffer
		stderr *bytes.Buffer
		modes  []runner.Mode
	}

	failingRunner struct {
		err error
	}
)

func (f *failingRunner) Name() string { return "failing" }

func (f *failingRunner) Run(context.Context, runner.Command) runner.Result {
	return runner.NewErrorResult(f.err)
}

func newTestHarness(t *testing.T, system string, factory RunnerFactory) *testHarness {
	t.Helper()

	for _, key := range config.Keys() {
		testutil.MustUnsetenv(t, config.EnvVar(key))
	}

	h := &testHarness{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	if factory == nil {
		factory = runner.New
	}

	app, err := NewApp(Dependencies{
		NewRunner: func(mode runner.Mode, streams runner.IO) (runner.Runner, error) {
			h.modes = append(h.modes, mode)
			return factory(mode, streams)
		},
		SystemName: func() string { return system },
		Stdin:      strings.NewReader(""),
		Stdout:     h.stdout,
		Stderr:     h.stderr,
	})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	h.app = app
	return h
}

func (h *testHarness) run(args ...string) error {
	root := newRootCommand(h.app)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestInstall_LinuxDryRun(t *testing.T) {
	h := newTestHarness(t, "Linux", nil)

	if err := h.run("install", "--runner", "dry-run"); err != nil {
		t.Fatalf("install error = %v", err)
	}

	want := "Installing example_software on Linux...\n" +
		"+ apt-get install example_software\n" +
		"example_software installed successfully on Linux.\n"
	if got := h.stdout.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if len(h.modes) != 1 || h.modes[0] != runner.ModeDryRun {
		t.Errorf("runner modes = %v, want [dry-run]", h.modes)
	}
}

func TestInstall_UsesDetectedHost(t *testing.T) {
	h := newTestHarness(t, "Darwin", nil)

	if err := h.run(); err != nil {
		t.Fatalf("root command error = %v", err)
	}

	want := "Installing example_software on macOS...\n" +
		"example_software installed successfully on macOS.\n"
	if got := h.stdout.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestInstall_PlatformFlagOverridesHost(t *testing.T) {
	h := newTestHarness(t, "Darwin", nil)

	if err := h.run("install", "htop", "--platform", "Windows"); err != nil {
		t.Fatalf("install error = %v", err)
	}

	if got := h.stdout.String(); !strings.Contains(got, "htop installed successfully on Windows.") {
		t.Errorf("stdout = %q, want Windows routine output", got)
	}
}

func TestInstall_Unsupported(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantExit bool
	}{
		{"lenient", []string{"install"}, false},
		{"strict", []string{"install", "--strict"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(t, "Plan9", nil)

			err := h.run(tt.args...)

			if got := h.stdout.String(); got != "Unsupported operating system: Plan9\n" {
				t.Errorf("stdout = %q", got)
			}
			var exitErr *ExitError
			if gotExit := errors.As(err, &exitErr); gotExit != tt.wantExit {
				t.Fatalf("error = %v, want ExitError: %v", err, tt.wantExit)
			}
			if tt.wantExit {
				if exitErr.Code != 1 {
					t.Errorf("exit code = %d, want 1", exitErr.Code)
				}
				if !errors.Is(err, installer.ErrUnsupportedPlatform) {
					t.Errorf("error = %v, want ErrUnsupportedPlatform", err)
				}
			}
		})
	}
}

func TestInstall_RunnerFailureIsReportedNotReturned(t *testing.T) {
	runErr := errors.New("apt-get: not found")
	h := newTestHarness(t, "Linux", func(runner.Mode, runner.IO) (runner.Runner, error) {
		return &failingRunner{err: runErr}, nil
	})

	if err := h.run("install"); err != nil {
		t.Fatalf("install error = %v, want nil without --strict", err)
	}
	if got := h.stdout.String(); !strings.Contains(got, "Error installing example_software on Linux: apt-get: not found") {
		t.Errorf("stdout = %q, want error line", got)
	}
}

func TestInstall_InvalidConfig(t *testing.T) {
	h := newTestHarness(t, "Linux", nil)

	err := h.run("install", "--runner", "container")
	if err == nil {
		t.Fatal("install error = nil, want invalid configuration")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.IssueID != issue.InvalidConfigId {
		t.Errorf("error = %v, want ActionableError with InvalidConfigId", err)
	}
	if h.stdout.Len() != 0 {
		t.Errorf("stdout = %q, nothing may run on invalid configuration", h.stdout.String())
	}
	if len(h.modes) != 0 {
		t.Errorf("runner built for invalid configuration: %v", h.modes)
	}
}

func TestInstall_SoftwareFromEnvironment(t *testing.T) {
	h := newTestHarness(t, "Linux", nil)
	t.Setenv("SWINSTALL_SOFTWARE", "curl")
	t.Setenv("SWINSTALL_RUNNER", "dry-run")

	if err := h.run("install"); err != nil {
		t.Fatalf("install error = %v", err)
	}
	if got := h.stdout.String(); !strings.Contains(got, "+ apt-get install curl\n") {
		t.Errorf("stdout = %q, want apt-get for curl", got)
	}
}

func TestVenv_DryRun(t *testing.T) {
	h := newTestHarness(t, "Linux", nil)

	if err := h.run("venv", ".venv", "requests", "--runner", "dry-run"); err != nil {
		t.Fatalf("venv error = %v", err)
	}

	want := "Creating virtual environment .venv...\n" +
		"+ python -m venv .venv\n" +
		"Installing requests...\n" +
		"+ pip install requests\n" +
		"requests installed successfully.\n" +
		"Virtual environment .venv is ready.\n"
	if got := h.stdout.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestVenv_StrictFailure(t *testing.T) {
	h := newTestHarness(t, "Linux", func(runner.Mode, runner.IO) (runner.Runner, error) {
		return &failingRunner{err: errors.New("python: not found")}, nil
	})

	err := h.run("venv", "--strict")

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("venv error = %v, want ExitError code 1", err)
	}
	if got := h.stdout.String(); strings.Contains(got, "Installing") {
		t.Errorf("stdout = %q, packages must not be installed after venv failure", got)
	}
}

func TestPlatforms_MarksHost(t *testing.T) {
	h := newTestHarness(t, "Linux", nil)

	if err := h.run("platforms"); err != nil {
		t.Fatalf("platforms error = %v", err)
	}

	out := h.stdout.String()
	for _, want := range []string{"Linux", "Windows", "macOS", "apt-get install example_software", notImplementedAction, "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("platforms output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "is not supported") {
		t.Errorf("platforms output = %q, Linux host is supported", out)
	}
}

func TestPlatforms_UnsupportedHost(t *testing.T) {
	h := newTestHarness(t, "Plan9", nil)

	if err := h.run("platforms"); err != nil {
		t.Fatalf("platforms error = %v", err)
	}
	if out := h.stdout.String(); !strings.Contains(out, `Host system "Plan9" is not supported.`) {
		t.Errorf("platforms output = %q, want unsupported host notice", out)
	}
}

func TestConfigShow(t *testing.T) {
	h := newTestHarness(t, "Linux", nil)

	if err := h.run("config", "show", "--format", "yaml"); err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if out := h.stdout.String(); !strings.Contains(out, "software: example_software") {
		t.Errorf("config show output = %q", out)
	}
}

func TestConfigShow_InvalidFormat(t *testing.T) {
	h := newTestHarness(t, "Linux", nil)

	err := h.run("config", "show", "--format", "json")
	if !errors.Is(err, config.ErrInvalidFormat) {
		t.Fatalf("config show error = %v, want ErrInvalidFormat", err)
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Resource != "--format" {
		t.Errorf("error = %v, want ActionableError for --format", err)
	}
}

func TestConfigEnv(t *testing.T) {
	h := newTestHarness(t, "Linux", nil)

	if err := h.run("config", "env"); err != nil {
		t.Fatalf("config env error = %v", err)
	}
	for _, key := range config.Keys() {
		if !strings.Contains(h.stdout.String(), config.EnvVar(key)) {
			t.Errorf("config env output missing %s", config.EnvVar(key))
		}
	}
}

func TestInstallIssue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		res  installer.Result
		want issue.Id
	}{
		{"unsupported", installer.Result{Outcome: installer.OutcomeUnsupported}, issue.UnsupportedPlatformId},
		{"not implemented", installer.Result{Outcome: installer.OutcomeNotImplemented}, issue.InstallNotImplementedId},
		{"failed", installer.Result{Outcome: installer.OutcomeFailed, Cause: errors.New("boom")}, issue.InstallFailedId},
		{"permission", installer.Result{Outcome: installer.OutcomeFailed, Cause: &os.PathError{Op: "fork/exec", Path: "/usr/bin/apt-get", Err: os.ErrPermission}}, issue.PermissionDeniedId},
		{"succeeded", installer.Result{Outcome: installer.OutcomeSucceeded}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := installIssue(tt.res); got != tt.want {
				t.Errorf("installIssue() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	withErr := &ExitError{Code: 1, Err: inner}
	if withErr.Error() != "inner" || !errors.Is(withErr, inner) {
		t.Errorf("ExitError with Err = %q, want it to wrap inner", withErr.Error())
	}
	if got := (&ExitError{Code: 3}).Error(); got != "exit status 3" {
		t.Errorf("ExitError without Err = %q, want %q", got, "exit status 3")
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), 1},
		{"exit error", &ExitError{Code: 3}, 3},
		{"wrapped exit error", fmt.Errorf("wrapped: %w", &ExitError{Code: 2}), 2},
		{"zero code", &ExitError{Code: 0, Err: errors.New("odd")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain")
	if got := formatErrorForDisplay(plain, true); got != "plain" {
		t.Errorf("formatErrorForDisplay(plain) = %q", got)
	}

	ae := issue.NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("unset SWINSTALL_RUNNER").
		Wrap(plain).
		BuildError()
	if got := formatErrorForDisplay(ae, true); !strings.Contains(got, "unset SWINSTALL_RUNNER") {
		t.Errorf("formatErrorForDisplay(actionable) = %q, want suggestion", got)
	}
}

func TestGetVersionString(t *testing.T) {
	t.Parallel()

	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}
}

func TestIssueStyle_NonTerminal(t *testing.T) {
	t.Parallel()

	if got := issueStyle(&bytes.Buffer{}); got != "notty" {
		t.Errorf("issueStyle(buffer) = %q, want notty", got)
	}
}

func TestInstall_VerboseRendersIssue(t *testing.T) {
	h := newTestHarness(t, "Plan9", nil)

	if err := h.run("install", "--verbose"); err != nil {
		t.Fatalf("install error = %v", err)
	}
	if got := h.stderr.String(); !strings.Contains(got, "Unsupported operating system") {
		t.Errorf("stderr = %q, want rendered catalog entry", got)
	}
}
