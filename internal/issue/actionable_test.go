// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load configuration"},
			expected: "failed to load configuration",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "select runner", Resource: "SWINSTALL_RUNNER"},
			expected: "failed to select runner: SWINSTALL_RUNNER",
		},
		{
			name: "operation, resource and cause",
			err: &ActionableError{
				Operation: "parse platform",
				Resource:  "--platform",
				Cause:     errors.New(`unknown operating system "Java"`),
			},
			expected: `failed to parse platform: --platform: unknown operating system "Java"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := NewErrorContext().
		WithOperation("load configuration").
		Wrap(fmt.Errorf("decode: %w", sentinel)).
		BuildError()

	if !errors.Is(err, sentinel) {
		t.Errorf("errors.Is() did not find sentinel through %v", err)
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As() did not find *ActionableError")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := &ActionableError{
		Operation:   "select runner",
		Resource:    "SWINSTALL_RUNNER",
		Suggestions: []string{"Use one of: exec, shell, dry-run"},
		Cause:       fmt.Errorf("outer: %w", errors.New("inner")),
	}

	short := err.Format(false)
	if !strings.Contains(short, "• Use one of: exec, shell, dry-run") {
		t.Errorf("Format(false) missing suggestion:\n%s", short)
	}
	if strings.Contains(short, "Error chain:") {
		t.Errorf("Format(false) should not include the error chain:\n%s", short)
	}

	long := err.Format(true)
	if !strings.Contains(long, "Error chain:") ||
		!strings.Contains(long, "1. outer: inner") ||
		!strings.Contains(long, "2. inner") {
		t.Errorf("Format(true) missing error chain:\n%s", long)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want untyped nil", err)
	}

	ae := NewErrorContext().
		WithOperation("install example_software").
		WithResource("apt-get").
		WithSuggestion("Run as root").
		WithSuggestion("Check the package name").
		WithIssue(InstallFailedId).
		Build()
	if ae == nil {
		t.Fatal("Build() returned nil")
	}
	if ae.IssueID != InstallFailedId {
		t.Errorf("IssueID = %d, want %d", ae.IssueID, InstallFailedId)
	}
	if len(ae.Suggestions) != 2 {
		t.Errorf("Suggestions = %q, want 2 entries", ae.Suggestions)
	}
}
