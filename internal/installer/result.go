// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"errors"
	"fmt"

	"github.com/swinstall/swinstall/internal/runner"
	"github.com/swinstall/swinstall/pkg/platform"
	"github.com/swinstall/swinstall/pkg/types"
)

const (
	// OutcomeSucceeded means the install command ran.
	OutcomeSucceeded Outcome = iota + 1
	// OutcomeFailed means the install command could not be run.
	OutcomeFailed
	// OutcomeNotImplemented means the platform routine performs no action.
	OutcomeNotImplemented
	// OutcomeUnsupported means no routine exists for the host.
	OutcomeUnsupported
)

var (
	// ErrInstallFailed is wrapped by Result.Err for OutcomeFailed.
	ErrInstallFailed = errors.New("installation failed")
	// ErrNotImplemented is wrapped by Result.Err for OutcomeNotImplemented.
	ErrNotImplemented = errors.New("installation not implemented")
	// ErrUnsupportedPlatform is wrapped by Result.Err for OutcomeUnsupported.
	ErrUnsupportedPlatform = errors.New("unsupported operating system")
)

type (
	// Outcome classifies how an installation attempt ended.
	Outcome int

	// Result describes one installation attempt.
	Result struct {
		Platform platform.Platform
		Software types.PackageName
		Outcome  Outcome
		// Reason is the stringified error for OutcomeFailed, or a short
		// explanation for the other non-success outcomes.
		Reason string
		// Cause is the runner error behind OutcomeFailed.
		Cause error
		// Command is the command that was handed to the runner, if any.
		Command *runner.Command
		// ExitCode is the exit status of the install command. It is recorded
		// but does not influence Outcome.
		ExitCode types.ExitCode
	}
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	case OutcomeNotImplemented:
		return "not implemented"
	case OutcomeUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Succeeded reports whether the install command ran.
func (r Result) Succeeded() bool {
	return r.Outcome == OutcomeSucceeded
}

// Err returns nil for a successful installation and an error wrapping one of
// the package sentinels otherwise.
func (r Result) Err() error {
	switch r.Outcome {
	case OutcomeSucceeded:
		return nil
	case OutcomeFailed:
		if r.Cause != nil {
			return fmt.Errorf("%w: %s on %s: %w", ErrInstallFailed, r.Software, r.Platform, r.Cause)
		}
		return fmt.Errorf("%w: %s on %s: %s", ErrInstallFailed, r.Software, r.Platform, r.Reason)
	case OutcomeNotImplemented:
		return fmt.Errorf("%w: %s on %s", ErrNotImplemented, r.Software, r.Platform)
	case OutcomeUnsupported:
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, r.Reason)
	default:
		return fmt.Errorf("unknown installation outcome %v", r.Outcome)
	}
}
