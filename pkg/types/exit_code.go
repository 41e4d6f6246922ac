// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Exit statuses with a conventional meaning in POSIX shells.
const (
	ExitCodeCannotExecute   ExitCode = 126
	ExitCodeCommandNotFound ExitCode = 127
	// exitCodeSignalBase is added to the signal number when a shell reports
	// a child killed by a signal.
	exitCodeSignalBase ExitCode = 128
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode is a process exit status in the POSIX range 0-255. Zero is success.
	ExitCode int

	// InvalidExitCodeError reports a status outside 0-255, such as the -1
	// os/exec returns for a process killed by a signal.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an InvalidExitCodeError for values outside 0-255.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

func (c ExitCode) IsSuccess() bool { return c == 0 }

// IsCommandNotFound reports whether a shell exited because the executable
// could not be found.
func (c ExitCode) IsCommandNotFound() bool { return c == ExitCodeCommandNotFound }

// Meaning describes the status for log output.
func (c ExitCode) Meaning() string {
	switch {
	case c == 0:
		return "success"
	case c == ExitCodeCannotExecute:
		return "not executable"
	case c == ExitCodeCommandNotFound:
		return "command not found"
	case c > exitCodeSignalBase && c <= 255:
		return fmt.Sprintf("killed by signal %d", int(c-exitCodeSignalBase))
	case c.Validate() != nil:
		return "invalid"
	default:
		return "failure"
	}
}

func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
