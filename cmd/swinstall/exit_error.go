// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/swinstall/swinstall/pkg/types"
)

// ExitError carries a non-zero exit status out of a RunE handler. Commands
// return it for --strict failures; Execute turns it into the process status.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the underlying message, or the bare status when there is none.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCode maps an error from the command tree to a process exit status:
// 0 for nil, the carried code for an ExitError, 1 otherwise.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && !exitErr.Code.IsSuccess() {
		return int(exitErr.Code)
	}
	return 1
}
