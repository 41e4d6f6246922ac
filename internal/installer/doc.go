// SPDX-License-Identifier: MPL-2.0

// Package installer dispatches a software installation to the routine for
// the host platform.
//
// The Dispatcher holds one Routine per supported platform and selects exactly
// one of them with an exhaustive switch over platform.Platform. Routines print
// human-readable status lines to the console writer and return a Result; they
// never return an error value or panic, so a failed installation is reported
// without terminating the program. Callers that want a non-zero exit status
// inspect Result.Err.
package installer
