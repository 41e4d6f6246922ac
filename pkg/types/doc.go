// SPDX-License-Identifier: MPL-2.0

// Package types defines small validated value types shared by the installer,
// the runners and the CLI. It imports only the standard library.
package types
