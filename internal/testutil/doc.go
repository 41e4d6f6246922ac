// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers shared by swinstall tests: isolating the
// process environment and throttling container-backed integration tests.
package testutil
