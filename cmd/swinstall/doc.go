// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the swinstall CLI commands.
//
// Commands are built per invocation from an App, which carries the
// configuration provider, the runner factory and the output streams. The
// root command installs the configured software, so `swinstall` and
// `swinstall install` behave the same.
package cmd
