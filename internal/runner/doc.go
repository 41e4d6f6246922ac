// SPDX-License-Identifier: MPL-2.0

// Package runner invokes external commands on behalf of the installer.
//
// Three runners implement the Runner interface:
//   - ExecRunner spawns the process directly with os/exec.
//   - ShellRunner runs the command through the embedded mvdan/sh interpreter.
//   - DryRunRunner prints the command line and spawns nothing.
//
// Runners report a started process's exit status in Result.ExitCode and only
// use Result.Error for failures to run the command at all (missing binary,
// permission denied, cancelled context).
package runner
