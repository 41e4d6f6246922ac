// SPDX-License-Identifier: MPL-2.0

package platform

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// System names as reported by uname(2) and by Python's platform.system().
const (
	SystemLinux   = "Linux"
	SystemDarwin  = "Darwin"
	SystemWindows = "Windows"
)
