// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"sync"
)

// Sandbox type constants.
const (
	// SandboxNone indicates no sandbox environment detected.
	SandboxNone SandboxType = ""
	// SandboxFlatpak indicates a Flatpak sandbox environment.
	SandboxFlatpak SandboxType = "flatpak"
	// SandboxSnap indicates a Snap sandbox environment.
	SandboxSnap SandboxType = "snap"
)

// detectOnce caches the sandbox detection result for the lifetime of the process.
//
// INVARIANT: detectSandboxFrom MUST NOT panic. sync.OnceValue re-panics on
// every call after a panic, which would make every spawn fail.
var detectOnce = sync.OnceValue(func() SandboxType {
	return detectSandboxFrom(os.Getenv, statFile)
})

// SandboxType identifies the type of application sandbox, if any.
type SandboxType string

// DetectSandbox returns the type of application sandbox the current process is running in.
//
// Detection methods:
//   - Flatpak: Checks for existence of /.flatpak-info
//   - Snap: Checks for SNAP_NAME environment variable
func DetectSandbox() SandboxType {
	return detectOnce()
}

// HostCommand rewrites name/args so that the command runs on the host rather
// than inside the detected sandbox. Package managers live on the host, so a
// Flatpak build must go through flatpak-spawn. Snap confinement offers no
// host escape and the command is returned unchanged.
func HostCommand(name string, args []string) (string, []string) {
	return HostCommandFor(DetectSandbox(), name, args)
}

// HostCommandFor is the pure form of HostCommand for a given sandbox type.
func HostCommandFor(st SandboxType, name string, args []string) (string, []string) {
	switch st {
	case SandboxFlatpak:
		spawnArgs := make([]string, 0, len(args)+2)
		spawnArgs = append(spawnArgs, "--host", name)
		spawnArgs = append(spawnArgs, args...)
		return "flatpak-spawn", spawnArgs
	case SandboxNone, SandboxSnap:
		return name, args
	default:
		return name, args
	}
}

// detectSandboxFrom performs sandbox detection using the provided lookup functions.
// Accepting lookupEnv and statFile as parameters allows tests to inject custom
// behavior without mutating process-wide state.
func detectSandboxFrom(lookupEnv func(string) string, statFile func(string) error) SandboxType {
	// Flatpak takes precedence; /.flatpak-info is always present inside its sandboxes.
	if err := statFile("/.flatpak-info"); err == nil {
		return SandboxFlatpak
	}

	if lookupEnv("SNAP_NAME") != "" {
		return SandboxSnap
	}

	return SandboxNone
}

// statFile wraps os.Stat to match the func(string) error signature.
func statFile(path string) error {
	_, err := os.Stat(path)
	return err
}
