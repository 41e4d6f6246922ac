// SPDX-License-Identifier: MPL-2.0

package platform

import "strings"

const (
	// Unsupported is any host that is not one of the supported families.
	// It is the zero value so an unset Platform never dispatches.
	Unsupported Platform = iota
	// LinuxPlatform is a Linux host (apt-based installation).
	LinuxPlatform
	// WindowsPlatform is a Windows host.
	WindowsPlatform
	// MacOSPlatform is a macOS (Darwin) host.
	MacOSPlatform
)

// Platform identifies the host operating system family.
type Platform int

// Supported returns the supported platforms in dispatch order.
func Supported() []Platform {
	return []Platform{LinuxPlatform, WindowsPlatform, MacOSPlatform}
}

// Parse maps an operating system name to a Platform. Matching is
// case-insensitive and accepts both runtime.GOOS spellings ("darwin") and
// uname spellings ("Darwin"). Unknown names map to Unsupported.
func Parse(name string) Platform {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Linux:
		return LinuxPlatform
	case Windows:
		return WindowsPlatform
	case Darwin, "macos":
		return MacOSPlatform
	default:
		return Unsupported
	}
}

// String returns the human-readable platform name used in console output.
func (p Platform) String() string {
	switch p {
	case LinuxPlatform:
		return "Linux"
	case WindowsPlatform:
		return "Windows"
	case MacOSPlatform:
		return "macOS"
	case Unsupported:
		return "Unsupported"
	default:
		return "Unsupported"
	}
}

// GOOS returns the runtime.GOOS value for the platform, or "" for Unsupported.
func (p Platform) GOOS() string {
	switch p {
	case LinuxPlatform:
		return Linux
	case WindowsPlatform:
		return Windows
	case MacOSPlatform:
		return Darwin
	case Unsupported:
		return ""
	default:
		return ""
	}
}

// IsSupported reports whether p is one of the supported platforms.
func (p Platform) IsSupported() bool {
	switch p {
	case LinuxPlatform, WindowsPlatform, MacOSPlatform:
		return true
	case Unsupported:
		return false
	default:
		return false
	}
}
