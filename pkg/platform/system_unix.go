// SPDX-License-Identifier: MPL-2.0

//go:build unix

package platform

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// SystemName returns the kernel name reported by uname(2), e.g. "Linux" or
// "Darwin". It falls back to runtime.GOOS when uname fails.
func SystemName() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOOS
	}
	name := unix.ByteSliceToString(uts.Sysname[:])
	if name == "" {
		return runtime.GOOS
	}
	return name
}
