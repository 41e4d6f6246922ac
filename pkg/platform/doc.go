// SPDX-License-Identifier: MPL-2.0

// Package platform identifies the host operating system family.
//
// The Platform type is a closed enumeration (Linux, Windows, MacOS and
// Unsupported). Callers switch over it exhaustively, so adding a platform
// is a compile-time checked change in every dispatch site. The package also
// detects application sandboxes (Flatpak, Snap) whose confinement changes how
// host package managers must be spawned.
package platform
