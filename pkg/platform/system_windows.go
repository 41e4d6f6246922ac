// SPDX-License-Identifier: MPL-2.0

//go:build windows

package platform

// SystemName returns "Windows".
func SystemName() string {
	return SystemWindows
}
