// SPDX-License-Identifier: MPL-2.0

//go:build !unix && !windows

package platform

import "runtime"

// SystemName returns runtime.GOOS on hosts without uname(2).
func SystemName() string {
	return runtime.GOOS
}
