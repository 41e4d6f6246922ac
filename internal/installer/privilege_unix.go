// SPDX-License-Identifier: MPL-2.0

//go:build unix

package installer

import "golang.org/x/sys/unix"

func effectiveUID() int {
	return unix.Geteuid()
}
