// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package installer

// effectiveUID returns -1 where uids do not exist.
func effectiveUID() int {
	return -1
}
