// SPDX-License-Identifier: MPL-2.0

package platform

// Detect returns the Platform of the running host. The lookup is repeated on
// every call; nothing is cached.
func Detect() Platform {
	return Parse(SystemName())
}
