// SPDX-License-Identifier: MPL-2.0

// Command swinstall installs software with the host platform's package manager.
package main

import "github.com/swinstall/swinstall/cmd/swinstall"

func main() {
	cmd.Execute()
}
