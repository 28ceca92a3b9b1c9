// SPDX-License-Identifier: MPL-2.0

// mask is a Haxe toolchain version manager and launcher.
//
// It resolves a Haxe version (from a flag, the MASK_HAXE_VERSION environment
// variable, or a .mask file), validates the matching installation under
// ~/.haxe, and launches toolchain binaries with the installation prefixed
// onto the search path.
package main

import cmd "github.com/r6915ee/mask-hx/cmd/mask"

func main() {
	cmd.Execute()
}
