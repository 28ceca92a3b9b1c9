// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/r6915ee/mask-hx/internal/fetcher"
	"github.com/r6915ee/mask-hx/internal/issue"

	"github.com/spf13/cobra"
)

// checkCmd reports whether a Haxe version is installed and usable.
var checkCmd = &cobra.Command{
	Use:   "check <version>",
	Short: "Check whether a Haxe version is installed",
	Long: `Check whether a Haxe version is installed.

A version is usable when ~/.haxe/<version>/std exists. A version directory
without a std subdirectory is reported as incomplete, which usually means
an interrupted unpack.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version := fetcher.Version(args[0])
		resolver := newResolver()

		status, err := resolver.Check(version)
		if err != nil {
			return issue.WrapResource(err, "check Haxe version", version.String()).
				Suggest("Verify that your home directory and ~/.haxe are readable")
		}

		switch status {
		case fetcher.StatusUsable:
			fmt.Printf("%s Haxe version %s is installed and ready to use\n",
				SuccessStyle.Render("✓"), VersionStyle.Render(version.String()))
			return nil
		case fetcher.StatusMissingStd:
			fmt.Printf("%s Haxe version %s is present but incomplete (no std directory)\n",
				WarningStyle.Render("!"), VersionStyle.Render(version.String()))
		default:
			fmt.Printf("%s Haxe version %s is not installed\n",
				ErrorStyle.Render("✗"), VersionStyle.Render(version.String()))
		}

		return &ExitError{Code: exitCodeFailure}
	},
}
