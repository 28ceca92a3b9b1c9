// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/r6915ee/mask-hx/internal/fetcher"
	"github.com/r6915ee/mask-hx/internal/issue"

	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active Haxe version and where it came from",
	Long: `Show the active Haxe version and where it came from.

The version is resolved with the usual precedence (MASK_HAXE_VERSION,
then the .mask file, then the configured default) and validated against
the installations directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		version, source, err := resolveVersion("", appCfg)
		if err != nil {
			return &ExitError{Code: exitCodeNoVersion, Err: err}
		}

		resolver := newResolver()
		installation, err := resolver.Validate(version)
		if err != nil {
			if errors.Is(err, fetcher.ErrNotInstalled) {
				fmt.Printf("%s Haxe version %s (from %s) is selected but %s\n",
					WarningStyle.Render("!"),
					VersionStyle.Render(version.String()),
					source,
					statusOf(err))
				return &ExitError{Code: exitCodeNoVersion}
			}
			return issue.WrapResource(err, "resolve active Haxe version", version.String())
		}

		fmt.Printf("%s Haxe version %s (from %s)\n",
			SuccessStyle.Render("✓"), VersionStyle.Render(version.String()), source)
		fmt.Printf("  %s\n", SubtitleStyle.Render(installation))
		return nil
	},
}

// statusOf renders the not-installed flavor of a validation error.
func statusOf(err error) string {
	var nie *fetcher.NotInstalledError
	if errors.As(err, &nie) && nie.Status == fetcher.StatusMissingStd {
		return "incomplete (std directory missing)"
	}
	return "not installed"
}
