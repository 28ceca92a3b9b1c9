// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/r6915ee/mask-hx/internal/fetcher"
	"github.com/r6915ee/mask-hx/internal/issue"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List installed Haxe versions",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := newResolver()

		entries, err := resolver.List()
		if err != nil {
			return issue.Wrap(err, "list installed Haxe versions").
				Suggest("Verify that your home directory and ~/.haxe are readable")
		}

		if len(entries) == 0 {
			root, rootErr := resolver.Root()
			if rootErr != nil {
				return issue.Wrap(rootErr, "list installed Haxe versions")
			}
			fmt.Printf("No Haxe versions installed under %s\n", VersionStyle.Render(root))
			return nil
		}

		active, _, activeErr := resolveVersion("", appCfg)

		for _, entry := range entries {
			marker := " "
			if activeErr == nil && entry.Version == active {
				marker = SuccessStyle.Render("*")
			}
			switch entry.Status {
			case fetcher.StatusUsable:
				fmt.Printf("%s %s\n", marker, VersionStyle.Render(entry.Version.String()))
			case fetcher.StatusMissingStd:
				fmt.Printf("%s %s %s\n", marker, VersionStyle.Render(entry.Version.String()),
					WarningStyle.Render("(incomplete)"))
			}
		}

		return nil
	},
}
