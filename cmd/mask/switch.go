// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/r6915ee/mask-hx/internal/fetcher"
	"github.com/r6915ee/mask-hx/internal/issue"
	"github.com/r6915ee/mask-hx/internal/maskfile"

	"github.com/spf13/cobra"
)

var switchCmd = &cobra.Command{
	Use:   "switch <version>",
	Short: "Pin the working directory to a Haxe version",
	Long: `Pin the working directory to a Haxe version.

Writes the version identifier to the .mask file, creating it when absent.
By default the target installation is verified first; pass --no-verify to
record a version that is not installed yet (or set verify_switch = false
in the global config).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version := fetcher.Version(args[0])

		verify := appCfg.VerifySwitch
		if cmd.Flags().Changed("verify") {
			verify, _ = cmd.Flags().GetBool("verify")
		}

		logger.Debug("switching version", "version", version, "verify", verify)

		err := maskfile.Write(maskFile, version, maskfile.Options{
			Verify:   verify,
			Resolver: newResolver(),
		})
		if err != nil {
			ae := issue.WrapResource(err, "switch Haxe version", version.String())
			if errors.Is(err, fetcher.ErrNotInstalled) {
				ae.Suggest(
					fmt.Sprintf("Install Haxe %s under ~/.haxe/%s", version, version),
					"Use --no-verify to record the version anyway",
					"Run 'mask list' to see installed versions",
				)
			}
			return ae
		}

		fmt.Printf("%s Switched to Haxe version %s\n",
			SuccessStyle.Render("✓"), VersionStyle.Render(version.String()))
		return nil
	},
}

func init() {
	switchCmd.Flags().Bool("verify", true, "verify the installation before writing")
	switchCmd.Flags().Bool("no-verify", false, "write the version without verifying it")
	switchCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// --no-verify is sugar for --verify=false.
		if noVerify, _ := cmd.Flags().GetBool("no-verify"); noVerify {
			return cmd.Flags().Set("verify", "false")
		}
		return nil
	}
}
