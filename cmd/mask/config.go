// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/r6915ee/mask-hx/internal/config"

	"github.com/spf13/cobra"
)

// configCmd is the `mask config` command tree for the global configuration
// (not the project-local .mask file; see `mask switch` for that).
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mask's global configuration",
	Long: `Manage mask's global configuration.

Configuration is stored in:
  - Linux: ~/.config/mask/config.toml
  - macOS: ~/Library/Application Support/mask/config.toml
  - Windows: %APPDATA%\mask\config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.CreateDefault(); err != nil {
				return err
			}
			cfgPath, err := config.ConfigFilePath()
			if err != nil {
				return err
			}
			fmt.Printf("%s Configuration ready at %s\n",
				SuccessStyle.Render("✓"), VersionStyle.Render(cfgPath))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := config.ConfigFilePath()
			if err != nil {
				return err
			}
			fmt.Println(cfgPath)
			return nil
		},
	})
}

func showConfig() error {
	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	cfgPath, err := config.ConfigFilePath()
	if err == nil {
		fmt.Printf("%s: %s\n", VersionStyle.Render("Config file"), cfgPath)
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", VersionStyle.Render("default_version"), SuccessStyle.Render(appCfg.DefaultVersion))
	if appCfg.InstallationsDir != "" {
		fmt.Printf("%s: %s\n", VersionStyle.Render("installations_dir"), SuccessStyle.Render(appCfg.InstallationsDir))
	} else {
		fmt.Printf("%s: %s\n", VersionStyle.Render("installations_dir"), SubtitleStyle.Render("(default: ~/.haxe)"))
	}
	fmt.Printf("%s: %v\n", VersionStyle.Render("verify_switch"), appCfg.VerifySwitch)
	fmt.Printf("%s: verbose=%v quiet=%v\n", VersionStyle.Render("ui"), appCfg.UI.Verbose, appCfg.UI.Quiet)

	return nil
}
