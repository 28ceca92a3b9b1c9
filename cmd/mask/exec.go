// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/r6915ee/mask-hx/internal/execute"
	"github.com/r6915ee/mask-hx/internal/fetcher"
	"github.com/r6915ee/mask-hx/internal/issue"

	"github.com/spf13/cobra"
)

var (
	// useVersion is the explicit version override for exec-style commands.
	useVersion string
	// program is the executable launched by `mask exec`.
	program string

	execCmd = &cobra.Command{
		Use:   "exec [args...]",
		Short: "Run a toolchain binary from the active Haxe version",
		Long: `Run a toolchain binary from the active Haxe version.

The active version is resolved (--use flag, MASK_HAXE_VERSION, .mask file,
configured default), validated, and the binary is launched with standard
streams attached directly to yours. The installation directory is prefixed
onto PATH so companion tools spawned by the child (for example a build
invoking haxe by bare name) come from the same installation.

Arguments are passed through unchanged; use -- to stop flag parsing:

  mask exec -- --version
  mask exec -p haxelib -- install hxcpp`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToolchain(cmd, program, args)
		},
	}

	// haxeCmd is shorthand for `exec -p haxe`. Flag parsing is disabled so
	// every argument, including flags, reaches the child untouched.
	haxeCmd = &cobra.Command{
		Use:                "haxe [args...]",
		Short:              "Run haxe from the active version",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToolchain(cmd, "haxe", args)
		},
	}

	// haxelibCmd is shorthand for `exec -p haxelib`.
	haxelibCmd = &cobra.Command{
		Use:                "haxelib [args...]",
		Short:              "Run haxelib from the active version",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToolchain(cmd, "haxelib", args)
		},
	}
)

func init() {
	execCmd.Flags().StringVarP(&program, "program", "p", "haxe", "executable name inside the installation")
	execCmd.Flags().StringVarP(&useVersion, "use", "u", "", "Haxe version to use (overrides .mask and environment)")
	// Stop flag parsing at the first positional argument so child flags
	// after it pass through without --.
	execCmd.Flags().SetInterspersed(false)

	for _, c := range []*cobra.Command{execCmd, haxeCmd, haxelibCmd} {
		c.Args = cobra.ArbitraryArgs
		c.SilenceUsage = true
	}
}

// runToolchain resolves and validates the active version, then launches the
// named binary from inside it, propagating the child's real exit status.
func runToolchain(cmd *cobra.Command, programName string, args []string) error {
	version, source, err := resolveVersion(useVersion, appCfg)
	if err != nil {
		return &ExitError{Code: exitCodeNoVersion, Err: err}
	}

	logger.Debug("resolved version", "version", version, "source", source.String())

	resolver := newResolver()
	installation, err := resolver.Validate(version)
	if err != nil {
		ae := issue.WrapResource(err, "resolve Haxe version", version.String())
		if errors.Is(err, fetcher.ErrNotInstalled) {
			ae.Suggest(
				fmt.Sprintf("Install Haxe %s under ~/.haxe/%s", version, version),
				"Run 'mask list' to see installed versions",
			)
			return &ExitError{Code: exitCodeNoVersion, Err: ae}
		}
		return ae
	}

	logger.Debug("launching", "program", programName, "installation", installation, "args", args)

	result, err := execute.Run(cmd.Context(), execute.Request{
		Installation: installation,
		Program:      programName,
		Args:         args,
	})
	if err != nil {
		ae := issue.WrapResource(err, "launch "+programName, installation)
		if errors.Is(err, execute.ErrExecutableNotFound) {
			ae.Suggest(fmt.Sprintf("The %s installation has no %q binary", version, programName))
		}
		return ae
	}

	if result.Terminated {
		logger.Debug("child terminated by signal", "signal", result.Signal)
		return &ExitError{Code: exitCodeFailure, Err: fmt.Errorf("%s %s", programName, result)}
	}

	if !result.ExitCode.IsSuccess() {
		// Propagate the child's own code silently; its stderr already spoke.
		return &ExitError{Code: int(result.ExitCode)}
	}

	return nil
}
