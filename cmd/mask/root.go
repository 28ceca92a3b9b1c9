// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for mask.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/r6915ee/mask-hx/internal/config"
	"github.com/r6915ee/mask-hx/internal/fetcher"
	"github.com/r6915ee/mask-hx/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Exit codes beyond plain failure. Code 22 for unrecognized usage is kept
// from the original CLI; 21 signals that no valid version could be resolved
// at all, as opposed to the child process's own exit code.
const (
	exitCodeFailure   = 1
	exitCodeNoVersion = 21
	exitCodeUsage     = 22
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug output
	verbose bool
	// quiet suppresses everything below error level
	quiet bool
	// cfgFile allows specifying a custom global config file
	cfgFile string
	// maskFile allows specifying an alternate .mask file path
	maskFile string

	// appCfg is the loaded global configuration (defaults when loading fails).
	appCfg = config.DefaultConfig()

	// logger is the shared CLI logger; level follows --verbose/--quiet.
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "mask"})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "mask",
		Short: "A Haxe version manager and launcher",
		Long: TitleStyle.Render("mask") + SubtitleStyle.Render(" - A Haxe version manager and launcher") + `

mask resolves locally installed Haxe versions under ~/.haxe, validates
them, and launches toolchain binaries with the selected installation
prefixed onto the search path, so haxe, haxelib, and anything they spawn
see the same version.

The active version comes from, in order: the --use flag, the
MASK_HAXE_VERSION environment variable, the .mask file in the working
directory, and finally the configured default.

` + SubtitleStyle.Render("Examples:") + `
  mask check 4.3.7          Check whether Haxe 4.3.7 is installed
  mask switch 4.3.7         Pin this project to Haxe 4.3.7
  mask haxe --version       Run haxe from the active version
  mask list                 List installed versions`,
		SilenceErrors: true,
		// ArbitraryArgs so an unrecognized subcommand reaches RunE and exits
		// with the usage code instead of cobra's default error path.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return &ExitError{
				Code: exitCodeUsage,
				Err:  fmt.Errorf("unknown command %q; use 'mask --help' to see a list of commands", args[0]),
			}
		},
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only print errors")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "global config file (default is the platform config dir)")
	rootCmd.PersistentFlags().StringVar(&maskFile, "mask-file", "", "version file to use (default is ./.mask)")

	// Flag parse failures are usage errors, not runtime failures.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ExitError{Code: exitCodeUsage, Err: err}
	})

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(haxeCmd)
	rootCmd.AddCommand(haxelibCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling; fang renders the error
	// itself, so only suggestions and the exit code are handled here.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var ae *issue.ActionableError
		if errors.As(err, &ae) && len(ae.Suggestions) > 0 {
			for _, suggestion := range ae.Suggestions {
				fmt.Fprintln(os.Stderr, SubtitleStyle.Render("  • "+suggestion))
			}
		}

		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(exitCodeFailure)
	}
}

// initRootConfig reads the global config file and applies UI preferences.
func initRootConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		// Config trouble must never block version resolution; warn and keep defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	} else {
		appCfg = cfg
	}

	if !verbose {
		verbose = appCfg.UI.Verbose
	}
	if !quiet {
		quiet = appCfg.UI.Quiet
	}

	switch {
	case verbose:
		logger.SetLevel(log.DebugLevel)
	case quiet:
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// newResolver builds the fetcher for the current invocation, honoring the
// configured installations root override.
func newResolver() *fetcher.Resolver {
	r := fetcher.NewResolver()
	r.Logger = logger
	if appCfg.InstallationsDir != "" {
		r.RootDir = appCfg.InstallationsDir
	}
	return r
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
