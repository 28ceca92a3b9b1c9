// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/r6915ee/mask-hx/internal/config"
	"github.com/r6915ee/mask-hx/internal/fetcher"
	"github.com/r6915ee/mask-hx/internal/maskfile"
)

// EnvVersionVar overrides the .mask file when set in the environment.
const EnvVersionVar = "MASK_HAXE_VERSION"

// versionSource records where a resolved version identifier came from.
type versionSource int

const (
	sourceFlag versionSource = iota
	sourceEnv
	sourceFile
	sourceDefault
)

// String names the source for diagnostics.
func (s versionSource) String() string {
	switch s {
	case sourceFlag:
		return "--use flag"
	case sourceEnv:
		return EnvVersionVar + " environment variable"
	case sourceFile:
		return maskFileLabel()
	default:
		return "configured default"
	}
}

func maskFileLabel() string {
	if maskFile != "" {
		return maskFile
	}
	return maskfile.DefaultName + " file"
}

// resolveVersion picks the active version by precedence: explicit flag,
// environment override, .mask file, configured default. A .mask read
// failure falls through to the default; that fallback is CLI policy, the
// core never substitutes one version for another on its own.
func resolveVersion(explicit string, cfg *config.Config) (fetcher.Version, versionSource, error) {
	if explicit != "" {
		return fetcher.Version(explicit), sourceFlag, nil
	}

	if env := os.Getenv(EnvVersionVar); env != "" {
		return fetcher.Version(env), sourceEnv, nil
	}

	if v, err := maskfile.Read(maskFile); err == nil {
		return v, sourceFile, nil
	} else if !os.IsNotExist(err) {
		logger.Debug("mask file unreadable, falling back", "err", err)
	}

	if cfg != nil && cfg.DefaultVersion != "" {
		return fetcher.Version(cfg.DefaultVersion), sourceDefault, nil
	}

	return "", sourceDefault, fmt.Errorf("no Haxe version selected: no %s file, no %s, and no default configured",
		maskfile.DefaultName, EnvVersionVar)
}
