// SPDX-License-Identifier: MPL-2.0

// Package fetcher resolves and validates locally installed Haxe versions.
//
// Versions live under ~/.haxe, one directory per version. An installation is
// usable when its standard-library directory exists; that marker is what
// every invocation actually depends on, so its presence is the practical
// definition of "installed". The fetcher never downloads, installs, or
// removes anything.
package fetcher

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const (
	// InstallationsDirName is the directory under the user's home that holds
	// one subdirectory per installed Haxe version.
	InstallationsDirName = ".haxe"

	// StdDirName is the marker subpath inside an installation whose presence
	// defines the installation as usable.
	StdDirName = "std"
)

// Resolver locates Haxe installations on disk.
//
// The zero value is not usable; construct with NewResolver. The home
// directory lookup is injectable so callers (and tests) can simulate an
// unresolvable home, and RootDir lets the global config relocate the
// installations root entirely.
type Resolver struct {
	// RootDir overrides the installations root when non-empty. The home
	// directory is never consulted in that case.
	RootDir string

	// HomeDir resolves the user's home directory. Defaults to os.UserHomeDir.
	HomeDir func() (string, error)

	// Logger receives path-construction tracing at debug level.
	Logger *log.Logger
}

// NewResolver returns a Resolver using the host's home directory lookup.
func NewResolver() *Resolver {
	return &Resolver{HomeDir: os.UserHomeDir}
}

// Root returns the installations root directory, normally <home>/.haxe.
// Returns a RootUnavailableError when the home directory cannot be
// determined; in that state every resolution for the session fails.
func (r *Resolver) Root() (string, error) {
	if r.RootDir != "" {
		return r.RootDir, nil
	}

	homeDir := r.HomeDir
	if homeDir == nil {
		homeDir = os.UserHomeDir
	}

	home, err := homeDir()
	if err != nil {
		return "", &RootUnavailableError{Err: err}
	}

	root := filepath.Join(home, InstallationsDirName)
	r.trace(root)
	return root, nil
}

// InstallationPath returns <root>/<version>. Pure path construction; the
// filesystem is not touched. Fails only if the root cannot be resolved.
func (r *Resolver) InstallationPath(version Version) (string, error) {
	root, err := r.Root()
	if err != nil {
		return "", err
	}

	path := filepath.Join(root, string(version))
	r.trace(path)
	return path, nil
}

// StdPath returns the marker subpath <root>/<version>/std. Callers that
// want "the standard library path" of a validated installation use this.
func (r *Resolver) StdPath(version Version) (string, error) {
	installation, err := r.InstallationPath(version)
	if err != nil {
		return "", err
	}

	path := filepath.Join(installation, StdDirName)
	r.trace(path)
	return path, nil
}

// Check probes the installation of a version and reports its tri-state
// status. A filesystem error during probing (e.g. permission denied) is
// returned as a ProbeError, distinct from absence: the remediation for
// "fix your filesystem" is not "install the version".
func (r *Resolver) Check(version Version) (Status, error) {
	if ok, errs := version.IsValid(); !ok {
		return StatusNotFound, errs[0]
	}

	installation, err := r.InstallationPath(version)
	if err != nil {
		return StatusNotFound, err
	}

	if _, err := os.Stat(installation); err != nil {
		if os.IsNotExist(err) {
			return StatusNotFound, nil
		}
		return StatusNotFound, &ProbeError{Path: installation, Err: err}
	}

	marker := filepath.Join(installation, StdDirName)
	r.trace(marker)

	if _, err := os.Stat(marker); err != nil {
		if os.IsNotExist(err) {
			return StatusMissingStd, nil
		}
		return StatusMissingStd, &ProbeError{Path: marker, Err: err}
	}

	return StatusUsable, nil
}

// Validate is the primary entry point: it turns a version identifier into a
// validated installation path. On success the returned path is the version
// directory (not the marker); callers that need the marker use StdPath.
// When the version is not usable the error is a NotInstalledError carrying
// the probed status for diagnostics.
func (r *Resolver) Validate(version Version) (string, error) {
	status, err := r.Check(version)
	if err != nil {
		return "", err
	}

	if status != StatusUsable {
		return "", &NotInstalledError{Version: version, Status: status}
	}

	// Check already resolved the root, so this cannot fail here.
	return r.InstallationPath(version)
}

func (r *Resolver) trace(path string) {
	if r.Logger != nil {
		r.Logger.Debug("resolved path", "path", path)
	}
}
