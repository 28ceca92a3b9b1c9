// SPDX-License-Identifier: MPL-2.0

package fetcher

import (
	"errors"
	"fmt"
)

var (
	// ErrRootUnavailable is the sentinel error wrapped by RootUnavailableError.
	ErrRootUnavailable = errors.New("installations root unavailable")
	// ErrNotInstalled is the sentinel error wrapped by NotInstalledError.
	ErrNotInstalled = errors.New("version not installed")
	// ErrProbeFailed is the sentinel error wrapped by ProbeError.
	ErrProbeFailed = errors.New("existence check failed")
)

type (
	// Status is the tri-state outcome of probing an installation directory.
	Status int

	// RootUnavailableError is returned when the user's home directory cannot
	// be determined, which makes every resolution fail for the session.
	RootUnavailableError struct {
		Err error
	}

	// NotInstalledError is returned by Validate when the targeted version is
	// not usable. Status preserves whether the version directory was absent
	// entirely or present without its standard library.
	NotInstalledError struct {
		Version Version
		Status  Status
	}

	// ProbeError is returned when a filesystem existence check itself failed
	// (permissions, I/O). Deliberately distinct from "does not exist".
	ProbeError struct {
		Path string
		Err  error
	}
)

const (
	// StatusNotFound means the version directory is absent.
	StatusNotFound Status = iota
	// StatusMissingStd means the version directory exists but its
	// standard-library marker is absent: present but incomplete.
	StatusMissingStd
	// StatusUsable means both the directory and the marker exist.
	StatusUsable
)

// String returns a short human-readable form of the status.
func (s Status) String() string {
	switch s {
	case StatusUsable:
		return "usable"
	case StatusMissingStd:
		return "missing std"
	default:
		return "not installed"
	}
}

// Error implements the error interface.
func (e *RootUnavailableError) Error() string {
	return fmt.Sprintf("installations root unavailable: home directory not accessible: %v", e.Err)
}

// Unwrap returns ErrRootUnavailable so callers can use errors.Is.
func (e *RootUnavailableError) Unwrap() error { return ErrRootUnavailable }

// Error implements the error interface. The message distinguishes an absent
// installation from a present-but-incomplete one.
func (e *NotInstalledError) Error() string {
	if e.Status == StatusMissingStd {
		return fmt.Sprintf("Haxe version %s is installed but incomplete (std directory missing)", e.Version)
	}
	return fmt.Sprintf("Haxe version %s is not installed", e.Version)
}

// Unwrap returns ErrNotInstalled so callers can use errors.Is.
func (e *NotInstalledError) Unwrap() error { return ErrNotInstalled }

// Error implements the error interface.
func (e *ProbeError) Error() string {
	return fmt.Sprintf("existence check failed for %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying OS error. errors.Is(err, ErrProbeFailed)
// also matches through Is.
func (e *ProbeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrProbeFailed.
func (e *ProbeError) Is(target error) bool { return target == ErrProbeFailed }
