// SPDX-License-Identifier: MPL-2.0

package execute

import (
	"errors"
	"fmt"
)

var (
	// ErrExecutableNotFound is the sentinel error wrapped by ExecutableNotFoundError.
	ErrExecutableNotFound = errors.New("executable not found")
	// ErrSpawnFailed is the sentinel error wrapped by SpawnError.
	ErrSpawnFailed = errors.New("spawn failed")
)

type (
	// ExecutableNotFoundError is returned when the target binary does not
	// exist as a regular file inside the installation. Detected before
	// spawning so the message can name the specific missing path.
	ExecutableNotFoundError struct {
		Path string
	}

	// SpawnError is returned when the binary exists but could not be
	// launched (bad permissions, wrong format, probe failure). Distinct from
	// ExecutableNotFoundError because the remediation differs.
	SpawnError struct {
		Program string
		Err     error
	}
)

// Error implements the error interface.
func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("executable not found at %s", e.Path)
}

// Unwrap returns ErrExecutableNotFound so callers can use errors.Is.
func (e *ExecutableNotFoundError) Unwrap() error { return ErrExecutableNotFound }

// Error implements the error interface.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn %s: %v", e.Program, e.Err)
}

// Unwrap returns the underlying OS error. errors.Is(err, ErrSpawnFailed)
// also matches through Is.
func (e *SpawnError) Unwrap() error { return e.Err }

// Is reports whether target is ErrSpawnFailed.
func (e *SpawnError) Is(target error) bool { return target == ErrSpawnFailed }
