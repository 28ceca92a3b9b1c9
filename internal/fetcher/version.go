// SPDX-License-Identifier: MPL-2.0

package fetcher

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidVersion is the sentinel error wrapped by InvalidVersionError.
var ErrInvalidVersion = errors.New("invalid version")

type (
	// Version is an opaque identifier naming a Haxe release, e.g. "4.3.7".
	// No internal structure is imposed: versions are never parsed, compared,
	// or ordered, only matched exactly against directory names.
	Version string

	// InvalidVersionError is returned when a Version is empty or would
	// escape the installations root when used as a path segment.
	InvalidVersionError struct {
		Value Version
	}
)

// Error implements the error interface.
func (e *InvalidVersionError) Error() string {
	if strings.TrimSpace(string(e.Value)) == "" {
		return "invalid version: identifier is empty"
	}
	return fmt.Sprintf("invalid version %q: must be a bare directory name", e.Value)
}

// Unwrap returns ErrInvalidVersion so callers can use errors.Is.
func (e *InvalidVersionError) Unwrap() error { return ErrInvalidVersion }

// IsValid returns whether the Version can name an installation directory,
// and a list of validation errors if it cannot. Identifiers stay opaque:
// the only constraints are non-emptiness and being a single path segment.
func (v Version) IsValid() (bool, []error) {
	if strings.TrimSpace(string(v)) == "" {
		return false, []error{&InvalidVersionError{Value: v}}
	}
	if strings.ContainsAny(string(v), `/\`) || v == "." || v == ".." {
		return false, []error{&InvalidVersionError{Value: v}}
	}
	return true, nil
}

// String returns the identifier text.
func (v Version) String() string { return string(v) }
