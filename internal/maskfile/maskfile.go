// SPDX-License-Identifier: MPL-2.0

// Package maskfile reads and writes the project-local .mask file.
//
// A .mask file is the whole configuration: its entire contents, after
// stripping trailing newline characters, is a Haxe version identifier. The
// default location is the working directory; callers may point at an
// alternate path.
package maskfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/r6915ee/mask-hx/internal/fetcher"
)

// DefaultName is the version file looked up in the working directory.
const DefaultName = ".mask"

// ErrEmpty is returned when the file exists but holds no identifier.
var ErrEmpty = errors.New("mask file is empty")

// Options controls Write behavior.
type Options struct {
	// Verify rejects the write unless the target version validates against
	// the resolver first. Whether switching verifies by default is a policy
	// decision owned by the caller, not by this package.
	Verify bool

	// Resolver performs validation when Verify is set.
	Resolver *fetcher.Resolver
}

// Read returns the version stored at path (DefaultName when path is empty).
// Trailing newline characters are stripped; the identifier itself is
// returned byte-for-byte otherwise.
func Read(path string) (fetcher.Version, error) {
	if path == "" {
		path = DefaultName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	text := strings.TrimRight(string(data), "\r\n")
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrEmpty, path)
	}

	return fetcher.Version(text), nil
}

// Write replaces the file's full contents with the version identifier.
// No trailing newline is added, keeping Read(Write(v)) an exact round trip.
func Write(path string, version fetcher.Version, opts Options) error {
	if path == "" {
		path = DefaultName
	}

	if ok, errs := version.IsValid(); !ok {
		return errs[0]
	}

	if opts.Verify {
		resolver := opts.Resolver
		if resolver == nil {
			resolver = fetcher.NewResolver()
		}
		if _, err := resolver.Validate(version); err != nil {
			return err
		}
	}

	return os.WriteFile(path, []byte(version), 0o644)
}
