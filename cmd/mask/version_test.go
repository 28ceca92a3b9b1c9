// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/r6915ee/mask-hx/internal/config"
)

// useMaskFile points the package-level --mask-file flag at a temp file for
// the duration of the test.
func useMaskFile(t *testing.T, contents string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mask")
	if contents != "" {
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	old := maskFile
	maskFile = path
	t.Cleanup(func() { maskFile = old })
}

func TestResolveVersionPrecedence(t *testing.T) {
	cfg := &config.Config{DefaultVersion: "4.0.5"}

	t.Run("flag beats everything", func(t *testing.T) {
		t.Setenv(EnvVersionVar, "4.2.0")
		useMaskFile(t, "4.1.0\n")

		v, source, err := resolveVersion("4.3.7", cfg)
		if err != nil {
			t.Fatalf("resolveVersion() error = %v", err)
		}
		if v != "4.3.7" || source != sourceFlag {
			t.Errorf("resolveVersion() = (%q, %v), want (4.3.7, flag)", v, source)
		}
	})

	t.Run("environment beats mask file", func(t *testing.T) {
		t.Setenv(EnvVersionVar, "4.2.0")
		useMaskFile(t, "4.1.0\n")

		v, source, err := resolveVersion("", cfg)
		if err != nil {
			t.Fatalf("resolveVersion() error = %v", err)
		}
		if v != "4.2.0" || source != sourceEnv {
			t.Errorf("resolveVersion() = (%q, %v), want (4.2.0, env)", v, source)
		}
	})

	t.Run("mask file beats default", func(t *testing.T) {
		t.Setenv(EnvVersionVar, "")
		useMaskFile(t, "4.1.0\n")

		v, source, err := resolveVersion("", cfg)
		if err != nil {
			t.Fatalf("resolveVersion() error = %v", err)
		}
		if v != "4.1.0" || source != sourceFile {
			t.Errorf("resolveVersion() = (%q, %v), want (4.1.0, file)", v, source)
		}
	})

	t.Run("default used when file missing", func(t *testing.T) {
		t.Setenv(EnvVersionVar, "")
		useMaskFile(t, "")

		v, source, err := resolveVersion("", cfg)
		if err != nil {
			t.Fatalf("resolveVersion() error = %v", err)
		}
		if v != "4.0.5" || source != sourceDefault {
			t.Errorf("resolveVersion() = (%q, %v), want (4.0.5, default)", v, source)
		}
	})

	t.Run("no source at all is an error", func(t *testing.T) {
		t.Setenv(EnvVersionVar, "")
		useMaskFile(t, "")

		if _, _, err := resolveVersion("", &config.Config{}); err == nil {
			t.Fatal("resolveVersion() succeeded with no version source")
		}
	})
}
