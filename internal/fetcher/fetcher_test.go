// SPDX-License-Identifier: MPL-2.0

package fetcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// installVersion lays out <root>/<version>[/std] on disk.
func installVersion(t *testing.T, root string, version string, withStd bool) {
	t.Helper()

	dir := filepath.Join(root, version)
	if withStd {
		dir = filepath.Join(dir, StdDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll(%s) error = %v", dir, err)
	}
}

func TestResolverRoot(t *testing.T) {
	t.Parallel()

	t.Run("override wins", func(t *testing.T) {
		t.Parallel()

		r := &Resolver{RootDir: "/opt/haxe-versions"}
		got, err := r.Root()
		if err != nil {
			t.Fatalf("Root() error = %v", err)
		}
		if got != "/opt/haxe-versions" {
			t.Errorf("Root() = %q, want %q", got, "/opt/haxe-versions")
		}
	})

	t.Run("derived from home", func(t *testing.T) {
		t.Parallel()

		r := &Resolver{HomeDir: func() (string, error) { return filepath.FromSlash("/home/u"), nil }}
		got, err := r.Root()
		if err != nil {
			t.Fatalf("Root() error = %v", err)
		}
		want := filepath.Join(filepath.FromSlash("/home/u"), InstallationsDirName)
		if got != want {
			t.Errorf("Root() = %q, want %q", got, want)
		}
	})

	t.Run("home unresolvable", func(t *testing.T) {
		t.Parallel()

		r := &Resolver{HomeDir: func() (string, error) { return "", errors.New("no home") }}
		_, err := r.Root()
		if !errors.Is(err, ErrRootUnavailable) {
			t.Fatalf("Root() error = %v, want ErrRootUnavailable", err)
		}
	})
}

func TestInstallationPathIsPure(t *testing.T) {
	t.Parallel()

	// Points at a directory that does not exist: path construction must not
	// touch the filesystem.
	r := &Resolver{RootDir: filepath.Join(t.TempDir(), "never-created")}

	got, err := r.InstallationPath("4.3.7")
	if err != nil {
		t.Fatalf("InstallationPath() error = %v", err)
	}
	want := filepath.Join(r.RootDir, "4.3.7")
	if got != want {
		t.Errorf("InstallationPath() = %q, want %q", got, want)
	}

	std, err := r.StdPath("4.3.7")
	if err != nil {
		t.Fatalf("StdPath() error = %v", err)
	}
	if want := filepath.Join(r.RootDir, "4.3.7", StdDirName); std != want {
		t.Errorf("StdPath() = %q, want %q", std, want)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	installVersion(t, root, "4.3.7", true)
	installVersion(t, root, "4.2.0", false)

	r := &Resolver{RootDir: root}

	tests := []struct {
		name    string
		version Version
		want    Status
	}{
		{name: "usable", version: "4.3.7", want: StatusUsable},
		{name: "missing std", version: "4.2.0", want: StatusMissingStd},
		{name: "absent", version: "9.9.9", want: StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Check(tt.version)
			if err != nil {
				t.Fatalf("Check(%s) error = %v", tt.version, err)
			}
			if got != tt.want {
				t.Errorf("Check(%s) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	installVersion(t, root, "4.3.7", true)
	installVersion(t, root, "4.2.0", false)

	r := &Resolver{RootDir: root}

	t.Run("usable version returns installation path", func(t *testing.T) {
		t.Parallel()

		got, err := r.Validate("4.3.7")
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if want := filepath.Join(root, "4.3.7"); got != want {
			t.Errorf("Validate() = %q, want %q", got, want)
		}
	})

	t.Run("absent version", func(t *testing.T) {
		t.Parallel()

		_, err := r.Validate("9.9.9")
		var nie *NotInstalledError
		if !errors.As(err, &nie) {
			t.Fatalf("Validate() error = %v, want NotInstalledError", err)
		}
		if nie.Version != "9.9.9" {
			t.Errorf("NotInstalledError.Version = %q, want %q", nie.Version, "9.9.9")
		}
		if nie.Status != StatusNotFound {
			t.Errorf("NotInstalledError.Status = %v, want StatusNotFound", nie.Status)
		}
	})

	t.Run("incomplete version preserves tri-state", func(t *testing.T) {
		t.Parallel()

		_, err := r.Validate("4.2.0")
		var nie *NotInstalledError
		if !errors.As(err, &nie) {
			t.Fatalf("Validate() error = %v, want NotInstalledError", err)
		}
		if nie.Status != StatusMissingStd {
			t.Errorf("NotInstalledError.Status = %v, want StatusMissingStd", nie.Status)
		}
		if !errors.Is(err, ErrNotInstalled) {
			t.Error("error does not wrap ErrNotInstalled")
		}
	})

	t.Run("empty identifier rejected", func(t *testing.T) {
		t.Parallel()

		_, err := r.Validate("")
		if !errors.Is(err, ErrInvalidVersion) {
			t.Fatalf("Validate(\"\") error = %v, want ErrInvalidVersion", err)
		}
	})
}

func TestValidateRootUnavailable(t *testing.T) {
	t.Parallel()

	r := &Resolver{HomeDir: func() (string, error) { return "", errors.New("simulated") }}

	// Every version fails the same way when the home directory is unknown.
	for _, v := range []Version{"4.3.7", "9.9.9", "anything"} {
		if _, err := r.Validate(v); !errors.Is(err, ErrRootUnavailable) {
			t.Errorf("Validate(%s) error = %v, want ErrRootUnavailable", v, err)
		}
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	t.Run("mixed statuses", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		installVersion(t, root, "4.3.7", true)
		installVersion(t, root, "4.2.0", false)
		// Stray files under the root are not versions.
		if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		r := &Resolver{RootDir: root}
		entries, err := r.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("List() returned %d entries, want 2", len(entries))
		}

		byVersion := make(map[Version]Status)
		for _, e := range entries {
			byVersion[e.Version] = e.Status
		}
		if byVersion["4.3.7"] != StatusUsable {
			t.Errorf("status of 4.3.7 = %v, want StatusUsable", byVersion["4.3.7"])
		}
		if byVersion["4.2.0"] != StatusMissingStd {
			t.Errorf("status of 4.2.0 = %v, want StatusMissingStd", byVersion["4.2.0"])
		}
	})

	t.Run("missing root is empty, not an error", func(t *testing.T) {
		t.Parallel()

		r := &Resolver{RootDir: filepath.Join(t.TempDir(), "absent")}
		entries, err := r.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("List() returned %d entries, want 0", len(entries))
		}
	})
}
