// SPDX-License-Identifier: MPL-2.0

// Package execute launches Haxe toolchain binaries from inside a validated
// installation. The launcher is a transparent pass-through: standard streams
// are inherited, arguments are forwarded opaquely, and the only thing added
// is a child environment whose search path is prefixed with the installation
// so the invoked tool (and anything it spawns) resolves companion binaries
// from the same installation.
package execute

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

// Request describes a single toolchain launch. Built fresh per invocation.
type Request struct {
	// Installation is the validated installation directory (from
	// fetcher.Resolver.Validate). The target binary lives directly inside it.
	Installation string

	// Program is the executable name, e.g. "haxe" or "haxelib".
	Program string

	// Args are passed through to the child unchanged.
	Args []string

	// Env is the base environment for the child. Defaults to os.Environ().
	// The search-path variable is prefixed with Installation before spawning;
	// the base itself is never mutated.
	Env []string

	// Stdin, Stdout and Stderr default to the process's own streams, giving
	// interactive inheritance with no buffering layer in between.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run launches the requested program and waits for it to finish.
//
// The executable's existence is checked before spawning so a missing binary
// is reported as an ExecutableNotFoundError naming the exact path, rather
// than as an opaque OS error from the spawn call. Spawn-time failures on a
// binary that does exist (bad permissions, wrong format) come back as a
// SpawnError. Termination by signal is a distinct Result, not a fabricated
// exit code. No retries, no timeout.
func Run(ctx context.Context, req Request) (*Result, error) {
	target := filepath.Join(req.Installation, req.Program)

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ExecutableNotFoundError{Path: target}
		}
		return nil, &SpawnError{Program: target, Err: err}
	}
	if info.IsDir() {
		return nil, &ExecutableNotFoundError{Path: target}
	}

	env := req.Env
	if env == nil {
		env = os.Environ()
	}

	cmd := exec.CommandContext(ctx, target, req.Args...)
	cmd.Env = PrependSearchPath(env, req.Installation)
	cmd.Stdin = orStdin(req.Stdin)
	cmd.Stdout = orStdout(req.Stdout)
	cmd.Stderr = orStderr(req.Stderr)

	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return nil, &SpawnError{Program: target, Err: err}
		}

		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return &Result{Terminated: true, Signal: ws.Signal().String()}, nil
		}
		return &Result{ExitCode: ExitCode(exitErr.ExitCode())}, nil
	}

	return &Result{}, nil
}

func orStdin(r io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return os.Stdin
}

func orStdout(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return os.Stdout
}

func orStderr(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return os.Stderr
}
