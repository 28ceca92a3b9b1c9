// SPDX-License-Identifier: MPL-2.0

package execute

import "fmt"

// Result is the outcome of a completed launch. Exactly one of the two shapes
// applies: a normal exit with a code, or termination by a signal (in which
// case no numeric exit code exists and none is invented).
type Result struct {
	// ExitCode is the child's exit status. Meaningless when Terminated.
	ExitCode ExitCode

	// Terminated reports that the child was killed by a signal rather than
	// exiting normally.
	Terminated bool

	// Signal names the terminating signal (e.g. "interrupt") when Terminated.
	Signal string
}

// Success reports whether the child ran to completion with exit code 0.
func (r *Result) Success() bool {
	return !r.Terminated && r.ExitCode.IsSuccess()
}

// String returns a short description suitable for diagnostics.
func (r *Result) String() string {
	if r.Terminated {
		return fmt.Sprintf("terminated by signal: %s", r.Signal)
	}
	return fmt.Sprintf("exit status %s", r.ExitCode)
}
