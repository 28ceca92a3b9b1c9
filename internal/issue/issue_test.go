// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "resolve Haxe version"},
			want: "failed to resolve Haxe version",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "resolve Haxe version", Resource: "4.3.7"},
			want: "failed to resolve Haxe version: 4.3.7",
		},
		{
			name: "with cause",
			err:  &ActionableError{Operation: "read mask file", Resource: ".mask", Cause: errors.New("permission denied")},
			want: "failed to read mask file: .mask: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	t.Parallel()

	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) != nil")
	}
	if WrapResource(nil, "anything", "res") != nil {
		t.Error("WrapResource(nil) != nil")
	}
}

func TestUnwrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	err := WrapResource(cause, "launch haxe", "/home/u/.haxe/4.3.7")

	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the cause through Unwrap")
	}
}

func TestFormatSuggestionsAndChain(t *testing.T) {
	t.Parallel()

	inner := errors.New("no such directory")
	err := Wrap(inner, "validate Haxe version").
		Suggest("Run 'mask list' to see installed versions", "Install the version under ~/.haxe")

	plain := err.Format(false)
	if !strings.Contains(plain, "• Run 'mask list' to see installed versions") {
		t.Errorf("Format(false) missing suggestion bullet:\n%s", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Error("Format(false) includes the error chain")
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing error chain:\n%s", verbose)
	}
	if !strings.Contains(verbose, "1. no such directory") {
		t.Errorf("Format(true) missing chained cause:\n%s", verbose)
	}
}
