// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing errors with remediation
// suggestions. Every error mask surfaces to the terminal goes through an
// ActionableError so the message can say what failed, on which resource,
// and what the user can do about it.
package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError is an error with context for user-facing error messages.
// It carries the operation that was attempted, the resource involved, and
// optional suggestions for fixing the problem.
type ActionableError struct {
	// Operation describes what was being attempted (e.g. "validate Haxe version").
	Operation string

	// Resource identifies the file, path, or version involved (optional).
	Resource string

	// Suggestions provides hints on how to fix the issue (optional).
	Suggestions []string

	// Cause is the underlying error that triggered this one (optional).
	Cause error
}

// Wrap wraps an error with operation context.
func Wrap(err error, operation string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Cause: err}
}

// WrapResource wraps an error with operation and resource context.
func WrapResource(err error, operation, resource string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Resource: resource, Cause: err}
}

// Error implements the error interface. Returns the concise form used for
// default (non-verbose) output.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}

	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Suggest appends suggestions and returns the error for chaining.
func (e *ActionableError) Suggest(sugs ...string) *ActionableError {
	e.Suggestions = append(e.Suggestions, sugs...)
	return e
}

// Format returns the full message. Suggestions are listed as bullets; in
// verbose mode the complete error chain is appended.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder

	msg.WriteString(e.Error())

	for _, suggestion := range e.Suggestions {
		msg.WriteString("\n  • ")
		msg.WriteString(suggestion)
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		err := e.Cause
		depth := 1
		for err != nil {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			err = errors.Unwrap(err)
			depth++
		}
	}

	return msg.String()
}
