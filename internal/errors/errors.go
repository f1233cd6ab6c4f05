// Package errors provides the error taxonomy for the stackgen CLI.
package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the template or destination path (optional).
	Location string

	// Field is the configuration field name for validation errors (optional).
	Field string

	// Context contains additional key-value context (optional), printed in key order.
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for _, k := range slices.Sorted(maps.Keys(e.Context)) {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewGenerationError describes a failed generation run. The cause keeps its
// sentinel so callers can still classify it with errors.Is. context names the
// run, e.g. the template source and router strategy, and may be nil.
func NewGenerationError(cause error, output string, context map[string]string) error {
	d := &DetailError{
		Type:     "generation failed",
		Message:  cause.Error(),
		Location: output,
		Context:  context,
		Cause:    cause,
	}
	switch {
	case errors.Is(cause, ErrMissingSubtree):
		d.Hint = "Check that --templates points at a complete template tree, or omit it to use the built-in templates."
	case errors.Is(cause, ErrTemplate), errors.Is(cause, ErrEncoding):
		d.Hint = "Fix the template named above and re-run."
	case errors.Is(cause, ErrFilesystem):
		d.Hint = "Remove the partially generated directory and re-run."
	}
	return d
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// WrapPath attaches a path and cause to a sentinel.
func WrapPath(sentinel error, path string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", path, sentinel)
	}
	return fmt.Errorf("%s: %w: %w", path, sentinel, cause)
}
