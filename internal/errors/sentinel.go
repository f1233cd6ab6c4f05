package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates an invalid project configuration or project file.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file was not found in a template source.
	ErrNotFound = errors.New("not found")

	// ErrMissingSubtree indicates a required template region is absent.
	ErrMissingSubtree = errors.New("missing required template subtree")

	// ErrTemplate indicates a template failed to parse or execute.
	ErrTemplate = errors.New("template render error")

	// ErrFilesystem indicates a destination directory or file could not be written.
	ErrFilesystem = errors.New("filesystem error")

	// ErrEncoding indicates a marked template file is not valid UTF-8.
	ErrEncoding = errors.New("encoding error")

	// ErrCancelled indicates the user aborted an interactive prompt.
	ErrCancelled = errors.New("cancelled")
)
