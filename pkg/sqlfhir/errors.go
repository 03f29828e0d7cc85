package sqlfhir

import (
	"errors"
	"fmt"
)

// FileAccessError indicates an input file could not be read.
// Callers can detect it with errors.As and inspect the failing path.
type FileAccessError struct {
	Path string // Path to the unreadable file
	Err  error  // Underlying cause
}

// Error implements the error interface.
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FileAccessError) Unwrap() error { return e.Err }

// WriteError indicates an output file or its parent directory could not be
// created or written.
type WriteError struct {
	Path string // Target path that failed
	Err  error  // Underlying cause
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *WriteError) Unwrap() error { return e.Err }

// ErrInvalidConfig indicates the project configuration is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// ExitCodeForError returns the process exit code for an error.
// Returns ExitSuccess (0) for nil, semantic codes for classified errors,
// and ExitGeneralError (1) otherwise.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var accessErr *FileAccessError
	var writeErr *WriteError
	switch {
	case errors.As(err, &accessErr):
		return ExitReadError
	case errors.As(err, &writeErr):
		return ExitWriteError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	}

	return ExitGeneralError
}
