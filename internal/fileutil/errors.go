package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound indicates that the file, or a directory on its path, does not exist.
	ErrNotFound = errors.New("no such file or directory")
	// ErrPermissionDenied indicates that the process may not access the file.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrIsDirectory indicates that the path names a directory.
	ErrIsDirectory = errors.New("path is a directory")
	// ErrIO indicates any other I/O failure.
	ErrIO = errors.New("file i/o failed")
)

// PathError records a failed file operation.
// It matches both its Kind sentinel and the underlying cause with errors.Is.
type PathError struct {
	// Op is the failed operation: open, stat, read, write or close.
	Op string
	// Path is the path as given by the caller.
	Path string
	// Kind is one of the package sentinel errors.
	Kind error
	// Err is the underlying filesystem error.
	Err error
}

// Error returns the operation, the path and the cause.
func (e *PathError) Error() string {
	return fmt.Sprintf("failed to %s '%s': %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the sentinel and the cause.
func (e *PathError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// classifyError wraps err with the sentinel matching its cause.
func classifyError(op, path string, err error) error {
	var kind error

	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = ErrPermissionDenied
	default:
		kind = ErrIO
	}

	return &PathError{Op: op, Path: path, Kind: kind, Err: err}
}
