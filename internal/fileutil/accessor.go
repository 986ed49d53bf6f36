package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/oshokin/textkit/internal/constants"
)

//go:generate $MOCKGEN -source=accessor.go -destination=mocks/accessor_mock.go

// Accessor reads and writes whole files as text.
type Accessor interface {
	// ReadFile returns the full content of the file at path.
	ReadFile(path string) (string, error)
	// WriteFile replaces the content of the file at path, creating it if needed.
	WriteFile(path, content string) error
	// Read returns the full content of the file at path, or an empty string on any failure.
	Read(path string) string
	// Write replaces the content of the file at path and reports whether it succeeded.
	Write(path, content string) bool
}

// AccessorImpl is an Accessor backed by an afero filesystem.
type AccessorImpl struct {
	// fs is the filesystem every call goes through.
	fs afero.Fs
	// perm is the mode given to newly created files.
	perm os.FileMode
}

// NewAccessor creates an Accessor over fs. Files it creates get perm.
func NewAccessor(fs afero.Fs, perm os.FileMode) Accessor {
	return &AccessorImpl{
		fs:   fs,
		perm: perm,
	}
}

// NewOSAccessor creates an Accessor over the host filesystem with default permissions.
func NewOSAccessor() Accessor {
	return NewAccessor(afero.NewOsFs(), constants.DefaultFilePermissions)
}

// ReadFile returns the full content of the file at path.
func (a *AccessorImpl) ReadFile(path string) (string, error) {
	file, err := a.fs.Open(filepath.Clean(path))
	if err != nil {
		return "", classifyError("open", path, err)
	}

	defer file.Close() //nolint:errcheck // Nothing was written, close errors carry no data loss.

	stat, err := file.Stat()
	if err != nil {
		return "", classifyError("stat", path, err)
	}

	if stat.IsDir() {
		return "", &PathError{Op: "read", Path: path, Kind: ErrIsDirectory, Err: ErrIsDirectory}
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return "", classifyError("read", path, err)
	}

	return string(content), nil
}

// WriteFile truncates the file at path and writes content to it verbatim.
// Missing parent directories are not created.
func (a *AccessorImpl) WriteFile(path, content string) (err error) {
	file, err := a.fs.OpenFile(filepath.Clean(path), constants.OverwriteFileFlags, a.perm)
	if err != nil {
		if stat, statErr := a.fs.Stat(filepath.Clean(path)); statErr == nil && stat.IsDir() {
			return &PathError{Op: "write", Path: path, Kind: ErrIsDirectory, Err: ErrIsDirectory}
		}

		return classifyError("open", path, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = classifyError("close", path, closeErr)
		}
	}()

	if _, err = io.WriteString(file, content); err != nil {
		return classifyError("write", path, err)
	}

	return nil
}

// Read returns the full content of the file at path.
// Any failure yields an empty string, indistinguishable from an empty file.
func (a *AccessorImpl) Read(path string) string {
	content, err := a.ReadFile(path)
	if err != nil {
		return ""
	}

	return content
}

// Write truncates the file at path and writes content to it.
// It returns false when the file could not be opened or written.
func (a *AccessorImpl) Write(path, content string) bool {
	return a.WriteFile(path, content) == nil
}
