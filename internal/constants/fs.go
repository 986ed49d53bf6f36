package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for files created by textkit: (rw-r--r--).
	// Owner: read and write;
	// Group: read;
	// Others: read.
	DefaultFilePermissions os.FileMode = 0o644

	// MaxFilePermissions is the widest mode accepted from configuration.
	MaxFilePermissions os.FileMode = 0o777
)

// Open flags shared by the file helpers.
const (
	// OverwriteFileFlags opens a file for writing, creating it or truncating existing content.
	OverwriteFileFlags = os.O_CREATE | os.O_TRUNC | os.O_WRONLY
)
