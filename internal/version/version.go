// Package version exposes build information injected at link time.
package version

// Build information. Overridden with -ldflags "-X ...".
//
//nolint:gochecknoglobals // Set by the linker.
var (
	Version   = "1.0.0"
	Commit    = "none"
	BuildTime = "unknown"
)

// Short returns the version number.
func Short() string {
	return Version
}

// Full returns the version, commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
