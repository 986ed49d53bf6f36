package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestShort tests the Short function.
func TestShort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Version, Short())
}

// TestFull tests the Full function.
func TestFull(t *testing.T) {
	t.Parallel()

	full := Full()
	assert.Contains(t, full, "version: "+Version)
	assert.Contains(t, full, "commit: "+Commit)
	assert.Contains(t, full, "built at: "+BuildTime)
}

// TestVersionFormat tests that the default version looks like a semantic version.
func TestVersionFormat(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Commit)
	assert.NotEmpty(t, BuildTime)
	assert.Contains(t, Version, ".")
	assert.NotContains(t, Version, " ")
}
