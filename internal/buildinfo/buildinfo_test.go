package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionStringDefaults(t *testing.T) {
	origVersion, origDate := Version, BuildDate
	t.Cleanup(func() { Version, BuildDate = origVersion, origDate })

	Version, BuildDate = "", ""
	assert.Equal(t, "dev", VersionString())

	Version = "v1.4.0"
	assert.Equal(t, "v1.4.0", VersionString())

	BuildDate = "2026-08-23"
	assert.Equal(t, "v1.4.0 (built 2026-08-23)", VersionString())
}
