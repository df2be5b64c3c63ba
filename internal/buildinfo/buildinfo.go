// Package buildinfo carries build-time metadata injected via ldflags,
// kept apart from user configuration.
package buildinfo

// Set at build time:
//
//	go build -ldflags "-X .../internal/buildinfo.Version=v1.2.3 -X .../internal/buildinfo.BuildDate=2026-08-23"
var (
	Version   string
	BuildDate string
)

// VersionString returns the human-readable version line used by the CLI.
func VersionString() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if BuildDate == "" {
		return v
	}
	return v + " (built " + BuildDate + ")"
}
