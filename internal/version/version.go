// Package version provides build version information for the application.
// It is a separate package so that any package can report the version
// without importing cli.
package version

// Version is the build version string, set by main from ldflags.
// Format: vX.Y.Z or vX.Y.Z-dev for development builds.
var Version = "v0.1.0"

// BuildTime is the build timestamp, set by main from ldflags.
var BuildTime = "unknown"
