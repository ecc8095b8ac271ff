// Package version holds the CLI version, set at build time via ldflags.
package version

// Version is the molecule CLI version.
var Version = "0.0.0-dev"
