// Package utils provides the ambient utilities shared by the CLI and the
// boundary layer: file writes, JSON payload decoding, HTTP requests,
// WebSocket broadcasting, logging setup, and build version information.
package utils

// Build information (set via ldflags during build).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// UserAgent returns the User-Agent string sent with outgoing HTTP
// requests (utils.Get, utils.Do).
func UserAgent() string {
	return "ruvox/" + Version
}
