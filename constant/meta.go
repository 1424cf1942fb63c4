// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Vizor is the canonical application identifier used for filesystem paths and CLI branding.
	Vizor = "vizor"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// WatchURLTemplate is the fmt template used to resolve a catalog video ID into a playable URL.
	WatchURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Build metadata injected at link time via -ldflags.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)
