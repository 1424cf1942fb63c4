//go:build !linux && !android

package guard

// DefaultProbe has no portable tracer detection on this platform and
// never reports suspicion.
func DefaultProbe() bool {
	return false
}
