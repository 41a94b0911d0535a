//go:build !linux

package perfcount

// measure on non-Linux platforms: no counters, run nothing.
func measure(_ int, _ func()) (Counters, error) {
	return Counters{}, ErrUnsupported
}
