// Package bench: sentinel error set.
package bench

import "errors"

var (
	// ErrNonPositiveLoops indicates a loop count below 1.
	ErrNonPositiveLoops = errors.New("bench: loops must be at least 1")

	// ErrOutputMismatch indicates the naive and curve-order engines
	// produced different outputs for the same inputs. The products are
	// bit-exact by construction, so this always means a bug.
	ErrOutputMismatch = errors.New("bench: product outputs differ")
)
