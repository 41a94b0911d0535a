// Package curve: sentinel error set. All exported functions return these
// sentinels and tests match them via errors.Is; no panics on caller input.
package curve

import "errors"

var (
	// ErrNegativeDepth indicates a requested curve depth below zero.
	ErrNegativeDepth = errors.New("curve: depth must be non-negative")

	// ErrExhausted indicates a Walker was pulled past its known length.
	// This is fatal: it means either over-iteration by the caller or an
	// internal accounting bug, never a recoverable condition.
	ErrExhausted = errors.New("curve: walker exhausted")

	// ErrSideNotPowerOfTwo indicates a grid side that is not an exact
	// power of two (or is non-positive).
	ErrSideNotPowerOfTwo = errors.New("curve: grid side must be a power of two")
)
