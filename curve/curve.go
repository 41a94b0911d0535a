package curve

import "math/bits"

// Order materializes the full depth-d Hilbert traversal: 4^depth Steps,
// Step 0 at (0,0), every cell of the 2^depth × 2^depth grid visited exactly
// once, consecutive Steps one unit apart on one axis.
//
// Order is a thin eager adapter over Walker — same engine, same sequence —
// so the two forms are observationally identical.
// Returns ErrNegativeDepth if depth < 0.
// Complexity: O(depth·4^depth) time, O(4^depth) memory.
func Order(depth int) ([]Step, error) {
	w, err := NewWalker(depth)
	if err != nil {
		return nil, err
	}
	order := make([]Step, 0, w.Len())
	var s Step
	for t := 0; t < w.Len(); t++ {
		if s, err = w.Next(); err != nil {
			return nil, err
		}
		order = append(order, s)
	}

	return order, nil
}

// Depth derives the curve depth from a grid side length as floor(log2(n)).
//
// Sharp edge, kept for compatibility with the original design: a side that
// is not an exact power of two is silently rounded down, sizing the curve
// at 2^Depth(n) ≠ n. Use DepthForSide when n is not known to be valid.
// Complexity: O(1).
func Depth(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n)) - 1
}

// DepthForSide is the validating variant of Depth: it returns the exact
// depth d with 2^d == n, or ErrSideNotPowerOfTwo when n ≤ 0 or n is not a
// power of two. Entry points that accept user-supplied sizes should prefer
// this over Depth.
// Complexity: O(1).
func DepthForSide(n int) (int, error) {
	if n <= 0 || n&(n-1) != 0 {
		return 0, ErrSideNotPowerOfTwo
	}

	return bits.TrailingZeros(uint(n)), nil
}
