// Package matvec: shape validation kept out of the hot paths.
//
// Naive and CurveOrder index without bounds reasoning of their own, by
// design: the product loops favor raw throughput over defensive checks.
// Callers validate once, up front, then time the unchecked loops.
package matvec

// ValidateShapes checks the product-engine preconditions: a matrix (or
// flattened matrix) of n*n entries, a vector and an output of n entries.
// The bench package and the tests call this before every unchecked run.
// Returns ErrSizeMismatch on any disagreement; nil otherwise.
// Complexity: O(1).
func ValidateShapes(matrixLen, vecLen, outLen, n int) error {
	if n < 0 || matrixLen != n*n || vecLen != n || outLen != n {
		return ErrSizeMismatch
	}

	return nil
}
