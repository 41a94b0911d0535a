package matvec

import "github.com/katalvlaran/hilbert/curve"

// Flatten permutes a row-major matrix into curve visitation order:
// flattened[t] = matrix[i*n+j] for every Step (t,(i,j)) in order.
//
// The operation is a pure bijective permutation — no value is created,
// lost, or combined. The input is borrowed read-only; the result is a
// fresh buffer reusable across any number of products.
// Returns ErrSizeMismatch unless len(matrix) == n*n and len(order) == n*n.
// Complexity: O(n²) time and memory.
func Flatten(matrix []int32, order []curve.Step, n int) ([]int32, error) {
	if len(matrix) != n*n || len(order) != n*n {
		return nil, ErrSizeMismatch
	}
	flattened := make([]int32, n*n)
	for _, s := range order {
		flattened[s.T] = matrix[s.At.Row*n+s.At.Col]
	}

	return flattened, nil
}

// Unflatten inverts Flatten, recovering the row-major matrix from its
// curve-ordered form: matrix[i*n+j] = flattened[t] for every Step.
// Returns ErrSizeMismatch unless len(flattened) == n*n and len(order) == n*n.
// Complexity: O(n²) time and memory.
func Unflatten(flattened []int32, order []curve.Step, n int) ([]int32, error) {
	if len(flattened) != n*n || len(order) != n*n {
		return nil, ErrSizeMismatch
	}
	matrix := make([]int32, n*n)
	for _, s := range order {
		matrix[s.At.Row*n+s.At.Col] = flattened[s.T]
	}

	return matrix, nil
}
