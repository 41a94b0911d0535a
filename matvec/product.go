package matvec

import "github.com/katalvlaran/hilbert/curve"

// Naive accumulates the row-major matrix-vector product into output:
// output[i] += matrix[i*n+j] * v[j] for all i, j.
//
// Hot path: no length validation (see ValidateShapes), no allocation.
// output is caller-owned and is expected zero-initialized for a single
// product; it is the only buffer written.
// Complexity: O(n²), sequential reads over matrix.
func Naive(matrix, v, output []int32, n int) {
	for i := 0; i < n; i++ {
		row := matrix[i*n : i*n+n]
		acc := output[i]
		for j, m := range row {
			acc += m * v[j]
		}
		output[i] = acc
	}
}

// CurveOrder accumulates the same product in a single pass over the curve
// traversal: output[i] += flattened[t] * v[j] for every Step (t,(i,j)).
//
// Reads over flattened are sequential; accesses to v and output scatter
// along the curve, which is the locality trade under measurement. Given
// the same inputs, the result is bit-identical to Naive: integer addition
// commutes and the traversal visits every (i,j) exactly once.
//
// Hot path: no length validation (see ValidateShapes), no allocation.
// Complexity: O(n²).
func CurveOrder(flattened, v, output []int32, order []curve.Step) {
	for k := range order {
		s := &order[k]
		output[s.At.Row] += flattened[s.T] * v[s.At.Col]
	}
}
