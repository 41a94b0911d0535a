package bench

import (
	"math/rand"

	"github.com/katalvlaran/hilbert/curve"
	"github.com/katalvlaran/hilbert/matvec"
)

// Value bounds for generated entries, inclusive. Small positive integers
// keep n accumulations of n products far inside int32 for every size the
// harness sweeps.
const (
	minValue = 1
	maxValue = 10
)

// Inputs generates a random n×n matrix and n-vector with entries uniform
// in [1,10], drawn from the caller's seeded source. The same source state
// always yields the same buffers.
// Complexity: O(n²).
func Inputs(n int, rng *rand.Rand) (matrix, vec []int32) {
	span := maxValue - minValue + 1
	matrix = make([]int32, n*n)
	for i := range matrix {
		matrix[i] = int32(rng.Intn(span) + minValue)
	}
	vec = make([]int32, n)
	for i := range vec {
		vec[i] = int32(rng.Intn(span) + minValue)
	}

	return matrix, vec
}

// SetupCurve prepares the curve-order side of an experiment: derives the
// depth for side n (rejecting non-powers-of-two), builds the traversal,
// and flattens the matrix into visitation order. Both results are
// immutable afterwards and reusable across any number of timed products.
// Returns curve.ErrSideNotPowerOfTwo or matvec.ErrSizeMismatch on bad input.
// Complexity: O(n² · log n).
func SetupCurve(n int, matrix []int32) ([]curve.Step, []int32, error) {
	depth, err := curve.DepthForSide(n)
	if err != nil {
		return nil, nil, err
	}
	order, err := curve.Order(depth)
	if err != nil {
		return nil, nil, err
	}
	flattened, err := matvec.Flatten(matrix, order, n)
	if err != nil {
		return nil, nil, err
	}

	return order, flattened, nil
}
