package curve_test

import (
	"testing"

	"github.com/katalvlaran/hilbert/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewWalker_NegativeDepth verifies that a negative depth is rejected
// with ErrNegativeDepth rather than producing an empty walker.
func TestNewWalker_NegativeDepth(t *testing.T) {
	_, err := curve.NewWalker(-1)
	assert.ErrorIs(t, err, curve.ErrNegativeDepth, "depth=-1 must error")

	_, err = curve.Order(-3)
	assert.ErrorIs(t, err, curve.ErrNegativeDepth, "Order(-3) must error")
}

// TestOrder_Depth0 pins the degenerate single-cell grid: exactly one Step,
// index 0, coordinate (0,0).
func TestOrder_Depth0(t *testing.T) {
	order, err := curve.Order(0)
	require.NoError(t, err)
	assert.Equal(t, []curve.Step{{T: 0, At: curve.Point{Row: 0, Col: 0}}}, order)
}

// TestOrder_Depth1Path pins the exact 2×2 path for the chosen orientation:
// (0,0) → (1,0) → (1,1) → (0,1).
func TestOrder_Depth1Path(t *testing.T) {
	order, err := curve.Order(1)
	require.NoError(t, err)

	want := []curve.Step{
		{T: 0, At: curve.Point{Row: 0, Col: 0}},
		{T: 1, At: curve.Point{Row: 1, Col: 0}},
		{T: 2, At: curve.Point{Row: 1, Col: 1}},
		{T: 3, At: curve.Point{Row: 0, Col: 1}},
	}
	assert.Equal(t, want, order)
}

// TestOrder_CoverageAndIndexing verifies, for depths 0..5, that the
// traversal has exactly 4^depth Steps indexed 0..4^depth-1 and that the
// visited set is the full side×side grid — no duplicates, no omissions,
// nothing out of bounds.
func TestOrder_CoverageAndIndexing(t *testing.T) {
	for depth := 0; depth <= 5; depth++ {
		order, err := curve.Order(depth)
		require.NoError(t, err, "depth=%d", depth)

		side := 1 << uint(depth)
		require.Len(t, order, side*side, "depth=%d", depth)

		seen := make(map[curve.Point]bool, side*side)
		for t2, s := range order {
			assert.Equal(t, t2, s.T, "depth=%d: step index must match position", depth)
			assert.GreaterOrEqual(t, s.At.Row, 0, "depth=%d", depth)
			assert.Less(t, s.At.Row, side, "depth=%d", depth)
			assert.GreaterOrEqual(t, s.At.Col, 0, "depth=%d", depth)
			assert.Less(t, s.At.Col, side, "depth=%d", depth)
			assert.False(t, seen[s.At], "depth=%d: coordinate %v visited twice", depth, s.At)
			seen[s.At] = true
		}
		assert.Len(t, seen, side*side, "depth=%d: grid not fully covered", depth)
	}
}

// TestOrder_Adjacency verifies the Hamiltonian-path property: every pair of
// consecutive Steps is at Manhattan distance exactly 1.
func TestOrder_Adjacency(t *testing.T) {
	for depth := 1; depth <= 5; depth++ {
		order, err := curve.Order(depth)
		require.NoError(t, err, "depth=%d", depth)

		for k := 1; k < len(order); k++ {
			dist := abs(order[k].At.Row-order[k-1].At.Row) + abs(order[k].At.Col-order[k-1].At.Col)
			require.Equal(t, 1, dist,
				"depth=%d: steps %d→%d jump from %v to %v", depth, k-1, k, order[k-1].At, order[k].At)
		}
	}
}

// TestOrder_StartsAtOrigin verifies that every depth starts at (0,(0,0)).
func TestOrder_StartsAtOrigin(t *testing.T) {
	for depth := 0; depth <= 6; depth++ {
		order, err := curve.Order(depth)
		require.NoError(t, err)
		assert.Equal(t, curve.Step{T: 0, At: curve.Point{Row: 0, Col: 0}}, order[0], "depth=%d", depth)
	}
}

// TestOrder_Deterministic verifies repeated generation yields identical
// sequences.
func TestOrder_Deterministic(t *testing.T) {
	first, err := curve.Order(4)
	require.NoError(t, err)
	second, err := curve.Order(4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestWalker_MatchesOrder verifies the lazy and eager forms are
// observationally identical: same Steps, same count.
func TestWalker_MatchesOrder(t *testing.T) {
	const depth = 4
	order, err := curve.Order(depth)
	require.NoError(t, err)

	w, err := curve.NewWalker(depth)
	require.NoError(t, err)
	require.Equal(t, len(order), w.Len())

	for k := 0; k < w.Len(); k++ {
		s, err := w.Next()
		require.NoError(t, err, "pull %d", k)
		require.Equal(t, order[k], s, "pull %d", k)
	}
}

// TestWalker_Exhausted verifies that pulling past the known length fails
// with ErrExhausted, on the first and on every subsequent over-pull.
func TestWalker_Exhausted(t *testing.T) {
	w, err := curve.NewWalker(2)
	require.NoError(t, err)

	for k := 0; k < w.Len(); k++ {
		_, err = w.Next()
		require.NoError(t, err, "pull %d", k)
	}
	for k := 0; k < 3; k++ {
		_, err = w.Next()
		assert.ErrorIs(t, err, curve.ErrExhausted, "over-pull %d", k)
	}
}

// TestDepth_Truncation pins the documented sharp edge: Depth is a plain
// floor(log2) and silently rounds non-powers-of-two down.
func TestDepth_Truncation(t *testing.T) {
	assert.Equal(t, 0, curve.Depth(1))
	assert.Equal(t, 1, curve.Depth(2))
	assert.Equal(t, 10, curve.Depth(1024))
	assert.Equal(t, 9, curve.Depth(1000), "non-power-of-two must truncate, not round")
	assert.Equal(t, 2, curve.Depth(7))
	assert.Equal(t, 0, curve.Depth(0))
}

// TestDepthForSide verifies the validating variant: exact powers of two
// map to their exponent, everything else errors.
func TestDepthForSide(t *testing.T) {
	for d := 0; d <= 12; d++ {
		got, err := curve.DepthForSide(1 << uint(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	for _, n := range []int{-4, 0, 3, 7, 1000} {
		_, err := curve.DepthForSide(n)
		assert.ErrorIs(t, err, curve.ErrSideNotPowerOfTwo, "n=%d", n)
	}
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
