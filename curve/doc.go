// Package curve generates discretized Hilbert space-filling curves:
// an ordering of all cells of a 2^d × 2^d grid in which consecutive
// cells are always grid-adjacent, so nearby visitation indices map to
// nearby coordinates.
//
// What:
//
//   - Order(depth) materializes the full traversal: side² Steps, each pairing
//     a visitation index with its (Row, Col) coordinate, starting at (0,0).
//   - Walker is the lazy, pull-based form of the same sequence: single-use,
//     forward-only, one Step per Next call.
//   - Depth / DepthForSide derive the curve depth from a grid side length.
//
// Why:
//
//   - Cache-aware iteration: walk a dense matrix so consecutive accesses stay
//     spatially close, instead of striding across full rows.
//   - Spatial indexing: linearize 2D keys while preserving locality.
//   - Benchmarking: compare row-major and curve-order traversals (see the
//     matvec and bench packages).
//
// How:
//
//	The curve is produced by an L-system. Four quadrant symbols H, A, B, C
//	(rotations/reflections of the base pattern) rewrite, at positive depth,
//	into seven work items — four quadrant symbols interleaved with three
//	unit moves. Moves ride the work list unchanged until depth 0, where they
//	advance the running coordinate by one step; a quadrant symbol at depth 0
//	expands to nothing. Expansion runs over an explicit FIFO work list, not
//	recursion, so stack depth stays bounded and the walker can pause between
//	pulls.
//
// Complexity:
//
//   - Order(depth): O(d·4^d) time, O(4^d) memory (the result dominates).
//   - Walker.Next: amortized O(d) per step, O(d·2^d) peak work-list memory.
//
// Errors:
//
//   - ErrNegativeDepth: requested depth is negative.
//   - ErrExhausted: a Walker was pulled past its side² steps.
//   - ErrSideNotPowerOfTwo: DepthForSide given n ≤ 0 or a non-power-of-two.
//
// The grid side must be an exact power of two. Depth(n) keeps the historical
// floor(log2 n) behavior and silently truncates otherwise — a documented
// sharp edge; use DepthForSide when the input is not known to be valid.
package curve
