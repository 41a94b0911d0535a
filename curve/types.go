// Package curve: domain types for the Hilbert L-system and its traversals.
package curve

// Point is a grid coordinate visited by the curve, 0-indexed, bounded by
// the grid side 2^depth. Row grows "upward" in curve terms: the up move
// increments Row, down decrements it; right/left act on Col the same way.
type Point struct {
	Row, Col int
}

// Step pairs a visitation index with the coordinate visited at that index.
// Step 0 is always (0,0); consecutive Steps differ by exactly one unit on
// exactly one axis.
type Step struct {
	T  int   // 0-based visitation index
	At Point // grid coordinate visited at index T
}

// symbol is one token of the L-system work list: either a quadrant symbol
// (non-terminal until its depth reaches 0, then discarded) or one of the
// four directional moves (deferred until depth 0, then executed).
type symbol uint8

const (
	symH symbol = iota // base quadrant pattern
	symA               // H rotated for the left flank
	symB               // H rotated for the right flank
	symC               // H mirrored for the far corner
	moveUp             // Row+1
	moveDown           // Row-1
	moveRight          // Col+1
	moveLeft           // Col-1
)

// workItem is the unit of expansion: a symbol with its remaining depth.
type workItem struct {
	sym   symbol
	depth int
}
