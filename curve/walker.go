package curve

// Walker produces the Hilbert traversal lazily, one Step per Next call.
//
// A Walker is strictly single-use and forward-only: no seeking, no rewind,
// and no concurrent consumption from two goroutines. It holds no external
// resources and performs no I/O; discard it when done.
//
// The expansion runs over an explicit FIFO work list of (symbol, depth)
// items rather than recursion, so arbitrarily deep curves never grow the
// call stack and the walker can pause between pulls.
type Walker struct {
	total     int // side², the number of Steps this walker emits
	remaining int // Steps left before exhaustion
	index     int // visitation index of the next move-emitted Step
	row, col  int // running coordinate

	queue []workItem // FIFO work list; live items are queue[head:]
	head  int

	buf      Step // next Step to hand out, valid when buffered
	buffered bool
}

// NewWalker returns a Walker over the depth-d curve. The first Next call
// yields Step{0, Point{0, 0}}; exactly 4^depth Steps follow in total.
// Returns ErrNegativeDepth if depth < 0.
// Complexity: O(1).
func NewWalker(depth int) (*Walker, error) {
	if depth < 0 {
		return nil, ErrNegativeDepth
	}
	side := 1 << uint(depth)
	w := &Walker{
		total:     side * side,
		remaining: side * side,
		index:     1,
		queue:     []workItem{{symH, depth}},
		buf:       Step{T: 0, At: Point{Row: 0, Col: 0}},
		buffered:  true,
	}

	return w, nil
}

// Len reports the total number of Steps the walker emits: 4^depth.
// It does not change as Steps are consumed.
// Complexity: O(1).
func (w *Walker) Len() int { return w.total }

// Next returns the next Step of the traversal. Once all Len() Steps have
// been produced, every further call returns ErrExhausted — over-iteration
// is an accounting error, never silently tolerated.
// Complexity: amortized O(depth) per call.
func (w *Walker) Next() (Step, error) {
	if w.remaining == 0 {
		return Step{}, ErrExhausted
	}
	w.step()
	if !w.buffered {
		// Work list drained before the promised length: internal bug.
		return Step{}, ErrExhausted
	}
	w.remaining--
	w.buffered = false

	return w.buf, nil
}

// step advances the work list until a Step is buffered or the list drains.
func (w *Walker) step() {
	for !w.buffered && w.head < len(w.queue) {
		it := w.queue[w.head]
		w.head++
		if it.depth == 0 {
			switch it.sym {
			case moveUp:
				w.row++
			case moveDown:
				w.row--
			case moveRight:
				w.col++
			case moveLeft:
				w.col--
			default:
				// Quadrant symbol at depth 0: terminal, encodes no move.
				continue
			}
			w.buf = Step{T: w.index, At: Point{Row: w.row, Col: w.col}}
			w.index++
			w.buffered = true

			continue
		}
		w.expand(it)
	}
}

// expand rewrites one positive-depth work item. Quadrant symbols produce
// the seven-item production of the L-system; moves are re-queued unchanged
// at depth−1, deferring their execution until the list unwinds to depth 0.
// This expand-first, move-at-the-base ordering is what yields the fractal
// visitation order instead of a flat raster.
func (w *Walker) expand(it workItem) {
	d := it.depth - 1
	switch it.sym {
	case symH:
		// H(d) → A, ↑, H, →, H, ↓, B
		w.push(symA, d)
		w.push(moveUp, d)
		w.push(symH, d)
		w.push(moveRight, d)
		w.push(symH, d)
		w.push(moveDown, d)
		w.push(symB, d)
	case symA:
		// A(d) → H, →, A, ↑, A, ←, C
		w.push(symH, d)
		w.push(moveRight, d)
		w.push(symA, d)
		w.push(moveUp, d)
		w.push(symA, d)
		w.push(moveLeft, d)
		w.push(symC, d)
	case symB:
		// B(d) → C, ←, B, ↓, B, →, H
		w.push(symC, d)
		w.push(moveLeft, d)
		w.push(symB, d)
		w.push(moveDown, d)
		w.push(symB, d)
		w.push(moveRight, d)
		w.push(symH, d)
	case symC:
		// C(d) → B, ↓, C, ←, C, ↑, A
		w.push(symB, d)
		w.push(moveDown, d)
		w.push(symC, d)
		w.push(moveLeft, d)
		w.push(symC, d)
		w.push(moveUp, d)
		w.push(symA, d)
	default:
		// Moves ride the queue until depth 0.
		w.push(it.sym, d)
	}
}

// push appends a work item, reclaiming the consumed prefix of the backing
// slice once it dominates the length. This keeps the slice-backed FIFO at
// amortized O(1) per operation with memory proportional to live items.
func (w *Walker) push(s symbol, d int) {
	if w.head > 64 && w.head*2 >= len(w.queue) {
		n := copy(w.queue, w.queue[w.head:])
		w.queue = w.queue[:n]
		w.head = 0
	}
	w.queue = append(w.queue, workItem{sym: s, depth: d})
}
