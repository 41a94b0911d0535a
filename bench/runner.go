package bench

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/hilbert/matvec"
	"github.com/katalvlaran/hilbert/perfcount"
)

// TimeIt returns the total wall time of loops sequential calls to f.
// Callers divide by loops for the per-call mean.
func TimeIt(loops int, f func()) time.Duration {
	start := time.Now()
	for i := 0; i < loops; i++ {
		f()
	}

	return time.Since(start)
}

// Comparison is the report of one naive-vs-curve experiment.
type Comparison struct {
	N     int // grid side
	Loops int // timed calls per engine

	Generate   time.Duration // input generation
	Preprocess time.Duration // traversal build + matrix flatten
	Naive      time.Duration // total over Loops row-major products
	Curve      time.Duration // total over Loops curve-order products

	Equal bool // outputs matched after all passes (always true on success)

	// Hardware counter readings; nil unless requested and available.
	NaiveCounters *perfcount.Counters
	CurveCounters *perfcount.Counters
}

// Compare runs the full experiment for an n×n instance: generate seeded
// inputs, time the naive engine, build the curve representation, time the
// curve-order engine, and verify both outputs match. With withPerf set it
// additionally records hardware counters for each engine (the counter runs
// are separate from the timed runs, as counter reads perturb timing).
//
// Returns ErrNonPositiveLoops, curve.ErrSideNotPowerOfTwo for a bad side,
// ErrOutputMismatch if the engines disagree, or a perfcount error when
// withPerf is set and counters are unavailable.
func Compare(n, loops int, seed int64, withPerf bool) (*Comparison, error) {
	if loops < 1 {
		return nil, ErrNonPositiveLoops
	}

	c := &Comparison{N: n, Loops: loops}
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	matrix, vec := Inputs(n, rng)
	naiveOut := make([]int32, n)
	curveOut := make([]int32, n)
	c.Generate = time.Since(start)

	if err := matvec.ValidateShapes(len(matrix), len(vec), len(naiveOut), n); err != nil {
		return nil, err
	}

	c.Naive = TimeIt(loops, func() { matvec.Naive(matrix, vec, naiveOut, n) })

	start = time.Now()
	order, flattened, err := SetupCurve(n, matrix)
	if err != nil {
		return nil, err
	}
	c.Preprocess = time.Since(start)

	c.Curve = TimeIt(loops, func() { matvec.CurveOrder(flattened, vec, curveOut, order) })

	// Both engines accumulated the same number of passes; anything but
	// exact equality is an algorithmic bug.
	for i := range naiveOut {
		if naiveOut[i] != curveOut[i] {
			return nil, ErrOutputMismatch
		}
	}
	c.Equal = true

	if withPerf {
		pcN, err := perfcount.Measure(loops, func() { matvec.Naive(matrix, vec, naiveOut, n) })
		if err != nil {
			return nil, err
		}
		pcC, err := perfcount.Measure(loops, func() { matvec.CurveOrder(flattened, vec, curveOut, order) })
		if err != nil {
			return nil, err
		}
		c.NaiveCounters = &pcN
		c.CurveCounters = &pcC
	}

	return c, nil
}

// Improvement reports how much faster the curve-order engine ran, as a
// percentage of the naive total (negative when it ran slower).
func (c *Comparison) Improvement() float64 {
	if c.Naive <= 0 {
		return 0
	}

	return 100 * (1 - c.Curve.Seconds()/c.Naive.Seconds())
}

// String renders the human-readable report printed by hilbertbench run.
func (c *Comparison) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "n=%d loops=%d\n", c.N, c.Loops)
	fmt.Fprintf(&b, "input generation:    %v\n", c.Generate)
	fmt.Fprintf(&b, "naive:               %v total (%v per loop)\n", c.Naive, c.Naive/time.Duration(c.Loops))
	fmt.Fprintf(&b, "curve preprocessing: %v\n", c.Preprocess)
	fmt.Fprintf(&b, "curve:               %v total (%v per loop)\n", c.Curve, c.Curve/time.Duration(c.Loops))
	fmt.Fprintf(&b, "improvement:         %.1f%%\n", c.Improvement())
	fmt.Fprintf(&b, "outputs equal:       %t", c.Equal)
	if c.NaiveCounters != nil && c.CurveCounters != nil {
		fmt.Fprintf(&b, "\nnaive counters:      %+v", *c.NaiveCounters)
		fmt.Fprintf(&b, "\ncurve counters:      %+v", *c.CurveCounters)
	}

	return b.String()
}

// CSVRows renders the report as the sweep's CSV rows, one per engine:
// label, n, total seconds, and — when counters were recorded — cycles,
// branches, missed branches, instructions.
func (c *Comparison) CSVRows() []string {
	rows := make([]string, 0, 2)
	rows = append(rows, csvRow("naive", c.N, c.Naive, c.NaiveCounters))
	rows = append(rows, csvRow("curve", c.N, c.Curve, c.CurveCounters))

	return rows
}

// csvRow formats one engine's row.
func csvRow(label string, n int, total time.Duration, pc *perfcount.Counters) string {
	if pc == nil {
		return fmt.Sprintf("%s, %d, %g", label, n, total.Seconds())
	}

	return fmt.Sprintf("%s, %d, %g, %d, %d, %d, %d",
		label, n, total.Seconds(), pc.Cycles, pc.Branches, pc.BranchMisses, pc.Instructions)
}
