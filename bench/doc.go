// Package bench is the measurement harness around the curve and matvec
// packages: seeded input generation, timing loops, and side-by-side
// comparison of the row-major and curve-order product engines.
//
// What:
//
//   - Inputs — uniform random matrix/vector in [1,10] from a caller-seeded
//     source, so every experiment is reproducible.
//   - SetupCurve — derive the depth for a grid side, build the traversal,
//     and flatten the matrix once for reuse across timed runs.
//   - TimeIt — total wall time of a closure over a fixed loop count.
//   - Compare — the full experiment: generate, time Naive, preprocess,
//     time CurveOrder, verify the outputs match, optionally attach
//     perfcount readings. Returns a Comparison report.
//
// Why:
//
//	The core packages own the algorithms; everything about measuring them —
//	randomness, clocks, counters, printing — lives here, behind the same
//	in-process contracts any external caller would use. The core never
//	generates random data and never times itself.
//
// Accumulation across loops:
//
//	Compare times loops calls of each engine against the same output buffer
//	without clearing between calls, keeping the timed region free of
//	bookkeeping. Both engines run the same number of passes, so the final
//	buffers still match exactly; equality is verified on every run.
//
// Errors:
//
//   - ErrNonPositiveLoops: loop count below 1.
//   - ErrOutputMismatch: the two engines disagreed — an algorithmic bug,
//     reported rather than silently charted.
//   - curve.ErrSideNotPowerOfTwo et al. pass through from the core.
package bench
