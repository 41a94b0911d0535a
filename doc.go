// Package hilbert benchmarks two strategies for a dense matrix-vector
// product: a plain row-major traversal, and a traversal reordered along a
// discretized Hilbert space-filling curve to improve cache locality on
// large matrices.
//
// 🚀 What is hilbert?
//
//	A small, focused library plus a benchmark CLI:
//		• curve     — L-system Hilbert-curve generator: enumerate all cells of a
//		              2^d × 2^d grid so consecutive cells are always grid-adjacent
//		• matvec    — flatten a matrix into curve order and compute the product
//		              in either row-major or curve order
//		• bench     — seeded input generation, timing loops, comparison reports
//		• perfcount — hardware counter readouts (cycles, instructions, branches)
//		              on Linux via perf_event_open
//		• cmd/hilbertbench — run / sweep / order subcommands
//
// ✨ Why choose hilbert?
//
//   - Deterministic – no global state, no implicit randomness, seeded fixtures
//   - Rock-solid guarantees – sentinel errors, in-code docs, pinned invariants
//   - Pure Go core – the library packages have zero runtime dependencies
//   - Honest measurement – identical integer results for both traversals,
//     verified on every comparison run
//
// Quick ASCII example (depth 2, a 4×4 grid labeled in visitation order):
//
//	 0  1 14 15
//	 3  2 13 12
//	 4  7  8 11
//	 5  6  9 10
//
// Start with curve.Order to obtain a traversal, matvec.Flatten to permute a
// matrix into that order, and matvec.Naive / matvec.CurveOrder to compute the
// two products. See cmd/hilbertbench for an end-to-end comparison.
package hilbert
