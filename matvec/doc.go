// Package matvec computes dense matrix-vector products over flat int32
// buffers, in either plain row-major order or Hilbert-curve order.
//
// What:
//
//   - Flatten permutes a row-major matrix into curve visitation order;
//     Unflatten inverts the permutation exactly.
//   - Naive accumulates output[i] += A[i*n+j] * v[j] with the classic
//     nested row-major loop.
//   - CurveOrder accumulates the same sum in a single pass over a
//     curve.Step traversal of the flattened matrix.
//
// Why:
//
//	Both engines share one mathematical contract — output[i] = Σ_j A[i,j]·v[j]
//	— and differ only in access pattern. Row-major reads A sequentially but
//	strides v and output; curve order reads the flattened buffer sequentially
//	and scatters into v and output along a locality-preserving path. Comparing
//	the two isolates the cache behavior of the traversal itself.
//
// Buffers:
//
//	Matrices are flat []int32 of length n*n, A[i*n+j] = entry (i,j); vectors
//	and outputs are []int32 of length n. The caller owns every buffer: the
//	engines borrow matrix, vector and order read-only and write only the
//	output buffer they are given, retaining nothing across calls. Output must
//	arrive zero-initialized for a single product; calling an engine again on
//	the same output accumulates another product on top, which the bench
//	package exploits to keep validation cheap across repeated timed runs.
//
// Validation:
//
//	Flatten and Unflatten fail fast with ErrSizeMismatch on disagreeing
//	lengths. Naive and CurveOrder deliberately validate nothing in the hot
//	path — shape checking there is the caller's job, via ValidateShapes
//	before the timed region. Both engines are deterministic and produce
//	bit-identical results for identical inputs regardless of traversal
//	order: integer addition commutes and every (i,j) is visited exactly once.
//
// Complexity: all operations are O(n²) time; Flatten/Unflatten allocate the
// O(n²) result, the engines allocate nothing.
//
// Errors:
//
//   - ErrSizeMismatch: matrix/vector/order/output length disagrees with n.
package matvec
