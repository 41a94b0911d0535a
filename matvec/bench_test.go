package matvec_test

import (
	"testing"

	"github.com/katalvlaran/hilbert/curve"
	"github.com/katalvlaran/hilbert/matvec"
)

// benchmarkNaive times the row-major engine on a seeded n×n instance.
// Setup (inputs, output buffer) stays outside the timer.
func benchmarkNaive(b *testing.B, n int) {
	matrix, v := randomInputs(n, 42)
	output := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matvec.Naive(matrix, v, output, n)
	}
}

// benchmarkCurveOrder times the curve-order engine on the same instance.
// The traversal and the flattened matrix are precomputed once, as in real
// use: the order is immutable per depth and reusable across products.
func benchmarkCurveOrder(b *testing.B, n int) {
	matrix, v := randomInputs(n, 42)
	output := make([]int32, n)

	depth, err := curve.DepthForSide(n)
	if err != nil {
		b.Fatalf("DepthForSide failed: %v", err)
	}
	order, err := curve.Order(depth)
	if err != nil {
		b.Fatalf("Order failed: %v", err)
	}
	flattened, err := matvec.Flatten(matrix, order, n)
	if err != nil {
		b.Fatalf("Flatten failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matvec.CurveOrder(flattened, v, output, order)
	}
}

// BenchmarkNaive_256 times the row-major product at n=256.
func BenchmarkNaive_256(b *testing.B) { benchmarkNaive(b, 256) }

// BenchmarkNaive_1024 times the row-major product at n=1024.
func BenchmarkNaive_1024(b *testing.B) { benchmarkNaive(b, 1024) }

// BenchmarkNaive_2048 times the row-major product at n=2048.
func BenchmarkNaive_2048(b *testing.B) { benchmarkNaive(b, 2048) }

// BenchmarkCurveOrder_256 times the curve-order product at n=256.
func BenchmarkCurveOrder_256(b *testing.B) { benchmarkCurveOrder(b, 256) }

// BenchmarkCurveOrder_1024 times the curve-order product at n=1024.
func BenchmarkCurveOrder_1024(b *testing.B) { benchmarkCurveOrder(b, 1024) }

// BenchmarkCurveOrder_2048 times the curve-order product at n=2048.
func BenchmarkCurveOrder_2048(b *testing.B) { benchmarkCurveOrder(b, 2048) }

// BenchmarkFlatten_1024 times the one-off permutation cost at n=1024.
func BenchmarkFlatten_1024(b *testing.B) {
	const n = 1024
	matrix, _ := randomInputs(n, 42)
	order, err := curve.Order(10)
	if err != nil {
		b.Fatalf("Order failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = matvec.Flatten(matrix, order, n); err != nil {
			b.Fatalf("Flatten failed: %v", err)
		}
	}
}
