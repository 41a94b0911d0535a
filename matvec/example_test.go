package matvec_test

import (
	"fmt"

	"github.com/katalvlaran/hilbert/curve"
	"github.com/katalvlaran/hilbert/matvec"
)

// ExampleCurveOrder computes one product both ways on a 4×4 instance:
// the sequential matrix 0..15 against the ones vector, so the expected
// output is the row sums.
func ExampleCurveOrder() {
	const n = 4
	matrix := make([]int32, n*n)
	for i := range matrix {
		matrix[i] = int32(i)
	}
	v := []int32{1, 1, 1, 1}

	order, err := curve.Order(2) // depth 2 ⇒ 4×4 grid
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	flattened, err := matvec.Flatten(matrix, order, n)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	naive := make([]int32, n)
	curved := make([]int32, n)
	matvec.Naive(matrix, v, naive, n)
	matvec.CurveOrder(flattened, v, curved, order)

	fmt.Println("naive:", naive)
	fmt.Println("curve:", curved)
	// Output:
	// naive: [6 22 38 54]
	// curve: [6 22 38 54]
}
