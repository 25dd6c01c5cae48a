package strassen_test

import (
	"fmt"

	"github.com/katalvlaran/z4mat/matrix"
	"github.com/katalvlaran/z4mat/strassen"
)

// ExampleMul multiplies with a low threshold so the Strassen path runs.
func ExampleMul() {
	a, _ := matrix.NewPackedFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewPackedFromRows([][]int{{1, 4}, {2, 5}, {3, 6}})

	c, err := strassen.Mul(a, b, strassen.WithThreshold(1), strassen.WithParallel(true))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [2, 0]
	// [0, 1]
}

// ExampleMul_mismatch shows the dimension error.
func ExampleMul_mismatch() {
	a, _ := matrix.NewPackedFromRows([][]int{{1, 2, 3}, {4, 5, 6}})

	_, err := strassen.Mul(a, a)
	fmt.Println(err)

	// Output:
	// strassen.Mul: ValidateMulCompatible: 2x3 * 2x3: matrix: dimension mismatch
}
