package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/z4mat/matrix"
)

// ExampleMulTrivial multiplies two small matrices; products wrap modulo 4.
func ExampleMulTrivial() {
	a, _ := matrix.NewPackedFromRows([][]int{{1, 2, 3}, {0, 1, 2}})
	b, _ := matrix.NewPackedFromRows([][]int{{1, 0}, {2, 1}, {3, 2}})

	c, err := matrix.MulTrivial(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [2, 0]
	// [0, 1]
}

// ExamplePacked_Resize grows a matrix; new cells are zero.
func ExamplePacked_Resize() {
	m, _ := matrix.NewPackedFromRows([][]int{{1, 2}, {3, 1}})
	_ = m.Resize(3, 3)
	_ = m.DumpSize(os.Stdout)
	_ = m.Dump(os.Stdout)

	// Output:
	// [3 x 3]
	// 1 2 0
	// 3 1 0
	// 0 0 0
}

// ExamplePacked_DumpRaw shows the lane layout: column 0 sits in the low bits.
func ExamplePacked_DumpRaw() {
	m, _ := matrix.NewPackedFromRows([][]int{{1, 2, 3}})
	_ = m.DumpRaw(os.Stdout)

	// Output:
	// 00111001
}
