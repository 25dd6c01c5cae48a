// Package strassen_test provides benchmarks comparing the kernels.
package strassen_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/z4mat/matrix"
	"github.com/katalvlaran/z4mat/strassen"
)

var benchSizes = []int{128, 256, 512}

// sink to defeat dead-code elimination
var sinkM *matrix.Packed

func benchMul(b *testing.B, opts ...strassen.Option) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randPacked(b, n, n, 1)
			y := randPacked(b, n, n, 2)
			e := strassen.NewEngine(opts...)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := e.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulTrivial(b *testing.B) {
	benchMul(b, strassen.WithKernel(strassen.KernelTrivial))
}

func BenchmarkMulStrassen(b *testing.B) {
	benchMul(b)
}

func BenchmarkMulStrassenParallel(b *testing.B) {
	benchMul(b, strassen.WithParallel(true))
}
