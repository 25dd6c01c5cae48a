// Package z4mat multiplies dense matrices over the ring Z/4Z (elements 0..3).
//
// Elements are packed four per byte and all arithmetic runs on the packed
// bytes, four lanes per integer operation.
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/   — Packed storage, element-wise Add/Sub, the trivial O(n³) kernel,
//	            block copies, diagnostics and sentinel errors
//	strassen/ — size-based kernel dispatch, Strassen recursion with
//	            zero-padding to powers of two, bounded parallel fan-out
//
// Quick example:
//
//	a, _ := matrix.NewPackedFromRows([][]int{{1, 2, 3}, {0, 1, 2}})
//	b, _ := matrix.NewPackedFromRows([][]int{{1, 0}, {2, 1}, {3, 2}})
//	c, err := strassen.Mul(a, b, strassen.WithParallel(true))
//
//	go get github.com/katalvlaran/z4mat
package z4mat
