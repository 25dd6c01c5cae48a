// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the private lane kernels.
//
// Purpose:
//   - Expose the SWAR primitives to matrix_test without widening the
//     production API. Being a _test.go file in package matrix, it is compiled
//     only by `go test`.

var (
	// PackedAdd exposes packedAdd.
	PackedAdd = packedAdd
	// PackedSub exposes packedSub.
	PackedSub = packedSub
	// PackedMul exposes packedMul.
	PackedMul = packedMul
	// PackedReduce exposes packedReduce.
	PackedReduce = packedReduce
	// TailMask exposes tailMask.
	TailMask = tailMask
)
