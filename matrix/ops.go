// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition, subtraction and the trivial
// O(n³) multiplication kernel over packed Z/4Z matrices. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches. Inputs are never mutated; every result owns fresh storage.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMulTrivial = "MulTrivial"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub applies a lane-parallel kernel to every storage unit of a and b.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat walk over both buffers, four elements per step.
//
// Padding lanes are zero in both inputs and kernel(0,0)=0, so the result
// keeps the padding invariant without re-masking.
func addSub(a, b *Packed, kernel func(x, y byte) byte, opTag string) (*Packed, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newPacked(a.r, a.c)
	for u := range res.data {
		res.data[u] = kernel(a.data[u], b.data[u])
	}

	return res, nil
}

// Add returns a+b (mod 4, element-wise).
//
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - ErrDimensionMismatch if shapes differ.
func Add(a, b *Packed) (*Packed, error) { return addSub(a, b, packedAdd, opAdd) }

// Sub returns a-b (mod 4, element-wise).
//
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - ErrDimensionMismatch if shapes differ.
func Sub(a, b *Packed) (*Packed, error) { return addSub(a, b, packedSub, opSub) }

// MulTrivial returns a·b using the direct O(n³) kernel.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: transpose b once so both dot-product operands are packed rows.
//   - Stage 3: for each output cell walk the rows unit by unit, multiplying
//     and accumulating all four lanes at once, then fold the accumulator's
//     lanes into one element.
//
// Padding lanes are zero in both rows, so they contribute nothing.
//
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - ErrDimensionMismatch if a.Cols() != b.Rows().
//
// Complexity: Time O(r·c·k/4), Space O(k·c/4) for the transposed copy.
func MulTrivial(a, b *Packed) (*Packed, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulTrivial, err)
	}

	res := newPacked(a.r, b.c)
	if a.r == 0 || b.c == 0 || a.c == 0 {
		return res, nil
	}

	bt := b.Transposed()
	stride := a.stride // == bt.stride, both rows hold a.c elements
	var (
		i, j, u int
		acc     byte
	)
	for i = 0; i < a.r; i++ {
		lhs := a.data[i*stride : (i+1)*stride]
		for j = 0; j < bt.r; j++ {
			rhs := bt.data[j*stride : (j+1)*stride]
			acc = 0
			for u = 0; u < stride; u++ {
				acc = packedAdd(acc, packedMul(lhs[u], rhs[u]))
			}
			res.set(i, j, int(packedReduce(acc)))
		}
	}

	return res, nil
}
