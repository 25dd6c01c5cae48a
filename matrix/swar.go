// SPDX-License-Identifier: MIT

// Package matrix - lane-parallel (SWAR) arithmetic over Z/4Z.
//
// Purpose:
//   - A storage unit is one byte holding four 2-bit lanes; lane k occupies
//     bits [2k, 2k+1] and stores the element of column 4*u+k.
//   - Every primitive below processes all four lanes with a handful of
//     integer ops and never lets a carry or borrow leave its lane.
//
// Lane algebra (per lane, x = x1·2 + x0):
//   - add: bit0 = a0^b0,        bit1 = a1^b1^(a0&b0)
//   - sub: bit0 = a0^b0,        bit1 = a1^b1^(¬a0&b0)
//   - mul: bit0 = a0&b0,        bit1 = (a1&b0)^(a0&b1)
//
// Zero lanes stay zero under add/sub/mul, so the padding invariant of a row's
// last unit survives whole-unit arithmetic.

package matrix

const (
	// lanesPerUnit is the number of ring elements packed into one byte.
	lanesPerUnit = 4
	// bitsPerLane is the width of one ring element.
	bitsPerLane = 2
	// laneMask selects a single lane at offset 0.
	laneMask byte = 0x03
	// lowBits selects bit 0 of every lane.
	lowBits byte = 0x55
)

// packedAdd returns the lane-wise sum a+b mod 4.
func packedAdd(a, b byte) byte {
	return (a ^ b) ^ ((a & b & lowBits) << 1)
}

// packedSub returns the lane-wise difference a-b mod 4.
func packedSub(a, b byte) byte {
	return (a ^ b) ^ ((^a & b & lowBits) << 1)
}

// packedMul returns the lane-wise product a*b mod 4.
func packedMul(a, b byte) byte {
	lo := a & b & lowBits
	hi := (((a >> 1) & b) ^ (a & (b >> 1))) & lowBits

	return lo | hi<<1
}

// packedReduce folds the four lanes of x into one ring element (their sum mod 4).
func packedReduce(x byte) byte {
	x = packedAdd(x, x>>4) // lanes 0,1 += lanes 2,3
	x = packedAdd(x, x>>2) // lane 0 += lane 1

	return x & laneMask
}

// tailMask returns the mask keeping the first n lanes of a unit (n in 1..4).
func tailMask(n int) byte {
	return 0xFF >> (8 - uint(n)*bitsPerLane)
}

// unitsFor returns the number of storage units needed for cols elements.
func unitsFor(cols int) int {
	return (cols + lanesPerUnit - 1) / lanesPerUnit
}
