// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/z4mat/matrix"
)

// TestPackedKernels_Exhaustive checks every byte pair lane by lane.
func TestPackedKernels_Exhaustive(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			x, y := byte(a), byte(b)
			sum := matrix.PackedAdd(x, y)
			diff := matrix.PackedSub(x, y)
			prod := matrix.PackedMul(x, y)
			for k := 0; k < 4; k++ {
				la, lb := lane(x, k), lane(y, k)
				require.Equal(t, (la+lb)%4, lane(sum, k), "add a=%08b b=%08b lane=%d", x, y, k)
				require.Equal(t, (la-lb+4)%4, lane(diff, k), "sub a=%08b b=%08b lane=%d", x, y, k)
				require.Equal(t, (la*lb)%4, lane(prod, k), "mul a=%08b b=%08b lane=%d", x, y, k)
			}
		}
	}
}

// TestPackedKernels_Commutative covers the single-element cases from the ring table.
func TestPackedKernels_Commutative(t *testing.T) {
	for a := byte(0); a < 4; a++ {
		for b := byte(0); b < 4; b++ {
			require.Equal(t, matrix.PackedAdd(a, b), matrix.PackedAdd(b, a))
			require.Equal(t, matrix.PackedMul(a, b), matrix.PackedMul(b, a))
			require.Equal(t, (a+b)%4, matrix.PackedAdd(a, b))
			require.Equal(t, (a+4-b)%4, matrix.PackedSub(a, b))
			require.Equal(t, (a*b)%4, matrix.PackedMul(a, b))
			// sub undoes add
			require.Equal(t, a, matrix.PackedSub(matrix.PackedAdd(a, b), b))
		}
	}
}

func TestPackedReduce(t *testing.T) {
	for x := 0; x < 256; x++ {
		want := (lane(byte(x), 0) + lane(byte(x), 1) + lane(byte(x), 2) + lane(byte(x), 3)) % 4
		require.Equal(t, byte(want), matrix.PackedReduce(byte(x)), "x=%08b", x)
	}
}

func TestTailMask(t *testing.T) {
	require.Equal(t, byte(0x03), matrix.TailMask(1))
	require.Equal(t, byte(0x0F), matrix.TailMask(2))
	require.Equal(t, byte(0x3F), matrix.TailMask(3))
	require.Equal(t, byte(0xFF), matrix.TailMask(4))
}
