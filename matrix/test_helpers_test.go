// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures (seeded random fill, literals).
//   • Provide a scalar reference multiply to cross-check the packed kernels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/z4mat/matrix"
)

// mustPacked allocates an r×c zero matrix or fails the test.
func mustPacked(tb testing.TB, r, c int) *matrix.Packed {
	tb.Helper()
	m, err := matrix.NewPacked(r, c)
	require.NoError(tb, err)

	return m
}

// mustRows builds a matrix from a literal or fails the test.
func mustRows(tb testing.TB, rows [][]int) *matrix.Packed {
	tb.Helper()
	m, err := matrix.NewPackedFromRows(rows)
	require.NoError(tb, err)

	return m
}

// randPacked returns an r×c matrix filled from a seeded source.
func randPacked(tb testing.TB, r, c int, seed int64) *matrix.Packed {
	tb.Helper()
	m := mustPacked(tb, r, c)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, rng.Intn(4)))
		}
	}

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt(tb testing.TB, m *matrix.Packed, i, j int) int {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// refMul is the scalar i-j-k product, reduced mod 4 at the end.
func refMul(tb testing.TB, a, b *matrix.Packed) *matrix.Packed {
	tb.Helper()
	out := mustPacked(tb, a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			sum := 0
			for k := 0; k < a.Cols(); k++ {
				sum += mustAt(tb, a, i, k) * mustAt(tb, b, k, j)
			}
			require.NoError(tb, out.Set(i, j, sum%4))
		}
	}

	return out
}

// lane extracts lane k of a storage unit.
func lane(x byte, k int) int {
	return int(x>>(2*k)) & 3
}
