package strassen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/z4mat/matrix"
)

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
	m, err := matrix.NewPacked(r, c)
	require.NoError(tb, err)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, rng.Intn(4)))
		}
	}

	return m
}
