// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels and the eigen engine.
//   • Keep all data finite unless a test is explicitly about NaN propagation.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spectra/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// sampleZ is the 3×3 demo matrix [[1,3,6],[1,2,5],[2,9,4]] (trace 7).
var sampleZ = []float32{1, 3, 6, 1, 2, 5, 2, 9, 4}

// sampleSym is the symmetric matrix [[1,1,1],[1,2,3],[1,3,5]]; λ = 4±√10, 0.
var sampleSym = []float32{1, 1, 1, 1, 2, 3, 1, 3, 5}

// sampleSPD is a symmetric positive definite tridiagonal matrix; λ = 3, 3±√3.
var sampleSPD = []float32{4, 1, 0, 1, 3, 1, 0, 1, 2}

// MustDense ALLOCATES an r×c zero *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return d
}

// NewFilledDense BUILDS an r×c *Dense from a row-major flat slice.
func NewFilledDense(t *testing.T, r, c int, vals []float32) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err, "NewDenseFrom(%d,%d)", r, c)

	return d
}

// MustAt READS (i,j) or fails the test.
func MustAt(t *testing.T, d *matrix.Dense, i, j int) float32 {
	t.Helper()
	v, err := d.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1) values.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float32, r*c)
	for i := range vals {
		vals[i] = rng.Float32()*2 - 1
	}

	return NewFilledDense(t, r, c, vals)
}

// CompareExact asserts bit-for-bit equality of shape and data.
func CompareExact(t *testing.T, want, got *matrix.Dense) {
	t.Helper()
	wr, wc := want.Shape()
	gr, gc := got.Shape()
	require.Equal(t, wr, gr, "rows")
	require.Equal(t, wc, gc, "cols")
	require.Equal(t, want.Data(), got.Data())
}

// CompareClose asserts equal shape and element-wise |want-got| ≤ delta.
func CompareClose(t *testing.T, want, got *matrix.Dense, delta float64) {
	t.Helper()
	wr, wc := want.Shape()
	gr, gc := got.Shape()
	require.Equal(t, wr, gr, "rows")
	require.Equal(t, wc, gc, "cols")
	w, g := want.Data(), got.Data()
	for idx := range w {
		require.InDelta(t, w[idx], g[idx], delta, "element %d", idx)
	}
}

// symEigenOracle RETURNS the eigenvalues of a symmetric n×n matrix in
// descending order, computed in float64 by gonum's EigenSym.
func symEigenOracle(t *testing.T, n int, vals []float32) []float64 {
	t.Helper()
	data := make([]float64, len(vals))
	for i, v := range vals {
		data[i] = float64(v)
	}
	var es mat.EigenSym
	require.True(t, es.Factorize(mat.NewSymDense(n, data), false), "EigenSym.Factorize")
	ev := es.Values(nil) // ascending
	for i, j := 0, len(ev)-1; i < j; i, j = i+1, j-1 {
		ev[i], ev[j] = ev[j], ev[i]
	}

	return ev
}
