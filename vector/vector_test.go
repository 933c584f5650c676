// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spectra/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CopiesValues(t *testing.T) {
	src := []float32{1, 2}
	v := vector.New("v", src...)
	src[0] = 10
	assert.Equal(t, []float32{1, 2}, v.Data)
	assert.Equal(t, "v", v.Name)
	assert.Equal(t, 2, v.Len())
}

func TestNorms(t *testing.T) {
	tests := []struct {
		name  string
		data  []float32
		p     int
		want  float32
		isNaN bool
	}{
		{name: "euclid 3-4-5", data: []float32{3, 4}, p: 2, want: 5},
		{name: "l1 positive", data: []float32{1, 2, 4}, p: 1, want: 7},
		{name: "l1 signed sum", data: []float32{1, -4}, p: 1, want: -3},
		{name: "l3 negative sum", data: []float32{-2, 1}, p: 3, isNaN: true},
		{name: "empty", data: nil, p: 2, want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := vector.New("t", tc.data...).LpNorm(tc.p)
			if tc.isNaN {
				assert.True(t, math.IsNaN(float64(got)))
				return
			}
			assert.InDelta(t, tc.want, got, 1e-6)
		})
	}
}

func TestEuclidNorm(t *testing.T) {
	v := vector.New("e", 6, 8)
	assert.Equal(t, float32(10), v.EuclidNorm())
}

func TestMaxNorm(t *testing.T) {
	got, err := vector.New("m", -5, 2, -1).MaxNorm()
	require.NoError(t, err)
	assert.Equal(t, float32(2), got) // signed max, not |x|

	nan := float32(math.NaN())
	got, err = vector.New("n", nan, 3, 1).MaxNorm()
	require.NoError(t, err)
	assert.Equal(t, float32(3), got)

	_, err = (&vector.Vector{}).MaxNorm()
	require.ErrorIs(t, err, vector.ErrEmpty)
}
