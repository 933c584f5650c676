// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/spectra/internal/report"
	"github.com/katalvlaran/spectra/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMat(t *testing.T) {
	d, err := matrix.NewDenseFrom(2, 3, []float32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	m := report.ToMat(d)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, m.At(1, 2))
}

func TestFormatMatrix(t *testing.T) {
	d, err := matrix.NewDenseFrom(2, 2, []float32{-37, 42, 6, -8})
	require.NoError(t, err)
	out := report.FormatMatrix(d, "")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "-37")
	assert.Contains(t, lines[0], "42")
	assert.Contains(t, lines[1], "-8")
}

func TestWrite(t *testing.T) {
	inv, err := matrix.NewDenseFrom(1, 1, []float32{3})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Summary{
		Name:          "sample",
		Iterations:    10,
		Dominant:      11.196,
		Trace:         7,
		EigenValues:   []float32{11.196, -0.25},
		InverseScale:  11,
		ScaledInverse: inv,
	}))
	out := buf.String()
	for _, want := range []string{"sample", "dominant eigenvalue", "11.196", "trace", "eigenvalues", "-0.25", "inverse × 11"} {
		assert.Contains(t, out, want)
	}
}

func TestTrace_ObserveAndChart(t *testing.T) {
	var tr report.Trace
	_, err := tr.Chart("empty")
	require.ErrorIs(t, err, report.ErrNoData)

	a, err := matrix.NewDenseFrom(2, 2, []float32{2, 1, 1, 2})
	require.NoError(t, err)
	_, err = matrix.DominantEigenValue(a, 6, matrix.WithObserver(tr.Observe))
	require.NoError(t, err)
	require.Len(t, tr.Estimates, 6)
	assert.InDelta(t, 3, tr.Estimates[5], 1e-4)

	// a second run replaces the first
	_, err = matrix.DominantEigenValue(a, 3, matrix.WithObserver(tr.Observe))
	require.NoError(t, err)
	assert.Len(t, tr.Estimates, 3)

	chart, err := tr.Chart("convergence")
	require.NoError(t, err)
	assert.Contains(t, chart, "convergence")
}

func TestTrace_SavePNG(t *testing.T) {
	var tr report.Trace
	path := filepath.Join(t.TempDir(), "conv.png")
	require.ErrorIs(t, tr.SavePNG(path, "x"), report.ErrNoData)

	tr.Estimates = []float32{6, 7, 7.15, 7.162}
	require.NoError(t, tr.SavePNG(path, "convergence"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
