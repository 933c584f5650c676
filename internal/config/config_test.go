// SPDX-License-Identifier: MIT

package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spectra/internal/config"
	"github.com/katalvlaran/spectra/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, "sample", cfg.Name)
	assert.Equal(t, 10, cfg.Iterations)
	assert.Equal(t, float32(11), cfg.InverseScale)
	opts, err := cfg.PowerOptions()
	require.NoError(t, err)
	assert.Empty(t, opts)

	d, err := cfg.ToDense()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 3, 6, 1, 2, 5, 2, 9, 4}, d.Data())
	assert.Equal(t, "sample", d.Name())
}

func TestDefaultConfig_DoesNotAliasPresets(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Matrix[0][0] = 100
	assert.Equal(t, float32(1), config.Presets["sample"][0][0])
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := config.DefaultConfig()
	cfg.Name = "custom"
	cfg.Matrix = [][]float32{{2, 0}, {0, 3}}
	cfg.Iterations = 25
	cfg.Tolerance = 1e-4
	cfg.CheckDegenerateNorm = true
	require.NoError(t, config.Save(path, cfg))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
	opts, err := got.PowerOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("iterations: 40\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Iterations)
	assert.Equal(t, float32(11), cfg.InverseScale)
	assert.Len(t, cfg.Matrix, 3)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("iterations: [oops\n"), 0o644))
	_, err = config.Load(path)
	require.Error(t, err)

	for _, tol := range []string{".inf", "-.inf", ".nan", "-0.5"} {
		path := filepath.Join(t.TempDir(), "tol.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tolerance: "+tol+"\n"), 0o644))
		_, err := config.Load(path)
		require.ErrorIs(t, err, config.ErrInvalidTolerance, tol)
	}
}

func TestPowerOptions_RejectsBadToleranceWithoutPanic(t *testing.T) {
	for _, tol := range []float32{float32(math.Inf(1)), float32(math.NaN()), -1} {
		cfg := config.DefaultConfig()
		cfg.Tolerance = tol
		assert.NotPanics(t, func() {
			_, err := cfg.PowerOptions()
			require.ErrorIs(t, err, config.ErrInvalidTolerance)
		})
	}
}

func TestToDense_Errors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Matrix = nil
	_, err := cfg.ToDense()
	require.ErrorIs(t, err, config.ErrEmptyMatrix)

	cfg.Matrix = [][]float32{{1, 2}, {3}}
	_, err = cfg.ToDense()
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"barbell", "sample", "spd", "symmetric"}, config.ListPresets())

	cfg := config.GetPreset("spd")
	require.NotNil(t, cfg)
	assert.Equal(t, "spd", cfg.Name)
	assert.Equal(t, 10, cfg.Iterations)

	assert.Nil(t, config.GetPreset("nonexistent"))
}
