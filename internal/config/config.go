// SPDX-License-Identifier: MIT

// Package config loads and saves the YAML run configuration of the spectra
// driver. Command-line flags override values read from file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spectra/matrix"
)

// Defaults of a run without config file or flags.
const (
	DefaultName         = "sample"
	DefaultIterations   = 10
	DefaultInverseScale = 11.0
)

var (
	// ErrEmptyMatrix is returned by ToDense when no rows are configured.
	ErrEmptyMatrix = errors.New("config: empty matrix")

	// ErrInvalidTolerance is returned for a NaN, infinite or negative tolerance.
	ErrInvalidTolerance = errors.New("config: tolerance must be finite and >= 0")
)

// Config describes one driver run.
type Config struct {
	Name                string      `yaml:"name"`
	Matrix              [][]float32 `yaml:"matrix"`
	Iterations          int         `yaml:"iterations"`
	InverseScale        float32     `yaml:"inverse_scale"`
	Tolerance           float32     `yaml:"tolerance,omitempty"`
	CheckDegenerateNorm bool        `yaml:"check_degenerate_norm,omitempty"`
}

// DefaultConfig returns the 3×3 sample run.
func DefaultConfig() *Config {
	return &Config{
		Name:         DefaultName,
		Matrix:       cloneRows(Presets[DefaultName]),
		Iterations:   DefaultIterations,
		InverseScale: DefaultInverseScale,
	}
}

// Load reads a YAML file over DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToDense converts the configured rows into a matrix.
func (c *Config) ToDense() (*matrix.Dense, error) {
	if len(c.Matrix) == 0 {
		return nil, ErrEmptyMatrix
	}
	d, err := matrix.NewDenseRows(c.Matrix)
	if err != nil {
		return nil, fmt.Errorf("config: matrix %q: %w", c.Name, err)
	}

	return d.SetName(c.Name), nil
}

// Validate checks the fields the matrix options would reject. A zero
// tolerance disables early stopping.
func (c *Config) Validate() error {
	tol := float64(c.Tolerance)
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return fmt.Errorf("tolerance=%v: %w", c.Tolerance, ErrInvalidTolerance)
	}

	return nil
}

// PowerOptions maps the tuning fields onto matrix options.
func (c *Config) PowerOptions() ([]matrix.PowerOption, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var opts []matrix.PowerOption
	if c.Tolerance > 0 {
		opts = append(opts, matrix.WithTolerance(c.Tolerance))
	}
	if c.CheckDegenerateNorm {
		opts = append(opts, matrix.WithDegenerateNormCheck())
	}

	return opts, nil
}

func cloneRows(rows [][]float32) [][]float32 {
	out := make([][]float32, len(rows))
	for i, r := range rows {
		out[i] = append([]float32(nil), r...)
	}

	return out
}
