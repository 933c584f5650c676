// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spectra/internal/config"
	"github.com/katalvlaran/spectra/internal/report"
	"github.com/katalvlaran/spectra/matrix"
)

// resolveConfig layers defaults, preset, config file and explicit flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("matrix") {
		rows, err := parseMatrix(matrixFlag)
		if err != nil {
			return nil, err
		}
		cfg.Name = "inline"
		cfg.Matrix = rows
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Iterations = iterations
	}

	return cfg, nil
}

// summarize runs every eigen computation the report shows.
func summarize(cfg *config.Config) (report.Summary, error) {
	a, err := cfg.ToDense()
	if err != nil {
		return report.Summary{}, err
	}
	opts, err := cfg.PowerOptions()
	if err != nil {
		return report.Summary{}, err
	}

	dominant, err := matrix.DominantEigenValue(a, cfg.Iterations, opts...)
	if err != nil {
		return report.Summary{}, fmt.Errorf("dominant eigenvalue: %w", err)
	}
	values, err := matrix.EigenValues(a, cfg.Iterations, opts...)
	if err != nil {
		return report.Summary{}, fmt.Errorf("eigenvalues: %w", err)
	}
	inv, err := matrix.Inverse(a)
	if err != nil {
		return report.Summary{}, fmt.Errorf("inverse: %w", err)
	}
	inv.ScalarProduct(cfg.InverseScale)

	return report.Summary{
		Name:          cfg.Name,
		Iterations:    cfg.Iterations,
		Dominant:      dominant,
		Trace:         a.Trace(),
		EigenValues:   values,
		InverseScale:  cfg.InverseScale,
		ScaledInverse: inv,
	}, nil
}

func runEigen(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := summarize(cfg)
	if err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), s)
}

// traceConvergence records one Rayleigh estimate per iteration.
func traceConvergence(cfg *config.Config) (*report.Trace, error) {
	a, err := cfg.ToDense()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.PowerOptions()
	if err != nil {
		return nil, err
	}
	tr := &report.Trace{}
	opts = append(opts, matrix.WithObserver(tr.Observe))
	if _, err := matrix.DominantEigenValue(a, cfg.Iterations, opts...); err != nil {
		return nil, err
	}

	return tr, nil
}

func runConverge(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	tr, err := traceConvergence(cfg)
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("%s: Rayleigh estimate per iteration", cfg.Name)
	chart, err := tr.Chart(caption)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), chart)

	if pngPath != "" {
		if err := tr.SavePNG(pngPath, caption); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", pngPath)
	}

	return nil
}
