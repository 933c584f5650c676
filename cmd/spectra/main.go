// SPDX-License-Identifier: MIT

// Command spectra runs the power-iteration eigen engine on a small dense
// matrix and reports the dominant eigenvalue, trace, deflated eigenvalues and
// a scaled inverse.
//
//	spectra eigen                          # built-in 3×3 sample
//	spectra eigen --matrix "4,1;1,3"       # inline rows
//	spectra converge --preset spd --png conv.png
//	spectra config init run.yaml
package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spectra/internal/config"
)

var (
	configFile string
	preset     string
	matrixFlag string
	iterations int
	pngPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "spectra",
		Short:         "dominant eigenvalues by power iteration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a preset matrix")
	rootCmd.PersistentFlags().StringVar(&matrixFlag, "matrix", "", `matrix rows, e.g. "1,3,6;1,2,5;2,9,4"`)
	rootCmd.PersistentFlags().IntVar(&iterations, "iterations", config.DefaultIterations, "power iterations")

	eigenCmd := &cobra.Command{
		Use:   "eigen",
		Short: "report dominant eigenvalue, trace, eigenvalues and scaled inverse",
		Args:  cobra.NoArgs,
		RunE:  runEigen,
	}

	convergeCmd := &cobra.Command{
		Use:   "converge",
		Short: "chart the Rayleigh estimate per iteration",
		Args:  cobra.NoArgs,
		RunE:  runConverge,
	}
	convergeCmd.Flags().StringVar(&pngPath, "png", "", "also write the chart as an image")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset matrices",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage run configuration files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])

			return nil
		},
	})

	rootCmd.AddCommand(eigenCmd, convergeCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("spectra: %v", err)
	}
}
