package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/voltlab/dcsim/internal/config"
	"github.com/voltlab/dcsim/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "dcsim",
		Short: "DC circuit analysis from netlist files",
		Long: `dcsim solves DC circuits described in a small netlist language.

It runs nodal analysis over the circuit, checks Kirchhoff's laws,
tracks fuse state across ticks, and can sweep a source voltage.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			level := "info"
			if verbose {
				level = "debug"
			}
			slog.SetDefault(logging.NewLogger(level, os.Stderr))
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Engine config file (YAML)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAnalyzeCmd(),
		newSweepCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadOptions resolves engine options from the --config flag, falling
// back to defaults when no file is given.
func loadOptions(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
