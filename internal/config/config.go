// Package config loads engine settings for the dcsim CLI from YAML.
// Settings map onto analysis.Options; a missing file means defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voltlab/dcsim/internal/consts"
	"github.com/voltlab/dcsim/pkg/analysis"
)

// Config holds the engine knobs the CLI can override per run.
type Config struct {
	// Solver selects the linear backend: "auto" (default), "dense", or
	// "sparse".
	Solver string `json:"solver" yaml:"solver"`

	// SparseThreshold is the node count at which the auto solver
	// switches to the sparse backend.
	SparseThreshold int `json:"sparse_threshold" yaml:"sparse_threshold"`

	// KCLTolerance is the maximum accepted node current residual in
	// amperes.
	KCLTolerance float64 `json:"kcl_tolerance" yaml:"kcl_tolerance"`

	// KVLTolerance is the maximum accepted loop voltage mismatch in
	// volts.
	KVLTolerance float64 `json:"kvl_tolerance" yaml:"kvl_tolerance"`

	// OvercurrentLimit is the short-circuit ceiling for resistors and
	// bulbs in amperes.
	OvercurrentLimit float64 `json:"overcurrent_limit" yaml:"overcurrent_limit"`
}

// Default returns a Config matching the engine's built-in defaults.
func Default() *Config {
	return &Config{
		Solver:           "auto",
		SparseThreshold:  consts.SparseThreshold,
		KCLTolerance:     consts.KCLTolerance,
		KVLTolerance:     consts.KVLTolerance,
		OvercurrentLimit: consts.OvercurrentLimit,
	}
}

// LoadFromFile loads configuration from a YAML file, with defaults for
// any field the file leaves out.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	validSolvers := map[string]bool{"auto": true, "dense": true, "sparse": true}
	if !validSolvers[c.Solver] {
		return fmt.Errorf("invalid solver: %s (valid: auto, dense, sparse)", c.Solver)
	}

	if c.SparseThreshold < 0 {
		return fmt.Errorf("sparse_threshold must be non-negative, got %d", c.SparseThreshold)
	}

	if c.KCLTolerance <= 0 {
		return fmt.Errorf("kcl_tolerance must be positive, got %g", c.KCLTolerance)
	}

	if c.KVLTolerance <= 0 {
		return fmt.Errorf("kvl_tolerance must be positive, got %g", c.KVLTolerance)
	}

	if c.OvercurrentLimit <= 0 {
		return fmt.Errorf("overcurrent_limit must be positive, got %g", c.OvercurrentLimit)
	}

	return nil
}

// Options converts the configuration into engine options.
func (c *Config) Options() analysis.Options {
	opts := analysis.DefaultOptions()
	switch c.Solver {
	case "dense":
		opts.Solver = analysis.SolverDense
	case "sparse":
		opts.Solver = analysis.SolverSparse
	default:
		opts.Solver = analysis.SolverAuto
	}
	opts.SparseThreshold = c.SparseThreshold
	opts.KCLTolerance = c.KCLTolerance
	opts.KVLTolerance = c.KVLTolerance
	opts.OvercurrentLimit = c.OvercurrentLimit
	return opts
}
