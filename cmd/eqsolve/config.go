// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eqsolve/eqsolver"
)

// Output formats.
const (
	outputText = "text"
	outputYAML = "yaml"
)

// Config is the effective CLI configuration.
// Precedence: defaults, then the --config file, then explicitly set flags.
type Config struct {
	Strategy string `yaml:"strategy"`  // subtract | signflip
	MaxCells int    `yaml:"max_cells"` // shared cell budget; 0 = unlimited
	Workers  int    `yaml:"workers"`   // files solved concurrently
	Output   string `yaml:"output"`    // text | yaml
	Metrics  bool   `yaml:"metrics"`   // print Prometheus metrics after the run
	Trace    bool   `yaml:"trace"`     // print Solve spans to stderr
	LogLevel string `yaml:"log_level"` // debug | info | warn | error
}

var errInvalidConfig = errors.New("invalid config")

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Strategy: eqsolver.DefaultStrategy.String(),
		Workers:  runtime.NumCPU(),
		Output:   outputText,
		LogLevel: "info",
	}
}

// loadConfig overlays the YAML file at path on the defaults. An empty path
// yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if _, err := eqsolver.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", errInvalidConfig, err)
	}
	if c.MaxCells < 0 {
		return fmt.Errorf("%w: max_cells must be >= 0, got %d", errInvalidConfig, c.MaxCells)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", errInvalidConfig, c.Workers)
	}
	if c.Output != outputText && c.Output != outputYAML {
		return fmt.Errorf("%w: output must be %q or %q, got %q", errInvalidConfig, outputText, outputYAML, c.Output)
	}

	return nil
}

// resolveConfig loads the config file named by --config and applies every flag
// the user set explicitly.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	path, _ := cmd.Flags().GetString(flagConfig)
	cfg, err := loadConfig(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed(flagStrategy) {
		cfg.Strategy, _ = flags.GetString(flagStrategy)
	}
	if flags.Changed(flagMaxCells) {
		cfg.MaxCells, _ = flags.GetInt(flagMaxCells)
	}
	if flags.Changed(flagWorkers) {
		cfg.Workers, _ = flags.GetInt(flagWorkers)
	}
	if flags.Changed(flagOutput) {
		cfg.Output, _ = flags.GetString(flagOutput)
	}
	if flags.Changed(flagMetrics) {
		cfg.Metrics, _ = flags.GetBool(flagMetrics)
	}
	if flags.Changed(flagTrace) {
		cfg.Trace, _ = flags.GetBool(flagTrace)
	}
	if flags.Changed(flagLogLevel) {
		cfg.LogLevel, _ = flags.GetString(flagLogLevel)
	}

	return cfg, cfg.Validate()
}
