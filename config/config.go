// Package config loads and validates backtest run configuration from
// YAML or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete configuration for one backtest run.
type Config struct {
	Data     Data     `json:"data" yaml:"data"`
	Backtest Backtest `json:"backtest" yaml:"backtest"`
	Journal  Journal  `json:"journal" yaml:"journal"`
	Output   Output   `json:"output" yaml:"output"`
}

// Data names the input price table and optionally restricts which
// pairs to trade. With no explicit pairs, every symbol combination is
// scanned for cointegration.
type Data struct {
	File  string `json:"file" yaml:"file"`
	Pairs []Pair `json:"pairs,omitempty" yaml:"pairs,omitempty"`
}

// Pair names one candidate symbol pair.
type Pair struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

// Backtest holds the strategy and execution parameters.
type Backtest struct {
	Capital          float64 `json:"capital" yaml:"capital"`
	EntryThreshold   float64 `json:"entry_threshold" yaml:"entry_threshold"`
	ExitThreshold    float64 `json:"exit_threshold" yaml:"exit_threshold"`
	LookbackWindow   int     `json:"lookback_window" yaml:"lookback_window"`
	DelayedExecution bool    `json:"delayed_execution" yaml:"delayed_execution"`
}

// Journal selects where trades and equity snapshots are recorded.
type Journal struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	EquityFile string `json:"equity_file,omitempty" yaml:"equity_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Output names the result files.
type Output struct {
	Results string `json:"results" yaml:"results"`
	Chart   string `json:"chart,omitempty" yaml:"chart,omitempty"`
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration, choosing YAML or JSON by file
// extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Data.File == "" {
		return fmt.Errorf("data.file is required")
	}
	for i, p := range c.Data.Pairs {
		if p.A == "" || p.B == "" {
			return fmt.Errorf("data.pairs[%d]: both symbols are required", i)
		}
		if p.A == p.B {
			return fmt.Errorf("data.pairs[%d]: a pair needs two distinct symbols", i)
		}
	}
	if c.Backtest.Capital <= 0 {
		return fmt.Errorf("backtest.capital must be positive")
	}
	if c.Backtest.EntryThreshold <= 0 {
		return fmt.Errorf("backtest.entry_threshold must be positive")
	}
	if c.Backtest.ExitThreshold < 0 {
		return fmt.Errorf("backtest.exit_threshold must not be negative")
	}
	if c.Backtest.EntryThreshold <= c.Backtest.ExitThreshold {
		return fmt.Errorf("backtest.entry_threshold must exceed exit_threshold")
	}
	if c.Backtest.LookbackWindow < 2 {
		return fmt.Errorf("backtest.lookback_window must be at least 2")
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.EquityFile == "" {
			return fmt.Errorf("journal trades_file and equity_file required for csv type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for sqlite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	if c.Output.Results == "" {
		return fmt.Errorf("output.results is required")
	}
	return nil
}

// Default returns a configuration with the standard run parameters.
func Default() *Config {
	return &Config{
		Backtest: Backtest{
			Capital:          1_000_000,
			EntryThreshold:   1.5,
			ExitThreshold:    0.0,
			LookbackWindow:   20,
			DelayedExecution: true,
		},
		Journal: Journal{Type: "none"},
		Output:  Output{Results: "results.csv"},
	}
}
