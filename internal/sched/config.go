package sched

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml
type Config struct {
	Algorithm string `yaml:"algorithm"` // "" means ask interactively
	Quantum   int    `yaml:"quantum"`   // 2 (by default)
	Input     string `yaml:"input"`     // schedule.txt (by default)
	Trace     string `yaml:"trace_csv"` // optional CSV trace path
	LogLevel  string `yaml:"log_level"` // info (by default)
	LogJSON   bool   `yaml:"log_json"`  // text handler unless set
	Addr      string `yaml:"http_addr"` // :9095 (by default)
}

// DefaultConfig is used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Quantum:  2,
		Input:    "schedule.txt",
		LogLevel: "info",
		Addr:     ":9095",
	}
}

// Load reads YAML and overrides defaults; empty path or a missing file = defaults only.
// A quantum from the file is taken as is, Validate decides whether it is usable.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the algorithm name, if any, and the quantum when round robin is selected.
func (c Config) Validate() error {
	if c.Algorithm == "" {
		return nil
	}
	alg, err := ParseAlgorithm(c.Algorithm)
	if err != nil {
		return err
	}
	if alg == RoundRobin && c.Quantum <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantum, c.Quantum)
	}
	return nil
}
