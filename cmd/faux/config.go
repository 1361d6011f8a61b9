package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/solitonlab/faux/pkg/faux"
)

// Config is the top-level configuration for the faux CLI.
type Config struct {
	// LogLevel sets the stderr log verbosity: debug, info, warn, or error.
	LogLevel string `json:"log_level"`
	// Generator is the default generator name used when -gen is not given.
	Generator string `json:"generator"`
	// Count is the default number of values to generate.
	Count int `json:"count"`
	// DatabasePath, when set, points at a wordstore SQLite database whose
	// corpora are registered under "db.<name>".
	DatabasePath string `json:"database_path,omitempty"`
	// Definitions are user-defined generators, applied in order on top of
	// the built-ins. Later definitions may reference earlier ones.
	Definitions []faux.Definition `json:"definitions,omitempty"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		Generator: "enus.full_name",
		Count:     1,
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Log a warning instead of failing, as the CLI can still run with defaults.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
