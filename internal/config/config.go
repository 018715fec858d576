// Package config loads the CLI front end's configuration: the REPL history
// file, the prompt string, and whether to print the startup banner. None of
// this reaches the multimap core itself — the core takes no configuration
// beyond its compile-time Fanout/LineSize constants (see SPEC_FULL.md §3.1).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the CLI front end's configuration.
type Config struct {
	HistoryFile string `yaml:"history_file"`
	Prompt      string `yaml:"prompt"`
	Banner      bool   `yaml:"banner"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		HistoryFile: ".cachetree_history",
		Prompt:      "cachetree> ",
		Banner:      true,
	}
}

// Load reads a YAML configuration file and overlays it on Default. A
// missing path is not an error: the CLI runs with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
