// Package config loads the providers file used by the CLI.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultInterval is used when the file does not set one.
const DefaultInterval = 10 * time.Second

// File is the providers file (YAML):
//
//	providers:
//	  - https://eth.llamarpc.com
//	  - https://rpc.ankr.com/eth
//	interval: 10s
type File struct {
	Providers []string `yaml:"providers"`
	Interval  string   `yaml:"interval"` // Go duration string; empty = DefaultInterval
}

// Load reads and parses the providers file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading providers file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing providers file: %w", err)
	}
	return &f, nil
}

// CheckInterval returns the configured checking interval, or DefaultInterval
// when the file does not set one.
func (f *File) CheckInterval() (time.Duration, error) {
	if f.Interval == "" {
		return DefaultInterval, nil
	}
	d, err := time.ParseDuration(f.Interval)
	if err != nil {
		return 0, fmt.Errorf("parsing interval %q: %w", f.Interval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("interval %q must be positive", f.Interval)
	}
	return d, nil
}
