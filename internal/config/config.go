// Package config loads rfi's settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds session settings. Everything has a sensible default so
// the tool works with no environment at all.
type Config struct {
	// Theme selects the color theme.
	Theme string `env:"RFI_THEME" envDefault:"parchment"`

	// Seed makes dice rolls reproducible when non-zero.
	Seed int64 `env:"RFI_SEED" envDefault:"0"`

	// MaxTableWidth caps the rendered queue and help tables.
	MaxTableWidth int `env:"RFI_MAX_TABLE_WIDTH" envDefault:"90"`

	// DebugLog is a file path for debug logging; empty disables it.
	DebugLog string `env:"RFI_DEBUG_LOG"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxTableWidth < 20 {
		cfg.MaxTableWidth = 20
	}
	return cfg, nil
}
