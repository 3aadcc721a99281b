package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KostasZigo/gogitlet/internal/constants"
)

// Config holds per-repository settings read from .gitlet/config.json.
// Every field is optional; missing values fall back to Default.
type Config struct {
	LogLevel string `json:"log_level"` // debug, info, warn, error
	Color    *bool  `json:"color"`     // nil means auto-detect
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		LogLevel: constants.DefaultLogLevel,
	}
}

// Load reads config.json from the gitlet directory and applies environment overrides.
// A missing file is not an error.
func Load(gitletDir string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(filepath.Join(gitletDir, constants.ConfigFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to open config: %w", err)
	default:
		defer file.Close()
		if err := json.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	if level := os.Getenv(constants.LogLevelEnv); level != "" {
		cfg.LogLevel = level
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = constants.DefaultLogLevel
	}

	return cfg, nil
}

// ColorEnabled reports whether output coloring was explicitly configured, and its value.
func (c *Config) ColorEnabled() (enabled, set bool) {
	if c.Color == nil {
		return false, false
	}
	return *c.Color, true
}
