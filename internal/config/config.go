// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
)

const appDirName = "resumedit"

// Config holds every setting the binaries read at startup
type Config struct {
	DataDir    string `env:"RESUMEDIT_DATA_DIR"`
	Storage    string `env:"RESUMEDIT_STORAGE" envDefault:"sqlite" validate:"oneof=sqlite file"`
	StorageKey string `env:"RESUMEDIT_STORAGE_KEY" envDefault:"resume-data" validate:"required,excludesall=/\\"`
	ExportFile string `env:"RESUMEDIT_EXPORT_FILE" envDefault:"resume-data.json" validate:"required"`
	LogLevel   string `env:"RESUMEDIT_LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn warning error"`
	LogFile    string `env:"RESUMEDIT_LOG_FILE"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment. Variables already set win over the .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the current environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DataDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = dir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings. Callers that override fields after Load
// validate again.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DatabasePath returns the SQLite database location inside the data directory
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "resumedit.db")
}

// defaultDataDir follows the XDG base directory layout: $XDG_DATA_HOME,
// falling back to ~/.local/share.
func defaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", appDirName), nil
}
