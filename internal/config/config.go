// Package config loads user configuration for the idp CLI from a TOML
// file, with sensible defaults when no file exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/idiampro/idp/internal/outline"
)

// Config holds idp settings.
type Config struct {
	// Format is the default on-disk encoding for newly created outlines:
	// "json" or "yaml".
	Format string `toml:"format"`
	// TreeDepth is the default depth limit for the tree command
	// (0 = unlimited).
	TreeDepth int `toml:"tree_depth"`
	// DefaultType is the node type used by add when --type is omitted.
	DefaultType string `toml:"default_type"`
}

// Load reads the config from the standard location, falling back to
// defaults if the path cannot be resolved.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return defaultConfig(), nil
	}
	return LoadFromFile(path)
}

// LoadFromFile loads config from a specific file. A missing file is not
// an error: defaults are returned.
func LoadFromFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Format == "" {
		cfg.Format = "json"
	}
	if cfg.Format != "json" && cfg.Format != "yaml" {
		return nil, fmt.Errorf("config format must be \"json\" or \"yaml\", got %q", cfg.Format)
	}
	if cfg.DefaultType == "" {
		cfg.DefaultType = "document"
	}
	if !outline.AssignableType(outline.NodeType(cfg.DefaultType)) {
		return nil, fmt.Errorf("config default_type %q is not an assignable node type", cfg.DefaultType)
	}
	if cfg.TreeDepth < 0 {
		cfg.TreeDepth = 0
	}
	return &cfg, nil
}

// configPath returns the standard config file location.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "idp", "config.toml"), nil
}

// defaultConfig returns the built-in defaults.
func defaultConfig() *Config {
	return &Config{
		Format:      "json",
		TreeDepth:   0,
		DefaultType: "document",
	}
}
