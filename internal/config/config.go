package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Config represents the xmlbridge configuration: defaults applied when
// the matching command-line flag is absent.
type Config struct {
	DefaultType string `json:"default_type,omitempty"` // conversion when --type is not given
	Indent      int    `json:"indent,omitempty"`       // JSON indent width, 0 means compact
	Strip       bool   `json:"strip,omitempty"`        // trim whitespace-only text on xml->interchange
	LogFile     string `json:"log_file,omitempty"`     // empty means log to stderr
}

// ConversionTypes lists the recognized --type values.
var ConversionTypes = map[string]bool{
	"xml2json": true,
	"json2xml": true,
	"xml2yaml": true,
	"yaml2xml": true,
}

// DefaultConfig returns default configuration. The original converter
// defaulted to json2xml with whitespace preserved; those defaults are
// kept here.
func DefaultConfig() *Config {
	return &Config{
		DefaultType: "json2xml",
		Indent:      0,
		Strip:       false,
		LogFile:     "",
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config on all platforms for consistency.
// Can be overridden for testing.
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "xmlbridge", "config.json")
	}
	return filepath.Join(home, ".config", "xmlbridge", "config.json")
}

// Load reads configuration from the config directory, falling back to
// defaults when no file exists.
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}
	return cfg, nil
}

// Save writes configuration to the config directory.
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !ConversionTypes[c.DefaultType] {
		return fmt.Errorf("invalid default_type '%s': must be one of: xml2json, json2xml, xml2yaml, yaml2xml", c.DefaultType)
	}
	if c.Indent < 0 || c.Indent > 8 {
		return fmt.Errorf("indent must be between 0 and 8")
	}
	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths.
func (c *Config) ExpandPaths() error {
	if c.LogFile == "" {
		return nil
	}
	expanded, err := expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}
	c.LogFile = expanded
	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
