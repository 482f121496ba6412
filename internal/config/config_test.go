package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultType != "json2xml" {
		t.Errorf("Expected default_type json2xml, got %s", cfg.DefaultType)
	}
	if cfg.Indent != 0 {
		t.Errorf("Expected compact output by default, got indent %d", cfg.Indent)
	}
	if cfg.Strip {
		t.Error("Expected whitespace preservation by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "all conversion types accepted",
			config:  &Config{DefaultType: "xml2yaml"},
			wantErr: false,
		},
		{
			name:    "unknown default_type",
			config:  &Config{DefaultType: "xml2toml"},
			wantErr: true,
		},
		{
			name:    "empty default_type",
			config:  &Config{DefaultType: ""},
			wantErr: true,
		},
		{
			name:    "negative indent",
			config:  &Config{DefaultType: "xml2json", Indent: -1},
			wantErr: true,
		},
		{
			name:    "oversized indent",
			config:  &Config{DefaultType: "xml2json", Indent: 12},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	// Create a temporary directory for test config
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")

	// Override ConfigPath for testing
	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	testCfg := &Config{
		DefaultType: "xml2json",
		Indent:      2,
		Strip:       true,
		LogFile:     "/tmp/xmlbridge-test.log",
	}

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(testConfigPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedCfg.DefaultType != testCfg.DefaultType {
		t.Errorf("DefaultType mismatch: got %s, want %s", loadedCfg.DefaultType, testCfg.DefaultType)
	}
	if loadedCfg.Indent != testCfg.Indent {
		t.Errorf("Indent mismatch: got %d, want %d", loadedCfg.Indent, testCfg.Indent)
	}
	if !loadedCfg.Strip {
		t.Error("Strip flag was lost")
	}
	if loadedCfg.LogFile == "" {
		t.Error("LogFile should not be empty")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "nonexistent.json")

	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	// Load should return default config when file doesn't exist
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}

	if cfg.DefaultType != "json2xml" {
		t.Errorf("Expected default conversion json2xml, got %s", cfg.DefaultType)
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		contains string // The output should contain this
	}{
		{
			name:     "tilde expansion",
			input:    "~/test",
			contains: homeDir,
		},
		{
			name:     "tilde only",
			input:    "~",
			contains: homeDir,
		},
		{
			name:     "absolute path",
			input:    "/tmp/test",
			contains: "/tmp/test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath() error = %v", err)
			}
			if result == "" {
				t.Error("expandPath() returned empty string")
			}
			// Just verify it's not the original unexpanded path
			if tt.input[0] == '~' && result == tt.input {
				t.Errorf("Path was not expanded: %s", result)
			}
		})
	}
}

func TestConfigPathsExpanded(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")

	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	testCfg := &Config{
		DefaultType: "xml2json",
		LogFile:     "~/xmlbridge.log",
	}

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify the path is expanded (no longer contains ~)
	if loadedCfg.LogFile[0] == '~' {
		t.Error("LogFile was not expanded")
	}
}
