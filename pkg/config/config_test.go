package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	testConfig := Config{
		APIBaseURL: "http://backend.example.com/api",
		AuthToken:  "test-token",
		Defaults: DefaultConfig{
			ExportDir: "./test-export",
		},
	}

	data, err := json.MarshalIndent(testConfig, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	// Test loading the config.
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.APIBaseURL != testConfig.APIBaseURL {
		t.Errorf("Expected base URL %s, got %s", testConfig.APIBaseURL, cfg.APIBaseURL)
	}

	if cfg.AuthToken != testConfig.AuthToken {
		t.Errorf("Expected token %s, got %s", testConfig.AuthToken, cfg.AuthToken)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Expected missing config to fall back to defaults, got %v", err)
	}

	if cfg.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultAPIBaseURL, cfg.APIBaseURL)
	}

	if cfg.Defaults.ExportDir == "" {
		t.Error("Expected a default export dir")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TWIN_API_BASE_URL", "http://override.example.com/api/")
	t.Setenv("TWIN_AUTH_TOKEN", "env-token")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Trailing slash should be trimmed.
	if cfg.APIBaseURL != "http://override.example.com/api" {
		t.Errorf("Expected env override base URL, got %s", cfg.APIBaseURL)
	}

	if cfg.AuthToken != "env-token" {
		t.Errorf("Expected env override token, got %s", cfg.AuthToken)
	}
}

func TestValidateRejectsNonHTTPURL(t *testing.T) {
	cfg := Config{APIBaseURL: "ftp://backend.example.com"}

	err := cfg.Validate()
	if err == nil {
		t.Error("Expected error for non-http URL, got nil")
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := Config{}

	err := cfg.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("Expected default base URL, got %s", cfg.APIBaseURL)
	}
}

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sub", "config.json")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	// Second init must refuse to overwrite.
	err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error initializing existing config, got nil")
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load initialized config: %v", err)
	}

	if cfg.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("Expected default base URL, got %s", cfg.APIBaseURL)
	}
}
