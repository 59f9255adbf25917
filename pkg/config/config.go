package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	APIBaseURL  string        `json:"api_base_url"`
	AuthToken   string        `json:"auth_token,omitempty"`
	SessionPath string        `json:"session_path,omitempty"`
	Defaults    DefaultConfig `json:"defaults"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	ExportDir string `json:"export_dir"`
}

// DefaultAPIBaseURL is the local development backend.
const DefaultAPIBaseURL = "http://localhost:7011/api"

// Load reads configuration from file with environment variable
// overrides. A missing config file is not an error: the defaults plus
// TWIN_API_BASE_URL / TWIN_AUTH_TOKEN are enough to run.
func Load(configPath string) (cfg Config, err error) {
	// .env is only relevant for local development; ignore when absent.
	_ = godotenv.Load()

	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return cfg, err
		}
		path = filepath.Join(homeDir, ".twinctl", "config.json")
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			err = errors.Wrapf(err, "failed to read config file: %s", path)
			return cfg, err
		}
		err = nil
	} else {
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	}

	// Override with environment variables if set
	if baseURL := os.Getenv("TWIN_API_BASE_URL"); baseURL != "" {
		cfg.APIBaseURL = baseURL
	}
	if token := os.Getenv("TWIN_AUTH_TOKEN"); token != "" {
		cfg.AuthToken = token
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate fills defaults and checks that the configuration is usable.
func (c *Config) Validate() (err error) {
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}

	// Trailing slashes produce double-slash paths against the backend.
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")

	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		err = errors.Errorf("api_base_url must be an http(s) URL: %s", c.APIBaseURL)
		return err
	}

	if c.Defaults.ExportDir == "" {
		c.Defaults.ExportDir = "./twin-export"
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return err
		}
		path = filepath.Join(homeDir, ".twinctl", "config.json")
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return err
	}

	defaultConfig := Config{
		APIBaseURL: DefaultAPIBaseURL,
		Defaults: DefaultConfig{
			ExportDir: filepath.Join(homeDir, "Documents", "TwinExport"),
		},
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
