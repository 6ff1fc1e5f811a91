// ABOUTME: Configuration for storage backend, AI access and logging.
// ABOUTME: Layers XDG config file, .env file and environment variables.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings.
type Config struct {
	// Store is the storage backend: "badger" (default) or "redis".
	Store string `json:"store,omitempty"`

	// DataDir is the badger data directory (default: $XDG_DATA_HOME/neonotes/store)
	DataDir string `json:"data_dir,omitempty"`

	// RedisURL is used when Store is "redis".
	RedisURL string `json:"redis_url,omitempty"`

	APIKey    string `json:"api_key,omitempty"`
	Model     string `json:"model,omitempty"`
	AIBaseURL string `json:"ai_base_url,omitempty"`
	// AITimeout is in seconds.
	AITimeout int `json:"ai_timeout,omitempty"`

	LogLevel string `json:"log_level,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Store:     "badger",
		DataDir:   DefaultDataDir(),
		RedisURL:  "redis://localhost:6379/0",
		Model:     "gemini-2.5-flash",
		AITimeout: 60,
		LogLevel:  "warn",
	}
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "neonotes")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// DefaultDataDir returns the default badger directory.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "neonotes", "store")
}

// LoadConfig loads configuration from disk, returns defaults if not found.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ConfigPath(), err)
	}

	return cfg, nil
}

// Load reads the config file, then a .env file in the working directory if
// present, then applies environment overrides.
func Load() (*Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides fields from NEONOTES_* variables. GEMINI_API_KEY wins
// over API_KEY.
func (c *Config) ApplyEnv() {
	set := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v := os.Getenv(k); v != "" {
				*dst = v
				return
			}
		}
	}
	set(&c.Store, "NEONOTES_STORE")
	set(&c.DataDir, "NEONOTES_DB")
	set(&c.RedisURL, "NEONOTES_REDIS_URL")
	set(&c.APIKey, "GEMINI_API_KEY", "API_KEY")
	set(&c.Model, "NEONOTES_MODEL")
	set(&c.AIBaseURL, "NEONOTES_AI_BASE_URL")
	set(&c.LogLevel, "NEONOTES_LOG_LEVEL")
}

// Timeout returns AITimeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.AITimeout) * time.Second
}

// SaveConfig writes configuration to disk.
func SaveConfig(cfg *Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(), data, 0600)
}

// ConfigExists returns true if a config file exists.
func ConfigExists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
