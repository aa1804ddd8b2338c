// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/amaumene/wheretowatch/internal/constants"
)

const (
	// Default configuration file name
	defaultConfigFile = "config.json"
	// Default dotenv file name
	defaultEnvFile = ".env"
	// Default preferences file for the CLI
	defaultPrefsFile = "wheretowatch.db"
)

// Config holds the application configuration.
// It supports loading from a .env file, environment variables and a JSON or
// YAML file.
type Config struct {
	// Catalog credential. Only the proxy server holds it.
	TMDBAPIKey  string `json:"TMDB_API_KEY" yaml:"TMDB_API_KEY"`
	TMDBBaseURL string `json:"TMDB_BASE_URL" yaml:"TMDB_BASE_URL"`

	// Server settings
	Port     string `json:"PORT" yaml:"PORT"`
	LogLevel string `json:"LOG_LEVEL" yaml:"LOG_LEVEL"`

	// Client settings
	ProxyURL  string `json:"PROXY_URL" yaml:"PROXY_URL"`
	PrefsPath string `json:"PREFS_PATH" yaml:"PREFS_PATH"`

	RequestTimeout time.Duration `json:"REQUEST_TIMEOUT" yaml:"REQUEST_TIMEOUT"`
}

// Load reads configuration from .env, environment variables and an optional
// config file. Environment variables take precedence over file values.
func Load() (*Config, error) {
	cfg := defaults()

	// A missing .env is the normal case outside development.
	if err := godotenv.Load(getEnvOrDefault("ENV_FILE", defaultEnvFile)); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		TMDBBaseURL:    constants.TMDBBaseURL,
		Port:           constants.DefaultPort,
		LogLevel:       constants.DefaultLogLevel,
		ProxyURL:       constants.DefaultProxyURL,
		PrefsPath:      defaultPrefsPath(),
		RequestTimeout: constants.RequestTimeout,
	}
}

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() error {
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		c.TMDBAPIKey = v
	}
	if v := os.Getenv("TMDB_BASE_URL"); v != "" {
		c.TMDBBaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PROXY_URL"); v != "" {
		c.ProxyURL = v
	}
	if v := os.Getenv("PREFS_PATH"); v != "" {
		c.PrefsPath = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", v, err)
		}
		c.RequestTimeout = d
	}
	return nil
}

// loadFromFile loads configuration from a JSON or YAML file, chosen by
// extension.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	default:
		return json.Unmarshal(data, c)
	}
}

// Validate checks if the configuration is valid.
// Sets default values for missing optional fields.
func (c *Config) Validate() error {
	// TMDB_API_KEY is optional here: the proxy answers 500 per request when
	// it is missing, and the CLI never needs it.
	c.TMDBAPIKey = strings.TrimSpace(c.TMDBAPIKey)
	c.TMDBBaseURL = strings.TrimRight(c.TMDBBaseURL, "/")
	c.ProxyURL = strings.TrimRight(c.ProxyURL, "/")

	if c.TMDBBaseURL == "" {
		c.TMDBBaseURL = constants.TMDBBaseURL
	}
	if c.Port == "" {
		c.Port = constants.DefaultPort
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must not be negative")
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = constants.RequestTimeout
	}

	return nil
}

// HasAPIKey reports whether a catalog credential is configured.
func (c *Config) HasAPIKey() bool {
	return c.TMDBAPIKey != ""
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return defaultPrefsFile
	}
	return filepath.Join(dir, constants.AppName, defaultPrefsFile)
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
