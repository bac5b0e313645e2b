package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey indicates no catalog credential is configured; the
// client cannot start without one
var ErrMissingAPIKey = errors.New("no catalog API key configured")

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds the catalog provider configuration. The API key
// is attached to every request.
type CatalogConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	ImageBaseURL string `mapstructure:"image_base_url"`
	APIKey       string `mapstructure:"api_key"`
	Language     string `mapstructure:"language"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	PosterSize string `mapstructure:"poster_size"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p",
			Language:     "en-US",
		},
		UI: UIConfig{
			PosterSize: "w500",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee", "marquee.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "marquee", "marquee.log")
	}
}

// defaultConfigPath returns the default config directory for the
// current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "marquee")
	}
}

// defaultCachePath returns the default cache directory for the
// current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "marquee", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "marquee", "cache")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("MARQUEE")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if key := viper.GetString("api_key"); key != "" && cfg.Catalog.APIKey == "" {
		// MARQUEE_API_KEY as a bare env override
		cfg.Catalog.APIKey = key
	}

	return cfg, nil
}

// Validate checks the config for fatal startup conditions
func (c *Config) Validate() error {
	if c.Catalog.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Catalog.BaseURL == "" {
		return errors.New("catalog base URL must not be empty")
	}
	return nil
}

// IsConfigured returns true if a catalog credential is set
func (c *Config) IsConfigured() bool {
	return c.Catalog.APIKey != ""
}

// SaveAPIKey updates just the catalog API key in the configuration
func SaveAPIKey(key string) error {
	viper.Set("catalog.api_key", key)

	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// PosterURL builds a full image URL for a provider-relative poster
// path; empty paths yield an empty string
func (c *Config) PosterURL(path string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s%s", c.Catalog.ImageBaseURL, c.UI.PosterSize, path)
}

// CachePath returns the cache directory path
func CachePath() string {
	return defaultCachePath()
}
