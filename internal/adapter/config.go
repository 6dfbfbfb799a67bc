package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"wallcraft/internal/domain"
)

// Config holds all application configuration
type Config struct {
	Scope      string  `mapstructure:"scope"`      // e.g. "catalog/city"
	Resolution string  `mapstructure:"resolution"` // "default" (autodetect) or "WIDTHxHEIGHT"
	MinScore   float64 `mapstructure:"min_score"`  // drop listing rows rated below this; 0 keeps all

	HistoryLimit int    `mapstructure:"history_limit"`
	CacheDir     string `mapstructure:"cache_dir"` // downloaded images + scope cache db
	DataDir      string `mapstructure:"data_dir"`

	Fetch   FetchConfig   `mapstructure:"fetch"`
	Logging LoggingConfig `mapstructure:"logging"`

	// file is the config file this Config was loaded from. SaveConfig
	// writes back to it, so --config runs update their own file.
	file string
}

// FetchConfig tunes the page-fetch fan-out against the site
type FetchConfig struct {
	Workers         int           `mapstructure:"workers"`
	RequestInterval time.Duration `mapstructure:"request_interval"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Scope:        "catalog/city",
		Resolution:   "default",
		MinScore:     0,
		HistoryLimit: 100,
		CacheDir:     defaultCachePath(),
		DataDir:      defaultDataPath(),
		Fetch: FetchConfig{
			Workers:         50,
			RequestInterval: 5 * time.Second,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "wallcraft.log"),
			Level: "INFO",
		},
	}
}

func defaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "wallcraft")
}

func defaultDataPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "wallcraft")
}

func defaultCachePath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "wallcraft")
}

// LoadConfig loads configuration from file and environment. An empty path
// uses the default location; a missing file is fine, defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
	}

	// Environment variable overrides
	v.SetEnvPrefix("WALLCRAFT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}
	cfg.file = v.ConfigFileUsed()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields a typo would silently break.
func (c *Config) Validate() error {
	if _, err := domain.ParseScope(c.Scope); err != nil {
		return err
	}
	if c.Resolution != "default" {
		if _, err := domain.ParseResolution(c.Resolution); err != nil {
			return err
		}
	}
	if c.MinScore < 0 {
		return fmt.Errorf("min_score must not be negative, got %v", c.MinScore)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive, got %d", c.HistoryLimit)
	}
	if c.Fetch.Workers <= 0 {
		return fmt.Errorf("fetch.workers must be positive, got %d", c.Fetch.Workers)
	}
	if c.Fetch.RequestInterval < 0 {
		return fmt.Errorf("fetch.request_interval must not be negative")
	}
	return nil
}

// SaveConfig writes the configuration back to the file it was loaded
// from, falling back to the default location when no file was involved.
func SaveConfig(cfg *Config) error {
	configFile := cfg.file
	if configFile == "" {
		configFile = filepath.Join(defaultConfigPath(), "config.yaml")
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	v := viper.New()
	v.Set("scope", cfg.Scope)
	v.Set("resolution", cfg.Resolution)
	v.Set("min_score", cfg.MinScore)
	v.Set("history_limit", cfg.HistoryLimit)
	v.Set("cache_dir", cfg.CacheDir)
	v.Set("data_dir", cfg.DataDir)
	v.Set("fetch.workers", cfg.Fetch.Workers)
	v.Set("fetch.request_interval", cfg.Fetch.RequestInterval)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
