package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Data sources
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// ErrInvalidSource indicates an unknown data.source value
var ErrInvalidSource = errors.New("invalid data source (must be: csv, sqlite)")

// Config represents the application configuration
type Config struct {
	Data        DataConfig   `yaml:"data"`
	Server      ServerConfig `yaml:"server"`
	KeyMappings KeyMappings  `yaml:"key_mappings"`
	ColorScheme ColorScheme  `yaml:"theme"`
}

// DataConfig locates the wine datasets
type DataConfig struct {
	Red      string `yaml:"red"`
	White    string `yaml:"white"`
	Source   string `yaml:"source"`   // csv or sqlite
	Database string `yaml:"database"` // empty means ~/.winedash/wine.db
}

// ServerConfig configures the web dashboard
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultDataConfig returns the source file locations relative to the
// working directory
func DefaultDataConfig() DataConfig {
	return DataConfig{
		Red:    "winequality-red.csv",
		White:  "winequality-white.csv",
		Source: SourceCSV,
	}
}

// DefaultServerConfig returns the default web dashboard settings
func DefaultServerConfig() ServerConfig {
	return ServerConfig{Addr: "127.0.0.1:8070"}
}

// Default returns a config with every value set to its default
func Default() *Config {
	return &Config{
		Data:        DefaultDataConfig(),
		Server:      DefaultServerConfig(),
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
}

// loadThemeFile loads and merges theme from WINEDASH_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("WINEDASH_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path. A missing file yields the defaults.
func LoadFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return &config, nil
}

// Validate checks values that have a closed set of options
func (c *Config) Validate() error {
	switch c.Data.Source {
	case SourceCSV, SourceSQLite:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidSource, c.Data.Source)
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "winedash", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "winedash", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	data := DefaultDataConfig()
	if c.Data.Red == "" {
		c.Data.Red = data.Red
	}
	if c.Data.White == "" {
		c.Data.White = data.White
	}
	if c.Data.Source == "" {
		c.Data.Source = data.Source
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerConfig().Addr
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
