package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/pasomd/internal/models"
)

// DefaultHighlightTTL is the pending-highlight expiry used when none is configured
const DefaultHighlightTTL = 5 * time.Second

// Config represents the application configuration
type Config struct {
	DefaultColumn  string      `yaml:"default_column"`
	FenceLanguages []string    `yaml:"fence_languages"`
	HighlightTTL   string      `yaml:"highlight_ttl"`
	RenderMarkdown bool        `yaml:"render_markdown"`
	ColorScheme    ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from PASOMD_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("PASOMD_THEME_FILE")
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
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path
// Returns default config if file doesn't exist
func LoadFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	// Load theme from PASOMD_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
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

// HighlightDuration returns the parsed highlight TTL, falling back to the default
// for unparseable or non-positive values
func (c *Config) HighlightDuration() time.Duration {
	d, err := time.ParseDuration(c.HighlightTTL)
	if err != nil || d <= 0 {
		return DefaultHighlightTTL
	}
	return d
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "pasomd", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "pasomd", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.DefaultColumn = strings.TrimSpace(c.DefaultColumn)
	if c.DefaultColumn == "" {
		c.DefaultColumn = models.DefaultColumnName
	}
	if len(c.FenceLanguages) == 0 {
		c.FenceLanguages = []string{models.DefaultFenceLanguage}
	}
	if c.HighlightTTL == "" {
		c.HighlightTTL = DefaultHighlightTTL.String()
	}
	c.ColorScheme.ApplyDefaults()
}
