package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the config file
const ConfigFileName = "config.yaml"

// FileConfig represents the configuration file structure
type FileConfig struct {
	APIBase string `yaml:"api_base,omitempty"`
	APIKey  string `yaml:"api_key,omitempty"`
	Model   string `yaml:"model,omitempty"`
	Shell   string `yaml:"shell,omitempty"`

	// Token budgets per generation mode
	Tokens *TokensConfig `yaml:"tokens,omitempty"`

	// Default flag values
	Defaults *DefaultsConfig `yaml:"defaults,omitempty"`
}

// TokensConfig holds per-mode token budget overrides
type TokensConfig struct {
	Command int `yaml:"command,omitempty"`
	Commit  int `yaml:"commit,omitempty"`
}

// DefaultsConfig holds default flag values
type DefaultsConfig struct {
	Gitmoji bool `yaml:"gitmoji,omitempty"`
	Debug   bool `yaml:"debug,omitempty"`
}

// GetConfigPaths returns the paths to check for config files (in order of priority)
func GetConfigPaths() []string {
	var paths []string

	// 1. Current directory
	paths = append(paths, filepath.Join(".", ".plz", ConfigFileName))

	// 2. User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "plz", ConfigFileName))
	}

	// 3. Home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", "plz", ConfigFileName))
	}

	return paths
}

// LoadConfigFile attempts to load configuration from the first file found
func LoadConfigFile() (*FileConfig, error) {
	for _, path := range GetConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			return loadConfigFromPath(path)
		}
	}

	// No config file found, return empty config
	return &FileConfig{}, nil
}

// loadConfigFromPath loads config from a specific path
func loadConfigFromPath(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// ApplyFileConfig applies file configuration to the main Config.
// File config has lower priority than environment variables and CLI flags.
func (c *Config) ApplyFileConfig(fc *FileConfig) {
	if fc == nil {
		return
	}

	if c.APIBase == "" && fc.APIBase != "" {
		c.APIBase = fc.APIBase
	}
	if c.APIKey == "" && fc.APIKey != "" {
		c.APIKey = fc.APIKey
	}
	if c.Model == "" && fc.Model != "" {
		c.Model = fc.Model
	}
	if c.Shell == "" && fc.Shell != "" {
		c.Shell = fc.Shell
	}

	if fc.Tokens != nil {
		if c.CommandMaxTokens == 0 && fc.Tokens.Command > 0 {
			c.CommandMaxTokens = fc.Tokens.Command
		}
		if c.CommitMaxTokens == 0 && fc.Tokens.Commit > 0 {
			c.CommitMaxTokens = fc.Tokens.Commit
		}
	}

	// Boolean defaults only apply for "true" values, since a false flag is
	// indistinguishable from an unset one.
	if fc.Defaults != nil {
		if fc.Defaults.Gitmoji && !c.DefaultGitmoji {
			c.DefaultGitmoji = true
		}
		if fc.Defaults.Debug && !c.Debug {
			c.Debug = true
		}
	}
}

// CreateDefaultConfigFile creates a commented config file at the user config directory
func CreateDefaultConfigFile() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine config directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	dir := filepath.Join(configDir, "plz")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists at %s", path)
	}

	defaultConfig := `# plz configuration
# Location: ~/.config/plz/config.yaml

# Completion endpoint base URL
# api_base: https://api.openai.com/v1

# API key (environment variables PLZ_API_KEY / OPENAI_API_KEY take precedence)
# api_key: your-api-key

# Model used for generation
# model: gpt-4o-mini

# Shell used to run generated commands
# shell: bash

# Token budgets per mode
# tokens:
#   command: 100
#   commit: 1000

# Default flags
# defaults:
#   gitmoji: false
#   debug: false
`

	if err := os.WriteFile(path, []byte(defaultConfig), 0600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
