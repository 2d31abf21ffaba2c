// Package config loads application configuration from config files,
// environment variables, and flags, in increasing order of priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jmillana/plz-cli/internal/constants"
)

// Environment variable names
const (
	EnvAPIBase      = "PLZ_API_BASE"
	EnvAPIKey       = "PLZ_API_KEY"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvModel        = "PLZ_MODEL"
	EnvShell        = "PLZ_SHELL"
	EnvDebug        = "PLZ_DEBUG"
)

// Errors
var (
	ErrAPIKeyNotFound = errors.New("API key not found. Set PLZ_API_KEY or OPENAI_API_KEY, or add api_key to the config file")
)

// Config holds the application configuration
type Config struct {
	// Completion endpoint settings
	APIBase string
	APIKey  string
	Model   string

	// Shell used for generated commands and external lookups
	Shell string

	// Token budgets per mode; zero means "use the mode default"
	CommandMaxTokens int
	CommitMaxTokens  int

	// DefaultGitmoji turns on gitmoji substitution unless overridden by flag
	DefaultGitmoji bool

	// Debug enables HTTP request/response logging
	Debug bool
}

// NewConfig creates a new Config with defaults applied lazily in Validate
func NewConfig() *Config {
	return &Config{}
}

// Validate loads the configuration layers and checks required settings.
// Priority: flags (already set on the struct) > environment > config file > defaults.
func (c *Config) Validate() error {
	// Config file is the lowest priority layer; load errors are ignored so a
	// malformed file never blocks env/flag driven usage.
	if fileConfig, err := LoadConfigFile(); err == nil {
		c.ApplyFileConfig(fileConfig)
	}

	if c.APIBase == "" {
		c.APIBase = os.Getenv(EnvAPIBase)
	}
	if c.APIBase == "" {
		c.APIBase = constants.DefaultAPIBase
	}
	c.APIBase = strings.TrimSuffix(c.APIBase, "/")

	if c.APIKey == "" {
		c.APIKey = strings.TrimSpace(os.Getenv(EnvAPIKey))
	}
	if c.APIKey == "" {
		c.APIKey = strings.TrimSpace(os.Getenv(EnvOpenAIAPIKey))
	}
	if c.APIKey == "" {
		return ErrAPIKeyNotFound
	}

	if c.Model == "" {
		c.Model = os.Getenv(EnvModel)
	}
	if c.Model == "" {
		c.Model = constants.DefaultModel
	}

	if c.Shell == "" {
		c.Shell = os.Getenv(EnvShell)
	}
	if c.Shell == "" {
		c.Shell = constants.DefaultShell
	}

	if c.CommandMaxTokens == 0 {
		c.CommandMaxTokens = constants.DefaultCommandMaxTokens
	}
	if c.CommitMaxTokens == 0 {
		c.CommitMaxTokens = constants.DefaultCommitMaxTokens
	}

	if !c.Debug {
		c.Debug = os.Getenv(EnvDebug) != ""
	}

	return nil
}

// CompletionsURL builds the full URL for the chat completions endpoint
func (c *Config) CompletionsURL() string {
	return fmt.Sprintf("%s/chat/completions", c.APIBase)
}
