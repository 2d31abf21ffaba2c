// Package constants provides shared constants used across the application
// to avoid circular dependencies between packages.
package constants

import "time"

// Timeout constants used across the application
const (
	// DefaultAPITimeout is the timeout for completion API requests
	DefaultAPITimeout = 120 * time.Second
	// DefaultCommandTimeout is the timeout for shell command execution
	DefaultCommandTimeout = 30 * time.Second
)

// Application defaults
const (
	DefaultAPIBase = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
	DefaultShell   = "bash"
)

// Token budgets per generation mode. Commit messages carry a diff in the
// prompt and a multi-line body in the response, so they get a larger cap.
const (
	DefaultCommandMaxTokens = 100
	DefaultCommitMaxTokens  = 1000
)
