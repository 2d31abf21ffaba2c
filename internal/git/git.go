// Package git is the version-control collaborator: it reads the staged
// changeset and builds commit invocations for the shell runner.
package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmillana/plz-cli/internal/executor"
)

// ErrNoStagedChanges signals that there is nothing to commit. It is not a
// failure: callers treat it as a clean early exit.
var ErrNoStagedChanges = errors.New("no staged changes")

// Client reads repository state through an injected process runner
type Client struct {
	runner executor.ProcessRunner
}

// NewClient creates a git client backed by the given runner
func NewClient(runner executor.ProcessRunner) *Client {
	return &Client{runner: runner}
}

// StagedChanges returns the staged diff as ordered text lines, with the
// leading "diff --git" header line skipped. Returns ErrNoStagedChanges when
// the staging area is empty.
func (c *Client) StagedChanges(ctx context.Context) ([]string, error) {
	result, err := c.runner.Run(ctx, "git diff --cached")
	if err != nil {
		return nil, fmt.Errorf("failed to execute git diff: %w", err)
	}
	if !result.IsSuccess() {
		return nil, fmt.Errorf("git diff exited with status %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr))
	}

	if strings.TrimSpace(result.Output) == "" {
		return nil, ErrNoStagedChanges
	}

	lines := strings.Split(strings.TrimRight(result.Output, "\n"), "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}
	return lines, nil
}

// CommitCommand builds the shell invocation that creates a commit with the
// given message. Single quotes in the message are escaped so the command
// shown to the operator is exactly the command that runs.
func CommitCommand(message string) string {
	escaped := strings.ReplaceAll(message, "'", `'\''`)
	return "git commit -m '" + escaped + "'"
}
