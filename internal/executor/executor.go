// Package executor runs generated commands through an external shell as
// scoped child processes, capturing their output.
package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/jmillana/plz-cli/internal/constants"
)

// ExecutionResult holds the captured outcome of a shell command
type ExecutionResult struct {
	Output   string
	Stderr   string
	ExitCode int
}

// IsSuccess reports whether the command exited cleanly
func (r *ExecutionResult) IsSuccess() bool {
	return r.ExitCode == 0
}

// ProcessRunner defines the interface for running external commands.
// This interface enables dependency injection and easier testing: the
// workflow state machines never spawn real subprocesses in tests.
type ProcessRunner interface {
	// Run executes a command string and returns the captured result.
	// A process that started but exited non-zero is returned as a result,
	// not an error; an error means the process could not be launched.
	Run(ctx context.Context, command string) (*ExecutionResult, error)
}

// Ensure the concrete runner implements the interface
var _ ProcessRunner = (*ShellRunner)(nil)

// ShellRunner runs commands under an interactive shell (`shell -c <cmd>`)
type ShellRunner struct {
	shell   string
	timeout time.Duration
}

// NewShellRunner creates a runner for the given shell binary
func NewShellRunner(shell string) *ShellRunner {
	if shell == "" {
		shell = constants.DefaultShell
	}
	return &ShellRunner{
		shell:   shell,
		timeout: constants.DefaultCommandTimeout,
	}
}

// SetTimeout sets the command execution timeout. Zero disables it.
func (r *ShellRunner) SetTimeout(timeout time.Duration) {
	r.timeout = timeout
}

// Run executes the command and captures stdout and stderr separately.
// The child process handle is not retained past collection of its result.
func (r *ShellRunner) Run(ctx context.Context, command string) (*ExecutionResult, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.shell, "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &ExecutionResult{
		Output: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		// The shell itself could not be launched
		return nil, err
	}

	return result, nil
}
