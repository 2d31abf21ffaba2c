// Package workflow implements the generate/confirm/execute state machines
// for command and commit mode. Every external collaborator (completion
// client, process runner, change source, tag substitutor, terminal UI) is
// an interface, so the state machines run in tests without spawning
// subprocesses or touching the network.
//
// Errors are returned, never terminated on: the CLI layer owns the single
// point of process exit.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmillana/plz-cli/internal/config"
	"github.com/jmillana/plz-cli/internal/executor"
	"github.com/jmillana/plz-cli/internal/git"
	"github.com/jmillana/plz-cli/internal/prompt"
)

// CompletionClient issues one completion request and returns the generated
// text or a classified error.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userMessage string, maxTokens int) (string, error)
}

// ChangeSource yields the staged changeset as ordered text lines.
// git.ErrNoStagedChanges means there is nothing to commit.
type ChangeSource interface {
	StagedChanges(ctx context.Context) ([]string, error)
}

// TagSubstitutor rewrites symbolic tags in a generated message
type TagSubstitutor interface {
	Apply(ctx context.Context, text string) (result string, skipped []string, err error)
}

// UI drives the operator-facing side of a run: progress, artifact display,
// and the confirmation gates.
type UI interface {
	StartSpinner(msg string)
	StopSpinner(success bool, msg string)
	ShowArtifact(text string)
	Confirm(question string, defaultYes bool) (bool, error)
	Printf(format string, args ...interface{})
}

// Options are the operator-supplied knobs for one run
type Options struct {
	// Hint is optional free text prepended to the commit prompt
	Hint string
	// Gitmoji enables tag substitution on generated commit messages
	Gitmoji bool
	// Force skips the confirmation gate in command mode
	Force bool
	// TokenLimit overrides the mode default when positive
	TokenLimit int
}

// Workflow orchestrates one generation-and-execution run
type Workflow struct {
	cfg         *config.Config
	client      CompletionClient
	runner      executor.ProcessRunner
	changes     ChangeSource
	substitutor TagSubstitutor
	ui          UI
	opts        Options
}

// New assembles a workflow from its collaborators
func New(cfg *config.Config, client CompletionClient, runner executor.ProcessRunner, changes ChangeSource, substitutor TagSubstitutor, ui UI, opts Options) *Workflow {
	return &Workflow{
		cfg:         cfg,
		client:      client,
		runner:      runner,
		changes:     changes,
		substitutor: substitutor,
		ui:          ui,
		opts:        opts,
	}
}

// maxTokens resolves the token budget for a mode default, honoring the
// operator override.
func (w *Workflow) maxTokens(modeDefault int) int {
	if w.opts.TokenLimit > 0 {
		return w.opts.TokenLimit
	}
	return modeDefault
}

// RunCommand generates a shell command for the request, asks for
// confirmation unless forced, and executes it. Declining the gate is a
// clean no-op outcome, not an error.
func (w *Workflow) RunCommand(ctx context.Context, request string) error {
	system, user := prompt.BuildCommand(request, prompt.OSHint())

	w.ui.StartSpinner("Generating your command...")
	command, err := w.client.Complete(ctx, system, user, w.maxTokens(w.cfg.CommandMaxTokens))
	if err != nil {
		w.ui.StopSpinner(false, "Failed to generate a command")
		return err
	}
	w.ui.StopSpinner(true, "Command generated")

	w.ui.ShowArtifact(command)

	if !w.opts.Force {
		run, err := w.ui.Confirm("Run the generated command?", true)
		if err != nil {
			return err
		}
		if !run {
			return nil
		}
	}

	return w.execute(ctx, command)
}

// RunCommit collects the staged changes, generates a commit message,
// optionally substitutes gitmoji tags, and walks the operator through the
// three confirmation gates before committing. Declining any gate ends the
// run cleanly with no further side effects.
func (w *Workflow) RunCommit(ctx context.Context) error {
	changes, err := w.changes.StagedChanges(ctx)
	if err != nil {
		if errors.Is(err, git.ErrNoStagedChanges) {
			w.ui.Printf("Nothing to commit: the staging area is empty.\n")
			return nil
		}
		return err
	}

	system, user := prompt.BuildCommit(changes, w.opts.Hint, w.opts.Gitmoji)

	w.ui.StartSpinner("Generating your commit message...")
	message, err := w.client.Complete(ctx, system, user, w.maxTokens(w.cfg.CommitMaxTokens))
	if err != nil {
		w.ui.StopSpinner(false, "Failed to generate a commit message")
		return err
	}
	w.ui.StopSpinner(true, "Commit message generated")

	if w.opts.Gitmoji {
		substituted, skipped, err := w.substitutor.Apply(ctx, message)
		if err != nil {
			return err
		}
		for _, tag := range skipped {
			w.ui.Printf("No gitmoji found for tag %s\n", tag)
		}
		message = substituted
	}

	w.ui.ShowArtifact(message)

	accept, err := w.ui.Confirm("Accept the generated commit message?", true)
	if err != nil {
		return err
	}
	if !accept {
		return nil
	}

	build, err := w.ui.Confirm("Generate a commit with this message?", true)
	if err != nil {
		return err
	}
	if !build {
		return nil
	}

	commitCmd := git.CommitCommand(message)
	w.ui.ShowArtifact(commitCmd)

	run, err := w.ui.Confirm("Run the generated commit?", true)
	if err != nil {
		return err
	}
	if !run {
		return nil
	}

	return w.execute(ctx, commitCmd)
}

// execute runs the accepted command through the shell collaborator. Launch
// failure and non-zero exits are fatal; on success the captured stdout is
// emitted.
func (w *Workflow) execute(ctx context.Context, command string) error {
	w.ui.StartSpinner("Executing...")
	result, err := w.runner.Run(ctx, command)
	if err != nil {
		w.ui.StopSpinner(false, "Failed to execute the command")
		return fmt.Errorf("failed to execute the command: %w", err)
	}
	if !result.IsSuccess() {
		w.ui.StopSpinner(false, "The command threw an error")
		stderr := strings.TrimSpace(result.Stderr)
		if stderr != "" {
			return fmt.Errorf("command exited with status %d: %s", result.ExitCode, stderr)
		}
		return fmt.Errorf("command exited with status %d", result.ExitCode)
	}
	w.ui.StopSpinner(true, "Command ran successfully")

	if result.Output != "" {
		w.ui.Printf("%s", result.Output)
		if !strings.HasSuffix(result.Output, "\n") {
			w.ui.Printf("\n")
		}
	}
	return nil
}
