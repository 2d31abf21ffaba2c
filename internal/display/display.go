// Package display handles all operator-facing terminal output: progress
// spinners, rendered artifacts, confirmation prompts, and error reporting.
package display

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/glamour"
)

// Marks used when a spinner phase is persisted
const (
	successMark = "✔"
	failureMark = "✖"
)

var renderer *glamour.TermRenderer

// InitRenderer initializes the markdown renderer used for artifacts.
// Rendering is best-effort: when initialization fails, artifacts fall back
// to plain output.
func InitRenderer() error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	renderer = r
	return nil
}

// ShowError prints a fatal error message to stderr
func ShowError(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", failureMark, msg)
}

// ShowBanner prints the startup banner with the active mode
func ShowBanner(mode string) {
	fmt.Printf("🤖 plz at your service\n")
	fmt.Printf("Mode: %s\n", mode)
}

// TerminalUI drives the interactive parts of a workflow run. It satisfies
// the workflow's UI collaborator.
type TerminalUI struct {
	out     io.Writer
	in      *bufio.Reader
	spinner *spinner.Spinner
}

// NewTerminalUI creates a UI bound to stdin/stdout
func NewTerminalUI() *TerminalUI {
	return &TerminalUI{
		out: os.Stdout,
		in:  bufio.NewReader(os.Stdin),
	}
}

// StartSpinner starts a progress spinner with the given message
func (ui *TerminalUI) StartSpinner(msg string) {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " " + msg
	s.Start()
	ui.spinner = s
}

// StopSpinner stops the active spinner and persists a final status line
func (ui *TerminalUI) StopSpinner(success bool, msg string) {
	mark := successMark
	if !success {
		mark = failureMark
	}
	if ui.spinner != nil {
		ui.spinner.FinalMSG = fmt.Sprintf("%s %s\n", mark, msg)
		ui.spinner.Stop()
		ui.spinner = nil
		return
	}
	fmt.Fprintf(ui.out, "%s %s\n", mark, msg)
}

// ShowArtifact displays generated text as a highlighted shell block,
// falling back to plain output when the renderer is unavailable.
func (ui *TerminalUI) ShowArtifact(text string) {
	if renderer != nil {
		if rendered, err := renderer.Render("```bash\n" + text + "\n```"); err == nil {
			fmt.Fprint(ui.out, rendered)
			return
		}
	}
	fmt.Fprintf(ui.out, "\n    %s\n\n", strings.ReplaceAll(text, "\n", "\n    "))
}

// Confirm presents a yes/no gate and reads answers until one is
// acceptable. An empty answer selects the default.
func (ui *TerminalUI) Confirm(question string, defaultYes bool) (bool, error) {
	suffix := "[Y/n]"
	if !defaultYes {
		suffix = "[y/N]"
	}

	for {
		fmt.Fprintf(ui.out, ">> %s %s ", question, suffix)
		line, err := ui.in.ReadString('\n')
		if err != nil && line == "" {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// Printf writes formatted output to the terminal
func (ui *TerminalUI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(ui.out, format, args...)
}
