package cmd

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmillana/plz-cli/internal/api"
	"github.com/jmillana/plz-cli/internal/config"
	"github.com/jmillana/plz-cli/internal/display"
	"github.com/jmillana/plz-cli/internal/executor"
	"github.com/jmillana/plz-cli/internal/workflow"
)

// App holds the application state
type App struct {
	cfg        *config.Config
	termUI     *display.TerminalUI
	verbose    bool
	force      bool
	tokenLimit int
}

// NewApp creates a new App instance with default configuration
func NewApp() *App {
	return &App{
		cfg: config.NewConfig(),
	}
}

// Execute runs the root command. This is the single point of process
// termination: every fatal condition inside the workflows propagates here
// as an error and exits with status 1.
func Execute() {
	app := NewApp()

	rootCmd := app.newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		display.ShowError(err.Error())
		os.Exit(1)
	}
}

func (app *App) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plz [request...]",
		Short: "Turn a natural-language request into a shell command",
		Long: `plz is a command-line assistant backed by a chat completion endpoint.

Describe what you want done and plz generates a single shell command,
shows it to you, and runs it once you confirm. The commit subcommand
generates a commit message from your staged changes instead.

Examples:
  plz list the 10 largest files here
  plz -y show open tcp ports
  plz commit
  plz commit -e -H "refactor only, no behavior change"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runCommandMode(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVarP(&app.tokenLimit, "token-limit", "t", 0, "Override the token budget for generation")
	rootCmd.Flags().BoolVarP(&app.force, "force", "y", false, "Run the generated command without asking for confirmation")

	rootCmd.AddCommand(app.newCommitCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// setup validates configuration and prepares shared state for a run
func (app *App) setup() error {
	if app.verbose {
		app.cfg.Debug = true
	}
	if err := app.cfg.Validate(); err != nil {
		return err
	}

	// Rendering is cosmetic; a failed init falls back to plain output
	if err := display.InitRenderer(); err != nil {
		log.Printf("renderer unavailable: %v", err)
	}
	return nil
}

// runCommandMode drives the command-generation workflow
func (app *App) runCommandMode(cmd *cobra.Command, args []string) error {
	if err := app.setup(); err != nil {
		return err
	}

	request := strings.TrimSpace(strings.Join(args, " "))
	if request == "" {
		request = display.ReadRequest()
	}
	if request == "" {
		app.ui().Printf("No request given.\n")
		return nil
	}

	display.ShowBanner("command")

	runner := executor.NewShellRunner(app.cfg.Shell)
	// Generated commands may legitimately run long; cancellation happens at
	// the confirmation gate, not mid-execution.
	runner.SetTimeout(0)

	wf := workflow.New(
		app.cfg,
		api.NewClient(app.cfg),
		runner,
		nil,
		nil,
		app.ui(),
		workflow.Options{
			Force:      app.force,
			TokenLimit: app.tokenLimit,
		},
	)

	return wf.RunCommand(cmd.Context(), request)
}

func (app *App) ui() *display.TerminalUI {
	if app.termUI == nil {
		app.termUI = display.NewTerminalUI()
	}
	return app.termUI
}
