package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jmillana/plz-cli/internal/api"
	"github.com/jmillana/plz-cli/internal/display"
	"github.com/jmillana/plz-cli/internal/executor"
	"github.com/jmillana/plz-cli/internal/git"
	"github.com/jmillana/plz-cli/internal/gitmoji"
	"github.com/jmillana/plz-cli/internal/workflow"
)

// newCommitCmd creates the commit subcommand, which generates a commit
// message from the staged changes and walks through three confirmation
// gates before running the commit.
func (app *App) newCommitCmd() *cobra.Command {
	var (
		useGitmoji bool
		hint       string
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Generate a commit message from the staged changes",
		Long: `Generate a commit message for the staged changes using the completion
endpoint, then confirm it step by step: accept the message, build the
commit command, and finally run it. Declining any step ends the run
without committing.

With --gitmoji, symbolic tags like :bug: in the generated message are
replaced with glyphs resolved through the gitmoji CLI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("gitmoji") {
				useGitmoji = app.cfg.DefaultGitmoji
			}

			display.ShowBanner("commit")

			// One runner with the standard timeout for git and the tag
			// resolver, and an untimed one for the commit itself.
			toolRunner := executor.NewShellRunner(app.cfg.Shell)
			commitRunner := executor.NewShellRunner(app.cfg.Shell)
			commitRunner.SetTimeout(0)

			wf := workflow.New(
				app.cfg,
				api.NewClient(app.cfg),
				commitRunner,
				git.NewClient(toolRunner),
				gitmoji.NewSubstitutor(gitmoji.NewCLIResolver(toolRunner)),
				app.ui(),
				workflow.Options{
					Hint:       hint,
					Gitmoji:    useGitmoji,
					TokenLimit: app.tokenLimit,
				},
			)

			return wf.RunCommit(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&useGitmoji, "gitmoji", "e", false, "Replace :tag: markers with gitmoji glyphs")
	cmd.Flags().StringVarP(&hint, "hint", "H", "", "Extra context for the commit message")

	return cmd
}
