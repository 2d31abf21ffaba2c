// Package cmd implements the CLI commands for plz.
//
// # Architecture
//
//   - root.go: main entry point, App struct, cobra setup, command mode
//   - commit.go: commit subcommand (commit-message mode)
//   - configcmd.go: config file helpers (init, paths)
//
// The App struct holds application state. It is created in Execute() and
// wires the concrete collaborators (completion client, shell runner, git
// client, gitmoji resolver, terminal UI) into a workflow.Workflow. All
// fatal conditions propagate back to Execute(), which reports the error
// and exits with status 1 exactly once.
//
// # Usage
//
//	// Main entry point
//	func main() {
//	    cmd.Execute()
//	}
package cmd
