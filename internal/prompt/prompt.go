// Package prompt builds the system/user message pairs sent to the
// completion endpoint. Construction is pure text assembly: there is no
// failure path, and a missing hint is simply empty text.
package prompt

import (
	"runtime"
	"strings"
)

const commandSystemPrompt = "You are an assistant to a programmer that will be running commands on the system" +
	"\nYour task is to identify the key inputs and prepare a single command that encapsulates the inputs accordingly." +
	"\nFollowing the format: <command> <input1> <input2> ... <inputN>\n" +
	"Example: ls -l -a -h\n" +
	"Example: git commit -m \"<message>\"\n" +
	"Example: cat /etc/passwd | awk -F: '{ print $1 }'\n"

const commitSystemPromptHead = "You are an assistant to a programmer that will be generating commit messages for the code changes" +
	"\nYour task is to identify the key changes and prepare a single commit message that encapsulates the changes accordingly."

const commitSystemPromptFormat = "\nFollowing the format: <type> ([optional scope]): <short description>\n\n[optional body]\n[optional footer]\n"

// BuildCommand constructs the message pair for command generation. The user
// message is the free-text request with the host OS hint appended so the
// model picks platform-appropriate tooling.
func BuildCommand(request, osHint string) (system, user string) {
	return commandSystemPrompt, request + osHint
}

// BuildCommit constructs the message pair for commit message generation.
// The user message carries the optional hint followed by every diff line,
// one per line, in original order.
func BuildCommit(changes []string, hint string, useGitmoji bool) (system, user string) {
	system = commitSystemPromptHead
	if useGitmoji {
		system += " (using gitmoji emojis)"
	}
	system += commitSystemPromptFormat

	var sb strings.Builder
	if hint != "" {
		sb.WriteString("Hint: ")
		sb.WriteString(hint)
		sb.WriteString("\n")
	}
	sb.WriteString("Provide a commit message for the following changes:\n")
	for _, change := range changes {
		sb.WriteString(change)
		sb.WriteString("\n")
	}

	return system, sb.String()
}

// OSHint returns the fixed suffix identifying the host OS, or an empty
// string when the platform is not one the prompts know about.
func OSHint() string {
	switch runtime.GOOS {
	case "darwin":
		return " (on macOS)"
	case "linux":
		return " (on Linux)"
	default:
		return ""
	}
}
