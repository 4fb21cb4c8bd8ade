// Package tui wraps the interactive prompt used for destructive
// confirmations and knows when prompting is not possible at all.
package tui

import (
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ConfirmFn shows a yes/no confirmation prompt. It is a variable so tests
// can stub the interactive form away.
var ConfirmFn = confirm

func confirm(title, description string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

// IsInteractiveFn reports whether the current environment supports
// interactive prompts. It is a variable so tests can force either mode.
var IsInteractiveFn = isInteractive

// isInteractive returns false when stdout is not a terminal (redirected to
// a file or pipe) or when a CI environment is detected, so release
// pipelines never hang on a prompt.
func isInteractive() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // G115: fd is a small value, no overflow risk
		return false
	}

	ciEnvs := []string{
		"CI",
		"CONTINUOUS_INTEGRATION",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"JENKINS_HOME",
		"BUILDKITE",
		"TF_BUILD",
	}

	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return false
		}
	}

	return true
}
