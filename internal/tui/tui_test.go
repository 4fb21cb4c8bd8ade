package tui

import "testing"

func TestIsInteractive_CIEnv(t *testing.T) {
	t.Setenv("CI", "true")

	if isInteractive() {
		t.Error("expected non-interactive when CI is set")
	}
}
