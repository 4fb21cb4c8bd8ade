package printer

import (
	"strings"
	"testing"
)

func TestRender_NoColor(t *testing.T) {
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"Faint", Faint},
		{"Bold", Bold},
		{"Success", Success},
		{"Error", Error},
		{"Warning", Warning},
		{"Info", Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn("hello")
			if got != "hello" {
				t.Errorf("%s(%q) = %q, want plain text with colors disabled", tt.name, "hello", got)
			}
			if strings.Contains(got, "\x1b[") {
				t.Errorf("%s emitted ANSI escapes with colors disabled", tt.name)
			}
		})
	}
}
