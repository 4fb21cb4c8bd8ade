package semver

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{
			name:  "canonical three components",
			input: "1.2.3",
			want:  Version{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:  "with v prefix",
			input: "v2.0.1",
			want:  Version{Major: 2, Minor: 0, Patch: 1},
		},
		{
			name:  "legacy four components truncated",
			input: "1.2.3.4",
			want:  Version{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:  "surrounding whitespace",
			input: "  0.4.9\n",
			want:  Version{Major: 0, Minor: 4, Patch: 9},
		},
		{
			name:    "not a version",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "two components",
			input:   "1.2",
			wantErr: true,
		},
		{
			name:    "five components",
			input:   "1.2.3.4.5",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "negative component",
			input:   "1.-2.3",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q): expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidVersion) {
					t.Errorf("Parse(%q): error %v is not ErrInvalidVersion", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_TooLong(t *testing.T) {
	long := "1."
	for range 200 {
		long += "2"
	}

	_, err := Parse(long)
	if !errors.Is(err, ErrInvalidVersion) {
		t.Fatalf("expected ErrInvalidVersion for oversized input, got %v", err)
	}
}

func TestVersion_String(t *testing.T) {
	v := Version{Major: 10, Minor: 0, Patch: 42}
	if got := v.String(); got != "10.0.42" {
		t.Errorf("String() = %q, want %q", got, "10.0.42")
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b Version
		want int
	}{
		{Version{1, 0, 0}, Version{1, 0, 0}, 0},
		{Version{1, 0, 0}, Version{2, 0, 0}, -1},
		{Version{2, 0, 0}, Version{1, 9, 9}, 1},
		{Version{1, 2, 0}, Version{1, 3, 0}, -1},
		{Version{1, 2, 4}, Version{1, 2, 3}, 1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
