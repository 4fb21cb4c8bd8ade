package semver

import "testing"

func TestVersion_Bump(t *testing.T) {
	tests := []struct {
		name    string
		current string
		bump    BumpType
		want    string
	}{
		{"patch increments last component", "2.5.1", BumpPatch, "2.5.2"},
		{"minor resets patch", "2.5.1", BumpMinor, "2.6.0"},
		{"major resets minor and patch", "2.5.1", BumpMajor, "3.0.0"},
		{"none leaves the version unchanged", "2.5.1", BumpNone, "2.5.1"},
		{"patch from zero", "0.0.0", BumpPatch, "0.0.1"},
		{"legacy four-component input", "2.5.1.9", BumpPatch, "2.5.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, err := Parse(tt.current)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.current, err)
			}

			got := current.Bump(tt.bump).String()
			if got != tt.want {
				t.Errorf("Bump(%q, %s) = %q, want %q", tt.current, tt.bump, got, tt.want)
			}
		})
	}
}

func TestBumpType_IsValid(t *testing.T) {
	tests := []struct {
		bump BumpType
		want bool
	}{
		{BumpMajor, true},
		{BumpMinor, true},
		{BumpPatch, true},
		{BumpNone, true},
		{BumpType("build"), false},
		{BumpType(""), false},
	}

	for _, tt := range tests {
		if got := tt.bump.IsValid(); got != tt.want {
			t.Errorf("BumpType(%q).IsValid() = %v, want %v", tt.bump, got, tt.want)
		}
	}
}

func TestParseBumpType(t *testing.T) {
	for _, s := range []string{"major", "minor", "patch"} {
		got, err := ParseBumpType(s)
		if err != nil {
			t.Fatalf("ParseBumpType(%q): %v", s, err)
		}
		if got.String() != s {
			t.Errorf("ParseBumpType(%q) = %q", s, got)
		}
	}

	for _, s := range []string{"none", "build", "", "release"} {
		if _, err := ParseBumpType(s); err == nil {
			t.Errorf("ParseBumpType(%q): expected error", s)
		}
	}
}
