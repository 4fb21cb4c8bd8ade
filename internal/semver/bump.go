package semver

import "fmt"

// BumpType represents the granularity of a version increment.
type BumpType string

const (
	BumpMajor BumpType = "major"
	BumpMinor BumpType = "minor"
	BumpPatch BumpType = "patch"

	// BumpNone means the invocation should leave the version untouched.
	BumpNone BumpType = "none"
)

// String returns the string representation of the bump type.
func (b BumpType) String() string {
	return string(b)
}

// IsValid returns true if the bump type is a known value.
func (b BumpType) IsValid() bool {
	switch b {
	case BumpMajor, BumpMinor, BumpPatch, BumpNone:
		return true
	default:
		return false
	}
}

// ParseBumpType converts a string to a BumpType.
// Returns an error for anything other than major, minor or patch;
// "none" is never a caller-supplied value.
func ParseBumpType(s string) (BumpType, error) {
	switch BumpType(s) {
	case BumpMajor, BumpMinor, BumpPatch:
		return BumpType(s), nil
	default:
		return "", fmt.Errorf("invalid bump type: %s", s)
	}
}

// Bump increments exactly one component and zeroes all lower-significance
// components:
//   - major: (M, m, p) -> (M+1, 0, 0)
//   - minor: (M, m, p) -> (M, m+1, 0)
//   - patch: (M, m, p) -> (M, m, p+1)
//   - none:  unchanged
func (v Version) Bump(t BumpType) Version {
	switch t {
	case BumpMajor:
		return Version{Major: v.Major + 1, Minor: 0, Patch: 0}
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1, Patch: 0}
	case BumpPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	default:
		return v
	}
}
