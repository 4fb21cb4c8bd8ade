package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version represents a plain numeric semantic version (major.minor.patch).
type Version struct {
	Major int
	Minor int
	Patch int
}

// ErrInvalidVersion is returned when a version string does not conform
// to the expected major.minor.patch format. Callers match it with errors.Is
// to distinguish a malformed manifest from an I/O failure.
var ErrInvalidVersion = errors.New("invalid version format")

// versionRegex matches version strings with an optional "v" prefix and
// three or four dot-separated numeric components. It captures:
//  1. Major version
//  2. Minor version
//  3. Patch version
//  4. (optional) legacy build counter, dropped on parse
var versionRegex = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)(?:\.(\d+))?$`)

// maxVersionLength is the maximum allowed length for a version string.
const maxVersionLength = 128

// String returns the dot-joined string representation of the version.
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(12)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	return sb.String()
}

// Parse parses a version string and returns a Version.
//
// Supported formats:
//   - "1.2.3" (canonical)
//   - "v1.2.3" (with optional v prefix)
//   - "1.2.3.4" (legacy four-component form; the trailing build counter
//     is truncated, so "1.2.3.4" parses as 1.2.3)
//
// Returns ErrInvalidVersion (wrapped) when the input exceeds
// maxVersionLength or does not match a numeric dotted pattern.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > maxVersionLength {
		return Version{}, fmt.Errorf("%w: version string exceeds maximum length of %d", ErrInvalidVersion, maxVersionLength)
	}

	matches := versionRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	major, err := strconv.Atoi(matches[1])
	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid major version: %s", ErrInvalidVersion, err.Error())
	}
	minor, err := strconv.Atoi(matches[2])
	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid minor version: %s", ErrInvalidVersion, err.Error())
	}
	patch, err := strconv.Atoi(matches[3])
	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid patch version: %s", ErrInvalidVersion, err.Error())
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// Compare compares two versions.
// It returns -1 if v < other, 0 if v == other, and +1 if v > other.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	return compareInt(v.Patch, other.Patch)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
