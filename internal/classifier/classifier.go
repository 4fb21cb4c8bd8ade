// Package classifier maps commit messages onto version bump types using
// a literal prefix convention (release(, feature(, fix().
package classifier

import (
	"strings"

	"github.com/indaco/verbump/internal/semver"
)

// prefixRules maps commit message prefixes to bump types, tested in order.
// Earlier entries win when a message matches more than one prefix.
var prefixRules = []struct {
	prefix string
	bump   semver.BumpType
}{
	{"release(", semver.BumpMajor},
	{"feature(", semver.BumpMinor},
	{"fix(", semver.BumpPatch},
}

// Classify determines the bump type for a raw commit message.
// The message is trimmed and lowercased before the prefix tests, so
// "Fix(core): ..." and "fix(core): ..." classify identically.
//
// Messages matching no prefix (chore, docs, ci, merge commits) classify
// as BumpNone: the bump run becomes a successful no-op. Earlier
// revisions of this tool bumped a fourth build counter for unmatched
// messages instead; that policy was retired together with the
// four-component version schema.
func Classify(msg string) semver.BumpType {
	normalized := strings.ToLower(strings.TrimSpace(msg))

	for _, rule := range prefixRules {
		if strings.HasPrefix(normalized, rule.prefix) {
			return rule.bump
		}
	}

	return semver.BumpNone
}
