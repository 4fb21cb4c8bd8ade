// Package operations provides the reusable read-bump-rewrite flow shared
// by the CLI commands.
package operations

import (
	"context"
	"fmt"

	"github.com/indaco/verbump/internal/config"
	"github.com/indaco/verbump/internal/core"
	"github.com/indaco/verbump/internal/manifest"
	"github.com/indaco/verbump/internal/semver"
)

// Syncer reads the canonical version and propagates a new version into
// every configured manifest.
type Syncer struct {
	reader *manifest.Reader
	writer *manifest.Writer
}

// NewSyncer creates a Syncer on top of the given filesystem.
func NewSyncer(fs core.FileSystem) *Syncer {
	return &Syncer{
		reader: manifest.NewReader(fs),
		writer: manifest.NewWriter(fs),
	}
}

// CurrentVersion reads and parses the version from the canonical manifest.
// A version string that does not parse surfaces as a wrapped
// semver.ErrInvalidVersion; the process must fail loudly on a malformed
// manifest rather than guess.
func (s *Syncer) CurrentVersion(ctx context.Context, cfg *config.Config) (semver.Version, error) {
	raw, err := s.reader.ReadVersion(ctx, cfg.Canonical)
	if err != nil {
		return semver.Version{}, err
	}

	current, err := semver.Parse(raw)
	if err != nil {
		return semver.Version{}, fmt.Errorf("malformed version in %q: %w", cfg.Canonical.Path, err)
	}

	return current, nil
}

// Apply writes next into every configured manifest and returns the paths
// that were actually modified. Manifests already holding the value are
// left byte-for-byte untouched.
func (s *Syncer) Apply(ctx context.Context, cfg *config.Config, next semver.Version) ([]string, error) {
	var updated []string
	for _, mf := range cfg.Manifests {
		changed, err := s.writer.Apply(ctx, mf, next.String())
		if err != nil {
			return updated, err
		}
		if changed {
			updated = append(updated, mf.Path)
		}
	}
	return updated, nil
}
