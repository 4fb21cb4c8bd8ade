package manifest

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/verbump/internal/core"
	"github.com/tidwall/sjson"
)

// Writer rewrites version strings inside manifest files.
type Writer struct {
	fs core.FileSystem
}

// NewWriter creates a new Writer with the given filesystem.
func NewWriter(fs core.FileSystem) *Writer {
	return &Writer{fs: fs}
}

// Apply sets the manifest's version field to version.
// It returns true when the file was actually modified; writing a value
// the manifest already holds is a no-op that leaves the file untouched.
func (w *Writer) Apply(ctx context.Context, cfg FileConfig, version string) (bool, error) {
	if cfg.Path == "" {
		return false, fmt.Errorf("manifest path is required")
	}
	cfg = cfg.normalized()
	if !cfg.Format.IsValid() {
		return false, fmt.Errorf("invalid format: %s", cfg.Format)
	}

	data, err := w.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return false, fmt.Errorf("failed to read manifest %q: %w", cfg.Path, err)
	}

	var updated []byte
	switch cfg.Format {
	case FormatJSON:
		updated, err = setJSON(data, cfg.Path, cfg.Field, version)
	case FormatTOML:
		updated, err = setTOMLLine(data, cfg.Path, cfg.Field, version)
	case FormatYAML:
		updated, err = setYAML(data, cfg.Path, cfg.Field, version)
	case FormatRaw:
		updated = []byte(version + "\n")
	default:
		return false, fmt.Errorf("unsupported format: %s", cfg.Format)
	}
	if err != nil {
		return false, err
	}

	if string(updated) == string(data) {
		return false, nil
	}

	if err := w.fs.WriteFile(ctx, cfg.Path, updated, core.PermStandard); err != nil {
		return false, fmt.Errorf("failed to write manifest %q: %w", cfg.Path, err)
	}

	return true, nil
}

// setJSON updates only the given field via sjson, preserving the structure
// and field order of everything else, and guarantees a trailing newline.
func setJSON(data []byte, path, field, version string) ([]byte, error) {
	updated, err := sjson.SetBytes(data, field, version)
	if err != nil {
		return nil, fmt.Errorf("failed to set %q in %q: %w", field, path, err)
	}

	if len(updated) > 0 && updated[len(updated)-1] != '\n' {
		updated = append(updated, '\n')
	}

	return updated, nil
}

// setYAML updates the given field through a generic parse/re-marshal round trip.
func setYAML(data []byte, path, field, version string) ([]byte, error) {
	var obj map[string]any
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in %q: %w", path, err)
	}

	if err := setNestedValue(obj, field, version); err != nil {
		return nil, fmt.Errorf("in manifest %q: %w", path, err)
	}

	updated, err := yaml.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML for %q: %w", path, err)
	}

	return updated, nil
}

// setNestedValue sets a value in a nested map using dot notation.
func setNestedValue(obj map[string]any, field string, value any) error {
	if field == "" {
		return fmt.Errorf("field path cannot be empty")
	}

	parts := strings.Split(field, ".")
	current := obj

	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]

		next, exists := current[part]
		if !exists {
			newMap := make(map[string]any)
			current[part] = newMap
			current = newMap
			continue
		}

		nextMap, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("field %q is not an object at path %q", strings.Join(parts[:i+1], "."), part)
		}

		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}
