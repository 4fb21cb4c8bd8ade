package manifest

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/verbump/internal/core"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
)

// Reader extracts version strings from manifest files.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// ReadVersion reads the version string from a manifest.
func (r *Reader) ReadVersion(ctx context.Context, cfg FileConfig) (string, error) {
	if cfg.Path == "" {
		return "", fmt.Errorf("manifest path is required")
	}
	cfg = cfg.normalized()
	if !cfg.Format.IsValid() {
		return "", fmt.Errorf("invalid format: %s", cfg.Format)
	}

	data, err := r.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read manifest %q: %w", cfg.Path, err)
	}

	switch cfg.Format {
	case FormatJSON:
		return readJSON(data, cfg.Path, cfg.Field)
	case FormatTOML:
		return readTOML(data, cfg.Path, cfg.Field)
	case FormatYAML:
		return readYAML(data, cfg.Path, cfg.Field)
	case FormatRaw:
		return strings.TrimSpace(string(data)), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", cfg.Format)
	}
}

// readJSON extracts a version from JSON data using dot notation for the field path.
func readJSON(data []byte, path, field string) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("failed to parse JSON in %q", path)
	}

	result := gjson.GetBytes(data, field)
	if !result.Exists() {
		return "", fmt.Errorf("field %q not found in %q", field, path)
	}
	if result.Type != gjson.String {
		return "", fmt.Errorf("field %q in %q is not a string", field, path)
	}

	return result.String(), nil
}

// readTOML extracts a version from TOML data using dot notation for the field path.
func readTOML(data []byte, path, field string) (string, error) {
	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse TOML in %q: %w", path, err)
	}
	return nestedString(obj, path, field)
}

// readYAML extracts a version from YAML data using dot notation for the field path.
func readYAML(data []byte, path, field string) (string, error) {
	var obj map[string]any
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse YAML in %q: %w", path, err)
	}
	return nestedString(obj, path, field)
}

// nestedString retrieves a string value from a nested map using dot notation.
// Example: "package.version" accesses obj["package"]["version"].
func nestedString(obj map[string]any, path, field string) (string, error) {
	parts := strings.Split(field, ".")
	current := any(obj)

	for i, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return "", fmt.Errorf("field %q is not a table at %q in %q", strings.Join(parts[:i], "."), part, path)
		}

		value, exists := currentMap[part]
		if !exists {
			return "", fmt.Errorf("field %q not found in %q", field, path)
		}

		current = value
	}

	version, ok := current.(string)
	if !ok {
		return "", fmt.Errorf("field %q in %q is not a string", field, path)
	}

	return version, nil
}
