package manifest

import (
	"path/filepath"
	"strings"
)

// wellKnownFields maps common manifest file names to their version field paths.
var wellKnownFields = map[string]string{
	"package.json":    "version",
	"composer.json":   "version",
	"tauri.conf.json": "version",
	"Cargo.toml":      "package.version",
	"pyproject.toml":  "project.version",
	"Chart.yaml":      "version",
	"pubspec.yaml":    "version",
}

// FieldForFile returns the typical version field path for common manifests.
// Unknown files default to a top-level "version" field.
func FieldForFile(path string) string {
	if field, ok := wellKnownFields[path]; ok {
		return field
	}
	if field, ok := wellKnownFields[filepath.Base(path)]; ok {
		return field
	}
	return "version"
}

// FormatForFile detects the manifest format from the file extension or name.
func FormatForFile(path string) Format {
	lower := strings.ToLower(path)

	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON
	case strings.HasSuffix(lower, ".toml"):
		return FormatTOML
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	default:
		return FormatRaw
	}
}
