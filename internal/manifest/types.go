package manifest

// Format represents the supported manifest file formats.
type Format string

const (
	// FormatJSON is for JSON manifests (tauri.conf.json, package.json).
	FormatJSON Format = "json"

	// FormatTOML is for TOML manifests (Cargo.toml, pyproject.toml).
	FormatTOML Format = "toml"

	// FormatYAML is for YAML manifests (Chart.yaml, pubspec.yaml).
	FormatYAML Format = "yaml"

	// FormatRaw is for plain text files whose entire content is the version.
	FormatRaw Format = "raw"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatTOML, FormatYAML, FormatRaw:
		return true
	default:
		return false
	}
}

// FileConfig describes where a manifest keeps its version string.
type FileConfig struct {
	// Path is the manifest path, relative to the project root.
	Path string `yaml:"path"`

	// Format specifies the file format. When empty it is detected
	// from the file name via FormatForFile.
	Format Format `yaml:"format,omitempty"`

	// Field is the dot-notation path to the version field.
	// Example: "version", "package.version". When empty it is derived
	// from the file name via FieldForFile.
	Field string `yaml:"field,omitempty"`
}

// normalized returns a copy with format and field defaults filled in.
func (c FileConfig) normalized() FileConfig {
	if c.Format == "" {
		c.Format = FormatForFile(c.Path)
	}
	if c.Field == "" && c.Format != FormatRaw {
		c.Field = FieldForFile(c.Path)
	}
	return c
}
