package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/verbump/internal/core"
	"github.com/indaco/verbump/internal/manifest"
)

// DefaultConfigFile is the config file looked up in the project root.
const DefaultConfigFile = ".verbump.yaml"

// Config is the main configuration structure for verbump. It replaces the
// fixed, script-location-derived manifest paths of earlier revisions with
// an explicit, injectable record.
type Config struct {
	// Canonical is the manifest treated as the source of truth for the
	// current version before computing a bump.
	Canonical manifest.FileConfig `yaml:"canonical"`

	// Manifests are all files whose version field must stay synchronized
	// with the canonical one. The canonical manifest is usually listed
	// here too so it receives the new version itself.
	Manifests []manifest.FileConfig `yaml:"manifests"`
}

// Default returns the configuration used when no config file exists.
// It mirrors the Tauri project layout this tool grew up in: the app config
// is canonical and the crate manifest is kept in sync with it.
func Default() *Config {
	return &Config{
		Canonical: manifest.FileConfig{
			Path:   filepath.Join("src-tauri", "tauri.conf.json"),
			Format: manifest.FormatJSON,
			Field:  "version",
		},
		Manifests: []manifest.FileConfig{
			{
				Path:   filepath.Join("src-tauri", "Cargo.toml"),
				Format: manifest.FormatTOML,
				Field:  "package.version",
			},
			{
				Path:   filepath.Join("src-tauri", "tauri.conf.json"),
				Format: manifest.FormatJSON,
				Field:  "version",
			},
		},
	}
}

// LoadConfigFn loads the configuration. It is a variable so tests can
// substitute a fixed config.
var LoadConfigFn = loadConfig

// loadConfig resolves and loads the configuration file. An explicit path
// (the --config flag) wins over the VERBUMP_CONFIG environment variable,
// which wins over DefaultConfigFile in the current directory. A missing
// file is only tolerated for the implicit default; an explicitly
// requested config that does not exist is an error, never a silent
// fallback.
func loadConfig(explicitPath string) (*Config, error) {
	configFile := explicitPath
	source := "--config"
	if configFile == "" {
		configFile = os.Getenv("VERBUMP_CONFIG")
		source = "VERBUMP_CONFIG"
	}

	explicit := configFile != ""
	if explicit {
		cleanPath := filepath.Clean(configFile)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", source)
		}
		configFile = cleanPath
	} else {
		configFile = DefaultConfigFile
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, err
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", configFile, err)
	}

	return cfg, nil
}

// parse decodes a config document, filling in defaults for omitted fields.
func parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Canonical.Path == "" {
		cfg.Canonical = Default().Canonical
	}
	if len(cfg.Manifests) == 0 {
		cfg.Manifests = []manifest.FileConfig{cfg.Canonical}
	}

	return &cfg, nil
}

// yamlMarshaler is the production core.Marshaler implementation using YAML.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Saver persists configuration files with an injectable marshaler.
type Saver struct {
	marshaler core.Marshaler
}

// NewSaver creates a Saver. A nil marshaler selects the YAML default.
func NewSaver(marshaler core.Marshaler) *Saver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	return &Saver{marshaler: marshaler}
}

// SaveTo writes the configuration to the given path.
func (s *Saver) SaveTo(cfg *Config, configFile string) error {
	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config for %q: %w", configFile, err)
	}

	if err := os.WriteFile(configFile, data, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}
