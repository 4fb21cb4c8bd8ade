// Package manifest reads and rewrites the version field of project
// manifest files (JSON, TOML, YAML, raw) while leaving every other byte
// of the file alone wherever the format allows it.
package manifest
