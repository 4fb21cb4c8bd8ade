package manifest

import (
	"context"
	"testing"

	"github.com/indaco/verbump/internal/core"
)

func TestReader_ReadVersion_JSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
		want    string
		wantErr bool
	}{
		{
			name:    "top-level version",
			content: `{"productName": "studio", "version": "0.4.1"}`,
			field:   "version",
			want:    "0.4.1",
		},
		{
			name:    "nested field",
			content: `{"package": {"version": "2.0.0"}}`,
			field:   "package.version",
			want:    "2.0.0",
		},
		{
			name:    "field not found",
			content: `{"name": "test"}`,
			field:   "version",
			wantErr: true,
		},
		{
			name:    "non-string version",
			content: `{"version": 123}`,
			field:   "version",
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			content: `{invalid`,
			field:   "version",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			fs.SetFile("app.json", []byte(tt.content))

			reader := NewReader(fs)
			got, err := reader.ReadVersion(context.Background(), FileConfig{
				Path:   "app.json",
				Format: FormatJSON,
				Field:  tt.field,
			})

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReader_ReadVersion_TOML(t *testing.T) {
	content := `[package]
name = "studio"
version = "1.4.0"

[dependencies.serde]
version = "1.0.219"
`

	fs := core.NewMockFileSystem()
	fs.SetFile("Cargo.toml", []byte(content))

	reader := NewReader(fs)
	got, err := reader.ReadVersion(context.Background(), FileConfig{
		Path:   "Cargo.toml",
		Format: FormatTOML,
		Field:  "package.version",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1.4.0" {
		t.Errorf("ReadVersion() = %q, want %q", got, "1.4.0")
	}
}

func TestReader_ReadVersion_YAML(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("Chart.yaml", []byte("name: studio\nversion: \"3.1.4\"\n"))

	reader := NewReader(fs)
	got, err := reader.ReadVersion(context.Background(), FileConfig{
		Path:   "Chart.yaml",
		Format: FormatYAML,
		Field:  "version",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "3.1.4" {
		t.Errorf("ReadVersion() = %q, want %q", got, "3.1.4")
	}
}

func TestReader_ReadVersion_Raw(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile(".version", []byte("0.9.0\n"))

	reader := NewReader(fs)
	got, err := reader.ReadVersion(context.Background(), FileConfig{
		Path:   ".version",
		Format: FormatRaw,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0.9.0" {
		t.Errorf("ReadVersion() = %q, want %q", got, "0.9.0")
	}
}

func TestReader_ReadVersion_DetectsFormatAndField(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("src-tauri/Cargo.toml", []byte("[package]\nversion = \"0.2.0\"\n"))

	reader := NewReader(fs)
	// No format or field: both derived from the file name.
	got, err := reader.ReadVersion(context.Background(), FileConfig{Path: "src-tauri/Cargo.toml"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0.2.0" {
		t.Errorf("ReadVersion() = %q, want %q", got, "0.2.0")
	}
}

func TestReader_ReadVersion_MissingFile(t *testing.T) {
	reader := NewReader(core.NewMockFileSystem())
	if _, err := reader.ReadVersion(context.Background(), FileConfig{Path: "gone.json", Format: FormatJSON, Field: "version"}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReader_ReadVersion_EmptyPath(t *testing.T) {
	reader := NewReader(core.NewMockFileSystem())
	if _, err := reader.ReadVersion(context.Background(), FileConfig{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}
