package core

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// File permission constants shared across the codebase.
const (
	// PermOwnerRW is owner read/write only, used for config files.
	PermOwnerRW fs.FileMode = 0o600

	// PermStandard is the conventional rw-r--r-- mode for manifest files
	// that other tooling is expected to read.
	PermStandard fs.FileMode = 0o644
)

// FileSystem abstracts file operations so manifest readers and writers
// can be exercised against an in-memory implementation in tests.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte, perm fs.FileMode) error
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
}

// Marshaler abstracts serialization for injected dependencies.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

// osFileSystem is the production FileSystem backed by the os package.
type osFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the real filesystem.
func NewOSFileSystem() FileSystem {
	return &osFileSystem{}
}

func (osFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (osFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

func (osFileSystem) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(path)
}

// MockFileSystem is an in-memory FileSystem for tests. It records every
// write so tests can assert that no-op operations leave files untouched.
type MockFileSystem struct {
	mu     sync.Mutex
	files  map[string][]byte
	writes map[string]int
}

// NewMockFileSystem creates an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:  make(map[string][]byte),
		writes: make(map[string]int),
	}
}

// SetFile seeds a file without counting it as a write.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte(nil), data...)
}

// WriteCount returns how many times a path has been written.
func (m *MockFileSystem) WriteCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[path]
}

func (m *MockFileSystem) ReadFile(_ context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

func (m *MockFileSystem) WriteFile(_ context.Context, path string, data []byte, _ fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte(nil), data...)
	m.writes[path]++
	return nil
}

func (m *MockFileSystem) Stat(_ context.Context, path string) (fs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[path]; !ok {
		return nil, fmt.Errorf("stat %s: %w", path, fs.ErrNotExist)
	}
	return nil, nil
}
