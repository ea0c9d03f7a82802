package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions = 0o755

	diskvDirName   = "store"
	boltFileName   = "prio.db"
	sqliteFileName = "prio.sqlite"
)

// Manager centralizes where the persisted store lives on disk and how its
// files are named for each storage backend.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.prio (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	basePath, err = NormalizePath(basePath)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory holding all persisted state.
func (m *Manager) BasePath() string {
	return m.basePath
}

// DiskvPath is the directory diskv keeps one file per key in.
func (m *Manager) DiskvPath() string {
	return filepath.Join(m.basePath, diskvDirName)
}

// BoltPath is the BoltDB file.
func (m *Manager) BoltPath() string {
	return filepath.Join(m.basePath, boltFileName)
}

// SQLitePath is the SQLite database file.
func (m *Manager) SQLitePath() string {
	return filepath.Join(m.basePath, sqliteFileName)
}

// EnsureBase guarantees the base directory exists and returns it.
func (m *Manager) EnsureBase() (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}
	return m.basePath, nil
}
