// Package kv provides the string key/value namespace prio persists into.
package kv

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/faizmokh/prio/internal/files"
)

// Store is a flat namespace of string values.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Clear erases every key in the namespace.
	Clear(ctx context.Context) error
	Close() error
}

// ErrInvalidKey is returned for keys that cannot name a value.
var ErrInvalidKey = errors.New("invalid key")

// Backend names a Store implementation.
type Backend string

const (
	BackendDiskv  Backend = "diskv"
	BackendBolt   Backend = "bolt"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// ParseBackend resolves a configured backend name.
func ParseBackend(value string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(value))); b {
	case "":
		return BackendDiskv, nil
	case BackendDiskv, BackendBolt, BackendSQLite, BackendMemory:
		return b, nil
	default:
		return "", fmt.Errorf("unknown storage backend %q (expected diskv|bolt|sqlite|memory)", value)
	}
}

// Open creates the Store for backend rooted under the manager's base path.
func Open(backend Backend, manager *files.Manager) (Store, error) {
	if backend == BackendMemory {
		return NewMemory(), nil
	}
	if manager == nil {
		return nil, errors.New("kv: file manager is required")
	}
	if _, err := manager.EnsureBase(); err != nil {
		return nil, err
	}

	switch backend {
	case BackendDiskv, "":
		return OpenDiskv(manager.DiskvPath())
	case BackendBolt:
		return OpenBolt(manager.BoltPath())
	case BackendSQLite:
		return OpenSQLite(manager.SQLitePath())
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

func checkKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w %q", ErrInvalidKey, key)
	}
	return nil
}
