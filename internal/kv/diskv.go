package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv stores each key as one file under a base directory.
type Diskv struct {
	d *diskv.Diskv
}

// OpenDiskv creates a diskv-backed Store rooted at basePath.
func OpenDiskv(basePath string) (*Diskv, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func flatTransform(string) []string { return []string{} }

func (s *Diskv) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(val), true, nil
}

func (s *Diskv) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Clear removes the whole base directory; the next Set recreates it.
func (s *Diskv) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.d.EraseAll(); err != nil {
		return fmt.Errorf("erase store: %w", err)
	}
	return nil
}

func (s *Diskv) Close() error { return nil }
