package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LocalStore keeps raw files in a flat directory on the local filesystem.
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates a local store rooted at baseDir, creating the
// directory if needed.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}

	return &LocalStore{baseDir: baseDir}, nil
}

// Close is a no-op for local storage (implements the same interface as
// the GCS store).
func (l *LocalStore) Close() error {
	return nil
}

// StoreFile writes a raw file into the base directory.
func (l *LocalStore) StoreFile(ctx context.Context, filename string, data []byte) error {
	filePath := filepath.Join(l.baseDir, filename)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}
	return nil
}

// GetFile reads a raw file from the base directory.
func (l *LocalStore) GetFile(ctx context.Context, filename string) ([]byte, error) {
	filePath := filepath.Join(l.baseDir, filename)
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}

// ListFiles lists the stored raw file names, sorted for deterministic
// iteration (consumers do not rely on the order).
func (l *LocalStore) ListFiles(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", l.baseDir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// HasPrefix reports whether any stored file name starts with prefix.
func (l *LocalStore) HasPrefix(ctx context.Context, prefix string) (bool, error) {
	names, err := l.ListFiles(ctx)
	if err != nil {
		return false, err
	}
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			return true, nil
		}
	}
	return false, nil
}
