package storage

import "context"

// RawStore defines the storage operations the service needs for raw
// per-region VHI files. Backends exist for the local filesystem and GCS.
type RawStore interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores a raw file under the given name
	StoreFile(ctx context.Context, filename string, data []byte) error

	// GetFile retrieves a raw file by name
	GetFile(ctx context.Context, filename string) ([]byte, error)

	// ListFiles lists the names of all stored raw files
	ListFiles(ctx context.Context) ([]string, error)

	// HasPrefix checks whether any stored file name starts with prefix
	HasPrefix(ctx context.Context, prefix string) (bool, error)
}
