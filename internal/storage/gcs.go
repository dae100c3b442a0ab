package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// gcsObjectPrefix namespaces raw files inside the bucket.
const gcsObjectPrefix = "raw/"

// GCSStore keeps raw files in a Google Cloud Storage bucket under a
// fixed object prefix.
type GCSStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore creates a new GCS-backed raw file store.
func NewGCSStore(ctx context.Context, bucketName string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStore{
		client: client,
		bucket: bucketName,
	}, nil
}

// Close closes the GCS client.
func (g *GCSStore) Close() error {
	return g.client.Close()
}

// StoreFile uploads a raw file to the bucket.
func (g *GCSStore) StoreFile(ctx context.Context, filename string, data []byte) error {
	obj := g.client.Bucket(g.bucket).Object(gcsObjectPrefix + filename)

	writer := obj.NewWriter(ctx)
	writer.ContentType = "text/csv"
	writer.Metadata = map[string]string{
		"stored-at": time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write %s to GCS: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize GCS upload of %s: %w", filename, err)
	}

	return nil
}

// GetFile downloads a raw file from the bucket.
func (g *GCSStore) GetFile(ctx context.Context, filename string) ([]byte, error) {
	obj := g.client.Bucket(g.bucket).Object(gcsObjectPrefix + filename)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open reader for %s: %w", filename, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from GCS: %w", filename, err)
	}
	return data, nil
}

// ListFiles lists all raw file names stored in the bucket.
func (g *GCSStore) ListFiles(ctx context.Context) ([]string, error) {
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{Prefix: gcsObjectPrefix})

	var names []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", g.bucket, err)
		}
		names = append(names, strings.TrimPrefix(attrs.Name, gcsObjectPrefix))
	}
	sort.Strings(names)
	return names, nil
}

// HasPrefix reports whether any object name starts with prefix.
func (g *GCSStore) HasPrefix(ctx context.Context, prefix string) (bool, error) {
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{Prefix: gcsObjectPrefix + prefix})

	_, err := it.Next()
	if errors.Is(err, iterator.Done) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to probe prefix %s in bucket %s: %w", prefix, g.bucket, err)
	}
	return true, nil
}
