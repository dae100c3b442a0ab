package storage

import (
	"context"
	"fmt"

	"github.com/AlinaYaremko/lab-3-ad/internal/config"
)

// DeploymentMode represents the deployment environment
type DeploymentMode string

const (
	DeploymentLocal DeploymentMode = "local"
	DeploymentGCS   DeploymentMode = "gcs"
)

// NewRawStore creates a raw file store based on deployment mode and
// configuration.
func NewRawStore(ctx context.Context, mode DeploymentMode, cfg *config.Config) (RawStore, error) {
	switch mode {
	case DeploymentLocal:
		dataDir := cfg.DataDir
		if dataDir == "" {
			dataDir = "data_csv"
		}

		localStore, err := NewLocalStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local store: %w", err)
		}
		return localStore, nil

	case DeploymentGCS:
		gcsStore, err := NewGCSStore(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS store: %w", err)
		}
		return gcsStore, nil

	default:
		return nil, fmt.Errorf("unsupported deployment mode: %s", mode)
	}
}
