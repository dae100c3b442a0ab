package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/AlinaYaremko/lab-3-ad/internal/logger"
	"github.com/AlinaYaremko/lab-3-ad/internal/models"
	"github.com/AlinaYaremko/lab-3-ad/internal/observability"
	"github.com/AlinaYaremko/lab-3-ad/internal/regions"
	"github.com/AlinaYaremko/lab-3-ad/internal/storage"
)

// Builder merges all stored raw files into one deduplicated dataset.
type Builder struct {
	store   storage.RawStore
	metrics *observability.Metrics
	log     *logger.Logger
}

// NewBuilder creates a dataset builder over the given raw file store.
func NewBuilder(store storage.RawStore, metrics *observability.Metrics, log *logger.Logger) *Builder {
	return &Builder{
		store:   store,
		metrics: metrics,
		log:     log.WithComponent("builder"),
	}
}

// Build parses and reconciles every stored raw file into a fresh Dataset.
// Files that fail to parse are logged, counted, and skipped; they never
// abort the build. Records whose canonical region id is excluded are
// dropped, and exact-duplicate records are collapsed. Zero raw files
// produce an empty dataset, not an error.
func (b *Builder) Build(ctx context.Context) (*models.Dataset, error) {
	start := time.Now()

	names, err := b.store.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list raw files: %w", err)
	}

	seen := make(map[models.Record]struct{})
	dataset := &models.Dataset{BuiltAt: start}

	for _, name := range names {
		content, err := b.store.GetFile(ctx, name)
		if err != nil {
			b.metrics.ParseFailures.Inc()
			b.log.Error("failed to read raw file, skipping", err, map[string]interface{}{"file": name})
			continue
		}

		localID, records, err := ParseFile(name, content)
		if err != nil {
			b.metrics.ParseFailures.Inc()
			b.log.Error("failed to parse raw file, skipping", err, map[string]interface{}{"file": name})
			continue
		}
		dataset.Sources++

		canonicalID := regions.Canonical(localID)
		if regions.Excluded(canonicalID) {
			b.log.Debug("raw file maps to excluded region, dropping records", map[string]interface{}{
				"file": name, "local_id": localID, "canonical_id": canonicalID,
			})
			continue
		}

		for _, rec := range records {
			rec.RegionID = canonicalID
			if _, dup := seen[rec]; dup {
				continue
			}
			seen[rec] = struct{}{}
			dataset.Records = append(dataset.Records, rec)
		}
	}

	b.metrics.DatasetRecords.Set(float64(len(dataset.Records)))
	b.metrics.BuildDuration.Observe(time.Since(start).Seconds())

	b.log.Info("dataset built", map[string]interface{}{
		"files":   len(names),
		"sources": dataset.Sources,
		"records": len(dataset.Records),
	})

	return dataset, nil
}
