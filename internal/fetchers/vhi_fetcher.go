package fetchers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jonboulle/clockwork"

	"github.com/AlinaYaremko/lab-3-ad/internal/config"
	"github.com/AlinaYaremko/lab-3-ad/internal/logger"
	"github.com/AlinaYaremko/lab-3-ad/internal/observability"
	"github.com/AlinaYaremko/lab-3-ad/internal/storage"
)

// FetchError describes a failed download for one region. It is logged
// and the region's data stays absent until a future successful fetch.
type FetchError struct {
	Region int
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch region %d: %v", e.Region, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FetchSummary reports the outcome of one pass over all region codes.
type FetchSummary struct {
	Fetched int `json:"fetched"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// VHIFetcher downloads raw per-region VHI time series from the NOAA STAR
// endpoint and stores them as raw files. A region whose raw file already
// exists is skipped, which makes repeated passes idempotent.
type VHIFetcher struct {
	client  *resty.Client
	store   storage.RawStore
	clock   clockwork.Clock
	metrics *observability.Metrics
	log     *logger.Logger

	endpoint string
	country  string
	yearFrom int
	yearTo   int
}

// NewVHIFetcher creates a fetcher over the configured endpoint and store.
func NewVHIFetcher(cfg *config.Config, store storage.RawStore, clock clockwork.Clock, metrics *observability.Metrics, log *logger.Logger) *VHIFetcher {
	client := resty.New()
	client.SetTimeout(cfg.FetchTimeout)
	client.SetRetryCount(3)
	client.SetRetryWaitTime(2 * time.Second)

	return &VHIFetcher{
		client:   client,
		store:    store,
		clock:    clock,
		metrics:  metrics,
		log:      log.WithComponent("fetcher"),
		endpoint: cfg.VHIEndpoint,
		country:  cfg.Country,
		yearFrom: cfg.YearFrom,
		yearTo:   cfg.YearTo,
	}
}

// FetchRegion downloads the time series for one file-local region code.
// It returns false with a nil error when a raw file for that code is
// already stored; the timestamp part of existing names is ignored.
func (f *VHIFetcher) FetchRegion(ctx context.Context, localID int) (bool, error) {
	exists, err := f.store.HasPrefix(ctx, storage.RawFilePrefix(localID))
	if err != nil {
		return false, &FetchError{Region: localID, Err: err}
	}
	if exists {
		f.metrics.FetchAttempts.WithLabelValues("skipped").Inc()
		f.log.Debug("raw file already present, skipping download", map[string]interface{}{"region": localID})
		return false, nil
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"country":    f.country,
			"provinceID": strconv.Itoa(localID),
			"year1":      strconv.Itoa(f.yearFrom),
			"year2":      strconv.Itoa(f.yearTo),
			"type":       "Mean",
		}).
		Get(f.endpoint)

	if err != nil {
		f.metrics.FetchAttempts.WithLabelValues("error").Inc()
		return false, &FetchError{Region: localID, Err: err}
	}
	if resp.StatusCode() != 200 {
		f.metrics.FetchAttempts.WithLabelValues("error").Inc()
		return false, &FetchError{Region: localID, Err: fmt.Errorf("endpoint returned status %d", resp.StatusCode())}
	}

	filename := storage.RawFileName(localID, f.clock.Now())
	if err := f.store.StoreFile(ctx, filename, resp.Body()); err != nil {
		f.metrics.FetchAttempts.WithLabelValues("error").Inc()
		return false, &FetchError{Region: localID, Err: err}
	}

	f.metrics.FetchAttempts.WithLabelValues("success").Inc()
	f.log.Info("raw file downloaded", map[string]interface{}{"region": localID, "file": filename, "bytes": len(resp.Body())})
	return true, nil
}

// FetchAll fetches regions 1..provinceMax sequentially. Failures are
// logged and counted; they never abort the pass.
func (f *VHIFetcher) FetchAll(ctx context.Context, provinceMax int) FetchSummary {
	var summary FetchSummary

	for localID := 1; localID <= provinceMax; localID++ {
		if ctx.Err() != nil {
			break
		}

		fetched, err := f.FetchRegion(ctx, localID)
		switch {
		case err != nil:
			summary.Failed++
			f.log.Error("region fetch failed", err, map[string]interface{}{"region": localID})
		case fetched:
			summary.Fetched++
		default:
			summary.Skipped++
		}
	}

	f.log.Info("fetch pass completed", map[string]interface{}{
		"fetched": summary.Fetched,
		"skipped": summary.Skipped,
		"failed":  summary.Failed,
	})
	return summary
}
