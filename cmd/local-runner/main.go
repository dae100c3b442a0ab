package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/AlinaYaremko/lab-3-ad/internal/charts"
	"github.com/AlinaYaremko/lab-3-ad/internal/config"
	"github.com/AlinaYaremko/lab-3-ad/internal/dataset"
	"github.com/AlinaYaremko/lab-3-ad/internal/fetchers"
	"github.com/AlinaYaremko/lab-3-ad/internal/logger"
	"github.com/AlinaYaremko/lab-3-ad/internal/models"
	"github.com/AlinaYaremko/lab-3-ad/internal/observability"
	"github.com/AlinaYaremko/lab-3-ad/internal/regions"
	"github.com/AlinaYaremko/lab-3-ad/internal/storage"
)

// local-runner runs one fetch-and-build cycle without the HTTP server:
// it downloads any missing province files, builds the dataset, and drops
// a summary plus a sample chart into a timestamped directory.
func main() {
	ctx := context.Background()
	startTime := time.Now()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := storage.NewLocalStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data directory %s: %v", cfg.DataDir, err)
	}
	defer store.Close()

	metrics := observability.NewMetrics()
	fetcher := fetchers.NewVHIFetcher(cfg, store, clockwork.NewRealClock(), metrics, logger.GetGlobalLogger())
	builder := dataset.NewBuilder(store, metrics, logger.GetGlobalLogger())

	log.Printf("Fetching VHI series for provinces 1..%d...", cfg.ProvinceMax)
	summary := fetcher.FetchAll(ctx, cfg.ProvinceMax)
	log.Printf("Fetch done: %d fetched, %d skipped, %d failed",
		summary.Fetched, summary.Skipped, summary.Failed)

	ds, err := builder.Build(ctx)
	if err != nil {
		log.Fatalf("Dataset build failed: %v", err)
	}
	log.Printf("Dataset built: %d records from %d files", len(ds.Records), ds.Sources)

	outDir := filepath.Join("runs", time.Now().Format("2006-01-02_15-04-05"))
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	report := map[string]interface{}{
		"status":      "success",
		"duration_ms": time.Since(startTime).Milliseconds(),
		"fetched":     summary.Fetched,
		"skipped":     summary.Skipped,
		"failed":      summary.Failed,
		"sources":     ds.Sources,
		"records":     len(ds.Records),
		"built_at":    ds.BuiltAt.Format(time.RFC3339),
	}
	reportJSON, _ := json.MarshalIndent(report, "", "  ")
	reportPath := filepath.Join(outDir, "summary.json")
	if err := os.WriteFile(reportPath, reportJSON, 0644); err != nil {
		log.Printf("Failed to save summary: %v", err)
	}

	// Sample chart for the first region with data, full year range.
	for _, region := range regions.List() {
		records := dataset.Filter(ds, dataset.Query{
			YearFrom: cfg.YearFrom,
			YearTo:   cfg.YearTo,
			WeekFrom: 1,
			WeekTo:   52,
			Region:   region.Name,
			Param:    models.ParamVHI,
		})
		if len(records) < 2 {
			continue
		}
		chartPath := filepath.Join(outDir, "vhi_weekly.png")
		f, err := os.Create(chartPath)
		if err != nil {
			log.Printf("Failed to create chart file: %v", err)
			break
		}
		err = charts.NewChartGenerator().WeeklyLinePNG(f, records, models.ParamVHI)
		f.Close()
		if err != nil {
			log.Printf("Chart render failed for %s: %v", region.Name, err)
			break
		}
		log.Printf("Sample chart for %s saved to %s", region.Name, chartPath)
		break
	}

	log.Printf("Run completed in %v, output in %s", time.Since(startTime), outDir)
	log.Printf("Summary:\n%s", reportJSON)
}
