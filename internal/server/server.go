package server

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AlinaYaremko/lab-3-ad/internal/charts"
	"github.com/AlinaYaremko/lab-3-ad/internal/config"
	"github.com/AlinaYaremko/lab-3-ad/internal/dataset"
	"github.com/AlinaYaremko/lab-3-ad/internal/fetchers"
	"github.com/AlinaYaremko/lab-3-ad/internal/logger"
	"github.com/AlinaYaremko/lab-3-ad/internal/storage"
)

// Server wires the fetcher, dataset builder, and chart generator behind
// the HTTP surface.
type Server struct {
	Config  *config.Config
	Store   storage.RawStore
	Fetcher *fetchers.VHIFetcher
	Builder *dataset.Builder
	Charts  *charts.ChartGenerator

	log *logger.Logger

	// fetchMutex rejects concurrent /fetch requests; the source is slow
	// and a second sweep mid-download would only duplicate work.
	fetchMutex sync.Mutex
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, store storage.RawStore, fetcher *fetchers.VHIFetcher, builder *dataset.Builder, log *logger.Logger) *Server {
	return &Server{
		Config:  cfg,
		Store:   store,
		Fetcher: fetcher,
		Builder: builder,
		Charts:  charts.NewChartGenerator(),
		log:     log.WithComponent("server"),
	}
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/fetch", s.HandleFetch)
	mux.HandleFunc("/api/regions", s.HandleRegions)
	mux.HandleFunc("/api/records", s.HandleRecords)
	mux.HandleFunc("/api/yearly", s.HandleYearly)
	mux.HandleFunc("/charts/weekly", s.HandleWeeklyChart)
	mux.HandleFunc("/charts/yearly", s.HandleYearlyChart)
	mux.HandleFunc("/charts/weekly.png", s.HandleChartPNG)
	mux.Handle("/metrics", promhttp.Handler())

	// Catch-all last: the dashboard page.
	mux.HandleFunc("/", s.HandleDashboard)

	return mux
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Store != nil {
		return s.Store.Close()
	}
	return nil
}
