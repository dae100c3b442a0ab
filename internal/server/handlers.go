package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/AlinaYaremko/lab-3-ad/internal/config"
	"github.com/AlinaYaremko/lab-3-ad/internal/dataset"
	"github.com/AlinaYaremko/lab-3-ad/internal/models"
	"github.com/AlinaYaremko/lab-3-ad/internal/regions"
)

// parseQuery reads the shared filter parameters. Missing year bounds fall
// back to the configured fetch window, missing week bounds to the full
// 1..52 range. The region is left empty when absent; callers decide
// whether to substitute a default.
func (s *Server) parseQuery(r *http.Request) dataset.Query {
	return dataset.Query{
		YearFrom: intParam(r, "yearFrom", s.Config.YearFrom),
		YearTo:   intParam(r, "yearTo", s.Config.YearTo),
		WeekFrom: intParam(r, "weekFrom", 1),
		WeekTo:   intParam(r, "weekTo", 52),
		Region:   r.URL.Query().Get("region"),
		Sort:     models.ParseSortMode(r.URL.Query().Get("sort")),
		Param:    models.ParseParameter(r.URL.Query().Get("param")),
	}
}

func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"service":   "vhi-dashboard",
		"version":   config.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// HandleFetch downloads the raw VHI series for every province that is not
// already stored. Only one sweep runs at a time.
func (s *Server) HandleFetch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !s.fetchMutex.TryLock() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":  "fetch already in progress",
			"status": "conflict",
		})
		return
	}
	defer s.fetchMutex.Unlock()

	s.log.Info("starting fetch sweep", map[string]interface{}{
		"provinces": s.Config.ProvinceMax,
	})
	summary := s.Fetcher.FetchAll(r.Context(), s.Config.ProvinceMax)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "completed",
		"fetched": summary.Fetched,
		"skipped": summary.Skipped,
		"failed":  summary.Failed,
	})
}

// HandleRegions returns the canonical region table for selectors.
func (s *Server) HandleRegions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"regions": regions.List(),
	})
}

// HandleRecords returns filtered records as JSON. An unknown region or an
// empty dataset yields an empty list, not an error.
func (s *Server) HandleRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ds, err := s.Builder.Build(r.Context())
	if err != nil {
		s.log.Error("failed to build dataset", err)
		http.Error(w, "Failed to build dataset", http.StatusInternalServerError)
		return
	}

	q := s.parseQuery(r)
	records := dataset.Filter(ds, q)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"region":  q.Region,
		"param":   q.Param,
		"sort":    q.Sort,
		"count":   len(records),
		"records": records,
	})
}

// HandleYearly returns per-year means of the chosen parameter for one
// region over the requested year range.
func (s *Server) HandleYearly(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ds, err := s.Builder.Build(r.Context())
	if err != nil {
		s.log.Error("failed to build dataset", err)
		http.Error(w, "Failed to build dataset", http.StatusInternalServerError)
		return
	}

	q := s.parseQuery(r)
	means := dataset.YearlyAverage(ds, q.Region, q.YearFrom, q.YearTo, q.Param)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"region": q.Region,
		"param":  q.Param,
		"count":  len(means),
		"years":  means,
	})
}

// HandleWeeklyChart serves the interactive weekly line chart as a
// standalone page, embedded by the dashboard via iframe.
func (s *Server) HandleWeeklyChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ds, err := s.Builder.Build(r.Context())
	if err != nil {
		s.log.Error("failed to build dataset", err)
		http.Error(w, "Failed to build dataset", http.StatusInternalServerError)
		return
	}

	q := s.parseQuery(r)
	records := dataset.Filter(ds, q)
	if len(records) == 0 {
		http.Error(w, "No data for the selected filters", http.StatusNotFound)
		return
	}

	html, err := s.Charts.WeeklyLine(records, q.Param, q.Region)
	if err != nil {
		s.log.Error("failed to render weekly chart", err)
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// HandleYearlyChart serves the per-year comparison bar chart as a
// standalone page, embedded by the dashboard via iframe.
func (s *Server) HandleYearlyChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ds, err := s.Builder.Build(r.Context())
	if err != nil {
		s.log.Error("failed to build dataset", err)
		http.Error(w, "Failed to build dataset", http.StatusInternalServerError)
		return
	}

	q := s.parseQuery(r)
	means := dataset.YearlyAverage(ds, q.Region, q.YearFrom, q.YearTo, q.Param)
	if len(means) == 0 {
		http.Error(w, "No data for the selected filters", http.StatusNotFound)
		return
	}

	html, err := s.Charts.YearlyBar(means, q.Param, q.Region)
	if err != nil {
		s.log.Error("failed to render yearly chart", err)
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// HandleChartPNG exports the weekly series as a static PNG.
func (s *Server) HandleChartPNG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ds, err := s.Builder.Build(r.Context())
	if err != nil {
		s.log.Error("failed to build dataset", err)
		http.Error(w, "Failed to build dataset", http.StatusInternalServerError)
		return
	}

	q := s.parseQuery(r)
	records := dataset.Filter(ds, q)
	if len(records) < 2 {
		http.Error(w, "Not enough data for the selected filters", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := s.Charts.WeeklyLinePNG(w, records, q.Param); err != nil {
		s.log.Error("failed to render PNG chart", err)
	}
}

// HandleDashboard serves the main dashboard page with the filter form and
// the selected view (table, weekly line, or yearly comparison).
func (s *Server) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ds, err := s.Builder.Build(r.Context())
	if err != nil {
		s.log.Error("failed to build dataset", err)
		http.Error(w, "Failed to build dataset", http.StatusInternalServerError)
		return
	}

	q := s.parseQuery(r)
	if q.Region == "" {
		q.Region = regions.List()[0].Name
	}

	view := r.URL.Query().Get("view")
	switch view {
	case "table", "line", "compare":
	default:
		view = "table"
	}

	data := dashboardData{
		Regions:    regions.List(),
		Params:     []models.Parameter{models.ParamVCI, models.ParamTCI, models.ParamVHI},
		Query:      q,
		View:       view,
		BuiltAt:    ds.BuiltAt.UTC().Format("2006-01-02 15:04 UTC"),
		Sources:    ds.Sources,
		TotalCount: len(ds.Records),
	}

	if ds.Empty() {
		data.Notice = "Дані ще не завантажено. Натисніть «Завантажити дані», щоб отримати ряди VHI."
	} else {
		switch view {
		case "line":
			data.ChartURL = chartURL("/charts/weekly", q)
		case "compare":
			data.ChartURL = chartURL("/charts/yearly", q)
		default:
			data.Records = dataset.Filter(ds, q)
			if len(data.Records) == 0 {
				data.Notice = "За обраними фільтрами немає жодного запису."
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		s.log.Error("failed to render dashboard", err)
	}
}

func chartURL(path string, q dataset.Query) string {
	values := url.Values{}
	values.Set("region", q.Region)
	values.Set("yearFrom", strconv.Itoa(q.YearFrom))
	values.Set("yearTo", strconv.Itoa(q.YearTo))
	values.Set("weekFrom", strconv.Itoa(q.WeekFrom))
	values.Set("weekTo", strconv.Itoa(q.WeekTo))
	values.Set("param", string(q.Param))
	return path + "?" + values.Encode()
}
