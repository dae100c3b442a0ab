package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/AlinaYaremko/lab-3-ad/internal/config"
	"github.com/AlinaYaremko/lab-3-ad/internal/dataset"
	"github.com/AlinaYaremko/lab-3-ad/internal/fetchers"
	"github.com/AlinaYaremko/lab-3-ad/internal/logger"
	"github.com/AlinaYaremko/lab-3-ad/internal/observability"
	"github.com/AlinaYaremko/lab-3-ad/internal/server"
	"github.com/AlinaYaremko/lab-3-ad/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	if level := logger.ParseLevel(cfg.LogLevel); level >= 0 {
		logger.GetGlobalLogger().SetLevel(level)
	}
	if format := logger.ParseFormat(cfg.LogFormat); format >= 0 {
		logger.GetGlobalLogger().SetFormat(format)
	}

	log := logger.GetGlobalLogger().WithComponent("main")
	log.Info("Starting VHI dashboard service", map[string]interface{}{
		"port":        cfg.Port,
		"environment": cfg.Environment,
	})

	mode := storage.DeploymentLocal
	if cfg.Environment == "gcs" {
		mode = storage.DeploymentGCS
	}

	store, err := storage.NewRawStore(ctx, mode, cfg)
	if err != nil {
		log.Fatal("Failed to initialize raw file storage", err)
	}

	metrics := observability.NewMetrics()
	fetcher := fetchers.NewVHIFetcher(cfg, store, clockwork.NewRealClock(), metrics, logger.GetGlobalLogger())
	builder := dataset.NewBuilder(store, metrics, logger.GetGlobalLogger())

	srv := server.NewServer(cfg, store, fetcher, builder, logger.GetGlobalLogger())
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // a full fetch sweep is slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server listening", map[string]interface{}{"addr": httpServer.Addr})
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal("HTTP server error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", err)
	}

	log.Info("Server stopped")
}
