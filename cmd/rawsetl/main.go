// Command rawsetl batch-loads RAWS station observations: for every station
// in the metadata file it downloads the raw export (WRCC or FW13), parses
// and harmonizes it, and stores the assembled timeseries in the local
// sqlite store. Health and metrics endpoints are served for the duration
// of the run.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/couchcryptid/raws-data-etl/internal/adapter/famweb"
	httpadapter "github.com/couchcryptid/raws-data-etl/internal/adapter/http"
	"github.com/couchcryptid/raws-data-etl/internal/adapter/store"
	"github.com/couchcryptid/raws-data-etl/internal/adapter/wrccweb"
	"github.com/couchcryptid/raws-data-etl/internal/config"
	"github.com/couchcryptid/raws-data-etl/internal/domain"
	"github.com/couchcryptid/raws-data-etl/internal/observability"
	"github.com/couchcryptid/raws-data-etl/internal/pipeline"
)

// wrccExtractor adapts the WRCC client to the pipeline's Extractor.
type wrccExtractor struct {
	client *wrccweb.Client
}

func (e wrccExtractor) Extract(ctx context.Context, meta domain.StationMetadata, start, end time.Time) (string, error) {
	return e.client.Fetch(ctx, meta.WRCCID, start, end)
}

// fw13Extractor adapts the FAMWEB client to the pipeline's Extractor.
type fw13Extractor struct {
	client *famweb.Client
}

func (e fw13Extractor) Extract(ctx context.Context, meta domain.StationMetadata, start, end time.Time) (string, error) {
	return e.client.Fetch(ctx, meta.NWSID, start.Year(), end.Year())
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	stations, err := cfg.Stations()
	if err != nil {
		logger.Error("failed to load station metadata", "error", err)
		os.Exit(1)
	}

	db, err := store.Open(cfg.StorePath)
	if err != nil {
		logger.Error("failed to open store", "path", cfg.StorePath, "error", err)
		os.Exit(1)
	}

	var (
		extractor   pipeline.Extractor
		transformer pipeline.Transformer
	)
	switch cfg.Source {
	case "fw13":
		extractor = fw13Extractor{client: famweb.NewClient(cfg.FAMWEBBaseURL, cfg.RequestTimeout, logger)}
		transformer = pipeline.FW13Transformer{}
	default:
		extractor = wrccExtractor{client: wrccweb.NewClient(cfg.WRCCBaseURL, cfg.RequestTimeout, logger)}
		transformer = pipeline.NewWRCCTransformer(metrics)
	}

	p := pipeline.New(extractor, transformer, db, stations, cfg.Start, cfg.End, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := p.Run(ctx); err != nil {
			logger.Error("batch error", "error", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down on signal")
	case <-done:
		logger.Info("batch finished, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := db.Close(); err != nil {
		logger.Error("store close error", "error", err)
	}

	logger.Info("shutdown complete")
}
