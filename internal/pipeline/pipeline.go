// Package pipeline orchestrates the per-station download-parse-assemble-store
// loop. The core parsing components are pure functions of their inputs; all
// batching, skip-and-continue, and observability live here.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/raws-data-etl/internal/domain"
	"github.com/couchcryptid/raws-data-etl/internal/observability"
)

// Extractor downloads the raw text blob for one station over a window.
type Extractor interface {
	Extract(ctx context.Context, meta domain.StationMetadata, start, end time.Time) (string, error)
}

// Transformer parses a raw blob into canonical records.
type Transformer interface {
	Transform(blob string) ([]domain.Record, error)
}

// Loader persists an assembled timeseries.
type Loader interface {
	Save(ctx context.Context, ts domain.Timeseries) error
}

// Pipeline runs the batch over a fixed station list. One station's failure
// logs and counts but never aborts the batch: a bad station degrades to
// "missing from the result set plus a logged reason".
type Pipeline struct {
	extractor   Extractor
	transformer Transformer
	loader      Loader
	stations    []domain.StationMetadata
	start, end  time.Time
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
}

// New creates a Pipeline over the given stages, stations, and window.
func New(e Extractor, t Transformer, l Loader, stations []domain.StationMetadata,
	start, end time.Time, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		stations:    stations,
		start:       start,
		end:         end,
		logger:      logger,
		metrics:     metrics,
	}
}

// CheckReadiness returns nil once at least one station has been stored.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no station has been loaded yet")
	}
	return nil
}

// Run processes every configured station once and returns. Context
// cancellation stops the batch between stations.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("batch started",
		"stations", len(p.stations), "start", p.start, "end", p.end)
	p.metrics.BatchRunning.Set(1)
	defer p.metrics.BatchRunning.Set(0)

	for _, meta := range p.stations {
		if ctx.Err() != nil {
			p.logger.Info("batch stopping", "reason", ctx.Err())
			return nil
		}
		if err := p.processStation(ctx, meta); err != nil {
			reason := failureReason(err)
			p.logger.Error("station failed, skipping",
				"station", meta.DeviceDeploymentID,
				"reason", reason,
				"error", err,
			)
			p.metrics.StationFailures.WithLabelValues(reason).Inc()
			continue
		}
		p.metrics.StationsProcessed.Inc()
		p.ready.Store(true)
	}

	p.logger.Info("batch complete")
	return nil
}

// processStation runs one station end to end: download, parse, reconstruct
// precipitation, assemble, store.
func (p *Pipeline) processStation(ctx context.Context, meta domain.StationMetadata) error {
	started := time.Now()
	blob, err := p.extractor.Extract(ctx, meta, p.start, p.end)
	if err != nil {
		return err
	}
	p.metrics.DownloadDuration.Observe(time.Since(started).Seconds())

	// Empty body means "no data for the window"; short-circuit before any
	// schema matching so it never masquerades as malformed data.
	if strings.TrimSpace(blob) == "" {
		return domain.ErrEmptySource
	}

	records, err := p.transformer.Transform(blob)
	if err != nil {
		return err
	}
	domain.DePrecipitateRecords(records)

	ts, err := domain.Assemble(meta, records, p.logger)
	if err != nil {
		return err
	}
	p.metrics.RecordsStored.Add(float64(len(ts.Records)))

	if err := p.loader.Save(ctx, ts); err != nil {
		return err
	}

	p.logger.Info("station loaded",
		"station", meta.DeviceDeploymentID,
		"records", len(ts.Records),
		"duration", time.Since(started),
	)
	return nil
}

// failureReason classifies an error for the failure counter label.
func failureReason(err error) string {
	var unitErr *domain.UnsupportedUnitError
	var tzErr *domain.MissingTimezoneOffsetError
	var tsErr *domain.MalformedTimestampError
	switch {
	case errors.Is(err, domain.ErrEmptySource):
		return "empty_source"
	case errors.Is(err, domain.ErrUnknownSchema):
		return "unknown_schema"
	case errors.As(err, &unitErr):
		return "unsupported_unit"
	case errors.As(err, &tzErr):
		return "missing_tz_offset"
	case errors.As(err, &tsErr):
		return "malformed_timestamp"
	default:
		return "other"
	}
}
