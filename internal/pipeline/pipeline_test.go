package pipeline_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/raws-data-etl/internal/domain"
	"github.com/couchcryptid/raws-data-etl/internal/observability"
	"github.com/couchcryptid/raws-data-etl/internal/pipeline"
	"github.com/couchcryptid/raws-data-etl/internal/wrcc"
)

// mockExtractor serves canned blobs keyed by WRCC id.
type mockExtractor struct {
	blobs map[string]string
	err   error
}

func (m *mockExtractor) Extract(_ context.Context, meta domain.StationMetadata, _, _ time.Time) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.blobs[meta.WRCCID], nil
}

// mockLoader records every saved timeseries.
type mockLoader struct {
	saved []domain.Timeseries
	err   error
}

func (m *mockLoader) Save(_ context.Context, ts domain.Timeseries) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, ts)
	return nil
}

func type1Blob(t *testing.T, rows ...string) string {
	t.Helper()
	for _, s := range wrcc.Catalog() {
		if s.MonitorType == "WRCC_TYPE1" {
			lines := append([]string{
				" Wenatchee Heights  Washington ",
				s.Header[0],
				s.Header[1],
				s.Header[2],
			}, rows...)
			return strings.Join(lines, "\n")
		}
	}
	t.Fatal("WRCC_TYPE1 missing from catalog")
	return ""
}

func station(wrccID string) domain.StationMetadata {
	return domain.StationMetadata{
		DeviceDeploymentID: "wrcc." + wrccID,
		WRCCID:             wrccID,
		SiteName:           "Test Site",
		Timezone:           "America/Los_Angeles",
	}
}

func newTestPipeline(e pipeline.Extractor, l pipeline.Loader, stations []domain.StationMetadata,
	metrics *observability.Metrics) *pipeline.Pipeline {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)
	logger := slog.New(slog.DiscardHandler)
	return pipeline.New(e, pipeline.NewWRCCTransformer(metrics), l, stations, start, end, logger, metrics)
}

func freezeClock(t *testing.T) {
	t.Helper()
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	t.Cleanup(func() { domain.SetClock(nil) })
}

func TestRunStoresStation(t *testing.T) {
	freezeClock(t)

	blob := type1Blob(t,
		"2201010000\t100.0\t1.5\t180\t2.5\t1.8\t45\t13.4\t190\t2.8\t-9999",
		"2201010100\t101.5\t2.0\t170\t2.1\t1.5\t48\t13.4\t175\t3.1\t-9999",
	)
	extractor := &mockExtractor{blobs: map[string]string{"waWENU": blob}}
	loader := &mockLoader{}
	metrics := observability.NewMetricsForTesting()
	p := newTestPipeline(extractor, loader, []domain.StationMetadata{station("waWENU")}, metrics)

	require.Error(t, p.CheckReadiness(context.Background()), "not ready before the batch runs")
	require.NoError(t, p.Run(context.Background()))
	require.NoError(t, p.CheckReadiness(context.Background()))

	require.Len(t, loader.saved, 1)
	ts := loader.saved[0]
	assert.Equal(t, "wrcc.waWENU", ts.Meta.DeviceDeploymentID)
	require.Len(t, ts.Records, 2)

	// Local midnight in Pacific standard time is 08:00 UTC.
	assert.Equal(t, time.Date(2022, 1, 1, 8, 0, 0, 0, time.UTC), ts.Records[0].Time)

	// The raw precipitation counter is de-accumulated before assembly.
	assert.Nil(t, ts.Records[0].Precipitation)
	assert.Equal(t, 1.5, *ts.Records[1].Precipitation)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StationsProcessed))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SchemaMatches.WithLabelValues("WRCC_TYPE1")))
}

func TestRunSkipsEmptySource(t *testing.T) {
	freezeClock(t)

	good := type1Blob(t, "2201010000\t0.0\t1.5\t180\t2.5\t1.8\t45\t13.4\t190\t2.8\t650")
	extractor := &mockExtractor{blobs: map[string]string{
		"empty": "  \r\n ",
		"good":  good,
	}}
	loader := &mockLoader{}
	metrics := observability.NewMetricsForTesting()
	stations := []domain.StationMetadata{station("empty"), station("good")}
	p := newTestPipeline(extractor, loader, stations, metrics)

	require.NoError(t, p.Run(context.Background()))

	// The empty station is skipped; the batch continues to the next one.
	require.Len(t, loader.saved, 1)
	assert.Equal(t, "wrcc.good", loader.saved[0].Meta.DeviceDeploymentID)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StationFailures.WithLabelValues("empty_source")))
}

func TestRunSkipsUnknownSchema(t *testing.T) {
	freezeClock(t)

	extractor := &mockExtractor{blobs: map[string]string{
		"odd": "Station\n: LST\t furlongs\n: Date/Time\t Distance\n:YYMMDDhhmm\t  ",
	}}
	loader := &mockLoader{}
	metrics := observability.NewMetricsForTesting()
	p := newTestPipeline(extractor, loader, []domain.StationMetadata{station("odd")}, metrics)

	require.NoError(t, p.Run(context.Background()))

	assert.Empty(t, loader.saved)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StationFailures.WithLabelValues("unknown_schema")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.UnknownSchemas))
}

func TestRunSkipsDownloadFailure(t *testing.T) {
	extractor := &mockExtractor{err: errors.New("connection refused")}
	loader := &mockLoader{}
	metrics := observability.NewMetricsForTesting()
	p := newTestPipeline(extractor, loader, []domain.StationMetadata{station("a"), station("b")}, metrics)

	require.NoError(t, p.Run(context.Background()))

	assert.Empty(t, loader.saved)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.StationFailures.WithLabelValues("other")))
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	extractor := &mockExtractor{blobs: map[string]string{}}
	loader := &mockLoader{}
	metrics := observability.NewMetricsForTesting()
	p := newTestPipeline(extractor, loader, []domain.StationMetadata{station("a")}, metrics)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.Run(ctx))
	assert.Empty(t, loader.saved)
}
