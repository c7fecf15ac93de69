package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// station batch loader.
type Metrics struct {
	StationsProcessed prometheus.Counter
	StationFailures   *prometheus.CounterVec // label: reason
	RecordsStored     prometheus.Counter
	BatchRunning      prometheus.Gauge

	// Schema identification metrics.
	SchemaMatches  *prometheus.CounterVec // label: monitor_type
	UnknownSchemas prometheus.Counter

	DownloadDuration prometheus.Histogram
}

// NewMetrics creates and registers all batch metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		StationsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "raws_etl",
			Name:      "stations_processed_total",
			Help:      "Stations downloaded, parsed, and stored successfully.",
		}),
		StationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "raws_etl",
			Name:      "station_failures_total",
			Help:      "Stations skipped, by failure reason.",
		}, []string{"reason"}),
		RecordsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "raws_etl",
			Name:      "records_stored_total",
			Help:      "Hourly observation records written to the store.",
		}),
		BatchRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "raws_etl",
			Name:      "batch_running",
			Help:      "1 while the batch loop is active, 0 otherwise.",
		}),
		SchemaMatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "raws_etl",
			Name:      "schema_matches_total",
			Help:      "WRCC header matches by catalog monitor type.",
		}, []string{"monitor_type"}),
		UnknownSchemas: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "raws_etl",
			Name:      "unknown_schemas_total",
			Help:      "WRCC headers that matched no catalog entry.",
		}),
		DownloadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "raws_etl",
			Name:      "download_duration_seconds",
			Help:      "Duration of one station download.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}

	prometheus.MustRegister(
		m.StationsProcessed,
		m.StationFailures,
		m.RecordsStored,
		m.BatchRunning,
		m.SchemaMatches,
		m.UnknownSchemas,
		m.DownloadDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		StationsProcessed: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "raws_etl", Name: "stations_processed_total"}),
		StationFailures:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "raws_etl", Name: "station_failures_total"}, []string{"reason"}),
		RecordsStored:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "raws_etl", Name: "records_stored_total"}),
		BatchRunning:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "raws_etl", Name: "batch_running"}),
		SchemaMatches:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "raws_etl", Name: "schema_matches_total"}, []string{"monitor_type"}),
		UnknownSchemas:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "raws_etl", Name: "unknown_schemas_total"}),
		DownloadDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "raws_etl", Name: "download_duration_seconds"}),
	}
}
