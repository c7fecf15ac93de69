package pipeline

import (
	"github.com/couchcryptid/raws-data-etl/internal/domain"
	"github.com/couchcryptid/raws-data-etl/internal/fw13"
	"github.com/couchcryptid/raws-data-etl/internal/observability"
	"github.com/couchcryptid/raws-data-etl/internal/wrcc"
)

// WRCCTransformer implements Transformer for WRCC exports: identify the
// schema, validate the metric unit contract, parse the data rows.
type WRCCTransformer struct {
	metrics *observability.Metrics
}

// NewWRCCTransformer creates a WRCCTransformer.
func NewWRCCTransformer(metrics *observability.Metrics) *WRCCTransformer {
	return &WRCCTransformer{metrics: metrics}
}

func (t *WRCCTransformer) Transform(blob string) ([]domain.Record, error) {
	schema, err := wrcc.Identify(blob)
	if err != nil {
		t.metrics.UnknownSchemas.Inc()
		return nil, err
	}
	t.metrics.SchemaMatches.WithLabelValues(schema.MonitorType).Inc()

	if err := wrcc.ValidateUnits(schema.Header, schema); err != nil {
		return nil, err
	}
	return wrcc.ParseRecords(wrcc.DataLines(blob), schema)
}

// FW13Transformer implements Transformer for FAMWEB FW13 archives. The
// fixed layout needs no schema identification.
type FW13Transformer struct{}

func (FW13Transformer) Transform(blob string) ([]domain.Record, error) {
	return fw13.Parse(blob)
}
