package wrcc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/couchcryptid/raws-data-etl/internal/domain"
)

// missingSentinel is the WRCC raw value for a missing observation. It is
// replaced with nil during parsing and never reaches downstream code.
const missingSentinel = "-9999"

func placeholderName(n int) string {
	return "_" + strconv.Itoa(n)
}

// DataLines returns the blob's data rows: everything after the station
// name line and the three header lines.
func DataLines(blob string) []string {
	lines := splitBlob(blob)
	seen := 0
	for i, line := range lines {
		if line == "" {
			continue
		}
		seen++
		if seen == 4 {
			return lines[i+1:]
		}
	}
	return nil
}

// ParseRecords parses tab-delimited data rows into canonical records using
// the matched schema's column mapping. Blank lines and ':'-prefixed lines
// are discarded: WRCC repeats header and comment lines prefixed with ':'
// throughout multi-month exports, and those must never be treated as data.
//
// The -9999 sentinel becomes nil in every column. Canonical columns the
// schema never reports stay nil in every record, so all layouts produce
// the same downstream shape. Placeholder "_N" columns (unlabeled spares)
// are consumed positionally and dropped.
func ParseRecords(dataLines []string, schema Schema) ([]domain.Record, error) {
	records := make([]domain.Record, 0, len(dataLines))
	for _, line := range dataLines {
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != schema.Columns() {
			return nil, fmt.Errorf("row has %d fields, schema %s expects %d: %q",
				len(fields), schema.MonitorType, schema.Columns(), line)
		}

		var rec domain.Record
		for i, field := range fields {
			field = strings.TrimSpace(field)
			if schema.Types[i] == TypeCharacter {
				rec.DateTimeLST = field
				continue
			}
			if field == "" || field == missingSentinel {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("column %q: parse %q: %w",
					schema.Canonical[i], field, err)
			}
			if slot := rec.Field(schema.Canonical[i]); slot != nil {
				*slot = &v
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
