// Package fw13 parses the NWCG FW13 fixed-width archival format served by
// FAMWEB. Unlike WRCC exports, the FW13 column layout is static and
// documented, so no schema inference happens here: parsing is a lookup
// over a table of byte offsets. FW13 values are English units and are
// converted to the canonical metric set at parse time. Output shares the
// domain.Record shape with the WRCC parser so the assembler treats both
// sources uniformly.
package fw13

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/couchcryptid/raws-data-etl/internal/domain"
)

// recordPrefix identifies an FW13 observation line.
const recordPrefix = "W13"

// field is one fixed-width column: 1-based inclusive byte offsets per the
// FW13 documentation, the canonical column it maps onto, and the
// English-to-metric conversion applied after parsing.
type field struct {
	canonical  string
	start, end int
	convert    func(float64) float64
}

// layout maps the FW13 observation columns onto the canonical vocabulary.
// Identification columns (record type 1-3, station id 4-9, date 10-17,
// time 18-21, observation type 22) are handled separately; columns with no
// canonical counterpart (weather code, max/min temperature and humidity,
// precipitation duration, wet flag) are not extracted.
var layout = []field{
	{domain.ColTemperature, 25, 27, domain.FahrenheitToCelsius},
	{domain.ColHumidity, 28, 30, nil},
	{domain.ColWindDirection, 31, 33, nil},
	{domain.ColWindSpeed, 34, 36, domain.MphToMetersPerSecond},
	{domain.ColFuelMoisture, 37, 38, nil},
	// Day-to-date cumulative precipitation in hundredths of inches.
	{domain.ColPrecipitation, 53, 57, hundredthsInchesToMillimeters},
	{domain.ColMaxGustDirection, 59, 61, nil},
	{domain.ColMaxGustSpeed, 62, 64, domain.MphToMetersPerSecond},
	{domain.ColSolarRadiation, 65, 67, nil},
}

const (
	stationStart, stationEnd = 4, 9
	dateStart, dateEnd       = 10, 17
	timeStart, timeEnd       = 18, 21
)

func hundredthsInchesToMillimeters(v float64) float64 {
	return domain.InchesToMillimeters(v / 100)
}

// slice extracts the 1-based inclusive byte range [start, end] from a
// line, returning "" when the line is too short (narrow historical
// exports omit trailing columns).
func slice(line string, start, end int) string {
	if len(line) < start {
		return ""
	}
	if len(line) < end {
		end = len(line)
	}
	return strings.TrimSpace(line[start-1 : end])
}

// StationID returns the NWS station identifier of the first observation
// line in a blob, or "" when the blob holds no observations.
func StationID(blob string) string {
	for _, line := range strings.Split(blob, "\n") {
		line = strings.Trim(line, " \r")
		if strings.HasPrefix(line, recordPrefix) {
			return slice(line, stationStart, stationEnd)
		}
	}
	return ""
}

// Parse converts FW13 observation lines into canonical records. Lines not
// starting with the W13 record type are discarded. Blank columns mean the
// observation was not taken and stay nil. The precipitation column is the
// day-to-date cumulative counter; callers reconstruct hourly increments
// with domain.DePrecipitateRecords, exactly as for WRCC water-year
// counters.
func Parse(blob string) ([]domain.Record, error) {
	var records []domain.Record
	for _, line := range strings.Split(blob, "\n") {
		line = strings.Trim(line, " \r")
		if !strings.HasPrefix(line, recordPrefix) {
			continue
		}

		date := slice(line, dateStart, dateEnd)
		hhmm := slice(line, timeStart, timeEnd)
		if len(date) != 8 || len(hhmm) != 4 {
			return nil, &domain.MalformedTimestampError{Value: date + hhmm}
		}

		rec := domain.Record{DateTimeLST: date + hhmm}
		for _, f := range layout {
			raw := slice(line, f.start, f.end)
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("fw13 column %q: parse %q: %w", f.canonical, raw, err)
			}
			if f.convert != nil {
				v = f.convert(v)
			}
			if slot := rec.Field(f.canonical); slot != nil {
				*slot = &v
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
