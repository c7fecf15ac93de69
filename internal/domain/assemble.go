package domain

import (
	"log/slog"
	"strconv"
	"time"
)

// lstLayout parses a century-qualified local-standard-time string.
const lstLayout = "200601021504"

// Assemble merges one station's metadata with its parsed records into a
// Timeseries. Raw local-standard-time strings are century-prefixed where
// the source reported two-digit years, parsed as if they were UTC, and
// shifted by the station's fixed UTC offset to true UTC instants. Local
// standard time has no real IANA zone ("winter time all year"), so the
// two-step parse-then-shift is required; a direct zoned parse would apply
// daylight-saving rules the loggers never follow.
//
// Numeric fields are rounded to their documented per-column precision, and
// the result is sorted and de-duplicated before returning.
func Assemble(meta StationMetadata, records []Record, logger *slog.Logger) (Timeseries, error) {
	offset, err := UTCOffsetHours(meta.Timezone)
	if err != nil {
		return Timeseries{}, err
	}
	shift := time.Duration(offset * float64(time.Hour))

	assembled := make([]Record, 0, len(records))
	for _, r := range records {
		lst := r.DateTimeLST
		if len(lst) == len("YYMMDDhhmm") {
			lst = centuryFor(lst[:2]) + lst
		}
		t, err := time.ParseInLocation(lstLayout, lst, time.UTC)
		if err != nil {
			return Timeseries{}, &MalformedTimestampError{Value: r.DateTimeLST}
		}
		// LST = UTC + offset, so UTC = LST - offset.
		r.Time = t.Add(-shift)
		roundRecord(&r)
		assembled = append(assembled, r)
	}

	ts := Timeseries{Meta: meta, Records: assembled}
	ts.SortDistinct(logger)
	return ts, nil
}

// centuryFor picks the century for a two-digit year: years beyond the
// current two-digit year cannot be in this century, so they are 19xx.
func centuryFor(yy string) string {
	year, err := strconv.Atoi(yy)
	if err != nil {
		// Let the timestamp parse surface the malformed value.
		return "20"
	}
	if year > clock.Now().UTC().Year()%100 {
		return "19"
	}
	return "20"
}
