package wrcc

import (
	"strings"

	"github.com/couchcryptid/raws-data-etl/internal/domain"
)

// expectedUnits is the metric unit each unit-bearing canonical column must
// declare. WRCC is contractually metric (the downloader requests units=m),
// so a mismatch is an upstream contract violation that must surface; there
// is deliberately no conversion fallback here.
var expectedUnits = map[string]string{
	domain.ColPrecipitation:   "mm",
	domain.ColTemperature:     "degC",
	domain.ColFuelTemperature: "degC",
	domain.ColWindSpeed:       "m/s",
	domain.ColMaxGustSpeed:    "m/s",
}

// unitSpellings collapses the unit-token spelling and spacing variants seen
// across hardware generations onto canonical unit strings.
var unitSpellings = map[string]string{
	"mm":          "mm",
	"millimeters": "mm",
	"in":          "in",
	"inches":      "in",
	"m/s":         "m/s",
	"mph":         "mph",
	"mi/h":        "mph",
	"deg":         "deg",
	"degc":        "degC",
	"deg.c":       "degC",
	"degf":        "degF",
	"deg.f":       "degF",
}

// harmonizeUnit maps a raw header unit token onto its canonical unit
// string, or returns the trimmed token unchanged when no variant matches.
func harmonizeUnit(token string) string {
	token = strings.TrimSpace(token)
	key := strings.ToLower(strings.ReplaceAll(token, " ", ""))
	if canonical, ok := unitSpellings[key]; ok {
		return canonical
	}
	return token
}

// ValidateUnits checks the unit tokens of the schema's first header line
// against the expected metric units, failing loudly on the first mismatch.
func ValidateUnits(h RawHeader, schema Schema) error {
	tokens := strings.Split(strings.TrimPrefix(h[0], ":"), "\t")
	for i, col := range schema.Canonical {
		expected, bearing := expectedUnits[col]
		if !bearing || i >= len(tokens) {
			continue
		}
		if unit := harmonizeUnit(tokens[i]); unit != expected {
			return &domain.UnsupportedUnitError{Column: col, Unit: unit}
		}
	}
	return nil
}
