package fw13

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/raws-data-etl/internal/domain"
)

// observationLine builds a W13 line column by column so the byte offsets
// stay auditable against the format documentation.
func observationLine() string {
	return "W13" + // 1-3   record type
		"241513" + // 4-9   station id
		"20220101" + // 10-17 date
		"1300" + // 18-21 time
		"O" + // 22    observation type
		"  " + // 23-24 weather code
		" 59" + // 25-27 dry bulb temperature, degF
		" 40" + // 28-30 relative humidity
		"180" + // 31-33 wind direction
		" 10" + // 34-36 wind speed, mph
		" 8" + // 37-38 fuel moisture
		strings.Repeat(" ", 14) + // 39-52 max/min columns, not extracted
		"00025" + // 53-57 precipitation, hundredths of inches
		" " + // 58    precipitation duration
		"190" + // 59-61 gust direction
		" 15" + // 62-64 gust speed, mph
		"650" // 65-67 solar radiation
}

func TestParse(t *testing.T) {
	blob := "FAMWEB FW13 EXPORT\n" + observationLine() + "\r\n"

	records, err := Parse(blob)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "202201011300", rec.DateTimeLST)
	assert.InDelta(t, 15.0, *rec.Temperature, 1e-9)
	assert.Equal(t, 40.0, *rec.Humidity)
	assert.Equal(t, 180.0, *rec.WindDirection)
	assert.InDelta(t, 4.4704, *rec.WindSpeed, 1e-9)
	assert.Equal(t, 8.0, *rec.FuelMoisture)
	assert.InDelta(t, 6.35, *rec.Precipitation, 1e-9)
	assert.Equal(t, 190.0, *rec.MaxGustDirection)
	assert.InDelta(t, 6.7056, *rec.MaxGustSpeed, 1e-9)
	assert.Equal(t, 650.0, *rec.SolarRadiation)
}

func TestParseNarrowHistoricalLine(t *testing.T) {
	// Old exports stop after the wind columns; trailing fields stay nil.
	line := observationLine()[:36]

	records, err := Parse(line)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.InDelta(t, 4.4704, *rec.WindSpeed, 1e-9)
	assert.Nil(t, rec.FuelMoisture)
	assert.Nil(t, rec.Precipitation)
	assert.Nil(t, rec.SolarRadiation)
}

func TestParseSkipsNonObservationLines(t *testing.T) {
	blob := strings.Join([]string{
		"NATIONAL FIRE WEATHER DATA",
		"",
		observationLine(),
		"RAWS 241513 END",
		observationLine(),
	}, "\n")

	records, err := Parse(blob)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseBlankColumnsStayNil(t *testing.T) {
	line := observationLine()
	// Blank out the solar radiation column.
	line = line[:64] + "   "

	records, err := Parse(line)
	require.NoError(t, err)
	assert.Nil(t, records[0].SolarRadiation)
	assert.NotNil(t, records[0].MaxGustSpeed)
}

func TestParseMalformedTimestamp(t *testing.T) {
	_, err := Parse("W13" + "241513" + "2022")

	var tsErr *domain.MalformedTimestampError
	require.ErrorAs(t, err, &tsErr)
}

func TestParseUnparsableValue(t *testing.T) {
	line := observationLine()
	line = line[:24] + "xxx" + line[27:]

	_, err := Parse(line)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"temperature"`)
}

func TestStationID(t *testing.T) {
	assert.Equal(t, "241513", StationID("header\n"+observationLine()))
	assert.Equal(t, "", StationID("no observations here"))
}
