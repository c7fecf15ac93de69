package wrcc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaByType(t *testing.T, monitorType string) Schema {
	t.Helper()
	for _, s := range Catalog() {
		if s.MonitorType == monitorType {
			return s
		}
	}
	t.Fatalf("%s missing from catalog", monitorType)
	return Schema{}
}

func TestDataLines(t *testing.T) {
	s := type1(t)
	blob := syntheticBlob(s, "row1", "row2")

	lines := DataLines(blob)
	require.Len(t, lines, 2)
	assert.Equal(t, "row1", lines[0])
	assert.Equal(t, "row2", lines[1])

	assert.Nil(t, DataLines("just a station name\n"))
}

func TestParseRecords(t *testing.T) {
	s := type1(t)

	t.Run("sentinel becomes nil", func(t *testing.T) {
		row := "2201011300\t-9999\t1.5\t180\t-9999\t10.2\t45\t13.4\t190\t2.8\t650"
		records, err := ParseRecords([]string{row}, s)
		require.NoError(t, err)
		require.Len(t, records, 1)

		rec := records[0]
		assert.Nil(t, rec.Precipitation)
		assert.Nil(t, rec.Temperature)
		assert.Equal(t, 1.5, *rec.WindSpeed)
		assert.Equal(t, 180.0, *rec.WindDirection)
		assert.Equal(t, 10.2, *rec.FuelTemperature)
		assert.Equal(t, 45.0, *rec.Humidity)
		assert.Equal(t, 13.4, *rec.BatteryVoltage)
		assert.Equal(t, 190.0, *rec.MaxGustDirection)
		assert.Equal(t, 2.8, *rec.MaxGustSpeed)
		assert.Equal(t, 650.0, *rec.SolarRadiation)
	})

	t.Run("unreported columns stay nil", func(t *testing.T) {
		records, err := ParseRecords([]string{syntheticRow(s)}, s)
		require.NoError(t, err)

		// WRCC_TYPE1 has no fuel moisture or soil sensors; those canonical
		// columns are synthesized as nil so every layout shapes identically.
		rec := records[0]
		assert.Nil(t, rec.FuelMoisture)
		assert.Nil(t, rec.SoilTemperature)
		assert.Nil(t, rec.BarometricPressure)
	})

	t.Run("repeated header and blank lines are skipped", func(t *testing.T) {
		rows := []string{
			"",
			s.Header[0],
			s.Header[1],
			s.Header[2],
			syntheticRow(s),
			"",
			": some mid-export comment",
			syntheticRow(s),
		}
		records, err := ParseRecords(rows, s)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("wrong field count fails", func(t *testing.T) {
		_, err := ParseRecords([]string{"2201011300\t0.0\t1.5"}, s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "3 fields")
		assert.Contains(t, err.Error(), "WRCC_TYPE1")
	})

	t.Run("unparsable value names the column", func(t *testing.T) {
		row := strings.Replace(syntheticRow(s), "1.5", "n/a", 1)
		_, err := ParseRecords([]string{row}, s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"precipitation"`)
	})
}

func TestParseRecordsDropsPlaceholderColumns(t *testing.T) {
	s := schemaByType(t, "WRCC_TYPE24")
	require.Equal(t, "_1", s.Canonical[s.Columns()-1])

	// Trailing unlabeled spare column; its value is consumed positionally
	// and discarded.
	row := "2201011300\t0.0\t1.5\t180\t21.0\t10.2\t45\t13.4\t190\t2.8\t650\t0"
	records, err := ParseRecords([]string{row}, s)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 650.0, *records[0].SolarRadiation)
	assert.Nil(t, records[0].Value("_1"))
}
