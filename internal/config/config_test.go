package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStationsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const oneStation = `[{
	"device_deployment_id": "wrcc.waWENU",
	"wrcc_id": "waWENU",
	"site_name": "Wenatchee Heights",
	"longitude": -120.26,
	"latitude": 47.37,
	"elevation": 545,
	"country_code": "US",
	"state_code": "WA",
	"timezone": "America/Los_Angeles"
}]`

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STATIONS_FILE", writeStationsFile(t, oneStation))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://wrcc.dri.edu/cgi-bin/wea_list2.pl", cfg.WRCCBaseURL)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "raws.sqlite", cfg.StorePath)
	assert.Equal(t, "wrcc", cfg.Source)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Start)
	assert.True(t, cfg.End.After(cfg.Start))
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STATIONS_FILE", writeStationsFile(t, oneStation))
	t.Setenv("SOURCE", "fw13")
	t.Setenv("START", "2020-01-01")
	t.Setenv("END", "2020-12-31")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "fw13", cfg.Source)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Start)
	assert.Equal(t, time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC), cfg.End)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadValidation(t *testing.T) {
	t.Run("stations file required", func(t *testing.T) {
		t.Setenv("STATIONS_FILE", "")
		_, err := Load()
		assert.ErrorContains(t, err, "STATIONS_FILE")
	})

	t.Run("unknown source", func(t *testing.T) {
		t.Setenv("STATIONS_FILE", writeStationsFile(t, oneStation))
		t.Setenv("SOURCE", "ghcn")
		_, err := Load()
		assert.ErrorContains(t, err, "SOURCE")
	})

	t.Run("inverted window", func(t *testing.T) {
		t.Setenv("STATIONS_FILE", writeStationsFile(t, oneStation))
		t.Setenv("START", "2022-06-01")
		t.Setenv("END", "2022-01-01")
		_, err := Load()
		assert.ErrorContains(t, err, "END must be after START")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("STATIONS_FILE", writeStationsFile(t, oneStation))
		t.Setenv("REQUEST_TIMEOUT", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "REQUEST_TIMEOUT")
	})
}

func TestStations(t *testing.T) {
	t.Run("parses metadata", func(t *testing.T) {
		cfg := &Config{StationsFile: writeStationsFile(t, oneStation)}
		stations, err := cfg.Stations()
		require.NoError(t, err)
		require.Len(t, stations, 1)
		assert.Equal(t, "wrcc.waWENU", stations[0].DeviceDeploymentID)
		assert.Equal(t, "America/Los_Angeles", stations[0].Timezone)
	})

	t.Run("empty list fails", func(t *testing.T) {
		cfg := &Config{StationsFile: writeStationsFile(t, `[]`)}
		_, err := cfg.Stations()
		assert.ErrorContains(t, err, "no stations")
	})

	t.Run("missing file fails", func(t *testing.T) {
		cfg := &Config{StationsFile: filepath.Join(t.TempDir(), "absent.json")}
		_, err := cfg.Stations()
		assert.Error(t, err)
	})
}
