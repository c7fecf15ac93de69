package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/raws-data-etl/internal/domain"
)

// dateLayout parses the batch window bounds.
const dateLayout = "2006-01-02"

// Config holds all loader settings, populated from environment variables
// (with an optional .env file in the working directory).
type Config struct {
	WRCCBaseURL    string
	FAMWEBBaseURL  string
	RequestTimeout time.Duration

	StorePath    string
	StationsFile string
	Source       string // "wrcc" or "fw13"
	Start        time.Time
	End          time.Time

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment, applying defaults where
// unset. A .env file is honored when present but never required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	requestTimeout, err := parseDuration("REQUEST_TIMEOUT", "60s")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	start, err := parseDate("START", "2005-01-01")
	if err != nil {
		return nil, err
	}
	end, err := parseDate("END", time.Now().UTC().Format(dateLayout))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		WRCCBaseURL:     envOrDefault("WRCC_BASE_URL", "https://wrcc.dri.edu/cgi-bin/wea_list2.pl"),
		FAMWEBBaseURL:   envOrDefault("FAMWEB_BASE_URL", "https://fam.nwcg.gov/fam-web/weatherfirecgi/fw13.pl"),
		RequestTimeout:  requestTimeout,
		StorePath:       envOrDefault("STORE_PATH", "raws.sqlite"),
		StationsFile:    os.Getenv("STATIONS_FILE"),
		Source:          envOrDefault("SOURCE", "wrcc"),
		Start:           start,
		End:             end,
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.StationsFile == "" {
		return nil, errors.New("STATIONS_FILE is required")
	}
	if cfg.Source != "wrcc" && cfg.Source != "fw13" {
		return nil, fmt.Errorf("SOURCE must be wrcc or fw13, got %q", cfg.Source)
	}
	if !cfg.End.After(cfg.Start) {
		return nil, errors.New("END must be after START")
	}

	return cfg, nil
}

// Stations reads the station metadata file: a JSON array of
// domain.StationMetadata produced by the metadata-harvesting side.
func (c *Config) Stations() ([]domain.StationMetadata, error) {
	data, err := os.ReadFile(c.StationsFile)
	if err != nil {
		return nil, fmt.Errorf("read stations file: %w", err)
	}
	var stations []domain.StationMetadata
	if err := json.Unmarshal(data, &stations); err != nil {
		return nil, fmt.Errorf("parse stations file %s: %w", c.StationsFile, err)
	}
	if len(stations) == 0 {
		return nil, fmt.Errorf("stations file %s lists no stations", c.StationsFile)
	}
	return stations, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseDate(key, fallback string) (time.Time, error) {
	t, err := time.Parse(dateLayout, envOrDefault(key, fallback))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %w", key, err)
	}
	return t, nil
}
