// Package store persists assembled timeseries to a local sqlite database.
// A saved timeseries reloads field-for-field equal to the original; saves
// replace the station's records wholesale, never partially.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/couchcryptid/raws-data-etl/internal/domain"
)

// numericSQLColumns aligns positionally with domain.NumericColumns.
var numericSQLColumns = []string{
	"precipitation",
	"wind_speed",
	"wind_direction",
	"temperature",
	"fuel_temperature",
	"humidity",
	"battery_voltage",
	"fuel_moisture",
	"max_gust_direction",
	"max_gust_speed",
	"solar_radiation",
	"soil_temperature",
	"soil_moisture",
	"barometric_pressure",
	"snow_depth",
	"visibility",
	"cloud_cover",
}

const createStations = `
CREATE TABLE IF NOT EXISTS stations (
	device_deployment_id TEXT PRIMARY KEY,
	nws_id TEXT,
	wrcc_id TEXT,
	site_name TEXT,
	longitude REAL,
	latitude REAL,
	elevation REAL,
	country_code TEXT,
	state_code TEXT,
	timezone TEXT NOT NULL
)`

// Store wraps a sqlite database holding station metadata and records.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at path and ensures
// the schema exists. Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(createStations); err != nil {
		db.Close()
		return nil, fmt.Errorf("create stations table: %w", err)
	}
	createRecords := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS records (
	device_deployment_id TEXT NOT NULL REFERENCES stations(device_deployment_id),
	time_utc TEXT NOT NULL,
	datetime_lst TEXT NOT NULL,
	%s REAL
)`, strings.Join(numericSQLColumns, " REAL,\n\t"))
	if _, err := db.Exec(createRecords); err != nil {
		db.Close()
		return nil, fmt.Errorf("create records table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_records_station_time
		ON records (device_deployment_id, time_utc)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create records index: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists a timeseries: the station row is upserted and the
// station's records are replaced wholesale in one transaction.
func (s *Store) Save(ctx context.Context, ts domain.Timeseries) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	meta := ts.Meta
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO stations (device_deployment_id, nws_id, wrcc_id, site_name,
			longitude, latitude, elevation, country_code, state_code, timezone)
		VALUES (?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT(device_deployment_id) DO UPDATE SET
			nws_id=excluded.nws_id, wrcc_id=excluded.wrcc_id,
			site_name=excluded.site_name, longitude=excluded.longitude,
			latitude=excluded.latitude, elevation=excluded.elevation,
			country_code=excluded.country_code, state_code=excluded.state_code,
			timezone=excluded.timezone`,
		meta.DeviceDeploymentID, meta.NWSID, meta.WRCCID, meta.SiteName,
		meta.Longitude, meta.Latitude, meta.Elevation,
		meta.CountryCode, meta.StateCode, meta.Timezone,
	); err != nil {
		return fmt.Errorf("upsert station %s: %w", meta.DeviceDeploymentID, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM records WHERE device_deployment_id = ?`,
		meta.DeviceDeploymentID,
	); err != nil {
		return fmt.Errorf("clear records for %s: %w", meta.DeviceDeploymentID, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", 3+len(numericSQLColumns)), ",")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO records (device_deployment_id, time_utc, datetime_lst, %s)
		VALUES (%s)`,
		strings.Join(numericSQLColumns, ", "), placeholders,
	))
	if err != nil {
		return fmt.Errorf("prepare record insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range ts.Records {
		args := make([]any, 0, 3+len(domain.NumericColumns))
		args = append(args,
			meta.DeviceDeploymentID,
			rec.Time.UTC().Format(time.RFC3339Nano),
			rec.DateTimeLST,
		)
		for _, col := range domain.NumericColumns {
			args = append(args, nullable(rec.Value(col)))
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert record for %s: %w", meta.DeviceDeploymentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save for %s: %w", meta.DeviceDeploymentID, err)
	}
	return nil
}

func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// Load reloads a station's timeseries. Records come back ordered by UTC
// time, matching the sorted invariant they were saved under.
func (s *Store) Load(ctx context.Context, deviceDeploymentID string) (domain.Timeseries, error) {
	var ts domain.Timeseries
	meta := &ts.Meta
	err := s.db.QueryRowContext(ctx, `
		SELECT device_deployment_id, nws_id, wrcc_id, site_name,
			longitude, latitude, elevation, country_code, state_code, timezone
		FROM stations WHERE device_deployment_id = ?`, deviceDeploymentID,
	).Scan(
		&meta.DeviceDeploymentID, &meta.NWSID, &meta.WRCCID, &meta.SiteName,
		&meta.Longitude, &meta.Latitude, &meta.Elevation,
		&meta.CountryCode, &meta.StateCode, &meta.Timezone,
	)
	if err != nil {
		return domain.Timeseries{}, fmt.Errorf("load station %s: %w", deviceDeploymentID, err)
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT time_utc, datetime_lst, %s
		FROM records WHERE device_deployment_id = ?
		ORDER BY time_utc, rowid`,
		strings.Join(numericSQLColumns, ", ")), deviceDeploymentID,
	)
	if err != nil {
		return domain.Timeseries{}, fmt.Errorf("load records for %s: %w", deviceDeploymentID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rec     domain.Record
			timeUTC string
			vals    = make([]sql.NullFloat64, len(domain.NumericColumns))
		)
		dest := make([]any, 0, 2+len(vals))
		dest = append(dest, &timeUTC, &rec.DateTimeLST)
		for i := range vals {
			dest = append(dest, &vals[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return domain.Timeseries{}, fmt.Errorf("scan record for %s: %w", deviceDeploymentID, err)
		}
		t, err := time.Parse(time.RFC3339Nano, timeUTC)
		if err != nil {
			return domain.Timeseries{}, fmt.Errorf("parse stored time %q: %w", timeUTC, err)
		}
		rec.Time = t.UTC()
		for i, col := range domain.NumericColumns {
			if vals[i].Valid {
				v := vals[i].Float64
				*rec.Field(col) = &v
			}
		}
		ts.Records = append(ts.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return domain.Timeseries{}, fmt.Errorf("iterate records for %s: %w", deviceDeploymentID, err)
	}
	return ts, nil
}
