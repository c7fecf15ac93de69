package domain

import "time"

// Canonical column names. Every source-specific raw column name is mapped
// onto exactly one of these.
const (
	ColDatetime           = "datetime"
	ColPrecipitation      = "precipitation"
	ColWindSpeed          = "windSpeed"
	ColWindDirection      = "windDirection"
	ColTemperature        = "temperature"
	ColFuelTemperature    = "fuelTemperature"
	ColHumidity           = "humidity"
	ColBatteryVoltage     = "batteryVoltage"
	ColFuelMoisture       = "fuelMoisture"
	ColMaxGustDirection   = "maxGustDirection"
	ColMaxGustSpeed       = "maxGustSpeed"
	ColSolarRadiation     = "solarRadiation"
	ColSoilTemperature    = "soilTemperature"
	ColSoilMoisture       = "soilMoisture"
	ColBarometricPressure = "barometricPressure"
	ColSnowDepth          = "snowDepth"
	ColVisibility         = "visibility"
	ColCloudCover         = "cloudCover"
)

// NumericColumns lists every canonical observation column, in canonical
// order. ColDatetime is deliberately absent: it is a character column.
var NumericColumns = []string{
	ColPrecipitation,
	ColWindSpeed,
	ColWindDirection,
	ColTemperature,
	ColFuelTemperature,
	ColHumidity,
	ColBatteryVoltage,
	ColFuelMoisture,
	ColMaxGustDirection,
	ColMaxGustSpeed,
	ColSolarRadiation,
	ColSoilTemperature,
	ColSoilMoisture,
	ColBarometricPressure,
	ColSnowDepth,
	ColVisibility,
	ColCloudCover,
}

// Record is one hourly observation in canonical shape. Numeric fields are
// nil when the source did not report the column or reported the missing
// sentinel. DateTimeLST is the raw local-standard-time string as reported
// (YYMMDDhhmm or YYYYMMDDhhmm); Time is the UTC instant resolved by
// Assemble and is zero until then.
type Record struct {
	DateTimeLST string    `json:"datetime_lst"`
	Time        time.Time `json:"time,omitzero"`

	Precipitation      *float64 `json:"precipitation,omitempty"`
	WindSpeed          *float64 `json:"wind_speed,omitempty"`
	WindDirection      *float64 `json:"wind_direction,omitempty"`
	Temperature        *float64 `json:"temperature,omitempty"`
	FuelTemperature    *float64 `json:"fuel_temperature,omitempty"`
	Humidity           *float64 `json:"humidity,omitempty"`
	BatteryVoltage     *float64 `json:"battery_voltage,omitempty"`
	FuelMoisture       *float64 `json:"fuel_moisture,omitempty"`
	MaxGustDirection   *float64 `json:"max_gust_direction,omitempty"`
	MaxGustSpeed       *float64 `json:"max_gust_speed,omitempty"`
	SolarRadiation     *float64 `json:"solar_radiation,omitempty"`
	SoilTemperature    *float64 `json:"soil_temperature,omitempty"`
	SoilMoisture       *float64 `json:"soil_moisture,omitempty"`
	BarometricPressure *float64 `json:"barometric_pressure,omitempty"`
	SnowDepth          *float64 `json:"snow_depth,omitempty"`
	Visibility         *float64 `json:"visibility,omitempty"`
	CloudCover         *float64 `json:"cloud_cover,omitempty"`
}

// Field returns a pointer to the named canonical column's value slot, or
// nil for an unknown name. Used by parsers to assign columns positionally.
func (r *Record) Field(name string) **float64 {
	switch name {
	case ColPrecipitation:
		return &r.Precipitation
	case ColWindSpeed:
		return &r.WindSpeed
	case ColWindDirection:
		return &r.WindDirection
	case ColTemperature:
		return &r.Temperature
	case ColFuelTemperature:
		return &r.FuelTemperature
	case ColHumidity:
		return &r.Humidity
	case ColBatteryVoltage:
		return &r.BatteryVoltage
	case ColFuelMoisture:
		return &r.FuelMoisture
	case ColMaxGustDirection:
		return &r.MaxGustDirection
	case ColMaxGustSpeed:
		return &r.MaxGustSpeed
	case ColSolarRadiation:
		return &r.SolarRadiation
	case ColSoilTemperature:
		return &r.SoilTemperature
	case ColSoilMoisture:
		return &r.SoilMoisture
	case ColBarometricPressure:
		return &r.BarometricPressure
	case ColSnowDepth:
		return &r.SnowDepth
	case ColVisibility:
		return &r.Visibility
	case ColCloudCover:
		return &r.CloudCover
	default:
		return nil
	}
}

// Value returns the named column's value, or nil if unset or unknown.
func (r *Record) Value(name string) *float64 {
	slot := r.Field(name)
	if slot == nil {
		return nil
	}
	return *slot
}

// Equal reports whether two records are identical across all fields.
func (r Record) Equal(o Record) bool {
	if r.DateTimeLST != o.DateTimeLST || !r.Time.Equal(o.Time) {
		return false
	}
	for _, col := range NumericColumns {
		if !floatPtrEqual(r.Value(col), o.Value(col)) {
			return false
		}
	}
	return true
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Float returns a pointer to v. Convenience for literals in callers and tests.
func Float(v float64) *float64 { return &v }

// StationMetadata describes one physical station. Produced by the metadata
// harvesting side; consumed read-only by the assembler and the store.
type StationMetadata struct {
	DeviceDeploymentID string  `json:"device_deployment_id"`
	NWSID              string  `json:"nws_id,omitempty"`
	WRCCID             string  `json:"wrcc_id,omitempty"`
	SiteName           string  `json:"site_name"`
	Longitude          float64 `json:"longitude"`
	Latitude           float64 `json:"latitude"`
	Elevation          float64 `json:"elevation"`
	CountryCode        string  `json:"country_code"`
	StateCode          string  `json:"state_code"`
	Timezone           string  `json:"timezone"` // IANA zone name, e.g. "America/Los_Angeles"
}

// Timeseries pairs a single station's metadata with its ordered records.
// Invariants: Records is sorted ascending by Time with exact duplicates
// removed, and exactly one Meta describes the whole object. Multi-station
// results are []Timeseries, never one Timeseries with mixed stations.
type Timeseries struct {
	Meta    StationMetadata `json:"meta"`
	Records []Record        `json:"records"`
}
