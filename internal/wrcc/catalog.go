package wrcc

// RawHeader is the three ':'-prefixed header lines of a WRCC station export,
// stripped of leading and trailing spaces. Tabs are preserved: tab is the
// field delimiter, so it participates in schema identity.
type RawHeader [3]string

// ColumnType tags how a column's values are parsed.
type ColumnType int

const (
	// TypeCharacter marks the raw local-standard-time timestamp column,
	// which stays a string until the assembler resolves UTC.
	TypeCharacter ColumnType = iota
	// TypeNumeric marks every observation column.
	TypeNumeric
)

// Schema is one catalog entry: a known WRCC header layout and its mapping
// onto the canonical column vocabulary. RawNames, Canonical, and Types are
// positionally aligned and always the same length; column 0 is always the
// datetime column.
type Schema struct {
	MonitorType string
	Header      RawHeader
	RawNames    []string
	Canonical   []string
	Types       []ColumnType
}

// Known returns true for a matched catalog entry; the zero Schema (returned
// for unknown headers) reports false.
func (s Schema) Known() bool { return s.MonitorType != "" }

// Columns returns the number of data columns the schema describes.
func (s Schema) Columns() int { return len(s.Canonical) }

// catalog enumerates every known WRCC header layout. Entries are reference
// data fixed at compile time: different station hardware generations report
// different sensor sets, unit spellings, and label padding, and each
// combination observed in the wild gets one entry. Order matters only in
// that Identify returns the first exact match.
//
// Unlabeled spare columns (some loggers emit a trailing empty column) carry
// an empty canonical name here; Catalog() assigns them unique "_N"
// placeholders so positional parsing stays aligned.
var catalog = []Schema{
	{
		MonitorType: "WRCC_TYPE1",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \tBattery\tDir Max\tMx Gust\t Solar",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad.",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad."},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE2",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \t  %  \tvolts\t Deg \t m/s \t W/m2",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \t  Fuel \tBattery\tDir Max\tMx Gust\t Solar",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tMoistur\tVoltage\t  Gust \t Speed \t  Rad.",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Fuel Moistur", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad."},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "fuelMoisture", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE3",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Rel  \tBattery\tDir Max\tMx Gust\t Solar",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad.",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad."},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE4",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\t  %  \t  %  \tvolts\t Deg \t m/s \t W/m2",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Rel  \t  Fuel \tBattery\tDir Max\tMx Gust\t Solar",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \tHumidty\tMoistur\tVoltage\t  Gust \t Speed \t  Rad.",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty", "Fuel Moistur", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad."},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity", "fuelMoisture", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE5",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \tvolts\t  %  \t Deg \t m/s \t W/m2",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \tBattery\t  Fuel \tDir Max\tMx Gust\t Solar",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tVoltage\tMoistur\t  Gust \t Speed \t  Rad.",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Fuel Moistur", "Dir Max Gust", "Mx Gust Speed", "Solar Rad."},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "fuelMoisture", "maxGustDirection", "maxGustSpeed", "solarRadiation"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE6",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \tvolts\t Deg \t m/s",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \tBattery\tDir Max\tMx Gust",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tVoltage\t  Gust \t Speed",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE7",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\t  %  \tvolts\t Deg \t m/s",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Rel  \tBattery\tDir Max\tMx Gust",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \tHumidty\tVoltage\t  Gust \t Speed",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE8",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\t  %  \tvolts",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Rel  \tBattery",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \tHumidty\tVoltage",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty", "Battery Voltage"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity", "batteryVoltage"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE9",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\t  %",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Rel",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \tHumidty",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE10",
		Header: RawHeader{
			": LST\t mm \tDeg C\t  %  \t m/s \t Deg \t Deg \t m/s \tvolts\t W/m2",
			": Date/Time\t Precip\t Av Air\t  Rel  \t  Wind \t  Wind \tDir Max\tMx Gust\tBattery\t Solar",
			":YYMMDDhhmm\t       \t  Temp \tHumidty\t Speed \t Direc \t  Gust \t Speed \tVoltage\t  Rad.",
		},
		RawNames: []string{"Date/Time", "Precip", "Av Air Temp", "Rel Humidty", "Wind Speed", "Wind Direc", "Dir Max Gust", "Mx Gust Speed", "Battery Voltage", "Solar Rad."},
		Canonical: []string{"datetime", "precipitation", "temperature", "humidity", "windSpeed", "windDirection", "maxGustDirection", "maxGustSpeed", "batteryVoltage", "solarRadiation"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE11",
		Header: RawHeader{
			": LST\t mm \tDeg C\tDeg C\t  %  \t m/s \t Deg \t Deg \t m/s \tvolts\t W/m2",
			": Date/Time\t Precip\t Av Air\t  Fuel \t  Rel  \t  Wind \t  Wind \tDir Max\tMx Gust\tBattery\t Solar",
			":YYMMDDhhmm\t       \t  Temp \t  Temp \tHumidty\t Speed \t Direc \t  Gust \t Speed \tVoltage\t  Rad.",
		},
		RawNames: []string{"Date/Time", "Precip", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Wind Speed", "Wind Direc", "Dir Max Gust", "Mx Gust Speed", "Battery Voltage", "Solar Rad."},
		Canonical: []string{"datetime", "precipitation", "temperature", "fuelTemperature", "humidity", "windSpeed", "windDirection", "maxGustDirection", "maxGustSpeed", "batteryVoltage", "solarRadiation"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE12",
		Header: RawHeader{
			": LST\t mm \tDeg C\tDeg C\t  %  \t  %  \t m/s \t Deg \t Deg \t m/s \tvolts\t W/m2",
			": Date/Time\t Precip\t Av Air\t  Fuel \t  Fuel \t  Rel  \t  Wind \t  Wind \tDir Max\tMx Gust\tBattery\t Solar",
			":YYMMDDhhmm\t       \t  Temp \t  Temp \tMoistur\tHumidty\t Speed \t Direc \t  Gust \t Speed \tVoltage\t  Rad.",
		},
		RawNames: []string{"Date/Time", "Precip", "Av Air Temp", "Fuel Temp", "Fuel Moistur", "Rel Humidty", "Wind Speed", "Wind Direc", "Dir Max Gust", "Mx Gust Speed", "Battery Voltage", "Solar Rad."},
		Canonical: []string{"datetime", "precipitation", "temperature", "fuelTemperature", "fuelMoisture", "humidity", "windSpeed", "windDirection", "maxGustDirection", "maxGustSpeed", "batteryVoltage", "solarRadiation"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE13",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2\tDeg C",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \tBattery\tDir Max\tMx Gust\t Solar \t  Soil",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad. \t  Temp",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Soil Temp"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "soilTemperature"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE14",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2\tDeg C\t  %",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \tBattery\tDir Max\tMx Gust\t Solar \t  Soil \t  Soil",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad. \t  Temp \tMoistur",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Soil Temp", "Soil Moistur"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "soilTemperature", "soilMoisture"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE15",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2\tDeg C\t  %",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Rel  \tBattery\tDir Max\tMx Gust\t Solar \t  Soil \t  Soil",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad. \t  Temp \tMoistur",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Soil Temp", "Soil Moistur"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "soilTemperature", "soilMoisture"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE16",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2\t mb",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \tBattery\tDir Max\tMx Gust\t Solar \t Barom",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad. \t Press",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Barom Press"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "barometricPressure"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE17",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2\t mb",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Rel  \tBattery\tDir Max\tMx Gust\t Solar \t Barom",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad. \t Press",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Barom Press"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "barometricPressure"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE18",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2\t cm",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \tBattery\tDir Max\tMx Gust\t Solar \t  Snow",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad. \t Depth",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Snow Depth"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "snowDepth"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE19",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2\t cm",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Rel  \tBattery\tDir Max\tMx Gust\t Solar \t  Snow",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad. \t Depth",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Snow Depth"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "snowDepth"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE20",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2\t cm  \t mb",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \tBattery\tDir Max\tMx Gust\t Solar \t  Snow \t Barom",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad. \t Depth \t Press",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Snow Depth", "Barom Press"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "snowDepth", "barometricPressure"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE21",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2\t km",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \tBattery\tDir Max\tMx Gust\t Solar \t Visib",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad. \t ility",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Visib ility"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "visibility"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE22",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2\t  %",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \tBattery\tDir Max\tMx Gust\t Solar \t Cloud",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad. \t Cover",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Cloud Cover"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "cloudCover"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE23",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2\t km  \t  %",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \tBattery\tDir Max\tMx Gust\t Solar \t Visib \t Cloud",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad. \t ility \t Cover",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Visib ility", "Cloud Cover"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "visibility", "cloudCover"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE24",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2\t",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \tBattery\tDir Max\tMx Gust\t Solar \t",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad. \t",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", ""},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", ""},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE25",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\t  %  \tvolts\t Deg \t m/s \t W/m2\t",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Rel  \tBattery\tDir Max\tMx Gust\t Solar \t",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \tHumidty\tVoltage\t  Gust \t Speed \t  Rad. \t",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", ""},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", ""},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE26",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\tdeg C\t%\tvolts\tdeg\tm/s\twatts/m2",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Fuel  \t Rel   \tBattery\tDir Max\tMx Gust\t Solar",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \t Temp  \tHumidty\tVoltage\t Gust  \t Speed \t Rad.",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad."},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE27",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\tdeg C\t%\t  %  \tvolts\tdeg\tm/s\twatts/m2",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Fuel  \t Rel   \t  Fuel \tBattery\tDir Max\tMx Gust\t Solar",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \t Temp  \tHumidty\tMoistur\tVoltage\t Gust  \t Speed \t Rad.",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Fuel Moistur", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad."},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "fuelMoisture", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE28",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\t%\tvolts\tdeg\tm/s\twatts/m2",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Rel   \tBattery\tDir Max\tMx Gust\t Solar",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \tHumidty\tVoltage\t Gust  \t Speed \t Rad.",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad."},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE29",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\t%\t  %  \tvolts\tdeg\tm/s\twatts/m2",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Rel   \t  Fuel \tBattery\tDir Max\tMx Gust\t Solar",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \tHumidty\tMoistur\tVoltage\t Gust  \t Speed \t Rad.",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty", "Fuel Moistur", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad."},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity", "fuelMoisture", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE30",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\tdeg C\t%\tvolts\tdeg\tm/s",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Fuel  \t Rel   \tBattery\tDir Max\tMx Gust",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \t Temp  \tHumidty\tVoltage\t Gust  \t Speed",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE31",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\t%\tvolts\tdeg\tm/s",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Rel   \tBattery\tDir Max\tMx Gust",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \tHumidty\tVoltage\t Gust  \t Speed",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE32",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\t%\tvolts",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Rel   \tBattery",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \tHumidty\tVoltage",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty", "Battery Voltage"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity", "batteryVoltage"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE33",
		Header: RawHeader{
			":  LST \tmm\tdeg C\t%\tm/s\tdeg\tdeg\tm/s\tvolts\twatts/m2",
			": Date/Time\tPrecip \tAv Air \t Rel   \t Wind  \t Wind  \tDir Max\tMx Gust\tBattery\t Solar",
			":YYMMDDhhmm\t       \t Temp  \tHumidty\t Speed \t Direc \t Gust  \t Speed \tVoltage\t Rad.",
		},
		RawNames: []string{"Date/Time", "Precip", "Av Air Temp", "Rel Humidty", "Wind Speed", "Wind Direc", "Dir Max Gust", "Mx Gust Speed", "Battery Voltage", "Solar Rad."},
		Canonical: []string{"datetime", "precipitation", "temperature", "humidity", "windSpeed", "windDirection", "maxGustDirection", "maxGustSpeed", "batteryVoltage", "solarRadiation"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE34",
		Header: RawHeader{
			":  LST \tmm\tdeg C\tdeg C\t%\tm/s\tdeg\tdeg\tm/s\tvolts\twatts/m2",
			": Date/Time\tPrecip \tAv Air \t Fuel  \t Rel   \t Wind  \t Wind  \tDir Max\tMx Gust\tBattery\t Solar",
			":YYMMDDhhmm\t       \t Temp  \t Temp  \tHumidty\t Speed \t Direc \t Gust  \t Speed \tVoltage\t Rad.",
		},
		RawNames: []string{"Date/Time", "Precip", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Wind Speed", "Wind Direc", "Dir Max Gust", "Mx Gust Speed", "Battery Voltage", "Solar Rad."},
		Canonical: []string{"datetime", "precipitation", "temperature", "fuelTemperature", "humidity", "windSpeed", "windDirection", "maxGustDirection", "maxGustSpeed", "batteryVoltage", "solarRadiation"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE35",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\tdeg C\t%\tvolts\tdeg\tm/s\twatts/m2\tDeg C",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Fuel  \t Rel   \tBattery\tDir Max\tMx Gust\t Solar \t  Soil",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \t Temp  \tHumidty\tVoltage\t Gust  \t Speed \t Rad.  \t  Temp",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Soil Temp"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "soilTemperature"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE36",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\tdeg C\t%\tvolts\tdeg\tm/s\twatts/m2\tDeg C\t  %",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Fuel  \t Rel   \tBattery\tDir Max\tMx Gust\t Solar \t  Soil \t  Soil",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \t Temp  \tHumidty\tVoltage\t Gust  \t Speed \t Rad.  \t  Temp \tMoistur",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Soil Temp", "Soil Moistur"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "soilTemperature", "soilMoisture"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE37",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\tdeg C\t%\tvolts\tdeg\tm/s\twatts/m2\t mb",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Fuel  \t Rel   \tBattery\tDir Max\tMx Gust\t Solar \t Barom",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \t Temp  \tHumidty\tVoltage\t Gust  \t Speed \t Rad.  \t Press",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Barom Press"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "barometricPressure"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE38",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\t%\tvolts\tdeg\tm/s\twatts/m2\t mb",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Rel   \tBattery\tDir Max\tMx Gust\t Solar \t Barom",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \tHumidty\tVoltage\t Gust  \t Speed \t Rad.  \t Press",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Barom Press"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "barometricPressure"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE39",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\tdeg C\t%\tvolts\tdeg\tm/s\twatts/m2\t cm",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Fuel  \t Rel   \tBattery\tDir Max\tMx Gust\t Solar \t  Snow",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \t Temp  \tHumidty\tVoltage\t Gust  \t Speed \t Rad.  \t Depth",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Snow Depth"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "snowDepth"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE40",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\tdeg C\t%\tvolts\tdeg\tm/s\twatts/m2\t km",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Fuel  \t Rel   \tBattery\tDir Max\tMx Gust\t Solar \t Visib",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \t Temp  \tHumidty\tVoltage\t Gust  \t Speed \t Rad.  \t ility",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Visib ility"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "visibility"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE41",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\tdeg C\t%\tvolts\tdeg\tm/s\twatts/m2\t  %",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Fuel  \t Rel   \tBattery\tDir Max\tMx Gust\t Solar \t Cloud",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \t Temp  \tHumidty\tVoltage\t Gust  \t Speed \t Rad.  \t Cover",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Cloud Cover"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "cloudCover"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE42",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\tdeg C\t%\tvolts\tdeg\tm/s\twatts/m2\t",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Fuel  \t Rel   \tBattery\tDir Max\tMx Gust\t Solar \t",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \t Temp  \tHumidty\tVoltage\t Gust  \t Speed \t Rad.  \t",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", ""},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", ""},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE43",
		Header: RawHeader{
			":  LST \tmm\tm/s\tdeg\tdeg C\t%\tvolts\tdeg\tm/s\twatts/m2\t",
			": Date/Time\tPrecip \t Wind  \t Wind  \tAv Air \t Rel   \tBattery\tDir Max\tMx Gust\t Solar \t",
			":YYMMDDhhmm\t       \t Speed \t Direc \t Temp  \tHumidty\tVoltage\t Gust  \t Speed \t Rad.  \t",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Rel Humidty", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", ""},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "humidity", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", ""},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE44",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \t  %  \tvolts\t Deg \t m/s \t W/m2\tDeg C\t  %  \t mb",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \t  Fuel \tBattery\tDir Max\tMx Gust\t Solar \t  Soil \t  Soil \t Barom",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tMoistur\tVoltage\t  Gust \t Speed \t  Rad. \t  Temp \tMoistur\t Press",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Fuel Moistur", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Soil Temp", "Soil Moistur", "Barom Press"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "fuelMoisture", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "soilTemperature", "soilMoisture", "barometricPressure"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE45",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \t  %  \tvolts\t Deg \t m/s \t W/m2\t cm  \t km  \t  %",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \t  Fuel \tBattery\tDir Max\tMx Gust\t Solar \t  Snow \t Visib \t Cloud",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tMoistur\tVoltage\t  Gust \t Speed \t  Rad. \t Depth \t ility \t Cover",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Fuel Moistur", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Snow Depth", "Visib ility", "Cloud Cover"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "fuelMoisture", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "snowDepth", "visibility", "cloudCover"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
	{
		MonitorType: "WRCC_TYPE46",
		Header: RawHeader{
			": LST\t mm \t m/s \t Deg \tDeg C\tDeg C\t  %  \t  %  \tvolts\t Deg \t m/s \t W/m2\tDeg C\t  %  \t mb  \t cm",
			": Date/Time\t Precip\t  Wind \t  Wind \t Av Air\t  Fuel \t  Rel  \t  Fuel \tBattery\tDir Max\tMx Gust\t Solar \t  Soil \t  Soil \t Barom \t  Snow",
			":YYMMDDhhmm\t       \t Speed \t Direc \t  Temp \t  Temp \tHumidty\tMoistur\tVoltage\t  Gust \t Speed \t  Rad. \t  Temp \tMoistur\t Press \t Depth",
		},
		RawNames: []string{"Date/Time", "Precip", "Wind Speed", "Wind Direc", "Av Air Temp", "Fuel Temp", "Rel Humidty", "Fuel Moistur", "Battery Voltage", "Dir Max Gust", "Mx Gust Speed", "Solar Rad.", "Soil Temp", "Soil Moistur", "Barom Press", "Snow Depth"},
		Canonical: []string{"datetime", "precipitation", "windSpeed", "windDirection", "temperature", "fuelTemperature", "humidity", "fuelMoisture", "batteryVoltage", "maxGustDirection", "maxGustSpeed", "solarRadiation", "soilTemperature", "soilMoisture", "barometricPressure", "snowDepth"},
		Types: []ColumnType{TypeCharacter, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric, TypeNumeric},
	},
}

// Catalog returns the schema catalog with placeholder names assigned to
// unlabeled columns. The returned slice is shared; callers must not mutate.
func Catalog() []Schema {
	return catalog
}

func init() {
	for i := range catalog {
		s := &catalog[i]
		if len(s.RawNames) != len(s.Canonical) || len(s.Canonical) != len(s.Types) {
			panic("wrcc: misaligned catalog entry " + s.MonitorType)
		}
		n := 0
		for j, name := range s.Canonical {
			if name == "" {
				n++
				s.Canonical[j] = placeholderName(n)
			}
		}
	}
}
