package domain

import "math"

// FW13 delivers English units; these convert to the canonical metric set.

// FahrenheitToCelsius converts a temperature in °F to °C.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// MphToMetersPerSecond converts a speed in miles per hour to m/s.
func MphToMetersPerSecond(mph float64) float64 {
	return mph * 0.44704
}

// InchesToMillimeters converts a length in inches to mm.
func InchesToMillimeters(in float64) float64 {
	return in * 25.4
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

// columnDecimals is the documented significant-figure precision per
// canonical column, applied after unit conversion to suppress
// floating-point noise.
var columnDecimals = map[string]int{
	ColPrecipitation:      2,
	ColWindSpeed:          2,
	ColWindDirection:      0,
	ColTemperature:        1,
	ColFuelTemperature:    1,
	ColHumidity:           0,
	ColBatteryVoltage:     2,
	ColFuelMoisture:       0,
	ColMaxGustDirection:   0,
	ColMaxGustSpeed:       2,
	ColSolarRadiation:     0,
	ColSoilTemperature:    1,
	ColSoilMoisture:       0,
	ColBarometricPressure: 1,
	ColSnowDepth:          1,
	ColVisibility:         1,
	ColCloudCover:         0,
}

// roundRecord rounds every numeric field in place to its column precision.
func roundRecord(r *Record) {
	for col, decimals := range columnDecimals {
		slot := r.Field(col)
		if slot == nil || *slot == nil {
			continue
		}
		v := RoundTo(**slot, decimals)
		*slot = &v
	}
}
