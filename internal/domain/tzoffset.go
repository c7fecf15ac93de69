package domain

// lstOffsetHours maps an IANA timezone name to the station's fixed
// local-standard-time offset from UTC, in signed hours. RAWS loggers run
// "winter time all year", so the standard (non-DST) offset applies to every
// observation regardless of date.
var lstOffsetHours = map[string]float64{
	"America/New_York":     -5,
	"America/Detroit":      -5,
	"America/Indianapolis": -5,
	"America/Chicago":      -6,
	"America/Menominee":    -6,
	"America/Denver":       -7,
	"America/Boise":        -7,
	"America/Phoenix":      -7,
	"America/Los_Angeles":  -8,
	"America/Anchorage":    -9,
	"America/Juneau":       -9,
	"America/Sitka":        -9,
	"America/Metlakatla":   -9,
	"America/Nome":         -9,
	"America/Yakutat":      -9,
	"America/Adak":         -10,
	"Pacific/Honolulu":     -10,
	"America/Puerto_Rico":  -4,
	"Pacific/Guam":         10,
	"Pacific/Pago_Pago":    -11,
	"UTC":                  0,
}

// UTCOffsetHours returns the fixed local-standard-time offset for an IANA
// zone name, or MissingTimezoneOffsetError if the zone is not in the table.
func UTCOffsetHours(zone string) (float64, error) {
	offset, ok := lstOffsetHours[zone]
	if !ok {
		return 0, &MissingTimezoneOffsetError{Zone: zone}
	}
	return offset, nil
}
