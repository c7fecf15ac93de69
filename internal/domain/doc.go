// Package domain models Remote Automatic Weather Station (RAWS) observation
// data harvested from two government archives.
//
// # Data Sources
//
// WRCC: the Western Regional Climate Center serves hourly observations as
// tab-delimited ASCII. The first line is a free-text station/state name;
// the next three lines are ':'-prefixed header lines (units, then column
// labels wrapped across two lines). Which columns appear, in what order and
// with which unit spellings, depends on the station's hardware generation;
// the internal/wrcc package matches the header against a fixed catalog of
// known layouts. Exports requested with units=m deliver metric values.
//
// FW13: the FAMWEB archive serves historical observations in the NWCG
// fixed-width FW13 format. Its column layout is static and documented, so
// parsing is a byte-offset lookup (internal/fw13). FW13 values are English
// units and are converted to metric at parse time.
//
// # Conventions
//
// Timestamps:
//
//	WRCC reports local standard time as YYMMDDhhmm (two-digit year);
//	FW13 reports YYYYMMDD and hhmm separately, combined to YYYYMMDDhhmm.
//	Local standard time is "winter time all year": a fixed UTC offset with
//	no daylight-saving adjustment. No IANA zone expresses that, so the
//	assembler parses the string as if it were UTC and then subtracts the
//	station's fixed offset to get the true UTC instant.
//
// Missing values:
//
//	-9999 is the sentinel for a missing observation. It is replaced with a
//	nil value during parsing and never reaches downstream code.
//
// Precipitation:
//
//	Both sources report cumulative counters rather than hourly amounts:
//	WRCC accumulates over the water year, FW13 over the day. The counter
//	resets discontinuously; DePrecipitate reconstructs hourly increments
//	from first differences, correcting the reset step.
//
// Canonical columns:
//
//	Every source-specific column name is mapped onto one vocabulary
//	(datetime, precipitation, windSpeed, windDirection, temperature,
//	fuelTemperature, humidity, batteryVoltage, fuelMoisture,
//	maxGustDirection, maxGustSpeed, solarRadiation, plus the rarer soil,
//	pressure, snow, visibility and cloud columns). A Record always carries
//	the full vocabulary; columns a schema never reports stay nil, which
//	lets downstream code treat all layouts uniformly.
package domain
