package domain

// DePrecipitate converts a cumulative precipitation counter into hourly
// increments. WRCC counters accumulate over the water year, FW13 counters
// over the day; the reset correction is the same for both, only the period
// differs, and that is the caller's concern.
//
// The result has the same length as the input. Element 0 is always nil
// (no prior value to difference against). A counter reset shows up as a
// negative first difference; the true increment at the reset instant is
// delta + previous, i.e. exactly the new absolute value. Nil operands
// propagate: arithmetic with a missing value yields a missing value,
// never zero.
func DePrecipitate(cumulative []*float64) []*float64 {
	hourly := make([]*float64, len(cumulative))
	for i := 1; i < len(cumulative); i++ {
		prev, cur := cumulative[i-1], cumulative[i]
		if prev == nil || cur == nil {
			continue
		}
		delta := *cur - *prev
		if delta < 0 {
			delta += *prev
		}
		v := delta
		hourly[i] = &v
	}
	return hourly
}

// DePrecipitateRecords rewrites the precipitation column of records in
// place, replacing the cumulative counter with hourly increments.
func DePrecipitateRecords(records []Record) {
	cumulative := make([]*float64, len(records))
	for i := range records {
		cumulative[i] = records[i].Precipitation
	}
	hourly := DePrecipitate(cumulative)
	for i := range records {
		records[i].Precipitation = hourly[i]
	}
}
