package domain

import (
	"log/slog"
	"slices"
	"time"
)

// SortDistinct sorts Records ascending by UTC time and removes rows that
// are exact duplicates across all fields. Duplicate timestamps with
// differing payloads are kept and logged at Warn level: overlapping sensor
// report cycles are a known benign source condition, so this never fails.
// Records is replaced wholesale; Meta is never touched. The operation is
// idempotent.
func (ts *Timeseries) SortDistinct(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	slices.SortStableFunc(ts.Records, func(a, b Record) int {
		return a.Time.Compare(b.Time)
	})

	// Exact duplicates always share a timestamp after the sort, but within
	// one timestamp they need not be adjacent (a differing payload can sit
	// between two identical rows), so each record is checked against every
	// kept record in its equal-timestamp run.
	distinct := make([]Record, 0, len(ts.Records))
	runStart := 0
	for _, r := range ts.Records {
		if n := len(distinct); n > 0 && !distinct[n-1].Time.Equal(r.Time) {
			runStart = n
		}
		if slices.ContainsFunc(distinct[runStart:], r.Equal) {
			continue
		}
		distinct = append(distinct, r)
	}

	for i := 1; i < len(distinct); i++ {
		if distinct[i].Time.Equal(distinct[i-1].Time) {
			logger.Warn("duplicate timestamp with differing payload",
				"station", ts.Meta.DeviceDeploymentID,
				"time", distinct[i].Time,
			)
		}
	}

	ts.Records = distinct
}

// FilterDate replaces Records with the rows whose UTC time falls in
// [start, end). Meta is never touched.
func (ts *Timeseries) FilterDate(start, end time.Time) {
	filtered := make([]Record, 0, len(ts.Records))
	for _, r := range ts.Records {
		if !r.Time.Before(start) && r.Time.Before(end) {
			filtered = append(filtered, r)
		}
	}
	ts.Records = filtered
}
