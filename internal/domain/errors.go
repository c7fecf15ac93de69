package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownSchema means a WRCC header triple matched no catalog entry.
// Fatal to that station's request; never downgraded to a best-guess schema.
var ErrUnknownSchema = errors.New("unknown WRCC schema")

// ErrEmptySource means the downloader returned no content: the station has
// no data for the requested window. Expected during batch runs; callers
// skip the station rather than abort.
var ErrEmptySource = errors.New("source returned no data")

// UnsupportedUnitError reports a header unit token that does not match the
// metric unit the column contractually carries.
type UnsupportedUnitError struct {
	Column string
	Unit   string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unhandled unit %q for column %q", e.Unit, e.Column)
}

// MissingTimezoneOffsetError reports a station timezone with no entry in
// the UTC-offset table. The assembler cannot proceed without the offset.
type MissingTimezoneOffsetError struct {
	Zone string
}

func (e *MissingTimezoneOffsetError) Error() string {
	return fmt.Sprintf("no UTC offset known for timezone %q", e.Zone)
}

// MalformedTimestampError reports a local-standard-time string that could
// not be parsed.
type MalformedTimestampError struct {
	Value string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("malformed local-standard-time value %q", e.Value)
}
