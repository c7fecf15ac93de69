// Package wrcc identifies and parses the WRCC tab-delimited station export
// format. WRCC header layouts vary across station hardware generations; the
// schema catalog enumerates every known layout and Identify matches an
// incoming blob against it by exact header equality. Exact match is
// deliberate: header lines encode unit strings and padding that differ
// subtly between hardware revisions, and a heuristic match that silently
// swapped, say, wind direction and gust direction would be far worse than
// an explicit failure.
package wrcc

import (
	"strings"

	"github.com/couchcryptid/raws-data-etl/internal/domain"
)

// splitBlob splits a raw export into lines stripped of leading/trailing
// spaces. Tabs are the field delimiter and must survive, so only spaces
// and carriage returns are trimmed.
func splitBlob(blob string) []string {
	lines := strings.Split(blob, "\n")
	for i, line := range lines {
		lines[i] = strings.Trim(line, " \r")
	}
	return lines
}

// header returns the blob's three header lines: line 0 is the free-text
// station/state name (consumed and discarded), lines 1-3 are the unit line
// and the two label lines. Returns false if the blob is too short.
func header(lines []string) (RawHeader, bool) {
	nonBlank := make([]string, 0, 4)
	for _, line := range lines {
		if line == "" {
			continue
		}
		nonBlank = append(nonBlank, line)
		if len(nonBlank) == 4 {
			return RawHeader{nonBlank[1], nonBlank[2], nonBlank[3]}, true
		}
	}
	return RawHeader{}, false
}

// Identify matches a raw WRCC export against the schema catalog, returning
// the first entry whose header triple equals the blob's exactly. An
// unmatched header is terminal: the caller gets ErrUnknownSchema and must
// not attempt partial or best-effort parsing.
func Identify(blob string) (Schema, error) {
	h, ok := header(splitBlob(blob))
	if !ok {
		return Schema{}, domain.ErrUnknownSchema
	}
	for _, s := range Catalog() {
		if s.Header == h {
			return s, nil
		}
	}
	return Schema{}, domain.ErrUnknownSchema
}
