package wrcc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/raws-data-etl/internal/domain"
)

func type1(t *testing.T) Schema {
	t.Helper()
	for _, s := range Catalog() {
		if s.MonitorType == "WRCC_TYPE1" {
			return s
		}
	}
	t.Fatal("WRCC_TYPE1 missing from catalog")
	return Schema{}
}

func TestIdentifyToleratesSurroundingNoise(t *testing.T) {
	s := type1(t)

	// Real dumps arrive with CRLF line endings, trailing spaces on the
	// header lines, and blank lines around the station name.
	blob := "\r\n" +
		" Wenatchee Heights  Washington \r\n" +
		"\r\n" +
		s.Header[0] + "  \r\n" +
		s.Header[1] + " \r\n" +
		s.Header[2] + "\r\n"

	schema, err := Identify(blob)
	require.NoError(t, err)
	assert.Equal(t, "WRCC_TYPE1", schema.MonitorType)
}

func TestIdentifyPreservesTabs(t *testing.T) {
	s := type1(t)

	// Collapsing tabs to spaces changes schema identity and must not match.
	blob := syntheticBlob(Schema{Header: RawHeader{
		strings.ReplaceAll(s.Header[0], "\t", " "),
		s.Header[1],
		s.Header[2],
	}})

	_, err := Identify(blob)
	assert.ErrorIs(t, err, domain.ErrUnknownSchema)
}

func TestIdentifyUnknownHeader(t *testing.T) {
	blob := syntheticBlob(Schema{Header: RawHeader{
		": LST\t furlongs ",
		": Date/Time\t Distance",
		":YYMMDDhhmm\t        ",
	}})

	_, err := Identify(blob)
	assert.ErrorIs(t, err, domain.ErrUnknownSchema)
}

func TestIdentifyTruncatedBlob(t *testing.T) {
	_, err := Identify("Station Name\n: LST\t mm\n")
	assert.ErrorIs(t, err, domain.ErrUnknownSchema)

	_, err = Identify("")
	assert.ErrorIs(t, err, domain.ErrUnknownSchema)
}
