package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDePrecipitate(t *testing.T) {
	t.Run("steady accumulation", func(t *testing.T) {
		hourly := DePrecipitate(ptrs(10, 10, 12.5, 12.5, 15))

		require.Len(t, hourly, 5)
		assert.Nil(t, hourly[0])
		assert.Equal(t, 0.0, *hourly[1])
		assert.Equal(t, 2.5, *hourly[2])
		assert.Equal(t, 0.0, *hourly[3])
		assert.Equal(t, 2.5, *hourly[4])
	})

	t.Run("water-year reset", func(t *testing.T) {
		// Counter drops from 150 to 3 at the reset; the true increment at
		// the reset instant is exactly the new absolute value.
		c := ptrs(140, 150, 3, 4)
		hourly := DePrecipitate(c)

		assert.Equal(t, 10.0, *hourly[1])
		assert.Equal(t, 3.0, *hourly[2])
		assert.Equal(t, 1.0, *hourly[3])
	})

	t.Run("reset invariant holds for every position", func(t *testing.T) {
		c := ptrs(5, 20, 100, 2, 7, 7.5)
		hourly := DePrecipitate(c)
		for i := 1; i < len(c); i++ {
			if *c[i] < *c[i-1] {
				assert.Equal(t, *c[i], *hourly[i], "reset at %d", i)
			} else {
				assert.Equal(t, *c[i]-*c[i-1], *hourly[i], "delta at %d", i)
			}
		}
	})

	t.Run("nulls propagate", func(t *testing.T) {
		c := []*float64{Float(10), nil, Float(14), Float(15)}
		hourly := DePrecipitate(c)

		assert.Nil(t, hourly[0])
		assert.Nil(t, hourly[1], "nil current yields nil")
		assert.Nil(t, hourly[2], "nil previous yields nil, never zero")
		assert.Equal(t, 1.0, *hourly[3])
	})

	t.Run("short inputs", func(t *testing.T) {
		assert.Empty(t, DePrecipitate(nil))
		single := DePrecipitate(ptrs(4))
		require.Len(t, single, 1)
		assert.Nil(t, single[0])
	})
}

func TestDePrecipitateRecords(t *testing.T) {
	records := []Record{
		{DateTimeLST: "2201010100", Precipitation: Float(100)},
		{DateTimeLST: "2201010200", Precipitation: Float(101.5)},
		{DateTimeLST: "2201010300", Precipitation: Float(0.5)},
	}

	DePrecipitateRecords(records)

	assert.Nil(t, records[0].Precipitation)
	assert.Equal(t, 1.5, *records[1].Precipitation)
	assert.Equal(t, 0.5, *records[2].Precipitation)
}

func ptrs(vs ...float64) []*float64 {
	out := make([]*float64, len(vs))
	for i, v := range vs {
		out[i] = Float(v)
	}
	return out
}
