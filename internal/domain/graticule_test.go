package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraticule(t *testing.T) {
	t.Run("corners of the valid range", func(t *testing.T) {
		for _, c := range []struct{ lat, lon int }{
			{90, 179}, {-90, -179}, {0, 0}, {68, -30},
		} {
			g, err := NewGraticule(c.lat, c.lon)
			require.NoError(t, err)
			assert.Equal(t, c.lat, g.Lat)
			assert.Equal(t, c.lon, g.Lon)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := NewGraticule(91, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")

		_, err = NewGraticule(-91, 0)
		require.Error(t, err)

		_, err = NewGraticule(0, 180)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "longitude")

		_, err = NewGraticule(0, -180)
		require.Error(t, err)
	})
}

func TestGraticuleForPoint(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     Graticule
	}{
		{"positive point", 52.1, 13.9, Graticule{Lat: 52, Lon: 13}},
		{"negative point truncates toward zero", -1.2, -0.7, Graticule{Lat: -1, Lon: 0}},
		{"exact integers", 68.0, -30.0, Graticule{Lat: 68, Lon: -30}},
		{"west midwest point", 45.5, -93.2, Graticule{Lat: 45, Lon: -93}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := GraticuleForPoint(tt.lat, tt.lon)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g)
		})
	}

	t.Run("rejects non-finite and out-of-range points", func(t *testing.T) {
		_, err := GraticuleForPoint(math.NaN(), 0)
		require.Error(t, err)

		_, err = GraticuleForPoint(0, math.Inf(1))
		require.Error(t, err)

		_, err = GraticuleForPoint(95.5, 0)
		require.Error(t, err)
	})
}

func TestGraticuleCompare(t *testing.T) {
	a := Graticule{Lat: 10, Lon: 20}
	b := Graticule{Lat: 10, Lon: 30}
	c := Graticule{Lat: 20, Lon: 0}

	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(b)) // longitude breaks the tie
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, -1, a.Compare(c)) // latitude dominates
}

func TestGraticuleWest(t *testing.T) {
	assert.True(t, Graticule{Lon: -30}.West(), "the -30 boundary is west")
	assert.True(t, Graticule{Lon: -179}.West())
	assert.False(t, Graticule{Lon: -29}.West())
	assert.False(t, Graticule{Lon: 13}.West())
}

func TestGraticuleString(t *testing.T) {
	assert.Equal(t, "68,-30", Graticule{Lat: 68, Lon: -30}.String())
}
