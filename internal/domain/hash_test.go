package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHashInput(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Time
		price float64
		want  string
	}{
		{"reference input", date(2005, time.May, 26), 10458.68, "2005-05-26-10458.68"},
		{"single decimal padded", date(2025, time.August, 18), 12345.6, "2025-08-18-12345.60"},
		{"integer price padded", date(2025, time.August, 18), 12000, "2025-08-18-12000.00"},
		{"extra decimals rounded", date(2025, time.August, 18), 12345.678, "2025-08-18-12345.68"},
		{"time of day dropped", time.Date(2005, time.May, 26, 13, 30, 0, 0, time.UTC), 10458.68, "2005-05-26-10458.68"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildHashInput(tt.date, tt.price))
		})
	}
}

func TestHashToOffsets(t *testing.T) {
	t.Run("reference vector", func(t *testing.T) {
		latFrac, lonFrac, err := HashToOffsets("2005-05-26-10458.68")
		require.NoError(t, err)

		assert.Equal(t, refLatDigits, latFrac.Digits())
		assert.Equal(t, refLonDigits, lonFrac.Digits())
		assert.InDelta(t, 0.85771326770700234438, latFrac.Float64(), 1e-11)
		assert.InDelta(t, 0.54454306955928210562, lonFrac.Float64(), 1e-11)
	})

	t.Run("halves are independent", func(t *testing.T) {
		aLat, aLon, err := HashToOffsets("2005-05-26-10458.68")
		require.NoError(t, err)
		bLat, bLon, err := HashToOffsets("2005-05-27-10458.68")
		require.NoError(t, err)

		assert.NotEqual(t, aLat, bLat)
		assert.NotEqual(t, aLon, bLon)
	})
}
