package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Digest halves of md5("2005-05-26-10458.68"), the algorithm's published
// reference input, and their exact 20-digit decimal expansions.
const (
	refLatHex    = "db9318c2259923d0"
	refLonHex    = "8b672cb305440f97"
	refLatDigits = "85771326770700234438"
	refLonDigits = "54454306955928210562"
)

func TestDecodeHexFraction(t *testing.T) {
	t.Run("all zeros decodes to exactly zero", func(t *testing.T) {
		f, err := DecodeHexFraction("0000000000000000")
		require.NoError(t, err)
		assert.Equal(t, 0.0, f.Float64())
		assert.Equal(t, "00000000000000000000", f.Digits())
	})

	t.Run("all ones stays strictly below one", func(t *testing.T) {
		f, err := DecodeHexFraction("ffffffffffffffff")
		require.NoError(t, err)
		assert.Equal(t, "99999999999999999994", f.Digits())
		assert.True(t, f.Decimal().LessThan(decimal.NewFromInt(1)))
	})

	t.Run("reference vector", func(t *testing.T) {
		lat, err := DecodeHexFraction(refLatHex)
		require.NoError(t, err)
		lon, err := DecodeHexFraction(refLonHex)
		require.NoError(t, err)

		assert.Equal(t, refLatDigits, lat.Digits())
		assert.Equal(t, refLonDigits, lon.Digits())
		assert.InDelta(t, 0.85771326770700234438, lat.Float64(), 1e-11)
		assert.InDelta(t, 0.54454306955928210562, lon.Float64(), 1e-11)
	})

	t.Run("case insensitive", func(t *testing.T) {
		lower, err := DecodeHexFraction("db9318c2259923d0")
		require.NoError(t, err)
		upper, err := DecodeHexFraction("DB9318C2259923D0")
		require.NoError(t, err)
		assert.Equal(t, lower, upper)
	})
}

func TestDecodeHexFraction_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "db9318c2259923d"},
		{"too long", "db9318c2259923d00"},
		{"non-hex character", "db9318c2259923dg"},
		{"prefixed", "0xdb9318c2259923"},
		{"signed", "-b9318c2259923d0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeHexFraction(tt.input)
			require.Error(t, err)

			var hexErr *InvalidHexError
			require.True(t, errors.As(err, &hexErr))
			assert.Equal(t, tt.input, hexErr.Input)
		})
	}
}

func TestFractionDecimal_IsExact(t *testing.T) {
	// 0x8000000000000000 / 2^64 is exactly one half.
	f, err := DecodeHexFraction("8000000000000000")
	require.NoError(t, err)
	assert.True(t, f.Decimal().Equal(decimal.RequireFromString("0.5")))
	assert.Equal(t, 0.5, f.Float64())
	assert.Equal(t, "50000000000000000000", f.Digits())
}
