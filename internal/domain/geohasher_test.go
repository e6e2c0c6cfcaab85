package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingProvider returns the same error on every call.
type failingProvider struct {
	err error
}

func (p failingProvider) GetPrice(context.Context, time.Time) (float64, error) {
	return 0, p.err
}

func TestNewGeohasher(t *testing.T) {
	provider := NewStaticProvider(nil)

	t.Run("valid", func(t *testing.T) {
		h, err := NewGeohasher(68, -30, provider)
		require.NoError(t, err)
		assert.Equal(t, Graticule{Lat: 68, Lon: -30}, h.Graticule())
	})

	t.Run("invalid graticule", func(t *testing.T) {
		_, err := NewGeohasher(91, 0, provider)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewGeohasher(68, -30, nil)
		assert.ErrorIs(t, err, ErrNilProvider)
	})
}

func TestNewGlobalGeohasher(t *testing.T) {
	_, err := NewGlobalGeohasher(nil)
	assert.ErrorIs(t, err, ErrNilProvider)

	h, err := NewGlobalGeohasher(NewStaticProvider(nil))
	require.NoError(t, err)
	assert.NotNil(t, h)
}

func TestGeohasherHash_ReferenceVector(t *testing.T) {
	provider := NewStaticProvider(map[string]float64{"2005-05-26": 10458.68})
	h, err := NewGeohasher(68, -30, provider)
	require.NoError(t, err)

	res, err := h.Hash(context.Background(), date(2005, time.May, 26))
	require.NoError(t, err)

	assert.InDelta(t, 68.857713, res.Latitude, 5e-6)
	assert.InDelta(t, -30.544544, res.Longitude, 5e-6)
	assert.Equal(t, date(2005, time.May, 26), res.UsedDowDate)
	assert.Equal(t, date(2005, time.May, 26), res.UsedDate)
}

func TestGeohasherHash_ThirtyWestRule(t *testing.T) {
	provider := NewStaticProvider(map[string]float64{
		"2012-05-18": 12442.49,
		"2012-05-21": 12981.20,
		"2012-05-22": 12504.48,
	})

	t.Run("east uses previous trading day", func(t *testing.T) {
		berlin, err := NewGeohasher(52, 13, provider)
		require.NoError(t, err)

		res, err := berlin.Hash(context.Background(), date(2012, time.May, 22))
		require.NoError(t, err)

		assert.Equal(t, date(2012, time.May, 21), res.UsedDowDate)
		assert.Equal(t, 52.45854378033757, res.Latitude)
		assert.Equal(t, 13.586915192861314, res.Longitude)
	})

	t.Run("east monday reaches back to friday", func(t *testing.T) {
		berlin, err := NewGeohasher(52, 13, provider)
		require.NoError(t, err)

		res, err := berlin.Hash(context.Background(), date(2012, time.May, 21))
		require.NoError(t, err)

		assert.Equal(t, date(2012, time.May, 18), res.UsedDowDate)
		assert.Equal(t, 52.925628684225224, res.Latitude)
		assert.Equal(t, 13.212670182974273, res.Longitude)
	})

	t.Run("west uses same day", func(t *testing.T) {
		minneapolis, err := NewGeohasher(45, -93, provider)
		require.NoError(t, err)

		res, err := minneapolis.Hash(context.Background(), date(2012, time.May, 22))
		require.NoError(t, err)

		assert.Equal(t, date(2012, time.May, 22), res.UsedDowDate)
		assert.Equal(t, 45.9836470491191, res.Latitude)
		assert.Equal(t, -93.42824286908632, res.Longitude)
	})
}

func TestGeohasherHash_ProviderFailure(t *testing.T) {
	t.Run("unmapped date", func(t *testing.T) {
		h, err := NewGeohasher(68, -30, NewStaticProvider(nil))
		require.NoError(t, err)

		res, err := h.Hash(context.Background(), date(2005, time.May, 26))
		require.Error(t, err)

		var unavailable *PriceUnavailableError
		assert.True(t, errors.As(err, &unavailable))
		assert.Equal(t, Result{}, res, "no partial result on failure")
	})

	t.Run("provider error surfaces unchanged", func(t *testing.T) {
		cause := errors.New("source exploded")
		h, err := NewGeohasher(68, -30, failingProvider{err: cause})
		require.NoError(t, err)

		_, err = h.Hash(context.Background(), date(2005, time.May, 26))
		assert.Equal(t, cause, err)
	})
}

func TestGlobalGeohasherHash(t *testing.T) {
	t.Run("reference vector", func(t *testing.T) {
		provider := NewStaticProvider(map[string]float64{"2008-05-20": 13026.04})
		h, err := NewGlobalGeohasher(provider)
		require.NoError(t, err)

		res, err := h.Hash(context.Background(), date(2008, time.May, 21))
		require.NoError(t, err)

		assert.InDelta(t, 85.74626, res.Latitude, 5e-6)
		assert.InDelta(t, 146.18662, res.Longitude, 5e-6)
		assert.Equal(t, date(2008, time.May, 20), res.UsedDowDate)
		assert.Equal(t, date(2008, time.May, 21), res.UsedDate)
	})

	t.Run("provider failure propagates", func(t *testing.T) {
		h, err := NewGlobalGeohasher(NewStaticProvider(nil))
		require.NoError(t, err)

		res, err := h.Hash(context.Background(), date(2008, time.May, 21))
		require.Error(t, err)

		var unavailable *PriceUnavailableError
		assert.True(t, errors.As(err, &unavailable))
		assert.Equal(t, date(2008, time.May, 20), unavailable.Date, "failure names the dow date, not the target")
		assert.Equal(t, Result{}, res)
	})
}
