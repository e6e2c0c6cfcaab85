package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNilProvider is returned by constructors given no price provider.
var ErrNilProvider = errors.New("price provider is required")

// Geohasher computes geohashes for one graticule. It is stateless beyond its
// configuration; any state lives in the bound provider.
type Geohasher struct {
	graticule Graticule
	provider  PriceProvider
}

// NewGeohasher binds a graticule to a price provider.
func NewGeohasher(lat, lon int, provider PriceProvider) (*Geohasher, error) {
	g, err := NewGraticule(lat, lon)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrNilProvider
	}
	return &Geohasher{graticule: g, provider: provider}, nil
}

// Graticule returns the bound cell.
func (h *Geohasher) Graticule() Graticule { return h.graticule }

// Hash computes the geohash for date. A price lookup failure aborts the call
// and surfaces unchanged; there is no partial result.
func (h *Geohasher) Hash(ctx context.Context, date time.Time) (Result, error) {
	day := dateOnly(date)
	dowDate := ApplicableDowDate(h.graticule, day)

	price, err := h.provider.GetPrice(ctx, dowDate)
	if err != nil {
		return Result{}, err
	}

	latFrac, lonFrac, err := HashToOffsets(BuildHashInput(day, price))
	if err != nil {
		return Result{}, fmt.Errorf("decode digest: %w", err)
	}

	lat, lon, err := ComposeLocal(h.graticule, latFrac, lonFrac)
	if err != nil {
		return Result{}, fmt.Errorf("compose coordinates: %w", err)
	}

	return Result{Latitude: lat, Longitude: lon, UsedDowDate: dowDate, UsedDate: day}, nil
}

// GlobalGeohasher computes the single worldwide geohash for a date.
type GlobalGeohasher struct {
	provider PriceProvider
}

// NewGlobalGeohasher binds a price provider.
func NewGlobalGeohasher(provider PriceProvider) (*GlobalGeohasher, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	return &GlobalGeohasher{provider: provider}, nil
}

// Hash computes the global geohash for date.
func (h *GlobalGeohasher) Hash(ctx context.Context, date time.Time) (Result, error) {
	day := dateOnly(date)
	dowDate := ApplicableDowDateGlobal(day)

	price, err := h.provider.GetPrice(ctx, dowDate)
	if err != nil {
		return Result{}, err
	}

	latFrac, lonFrac, err := HashToOffsets(BuildHashInput(day, price))
	if err != nil {
		return Result{}, fmt.Errorf("decode digest: %w", err)
	}

	lat, lon, err := ComposeGlobal(latFrac, lonFrac)
	if err != nil {
		return Result{}, fmt.Errorf("compose coordinates: %w", err)
	}

	return Result{Latitude: lat, Longitude: lon, UsedDowDate: dowDate, UsedDate: day}, nil
}
