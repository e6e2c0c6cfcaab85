// Package geohash ties the hashing core to the Dow price sources. Callers
// that already hold a price provider can use internal/domain directly; the
// helpers here cover the common case of computing a single point.
package geohash

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloudmollusc/xkcd-geohash/internal/adapter/djia"
	"github.com/cloudmollusc/xkcd-geohash/internal/domain"
	"github.com/cloudmollusc/xkcd-geohash/internal/observability"
)

// DefaultTimeout bounds each Dow source request made by the default provider.
const DefaultTimeout = 10 * time.Second

// DefaultProvider returns a Dow client over the public mirror list. A nil
// metrics is fine for one-shot use.
func DefaultProvider(logger *slog.Logger, metrics *observability.Metrics) *djia.Client {
	return djia.NewDefaultClient(DefaultTimeout, logger, metrics)
}

// Compute returns the geohash for the graticule holding the point
// (lat, lon) on date. Coordinates are truncated toward zero to find the
// cell. A nil provider falls back to the public Dow sources.
func Compute(ctx context.Context, lat, lon float64, date time.Time, provider domain.PriceProvider) (domain.Result, error) {
	g, err := domain.GraticuleForPoint(lat, lon)
	if err != nil {
		return domain.Result{}, err
	}
	if provider == nil {
		provider = DefaultProvider(slog.Default(), nil)
	}
	h, err := domain.NewGeohasher(g.Lat, g.Lon, provider)
	if err != nil {
		return domain.Result{}, err
	}
	return h.Hash(ctx, date)
}

// ComputeGlobal returns the worldwide geohash for date. A nil provider falls
// back to the public Dow sources.
func ComputeGlobal(ctx context.Context, date time.Time, provider domain.PriceProvider) (domain.Result, error) {
	if provider == nil {
		provider = DefaultProvider(slog.Default(), nil)
	}
	h, err := domain.NewGlobalGeohasher(provider)
	if err != nil {
		return domain.Result{}, err
	}
	return h.Hash(ctx, date)
}
