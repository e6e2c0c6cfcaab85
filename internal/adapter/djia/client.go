// Package djia fetches Dow Jones Industrial Average opening prices from the
// mirrored plain-text sources the geohashing community maintains.
package djia

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cloudmollusc/xkcd-geohash/internal/domain"
	"github.com/cloudmollusc/xkcd-geohash/internal/observability"
)

// sourceDateFormat is appended to each base URL to form a request.
const sourceDateFormat = "2006/01/02"

// maxBodyBytes caps response reads. Price bodies are a dozen bytes; the cap
// keeps a misbehaving mirror from ballooning memory.
const maxBodyBytes = 1 << 10

// DefaultSources returns the mirrored opening-price endpoints in failover
// priority order.
func DefaultSources() []string {
	return []string{
		"http://carabiner.peeron.com/xkcd/map/data/",
		"http://geo.crox.net/djia/",
		"http://www1.geo.crox.net/djia/",
		"http://www2.geo.crox.net/djia/",
	}
}

// Client implements domain.PriceProvider over an ordered list of mirrored
// sources. Requests sweep the list once per call, starting from the source
// that answered most recently; the sweep index is guarded so one client can
// serve concurrent callers.
type Client struct {
	sources    []string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics

	mu       sync.Mutex
	lastGood int
}

// NewClient creates a client over the given base URLs. Each request gets the
// date path appended, e.g. "http://geo.crox.net/djia/" + "2008/05/27".
// Metrics may be nil.
func NewClient(sources []string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		sources:    append([]string(nil), sources...),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    metrics,
	}
}

// NewDefaultClient creates a client over DefaultSources.
func NewDefaultClient(timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return NewClient(DefaultSources(), timeout, logger, metrics)
}

// Sources returns the configured base URLs in failover order.
func (c *Client) Sources() []string {
	return append([]string(nil), c.sources...)
}

// GetPrice fetches the opening price for date, trying each source exactly
// once starting from the last one that answered. The first success wins and
// becomes the next starting point; if every source fails, the result is a
// *domain.PriceUnavailableError carrying the final cause.
func (c *Client) GetPrice(ctx context.Context, date time.Time) (float64, error) {
	// The civil date is what the sources key on; drop time of day and zone.
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if len(c.sources) == 0 {
		return 0, &domain.PriceUnavailableError{Date: day, Last: errors.New("no sources configured")}
	}

	start := c.startIndex()

	var lastErr error
	for i := 0; i < len(c.sources); i++ {
		idx := (start + i) % len(c.sources)
		source := c.sources[idx]

		price, err := c.fetchFrom(ctx, source, day)
		if err != nil {
			lastErr = err
			c.logger.Warn("dow source failed",
				"source", source,
				"date", day.Format(domain.DateFormat),
				"error", err,
			)
			c.countFetch(source, "error")
			continue
		}

		c.setLastGood(idx)
		c.countFetch(source, "success")
		c.logger.Debug("dow price fetched",
			"source", source,
			"date", day.Format(domain.DateFormat),
			"price", price,
		)
		return price, nil
	}

	return 0, &domain.PriceUnavailableError{Date: day, Last: lastErr}
}

func (c *Client) fetchFrom(ctx context.Context, source string, date time.Time) (float64, error) {
	u := source + date.Format(sourceDateFormat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.DowFetchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", u, err)
	}

	trimmed := strings.TrimSpace(string(body))
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%s returned status %d: %s", u, resp.StatusCode, trimmed)
	}

	price, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q from %s: %w", trimmed, u, err)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("parse price %q from %s: not a finite number", trimmed, u)
	}
	return price, nil
}

func (c *Client) startIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastGood
}

func (c *Client) setLastGood(idx int) {
	c.mu.Lock()
	c.lastGood = idx
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.DowLastGoodSource.Set(float64(idx))
	}
}

func (c *Client) countFetch(source, outcome string) {
	if c.metrics != nil {
		c.metrics.DowFetches.WithLabelValues(source, outcome).Inc()
	}
}
