package domain

import (
	"context"
	"fmt"
	"time"
)

// PriceProvider supplies the Dow Jones Industrial Average opening price for
// a trading date.
type PriceProvider interface {
	// GetPrice returns the DJIA opening price for the given date. It fails
	// with *PriceUnavailableError when no source can supply one.
	GetPrice(ctx context.Context, date time.Time) (float64, error)
}

// PriceUnavailableError reports that no configured source could supply the
// opening price for Date. Last carries the final underlying cause, if any.
type PriceUnavailableError struct {
	Date time.Time
	Last error
}

func (e *PriceUnavailableError) Error() string {
	if e.Last == nil {
		return fmt.Sprintf("dow price unavailable for %s", e.Date.Format(DateFormat))
	}
	return fmt.Sprintf("dow price unavailable for %s: %v", e.Date.Format(DateFormat), e.Last)
}

func (e *PriceUnavailableError) Unwrap() error { return e.Last }

// StaticProvider serves opening prices from a fixed in-memory table keyed by
// calendar date ("2006-01-02"). It backs offline runs and tests.
type StaticProvider struct {
	prices map[string]float64
}

// NewStaticProvider copies the given date→price table.
func NewStaticProvider(prices map[string]float64) *StaticProvider {
	table := make(map[string]float64, len(prices))
	for date, price := range prices {
		table[date] = price
	}
	return &StaticProvider{prices: table}
}

// GetPrice implements PriceProvider. Unmapped dates fail with
// *PriceUnavailableError.
func (p *StaticProvider) GetPrice(_ context.Context, date time.Time) (float64, error) {
	day := dateOnly(date)
	price, ok := p.prices[day.Format(DateFormat)]
	if !ok {
		return 0, &PriceUnavailableError{
			Date: day,
			Last: fmt.Errorf("no table entry for %s", day.Format(DateFormat)),
		}
	}
	return price, nil
}
