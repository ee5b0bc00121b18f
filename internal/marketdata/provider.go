// Package marketdata fetches price history, latest prices and company
// fundamentals from external data sources.
package marketdata

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
)

// ErrNoData is returned when a provider answers but has no usable rows for a symbol.
var ErrNoData = errors.New("no price data")

// Provider fetches market data for a single symbol.
type Provider interface {
	// Name returns the provider's display name (e.g., "Yahoo Finance").
	Name() string

	// History returns daily bars between from and to, oldest first.
	History(ctx context.Context, symbol string, from, to time.Time) (models.PriceSeries, error)

	// LatestPrice returns the most recent close or regular market price.
	LatestPrice(ctx context.Context, symbol string) (float64, error)

	// Fundamentals returns the company metrics the provider reports.
	Fundamentals(ctx context.Context, symbol string) (*models.Fundamentals, error)
}

// FetchError represents a failed fetch for a specific symbol.
type FetchError struct {
	Provider string
	Symbol   string
	Err      error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: failed to fetch %s: %v", e.Provider, e.Symbol, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error { return e.Err }

// NormalizeSymbol upper-cases and trims a ticker as typed by a user.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// validateSeries rejects series that cannot feed return calculations:
// empty ones and ones whose adjusted close column is missing.
func validateSeries(series models.PriceSeries) error {
	if len(series.Bars) == 0 {
		return ErrNoData
	}
	for _, b := range series.Bars {
		if b.AdjClose != 0 {
			return nil
		}
	}
	return fmt.Errorf("%w: adjusted close missing", ErrNoData)
}

// fillAdjClose carries the last known adjusted close forward over bars that
// have a close but no adjusted close. Bars before the first adjusted close
// are left at zero.
func fillAdjClose(bars []models.PriceBar) {
	var last float64
	for i := range bars {
		if bars[i].AdjClose > 0 {
			last = bars[i].AdjClose
			continue
		}
		bars[i].AdjClose = last
	}
}

// historyPeriod maps a date range onto the coarse period strings Yahoo accepts.
func historyPeriod(from, to time.Time) string {
	days := to.Sub(from).Hours() / 24
	switch {
	case days <= 5:
		return "5d"
	case days <= 31:
		return "1mo"
	case days <= 93:
		return "3mo"
	case days <= 186:
		return "6mo"
	case days <= 366:
		return "1y"
	case days <= 731:
		return "2y"
	case days <= 1827:
		return "5y"
	case days <= 3653:
		return "10y"
	default:
		return "max"
	}
}
