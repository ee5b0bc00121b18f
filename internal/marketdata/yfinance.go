package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/wnjoon/go-yfinance/pkg/models"
	"github.com/wnjoon/go-yfinance/pkg/ticker"

	domain "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
)

// YFinanceProvider fetches market data through the go-yfinance ticker client.
// It handles Yahoo's cookie/crumb handshake, so it still works when the
// plain chart and quoteSummary endpoints start rejecting anonymous calls.
type YFinanceProvider struct{}

// NewYFinanceProvider creates a go-yfinance backed provider.
func NewYFinanceProvider() *YFinanceProvider {
	return &YFinanceProvider{}
}

// Name returns the provider's display name.
func (p *YFinanceProvider) Name() string { return "yfinance" }

// History fetches daily bars for the smallest Yahoo period covering [from, to]
// and trims the result to the requested range.
func (p *YFinanceProvider) History(_ context.Context, symbol string, from, to time.Time) (domain.PriceSeries, error) {
	t, err := ticker.New(symbol)
	if err != nil {
		return domain.PriceSeries{}, p.fetchError(symbol, fmt.Errorf("failed to create ticker: %w", err))
	}
	defer t.Close()

	bars, err := t.History(models.HistoryParams{
		Period:     historyPeriod(from, to),
		Interval:   "1d",
		AutoAdjust: false,
	})
	if err != nil {
		return domain.PriceSeries{}, p.fetchError(symbol, fmt.Errorf("failed to get historical prices: %w", err))
	}

	series := domain.PriceSeries{Symbol: symbol, Bars: make([]domain.PriceBar, 0, len(bars))}
	for _, bar := range bars {
		if bar.Date.Before(from) || bar.Date.After(to) || bar.Close == 0 {
			continue
		}
		series.Bars = append(series.Bars, domain.PriceBar{
			Date:     bar.Date.UTC(),
			Open:     bar.Open,
			High:     bar.High,
			Low:      bar.Low,
			Close:    bar.Close,
			AdjClose: bar.AdjClose,
			Volume:   float64(bar.Volume),
		})
	}

	fillAdjClose(series.Bars)
	if err := validateSeries(series); err != nil {
		return domain.PriceSeries{}, p.fetchError(symbol, err)
	}
	return series, nil
}

// LatestPrice tries the quote first and falls back to the info payload.
func (p *YFinanceProvider) LatestPrice(_ context.Context, symbol string) (float64, error) {
	t, err := ticker.New(symbol)
	if err != nil {
		return 0, p.fetchError(symbol, fmt.Errorf("failed to create ticker: %w", err))
	}
	defer t.Close()

	quote, err := t.Quote()
	if err == nil && quote != nil && quote.RegularMarketPrice > 0 {
		return quote.RegularMarketPrice, nil
	}

	info, err := t.Info()
	if err == nil && info != nil {
		if info.CurrentPrice > 0 {
			return info.CurrentPrice, nil
		}
		if info.RegularMarketPreviousClose > 0 {
			return info.RegularMarketPreviousClose, nil
		}
	}
	return 0, p.fetchError(symbol, fmt.Errorf("zero price for %s", symbol))
}

// Fundamentals maps the ticker info payload. Zero values are treated as unreported.
func (p *YFinanceProvider) Fundamentals(_ context.Context, symbol string) (*domain.Fundamentals, error) {
	t, err := ticker.New(symbol)
	if err != nil {
		return nil, p.fetchError(symbol, fmt.Errorf("failed to create ticker: %w", err))
	}
	defer t.Close()

	info, err := t.Info()
	if err != nil {
		return nil, p.fetchError(symbol, fmt.Errorf("failed to get info: %w", err))
	}

	f := &domain.Fundamentals{
		Symbol:         symbol,
		RevenueGrowth:  nonZero(info.RevenueGrowth),
		EarningsGrowth: nonZero(info.EarningsGrowth),
		ReturnOnEquity: nonZero(info.ReturnOnEquity),
		TrailingPE:     nonZero(info.TrailingPE),
	}
	if info.DebtToEquity > 0 {
		ratio := info.DebtToEquity / 100
		f.DebtToEquity = &ratio
	}
	return f, nil
}

func (p *YFinanceProvider) fetchError(symbol string, err error) error {
	return &FetchError{Provider: p.Name(), Symbol: symbol, Err: err}
}

func nonZero(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}
