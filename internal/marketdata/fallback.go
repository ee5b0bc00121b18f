package marketdata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
)

// FallbackProvider asks each provider in turn and returns the first success.
type FallbackProvider struct {
	providers []Provider
	log       *zap.SugaredLogger
}

// NewFallbackProvider chains providers in priority order.
func NewFallbackProvider(log *zap.SugaredLogger, providers ...Provider) *FallbackProvider {
	return &FallbackProvider{providers: providers, log: log}
}

// Name returns the provider's display name.
func (f *FallbackProvider) Name() string { return "fallback" }

// History returns the first non-empty series with an adjusted close.
func (f *FallbackProvider) History(ctx context.Context, symbol string, from, to time.Time) (models.PriceSeries, error) {
	return attempt(ctx, f, symbol, "history", func(p Provider) (models.PriceSeries, error) {
		return p.History(ctx, symbol, from, to)
	})
}

// LatestPrice returns the first positive price.
func (f *FallbackProvider) LatestPrice(ctx context.Context, symbol string) (float64, error) {
	return attempt(ctx, f, symbol, "latest price", func(p Provider) (float64, error) {
		price, err := p.LatestPrice(ctx, symbol)
		if err == nil && price <= 0 {
			err = fmt.Errorf("zero price for %s", symbol)
		}
		return price, err
	})
}

// Fundamentals returns the first successful fundamentals payload.
func (f *FallbackProvider) Fundamentals(ctx context.Context, symbol string) (*models.Fundamentals, error) {
	return attempt(ctx, f, symbol, "fundamentals", func(p Provider) (*models.Fundamentals, error) {
		return p.Fundamentals(ctx, symbol)
	})
}

func attempt[T any](ctx context.Context, f *FallbackProvider, symbol, what string, call func(Provider) (T, error)) (T, error) {
	var zero T
	if len(f.providers) == 0 {
		return zero, &FetchError{Provider: f.Name(), Symbol: symbol, Err: errors.New("no providers configured")}
	}

	var errs []error
	for _, p := range f.providers {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		v, err := call(p)
		if err == nil {
			return v, nil
		}
		f.log.Warnw("provider failed, trying next",
			"provider", p.Name(),
			"symbol", symbol,
			"what", what,
			"error", err,
		)
		errs = append(errs, err)
	}
	return zero, errors.Join(errs...)
}
