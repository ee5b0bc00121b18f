package services

import (
	"context"
	"errors"
	"time"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/forecast"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/news"
)

var errUpstream = errors.New("upstream unavailable")

type mockMarketData struct {
	historyFn      func(ctx context.Context, symbol string, from, to time.Time) (models.PriceSeries, error)
	latestPriceFn  func(ctx context.Context, symbol string) (float64, error)
	fundamentalsFn func(ctx context.Context, symbol string) (*models.Fundamentals, error)
}

func (m *mockMarketData) History(ctx context.Context, symbol string, from, to time.Time) (models.PriceSeries, error) {
	if m.historyFn == nil {
		return models.PriceSeries{}, errUpstream
	}
	return m.historyFn(ctx, symbol, from, to)
}

func (m *mockMarketData) LatestPrice(ctx context.Context, symbol string) (float64, error) {
	if m.latestPriceFn == nil {
		return 0, errUpstream
	}
	return m.latestPriceFn(ctx, symbol)
}

func (m *mockMarketData) Fundamentals(ctx context.Context, symbol string) (*models.Fundamentals, error) {
	if m.fundamentalsFn == nil {
		return nil, errUpstream
	}
	return m.fundamentalsFn(ctx, symbol)
}

type mockNewsFetcher struct {
	fetchFn func(ctx context.Context, symbol string) ([]news.Article, error)
}

func (m *mockNewsFetcher) Fetch(ctx context.Context, symbol string) ([]news.Article, error) {
	return m.fetchFn(ctx, symbol)
}

type mockForecaster struct {
	forecastFn func(ctx context.Context, series models.PriceSeries) (*forecast.Result, error)
}

func (m *mockForecaster) Forecast(ctx context.Context, series models.PriceSeries) (*forecast.Result, error) {
	return m.forecastFn(ctx, series)
}

type mockCharts struct {
	err error
}

func (m *mockCharts) ActualVsPredicted(symbol string, _ []time.Time, _, _ []float64) (string, error) {
	return "actual:" + symbol, m.err
}

func (m *mockCharts) Future(symbol string, _ time.Time, _ float64, _ []time.Time, _ []float64) (string, error) {
	return "future:" + symbol, m.err
}

type mockClassifier struct {
	starsFn func(ctx context.Context, text string) (int, error)
}

func (m *mockClassifier) Name() string { return "mock" }

func (m *mockClassifier) Stars(ctx context.Context, text string) (int, error) {
	return m.starsFn(ctx, text)
}

func f64(v float64) *float64 { return &v }
