package testutil

import (
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// SeriesStart is the date of the first bar produced by the series fixtures.
var SeriesStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// PriceSeries builds one daily bar per close, starting at SeriesStart.
// Open and adjusted close equal the close.
func PriceSeries(symbol string, closes ...float64) models.PriceSeries {
	series := models.PriceSeries{Symbol: symbol, Bars: make([]models.PriceBar, len(closes))}
	for i, c := range closes {
		series.Bars[i] = models.PriceBar{
			Date:     SeriesStart.AddDate(0, 0, i),
			Open:     c,
			High:     c,
			Low:      c,
			Close:    c,
			AdjClose: c,
			Volume:   1_000_000,
		}
	}
	return series
}

// WavySeries builds a deterministic series of the given length: a slow
// upward drift from start with a 30-day oscillation on top.
func WavySeries(symbol string, days int, start float64) models.PriceSeries {
	closes := make([]float64, days)
	for i := range closes {
		closes[i] = start*(1+0.001*float64(i)) + start*0.05*math.Sin(2*math.Pi*float64(i)/30)
	}
	series := PriceSeries(symbol, closes...)
	for i := range series.Bars {
		if i > 0 {
			series.Bars[i].Open = closes[i-1]
		}
		series.Bars[i].Volume = 1_000_000 + float64(i%7)*50_000
	}
	return series
}

// CreateTestRun inserts an audit run for the given endpoint and status.
func CreateTestRun(t *testing.T, db *gorm.DB, endpoint models.Endpoint, status models.RunStatus) *models.AnalysisRun {
	t.Helper()

	run := &models.AnalysisRun{
		Endpoint:   endpoint,
		Subject:    "TCS.NS",
		Status:     status,
		DurationMS: 12,
		ClientIP:   "127.0.0.1",
	}
	if status == models.RunStatusFailed {
		run.ErrorCode = "DATA_FETCH_FAILED"
	}
	if err := db.Create(run).Error; err != nil {
		t.Fatalf("failed to create test run: %v", err)
	}
	return run
}
