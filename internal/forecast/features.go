// Package forecast trains a small recurrent model on a symbol's price
// history and produces test-set predictions and a recursive future forecast.
package forecast

import (
	"github.com/markcheno/go-talib"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
)

const (
	smaPeriod = 50
	emaPeriod = 20
)

// Feature columns, in row order.
const (
	ColOpen = iota
	ColClose
	ColVolume
	ColSMA
	ColEMA
	NumFeatures
)

// BuildFeatures returns one row per bar: open, close, volume, SMA(50) and
// EMA(20) of close. Indicator values inside the warm-up window are back-filled
// with the first computed value.
func BuildFeatures(series models.PriceSeries) [][]float64 {
	closes := series.Closes()
	sma := indicator(closes, smaPeriod, talib.Sma)
	ema := indicator(closes, emaPeriod, talib.Ema)

	rows := make([][]float64, len(series.Bars))
	for i, b := range series.Bars {
		row := make([]float64, NumFeatures)
		row[ColOpen] = b.Open
		row[ColClose] = b.Close
		row[ColVolume] = b.Volume
		row[ColSMA] = sma[i]
		row[ColEMA] = ema[i]
		rows[i] = row
	}
	return rows
}

// indicator runs a talib moving average and back-fills its warm-up window.
// Series shorter than the period fall back to the raw closes.
func indicator(closes []float64, period int, fn func([]float64, int) []float64) []float64 {
	if len(closes) < period {
		out := make([]float64, len(closes))
		copy(out, closes)
		return out
	}
	out := fn(closes, period)
	first := out[period-1]
	for i := 0; i < period-1; i++ {
		out[i] = first
	}
	return out
}
