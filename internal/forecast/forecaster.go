package forecast

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
)

// ErrInsufficientHistory is returned when the series cannot fill the
// look-back window and still leave enough samples to train and test.
var ErrInsufficientHistory = errors.New("insufficient price history")

// minSamples is the smallest number of post-washout samples accepted.
const minSamples = 20

// Config controls the model and the forecast horizon.
type Config struct {
	TimeStep       int
	Horizon        int
	TrainFraction  float64
	ReservoirSize  int
	SpectralRadius float64
	Density        float64
	InputScale     float64
	Leak           float64
	Ridge          float64
	Seed           uint64
}

// DefaultConfig returns a 100-day look-back and a 100-day horizon.
func DefaultConfig() Config {
	return Config{
		TimeStep:       100,
		Horizon:        100,
		TrainFraction:  0.8,
		ReservoirSize:  200,
		SpectralRadius: 0.9,
		Density:        0.1,
		InputScale:     0.5,
		Leak:           0.3,
		Ridge:          1e-4,
		Seed:           42,
	}
}

// Result holds test-set predictions and the future forecast, both in price units.
type Result struct {
	Symbol      string
	TestDates   []time.Time
	Actual      []float64
	Predicted   []float64
	LastDate    time.Time
	LastClose   float64
	FutureDates []time.Time
	Future      []float64
	Metrics     Metrics
}

// Forecaster trains a fresh model per series.
type Forecaster struct {
	cfg Config
}

// New creates a Forecaster.
func New(cfg Config) *Forecaster {
	return &Forecaster{cfg: cfg}
}

// Forecast scales the features, drives the reservoir over the whole history,
// fits the readout on the first TrainFraction of samples and evaluates it on
// the rest. The future is predicted recursively, feeding each predicted close
// back in with the other features held at their last known values.
func (f *Forecaster) Forecast(ctx context.Context, series models.PriceSeries) (*Result, error) {
	n := len(series.Bars)
	if n < f.cfg.TimeStep+minSamples {
		return nil, fmt.Errorf("%w: have %d days, need at least %d", ErrInsufficientHistory, n, f.cfg.TimeStep+minSamples)
	}

	rows := BuildFeatures(series)
	var scaler MinMaxScaler
	scaler.Fit(rows)
	scaled := scaler.Transform(rows)

	res, err := NewReservoir(ReservoirConfig{
		Size:           f.cfg.ReservoirSize,
		Inputs:         NumFeatures,
		SpectralRadius: f.cfg.SpectralRadius,
		Density:        f.cfg.Density,
		InputScale:     f.cfg.InputScale,
		Leak:           f.cfg.Leak,
		Seed:           f.cfg.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("building reservoir: %w", err)
	}

	// states[t] is the reservoir state after consuming inputs [0, t).
	states := make([][]float64, n+1)
	states[0] = make([]float64, res.Size())
	for t := 0; t < n; t++ {
		states[t+1] = res.Step(states[t], scaled[t])
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	samples := n - f.cfg.TimeStep
	z := make([][]float64, samples)
	y := make([]float64, samples)
	for i := 0; i < samples; i++ {
		t := f.cfg.TimeStep + i
		z[i] = readoutFeatures(scaled[t-1], states[t])
		y[i] = scaled[t][ColClose]
	}

	trainN := int(float64(samples) * f.cfg.TrainFraction)
	if trainN < 1 || trainN >= samples {
		return nil, fmt.Errorf("%w: train/test split leaves an empty side", ErrInsufficientHistory)
	}

	readout, err := FitRidge(z[:trainN], y[:trainN], f.cfg.Ridge)
	if err != nil {
		return nil, fmt.Errorf("fitting readout: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &Result{Symbol: series.Symbol}
	for i := trainN; i < samples; i++ {
		t := f.cfg.TimeStep + i
		out.TestDates = append(out.TestDates, series.Bars[t].Date)
		out.Actual = append(out.Actual, series.Bars[t].Close)
		out.Predicted = append(out.Predicted, scaler.Inverse(readout.Predict(z[i]), ColClose))
	}
	out.Metrics = ComputeMetrics(out.Actual, out.Predicted)

	last := series.Bars[n-1]
	out.LastDate = last.Date
	out.LastClose = last.Close

	input := scaled[n-1]
	state := states[n]
	for k := 0; k < f.cfg.Horizon; k++ {
		pred := readout.Predict(readoutFeatures(input, state))
		out.FutureDates = append(out.FutureDates, last.Date.AddDate(0, 0, k+1))
		out.Future = append(out.Future, scaler.Inverse(pred, ColClose))

		next := make([]float64, len(input))
		copy(next, scaled[n-1])
		next[ColClose] = pred
		state = res.Step(state, next)
		input = next
	}

	return out, nil
}

// readoutFeatures is [1, u, x]: bias, the latest input and the reservoir state.
func readoutFeatures(input, state []float64) []float64 {
	z := make([]float64, 0, 1+len(input)+len(state))
	z = append(z, 1)
	z = append(z, input...)
	z = append(z, state...)
	return z
}
