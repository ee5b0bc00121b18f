// Package chart renders forecast line charts as base64-encoded PNGs.
package chart

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/color"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	blue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	red    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	green  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	gray   = color.RGBA{R: 127, G: 127, B: 127, A: 255}
	dashed = []vg.Length{vg.Points(6), vg.Points(4)}
	dotted = []vg.Length{vg.Points(2), vg.Points(3)}
)

// Renderer draws charts at a fixed canvas size.
type Renderer struct {
	Width  vg.Length
	Height vg.Length
}

// NewRenderer returns a renderer producing 12x6 inch images.
func NewRenderer() *Renderer {
	return &Renderer{Width: 12 * vg.Inch, Height: 6 * vg.Inch}
}

// ActualVsPredicted plots actual closes against model predictions over the same dates.
func (r *Renderer) ActualVsPredicted(symbol string, dates []time.Time, actual, predicted []float64) (string, error) {
	if len(dates) == 0 || len(dates) != len(actual) || len(dates) != len(predicted) {
		return "", errors.New("chart: dates, actual and predicted must be non-empty and equal length")
	}

	p := newPlot(fmt.Sprintf("%s Stock Price Prediction - Actual vs Predicted", symbol))

	actualLine, err := line(dates, actual, blue, nil)
	if err != nil {
		return "", err
	}
	predLine, err := line(dates, predicted, red, dashed)
	if err != nil {
		return "", err
	}
	p.Add(actualLine, predLine)
	p.Legend.Add("Actual Price", actualLine)
	p.Legend.Add("Predicted Price", predLine)

	return r.encode(p)
}

// Future plots the forecast joined to the last known close, with a vertical
// marker at the last known date.
func (r *Renderer) Future(symbol string, lastDate time.Time, lastClose float64, dates []time.Time, future []float64) (string, error) {
	if len(dates) == 0 || len(dates) != len(future) {
		return "", errors.New("chart: future dates and values must be non-empty and equal length")
	}

	p := newPlot(fmt.Sprintf("%s Future Stock Price Prediction (Next %d Days)", symbol, len(future)))

	joinedDates := append([]time.Time{lastDate}, dates...)
	joined := append([]float64{lastClose}, future...)
	forecast, err := line(joinedDates, joined, green, dotted)
	if err != nil {
		return "", err
	}

	lo, hi := lastClose, lastClose
	for _, v := range future {
		lo, hi = min(lo, v), max(hi, v)
	}
	marker, err := line([]time.Time{lastDate, lastDate}, []float64{lo, hi}, gray, dashed)
	if err != nil {
		return "", err
	}

	p.Add(forecast, marker)
	p.Legend.Add("Future Predictions", forecast)
	p.Legend.Add("Last Known Date", marker)

	return r.encode(p)
}

func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Stock Price"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())
	return p
}

func line(dates []time.Time, values []float64, c color.Color, dashes []vg.Length) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(dates[i].Unix())
		pts[i].Y = v
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	l.LineStyle = draw.LineStyle{Color: c, Width: vg.Points(1.5), Dashes: dashes}
	return l, nil
}

func (r *Renderer) encode(p *plot.Plot) (string, error) {
	w, err := p.WriterTo(r.Width, r.Height, "png")
	if err != nil {
		return "", fmt.Errorf("chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("chart: writing png: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
