package chart

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func days(n int) []time.Time {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

func decodePNG(t *testing.T, s string) (width, height int) {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(s)
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestActualVsPredicted(t *testing.T) {
	r := &Renderer{Width: 4 * vg.Inch, Height: 2 * vg.Inch}

	out, err := r.ActualVsPredicted("TCS.NS", days(3), []float64{10, 11, 12}, []float64{10.5, 10.8, 12.3})
	require.NoError(t, err)

	w, h := decodePNG(t, out)
	assert.Equal(t, 2*h, w, "aspect ratio follows the configured canvas")
}

func TestActualVsPredicted_LengthMismatch(t *testing.T) {
	_, err := NewRenderer().ActualVsPredicted("TCS.NS", days(3), []float64{1, 2}, []float64{1, 2, 3})
	assert.Error(t, err)
}

func TestFuture(t *testing.T) {
	r := &Renderer{Width: 4 * vg.Inch, Height: 2 * vg.Inch}
	last := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	out, err := r.Future("INFY.NS", last, 100, days(5), []float64{101, 102, 101.5, 103, 104})
	require.NoError(t, err)
	decodePNG(t, out)

	_, err = r.Future("INFY.NS", last, 100, nil, nil)
	assert.Error(t, err)
}
