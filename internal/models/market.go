package models

import "time"

// PriceBar is one trading day of a price series.
type PriceBar struct {
	Date     time.Time `json:"date"`
	Open     float64   `json:"open"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Close    float64   `json:"close"`
	AdjClose float64   `json:"adj_close"`
	Volume   float64   `json:"volume"`
}

// PriceSeries is an ordered (oldest first) run of daily bars for one symbol.
type PriceSeries struct {
	Symbol string     `json:"symbol"`
	Bars   []PriceBar `json:"bars"`
}

// Closes returns the close prices in series order.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

// AdjCloses returns the adjusted close prices in series order.
func (s PriceSeries) AdjCloses() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.AdjClose
	}
	return out
}

// Last returns the most recent bar. ok is false for an empty series.
func (s PriceSeries) Last() (bar PriceBar, ok bool) {
	if len(s.Bars) == 0 {
		return PriceBar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}

// Fundamentals holds the company metrics used for classification and scoring.
// A nil field means the provider did not report the value.
type Fundamentals struct {
	Symbol         string   `json:"symbol"`
	RevenueGrowth  *float64 `json:"revenue_growth,omitempty"`
	EarningsGrowth *float64 `json:"earnings_growth,omitempty"`
	ReturnOnEquity *float64 `json:"return_on_equity,omitempty"`
	DebtToEquity   *float64 `json:"debt_to_equity,omitempty"` // ratio, not percent
	TrailingPE     *float64 `json:"trailing_pe,omitempty"`
}
