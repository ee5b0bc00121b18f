package analytics

import "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"

// Rating is a coarse verdict on one fundamental metric.
type Rating string

const (
	RatingGood    Rating = "Good"
	RatingNeutral Rating = "Neutral"
	RatingBad     Rating = "Bad"
)

// Metric names as reported to clients.
const (
	MetricDebtToEquity  = "Debt-to-Equity"
	MetricEPSGrowth     = "EPS Growth"
	MetricPERatio       = "P/E Ratio"
	MetricROE           = "ROE"
	MetricRevenueGrowth = "Revenue Growth"
	MetricOverall       = "Overall Classification"
)

// FundamentalRatings maps metric name to rating, including the overall verdict.
type FundamentalRatings map[string]Rating

type threshold struct {
	good, neutral float64
	lowerIsBetter bool
}

func (t threshold) rate(v *float64) Rating {
	if v == nil {
		return RatingNeutral
	}
	if t.lowerIsBetter {
		switch {
		case *v <= t.good:
			return RatingGood
		case *v <= t.neutral:
			return RatingNeutral
		}
		return RatingBad
	}
	switch {
	case *v >= t.good:
		return RatingGood
	case *v >= t.neutral:
		return RatingNeutral
	}
	return RatingBad
}

var (
	debtToEquityThreshold = threshold{good: 0.5, neutral: 1.0, lowerIsBetter: true}
	peThreshold           = threshold{good: 10, neutral: 20, lowerIsBetter: true}
	epsGrowthThreshold    = threshold{good: 0.10, neutral: 0.05}
	roeThreshold          = threshold{good: 0.15, neutral: 0.10}
	revenueThreshold      = threshold{good: 0.10, neutral: 0.05}
)

// ClassifyFundamentals rates each metric and derives the overall verdict:
// Good with three or more Good ratings, Bad with three or more Bad, else Neutral.
// A nil f rates everything Neutral.
func ClassifyFundamentals(f *models.Fundamentals) FundamentalRatings {
	if f == nil {
		f = &models.Fundamentals{}
	}
	ratings := FundamentalRatings{
		MetricDebtToEquity:  debtToEquityThreshold.rate(f.DebtToEquity),
		MetricEPSGrowth:     epsGrowthThreshold.rate(f.EarningsGrowth),
		MetricPERatio:       peThreshold.rate(f.TrailingPE),
		MetricROE:           roeThreshold.rate(f.ReturnOnEquity),
		MetricRevenueGrowth: revenueThreshold.rate(f.RevenueGrowth),
	}

	var good, bad int
	for _, r := range ratings {
		switch r {
		case RatingGood:
			good++
		case RatingBad:
			bad++
		}
	}
	switch {
	case good >= 3:
		ratings[MetricOverall] = RatingGood
	case bad >= 3:
		ratings[MetricOverall] = RatingBad
	default:
		ratings[MetricOverall] = RatingNeutral
	}
	return ratings
}
