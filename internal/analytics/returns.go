// Package analytics holds the pure numeric policies behind the analysis
// endpoints: return statistics, portfolio scoring and allocation, loss
// averaging and fundamentals classification. Nothing here performs I/O.
package analytics

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear annualizes daily statistics.
const TradingDaysPerYear = 252

// ErrNoReturns is returned when a price series is too short to produce a single daily return.
var ErrNoReturns = errors.New("not enough prices to compute returns")

// DailyReturns computes simple percentage changes between consecutive prices.
// A missing (non-positive or NaN) price repeats the last valid one, so a gap
// yields a zero return. Leading gaps produce no returns.
func DailyReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(prices)-1)
	var last float64
	for _, p := range prices {
		if p <= 0 || math.IsNaN(p) {
			if last == 0 {
				continue
			}
			p = last
		}
		if last > 0 {
			returns = append(returns, p/last-1)
		}
		last = p
	}
	return returns
}

// Annualize returns the annualized mean return and the annualized sample
// standard deviation of daily returns. A single return has zero volatility.
func Annualize(returns []float64) (annualReturn, annualVolatility float64, err error) {
	if len(returns) == 0 {
		return 0, 0, ErrNoReturns
	}
	annualReturn = stat.Mean(returns, nil) * TradingDaysPerYear
	if len(returns) > 1 {
		annualVolatility = stat.StdDev(returns, nil) * math.Sqrt(TradingDaysPerYear)
	}
	if math.IsNaN(annualReturn) || math.IsNaN(annualVolatility) {
		return 0, 0, errors.New("returns contain NaN")
	}
	return annualReturn, annualVolatility, nil
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
