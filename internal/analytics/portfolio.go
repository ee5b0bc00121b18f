package analytics

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	returnWeight  = 0.5
	growthWeight  = 0.5
	minVolatility = 0.0001
)

// AssetMetrics are the per-ticker inputs to scoring. RevenueGrowth is in
// percent (12.5 means 12.5%), matching how it is reported back to clients.
type AssetMetrics struct {
	Symbol           string
	AnnualReturn     float64
	AnnualVolatility float64
	RevenueGrowth    float64
	Price            float64
}

// ScoredAsset is an asset after scoring and weight normalization.
type ScoredAsset struct {
	Symbol string  `json:"symbol"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
	Price  float64 `json:"price"`
}

// Allocation is the whole-share purchase for one asset.
type Allocation struct {
	Symbol         string  `json:"-"`
	Shares         int64   `json:"shares"`
	AllocatedMoney float64 `json:"allocated_money"`
	CurrentPrice   float64 `json:"current_price"`
}

// Plan is the result of optimizing a portfolio under a budget.
type Plan struct {
	Assets               []ScoredAsset
	Allocations          []Allocation
	ExpectedAnnualReturn float64
	AnnualRisk           float64
	Leftover             float64
	EqualWeighted        bool
}

// Score combines return and revenue growth per unit of volatility.
// Negative return and growth count as zero and volatility is floored.
func Score(annualReturn, annualVolatility, revenueGrowth float64) float64 {
	r := math.Max(annualReturn, 0)
	g := math.Max(revenueGrowth, 0)
	v := math.Max(annualVolatility, minVolatility)
	return (returnWeight*r + growthWeight*g) / v
}

// Weights normalizes scores to sum to one. When every score is zero it
// falls back to equal weights and reports equal as true.
func Weights(scores []float64) (weights []float64, equal bool) {
	weights = make([]float64, len(scores))
	if len(scores) == 0 {
		return weights, false
	}

	var total float64
	for _, s := range scores {
		total += s
	}
	if total == 0 {
		for i := range weights {
			weights[i] = 1 / float64(len(scores))
		}
		return weights, true
	}
	for i, s := range scores {
		weights[i] = s / total
	}
	return weights, false
}

// Optimize scores the assets, normalizes weights and buys whole shares of
// each asset with its share of the investment. Money not spent on whole
// shares is reported as leftover.
func Optimize(assets []AssetMetrics, investment float64) (*Plan, error) {
	if len(assets) == 0 {
		return nil, errors.New("no assets to optimize")
	}
	if investment <= 0 {
		return nil, fmt.Errorf("investment must be positive, got %v", investment)
	}

	scores := make([]float64, len(assets))
	for i, a := range assets {
		if a.Price <= 0 || math.IsNaN(a.Price) {
			return nil, fmt.Errorf("%s: non-positive price %v", a.Symbol, a.Price)
		}
		scores[i] = Score(a.AnnualReturn, a.AnnualVolatility, a.RevenueGrowth)
	}
	weights, equal := Weights(scores)

	plan := &Plan{
		Assets:        make([]ScoredAsset, len(assets)),
		Allocations:   make([]Allocation, len(assets)),
		EqualWeighted: equal,
	}

	budget := decimal.NewFromFloat(investment)
	spent := decimal.Zero
	var sumReturn, sumRisk float64
	for i, a := range assets {
		plan.Assets[i] = ScoredAsset{Symbol: a.Symbol, Score: scores[i], Weight: weights[i], Price: a.Price}

		shares := int64(math.Floor(investment * weights[i] / a.Price))
		cost := decimal.NewFromFloat(a.Price).Mul(decimal.NewFromInt(shares))
		spent = spent.Add(cost)

		plan.Allocations[i] = Allocation{
			Symbol:         a.Symbol,
			Shares:         shares,
			AllocatedMoney: cost.Round(2).InexactFloat64(),
			CurrentPrice:   Round2(a.Price),
		}
		sumReturn += a.AnnualReturn
		sumRisk += a.AnnualVolatility
	}

	n := float64(len(assets))
	plan.ExpectedAnnualReturn = Round2(sumReturn / n * 100)
	plan.AnnualRisk = Round2(sumRisk / n * 100)
	plan.Leftover = budget.Sub(spent).Round(2).InexactFloat64()
	return plan, nil
}
