package forecast

import (
	"math"

	"github.com/shopspring/decimal"
)

// Metrics are regression errors in price units, rounded to two decimals.
type Metrics struct {
	MAE  float64 `json:"mae"`
	MSE  float64 `json:"mse"`
	RMSE float64 `json:"rmse"`
}

// ComputeMetrics compares actual and predicted values of equal length.
func ComputeMetrics(actual, predicted []float64) Metrics {
	n := min(len(actual), len(predicted))
	if n == 0 {
		return Metrics{}
	}
	var absSum, sqSum float64
	for i := 0; i < n; i++ {
		d := actual[i] - predicted[i]
		absSum += math.Abs(d)
		sqSum += d * d
	}
	mse := sqSum / float64(n)
	return Metrics{
		MAE:  round2(absSum / float64(n)),
		MSE:  round2(mse),
		RMSE: round2(math.Sqrt(mse)),
	}
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
