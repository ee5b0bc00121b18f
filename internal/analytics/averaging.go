package analytics

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
)

// LossThreshold is the fraction of the average price below which averaging down is suggested.
const LossThreshold = 0.85

// Action tells the client which branch of the loss-averaging policy applied.
type Action string

const (
	ActionNoAction         Action = "no_action"
	ActionInvestmentTooLow Action = "investment_too_low"
	ActionAverageDown      Action = "average_down"
)

// Position is a holding the user is considering averaging down.
type Position struct {
	Symbol       string
	AvgPrice     float64
	NumShares    int64
	InvestAmount float64
	Currency     string // ISO 4217; empty means the service default
}

// AveragingResult is the outcome of the loss-averaging calculation.
// Loss figures are omitted when the investment is too low; new-average
// figures are only set when averaging down.
type AveragingResult struct {
	Action           Action   `json:"action"`
	Message          string   `json:"message"`
	CurrentPrice     float64  `json:"current_price"`
	PercentageLoss   *float64 `json:"percentage_loss,omitempty"`
	AmountLoss       *float64 `json:"amount_loss,omitempty"`
	AdditionalShares *int64   `json:"additional_shares,omitempty"`
	NewAvgPrice      *float64 `json:"new_avg_price,omitempty"`
	TotalShares      *int64   `json:"total_shares,omitempty"`
}

// AverageDown applies the loss-averaging policy at the given current price.
// currency is an ISO 4217 code used to format amounts in the message.
func AverageDown(pos Position, currentPrice float64, currency string) AveragingResult {
	currentPrice = Round2(currentPrice)
	totalCost := pos.AvgPrice * float64(pos.NumShares)
	amountLoss := totalCost - currentPrice*float64(pos.NumShares)
	var percentageLoss float64
	if totalCost != 0 {
		percentageLoss = amountLoss / totalCost * 100
	}
	pct, amt := Round2(percentageLoss), Round2(amountLoss)

	if currentPrice >= pos.AvgPrice*LossThreshold {
		return AveragingResult{
			Action:         ActionNoAction,
			Message:        "No loss averaging needed. The price hasn't fallen enough.",
			CurrentPrice:   currentPrice,
			PercentageLoss: &pct,
			AmountLoss:     &amt,
		}
	}

	additional := int64(math.Floor(pos.InvestAmount / currentPrice))
	if additional == 0 {
		return AveragingResult{
			Action:       ActionInvestmentTooLow,
			Message:      "Investment amount is too low to buy any shares.",
			CurrentPrice: currentPrice,
		}
	}

	total := pos.NumShares + additional
	newAvg := Round2((totalCost + float64(additional)*currentPrice) / float64(total))

	msg := fmt.Sprintf("Current loss: %.2f%% (%s total loss).\n"+
		"Buy %d more shares at %s.\n"+
		"New Average Price: %s\n"+
		"Total Shares After Purchase: %d",
		pct, display(amt, currency),
		additional, display(currentPrice, currency),
		display(newAvg, currency),
		total,
	)

	return AveragingResult{
		Action:           ActionAverageDown,
		Message:          msg,
		CurrentPrice:     currentPrice,
		PercentageLoss:   &pct,
		AmountLoss:       &amt,
		AdditionalShares: &additional,
		NewAvgPrice:      &newAvg,
		TotalShares:      &total,
	}
}

func display(amount float64, currency string) string {
	return money.NewFromFloat(amount, currency).Display()
}
