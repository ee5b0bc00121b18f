package services

import (
	"context"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/analytics"
	apperrors "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/errors"
)

// averagingService handles the loss-averaging calculator.
type averagingService struct {
	market   MarketData
	currency string
}

// NewAveragingService creates a new AveragingServicer that formats amounts in currency.
func NewAveragingService(market MarketData, currency string) AveragingServicer {
	return &averagingService{market: market, currency: currency}
}

// Calculate fetches the latest price and applies the loss-averaging policy.
// Amounts in the message use the position's currency when it has one.
func (s *averagingService) Calculate(ctx context.Context, pos analytics.Position) (*analytics.AveragingResult, error) {
	if pos.Symbol == "" || pos.AvgPrice <= 0 || pos.NumShares <= 0 || pos.InvestAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid input. Please check your values.")
	}

	price, err := s.market.LatestPrice(ctx, pos.Symbol)
	if err != nil {
		return nil, apperrors.ForSymbol(apperrors.ErrPriceUnavailable, pos.Symbol, err)
	}
	if analytics.Round2(price) <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrPriceUnavailable, "Failed to fetch current price. Try again.")
	}

	currency := s.currency
	if pos.Currency != "" {
		currency = pos.Currency
	}
	result := analytics.AverageDown(pos, price, currency)
	return &result, nil
}
