package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/analytics"
	apperrors "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/errors"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/logger"
)

const portfolioLookbackYears = 5

// portfolioService handles portfolio optimization.
type portfolioService struct {
	market MarketData
	now    func() time.Time
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(market MarketData) PortfolioServicer {
	return &portfolioService{market: market, now: time.Now}
}

// Optimize scores each ticker on five years of adjusted closes and revenue
// growth, then allocates whole shares. Any ticker failing to load or compute
// aborts the whole request.
func (s *portfolioService) Optimize(ctx context.Context, symbols []string, investment float64) (*PortfolioResult, error) {
	if len(symbols) == 0 || investment <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid input")
	}

	to := s.now()
	from := to.AddDate(-portfolioLookbackYears, 0, 0)

	assets := make([]analytics.AssetMetrics, 0, len(symbols))
	fundamentals := make(map[string]GrowthFundamentals, len(symbols))
	for _, symbol := range symbols {
		series, err := s.market.History(ctx, symbol, from, to)
		if err != nil {
			return nil, apperrors.ForSymbol(apperrors.ErrDataFetchFailed, symbol, err)
		}

		ret, vol, err := analytics.Annualize(analytics.DailyReturns(series.AdjCloses()))
		if err != nil {
			return nil, apperrors.ForSymbol(apperrors.ErrCalculationFailed, symbol, err)
		}

		growth := s.revenueGrowth(ctx, symbol)
		fundamentals[symbol] = GrowthFundamentals{RevenueGrowth5Y: analytics.Round2(growth)}

		price, err := s.market.LatestPrice(ctx, symbol)
		if err != nil {
			return nil, apperrors.ForSymbol(apperrors.ErrPriceUnavailable, symbol, err)
		}
		if analytics.Round2(price) <= 0 {
			return nil, apperrors.ForSymbol(apperrors.ErrPriceUnavailable, symbol, fmt.Errorf("non-positive price %v", price))
		}

		assets = append(assets, analytics.AssetMetrics{
			Symbol:           symbol,
			AnnualReturn:     ret,
			AnnualVolatility: vol,
			RevenueGrowth:    growth,
			Price:            price,
		})
	}

	plan, err := analytics.Optimize(assets, investment)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCalculationFailed, err)
	}
	if plan.EqualWeighted {
		logger.Get().Infow("all scores zero, using equal weights", "symbols", symbols)
	}

	allocation := make(map[string]analytics.Allocation, len(plan.Allocations))
	for _, a := range plan.Allocations {
		allocation[a.Symbol] = a
	}

	return &PortfolioResult{
		Allocation:           allocation,
		ExpectedAnnualReturn: plan.ExpectedAnnualReturn,
		AnnualRisk:           plan.AnnualRisk,
		LeftoverAmount:       plan.Leftover,
		Fundamentals:         fundamentals,
	}, nil
}

// revenueGrowth returns revenue growth in percent, or 0 when unavailable.
func (s *portfolioService) revenueGrowth(ctx context.Context, symbol string) float64 {
	f, err := s.market.Fundamentals(ctx, symbol)
	if err != nil {
		logger.Get().Warnw("revenue growth unavailable", "symbol", symbol, "error", err)
		return 0
	}
	if f == nil || f.RevenueGrowth == nil {
		return 0
	}
	return *f.RevenueGrowth * 100
}
