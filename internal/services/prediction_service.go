package services

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/errors"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/forecast"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/logger"
)

// predictionService handles price forecasting.
type predictionService struct {
	market     MarketData
	forecaster Forecaster
	charts     ChartRenderer
	startDate  time.Time
	now        func() time.Time
}

// NewPredictionService creates a new PredictionServicer that trains on
// history from startDate onward.
func NewPredictionService(market MarketData, forecaster Forecaster, charts ChartRenderer, startDate time.Time) PredictionServicer {
	return &predictionService{
		market:     market,
		forecaster: forecaster,
		charts:     charts,
		startDate:  startDate,
		now:        time.Now,
	}
}

// Predict fetches history, trains a forecaster and renders both charts.
func (s *predictionService) Predict(ctx context.Context, symbol string) (*PredictionResult, error) {
	series, err := s.market.History(ctx, symbol, s.startDate, s.now())
	if err != nil {
		return nil, apperrors.ForSymbol(apperrors.ErrDataFetchFailed, symbol, err)
	}

	res, err := s.forecaster.Forecast(ctx, series)
	if err != nil {
		if errors.Is(err, forecast.ErrInsufficientHistory) {
			return nil, apperrors.ForSymbol(apperrors.ErrInsufficientHistory, symbol, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrPredictionFailed, err)
	}

	actualGraph, err := s.charts.ActualVsPredicted(symbol, res.TestDates, res.Actual, res.Predicted)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPredictionFailed, err)
	}
	futureGraph, err := s.charts.Future(symbol, res.LastDate, res.LastClose, res.FutureDates, res.Future)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPredictionFailed, err)
	}

	logger.Get().Infow("forecast completed",
		"symbol", symbol,
		"days", len(series.Bars),
		"rmse", res.Metrics.RMSE,
	)

	return &PredictionResult{
		MAE:                    res.Metrics.MAE,
		MSE:                    res.Metrics.MSE,
		RMSE:                   res.Metrics.RMSE,
		ActualVsPredictedGraph: actualGraph,
		FuturePredictionGraph:  futureGraph,
	}, nil
}
