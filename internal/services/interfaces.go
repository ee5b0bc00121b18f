package services

import (
	"context"
	"time"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/analytics"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/forecast"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/news"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/pagination"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/sentiment"
)

// MarketData is the market data source the services read from.
type MarketData interface {
	History(ctx context.Context, symbol string, from, to time.Time) (models.PriceSeries, error)
	LatestPrice(ctx context.Context, symbol string) (float64, error)
	Fundamentals(ctx context.Context, symbol string) (*models.Fundamentals, error)
}

// NewsFetcher returns recent articles about a symbol.
type NewsFetcher interface {
	Fetch(ctx context.Context, symbol string) ([]news.Article, error)
}

// Forecaster trains a model on a series and predicts ahead.
type Forecaster interface {
	Forecast(ctx context.Context, series models.PriceSeries) (*forecast.Result, error)
}

// ChartRenderer draws forecast charts as base64 PNGs.
type ChartRenderer interface {
	ActualVsPredicted(symbol string, dates []time.Time, actual, predicted []float64) (string, error)
	Future(symbol string, lastDate time.Time, lastClose float64, dates []time.Time, future []float64) (string, error)
}

// PredictionResult contains forecast errors and the two rendered charts.
type PredictionResult struct {
	MAE                    float64 `json:"mae"`
	MSE                    float64 `json:"mse"`
	RMSE                   float64 `json:"rmse"`
	ActualVsPredictedGraph string  `json:"actual_vs_predicted_graph"`
	FuturePredictionGraph  string  `json:"future_prediction_graph"`
}

// PredictionServicer defines the contract for price forecasting.
type PredictionServicer interface {
	Predict(ctx context.Context, symbol string) (*PredictionResult, error)
}

// ArticleSentiment is an article with its sentiment label.
type ArticleSentiment struct {
	Title     string          `json:"title"`
	Link      string          `json:"link"`
	Content   string          `json:"content"`
	Sentiment sentiment.Label `json:"sentiment"`
}

// NewsReport is the sentiment and fundamentals summary for one stock.
type NewsReport struct {
	Stock               string                       `json:"stock"`
	OverallSentiment    sentiment.Label              `json:"overall_sentiment"`
	FundamentalAnalysis analytics.FundamentalRatings `json:"fundamental_analysis"`
	Articles            []ArticleSentiment           `json:"articles"`
}

// SentimentServicer defines the contract for news sentiment analysis.
type SentimentServicer interface {
	Analyze(ctx context.Context, symbol string) (*NewsReport, error)
}

// GrowthFundamentals is the per-ticker fundamentals block of a portfolio result.
type GrowthFundamentals struct {
	RevenueGrowth5Y float64 `json:"Revenue_Growth_5Y"`
}

// PortfolioResult is an optimized allocation of an investment across tickers.
type PortfolioResult struct {
	Allocation           map[string]analytics.Allocation `json:"allocation"`
	ExpectedAnnualReturn float64                         `json:"expected_annual_return"`
	AnnualRisk           float64                         `json:"annual_risk"`
	LeftoverAmount       float64                         `json:"leftover_amount"`
	Fundamentals         map[string]GrowthFundamentals   `json:"fundamentals"`
}

// PortfolioServicer defines the contract for portfolio optimization.
type PortfolioServicer interface {
	Optimize(ctx context.Context, symbols []string, investment float64) (*PortfolioResult, error)
}

// AveragingServicer defines the contract for the loss-averaging calculator.
type AveragingServicer interface {
	Calculate(ctx context.Context, pos analytics.Position) (*analytics.AveragingResult, error)
}

// RunRecord describes one finished analysis request for the audit trail.
type RunRecord struct {
	Endpoint models.Endpoint
	Subject  string
	Err      error
	Duration time.Duration
	ClientIP string
}

// AuditServicer defines the contract for the analysis audit trail.
type AuditServicer interface {
	Record(run RunRecord)
	ListRuns(page pagination.PageRequest, endpoint *models.Endpoint) (*pagination.PageResponse[models.AnalysisRun], error)
}
