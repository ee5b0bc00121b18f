package services

import (
	"context"
	"errors"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/analytics"
	apperrors "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/errors"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/logger"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/news"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/sentiment"
)

// sentimentService handles news sentiment and fundamentals classification.
type sentimentService struct {
	news       NewsFetcher
	classifier sentiment.Classifier
	market     MarketData
}

// NewSentimentService creates a new SentimentServicer.
func NewSentimentService(fetcher NewsFetcher, classifier sentiment.Classifier, market MarketData) SentimentServicer {
	return &sentimentService{news: fetcher, classifier: classifier, market: market}
}

// Analyze labels each recent article and classifies the stock's fundamentals.
// Fundamentals that cannot be fetched are reported as Neutral.
func (s *sentimentService) Analyze(ctx context.Context, symbol string) (*NewsReport, error) {
	articles, err := s.news.Fetch(ctx, symbol)
	if err != nil {
		if errors.Is(err, news.ErrNoArticles) {
			return nil, apperrors.Wrap(apperrors.ErrNewsNotFound, err)
		}
		return nil, apperrors.ForSymbol(apperrors.ErrDataFetchFailed, symbol, err)
	}

	report := &NewsReport{
		Stock:    symbol,
		Articles: make([]ArticleSentiment, 0, len(articles)),
	}
	labels := make([]sentiment.Label, 0, len(articles))
	for _, a := range articles {
		label := sentiment.Neutral
		stars, err := s.classifier.Stars(ctx, a.Content)
		if err != nil {
			if ctx.Err() != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, ctx.Err())
			}
			logger.Get().Warnw("sentiment classification failed",
				"symbol", symbol,
				"link", a.Link,
				"error", err,
			)
		} else {
			label = sentiment.LabelFor(stars)
		}
		labels = append(labels, label)
		report.Articles = append(report.Articles, ArticleSentiment{
			Title:     a.Title,
			Link:      a.Link,
			Content:   a.Content,
			Sentiment: label,
		})
	}
	report.OverallSentiment = sentiment.Overall(labels)

	fundamentals, err := s.market.Fundamentals(ctx, symbol)
	if err != nil {
		logger.Get().Warnw("fundamentals unavailable, classifying as neutral",
			"symbol", symbol,
			"error", err,
		)
		fundamentals = nil
	}
	report.FundamentalAnalysis = analytics.ClassifyFundamentals(fundamentals)

	return report, nil
}
