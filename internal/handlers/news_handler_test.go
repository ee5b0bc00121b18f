package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/analytics"
	apperrors "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/errors"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/sentiment"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/services"
)

func setupNewsRouter(handler *NewsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/news", handler.GetNews)
	return r
}

func TestNewsHandler_GetNews(t *testing.T) {
	t.Run("returns 200 with report", func(t *testing.T) {
		svc := &mockSentimentService{
			analyzeFn: func(_ context.Context, symbol string) (*services.NewsReport, error) {
				return &services.NewsReport{
					Stock:            symbol,
					OverallSentiment: sentiment.Positive,
					FundamentalAnalysis: analytics.FundamentalRatings{
						analytics.MetricOverall: analytics.RatingGood,
					},
					Articles: []services.ArticleSentiment{
						{Title: "Record quarter", Link: "https://example.com/a", Content: "Profits rose", Sentiment: sentiment.Positive},
					},
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupNewsRouter(NewNewsHandler(svc, audit))

		rec := doRequest(r, "GET", "/news?symbol=tcs.ns", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["stock"] != "TCS.NS" {
			t.Errorf("expected stock TCS.NS, got %v", result["stock"])
		}
		if result["overall_sentiment"] != "Positive" {
			t.Errorf("expected Positive, got %v", result["overall_sentiment"])
		}
		fa := result["fundamental_analysis"].(map[string]interface{})
		if fa["Overall Classification"] != "Good" {
			t.Errorf("expected Good overall classification, got %v", fa["Overall Classification"])
		}
		articles := result["articles"].([]interface{})
		if len(articles) != 1 {
			t.Fatalf("expected 1 article, got %d", len(articles))
		}
		assertRecorded(t, audit, models.EndpointNews, "TCS.NS", false)
	})

	t.Run("defaults to RELIANCE.NS", func(t *testing.T) {
		var gotSymbol string
		svc := &mockSentimentService{
			analyzeFn: func(_ context.Context, symbol string) (*services.NewsReport, error) {
				gotSymbol = symbol
				return &services.NewsReport{Stock: symbol}, nil
			},
		}
		r := setupNewsRouter(NewNewsHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/news", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotSymbol != "RELIANCE.NS" {
			t.Errorf("expected default symbol RELIANCE.NS, got %q", gotSymbol)
		}
	})

	t.Run("returns 400 on malformed symbol", func(t *testing.T) {
		r := setupNewsRouter(NewNewsHandler(&mockSentimentService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/news?symbol=%3Cscript%3E", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 404 when no news found", func(t *testing.T) {
		svc := &mockSentimentService{
			analyzeFn: func(_ context.Context, _ string) (*services.NewsReport, error) {
				return nil, apperrors.ErrNewsNotFound
			},
		}
		audit := &mockAuditService{}
		r := setupNewsRouter(NewNewsHandler(svc, audit))

		rec := doRequest(r, "GET", "/news?symbol=XYZ", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NEWS_NOT_FOUND")
		assertRecorded(t, audit, models.EndpointNews, "XYZ", true)
	})

	t.Run("returns 502 when feed is down", func(t *testing.T) {
		svc := &mockSentimentService{
			analyzeFn: func(_ context.Context, symbol string) (*services.NewsReport, error) {
				return nil, apperrors.ForSymbol(apperrors.ErrDataFetchFailed, symbol, errors.New("503"))
			},
		}
		r := setupNewsRouter(NewNewsHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/news?symbol=INFY.NS", "")

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DATA_FETCH_FAILED")
	})
}
