package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/chart"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/config"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/forecast"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/handlers"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/logger"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/news"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/sentiment"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/services"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/testutil"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// stubMarket serves fixed prices for every symbol.
type stubMarket struct {
	price float64
}

func (m *stubMarket) History(_ context.Context, symbol string, _, _ time.Time) (models.PriceSeries, error) {
	return testutil.WavySeries(symbol, 300, m.price), nil
}

func (m *stubMarket) LatestPrice(_ context.Context, _ string) (float64, error) {
	return m.price, nil
}

func (m *stubMarket) Fundamentals(_ context.Context, _ string) (*models.Fundamentals, error) {
	return nil, errors.New("not reported")
}

type stubNews struct{}

func (stubNews) Fetch(_ context.Context, _ string) ([]news.Article, error) {
	return nil, news.ErrNoArticles
}

// setupApp builds the full router over an in-memory audit database and stub data sources.
func setupApp(t *testing.T, price float64) *gin.Engine {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	market := &stubMarket{price: price}
	audit := services.NewAuditService(db)
	cfg := &config.Config{Env: "test", CORSAllowedOrigin: "*", RequestTimeout: time.Minute}

	return newRouter(cfg, routes{
		prediction: handlers.NewPredictionHandler(
			services.NewPredictionService(market, forecast.New(forecast.DefaultConfig()), chart.NewRenderer(), testutil.SeriesStart),
			audit),
		news:      handlers.NewNewsHandler(services.NewSentimentService(stubNews{}, sentiment.NewLexiconClassifier(), market), audit),
		portfolio: handlers.NewPortfolioHandler(services.NewPortfolioService(market), audit),
		averaging: handlers.NewAveragingHandler(services.NewAveragingService(market, "INR"), audit),
		runs:      handlers.NewRunHandler(audit),
	})
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func TestRouter_Health(t *testing.T) {
	r := setupApp(t, 100)

	rec := doRequest(r, "GET", "/api/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if parseJSON(t, rec)["status"] != "ok" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestRouter_LossAveragingFlow(t *testing.T) {
	r := setupApp(t, 70)
	body := `{"stock_symbol":"WIPRO.NS","avg_price":100,"num_shares":10,"invest_amount":700}`

	for _, path := range []string{"/loss-averaging", "/api/loss-averaging"} {
		rec := doRequest(r, "POST", path, body)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", path, rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["action"] != "average_down" {
			t.Errorf("%s: expected average_down, got %v", path, result["action"])
		}
		if result["new_avg_price"] != 85.0 {
			t.Errorf("%s: expected new_avg_price 85, got %v", path, result["new_avg_price"])
		}
	}

	rec := doRequest(r, "GET", "/api/v1/runs?endpoint=loss_averaging", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"] != 2.0 {
		t.Fatalf("expected 2 recorded runs, got %v", result["total_items"])
	}
	run := result["data"].([]interface{})[0].(map[string]interface{})
	if run["subject"] != "WIPRO.NS" || run["status"] != "succeeded" {
		t.Errorf("unexpected run: %v", run)
	}
}

func TestRouter_NewsNotFoundIsRecorded(t *testing.T) {
	r := setupApp(t, 100)

	rec := doRequest(r, "GET", "/news?symbol=XYZ", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(r, "GET", "/api/v1/runs", "")
	result := parseJSON(t, rec)
	data := result["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 run, got %d", len(data))
	}
	run := data[0].(map[string]interface{})
	if run["status"] != "failed" || run["error_code"] != "NEWS_NOT_FOUND" {
		t.Errorf("unexpected run: %v", run)
	}
}

func TestRouter_PortfolioFlow(t *testing.T) {
	r := setupApp(t, 100)

	rec := doRequest(r, "POST", "/api/portfolio-optimize", `{"stocks":["TCS.NS","INFY.NS"],"investment":10000}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	alloc := result["allocation"].(map[string]interface{})
	if len(alloc) != 2 {
		t.Errorf("expected 2 allocations, got %d", len(alloc))
	}
	if _, ok := result["fundamentals"].(map[string]interface{})["TCS.NS"]; !ok {
		t.Error("expected fundamentals for TCS.NS")
	}
}

func TestRouter_PreflightAndUnknownRoute(t *testing.T) {
	r := setupApp(t, 100)

	rec := doRequest(r, "OPTIONS", "/predict_stock", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}

	rec = doRequest(r, "GET", "/api/v2/nothing", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
