package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/analytics"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/pagination"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/services"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/validator"
)

// --- mock services ---

type mockPredictionService struct {
	predictFn func(ctx context.Context, symbol string) (*services.PredictionResult, error)
}

var _ services.PredictionServicer = (*mockPredictionService)(nil)

func (m *mockPredictionService) Predict(ctx context.Context, symbol string) (*services.PredictionResult, error) {
	if m.predictFn != nil {
		return m.predictFn(ctx, symbol)
	}
	return &services.PredictionResult{}, nil
}

type mockSentimentService struct {
	analyzeFn func(ctx context.Context, symbol string) (*services.NewsReport, error)
}

var _ services.SentimentServicer = (*mockSentimentService)(nil)

func (m *mockSentimentService) Analyze(ctx context.Context, symbol string) (*services.NewsReport, error) {
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, symbol)
	}
	return &services.NewsReport{Stock: symbol}, nil
}

type mockPortfolioService struct {
	optimizeFn func(ctx context.Context, symbols []string, investment float64) (*services.PortfolioResult, error)
}

var _ services.PortfolioServicer = (*mockPortfolioService)(nil)

func (m *mockPortfolioService) Optimize(ctx context.Context, symbols []string, investment float64) (*services.PortfolioResult, error) {
	if m.optimizeFn != nil {
		return m.optimizeFn(ctx, symbols, investment)
	}
	return &services.PortfolioResult{}, nil
}

type mockAveragingService struct {
	calculateFn func(ctx context.Context, pos analytics.Position) (*analytics.AveragingResult, error)
}

var _ services.AveragingServicer = (*mockAveragingService)(nil)

func (m *mockAveragingService) Calculate(ctx context.Context, pos analytics.Position) (*analytics.AveragingResult, error) {
	if m.calculateFn != nil {
		return m.calculateFn(ctx, pos)
	}
	return &analytics.AveragingResult{}, nil
}

type mockAuditService struct {
	mu         sync.Mutex
	runs       []services.RunRecord
	listRunsFn func(page pagination.PageRequest, endpoint *models.Endpoint) (*pagination.PageResponse[models.AnalysisRun], error)
}

var _ services.AuditServicer = (*mockAuditService)(nil)

func (m *mockAuditService) Record(run services.RunRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, run)
}

func (m *mockAuditService) ListRuns(page pagination.PageRequest, endpoint *models.Endpoint) (*pagination.PageResponse[models.AnalysisRun], error) {
	if m.listRunsFn != nil {
		return m.listRunsFn(page, endpoint)
	}
	resp := pagination.NewPageResponse[models.AnalysisRun](nil, 1, 20, 0)
	return &resp, nil
}

func (m *mockAuditService) recorded() []services.RunRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]services.RunRecord(nil), m.runs...)
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
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

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func assertRecorded(t *testing.T, audit *mockAuditService, endpoint models.Endpoint, subject string, failed bool) {
	t.Helper()
	runs := audit.recorded()
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	run := runs[0]
	if run.Endpoint != endpoint {
		t.Errorf("expected endpoint %q, got %q", endpoint, run.Endpoint)
	}
	if run.Subject != subject {
		t.Errorf("expected subject %q, got %q", subject, run.Subject)
	}
	if (run.Err != nil) != failed {
		t.Errorf("expected failed=%v, got err=%v", failed, run.Err)
	}
}
