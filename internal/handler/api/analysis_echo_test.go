package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"StockSage/internal/domain/models"
	"StockSage/internal/services/classify"
	"StockSage/internal/services/features"
	"StockSage/internal/services/pricing"
	"StockSage/internal/usecase"
	"StockSage/pkg/config"
	applogger "StockSage/pkg/logger"

	"github.com/labstack/echo/v4"
)

type nopMetrics struct{}

func (nopMetrics) RecordAnalysis(source, recommendation string) {}
func (nopMetrics) RecordError(kind string)                      {}
func (nopMetrics) RecordLastPrice(symbol string, price float64) {}
func (nopMetrics) RecordLatency(op string, seconds float64)     {}

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	log := applogger.Nop()
	analyzer := usecase.NewAnalyzer(
		pricing.NewResolver(cfg, nil, log),
		features.NewDeriver(cfg.Features),
		classify.NewRuleEngine(cfg.Rules),
		classify.DefaultAccuracy,
		nopMetrics{},
		log,
	)

	e := echo.New()
	NewAnalysisEchoHandler(log, analyzer).RegisterRoutes(e)
	return e
}

func doGET(t *testing.T, e *echo.Echo, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeEndpoint(t *testing.T) {
	e := testServer(t)

	rec := doGET(t, e, "/api/analyze/AAPL")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Status int                         `json:"status"`
		Data   models.RecommendationResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.Symbol != "AAPL" {
		t.Errorf("symbol = %q, want AAPL", body.Data.Symbol)
	}
	if body.Data.Recommendation == "" {
		t.Error("recommendation must be set")
	}
	if body.Data.DataSource != models.SourceStaticTable {
		t.Errorf("data source = %q, want static table", body.Data.DataSource)
	}
}

func TestAnalyzeEndpointUnknownSymbol(t *testing.T) {
	e := testServer(t)

	rec := doGET(t, e, "/api/analyze/ZZZZ")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (engine is total)", rec.Code)
	}

	var body struct {
		Data models.RecommendationResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.DataSource != models.SourceSimulated {
		t.Errorf("data source = %q, want simulated", body.Data.DataSource)
	}
	if body.Data.Price <= 0 {
		t.Errorf("price = %v, want positive", body.Data.Price)
	}
}

func TestAccuracyEndpoint(t *testing.T) {
	e := testServer(t)

	rec := doGET(t, e, "/api/accuracy")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Data struct {
			OverallAccuracy float64 `json:"overall_accuracy"`
			ModelType       string  `json:"model_type"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.OverallAccuracy != 0.782 {
		t.Errorf("overall accuracy = %v, want 0.782", body.Data.OverallAccuracy)
	}
	if body.Data.ModelType == "" {
		t.Error("model type must be set")
	}
}

func TestHealthEndpoint(t *testing.T) {
	e := testServer(t)

	rec := doGET(t, e, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
