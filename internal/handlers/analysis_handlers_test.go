package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/epeers/overlapalert/internal/holdings"
	"github.com/epeers/overlapalert/internal/models"
	"github.com/epeers/overlapalert/internal/services"
	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := services.NewAnalysisService(holdings.NewStaticResolver())
	analysisHandler := NewAnalysisHandler(svc)
	holdingsHandler := NewHoldingsHandler(holdings.NewStaticResolver())

	router := gin.New()
	router.POST("/analyze", analysisHandler.Analyze)
	router.GET("/holdings/:ticker", holdingsHandler.Get)
	return router
}

func TestAnalyzeEndpoint_OK(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(models.AnalyzeRequest{
		Entries: []models.PortfolioEntry{
			{Ticker: "VOO", Type: models.EntryTypeETF},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result.Exposures) != 15 {
		t.Errorf("expected 15 exposures, got %d", len(result.Exposures))
	}
}

func TestAnalyzeEndpoint_MissingEntries(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAnalyzeEndpoint_InvalidEntryType(t *testing.T) {
	router := newTestRouter()

	body := []byte(`{"entries": [{"ticker": "VOO", "type": "bond"}]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHoldingsEndpoint_Found(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/holdings/voo", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.FundResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Fund == nil || resp.Fund.Ticker != "VOO" {
		t.Errorf("unexpected fund: %+v", resp.Fund)
	}
}

func TestHoldingsEndpoint_NotFound(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/holdings/ZZZZ", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "Data for ZZZZ not found" {
		t.Errorf("unexpected error body: %q", resp.Error)
	}
}
