package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"StockPulse/internal/usecase"
	xlogger "StockPulse/pkg/logger"
)

type testMetrics struct{}

func (testMetrics) RecordComputation(string, string) {}
func (testMetrics) RecordLatency(string, float64)    {}
func (testMetrics) RecordSeriesPoints(int)           {}
func (testMetrics) RecordError(string)               {}

func newTestHandler(t *testing.T) *MetricsEchoHandler {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	m := testMetrics{}
	return NewMetricsEchoHandler(l, usecase.NewMetricsUseCase(m), usecase.NewPortfolioUseCase(m))
}

func doRequest(h *MetricsEchoHandler, method, path, body string) *httptest.ResponseRecorder {
	e := echo.New()
	h.RegisterRoutes(e)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const validSeries = `{"AAPL":[
	{"date":"2024-01-01","close":100},
	{"date":"2024-01-02","close":102},
	{"date":"2024-01-03","close":101},
	{"date":"2024-01-04","close":105},
	{"date":"2024-01-05","close":110}]}`

func TestMetricsEndpoint(t *testing.T) {
	rec := doRequest(newTestHandler(t), http.MethodPost, "/api/metrics",
		`{"series":`+validSeries+`,"windows":[3],"rsi_period":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data []struct {
			Symbol string                `json:"symbol"`
			RSI    []*float64            `json:"rsi"`
			MAs    map[string][]*float64 `json:"moving_averages"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Symbol != "AAPL" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if resp.Data[0].RSI[0] != nil || resp.Data[0].RSI[2] == nil {
		t.Fatalf("warm-up entries should serialize as null: %s", rec.Body.String())
	}
	if _, ok := resp.Data[0].MAs["ma_3"]; !ok {
		t.Fatalf("expected ma_3 in response: %s", rec.Body.String())
	}
}

func TestMetricsEndpointMissingSeries(t *testing.T) {
	rec := doRequest(newTestHandler(t), http.MethodPost, "/api/metrics", `{"windows":[3]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMetricsEndpointInvalidWindowRejected(t *testing.T) {
	rec := doRequest(newTestHandler(t), http.MethodPost, "/api/metrics",
		`{"series":`+validSeries+`,"windows":[0]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPortfolioEndpoint(t *testing.T) {
	rec := doRequest(newTestHandler(t), http.MethodPost, "/api/portfolio",
		`{"series":`+validSeries+`,"weights":{"AAPL":1}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPortfolioEndpointMisaligned(t *testing.T) {
	body := `{"series":{
		"A":[{"date":"2024-01-01","close":100},{"date":"2024-01-02","close":102}],
		"B":[{"date":"2024-01-01","close":200}]},
		"weights":{"A":1,"B":1}}`
	rec := doRequest(newTestHandler(t), http.MethodPost, "/api/portfolio", body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "ERR_MISALIGNED_SERIES") {
		t.Fatalf("expected ERR_MISALIGNED_SERIES code: %s", rec.Body.String())
	}
}

func TestPortfolioEndpointInvalidWeights(t *testing.T) {
	body := `{"series":` + validSeries + `,"weights":{"AAPL":0}}`
	rec := doRequest(newTestHandler(t), http.MethodPost, "/api/portfolio", body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "ERR_INVALID_WEIGHTS") {
		t.Fatalf("expected ERR_INVALID_WEIGHTS code: %s", rec.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	rec := doRequest(newTestHandler(t), http.MethodGet, "/api/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	h := newTestHandler(t).WithRateLimit(2, 0)
	e := echo.New()
	h.RegisterRoutes(e)

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after exhausting bucket, got %d", last)
	}
}
