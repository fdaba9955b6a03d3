package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"StockPulse/internal/domain/models"
	icache "StockPulse/internal/service/cache"
	"StockPulse/internal/services/indicators"
)

// noopMetrics satisfies the Metrics interface while counting calls, so tests
// can assert instrumentation without Prometheus.
type noopMetrics struct {
	mu           sync.Mutex
	computations map[string]int
}

func newNoopMetrics() *noopMetrics {
	return &noopMetrics{computations: map[string]int{}}
}

func (m *noopMetrics) RecordComputation(metric, status string) {
	m.mu.Lock()
	m.computations[metric+"/"+status]++
	m.mu.Unlock()
}
func (m *noopMetrics) RecordLatency(string, float64) {}
func (m *noopMetrics) RecordSeriesPoints(int)        {}
func (m *noopMetrics) RecordError(string)            {}

func testSeries(closes ...float64) models.PriceSeries {
	s := make(models.PriceSeries, len(closes))
	for i, c := range closes {
		s[i] = models.PricePoint{Date: fmt.Sprintf("2024-03-%02d", i+1), Close: c}
	}
	return s
}

func TestComputeBundle(t *testing.T) {
	uc := NewMetricsUseCase(newNoopMetrics())
	res, err := uc.Compute(context.Background(), ComputeParams{
		Series: map[string]models.PriceSeries{
			"AAPL": testSeries(100, 102, 101, 105, 110),
		},
		Windows:   []int{3},
		RSIPeriod: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("expected 1 result, got %d", len(res))
	}
	m := res[0]
	if m.Symbol != "AAPL" || m.Points != 5 {
		t.Fatalf("unexpected bundle header: %+v", m)
	}
	ma, ok := m.MovingAverages["ma_3"]
	if !ok || len(ma) != 5 || ma[0] != nil || ma[2] == nil {
		t.Fatalf("unexpected ma_3: %v", ma)
	}
	if len(m.RSI) != 5 || m.RSI[1] != nil || m.RSI[2] == nil {
		t.Fatalf("unexpected rsi: %v", m.RSI)
	}
	if m.Sharpe == nil || *m.Sharpe <= 0 {
		t.Fatalf("expected positive sharpe, got %v", m.Sharpe)
	}
	if m.MaxDrawdown == nil || *m.MaxDrawdown > 0 {
		t.Fatalf("expected non-positive drawdown, got %v", m.MaxDrawdown)
	}
	if m.Errors != nil {
		t.Fatalf("unexpected errors: %v", m.Errors)
	}
}

func TestComputeResultsSortedBySymbol(t *testing.T) {
	uc := NewMetricsUseCase(newNoopMetrics())
	res, err := uc.Compute(context.Background(), ComputeParams{
		Series: map[string]models.PriceSeries{
			"MSFT": testSeries(100, 101, 102),
			"AAPL": testSeries(200, 201, 202),
			"GOOG": testSeries(300, 301, 302),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"AAPL", "GOOG", "MSFT"}
	for i, sym := range want {
		if res[i].Symbol != sym {
			t.Fatalf("result %d: want %s, got %s", i, sym, res[i].Symbol)
		}
	}
}

func TestComputePerMetricErrorsDoNotAbort(t *testing.T) {
	uc := NewMetricsUseCase(newNoopMetrics())
	res, err := uc.Compute(context.Background(), ComputeParams{
		Series: map[string]models.PriceSeries{
			"FLAT": testSeries(50, 50, 50, 50, 50),
		},
		Windows:   []int{2},
		RSIPeriod: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := res[0]
	if m.Errors["sharpe"] == "" {
		t.Fatalf("expected sharpe error for flat series, got %v", m.Errors)
	}
	if m.Sharpe != nil {
		t.Fatalf("sharpe should stay unset on error")
	}
	if m.MaxDrawdown == nil || *m.MaxDrawdown != 0 {
		t.Fatalf("flat series drawdown should be 0, got %v", m.MaxDrawdown)
	}
	if m.RSI[4] == nil || *m.RSI[4] != 50 {
		t.Fatalf("flat series rsi should be neutral, got %v", m.RSI[4])
	}
}

func TestComputeInvalidSeriesReportedPerSymbol(t *testing.T) {
	bad := testSeries(100, 102)
	bad[1].Close = -1
	uc := NewMetricsUseCase(newNoopMetrics())
	res, err := uc.Compute(context.Background(), ComputeParams{
		Series: map[string]models.PriceSeries{"BAD": bad},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res[0].Errors["series"] == "" {
		t.Fatalf("expected series error, got %v", res[0].Errors)
	}
	if res[0].MovingAverages != nil || res[0].RSI != nil {
		t.Fatalf("invalid series should skip metric computation")
	}
}

func TestComputeEmptyRequest(t *testing.T) {
	uc := NewMetricsUseCase(newNoopMetrics())
	_, err := uc.Compute(context.Background(), ComputeParams{})
	if !errors.Is(err, indicators.ErrInvalidSeries) {
		t.Fatalf("expected ErrInvalidSeries, got %v", err)
	}
}

func TestComputeInvalidWindowRejected(t *testing.T) {
	uc := NewMetricsUseCase(newNoopMetrics())
	_, err := uc.Compute(context.Background(), ComputeParams{
		Series:  map[string]models.PriceSeries{"A": testSeries(100, 101)},
		Windows: []int{-5},
	})
	if !errors.Is(err, indicators.ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestComputeMaxPointsCap(t *testing.T) {
	uc := NewMetricsUseCase(newNoopMetrics()).WithMaxPoints(3)
	_, err := uc.Compute(context.Background(), ComputeParams{
		Series: map[string]models.PriceSeries{"A": testSeries(100, 101, 102, 103)},
	})
	if !errors.Is(err, indicators.ErrInvalidSeries) {
		t.Fatalf("expected ErrInvalidSeries, got %v", err)
	}
}

func TestComputeCacheHit(t *testing.T) {
	rec := newNoopMetrics()
	uc := NewMetricsUseCase(rec).WithCache(icache.NewTTLCache(), time.Minute)
	params := ComputeParams{
		Series: map[string]models.PriceSeries{"A": testSeries(100, 101, 102)},
	}
	first, err := uc.Compute(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Compute(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.computations["bundle/cache_hit"] != 1 {
		t.Fatalf("expected one cache hit, got %d", rec.computations["bundle/cache_hit"])
	}
	if len(first) != len(second) || first[0].Symbol != second[0].Symbol {
		t.Fatalf("cached result differs")
	}
}
