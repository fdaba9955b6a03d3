package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"StockPulse/internal/domain/models"
	domrepo "StockPulse/internal/domain/repository"
	icache "StockPulse/internal/service/cache"
	"StockPulse/internal/services/indicators"
)

// MetricsUseCase computes per-stock metrics bundles. Each symbol is
// independent, so computation fans out across goroutines; correctness does
// not depend on ordering and results come back sorted by symbol.
type MetricsUseCase struct {
	metrics   domrepo.Metrics
	cache     icache.BytesCache
	cacheTTL  time.Duration
	maxPoints int
}

func NewMetricsUseCase(metrics domrepo.Metrics) *MetricsUseCase {
	return &MetricsUseCase{metrics: metrics, maxPoints: 10000}
}

// WithCache enables caching of computed bundles keyed by a request hash.
func (uc *MetricsUseCase) WithCache(c icache.BytesCache, ttl time.Duration) *MetricsUseCase {
	uc.cache = c
	uc.cacheTTL = ttl
	return uc
}

// WithMaxPoints caps the accepted series length.
func (uc *MetricsUseCase) WithMaxPoints(n int) *MetricsUseCase {
	if n > 0 {
		uc.maxPoints = n
	}
	return uc
}

type ComputeParams struct {
	Series         map[string]models.PriceSeries
	Windows        []int
	RSIPeriod      int
	RiskFreeRate   float64
	PeriodsPerYear int
}

func (uc *MetricsUseCase) Compute(ctx context.Context, p ComputeParams) ([]models.StockMetrics, error) {
	if len(p.Series) == 0 {
		return nil, fmt.Errorf("%w: no series", indicators.ErrInvalidSeries)
	}
	if len(p.Windows) == 0 {
		p.Windows = []int{20, 50}
	}
	if p.RSIPeriod == 0 {
		p.RSIPeriod = 14
	}
	if p.PeriodsPerYear == 0 {
		p.PeriodsPerYear = 252
	}
	for _, w := range p.Windows {
		if w <= 0 {
			return nil, fmt.Errorf("%w: window %d", indicators.ErrInvalidWindow, w)
		}
	}
	if p.RSIPeriod < 0 {
		return nil, fmt.Errorf("%w: period %d", indicators.ErrInvalidWindow, p.RSIPeriod)
	}
	for sym, s := range p.Series {
		if len(s) > uc.maxPoints {
			return nil, fmt.Errorf("%w: %s has %d points, limit %d",
				indicators.ErrInvalidSeries, sym, len(s), uc.maxPoints)
		}
	}

	key := uc.cacheKey(p)
	if uc.cache != nil && key != "" {
		if b, ok, err := uc.cache.GetBytes(key); err == nil && ok {
			var cached []models.StockMetrics
			if err := json.Unmarshal(b, &cached); err == nil {
				uc.metrics.RecordComputation("bundle", "cache_hit")
				return cached, nil
			}
		}
	}

	start := time.Now()
	ch := make(chan models.StockMetrics, len(p.Series))
	var wg sync.WaitGroup
	for sym, series := range p.Series {
		wg.Add(1)
		go func(sym string, series models.PriceSeries) {
			defer wg.Done()
			ch <- uc.computeOne(sym, series, p)
		}(sym, series)
	}
	go func() { wg.Wait(); close(ch) }()

	results := make([]models.StockMetrics, 0, len(p.Series))
	for m := range ch {
		results = append(results, m)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Symbol < results[j].Symbol })

	uc.metrics.RecordLatency("compute_bundle", time.Since(start).Seconds())

	if uc.cache != nil && key != "" {
		if b, err := json.Marshal(results); err == nil {
			_ = uc.cache.SetBytes(key, b, uc.cacheTTL)
		}
	}
	return results, nil
}

// computeOne builds the full bundle for one symbol. Per-metric failures are
// recorded under the metric name and never abort the bundle.
func (uc *MetricsUseCase) computeOne(sym string, series models.PriceSeries, p ComputeParams) models.StockMetrics {
	res := models.StockMetrics{
		Symbol: sym,
		Points: len(series),
		Errors: map[string]string{},
	}
	uc.metrics.RecordSeriesPoints(len(series))

	if err := indicators.ValidateSeries(series); err != nil {
		res.Errors["series"] = err.Error()
		uc.metrics.RecordComputation("series", "error")
		uc.metrics.RecordError("invalid_series")
		return res
	}

	res.MovingAverages = make(map[string][]*float64, len(p.Windows))
	for _, w := range p.Windows {
		name := fmt.Sprintf("ma_%d", w)
		ma, err := indicators.MovingAverage(series, w)
		if err != nil {
			res.Errors[name] = err.Error()
			uc.metrics.RecordComputation("ma", "error")
			continue
		}
		res.MovingAverages[name] = ma
		uc.metrics.RecordComputation("ma", "ok")
	}

	if rsi, err := indicators.RSI(series, p.RSIPeriod); err != nil {
		res.Errors["rsi"] = err.Error()
		uc.metrics.RecordComputation("rsi", "error")
	} else {
		res.RSI = rsi
		uc.metrics.RecordComputation("rsi", "ok")
	}

	if sharpe, err := indicators.Sharpe(series, p.RiskFreeRate, p.PeriodsPerYear); err != nil {
		res.Errors["sharpe"] = err.Error()
		uc.metrics.RecordComputation("sharpe", "error")
	} else {
		res.Sharpe = &sharpe
		uc.metrics.RecordComputation("sharpe", "ok")
	}

	dd := indicators.MaxDrawdown(series)
	res.MaxDrawdown = &dd
	uc.metrics.RecordComputation("drawdown", "ok")

	if len(res.Errors) == 0 {
		res.Errors = nil
	}
	return res
}

// cacheKey hashes the full parameter set; map marshaling is key-sorted so the
// hash is deterministic for identical requests.
func (uc *MetricsUseCase) cacheKey(p ComputeParams) string {
	b, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return "metrics:" + hex.EncodeToString(sum[:])
}
