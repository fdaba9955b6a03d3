package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"StockPulse/internal/domain/models"
	domrepo "StockPulse/internal/domain/repository"
	"StockPulse/internal/services/indicators"
)

// PortfolioUseCase aggregates per-stock returns into a weighted portfolio
// view and applies the scalar risk metrics to the aggregate.
type PortfolioUseCase struct {
	metrics   domrepo.Metrics
	publisher domrepo.Publisher
}

func NewPortfolioUseCase(metrics domrepo.Metrics) *PortfolioUseCase {
	return &PortfolioUseCase{metrics: metrics}
}

// WithPublisher enables publishing computed snapshots for downstream
// consumers. Publishing is best effort and never fails the computation.
func (uc *PortfolioUseCase) WithPublisher(p domrepo.Publisher) *PortfolioUseCase {
	uc.publisher = p
	return uc
}

type AggregateParams struct {
	Series         map[string]models.PriceSeries
	Weights        map[string]float64
	RiskFreeRate   float64
	PeriodsPerYear int
}

func (uc *PortfolioUseCase) Aggregate(ctx context.Context, p AggregateParams) (*models.PortfolioMetrics, error) {
	if p.PeriodsPerYear == 0 {
		p.PeriodsPerYear = 252
	}

	start := time.Now()
	returns, err := indicators.AggregatePortfolio(p.Series, p.Weights)
	if err != nil {
		uc.metrics.RecordComputation("portfolio", "error")
		return nil, err
	}

	symbols := make([]string, 0, len(p.Series))
	for sym := range p.Series {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	res := &models.PortfolioMetrics{
		Symbols:     symbols,
		Weights:     p.Weights,
		Timestamp:   time.Now().UTC(),
		Returns:     returns,
		Cumulative:  indicators.CumulativeValues(returns),
		MaxDrawdown: indicators.MaxDrawdownFromReturns(returns),
		Errors:      map[string]string{},
	}

	if sharpe, err := indicators.SharpeFromReturns(returns, p.RiskFreeRate, p.PeriodsPerYear); err != nil {
		res.Errors["sharpe"] = err.Error()
		uc.metrics.RecordComputation("sharpe", "error")
	} else {
		res.Sharpe = &sharpe
		uc.metrics.RecordComputation("sharpe", "ok")
	}

	uc.metrics.RecordComputation("portfolio", "ok")
	uc.metrics.RecordLatency("aggregate_portfolio", time.Since(start).Seconds())

	if len(res.Errors) == 0 {
		res.Errors = nil
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, strings.Join(symbols, ","), res); err != nil {
			uc.metrics.RecordError("publish")
		}
	}
	return res, nil
}
