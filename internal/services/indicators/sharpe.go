package indicators

import (
	"fmt"
	"math"

	"StockPulse/internal/domain/models"
)

// Sharpe computes the annualized Sharpe ratio of a price series:
// (mean(r) - riskFree/periodsPerYear) / stdev(r) * sqrt(periodsPerYear),
// where r is the simple return series and stdev is the sample standard
// deviation (n-1). riskFree is an annual rate.
func Sharpe(series models.PriceSeries, riskFree float64, periodsPerYear int) (float64, error) {
	if len(series) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 points, got %d", ErrDegenerateSeries, len(series))
	}
	return SharpeFromReturns(Returns(series), riskFree, periodsPerYear)
}

// SharpeFromReturns is the return-series form of Sharpe, used for the
// portfolio aggregate where no underlying price series exists.
func SharpeFromReturns(returns []float64, riskFree float64, periodsPerYear int) (float64, error) {
	if periodsPerYear <= 0 {
		return 0, fmt.Errorf("%w: periods per year %d", ErrInvalidWindow, periodsPerYear)
	}
	if len(returns) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 returns, got %d", ErrDegenerateSeries, len(returns))
	}

	m := mean(returns)
	var ss float64
	for _, r := range returns {
		d := r - m
		ss += d * d
	}
	std := math.Sqrt(ss / float64(len(returns)-1))
	if std == 0 {
		return 0, fmt.Errorf("%w: zero return variance", ErrDegenerateSeries)
	}

	excess := m - riskFree/float64(periodsPerYear)
	return excess / std * math.Sqrt(float64(periodsPerYear)), nil
}
