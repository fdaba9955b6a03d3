package models

import "time"

// StockMetrics bundles the computed indicator series and risk scalars for one
// symbol. Derived series are index-aligned with the source price series; nil
// entries (JSON null) mark warm-up positions where the trailing window has not
// filled yet, so callers can plot everything on a shared date axis.
//
// A failed metric never fails the bundle: the cause is recorded under its
// metric name in Errors and the field stays unset.
type StockMetrics struct {
	Symbol         string                `json:"symbol"`
	Points         int                   `json:"points"`
	MovingAverages map[string][]*float64 `json:"moving_averages,omitempty"`
	RSI            []*float64            `json:"rsi,omitempty"`
	Sharpe         *float64              `json:"sharpe,omitempty"`
	MaxDrawdown    *float64              `json:"max_drawdown,omitempty"`
	Errors         map[string]string     `json:"errors,omitempty"`
}

// PortfolioMetrics is the weighted aggregate view over several symbols.
// Returns holds the normalized weighted daily return series; Cumulative is the
// synthetic value series starting at 1.0 compounding those returns.
// MaxDrawdown follows the engine convention: a non-positive fraction where 0
// means the aggregate value never declined.
type PortfolioMetrics struct {
	Symbols     []string           `json:"symbols"`
	Weights     map[string]float64 `json:"weights"`
	Timestamp   time.Time          `json:"timestamp"`
	Returns     []float64          `json:"returns"`
	Cumulative  []float64          `json:"cumulative"`
	Sharpe      *float64           `json:"sharpe,omitempty"`
	MaxDrawdown float64            `json:"max_drawdown"`
	Errors      map[string]string  `json:"errors,omitempty"`
}
