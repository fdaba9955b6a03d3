package models

// Requests for the metrics HTTP endpoints. Defined in domain for consistency
// and reuse. Defaults mirror the engine conventions: MA windows 20/50, RSI
// period 14, 252 trading periods per year, zero risk-free rate.

type MetricsRequest struct {
	Series         map[string]PriceSeries `json:"series" validate:"required,min=1,max=50"`
	Windows        []int                  `json:"windows" default:"[20,50]" validate:"max=8,dive,gte=1,lte=500"`
	RSIPeriod      int                    `json:"rsi_period" default:"14" validate:"gte=1,lte=250"`
	RiskFreeRate   float64                `json:"risk_free_rate" validate:"gte=-1,lte=1"`
	PeriodsPerYear int                    `json:"periods_per_year" default:"252" validate:"gte=1,lte=366"`
}

type PortfolioRequest struct {
	Series         map[string]PriceSeries `json:"series" validate:"required,min=1,max=50"`
	Weights        map[string]float64     `json:"weights" validate:"required,min=1"`
	RiskFreeRate   float64                `json:"risk_free_rate" validate:"gte=-1,lte=1"`
	PeriodsPerYear int                    `json:"periods_per_year" default:"252" validate:"gte=1,lte=366"`
}
