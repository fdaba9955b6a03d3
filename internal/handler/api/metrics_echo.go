package api

import (
	"StockPulse/internal/domain/models"
	"StockPulse/internal/service/ratelimit"
	"StockPulse/internal/usecase"
	xhttp "StockPulse/pkg/http"
	xlogger "StockPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MetricsEchoHandler implements Echo-based HTTP handlers following Clean Architecture.
type MetricsEchoHandler struct {
	logger    *xlogger.Logger
	metrics   *usecase.MetricsUseCase
	portfolio *usecase.PortfolioUseCase

	limiter     *ratelimit.Limiter
	limitCap    float64
	limitRefill float64
}

func NewMetricsEchoHandler(logger *xlogger.Logger, metrics *usecase.MetricsUseCase, portfolio *usecase.PortfolioUseCase) *MetricsEchoHandler {
	return &MetricsEchoHandler{logger: logger, metrics: metrics, portfolio: portfolio}
}

// WithRateLimit enables a per-client token bucket on the API group.
func (h *MetricsEchoHandler) WithRateLimit(capacity, refillPerSec float64) *MetricsEchoHandler {
	h.limiter = ratelimit.New()
	h.limitCap = capacity
	h.limitRefill = refillPerSec
	return h
}

func (h *MetricsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	if h.limiter != nil {
		g.Use(h.rateLimit)
	}
	g.POST("/metrics", h.Metrics)
	g.POST("/portfolio", h.Portfolio)
	g.GET("/healthz", h.Health)
}

func (h *MetricsEchoHandler) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.limiter.Allow(c.RealIP(), h.limitCap, h.limitRefill) {
			return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("rate limit exceeded"))
		}
		return next(c)
	}
}

func (h *MetricsEchoHandler) Metrics(c echo.Context) error {
	req := &models.MetricsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.metrics.Compute(c.Request().Context(), usecase.ComputeParams{
		Series:         req.Series,
		Windows:        req.Windows,
		RSIPeriod:      req.RSIPeriod,
		RiskFreeRate:   req.RiskFreeRate,
		PeriodsPerYear: req.PeriodsPerYear,
	})
	if err != nil {
		h.logger.Error("metrics usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *MetricsEchoHandler) Portfolio(c echo.Context) error {
	req := &models.PortfolioRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.portfolio.Aggregate(c.Request().Context(), usecase.AggregateParams{
		Series:         req.Series,
		Weights:        req.Weights,
		RiskFreeRate:   req.RiskFreeRate,
		PeriodsPerYear: req.PeriodsPerYear,
	})
	if err != nil {
		h.logger.Error("portfolio usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, engineError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *MetricsEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}
