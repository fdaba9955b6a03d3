package di

import (
	"fmt"

	domrepo "StockPulse/internal/domain/repository"
	"StockPulse/internal/handler/api"
	internalrepo "StockPulse/internal/repository"
	icache "StockPulse/internal/service/cache"
	"StockPulse/internal/usecase"
	"StockPulse/pkg/config"
	pkgkafka "StockPulse/pkg/kafka"
	applogger "StockPulse/pkg/logger"
	"StockPulse/pkg/metrics"
	"StockPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideCache creates the result cache backend configured in YAML.
func ProvideCache(cfg *config.Config) icache.BytesCache {
	if cfg.Cache.Backend == "redis" {
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return icache.NewTTLCache()
}

// ProvidePublisher creates the optional Kafka snapshot publisher.
// Returns nil when Kafka is disabled; the portfolio use case treats a nil
// publisher as "do not publish".
func ProvidePublisher(cfg *config.Config) (domrepo.Publisher, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, cfg.Kafka.ReadTimeout),
		pkgkafka.WithAsync(cfg.Kafka.Async),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaSnapshotPublisher(producer, cfg.Kafka.Topic), nil
}

// ProvideMetricsUseCase creates the per-stock metrics use case.
func ProvideMetricsUseCase(cfg *config.Config, m domrepo.Metrics, cache icache.BytesCache) *usecase.MetricsUseCase {
	return usecase.NewMetricsUseCase(m).
		WithCache(cache, cfg.Cache.TTL).
		WithMaxPoints(cfg.Engine.MaxPoints)
}

// ProvidePortfolioUseCase creates the portfolio aggregation use case.
func ProvidePortfolioUseCase(m domrepo.Metrics, pub domrepo.Publisher) *usecase.PortfolioUseCase {
	uc := usecase.NewPortfolioUseCase(m)
	if pub != nil {
		uc.WithPublisher(pub)
	}
	return uc
}

// ProvideHandler creates the Echo API handler.
func ProvideHandler(cfg *config.Config, l *applogger.Logger, muc *usecase.MetricsUseCase, puc *usecase.PortfolioUseCase) *api.MetricsEchoHandler {
	h := api.NewMetricsEchoHandler(l, muc, puc)
	if cfg.RateLimit.Enabled {
		h.WithRateLimit(cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec)
	}
	return h
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h *api.MetricsEchoHandler, pub domrepo.Publisher) *server.App {
	return server.New(cfg, l, h, pub)
}
