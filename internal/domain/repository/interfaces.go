package repository

import "context"

// Publisher sends computed metric snapshots to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, key string, snapshot interface{}) error
	Close() error
}

// Metrics records operational metrics for the engine and its API.
type Metrics interface {
	RecordComputation(metric, status string)
	RecordLatency(op string, seconds float64)
	RecordSeriesPoints(n int)
	RecordError(kind string)
}
