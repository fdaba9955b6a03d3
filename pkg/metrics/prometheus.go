package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	computations *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	seriesPoints prometheus.Histogram
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		computations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpulse_computations_total",
				Help: "Total metric computations by metric name and status",
			},
			[]string{"metric", "status"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockpulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		seriesPoints: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "stockpulse_series_points",
				Help:    "Number of price points per submitted series",
				Buckets: []float64{10, 21, 63, 126, 252, 504, 1260, 2520},
			},
		),
	}
}

// RecordComputation records the outcome of one metric computation.
func (r *Recorder) RecordComputation(metric, status string) {
	r.computations.WithLabelValues(metric, status).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordSeriesPoints records the length of a submitted price series.
func (r *Recorder) RecordSeriesPoints(n int) {
	r.seriesPoints.Observe(float64(n))
}
