package indicators

import "errors"

// Sentinel errors for the metric computations. Every failure is a
// deterministic function of malformed input; callers match with errors.Is.
var (
	// ErrInvalidSeries marks an empty series, a non-positive close, or dates
	// that are not strictly ascending.
	ErrInvalidSeries = errors.New("invalid price series")

	// ErrInvalidWindow marks a non-positive window or period.
	ErrInvalidWindow = errors.New("invalid window")

	// ErrDegenerateSeries marks a series too short for Sharpe or one with zero
	// return variance.
	ErrDegenerateSeries = errors.New("degenerate series")

	// ErrMisalignedSeries marks portfolio inputs that do not share a date axis.
	ErrMisalignedSeries = errors.New("misaligned series")

	// ErrInvalidWeights marks portfolio weights with a non-positive sum.
	ErrInvalidWeights = errors.New("invalid weights")
)
