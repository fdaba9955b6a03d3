package indicators

import (
	"fmt"

	"StockPulse/internal/domain/models"
)

// MovingAverage computes the trailing arithmetic mean of closing prices over
// the given window. The result is index-aligned with the input: entries
// before the window fills (i < window-1) are nil. A window larger than the
// series yields an all-nil result rather than an error, so a caller can ask
// for MA50 on a one-month series and simply get warm-up throughout.
func MovingAverage(series models.PriceSeries, window int) ([]*float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: window %d", ErrInvalidWindow, window)
	}
	out := make([]*float64, len(series))
	if window > len(series) {
		return out, nil
	}
	var sum float64
	for i, p := range series {
		sum += p.Close
		if i >= window {
			sum -= series[i-window].Close
		}
		if i >= window-1 {
			v := sum / float64(window)
			out[i] = &v
		}
	}
	return out, nil
}
