package indicators

import (
	"fmt"

	"StockPulse/internal/domain/models"
)

// RSI computes the Relative Strength Index over the trailing period using
// simple moving averages of gains and losses (not Wilder's exponential
// smoothing; the two give materially different values, and the simple average
// keeps results exactly reproducible). The result is index-aligned with the
// input; entries with fewer than `period` trailing deltas (i < period) are
// nil.
//
// Conventions at the edges: RSI is 100 when the trailing window has gains and
// no losses, and 50 (neutral) when the price is flat for the entire window.
func RSI(series models.PriceSeries, period int) ([]*float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: period %d", ErrInvalidWindow, period)
	}
	out := make([]*float64, len(series))
	if len(series) <= period {
		return out, nil
	}

	gains := make([]float64, len(series))
	losses := make([]float64, len(series))
	for i := 1; i < len(series); i++ {
		d := series[i].Close - series[i-1].Close
		if d > 0 {
			gains[i] = d
		} else {
			losses[i] = -d
		}
	}

	var gainSum, lossSum float64
	for i := 1; i < len(series); i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > period {
			gainSum -= gains[i-period]
			lossSum -= losses[i-period]
		}
		if i >= period {
			v := rsiValue(gainSum/float64(period), lossSum/float64(period))
			out[i] = &v
		}
	}
	return out, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	switch {
	case avgGain == 0 && avgLoss == 0:
		return 50
	case avgLoss == 0:
		return 100
	default:
		rs := avgGain / avgLoss
		return 100 - 100/(1+rs)
	}
}
