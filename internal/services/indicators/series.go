package indicators

import (
	"fmt"

	"StockPulse/internal/domain/models"
	"StockPulse/pkg/util"
)

// ValidateSeries checks the invariants the engine assumes upstream enforced:
// at least one point, positive closes, strictly ascending calendar dates.
func ValidateSeries(series models.PriceSeries) error {
	if len(series) == 0 {
		return fmt.Errorf("%w: empty series", ErrInvalidSeries)
	}
	var prev string
	for i, p := range series {
		d, ok := util.ParseDay(p.Date)
		if !ok {
			return fmt.Errorf("%w: bad date %q at index %d", ErrInvalidSeries, p.Date, i)
		}
		if p.Close <= 0 {
			return fmt.Errorf("%w: non-positive close %v at index %d", ErrInvalidSeries, p.Close, i)
		}
		day := util.FormatDay(d)
		if i > 0 && day <= prev {
			return fmt.Errorf("%w: dates not strictly ascending at index %d", ErrInvalidSeries, i)
		}
		prev = day
	}
	return nil
}

// Returns derives the simple daily return series, one element shorter than
// the source: r[i] = (close[i+1] - close[i]) / close[i]. Recomputed on
// demand, never stored.
func Returns(series models.PriceSeries) []float64 {
	if len(series) < 2 {
		return nil
	}
	out := make([]float64, len(series)-1)
	for i := 1; i < len(series); i++ {
		out[i-1] = (series[i].Close - series[i-1].Close) / series[i-1].Close
	}
	return out
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
