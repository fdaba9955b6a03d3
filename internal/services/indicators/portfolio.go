package indicators

import (
	"fmt"
	"sort"

	"StockPulse/internal/domain/models"
)

// AggregatePortfolio combines per-symbol price series into a single weighted
// daily return series: WeightedReturn[i] = sum(w[s] * r[s][i]) / sum(w).
//
// Alignment policy is strict validation, not an implicit join: every series
// must have the same length and identical dates index-for-index, otherwise
// ErrMisalignedSeries. Weights need not sum to 1; the result is normalized by
// the weight sum, which must be positive (ErrInvalidWeights otherwise).
// Symbols without a weight contribute zero.
func AggregatePortfolio(series map[string]models.PriceSeries, weights map[string]float64) ([]float64, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: no series", ErrInvalidSeries)
	}

	symbols := make([]string, 0, len(series))
	for sym := range series {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	for _, sym := range symbols {
		if err := ValidateSeries(series[sym]); err != nil {
			return nil, fmt.Errorf("%s: %w", sym, err)
		}
	}

	ref := series[symbols[0]]
	for _, sym := range symbols[1:] {
		s := series[sym]
		if len(s) != len(ref) {
			return nil, fmt.Errorf("%w: %s has %d points, %s has %d",
				ErrMisalignedSeries, sym, len(s), symbols[0], len(ref))
		}
		for i := range s {
			if s[i].Date != ref[i].Date {
				return nil, fmt.Errorf("%w: %s date %s != %s date %s at index %d",
					ErrMisalignedSeries, sym, s[i].Date, symbols[0], ref[i].Date, i)
			}
		}
	}

	var total float64
	for _, sym := range symbols {
		total += weights[sym]
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: weight sum %v", ErrInvalidWeights, total)
	}

	out := make([]float64, len(ref)-1)
	for _, sym := range symbols {
		w := weights[sym] / total
		if w == 0 {
			continue
		}
		for i, r := range Returns(series[sym]) {
			out[i] += w * r
		}
	}
	return out, nil
}
