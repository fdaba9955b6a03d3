package indicators

import "StockPulse/internal/domain/models"

// MaxDrawdown returns the largest peak-to-trough decline of the cumulative
// value series close[i]/close[0], as a non-positive fraction (-0.0098 means a
// 0.98% decline). A series that never declines yields 0, as does a series
// shorter than 2 points.
func MaxDrawdown(series models.PriceSeries) float64 {
	if len(series) < 2 {
		return 0
	}
	values := make([]float64, len(series))
	for i, p := range series {
		values[i] = p.Close / series[0].Close
	}
	return maxDrawdownOf(values)
}

// MaxDrawdownFromReturns applies the same formula to a synthetic value series
// starting at 1.0 and compounding the given returns. Used for the portfolio
// aggregate; with a single stock at weight 1.0 the synthetic series equals
// close[i]/close[0], so the stock's own drawdown is reproduced exactly.
func MaxDrawdownFromReturns(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	return maxDrawdownOf(CumulativeValues(returns))
}

// CumulativeValues compounds a return series into a value series starting at
// 1.0; the result has one more element than the input.
func CumulativeValues(returns []float64) []float64 {
	values := make([]float64, len(returns)+1)
	values[0] = 1
	for i, r := range returns {
		values[i+1] = values[i] * (1 + r)
	}
	return values
}

func maxDrawdownOf(values []float64) float64 {
	peak := values[0]
	worst := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			if dd := (v - peak) / peak; dd < worst {
				worst = dd
			}
		}
	}
	return worst
}
