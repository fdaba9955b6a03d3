package models

// PricePoint is one daily observation of a symbol's closing price.
// Date uses the YYYY-MM-DD calendar form; dates within a series are strictly
// ascending but need not be contiguous (no forced trading-day calendar).
type PricePoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// PriceSeries is an ordered daily price history for one symbol.
// The engine only reads it; ownership stays with the caller.
type PriceSeries []PricePoint

// Closes extracts the closing prices in order.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Close
	}
	return out
}
