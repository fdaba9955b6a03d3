package indicators

import "testing"

func TestMaxDrawdownConcrete(t *testing.T) {
	got := MaxDrawdown(seriesOf(100, 102, 101, 105, 110))
	want := -1.0 / 102
	if !almostEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestMaxDrawdownMonotonicRiseIsZero(t *testing.T) {
	if got := MaxDrawdown(seriesOf(100, 101, 105, 110)); got != 0 {
		t.Fatalf("want 0, got %v", got)
	}
}

func TestMaxDrawdownNeverPositive(t *testing.T) {
	cases := [][]float64{
		{100, 102, 101, 105, 110},
		{110, 100, 120, 90, 130},
		{50, 50, 50},
		{100, 99, 98, 97},
	}
	for _, closes := range cases {
		if got := MaxDrawdown(seriesOf(closes...)); got > 0 {
			t.Fatalf("drawdown of %v is positive: %v", closes, got)
		}
	}
}

func TestMaxDrawdownFullDecline(t *testing.T) {
	got := MaxDrawdown(seriesOf(100, 99, 98, 50))
	if !almostEqual(got, -0.5) {
		t.Fatalf("want -0.5, got %v", got)
	}
}

func TestMaxDrawdownShortSeries(t *testing.T) {
	if got := MaxDrawdown(seriesOf(100)); got != 0 {
		t.Fatalf("want 0, got %v", got)
	}
	if got := MaxDrawdown(nil); got != 0 {
		t.Fatalf("want 0, got %v", got)
	}
}

func TestCumulativeValues(t *testing.T) {
	got := CumulativeValues([]float64{0.1, -0.5})
	want := []float64{1, 1.1, 0.55}
	if len(got) != len(want) {
		t.Fatalf("expected length %d, got %d", len(want), len(got))
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Fatalf("value[%d]: want %v, got %v", i, want[i], got[i])
		}
	}
}

func TestMaxDrawdownFromReturnsMatchesSeries(t *testing.T) {
	s := seriesOf(100, 102, 101, 105, 110)
	fromSeries := MaxDrawdown(s)
	fromReturns := MaxDrawdownFromReturns(Returns(s))
	if !almostEqual(fromSeries, fromReturns) {
		t.Fatalf("series %v != returns %v", fromSeries, fromReturns)
	}
}
