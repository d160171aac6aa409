package tracker

import (
	"math"
	"testing"

	"github.com/etnz/tracker/date"
)

// approx compares floats with a tolerance fit for chained arithmetic.
func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func priceSeries(values ...float64) *date.History {
	h := new(date.History)
	on := date.New(2025, 7, 1)
	for i, v := range values {
		h.Append(on.Add(i), v)
	}
	return h
}

func TestDailyReturns(t *testing.T) {
	returns := DailyReturns(priceSeries(100, 110, 99))

	if returns.Len() != 2 {
		t.Fatalf("DailyReturns().Len() = %d, want 2 (first observation dropped)", returns.Len())
	}
	r1, ok := returns.Get(date.New(2025, 7, 2))
	if !ok || !approx(r1, 0.10) {
		t.Errorf("return on day 2 = %v, %v; want 0.10", r1, ok)
	}
	r2, ok := returns.Get(date.New(2025, 7, 3))
	if !ok || !approx(r2, -0.10) {
		t.Errorf("return on day 3 = %v, %v; want -0.10", r2, ok)
	}
}

func TestDailyReturns_TooShort(t *testing.T) {
	if got := DailyReturns(priceSeries(100)); got.Len() != 0 {
		t.Errorf("DailyReturns(single point).Len() = %d, want 0", got.Len())
	}
	if got := DailyReturns(new(date.History)); got.Len() != 0 {
		t.Errorf("DailyReturns(empty).Len() = %d, want 0", got.Len())
	}
}

func TestCumulativeReturns(t *testing.T) {
	returns := DailyReturns(priceSeries(100, 110, 99))
	cumulative := CumulativeReturns(returns)

	c1, _ := cumulative.Get(date.New(2025, 7, 2))
	if !approx(c1, 0.10) {
		t.Errorf("cumulative on day 2 = %v, want 0.10", c1)
	}
	// 1.10 * 0.90 - 1 = -0.01: back below the start.
	c2, _ := cumulative.Get(date.New(2025, 7, 3))
	if !approx(c2, -0.01) {
		t.Errorf("cumulative on day 3 = %v, want -0.01", c2)
	}
}

func TestNormalize(t *testing.T) {
	normalized := Normalize(priceSeries(50, 55, 40))

	first, v := normalized.First()
	if first != date.New(2025, 7, 1) || v != 100 {
		t.Errorf("First() = %v, %v; want 2025-07-01, exactly 100", first, v)
	}
	v2, _ := normalized.Get(date.New(2025, 7, 2))
	if !approx(v2, 110) {
		t.Errorf("normalized day 2 = %v, want 110", v2)
	}
	v3, _ := normalized.Get(date.New(2025, 7, 3))
	if !approx(v3, 80) {
		t.Errorf("normalized day 3 = %v, want 80", v3)
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(new(date.History)); got.Len() != 0 {
		t.Errorf("Normalize(empty).Len() = %d, want 0", got.Len())
	}
}

func TestAnnualizedVolatility(t *testing.T) {
	returns := new(date.History)
	returns.Append(date.New(2025, 7, 2), 0.01)
	returns.Append(date.New(2025, 7, 3), -0.01)

	// Sample variance of {0.01, -0.01} is 0.0002 (n-1 denominator).
	want := math.Sqrt(0.0002) * math.Sqrt(TradingDaysPerYear)
	if got := AnnualizedVolatility(returns); !approx(got, want) {
		t.Errorf("AnnualizedVolatility() = %v, want %v", got, want)
	}
}

func TestAnnualizedVolatility_TooShort(t *testing.T) {
	returns := new(date.History)
	if got := AnnualizedVolatility(returns); got != 0 {
		t.Errorf("AnnualizedVolatility(empty) = %v, want 0", got)
	}
	returns.Append(date.New(2025, 7, 2), 0.05)
	if got := AnnualizedVolatility(returns); got != 0 {
		t.Errorf("AnnualizedVolatility(single) = %v, want 0", got)
	}
}

func TestAnnualizedMeanReturn(t *testing.T) {
	returns := new(date.History)
	returns.Append(date.New(2025, 7, 2), 0.001)
	returns.Append(date.New(2025, 7, 3), 0.001)

	want := math.Pow(1.001, TradingDaysPerYear) - 1
	if got := AnnualizedMeanReturn(returns); !approx(got, want) {
		t.Errorf("AnnualizedMeanReturn() = %v, want %v", got, want)
	}

	if got := AnnualizedMeanReturn(new(date.History)); got != 0 {
		t.Errorf("AnnualizedMeanReturn(empty) = %v, want 0", got)
	}
}
