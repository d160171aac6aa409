package tracker

import (
	"math"

	"github.com/etnz/tracker/date"
)

// TradingDaysPerYear is the conventional factor used to annualize daily
// return statistics.
const TradingDaysPerYear = 252

// DailyReturns derives day-over-day relative price changes from a close-price
// series. The first observation has no predecessor and is dropped: a series
// with fewer than two points yields an empty history.
func DailyReturns(prices *date.History) *date.History {
	returns := new(date.History)
	first := true
	var prev float64
	for on, v := range prices.Values() {
		if !first && prev != 0 {
			returns.Append(on, v/prev-1)
		}
		first = false
		prev = v
	}
	return returns
}

// CumulativeReturns compounds daily returns into the growth relative to the
// start: the running product of (1+r) minus one.
func CumulativeReturns(returns *date.History) *date.History {
	cumulative := new(date.History)
	growth := 1.0
	for on, r := range returns.Values() {
		growth *= 1 + r
		cumulative.Append(on, growth-1)
	}
	return cumulative
}

// Normalize rebases a price series to 100 at its first observation, so that
// series with different price levels can share one chart. An empty series, or
// one starting at zero, yields an empty history.
func Normalize(prices *date.History) *date.History {
	normalized := new(date.History)
	_, base := prices.First()
	if base == 0 {
		return normalized
	}
	for on, v := range prices.Values() {
		normalized.Append(on, 100*v/base)
	}
	return normalized
}

// AnnualizedVolatility is the sample standard deviation of daily returns
// scaled by the square root of TradingDaysPerYear. Fewer than two returns
// yield zero.
func AnnualizedVolatility(returns *date.History) float64 {
	values := collect(returns)
	if len(values) < 2 {
		return 0
	}
	return stdDev(values) * math.Sqrt(TradingDaysPerYear)
}

// AnnualizedMeanReturn compounds the mean daily return over a trading year:
// (1+mean)^TradingDaysPerYear - 1. An empty series yields zero.
func AnnualizedMeanReturn(returns *date.History) float64 {
	values := collect(returns)
	if len(values) == 0 {
		return 0
	}
	return math.Pow(1+mean(values), TradingDaysPerYear) - 1
}

func collect(h *date.History) []float64 {
	values := make([]float64, 0, h.Len())
	for _, v := range h.Values() {
		values = append(values, v)
	}
	return values
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev is the sample standard deviation (n-1 denominator).
func stdDev(values []float64) float64 {
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
