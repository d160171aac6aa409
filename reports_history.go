package tracker

import (
	"math"

	"github.com/etnz/tracker/date"
)

// SeriesStats summarizes one price series of a HistoryReport. Statistics are
// derived from daily returns of the raw prices, so they are the same whether
// or not the report is normalized.
type SeriesStats struct {
	Ticker               string
	Observations         int
	First                float64
	Last                 float64
	CumulativeReturn     Percent
	AnnualizedVolatility Percent
	AnnualizedMeanReturn Percent
}

// HistoryRow is one date of a HistoryReport. Values align with the report's
// Tickers; NaN marks a date on which that series has no observation.
type HistoryRow struct {
	Date   date.Date
	Values []float64
}

// HistoryReport lays several close-price series out on one common sorted time
// axis, optionally rebased to 100 at each series' first observation so that
// different price levels can be compared.
type HistoryReport struct {
	Period     Period
	Normalized bool
	Tickers    []string
	Rows       []HistoryRow
	Stats      []SeriesStats
}

// NewHistoryReport builds the common-axis price table over all series of m.
func NewHistoryReport(m *MarketData, period Period, normalized bool) *HistoryReport {
	report := &HistoryReport{
		Period:     period,
		Normalized: normalized,
		Tickers:    m.Tickers(),
	}
	displayed := make([]*date.History, len(report.Tickers))
	for i, ticker := range report.Tickers {
		prices := m.Get(ticker)
		report.Stats = append(report.Stats, newSeriesStats(ticker, prices))
		if normalized {
			displayed[i] = Normalize(prices)
		} else {
			displayed[i] = prices
		}
	}
	for _, on := range m.Dates() {
		row := HistoryRow{Date: on, Values: make([]float64, len(displayed))}
		for i, h := range displayed {
			v, ok := h.Get(on)
			if !ok {
				v = math.NaN()
			}
			row.Values[i] = v
		}
		report.Rows = append(report.Rows, row)
	}
	return report
}

func newSeriesStats(ticker string, prices *date.History) SeriesStats {
	returns := DailyReturns(prices)
	stats := SeriesStats{
		Ticker:               ticker,
		Observations:         prices.Len(),
		AnnualizedVolatility: Percent(100 * AnnualizedVolatility(returns)),
		AnnualizedMeanReturn: Percent(100 * AnnualizedMeanReturn(returns)),
	}
	_, stats.First = prices.First()
	_, stats.Last = prices.Latest()
	if returns.Len() > 0 {
		_, growth := CumulativeReturns(returns).Latest()
		stats.CumulativeReturn = Percent(100 * growth)
	}
	return stats
}
