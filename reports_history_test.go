package tracker

import (
	"math"
	"testing"

	"github.com/etnz/tracker/date"
)

func TestNewHistoryReport(t *testing.T) {
	m := NewMarketData()
	m.Add("AAA", priceSeries(100, 110, 99))
	bbb := new(date.History)
	bbb.Append(date.New(2025, 7, 2), 50)
	bbb.Append(date.New(2025, 7, 3), 55)
	m.Add("BBB", bbb)

	r := NewHistoryReport(m, Period1M, false)

	if r.Period != Period1M || r.Normalized {
		t.Errorf("report header = %v, %v; want 1mo, raw", r.Period, r.Normalized)
	}
	if len(r.Tickers) != 2 || r.Tickers[0] != "AAA" || r.Tickers[1] != "BBB" {
		t.Fatalf("Tickers = %v, want [AAA BBB]", r.Tickers)
	}
	if len(r.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, want 3 (union of all dates)", len(r.Rows))
	}

	first := r.Rows[0]
	if first.Date != date.New(2025, 7, 1) {
		t.Errorf("Rows[0].Date = %v, want 2025-07-01", first.Date)
	}
	if first.Values[0] != 100 {
		t.Errorf("Rows[0] AAA = %v, want 100", first.Values[0])
	}
	// BBB has no observation on the first date.
	if !math.IsNaN(first.Values[1]) {
		t.Errorf("Rows[0] BBB = %v, want NaN", first.Values[1])
	}
	last := r.Rows[2]
	if last.Values[0] != 99 || last.Values[1] != 55 {
		t.Errorf("Rows[2] = %v, want [99 55]", last.Values)
	}
}

func TestNewHistoryReport_Normalized(t *testing.T) {
	m := NewMarketData()
	m.Add("AAA", priceSeries(100, 110, 99))
	bbb := new(date.History)
	bbb.Append(date.New(2025, 7, 2), 50)
	bbb.Append(date.New(2025, 7, 3), 55)
	m.Add("BBB", bbb)

	r := NewHistoryReport(m, PeriodYTD, true)

	if !r.Normalized {
		t.Fatalf("Normalized = false, want true")
	}
	// Each series is rebased to 100 at its own first observation.
	if got := r.Rows[0].Values[0]; got != 100 {
		t.Errorf("AAA first = %v, want exactly 100", got)
	}
	if got := r.Rows[1].Values[1]; got != 100 {
		t.Errorf("BBB first = %v, want exactly 100", got)
	}
	if got := r.Rows[1].Values[0]; got != 110 {
		t.Errorf("AAA second = %v, want 110", got)
	}
	if got := r.Rows[2].Values[1]; got != 110 {
		t.Errorf("BBB last = %v, want 110", got)
	}
}

func TestNewHistoryReport_Stats(t *testing.T) {
	m := NewMarketData()
	m.Add("AAA", priceSeries(100, 110, 99))

	r := NewHistoryReport(m, Period1Y, false)

	if len(r.Stats) != 1 {
		t.Fatalf("len(Stats) = %d, want 1", len(r.Stats))
	}
	s := r.Stats[0]
	if s.Ticker != "AAA" || s.Observations != 3 {
		t.Errorf("stats header = %s %d, want AAA 3", s.Ticker, s.Observations)
	}
	if s.First != 100 || s.Last != 99 {
		t.Errorf("First, Last = %v, %v; want 100, 99", s.First, s.Last)
	}
	if !s.CumulativeReturn.Equal(-1) {
		t.Errorf("CumulativeReturn = %v, want -1%%", s.CumulativeReturn)
	}
	// Statistics come from raw prices even in normalized reports.
	normalized := NewHistoryReport(m, Period1Y, true)
	if normalized.Stats[0].First != 100 || normalized.Stats[0].Last != 99 {
		t.Errorf("normalized report stats = %v, want the raw-price stats", normalized.Stats[0])
	}
}

func TestNewHistoryReport_ShortSeries(t *testing.T) {
	m := NewMarketData()
	m.Add("AAA", priceSeries(42))

	s := NewHistoryReport(m, Period5D, false).Stats[0]
	if !s.CumulativeReturn.Equal(0) || !s.AnnualizedVolatility.Equal(0) {
		t.Errorf("single-point stats = %v, %v; want zeros", s.CumulativeReturn, s.AnnualizedVolatility)
	}
}
