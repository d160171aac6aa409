package tracker

import (
	"github.com/etnz/tracker/date"
)

// MarketData holds fetched close-price series for a set of tickers, in
// insertion order. It is the in-memory working set of one command run, not a
// persistent price database.
type MarketData struct {
	tickers []string
	index   map[string]*date.History
}

// NewMarketData returns a new empty market data collection.
func NewMarketData() *MarketData {
	return &MarketData{
		tickers: make([]string, 0),
		index:   make(map[string]*date.History),
	}
}

func (m *MarketData) Has(ticker string) bool {
	_, ok := m.index[ticker]
	return ok
}

// Add registers the series for ticker, replacing any previous one.
func (m *MarketData) Add(ticker string, prices *date.History) {
	if _, ok := m.index[ticker]; !ok {
		m.tickers = append(m.tickers, ticker)
	}
	m.index[ticker] = prices
}

// Get returns the series for ticker, or nil.
func (m *MarketData) Get(ticker string) *date.History { return m.index[ticker] }

// Tickers returns all tickers in insertion order.
func (m *MarketData) Tickers() []string {
	out := make([]string, len(m.tickers))
	copy(out, m.tickers)
	return out
}

// Len returns the number of series held.
func (m *MarketData) Len() int { return len(m.tickers) }

// Dates returns the union of all observation dates, sorted, so that several
// series can be laid out on one common time axis.
func (m *MarketData) Dates() []date.Date {
	histories := make([]*date.History, 0, len(m.tickers))
	for _, t := range m.tickers {
		histories = append(histories, m.index[t])
	}
	var days []date.Date
	for on := range date.Iterate(histories...) {
		days = append(days, on)
	}
	return days
}
