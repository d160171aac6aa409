package tracker

import (
	"fmt"
	"strings"
)

// DuplicateTickerError is returned by Portfolio.Add when the portfolio
// already tracks the ticker.
type DuplicateTickerError struct{ Ticker string }

func (e *DuplicateTickerError) Error() string {
	return fmt.Sprintf("holding %q already exists in the portfolio", e.Ticker)
}

// NormalizeTicker folds user input into the canonical ticker form: trimmed
// and upper-cased.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Portfolio holds the positions of a single investor, keyed by ticker, in
// insertion order.
//
// A Portfolio is not safe for concurrent mutation. The intended discipline is
// a single writer; Holdings returns an independent snapshot that readers can
// keep while the portfolio moves on.
type Portfolio struct {
	currency string
	holdings []Holding
	index    map[string]int // ticker to position in holdings
}

// NewPortfolio returns a new empty portfolio reporting in the given currency
// code, or in DefaultCurrency when code is empty.
func NewPortfolio(currency string) *Portfolio {
	if currency = strings.ToUpper(strings.TrimSpace(currency)); currency == "" {
		currency = DefaultCurrency
	}
	return &Portfolio{
		currency: currency,
		holdings: make([]Holding, 0),
		index:    make(map[string]int),
	}
}

// Currency returns the portfolio's reporting currency code.
func (p *Portfolio) Currency() string { return p.currency }

// Len returns the number of holdings.
func (p *Portfolio) Len() int { return len(p.holdings) }

// Has reports whether the portfolio tracks ticker.
func (p *Portfolio) Has(ticker string) bool {
	_, ok := p.index[NormalizeTicker(ticker)]
	return ok
}

// Add appends a holding to the portfolio. Adding a ticker the portfolio
// already tracks is rejected with a *DuplicateTickerError: positions are
// corrected by removing and re-adding, never silently merged.
func (p *Portfolio) Add(h Holding) error {
	if h.ticker == "" {
		return fmt.Errorf("cannot add an empty holding, use NewHolding")
	}
	if _, ok := p.index[h.ticker]; ok {
		return &DuplicateTickerError{Ticker: h.ticker}
	}
	h.restamp(p.currency)
	p.holdings = append(p.holdings, h)
	p.index[h.ticker] = len(p.holdings) - 1
	return nil
}

// Remove drops the holding for ticker and returns true, or returns false if
// the portfolio does not track it. Removing an absent ticker is not an error.
func (p *Portfolio) Remove(ticker string) bool {
	i, ok := p.index[NormalizeTicker(ticker)]
	if !ok {
		return false
	}
	delete(p.index, p.holdings[i].ticker)
	p.holdings = append(p.holdings[:i], p.holdings[i+1:]...)
	for j := i; j < len(p.holdings); j++ {
		p.index[p.holdings[j].ticker] = j
	}
	return true
}

// Find returns a copy of the holding for ticker, and whether it exists.
func (p *Portfolio) Find(ticker string) (Holding, bool) {
	i, ok := p.index[NormalizeTicker(ticker)]
	if !ok {
		return Holding{}, false
	}
	return p.holdings[i], true
}

// Reclassify replaces the sector and asset class of ticker, typically with
// values a market data provider reported. Empty values keep the current ones.
// It reports whether the ticker is tracked.
func (p *Portfolio) Reclassify(ticker, sector, assetClass string) bool {
	i, ok := p.index[NormalizeTicker(ticker)]
	if !ok {
		return false
	}
	if sector = strings.TrimSpace(sector); sector != "" {
		p.holdings[i].sector = sector
	}
	if assetClass = strings.TrimSpace(assetClass); assetClass != "" {
		p.holdings[i].assetClass = assetClass
	}
	return true
}

// UpdatePrice records the latest observed market price for ticker.
// It returns whether the ticker is tracked. A non-positive price is a
// validation error and leaves the portfolio unchanged.
func (p *Portfolio) UpdatePrice(ticker string, price float64) (bool, error) {
	if price <= 0 {
		return false, fmt.Errorf("invalid price %v for %s: must be strictly positive", price, ticker)
	}
	i, ok := p.index[NormalizeTicker(ticker)]
	if !ok {
		return false, nil
	}
	p.holdings[i].setPrice(M(price, p.currency))
	return true, nil
}

// Holdings returns a snapshot of all holdings in insertion order. The slice
// is the caller's: later portfolio mutations do not show through.
func (p *Portfolio) Holdings() []Holding {
	out := make([]Holding, len(p.holdings))
	copy(out, p.holdings)
	return out
}

// Tickers returns all tracked tickers in insertion order.
func (p *Portfolio) Tickers() []string {
	out := make([]string, 0, len(p.holdings))
	for _, h := range p.holdings {
		out = append(out, h.ticker)
	}
	return out
}
