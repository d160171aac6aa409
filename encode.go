package tracker

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// The portfolio is persisted as a JSONL file, one holding per line, so that
// it stays human-readable, diffable, and git-friendly.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jholding is the persisted form of a Holding.
type jholding struct {
	Ticker        string           `json:"ticker"`
	Sector        string           `json:"sector,omitempty"`
	AssetClass    string           `json:"class,omitempty"`
	Quantity      decimal.Decimal  `json:"quantity"`
	PurchasePrice decimal.Decimal  `json:"purchase"`
	CurrentPrice  *decimal.Decimal `json:"price,omitempty"`
	Currency      string           `json:"currency,omitempty"`
}

// EncodePortfolio writes the portfolio as JSONL, one holding per line, in
// insertion order.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	enc := json.NewEncoder(w)
	for _, h := range p.holdings {
		jh := jholding{
			Ticker:        h.ticker,
			Sector:        h.sector,
			AssetClass:    h.assetClass,
			Quantity:      h.quantity.value,
			PurchasePrice: h.purchasePrice.value,
			Currency:      h.purchasePrice.cur,
		}
		if h.quoted {
			price := h.currentPrice.value
			jh.CurrentPrice = &price
		}
		if err := enc.Encode(jh); err != nil {
			return fmt.Errorf("cannot encode holding %q: %w", h.ticker, err)
		}
	}
	return nil
}

// DecodePortfolio reads a JSONL stream of holdings into a new portfolio
// reporting in the given currency. Lines are validated like NewHolding
// arguments, and a repeated ticker is an error.
func DecodePortfolio(r io.Reader, currency string) (*Portfolio, error) {
	p := NewPortfolio(currency)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 {
			continue
		}
		var jh jholding
		if err := json.Unmarshal(b, &jh); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, b, err)
		}
		cur := jh.Currency
		if cur == "" {
			cur = p.Currency()
		}
		h, err := newHolding(jh.Ticker, jh.Sector, jh.AssetClass, Q(jh.Quantity), M(jh.PurchasePrice, cur))
		if err != nil {
			return nil, fmt.Errorf("invalid holding on line %d: %w", line, err)
		}
		if jh.CurrentPrice != nil {
			h.setPrice(M(*jh.CurrentPrice, cur))
		}
		if err := p.Add(h); err != nil {
			return nil, fmt.Errorf("invalid holding on line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read holdings: %w", err)
	}
	return p, nil
}

// SavePortfolio writes the portfolio to path, creating parent directories as
// needed.
func SavePortfolio(path string, p *Portfolio) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for %q: %w", path, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening %q for writing: %w", path, err)
	}
	defer file.Close()
	return EncodePortfolio(file, p)
}

// LoadPortfolio reads the portfolio stored at path. A missing file is the
// caller's call: it surfaces as the os.Open error.
func LoadPortfolio(path, currency string) (*Portfolio, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	p, err := DecodePortfolio(file, currency)
	if err != nil {
		return nil, fmt.Errorf("cannot load portfolio from %q: %w", path, err)
	}
	return p, nil
}
