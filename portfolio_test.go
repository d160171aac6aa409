package tracker

import (
	"errors"
	"testing"
)

// mustHolding builds a holding for tests, failing the test on invalid input.
func mustHolding(t *testing.T, ticker, sector, class string, quantity, price float64) Holding {
	t.Helper()
	h, err := NewHolding(ticker, sector, class, quantity, price)
	if err != nil {
		t.Fatalf("NewHolding(%q) error = %v", ticker, err)
	}
	return h
}

func TestPortfolio_Add(t *testing.T) {
	p := NewPortfolio("")
	if got := p.Currency(); got != DefaultCurrency {
		t.Errorf("Currency() = %q, want %q", got, DefaultCurrency)
	}

	if err := p.Add(mustHolding(t, "AAA", "", "", 10, 100)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	if !p.Has("aaa") {
		t.Errorf("Has(\"aaa\") = false, want true (lookup is case-insensitive)")
	}
}

func TestPortfolio_AddDuplicate(t *testing.T) {
	p := NewPortfolio("USD")
	if err := p.Add(mustHolding(t, "AAA", "", "", 10, 100)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	err := p.Add(mustHolding(t, "aaa", "", "", 5, 50))
	if err == nil {
		t.Fatalf("Add(duplicate) error = nil, want *DuplicateTickerError")
	}
	var dup *DuplicateTickerError
	if !errors.As(err, &dup) {
		t.Fatalf("Add(duplicate) error = %v, want *DuplicateTickerError", err)
	}
	if dup.Ticker != "AAA" {
		t.Errorf("DuplicateTickerError.Ticker = %q, want %q", dup.Ticker, "AAA")
	}
	// The rejected holding must not have touched the ledger.
	if p.Len() != 1 {
		t.Errorf("Len() after rejected Add = %d, want 1", p.Len())
	}
	if h, _ := p.Find("AAA"); !h.Quantity().Equal(Q(10)) {
		t.Errorf("Find() quantity = %v, want 10", h.Quantity())
	}
}

func TestPortfolio_RemoveIdempotence(t *testing.T) {
	p := NewPortfolio("USD")

	if p.Remove("AAA") {
		t.Errorf("Remove(absent) = true, want false")
	}

	if err := p.Add(mustHolding(t, "AAA", "", "", 10, 100)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !p.Remove("aaa") {
		t.Errorf("Remove(present) = false, want true")
	}
	if p.Len() != 0 {
		t.Errorf("Len() after Remove = %d, want 0", p.Len())
	}
	if p.Remove("AAA") {
		t.Errorf("Remove(again) = true, want false")
	}
}

func TestPortfolio_RemoveKeepsOrder(t *testing.T) {
	p := NewPortfolio("USD")
	for _, ticker := range []string{"CCC", "AAA", "BBB"} {
		if err := p.Add(mustHolding(t, ticker, "", "", 1, 1)); err != nil {
			t.Fatalf("Add(%s) error = %v", ticker, err)
		}
	}
	p.Remove("AAA")

	got := p.Tickers()
	want := []string{"CCC", "BBB"}
	if len(got) != len(want) {
		t.Fatalf("Tickers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tickers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	// The index must still resolve the survivors.
	if h, ok := p.Find("BBB"); !ok || h.Ticker() != "BBB" {
		t.Errorf("Find(BBB) after Remove = %v, %v; want the BBB holding", h.Ticker(), ok)
	}
}

func TestPortfolio_UpdatePrice(t *testing.T) {
	p := NewPortfolio("USD")
	if err := p.Add(mustHolding(t, "AAA", "", "", 10, 100)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	ok, err := p.UpdatePrice("ZZZ", 150)
	if err != nil || ok {
		t.Errorf("UpdatePrice(absent) = %v, %v; want false, nil", ok, err)
	}

	if _, err := p.UpdatePrice("AAA", 0); err == nil {
		t.Errorf("UpdatePrice(price=0) error = nil, want one")
	}
	if _, err := p.UpdatePrice("AAA", -3); err == nil {
		t.Errorf("UpdatePrice(price<0) error = nil, want one")
	}

	ok, err = p.UpdatePrice("aaa", 150)
	if err != nil || !ok {
		t.Fatalf("UpdatePrice() = %v, %v; want true, nil", ok, err)
	}
	h, _ := p.Find("AAA")
	price, quoted := h.CurrentPrice()
	if !quoted || !price.Equal(M(150, "USD")) {
		t.Errorf("CurrentPrice() = %v, %v; want $150.00, true", price, quoted)
	}
}

func TestPortfolio_Reclassify(t *testing.T) {
	p := NewPortfolio("USD")
	if err := p.Add(mustHolding(t, "AAA", "", "", 10, 100)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if p.Reclassify("ZZZ", "Energy", "ETF") {
		t.Errorf("Reclassify(absent) = true, want false")
	}

	if !p.Reclassify("aaa", "Technology", "") {
		t.Fatalf("Reclassify() = false, want true")
	}
	h, _ := p.Find("AAA")
	if h.Sector() != "Technology" {
		t.Errorf("Sector() = %q, want %q", h.Sector(), "Technology")
	}
	// The empty asset class keeps the current value.
	if h.AssetClass() != DefaultAssetClass {
		t.Errorf("AssetClass() = %q, want %q untouched", h.AssetClass(), DefaultAssetClass)
	}
}

func TestPortfolio_HoldingsSnapshot(t *testing.T) {
	p := NewPortfolio("USD")
	if err := p.Add(mustHolding(t, "AAA", "", "", 10, 100)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	snapshot := p.Holdings()

	// Later mutations of the portfolio must not show through the snapshot.
	if _, err := p.UpdatePrice("AAA", 150); err != nil {
		t.Fatalf("UpdatePrice() error = %v", err)
	}
	p.Remove("AAA")

	if len(snapshot) != 1 {
		t.Fatalf("snapshot length = %d, want 1", len(snapshot))
	}
	if _, quoted := snapshot[0].CurrentPrice(); quoted {
		t.Errorf("snapshot holding gained a quote after UpdatePrice on the portfolio")
	}
}

func TestPortfolio_CurrencyStamp(t *testing.T) {
	p := NewPortfolio("eur")
	if err := p.Add(mustHolding(t, "AAA", "", "", 10, 100)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	h, _ := p.Find("AAA")
	if got := h.PurchasePrice().Currency(); got != "EUR" {
		t.Errorf("PurchasePrice().Currency() = %q, want %q", got, "EUR")
	}
	if got := p.TotalValue().Currency(); got != "EUR" {
		t.Errorf("TotalValue().Currency() = %q, want %q", got, "EUR")
	}
}
