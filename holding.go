package tracker

import (
	"fmt"
	"regexp"
	"strings"
)

// tickerRegex accepts exchange-style symbols: letters and digits, plus the
// separators found in index ("^GSPC"), class ("BRK.B"), pair ("EURUSD=X")
// and crypto ("BTC-USD") tickers.
var tickerRegex = regexp.MustCompile(`^[A-Z0-9^][A-Z0-9.^=-]{0,11}$`)

// Default classifications applied when the caller gives none.
const (
	DefaultSector     = "Unknown"
	DefaultAssetClass = "Stocks"
	DefaultCurrency   = "USD"
)

// Holding is a single position in a portfolio: a quantity of an asset bought
// at a price, with free-text classifications used to group allocations.
//
// A Holding is a value. Once added to a Portfolio, the Portfolio owns its
// copy and all mutations go through Portfolio methods.
type Holding struct {
	ticker        string
	sector        string
	assetClass    string
	quantity      Quantity
	purchasePrice Money
	currentPrice  Money
	quoted        bool // currentPrice holds an observed market price
}

// NewHolding validates and builds a holding. The ticker is upper-cased and
// trimmed. Empty sector or assetClass fall back to DefaultSector and
// DefaultAssetClass. Quantity must be strictly positive, the purchase price
// non-negative: a zero price records a grant or spin-off acquired for free.
func NewHolding(ticker, sector, assetClass string, quantity, purchasePrice float64) (Holding, error) {
	return newHolding(ticker, sector, assetClass, Q(quantity), M(purchasePrice, DefaultCurrency))
}

// newHolding is the exact-arithmetic constructor shared with the decoder.
func newHolding(ticker, sector, assetClass string, quantity Quantity, purchasePrice Money) (Holding, error) {
	ticker = NormalizeTicker(ticker)
	if !tickerRegex.MatchString(ticker) {
		return Holding{}, fmt.Errorf("invalid ticker %q", ticker)
	}
	if !quantity.IsPositive() {
		return Holding{}, fmt.Errorf("invalid quantity %v for %s: must be strictly positive", quantity, ticker)
	}
	if purchasePrice.IsNegative() {
		return Holding{}, fmt.Errorf("invalid purchase price %v for %s: must not be negative", purchasePrice, ticker)
	}
	if sector = strings.TrimSpace(sector); sector == "" {
		sector = DefaultSector
	}
	if assetClass = strings.TrimSpace(assetClass); assetClass == "" {
		assetClass = DefaultAssetClass
	}
	return Holding{
		ticker:        ticker,
		sector:        sector,
		assetClass:    assetClass,
		quantity:      quantity,
		purchasePrice: purchasePrice,
	}, nil
}

func (h Holding) Ticker() string       { return h.ticker }
func (h Holding) Sector() string       { return h.sector }
func (h Holding) AssetClass() string   { return h.assetClass }
func (h Holding) Quantity() Quantity   { return h.quantity }
func (h Holding) PurchasePrice() Money { return h.purchasePrice }

// CurrentPrice returns the latest observed market price and true, or a zero
// Money and false when no quote has been recorded yet.
func (h Holding) CurrentPrice() (Money, bool) { return h.currentPrice, h.quoted }

// EffectivePrice is the price used to value the position: the current price
// when one is known, the purchase price otherwise.
func (h Holding) EffectivePrice() Money {
	if h.quoted {
		return h.currentPrice
	}
	return h.purchasePrice
}

// TransactionValue is the amount invested: purchase price times quantity.
func (h Holding) TransactionValue() Money { return h.purchasePrice.Mul(h.quantity) }

// CurrentValue is the position marked at the effective price.
func (h Holding) CurrentValue() Money { return h.EffectivePrice().Mul(h.quantity) }

// ProfitLoss is the unrealized gain (or loss) of the position.
func (h Holding) ProfitLoss() Money { return h.CurrentValue().Sub(h.TransactionValue()) }

// ProfitLossPercent is the unrealized gain relative to the amount invested.
func (h Holding) ProfitLossPercent() Percent {
	invested := h.TransactionValue()
	if invested.IsZero() {
		return 0
	}
	return Percent(100 * h.ProfitLoss().AsFloat() / invested.AsFloat())
}

// setPrice records an observed market price. Only the owning Portfolio calls it.
func (h *Holding) setPrice(price Money) {
	h.currentPrice = price
	h.quoted = true
}

// restamp rewrites the holding's monetary values in the given currency code.
// Amounts are unchanged, only the display currency moves.
func (h *Holding) restamp(currency string) {
	h.purchasePrice = M(h.purchasePrice.Decimal(), currency)
	if h.quoted {
		h.currentPrice = M(h.currentPrice.Decimal(), currency)
	}
}
