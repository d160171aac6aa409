package tracker

import (
	"context"
	"errors"

	"github.com/etnz/tracker/date"
)

// ErrNoData is returned by providers when the market has nothing for a
// ticker: an unknown symbol, or an empty series for the requested period.
// Callers treat it as "no data available", not as a broken provider.
var ErrNoData = errors.New("no market data")

// Quote is a point-in-time price observation for a ticker.
type Quote struct {
	Ticker   string
	Price    float64
	Currency string
	Day      date.Date
}

// Classification describes an asset as reported by a market-data provider.
// All fields are opaque display text to the portfolio.
type Classification struct {
	Name       string
	Sector     string
	AssetClass string
}

// Quoter provides market prices for tickers.
//
// Implementations live in their own packages (yahoo, alphavantage) and do all
// the I/O; the portfolio itself never talks to the network.
type Quoter interface {
	// Quote returns the latest known price for ticker.
	// It returns ErrNoData when the provider does not know the symbol.
	Quote(ctx context.Context, ticker string) (Quote, error)

	// History returns the close-price series for ticker covering period.
	// It returns ErrNoData when the provider has no observations for it.
	History(ctx context.Context, ticker string, period Period) (*date.History, error)
}

// Classifier describes tickers, to fill in names and classifications the
// user did not supply.
type Classifier interface {
	// Classify returns the provider's description of ticker.
	// It returns ErrNoData when the provider does not know the symbol.
	Classify(ctx context.Context, ticker string) (Classification, error)
}
