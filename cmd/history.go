package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/date"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

type historyCmd struct {
	period     string
	normalized bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display historical prices and their statistics" }
func (*historyCmd) Usage() string {
	return `ptk history [-p <period>] [-n] [<ticker>...]

  Fetches daily close prices over the period for the given tickers (all
  holdings when none is given) and displays them on one time axis, with
  cumulative return, annualized return and annualized volatility per series.
  With -n every series is rebased to 100 so they compare at a glance.

  See 'ptk topic periods' for the supported periods.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", tracker.DefaultPeriod.String(), "History period (1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max)")
	f.BoolVar(&c.normalized, "n", false, "rebase every series to 100 at its first observation")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := tracker.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	p, err := loadPortfolio(cfg)
	if err != nil {
		return fail(err)
	}
	quoter, err := newProvider(cfg)
	if err != nil {
		return fail(err)
	}

	tickers := tickersOrAll(f.Args(), p)
	market, err := fetchHistories(ctx, quoter, tickers, period)
	if err != nil {
		return fail(err)
	}

	report := tracker.NewHistoryReport(market, period, c.normalized)
	printMarkdown(renderer.HistoryMarkdown(report))
	return subcommands.ExitSuccess
}

// fetchHistories downloads the close series of every ticker in parallel.
// Tickers without data are reported and skipped, keeping the market data in
// the callers order for the rest.
func fetchHistories(ctx context.Context, quoter tracker.Quoter, tickers []string, period tracker.Period) (*tracker.MarketData, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	var mu sync.Mutex
	series := make(map[string]*date.History, len(tickers))
	for _, ticker := range tickers {
		g.Go(func() error {
			prices, err := quoter.History(ctx, ticker, period)
			if errors.Is(err, tracker.ErrNoData) {
				log.Printf("no history for %s over %s", ticker, period)
				return nil
			}
			if err != nil {
				return fmt.Errorf("fetching history of %s: %w", ticker, err)
			}
			mu.Lock()
			series[ticker] = prices
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	market := tracker.NewMarketData()
	for _, ticker := range tickers {
		if prices, ok := series[ticker]; ok {
			market.Add(ticker, prices)
		}
	}
	return market, nil
}
