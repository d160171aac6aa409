package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"sync"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

type updateCmd struct {
	classify bool
}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "fetch the latest prices from the market data provider"
}
func (*updateCmd) Usage() string {
	return `ptk update [-c] [<ticker>...]

  Fetches the latest price for the given holdings, or for all of them when
  no ticker is given, and stores the prices in the portfolio file. With -c
  it also fills in the sector and asset class of holdings still on the
  defaults, as reported by the provider.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.classify, "c", false, "also fetch sector and asset class for holdings still on defaults")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	p, err := loadPortfolio(cfg)
	if err != nil {
		return fail(err)
	}
	if p.Len() == 0 {
		fmt.Println("The portfolio is empty, nothing to update.")
		return subcommands.ExitSuccess
	}

	prov, err := newProvider(cfg)
	if err != nil {
		return fail(err)
	}

	tickers := tickersOrAll(f.Args(), p)
	if err := refreshPrices(ctx, prov, p, tickers); err != nil {
		return fail(err)
	}
	if c.classify {
		if err := classifyDefaults(ctx, prov, p, tickers); err != nil {
			return fail(err)
		}
	}

	if err := savePortfolio(cfg, p); err != nil {
		return fail(err)
	}
	fmt.Printf("✅ Updated %d holding(s).\n", len(tickers))
	return subcommands.ExitSuccess
}

// refreshPrices fetches the latest quote for each ticker in parallel and
// records the prices on the portfolio. Tickers the provider does not know are
// reported and skipped; a transport failure aborts the whole refresh.
func refreshPrices(ctx context.Context, quoter tracker.Quoter, p *tracker.Portfolio, tickers []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	var mu sync.Mutex
	quotes := make([]tracker.Quote, 0, len(tickers))
	for _, ticker := range tickers {
		g.Go(func() error {
			quote, err := quoter.Quote(ctx, ticker)
			if errors.Is(err, tracker.ErrNoData) {
				log.Printf("no quote for %s, keeping the last known price", ticker)
				return nil
			}
			if err != nil {
				return fmt.Errorf("quoting %s: %w", ticker, err)
			}
			mu.Lock()
			quotes = append(quotes, quote)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// The portfolio is a single-writer structure: record sequentially.
	for _, q := range quotes {
		if q.Currency != "" && q.Currency != p.Currency() {
			log.Printf("warning: %s trades in %s, the portfolio reports in %s", q.Ticker, q.Currency, p.Currency())
		}
		if updated, err := p.UpdatePrice(q.Ticker, q.Price); err != nil {
			log.Printf("ignoring quote for %s: %v", q.Ticker, err)
		} else if !updated {
			log.Printf("%s is not in the portfolio, quote dropped", q.Ticker)
		}
	}
	return nil
}

// classifyDefaults asks the provider to describe every holding still carrying
// a default sector or asset class, and fills in what it reports.
func classifyDefaults(ctx context.Context, classifier tracker.Classifier, p *tracker.Portfolio, tickers []string) error {
	var errs []error
	for _, ticker := range tickers {
		h, ok := p.Find(ticker)
		if !ok {
			continue
		}
		wantSector := h.Sector() == tracker.DefaultSector
		wantClass := h.AssetClass() == tracker.DefaultAssetClass
		if !wantSector && !wantClass {
			continue
		}

		class, err := classifier.Classify(ctx, ticker)
		if errors.Is(err, tracker.ErrNoData) {
			log.Printf("no classification for %s", ticker)
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("classifying %s: %w", ticker, err))
			continue
		}

		var sector, assetClass string
		if wantSector {
			sector = class.Sector
		}
		if wantClass {
			assetClass = class.AssetClass
		}
		p.Reclassify(ticker, sector, assetClass)
	}
	return errors.Join(errs...)
}
