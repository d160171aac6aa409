package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/date"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	update bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the holdings with their current valuation" }
func (*listCmd) Usage() string {
	return `ptk list [-u]

  Displays every holding with its quantity, prices, current value and
  unrealized profit or loss. Holdings without a quote yet are valued at
  their purchase price and marked.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.update, "u", false, "fetch the latest prices before listing")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	p, err := loadPortfolio(cfg)
	if err != nil {
		return fail(err)
	}

	if c.update {
		quoter, err := newProvider(cfg)
		if err != nil {
			return fail(err)
		}
		if err := refreshPrices(ctx, quoter, p, p.Tickers()); err != nil {
			return fail(err)
		}
		if err := savePortfolio(cfg, p); err != nil {
			return fail(err)
		}
	}

	report := tracker.NewHoldingReport(p, date.Today())
	printMarkdown(renderer.HoldingMarkdown(report))
	return subcommands.ExitSuccess
}
