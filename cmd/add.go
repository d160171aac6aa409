package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

type addCmd struct {
	sector string
	class  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a holding to the portfolio" }
func (*addCmd) Usage() string {
	return `ptk add [-s <sector>] [-k <class>] <ticker> <quantity> <price>

  Adds a new holding:
  - ticker: The ticker symbol (e.g., "NVDA"). Must not already be tracked.
  - quantity: Number of units bought, fractional units are fine.
  - price: Purchase price per unit, in the portfolio currency.

Usage Examples:
$ ptk add -s Technology NVDA 12 95.40
$ ptk add -k ETF VUSA.AS 30 82.10
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sector, "s", "", "Sector of the holding (e.g., \"Technology\")")
	f.StringVar(&c.class, "k", "", "Asset class of the holding (e.g., \"ETF\")")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <ticker> <quantity> <price> arguments.")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)
	quantity, err := strconv.ParseFloat(f.Arg(1), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}
	price, err := strconv.ParseFloat(f.Arg(2), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", f.Arg(2), err)
		return subcommands.ExitUsageError
	}

	holding, err := tracker.NewHolding(ticker, c.sector, c.class, quantity, price)
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

	if err := p.Add(holding); err != nil {
		return fail(err)
	}
	if err := savePortfolio(cfg, p); err != nil {
		return fail(err)
	}

	fmt.Printf("✅ Added %s to the portfolio (%d holdings).\n", holding.Ticker(), p.Len())
	return subcommands.ExitSuccess
}
