package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/date"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

type allocationCmd struct {
	by string
}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the portfolio weights by group" }
func (*allocationCmd) Usage() string {
	return `ptk allocation [-by ticker|sector|class]

  Displays how the current value splits across holdings, sectors or asset
  classes, heaviest group first.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "ticker", "Grouping for the weights: ticker, sector or class")
}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	group, err := tracker.ParseGrouping(c.by)
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

	report := tracker.NewAllocationReport(p, date.Today(), group)
	printMarkdown(renderer.AllocationMarkdown(report))
	return subcommands.ExitSuccess
}
