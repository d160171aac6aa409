package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/date"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio totals at a glance" }
func (*summaryCmd) Usage() string {
	return `ptk summary

  Displays the invested amount, the current value, the total profit or loss,
  and the best and worst performing holdings.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	p, err := loadPortfolio(cfg)
	if err != nil {
		return fail(err)
	}

	summary := tracker.NewSummary(p, date.Today())
	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
