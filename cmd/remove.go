package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove holdings from the portfolio" }
func (*removeCmd) Usage() string {
	return `ptk remove <ticker>...

  Removes the given holdings. Tickers not in the portfolio are reported and
  skipped, the rest are still removed.
`
}

func (*removeCmd) SetFlags(_ *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected at least one <ticker> argument.")
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

	removed := 0
	for _, ticker := range f.Args() {
		if !p.Remove(ticker) {
			fmt.Fprintf(os.Stderr, "Warning: %q is not in the portfolio.\n", ticker)
			continue
		}
		removed++
	}
	if removed == 0 {
		return subcommands.ExitSuccess
	}

	if err := savePortfolio(cfg, p); err != nil {
		return fail(err)
	}
	fmt.Printf("✅ Removed %d holding(s), %d left.\n", removed, p.Len())
	return subcommands.ExitSuccess
}
