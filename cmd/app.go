// Package cmd implements the CLI application to track a portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tracker"
	"github.com/etnz/tracker/alphavantage"
	"github.com/etnz/tracker/config"
	"github.com/etnz/tracker/yahoo"
	"github.com/google/subcommands"
)

// Register registers the subcommands.
// A main package calls Register() to declare them, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "portfolio")
	c.Register(&removeCmd{}, "portfolio")
	c.Register(&listCmd{}, "portfolio")
	c.Register(&updateCmd{}, "portfolio")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&allocationCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&forecastCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var configFile = flag.String("config", config.DefaultPath(), "Path to the configuration file")

// loadConfig loads the app configuration. A missing file means defaults.
func loadConfig() (*config.Config, error) {
	return config.LoadOrDefault(*configFile)
}

// loadPortfolio loads the portfolio from the configured data file. A missing
// file is the normal first run state, not an error: it is an empty portfolio.
func loadPortfolio(cfg *config.Config) (*tracker.Portfolio, error) {
	p, err := tracker.LoadPortfolio(cfg.DataFile, cfg.Currency)
	if errors.Is(err, fs.ErrNotExist) {
		return tracker.NewPortfolio(cfg.Currency), nil
	}
	return p, err
}

// savePortfolio writes the portfolio back to the configured data file.
func savePortfolio(cfg *config.Config, p *tracker.Portfolio) error {
	return tracker.SavePortfolio(cfg.DataFile, p)
}

// provider is what every market data source implements: quotes and
// classifications.
type provider interface {
	tracker.Quoter
	tracker.Classifier
}

// newProvider builds the configured market data provider.
func newProvider(cfg *config.Config) (provider, error) {
	switch cfg.Provider {
	case "yahoo":
		return yahoo.New(cfg.HTTPTimeout), nil
	case "alphavantage":
		return alphavantage.New(cfg.AlphaVantage.APIKey, cfg.HTTPTimeout), nil
	}
	return nil, fmt.Errorf("unknown provider %q, want yahoo or alphavantage", cfg.Provider)
}

// tickersOrAll normalizes the tickers given as arguments, or returns every
// tracked ticker when there are none.
func tickersOrAll(args []string, p *tracker.Portfolio) []string {
	if len(args) == 0 {
		return p.Tickers()
	}
	tickers := make([]string, 0, len(args))
	for _, arg := range args {
		tickers = append(tickers, tracker.NormalizeTicker(arg))
	}
	return tickers
}

// printMarkdown renders markdown for the terminal. When the terminal cannot
// be styled the raw markdown is still perfectly readable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(md)
}

// fail prints the error and returns the failure status, the one-liner for
// Execute methods.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
