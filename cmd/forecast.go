package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/config"
	"github.com/etnz/tracker/date"
	"github.com/etnz/tracker/renderer"
	"github.com/etnz/tracker/sim"
	"github.com/google/subcommands"
)

type forecastCmd struct {
	years      int
	paths      int
	seed       int64
	period     string
	drift      float64
	volatility float64
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "simulate future prices with a Monte Carlo model" }
func (*forecastCmd) Usage() string {
	return `ptk forecast [-years <n>] [-paths <n>] [-seed <n>] [-p <period>] [-drift <x>] [-volatility <x>] [<ticker>...]

  Simulates future prices of the given holdings (all of them when no ticker
  is given) as geometric Brownian motion. Drift and volatility are estimated
  from the price history over the period, unless overridden; the simulation
  starts from the last known price.

  A non-zero seed makes the run reproducible. When the full simulation does
  not fit the configured memory budget it streams instead, and the
  percentile bands become estimates.

  See 'ptk topic forecast' for the model.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 0, "simulation horizon in years (default from config)")
	f.IntVar(&c.paths, "paths", 0, "number of simulated paths (default from config)")
	f.Int64Var(&c.seed, "seed", 0, "seed for a reproducible run (default from config, 0 for random)")
	f.StringVar(&c.period, "p", "", "history period for parameter estimation (default from config)")
	f.Float64Var(&c.drift, "drift", math.NaN(), "override the annualized drift (0.05 is 5% a year)")
	f.Float64Var(&c.volatility, "volatility", math.NaN(), "override the annualized volatility (0.2 is 20%)")
}

// plan carries everything one asset needs to simulate and be reported.
type plan struct {
	ticker string
	price  float64
	drift  float64
	sigma  float64
	source string
}

func (c *forecastCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	p, err := loadPortfolio(cfg)
	if err != nil {
		return fail(err)
	}
	tickers := tickersOrAll(f.Args(), p)
	if len(tickers) == 0 {
		fmt.Println("The portfolio is empty, nothing to forecast.")
		return subcommands.ExitSuccess
	}

	tag := c.period
	if tag == "" {
		tag = cfg.Forecast.Period
	}
	period, err := tracker.ParsePeriod(tag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	simCfg := sim.Config{
		Years:        cfg.Forecast.Years,
		StepsPerYear: cfg.Forecast.StepsPerYear,
		Paths:        cfg.Forecast.Paths,
		Seed:         cfg.Forecast.Seed,
		MaxBytes:     cfg.Forecast.MaxMemoryMB << 20,
	}
	if c.years > 0 {
		simCfg.Years = c.years
	}
	if c.paths > 0 {
		simCfg.Paths = c.paths
	}
	if c.seed != 0 {
		simCfg.Seed = c.seed
	}
	driftSet := !math.IsNaN(c.drift)
	volSet := !math.IsNaN(c.volatility)

	plans, err := c.plans(ctx, cfg, p, tickers, period, driftSet, volSet)
	if err != nil {
		return fail(err)
	}
	if len(plans) == 0 {
		return fail(fmt.Errorf("no holding has the data to start a simulation from"))
	}

	forecasts, streamed, err := simulate(ctx, plans, simCfg, cfg.Currency)
	if err != nil {
		return fail(err)
	}

	report := tracker.NewForecastReport(date.Today(), cfg.Currency, simCfg, streamed, forecasts)
	printMarkdown(renderer.ForecastMarkdown(report))
	return subcommands.ExitSuccess
}

// plans resolves starting price, drift and volatility for every ticker.
// History is only fetched for tickers that need it: a held ticker with both
// parameters overridden simulates offline from its last recorded price.
func (c *forecastCmd) plans(ctx context.Context, cfg *config.Config, p *tracker.Portfolio, tickers []string, period tracker.Period, driftSet, volSet bool) ([]plan, error) {
	var estimate []string
	for _, ticker := range tickers {
		if driftSet && volSet {
			if _, held := p.Find(ticker); held {
				continue
			}
		}
		estimate = append(estimate, ticker)
	}

	market := tracker.NewMarketData()
	if len(estimate) > 0 {
		quoter, err := newProvider(cfg)
		if err != nil {
			return nil, err
		}
		market, err = fetchHistories(ctx, quoter, estimate, period)
		if err != nil {
			return nil, err
		}
	}

	source := paramSource(period, driftSet, volSet)
	plans := make([]plan, 0, len(tickers))
	for _, ticker := range tickers {
		pl := plan{ticker: ticker, source: source}
		if prices := market.Get(ticker); prices != nil {
			_, pl.price = prices.Latest()
			returns := tracker.DailyReturns(prices)
			pl.drift = tracker.AnnualizedMeanReturn(returns)
			pl.sigma = tracker.AnnualizedVolatility(returns)
		} else if h, held := p.Find(ticker); held && driftSet && volSet {
			pl.price = h.EffectivePrice().AsFloat()
		} else {
			// fetchHistories already reported why there is no series.
			log.Printf("skipping %s: no price to start the simulation from", ticker)
			continue
		}
		if driftSet {
			pl.drift = c.drift
		}
		if volSet {
			pl.sigma = c.volatility
		}
		plans = append(plans, pl)
	}
	return plans, nil
}

// paramSource labels where drift and volatility came from, for the report.
func paramSource(period tracker.Period, driftSet, volSet bool) string {
	switch {
	case driftSet && volSet:
		return "flags"
	case driftSet || volSet:
		return fmt.Sprintf("history (%s) and flags", period)
	default:
		return fmt.Sprintf("history (%s)", period)
	}
}

// simulate runs every plan in parallel and summarizes the ensembles. When the
// full ensembles do not fit the memory budget it falls back to streaming each
// asset through constant memory, keeping the per-ticker seeds of the full run
// so a later, roomier rerun reproduces the same paths.
func simulate(ctx context.Context, plans []plan, simCfg sim.Config, currency string) ([]tracker.AssetForecast, bool, error) {
	assets := make(map[string]sim.Asset, len(plans))
	for _, pl := range plans {
		assets[pl.ticker] = sim.Asset{Price: pl.price, Drift: pl.drift, Volatility: pl.sigma}
	}

	stats := make(map[string]*sim.Stats, len(plans))
	finals := make(map[string]*sim.Distribution, len(plans))
	streamed := false

	results, err := sim.RunPortfolio(ctx, assets, simCfg)
	switch {
	case errors.Is(err, sim.ErrTooLarge):
		log.Printf("full simulation does not fit the memory budget, streaming instead: %v", err)
		streamed = true
		for _, pl := range plans {
			acfg := simCfg
			acfg.Price = pl.price
			acfg.Drift = pl.drift
			acfg.Volatility = pl.sigma
			acfg.Seed = sim.ChildSeed(simCfg.Seed, pl.ticker)
			st, dist, err := sim.RunChunked(acfg)
			if err != nil {
				return nil, false, fmt.Errorf("simulating %s: %w", pl.ticker, err)
			}
			stats[pl.ticker] = st
			finals[pl.ticker] = dist
		}
	case err != nil:
		return nil, false, err
	default:
		for ticker, e := range results {
			stats[ticker] = sim.Summarize(e)
			finals[ticker] = sim.TerminalDistribution(e)
		}
	}

	forecasts := make([]tracker.AssetForecast, 0, len(plans))
	for _, pl := range plans {
		forecasts = append(forecasts, tracker.AssetForecast{
			Ticker:     pl.ticker,
			Start:      tracker.M(pl.price, currency),
			Drift:      tracker.Percent(100 * pl.drift),
			Volatility: tracker.Percent(100 * pl.sigma),
			Source:     pl.source,
			Stats:      stats[pl.ticker],
			Final:      finals[pl.ticker],
		})
	}
	return forecasts, streamed, nil
}
