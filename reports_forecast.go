package tracker

import (
	"github.com/etnz/tracker/date"
	"github.com/etnz/tracker/sim"
	"github.com/google/uuid"
)

// AssetForecast is the Monte Carlo projection for one position.
type AssetForecast struct {
	Ticker     string
	Start      Money   // spot price the simulation started from
	Drift      Percent // annualized drift fed to the model
	Volatility Percent // annualized volatility fed to the model
	Source     string  // where drift and volatility came from, e.g. "history (1y)"
	Stats      *sim.Stats
	Final      *sim.Distribution
}

// ForecastReport collects per-asset projections produced under one shared
// simulation configuration.
type ForecastReport struct {
	ID           uuid.UUID
	Date         date.Date
	Currency     string
	Years        int
	StepsPerYear int
	Paths        int
	Seed         int64 // 0 when the run was seeded from the clock
	Streamed     bool  // percentile bands are streaming estimates, not exact
	Assets       []AssetForecast
}

// NewForecastReport assembles already-computed per-asset simulations into one
// report. The configuration is echoed so the run can be reproduced.
func NewForecastReport(on date.Date, currency string, cfg sim.Config, streamed bool, assets []AssetForecast) *ForecastReport {
	steps := cfg.StepsPerYear
	if steps == 0 {
		steps = sim.DefaultStepsPerYear
	}
	paths := cfg.Paths
	if paths == 0 {
		paths = sim.DefaultPaths
	}
	return &ForecastReport{
		ID:           uuid.New(),
		Date:         on,
		Currency:     currency,
		Years:        cfg.Years,
		StepsPerYear: steps,
		Paths:        paths,
		Seed:         cfg.Seed,
		Streamed:     streamed,
		Assets:       assets,
	}
}
