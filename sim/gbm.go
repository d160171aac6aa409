// Package sim simulates future asset prices as geometric Brownian motion
// ensembles and summarizes them into per-step statistics.
//
// The generator driving the paths is owned by the simulation call and seeded
// from Config.Seed, never shared process-wide state: a non-zero seed makes a
// run bit-for-bit reproducible. Run materializes the full ensemble and is
// refused beyond a configurable memory budget; RunChunked streams paths
// through constant memory instead, trading exact per-step percentiles for
// estimated ones.
package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Defaults applied by Run and RunChunked when the Config field is zero.
const (
	DefaultStepsPerYear = 252     // trading days
	DefaultPaths        = 1000
	DefaultMaxBytes     = 1 << 31 // 2 GiB
)

// ErrTooLarge is returned by Run when the ensemble would not fit the memory
// budget. RunChunked is the way out.
var ErrTooLarge = errors.New("ensemble exceeds the memory budget")

// Config parameterizes one geometric Brownian motion simulation.
type Config struct {
	Price        float64 // starting price, strictly positive
	Drift        float64 // annualized drift (0.07 is 7% a year)
	Volatility   float64 // annualized volatility, zero or more
	Years        int     // simulation horizon
	StepsPerYear int     // steps per simulated year, DefaultStepsPerYear when 0
	Paths        int     // simulated paths, DefaultPaths when 0
	Seed         int64   // generator seed, 0 draws one from the clock
	MaxBytes     int64   // memory budget for Run, DefaultMaxBytes when 0
}

// withDefaults returns the config with zero fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.StepsPerYear == 0 {
		c.StepsPerYear = DefaultStepsPerYear
	}
	if c.Paths == 0 {
		c.Paths = DefaultPaths
	}
	if c.MaxBytes == 0 {
		c.MaxBytes = DefaultMaxBytes
	}
	return c
}

// Validate checks the config a call is about to run with.
func (c Config) Validate() error {
	if c.Price <= 0 {
		return fmt.Errorf("invalid price %v: must be strictly positive", c.Price)
	}
	if c.Volatility < 0 {
		return fmt.Errorf("invalid volatility %v: must be zero or positive", c.Volatility)
	}
	if math.IsNaN(c.Drift) || math.IsInf(c.Drift, 0) {
		return fmt.Errorf("invalid drift %v", c.Drift)
	}
	if c.Years < 1 {
		return fmt.Errorf("invalid years %d: must be at least 1", c.Years)
	}
	if c.StepsPerYear < 1 {
		return fmt.Errorf("invalid steps per year %d: must be at least 1", c.StepsPerYear)
	}
	if c.Paths < 1 {
		return fmt.Errorf("invalid paths %d: must be at least 1", c.Paths)
	}
	if c.MaxBytes < 0 {
		return fmt.Errorf("invalid memory budget %d", c.MaxBytes)
	}
	return nil
}

// rows is the number of points per path: one per step plus the initial price.
func (c Config) rows() int { return c.Years*c.StepsPerYear + 1 }

// RequiredBytes is the memory the full ensemble materializes:
// rows x paths float64 values.
func (c Config) RequiredBytes() int64 {
	return int64(c.rows()) * int64(c.Paths) * 8
}

// rng builds the generator owned by this run.
func (c Config) rng() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// stepTerms precomputes the exact discretization constants: with dt one step
// of a year, each step multiplies the price by
// exp((drift - volatility²/2)·dt + volatility·sqrt(dt)·Z).
func (c Config) stepTerms() (drift, vol float64) {
	dt := 1 / float64(c.StepsPerYear)
	drift = (c.Drift - 0.5*c.Volatility*c.Volatility) * dt
	vol = c.Volatility * math.Sqrt(dt)
	return drift, vol
}

// simulatePath fills path with one trajectory, drawing len(path)-1 shocks
// from rng in order. Zero volatility degenerates to the deterministic
// exp(drift) compounding: shocks are still drawn, but weigh nothing.
func simulatePath(path []float64, price, drift, vol float64, rng *rand.Rand) {
	path[0] = price
	for t := 1; t < len(path); t++ {
		path[t] = path[t-1] * math.Exp(drift+vol*rng.NormFloat64())
	}
}

// Run simulates the full ensemble in memory and returns it.
//
// With a non-zero seed the result is reproducible: paths are generated one
// after the other, each consuming rows-1 draws, so Run and RunChunked agree
// path for path on the same config.
//
// Run refuses configs whose ensemble would exceed Config.MaxBytes with
// ErrTooLarge rather than degrade silently.
func Run(cfg Config) (*Ensemble, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if need := cfg.RequiredBytes(); need > cfg.MaxBytes {
		return nil, fmt.Errorf("%d paths of %d steps need %d bytes (budget %d): %w",
			cfg.Paths, cfg.rows(), need, cfg.MaxBytes, ErrTooLarge)
	}

	e := newEnsemble(cfg.rows(), cfg.Paths)
	rng := cfg.rng()
	drift, vol := cfg.stepTerms()
	for p := 0; p < cfg.Paths; p++ {
		simulatePath(e.Path(p), cfg.Price, drift, vol, rng)
	}
	return e, nil
}
