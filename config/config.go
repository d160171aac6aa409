// Package config loads the tracker configuration from a YAML file, with
// environment variable expansion so secrets like API keys can stay out of the
// file itself.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default values for optional configuration fields.
const (
	DefaultCurrency     = "USD"
	DefaultProvider     = "yahoo"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultYears        = 1
	DefaultPaths        = 1000
	DefaultStepsPerYear = 252
	DefaultMaxMemoryMB  = 2048
	DefaultPeriod       = "1y"
)

// Config is the whole tracker configuration.
type Config struct {
	// DataFile is the JSONL file holding the portfolio.
	DataFile string `yaml:"data_file"`
	// Currency is the reporting currency of the portfolio.
	Currency string `yaml:"currency"`
	// Provider picks the market data source: "yahoo" or "alphavantage".
	Provider string `yaml:"provider"`
	// HTTPTimeout bounds every market data call.
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	AlphaVantage AlphaVantageConfig `yaml:"alphavantage"`
	Forecast     ForecastConfig     `yaml:"forecast"`
}

// AlphaVantageConfig configures the Alpha Vantage provider.
type AlphaVantageConfig struct {
	// APIKey is required when Provider is "alphavantage". Use
	// "${ALPHAVANTAGE_API_KEY}" to read it from the environment.
	APIKey string `yaml:"api_key"`
}

// ForecastConfig carries the simulation defaults of the forecast command.
type ForecastConfig struct {
	Years        int    `yaml:"years"`
	Paths        int    `yaml:"paths"`
	StepsPerYear int    `yaml:"steps_per_year"`
	Seed         int64  `yaml:"seed"`
	MaxMemoryMB  int64  `yaml:"max_memory_mb"`
	// Period is the history window used to estimate drift and volatility.
	Period string `yaml:"period"`
}

// DefaultPath is where commands look for the config file unless told
// otherwise.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tracker.yaml"
	}
	return filepath.Join(home, ".tracker", "config.yaml")
}

func defaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "portfolio.jsonl"
	}
	return filepath.Join(home, ".tracker", "portfolio.jsonl")
}

func (c *Config) applyDefaults() {
	if c.DataFile == "" {
		c.DataFile = defaultDataFile()
	}
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	if c.Provider == "" {
		c.Provider = DefaultProvider
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}
	if c.Forecast.Years == 0 {
		c.Forecast.Years = DefaultYears
	}
	if c.Forecast.Paths == 0 {
		c.Forecast.Paths = DefaultPaths
	}
	if c.Forecast.StepsPerYear == 0 {
		c.Forecast.StepsPerYear = DefaultStepsPerYear
	}
	if c.Forecast.MaxMemoryMB == 0 {
		c.Forecast.MaxMemoryMB = DefaultMaxMemoryMB
	}
	if c.Forecast.Period == "" {
		c.Forecast.Period = DefaultPeriod
	}
}

// Validate checks that the configuration can actually drive the commands.
func (c *Config) Validate() error {
	switch c.Provider {
	case "yahoo":
	case "alphavantage":
		if c.AlphaVantage.APIKey == "" {
			return errors.New("alphavantage.api_key is required with provider alphavantage")
		}
	default:
		return fmt.Errorf("provider must be yahoo or alphavantage, got %q", c.Provider)
	}
	if c.Currency == "" {
		return errors.New("currency is required")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must not be negative, got %v", c.HTTPTimeout)
	}
	if c.Forecast.Years < 1 {
		return fmt.Errorf("forecast.years must be >= 1, got %d", c.Forecast.Years)
	}
	if c.Forecast.Paths < 1 {
		return fmt.Errorf("forecast.paths must be >= 1, got %d", c.Forecast.Paths)
	}
	if c.Forecast.StepsPerYear < 1 {
		return fmt.Errorf("forecast.steps_per_year must be >= 1, got %d", c.Forecast.StepsPerYear)
	}
	if c.Forecast.MaxMemoryMB < 1 {
		return fmt.Errorf("forecast.max_memory_mb must be >= 1, got %d", c.Forecast.MaxMemoryMB)
	}
	return nil
}
