package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/cmd"
	"github.com/etnz/tracker/docs"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env file is the comfortable place for GEMINI_API_KEY and the Alpha
	// Vantage key. Not having one is fine.
	_ = godotenv.Load()

	// Handles shell completion requests and exits, a no-op otherwise.
	completion().Complete("ptk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the CLI to the shell completion engine.
func completion() *complete.Command {
	var periods predict.Set
	for _, p := range tracker.Periods() {
		periods = append(periods, p.String())
	}
	topics, _ := docs.AllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"s": predict.Nothing,
				"k": predict.Set{"Stocks", "ETF", "Mutual Funds", "Crypto", "Bonds", "Cash"},
			}},
			"remove":  {},
			"list":    {Flags: map[string]complete.Predictor{"u": predict.Nothing}},
			"update":  {Flags: map[string]complete.Predictor{"c": predict.Nothing}},
			"summary": {},
			"allocation": {Flags: map[string]complete.Predictor{
				"by": predict.Set{"ticker", "sector", "class"},
			}},
			"history": {Flags: map[string]complete.Predictor{
				"p": periods,
				"n": predict.Nothing,
			}},
			"forecast": {Flags: map[string]complete.Predictor{
				"years":      predict.Nothing,
				"paths":      predict.Nothing,
				"seed":       predict.Nothing,
				"p":          periods,
				"drift":      predict.Nothing,
				"volatility": predict.Nothing,
			}},
			"topic":  {Args: predict.Set(topics)},
			"assist": {},
		},
	}
}
