package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/advisor"
	"github.com/etnz/tracker/date"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "discuss the portfolio reports with the AI advisor"
}
func (*assistCmd) Usage() string {
	return `ptk assist [<question>]

  Starts an interactive session with the AI advisor, primed with the current
  summary and holdings reports. Needs a Gemini API key in GEMINI_API_KEY.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	p, err := loadPortfolio(cfg)
	if err != nil {
		return fail(err)
	}

	// The advisor only sees what the reports show.
	on := date.Today()
	reports := []string{
		renderer.SummaryMarkdown(tracker.NewSummary(p, on)),
		renderer.HoldingMarkdown(tracker.NewHoldingReport(p, on)),
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	adv := advisor.New()
	if err := adv.Start(ctx, client, reports...); err != nil {
		return fail(err)
	}
	if err := adv.Run(ctx, os.Stdout, os.Stdin, prompts...); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
