package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/sim"
)

const histogramBins = 10

// ForecastMarkdown renders Monte Carlo projections: one section per asset
// with yearly percentile bands, terminal statistics, and a text histogram of
// the final values.
func ForecastMarkdown(r *tracker.ForecastReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Forecast on %s (%d years, %d paths)\n\n", r.Date, r.Years, r.Paths)
	if r.Seed != 0 {
		fmt.Fprintf(&b, "Run %s, seed %d", r.ID, r.Seed)
	} else {
		fmt.Fprintf(&b, "Run %s, random seed", r.ID)
	}
	if r.Streamed {
		fmt.Fprint(&b, ", streamed (percentile bands are estimates)")
	}
	fmt.Fprint(&b, "\n\n")

	for _, a := range r.Assets {
		fmt.Fprintf(&b, "## %s\n\n", a.Ticker)
		fmt.Fprintf(&b, "Start %s, drift %s, volatility %s (%s)\n\n",
			a.Start, a.Drift.SignedString(), a.Volatility, a.Source)

		fmt.Fprintln(&b, "| Horizon | P5 | P25 | Median | Mean | P75 | P95 |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
		for year := 1; year <= r.Years; year++ {
			t := year * r.StepsPerYear
			if t >= a.Stats.Steps() {
				t = a.Stats.Steps() - 1
			}
			fmt.Fprintf(&b, "| Year %d | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f |\n",
				year,
				a.Stats.P5[t], a.Stats.P25[t], a.Stats.Median[t],
				a.Stats.Mean[t], a.Stats.P75[t], a.Stats.P95[t])
		}

		fmt.Fprintf(&b, "\nFinal value: mean %.2f, median %.2f, 90%% of paths between %.2f and %.2f\n\n",
			a.Final.Mean, a.Final.Median, a.Final.P5, a.Final.P95)
		writeHistogram(&b, a.Final)
	}
	return b.String()
}

// writeHistogram prints the terminal distribution as an indented text block,
// one bar per bucket, scaled to a fixed width.
func writeHistogram(b *strings.Builder, d *sim.Distribution) {
	buckets := d.Histogram(histogramBins)
	if len(buckets) == 0 {
		return
	}
	max := 0
	for _, bucket := range buckets {
		if bucket.Count > max {
			max = bucket.Count
		}
	}
	for _, bucket := range buckets {
		width := 0
		if max > 0 {
			width = bucket.Count * 40 / max
		}
		fmt.Fprintf(b, "    %10.2f to %10.2f  %-40s %d\n",
			bucket.Low, bucket.High, strings.Repeat("#", width), bucket.Count)
	}
	fmt.Fprintln(b)
}
