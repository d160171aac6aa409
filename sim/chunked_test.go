package sim

import (
	"math"
	"testing"
)

func TestRunChunked_MatchesRun(t *testing.T) {
	cfg := Config{Price: 100, Drift: 0.06, Volatility: 0.25, Years: 1, StepsPerYear: 12, Paths: 2000, Seed: 2024}

	e, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	exact := Summarize(e)
	full := TerminalDistribution(e)

	stats, dist, err := RunChunked(cfg)
	if err != nil {
		t.Fatalf("RunChunked() error = %v", err)
	}
	if !stats.Approximate {
		t.Errorf("RunChunked() stats not marked approximate")
	}

	// Same seed, same draw order: the terminal samples are the same bits.
	if len(dist.Samples) != len(full.Samples) {
		t.Fatalf("terminal samples = %d, want %d", len(dist.Samples), len(full.Samples))
	}
	for i := range full.Samples {
		if dist.Samples[i] != full.Samples[i] {
			t.Fatalf("terminal sample %d = %v, want %v (identical to the full run)", i, dist.Samples[i], full.Samples[i])
		}
	}

	// Means accumulate in the same path order and stay exact.
	for step := range exact.Mean {
		if math.Abs(stats.Mean[step]-exact.Mean[step]) > 1e-9 {
			t.Errorf("mean at step %d = %v, want %v", step, stats.Mean[step], exact.Mean[step])
		}
	}

	// Streamed percentiles are estimates: hold them to a loose band around
	// the exact ones.
	for step := 1; step < exact.Steps(); step++ {
		relDiff := func(a, b float64) float64 { return math.Abs(a-b) / b }
		if relDiff(stats.Median[step], exact.Median[step]) > 0.15 {
			t.Errorf("median at step %d = %v, exact %v: drifted beyond 15%%", step, stats.Median[step], exact.Median[step])
		}
		if relDiff(stats.P5[step], exact.P5[step]) > 0.15 {
			t.Errorf("p5 at step %d = %v, exact %v: drifted beyond 15%%", step, stats.P5[step], exact.P5[step])
		}
		if relDiff(stats.P95[step], exact.P95[step]) > 0.15 {
			t.Errorf("p95 at step %d = %v, exact %v: drifted beyond 15%%", step, stats.P95[step], exact.P95[step])
		}
	}
}

func TestRunChunked_StartRow(t *testing.T) {
	stats, _, err := RunChunked(Config{Price: 100, Drift: 0.05, Volatility: 0.2, Years: 1, StepsPerYear: 4, Paths: 100, Seed: 5})
	if err != nil {
		t.Fatalf("RunChunked() error = %v", err)
	}
	// Step 0 sees the same constant on every path: even the streaming
	// estimator reports it exactly.
	if stats.P5[0] != 100 || stats.Median[0] != 100 || stats.P95[0] != 100 {
		t.Errorf("step 0 bands = %v %v %v, want exactly 100", stats.P5[0], stats.Median[0], stats.P95[0])
	}
}

func TestRunChunked_Validates(t *testing.T) {
	if _, _, err := RunChunked(Config{Price: -1, Years: 1}); err == nil {
		t.Errorf("RunChunked(invalid) error = nil, want one")
	}
}
