package sim

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{25, 1.75},
		{50, 2.5},
		{75, 3.25},
		{95, 3.85},
		{100, 4},
	}
	for _, tt := range tests {
		if got := percentile(sorted, tt.p); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("percentile(%v, %v) = %v, want %v", sorted, tt.p, got, tt.want)
		}
	}

	if got := percentile([]float64{7}, 50); got != 7 {
		t.Errorf("percentile(single, 50) = %v, want 7", got)
	}
}

func TestSummarize_Monotonic(t *testing.T) {
	e, err := Run(Config{Price: 100, Drift: 0.05, Volatility: 0.3, Years: 1, StepsPerYear: 12, Paths: 500, Seed: 99})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	s := Summarize(e)
	if s.Approximate {
		t.Errorf("Summarize() marked approximate, want exact")
	}
	if s.Steps() != e.Rows() {
		t.Fatalf("Steps() = %d, want %d", s.Steps(), e.Rows())
	}
	for step := 0; step < s.Steps(); step++ {
		p5, p25, med, p75, p95 := s.P5[step], s.P25[step], s.Median[step], s.P75[step], s.P95[step]
		if !(p5 <= p25 && p25 <= med && med <= p75 && p75 <= p95) {
			t.Errorf("step %d: bands not monotonic: %v %v %v %v %v", step, p5, p25, med, p75, p95)
		}
	}
	// Step 0 is the starting price on every path.
	if s.Mean[0] != 100 || s.P5[0] != 100 || s.P95[0] != 100 {
		t.Errorf("step 0 stats = mean %v p5 %v p95 %v, want all exactly 100", s.Mean[0], s.P5[0], s.P95[0])
	}
}

func TestTerminalDistribution(t *testing.T) {
	// A degenerate 1-step ensemble with known terminal values.
	e := newEnsemble(2, 4)
	for p, v := range []float64{2, 4, 1, 3} {
		path := e.Path(p)
		path[0] = 100
		path[1] = v
	}

	d := TerminalDistribution(e)
	if want := []float64{2, 4, 1, 3}; len(d.Samples) != len(want) {
		t.Fatalf("Samples = %v, want %v", d.Samples, want)
	} else {
		for i := range want {
			if d.Samples[i] != want[i] {
				t.Errorf("Samples[%d] = %v, want %v (path order preserved)", i, d.Samples[i], want[i])
			}
		}
	}
	if d.Mean != 2.5 {
		t.Errorf("Mean = %v, want 2.5", d.Mean)
	}
	if d.Median != 2.5 {
		t.Errorf("Median = %v, want 2.5", d.Median)
	}
	if math.Abs(d.P5-1.15) > 1e-12 {
		t.Errorf("P5 = %v, want 1.15", d.P5)
	}
	if math.Abs(d.P95-3.85) > 1e-12 {
		t.Errorf("P95 = %v, want 3.85", d.P95)
	}
}

func TestDistribution_Histogram(t *testing.T) {
	d := newDistribution([]float64{1, 2, 3, 4})

	buckets := d.Histogram(2)
	if len(buckets) != 2 {
		t.Fatalf("Histogram(2) = %d buckets, want 2", len(buckets))
	}
	if buckets[0].Count != 2 || buckets[1].Count != 2 {
		t.Errorf("Histogram(2) counts = %d, %d; want 2, 2", buckets[0].Count, buckets[1].Count)
	}
	if buckets[0].Low != 1 || buckets[1].High != 4 {
		t.Errorf("Histogram(2) range = [%v, %v], want [1, 4]", buckets[0].Low, buckets[1].High)
	}

	total := 0
	for _, b := range d.Histogram(7) {
		total += b.Count
	}
	if total != len(d.Samples) {
		t.Errorf("Histogram(7) total count = %d, want %d", total, len(d.Samples))
	}

	// All samples equal: everything lands in one bucket, no division by zero.
	flat := newDistribution([]float64{5, 5, 5})
	buckets = flat.Histogram(3)
	if got := buckets[0].Count + buckets[1].Count + buckets[2].Count; got != 3 {
		t.Errorf("flat Histogram(3) total = %d, want 3", got)
	}
}
