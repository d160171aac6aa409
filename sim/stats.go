package sim

import (
	"math"
	"sort"
)

// Stats summarizes an ensemble per time step. Each slice has one value per
// row, row 0 describing the (degenerate) starting price.
//
// Approximate is false when percentiles were computed exactly on the fully
// materialized ensemble, true when they come from the streaming estimator.
// The mean is exact either way.
type Stats struct {
	Mean   []float64
	P5     []float64
	P25    []float64
	Median []float64
	P75    []float64
	P95    []float64

	Approximate bool
}

// Summarize computes exact per-step statistics of a materialized ensemble.
// Percentiles interpolate linearly between order statistics, and for every
// step p5 ≤ p25 ≤ median ≤ p75 ≤ p95.
func Summarize(e *Ensemble) *Stats {
	s := newStats(e.rows, false)
	column := make([]float64, e.paths)
	for t := 0; t < e.rows; t++ {
		var sum float64
		for p := 0; p < e.paths; p++ {
			v := e.data[p*e.rows+t]
			column[p] = v
			sum += v
		}
		sort.Float64s(column)
		s.Mean[t] = sum / float64(e.paths)
		s.P5[t] = percentile(column, 5)
		s.P25[t] = percentile(column, 25)
		s.Median[t] = percentile(column, 50)
		s.P75[t] = percentile(column, 75)
		s.P95[t] = percentile(column, 95)
	}
	return s
}

func newStats(rows int, approximate bool) *Stats {
	return &Stats{
		Mean:        make([]float64, rows),
		P5:          make([]float64, rows),
		P25:         make([]float64, rows),
		Median:      make([]float64, rows),
		P75:         make([]float64, rows),
		P95:         make([]float64, rows),
		Approximate: approximate,
	}
}

// Steps is the number of summarized time steps.
func (s *Stats) Steps() int { return len(s.Mean) }

// percentile returns the p-th percentile of sorted values, interpolating
// linearly between the two nearest order statistics.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	pos := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Distribution describes the spread of terminal values across paths.
// Samples stays in path order and is exact in both full and chunked runs.
type Distribution struct {
	Samples []float64
	Mean    float64
	Median  float64
	P5      float64
	P95     float64
}

// TerminalDistribution summarizes the final prices of an ensemble.
func TerminalDistribution(e *Ensemble) *Distribution {
	return newDistribution(e.Terminal())
}

func newDistribution(samples []float64) *Distribution {
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range samples {
		sum += v
	}
	return &Distribution{
		Samples: samples,
		Mean:    sum / float64(len(samples)),
		Median:  percentile(sorted, 50),
		P5:      percentile(sorted, 5),
		P95:     percentile(sorted, 95),
	}
}

// Bucket is one bar of a histogram: values in [Low, High).
type Bucket struct {
	Low, High float64
	Count     int
}

// Histogram bins the terminal samples into the given number of equal-width
// buckets. The last bucket includes its upper bound.
func (d *Distribution) Histogram(bins int) []Bucket {
	if bins < 1 || len(d.Samples) == 0 {
		return nil
	}
	min, max := d.Samples[0], d.Samples[0]
	for _, v := range d.Samples {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	buckets := make([]Bucket, bins)
	width := (max - min) / float64(bins)
	for i := range buckets {
		buckets[i].Low = min + float64(i)*width
		buckets[i].High = min + float64(i+1)*width
	}
	buckets[bins-1].High = max
	for _, v := range d.Samples {
		i := bins - 1
		if width > 0 {
			i = int((v - min) / width)
			if i >= bins {
				i = bins - 1
			}
		}
		buckets[i].Count++
	}
	return buckets
}
