package sim

// streamQuantiles are the percentile targets tracked per step by RunChunked,
// matching the Stats fields.
var streamQuantiles = [5]float64{0.05, 0.25, 0.50, 0.75, 0.95}

// RunChunked simulates the same ensemble as Run without ever materializing
// it: paths stream one at a time through a single reusable buffer, so memory
// stays O(rows + paths) no matter how many paths run.
//
// The trade-off is explicit in the result. Per-step percentiles come from a
// streaming estimator and are approximate (Stats.Approximate is true); the
// per-step mean and the whole terminal distribution remain exact, since one
// terminal value per path is kept.
//
// Given the same non-zero seed, RunChunked visits exactly the draw sequence
// of Run, so the terminal distribution matches the full run bit for bit.
func RunChunked(cfg Config) (*Stats, *Distribution, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	rows := cfg.rows()
	sums := make([]float64, rows)
	quants := make([]*psquare, rows*len(streamQuantiles))
	for i := range quants {
		quants[i] = newPSquare(streamQuantiles[i%len(streamQuantiles)])
	}
	samples := make([]float64, 0, cfg.Paths)

	rng := cfg.rng()
	drift, vol := cfg.stepTerms()
	path := make([]float64, rows)
	for p := 0; p < cfg.Paths; p++ {
		simulatePath(path, cfg.Price, drift, vol, rng)
		for t, v := range path {
			sums[t] += v
			base := t * len(streamQuantiles)
			for i := range streamQuantiles {
				quants[base+i].Add(v)
			}
		}
		samples = append(samples, path[rows-1])
	}

	stats := newStats(rows, true)
	for t := 0; t < rows; t++ {
		stats.Mean[t] = sums[t] / float64(cfg.Paths)
		base := t * len(streamQuantiles)
		stats.P5[t] = quants[base+0].Value()
		stats.P25[t] = quants[base+1].Value()
		stats.Median[t] = quants[base+2].Value()
		stats.P75[t] = quants[base+3].Value()
		stats.P95[t] = quants[base+4].Value()
	}
	return stats, newDistribution(samples), nil
}
