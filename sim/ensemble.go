package sim

import "github.com/google/uuid"

// Ensemble is the full result of one simulation run: rows x paths prices in
// one flat path-major block. Row 0 is the starting price on every path.
//
// Each run gets a fresh ID so exports and reports can reference the exact
// ensemble they were computed from.
type Ensemble struct {
	id    uuid.UUID
	rows  int
	paths int
	data  []float64 // data[p*rows+t] is path p at step t
}

func newEnsemble(rows, paths int) *Ensemble {
	return &Ensemble{
		id:    uuid.New(),
		rows:  rows,
		paths: paths,
		data:  make([]float64, rows*paths),
	}
}

// ID identifies this run.
func (e *Ensemble) ID() uuid.UUID { return e.id }

// Rows is the number of points per path, the initial price included.
func (e *Ensemble) Rows() int { return e.rows }

// Paths is the number of simulated trajectories.
func (e *Ensemble) Paths() int { return e.paths }

// At returns the price of path p at step t.
func (e *Ensemble) At(t, p int) float64 { return e.data[p*e.rows+t] }

// Path returns the trajectory of path p. The slice aliases the ensemble's
// storage: treat it as read-only.
func (e *Ensemble) Path(p int) []float64 {
	return e.data[p*e.rows : (p+1)*e.rows]
}

// Terminal returns a copy of the final price of every path, in path order.
func (e *Ensemble) Terminal() []float64 {
	out := make([]float64, e.paths)
	for p := 0; p < e.paths; p++ {
		out[p] = e.data[p*e.rows+e.rows-1]
	}
	return out
}

// Bytes is the footprint of the price block.
func (e *Ensemble) Bytes() int64 { return int64(len(e.data)) * 8 }
