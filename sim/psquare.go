package sim

import (
	"math"
	"sort"
)

// psquare estimates a single quantile of a stream without storing it, using
// the P² algorithm (Jain & Chlamtac, 1985): five markers whose heights track
// the minimum, the target quantile, its two flanks, and the maximum, adjusted
// by a piecewise-parabolic fit as observations arrive.
type psquare struct {
	p     float64 // target quantile in (0, 1)
	count int
	q     [5]float64 // marker heights
	n     [5]float64 // marker positions
	want  [5]float64 // desired marker positions
	dn    [5]float64 // desired position increments
}

func newPSquare(p float64) *psquare {
	return &psquare{
		p:  p,
		dn: [5]float64{0, p / 2, p, (1 + p) / 2, 1},
	}
}

// Add folds one observation into the estimate.
func (s *psquare) Add(x float64) {
	if s.count < 5 {
		s.q[s.count] = x
		s.count++
		if s.count == 5 {
			sort.Float64s(s.q[:])
			s.n = [5]float64{1, 2, 3, 4, 5}
			s.want = [5]float64{1, 1 + 2*s.p, 1 + 4*s.p, 3 + 2*s.p, 5}
		}
		return
	}
	s.count++

	// Find the cell k the observation falls into, extending the extremes.
	var k int
	switch {
	case x < s.q[0]:
		s.q[0] = x
		k = 0
	case x >= s.q[4]:
		s.q[4] = x
		k = 3
	default:
		for k = 0; k < 3; k++ {
			if x < s.q[k+1] {
				break
			}
		}
	}

	for i := k + 1; i < 5; i++ {
		s.n[i]++
	}
	for i := range s.want {
		s.want[i] += s.dn[i]
	}

	// Nudge the three inner markers toward their desired positions.
	for i := 1; i <= 3; i++ {
		d := s.want[i] - s.n[i]
		if (d >= 1 && s.n[i+1]-s.n[i] > 1) || (d <= -1 && s.n[i-1]-s.n[i] < -1) {
			sign := math.Copysign(1, d)
			if h := s.parabolic(i, sign); s.q[i-1] < h && h < s.q[i+1] {
				s.q[i] = h
			} else {
				s.q[i] = s.linear(i, sign)
			}
			s.n[i] += sign
		}
	}
}

// parabolic is the piecewise-parabolic height prediction for marker i moved
// by d (±1).
func (s *psquare) parabolic(i int, d float64) float64 {
	return s.q[i] + d/(s.n[i+1]-s.n[i-1])*
		((s.n[i]-s.n[i-1]+d)*(s.q[i+1]-s.q[i])/(s.n[i+1]-s.n[i])+
			(s.n[i+1]-s.n[i]-d)*(s.q[i]-s.q[i-1])/(s.n[i]-s.n[i-1]))
}

// linear is the fallback height prediction when the parabola overshoots a
// neighbor marker.
func (s *psquare) linear(i int, d float64) float64 {
	j := i + int(d)
	return s.q[i] + d*(s.q[j]-s.q[i])/(s.n[j]-s.n[i])
}

// Value returns the current quantile estimate. Up to five observations it is
// exact.
func (s *psquare) Value() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	if s.count < 5 {
		few := make([]float64, s.count)
		copy(few, s.q[:s.count])
		sort.Float64s(few)
		return percentile(few, 100*s.p)
	}
	return s.q[2]
}
