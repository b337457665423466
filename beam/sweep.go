package beam

import (
	"sync/atomic"

	lin "github.com/sgreben/piecewiselinear"
)

// SweepResult maps beam angle to estimated hit probability across a sweep.
// Angles are in degrees, ascending.
type SweepResult struct {
	Angles []float64
	Probs  []float64

	curve lin.Function
}

// Sweep estimates the hit probability at steps evenly spaced beam angles in
// [minAngle, maxAngle], re-running the estimator against the same trial set
// at each angle. Timing is not measured; the sweep exists to map the
// probability curve, not throughput.
func (d *Driver) Sweep(ts *TrialSet, minAngle, maxAngle float64, steps int) SweepResult {
	if steps < 2 {
		steps = 2
	}
	threads := d.Threads
	if threads < 1 {
		threads = 1
	}

	sr := SweepResult{
		Angles: make([]float64, 0, steps),
		Probs:  make([]float64, 0, steps),
	}
	for i := 0; i < steps; i++ {
		angle := minAngle + (maxAngle-minAngle)*float64(i)/float64(steps-1)

		var abort atomic.Bool
		hits := parallelHits(ts, Slope(angle), threads, &abort)
		prob := 0.0
		if ts.Len() > 0 {
			prob = float64(hits) / float64(ts.Len())
		}

		sr.Angles = append(sr.Angles, angle)
		sr.Probs = append(sr.Probs, prob)
	}

	sr.curve = lin.Function{X: sr.Angles, Y: sr.Probs}
	return sr
}

// ProbabilityAt interpolates the hit probability at an arbitrary angle from
// the swept samples.
func (sr SweepResult) ProbabilityAt(angle float64) float64 {
	return sr.curve.At(angle)
}
