package beam

import "fmt"

// Range is an inclusive-low sampling interval.
type Range struct {
	Low  float32
	High float32
}

func (r Range) valid() bool { return r.Low <= r.High }

// SampleRanges bundles the three per-trial sampling intervals.
type SampleRanges struct {
	CenterX Range
	CenterY Range
	Radius  Range
}

// DefaultRanges returns the reference mirror placement intervals.
func DefaultRanges() SampleRanges {
	return SampleRanges{
		CenterX: Range{Low: -1.0, High: 1.0},
		CenterY: Range{Low: 0.0, High: 2.0},
		Radius:  Range{Low: 0.5, High: 2.0},
	}
}

// TrialSet holds the pre-sampled mirror parameters as parallel arrays, one
// (center x, center y, radius) triple per trial index. A TrialSet is generated
// once, outside any timed region, and never mutated afterwards, so concurrent
// readers need no synchronization.
type TrialSet struct {
	XC []float32
	YC []float32
	R  []float32
}

func (ts *TrialSet) Len() int { return len(ts.XC) }

// GenerateTrials samples n mirror configurations sequentially, in x/y/r order
// per trial index. The same trials back every timed try, so sampling cost
// never pollutes the throughput measurement.
func GenerateTrials(s *Sampler, n int, ranges SampleRanges) (*TrialSet, error) {
	for name, r := range map[string]Range{
		"center x": ranges.CenterX,
		"center y": ranges.CenterY,
		"radius":   ranges.Radius,
	} {
		if !r.valid() {
			return nil, fmt.Errorf("invalid %s range: low %v > high %v", name, r.Low, r.High)
		}
	}
	ts := &TrialSet{
		XC: make([]float32, n),
		YC: make([]float32, n),
		R:  make([]float32, n),
	}
	for i := 0; i < n; i++ {
		ts.XC[i] = s.UniformFloat(ranges.CenterX.Low, ranges.CenterX.High)
		ts.YC[i] = s.UniformFloat(ranges.CenterY.Low, ranges.CenterY.High)
		ts.R[i] = s.UniformFloat(ranges.Radius.Low, ranges.Radius.High)
	}
	return ts, nil
}
