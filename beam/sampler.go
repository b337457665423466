package beam

import (
	"math"
	"time"
)

// Sampler is a small linear congruential generator. Statistical quality is not
// a goal; it exists to keep trial generation cheap and free of process-wide
// state. Not safe for concurrent use: all sampling happens sequentially,
// before the timed tries.
type Sampler struct {
	state uint32
}

func NewSampler(seed uint32) *Sampler {
	return &Sampler{state: seed}
}

// TimeOfDaySeed derives a seed from the milliseconds elapsed since
// 2000-01-01T00:00:00 local time.
func TimeOfDaySeed() uint32 {
	y2k := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.Local)
	return uint32(time.Since(y2k).Milliseconds())
}

func (s *Sampler) next() float32 {
	s.state = s.state*1664525 + 1013904223
	return float32(s.state&0x7fffffff) / float32(0x7fffffff)
}

// UniformFloat returns a value uniformly distributed in [low, high).
func (s *Sampler) UniformFloat(low, high float32) float32 {
	return low + s.next()*(high-low)
}

// UniformInt returns a value in [low, high]. The high bound is rounded up
// before sampling and then truncated away, so it is effectively exclusive.
func (s *Sampler) UniformInt(low, high int) int {
	return int(s.UniformFloat(float32(low), float32(math.Ceil(float64(high)))))
}
