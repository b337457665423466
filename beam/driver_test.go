package beam

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeTrials(t *testing.T, seed uint32, n int) *TrialSet {
	t.Helper()
	ts, err := GenerateTrials(NewSampler(seed), n, DefaultRanges())
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestParallelReductionMatchesSequential(t *testing.T) {
	assert := assert.New(t)

	ts := makeTrials(t, 42, 5000)
	tn := Slope(30)
	want := sequentialHits(ts, tn)

	for threads := 1; threads <= 8; threads++ {
		var abort atomic.Bool
		got := parallelHits(ts, tn, threads, &abort)
		assert.Equal(want, got, "threads=%d", threads)
	}
}

func TestRunFixedSeedReproducible(t *testing.T) {
	assert := assert.New(t)

	driver := Driver{Threads: 4, Tries: 1}
	tn := Slope(30)

	first := driver.Run(makeTrials(t, 777, 1000), tn)
	second := driver.Run(makeTrials(t, 777, 1000), tn)

	assert.Equal(first.Hits, second.Hits)
	assert.Equal(first.Probability, second.Probability)
}

func TestRunPeakAtLeastAverage(t *testing.T) {
	assert := assert.New(t)

	driver := Driver{Threads: 4, Tries: 3}
	res := driver.Run(makeTrials(t, 7, 2000), Slope(30))

	assert.GreaterOrEqual(res.Peak, res.Avg)
	assert.NotEmpty(res.Rates)
}

func TestRunProbabilityFromLastCompletedTry(t *testing.T) {
	assert := assert.New(t)

	ts := makeTrials(t, 21, 1500)
	tn := Slope(30)
	driver := Driver{Threads: 2, Tries: 4}
	res := driver.Run(ts, tn)

	want := sequentialHits(ts, tn)
	assert.Equal(want, res.Hits)
	assert.InDelta(float64(want)/float64(ts.Len()), float64(res.Probability), 1e-6)
}

func TestRunAbortSkipsRemainingTries(t *testing.T) {
	assert := assert.New(t)

	// A single trial whose reflection escapes upward.
	ts := &TrialSet{
		XC: []float32{1},
		YC: []float32{0.5},
		R:  []float32{0.45},
	}
	driver := Driver{Threads: 2, Tries: 4}
	res := driver.Run(ts, Slope(45))

	assert.True(res.Aborted)
	assert.Len(res.Rates, 1)
	assert.Equal(0, res.Hits)
	assert.Equal(float32(0), res.Probability)
	assert.GreaterOrEqual(res.Peak, res.Avg)
}

func TestRunZeroTrials(t *testing.T) {
	assert := assert.New(t)

	driver := Driver{Threads: 4, Tries: 3}
	res := driver.Run(makeTrials(t, 1, 0), Slope(30))

	assert.Equal(float32(0), res.Probability)
	assert.Equal(0, res.Hits)
	assert.Equal(0.0, res.Peak)
	assert.Equal(0.0, res.Avg)
	assert.False(res.Aborted)
}

func TestCheckParallel(t *testing.T) {
	assert := assert.New(t)

	old := runtime.GOMAXPROCS(4)
	defer runtime.GOMAXPROCS(old)
	assert.NoError(CheckParallel())

	runtime.GOMAXPROCS(1)
	assert.Error(CheckParallel())
}
