package beam

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Driver runs the geometry kernel over a trial set with a fixed pool of
// workers, repeating the whole batch to discover peak throughput.
type Driver struct {
	// Threads is the size of the worker pool used for every timed try.
	Threads int
	// Tries is how many timed passes to run over the trial set.
	Tries int
}

// Result aggregates one full run.
type Result struct {
	// Rates holds megatrials/sec for each completed try, in order.
	Rates []float64
	// Peak is the maximum of Rates, 0 when no try completed.
	Peak float64
	// Avg is the sum of Rates divided by the configured try count. Tries
	// skipped after an abort still divide the average.
	Avg float64
	// Probability is hits/trials from the most recently completed try.
	Probability float32
	// Hits is the hit count of the most recently completed try.
	Hits int
	// Trials is the size of the trial set.
	Trials int
	// Aborted reports whether any trial's reflection traveled away from the
	// plate. Advisory only; the run is not stopped.
	Aborted bool
}

// CheckParallel reports whether the runtime can actually schedule the worker
// pool in parallel. The throughput numbers are meaningless on a single
// scheduler thread.
func CheckParallel() error {
	if p := runtime.GOMAXPROCS(0); p < 2 {
		return fmt.Errorf("parallel execution unavailable: GOMAXPROCS is %d", p)
	}
	return nil
}

// Run evaluates the trial set Tries times and aggregates throughput. The
// trial arrays are shared read-only across workers; hit counts are
// thread-local and merged exactly once per try.
func (d *Driver) Run(ts *TrialSet, tn float32) Result {
	threads := d.Threads
	if threads < 1 {
		threads = 1
	}
	n := ts.Len()

	res := Result{Trials: n}
	var abort atomic.Bool

	for t := 0; t < d.Tries; t++ {
		if abort.Load() {
			// A prior try saw an escaping reflection. Later tries run
			// trivially, never touching the clock or the kernel.
			continue
		}

		start := time.Now()
		hits := parallelHits(ts, tn, threads, &abort)
		elapsed := time.Since(start).Seconds()

		rate := 0.0
		if elapsed > 0 {
			rate = float64(n) / elapsed / 1e6
		}
		res.Rates = append(res.Rates, rate)

		res.Hits = hits
		if n > 0 {
			res.Probability = float32(hits) / float32(n)
		}
	}

	if len(res.Rates) > 0 {
		res.Peak = floats.Max(res.Rates)
	}
	if d.Tries > 0 {
		res.Avg = floats.Sum(res.Rates) / float64(d.Tries)
	}
	res.Aborted = abort.Load()
	return res
}

// parallelHits evaluates every trial across a pool of workers, each assigned a
// contiguous slice of the index space, and merges the per-worker hit counts.
// Integer addition is associative and commutative, so the total is identical
// to a sequential evaluation regardless of scheduling.
func parallelHits(ts *TrialSet, tn float32, threads int, abort *atomic.Bool) int {
	n := ts.Len()
	if n == 0 {
		return 0
	}
	if threads > n {
		threads = n
	}

	chunk := n / threads
	rem := n % threads

	var wg sync.WaitGroup
	counts := make(chan int, threads)

	lo := 0
	for w := 0; w < threads; w++ {
		size := chunk
		if w < rem {
			size++
		}
		hi := lo + size
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			local := 0
			for i := lo; i < hi; i++ {
				switch Classify(ts.XC[i], ts.YC[i], ts.R[i], tn) {
				case OutcomeHit:
					local++
				case OutcomeEscape:
					abort.Store(true)
				}
			}
			counts <- local
		}(lo, hi)
		lo = hi
	}

	wg.Wait()
	close(counts)

	total := 0
	for c := range counts {
		total += c
	}
	return total
}

// sequentialHits is the single-threaded reference reduction used to check the
// parallel one.
func sequentialHits(ts *TrialSet, tn float32) int {
	hits := 0
	for i := 0; i < ts.Len(); i++ {
		if Classify(ts.XC[i], ts.YC[i], ts.R[i], tn) == OutcomeHit {
			hits++
		}
	}
	return hits
}
