package bench

import (
	"time"

	"github.com/zsiec/tdmx/demux"
)

// Result holds the timing series for one variant. The first repetition is
// expected to be an outlier (cold caches, warm-up effects); consumers
// should derive throughput from the later repetitions, which Throughput
// does.
type Result struct {
	Variant    string
	Iterations int             // inner iterations per repetition
	Bytes      int             // source bytes demultiplexed per iteration
	Times      []time.Duration // one entry per repetition, in run order
}

// Throughput returns bytes demultiplexed per second, derived from the
// fastest post-warm-up repetition. Returns 0 for an empty series.
func (r Result) Throughput() float64 {
	stable := r.Times
	if len(stable) > 1 {
		stable = stable[1:]
	}
	best := time.Duration(0)
	for _, t := range stable {
		if best == 0 || t < best {
			best = t
		}
	}
	if best <= 0 {
		return 0
	}
	total := float64(r.Iterations) * float64(r.Bytes)
	return total / best.Seconds()
}

// Measure times reps repetitions of iters demux invocations of v on src
// into dst, returning the full series. The destination buffers are reused
// across iterations: a correct strategy fully overwrites them, so reuse
// does not affect the result. Measure does not verify correctness; call
// Verify first.
func Measure(v demux.Variant, src []byte, dst [][]byte, iters, reps int) Result {
	times := make([]time.Duration, 0, reps)
	for rep := 0; rep < reps; rep++ {
		start := time.Now()
		for i := 0; i < iters; i++ {
			v.Demux(src, dst)
		}
		times = append(times, time.Since(start))
	}
	return Result{
		Variant:    v.Name,
		Iterations: iters,
		Bytes:      len(src),
		Times:      times,
	}
}
