package bench

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/zsiec/tdmx/demux"
)

// Default harness parameters. DefaultIterations is sized so one repetition
// takes long enough to dominate timer resolution on current hardware.
const (
	DefaultSeed        = 0
	DefaultIterations  = 100_000
	DefaultRepetitions = 5
)

// Runner verifies and times a set of demux variants over one deterministic
// input window. Zero-value fields fall back to the package defaults.
type Runner struct {
	log         *slog.Logger
	Seed        int64
	Iterations  int
	Repetitions int
}

// NewRunner creates a Runner with the given configuration. If log is nil,
// slog.Default() is used.
func NewRunner(log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		log:         log.With("component", "bench"),
		Seed:        DefaultSeed,
		Iterations:  DefaultIterations,
		Repetitions: DefaultRepetitions,
	}
}

// Run verifies every variant against the reference and then times each one,
// returning one Result per variant in input order. Verification failures
// abort the whole run before any timing: partial results from a diverging
// build are worse than none. Verifications run concurrently (each owns its
// buffers); measurements run serially so they do not contend with each
// other.
func (r *Runner) Run(ctx context.Context, variants []demux.Variant) ([]Result, error) {
	iters := r.Iterations
	if iters <= 0 {
		iters = DefaultIterations
	}
	reps := r.Repetitions
	if reps <= 0 {
		reps = DefaultRepetitions
	}

	src := Input(r.Seed, demux.FrameBufferSize)

	var g errgroup.Group
	for _, v := range variants {
		g.Go(func() error {
			if err := Verify(v, src, demux.ChannelCount); err != nil {
				return err
			}
			r.log.Debug("verified against reference", "variant", v.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dst := Buffers(src, demux.ChannelCount)
	results := make([]Result, 0, len(variants))
	for _, v := range variants {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := Measure(v, src, dst, iters, reps)
		r.log.Info("measured",
			"variant", res.Variant,
			"reps", len(res.Times),
			"throughput_bps", res.Throughput(),
		)
		results = append(results, res)
	}
	return results, nil
}
