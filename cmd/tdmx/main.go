package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/zsiec/tdmx/bench"
	"github.com/zsiec/tdmx/demux"
)

var version = "dev"

var (
	seed    = flag.Int64("seed", bench.DefaultSeed, "input generator seed")
	iters   = flag.Int("iters", bench.DefaultIterations, "demux invocations per repetition")
	reps    = flag.Int("reps", bench.DefaultRepetitions, "timed repetitions per variant")
	variant = flag.String("variant", "", "comma-separated variant names to run (default: all)")
	list    = flag.Bool("list", false, "list variant names and exit")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	variants := demux.Variants()
	if *list {
		for _, v := range variants {
			fmt.Println(v.Name)
		}
		return
	}

	if *variant != "" {
		selected, err := filterVariants(variants, *variant)
		if err != nil {
			log.Error("unknown variant", "error", err)
			os.Exit(1)
		}
		variants = selected
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("received signal, stopping", "signal", sig)
		cancel()
	}()

	log.Info("tdmx starting",
		"version", version,
		"seed", *seed,
		"iters", *iters,
		"reps", *reps,
		"variants", len(variants),
	)

	runner := bench.NewRunner(log)
	runner.Seed = *seed
	runner.Iterations = *iters
	runner.Repetitions = *reps

	results, err := runner.Run(ctx, variants)
	if err != nil {
		log.Error("benchmark failed", "error", err)
		os.Exit(1)
	}

	for _, res := range results {
		fmt.Println(formatResult(res))
	}
}

// filterVariants resolves a comma-separated name list against the known
// variants, preserving registry order.
func filterVariants(all []demux.Variant, names string) ([]demux.Variant, error) {
	wanted := make(map[string]bool)
	for _, name := range strings.Split(names, ",") {
		wanted[strings.TrimSpace(name)] = true
	}
	var out []demux.Variant
	for _, v := range all {
		if wanted[v.Name] {
			out = append(out, v)
			delete(wanted, v.Name)
		}
	}
	for name := range wanted {
		return nil, fmt.Errorf("no variant named %q", name)
	}
	return out, nil
}

// formatResult renders one report line: variant name, the full repetition
// series (the first repetition is the warm-up outlier), and derived
// throughput.
func formatResult(res bench.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-18s", res.Variant)
	for _, t := range res.Times {
		fmt.Fprintf(&sb, " %10v", t)
	}
	fmt.Fprintf(&sb, "  %8.1f MB/s", res.Throughput()/1e6)
	return sb.String()
}
