/*
PURPOSE:
  The execution loop: drives a model's bench/count pair through a
  warmup phase and a measurement phase, each bounded by an iteration
  ceiling and a wall-time ceiling, and collects one (duration, count)
  sample per measurement iteration.

REQUIREMENTS:
  User-specified:
  - Warmup iterations run and are discarded; they never reach output.
  - Time bench() only, with a monotonic clock; count(result) runs
    outside the timed window.
  - Invalidate the engine's compile cache before every iteration.

  Implementation-discovered:
  - Budgets are checked only after a completed iteration. A phase with
    a positive iteration ceiling always finishes its first iteration
    even when its time budget is zero; changing this would alter
    benchmark comparability across harnesses.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (run subcommand)
  - Uses: internal/engine/models.go, the Binding interface.

ERROR HANDLING:
  - Any bench/count error aborts the run immediately. A broken
    iteration invalidates the whole sample set, so there is no
    per-iteration recovery.

IMPLEMENTATION RULES:
  - The purge happens in both phases. Strictly only the compile model
    needs it, but purging uniformly keeps the compile model from
    measuring the purge itself, and purge cost is outside the timed
    window anyway.
  - Samples append in execution order; the emitter preserves it.

USAGE:
  samples, err := engine.Run(cfg, binding)

SELF-HEALING INSTRUCTIONS:
  - If sample counts stop matching the configured budgets, check the
    post-iteration break conditions before anything else; the edge
    cases are pinned in runner_test.go.

RELATED FILES:
  - internal/engine/models.go
  - internal/output/emitter.go

MAINTENANCE:
  - The loop shape is frozen alongside the wire format.
*/

package engine

import (
	"time"

	"github.com/regexbench/runner/internal/config"
	"github.com/regexbench/runner/internal/model"
)

// Run looks up the configured benchmark model and executes it against
// the given engine binding, returning the measurement-phase samples.
func Run(cfg *config.Config, b Binding) ([]model.Sample, error) {
	mf, ok := models[cfg.Model]
	if !ok {
		return nil, &UnrecognizedModelError{Model: cfg.Model}
	}
	return mf(cfg, b)
}

// run executes a bench function that returns its own count.
func run(c *config.Config, b Binding, bench func() (int, error)) ([]model.Sample, error) {
	count := func(n int) (int, error) { return n, nil }
	return runAndCount(c, b, count, bench)
}

// runAndCount executes the warmup and measurement phases over a
// bench/count pair. Separating count from bench keeps verification
// work out of the timing, which matters most for the compile model
// where count performs the matching that bench must not.
func runAndCount[T any](
	c *config.Config,
	b Binding,
	count func(T) (int, error),
	bench func() (T, error),
) ([]model.Sample, error) {
	warmupStart := time.Now()
	for i := 0; i < c.MaxWarmupIters; i++ {
		b.PurgeCache()
		result, err := bench()
		if err != nil {
			return nil, err
		}
		if _, err := count(result); err != nil {
			return nil, err
		}
		if time.Since(warmupStart) >= c.MaxWarmupTime {
			break
		}
	}

	samples := []model.Sample{}
	runStart := time.Now()
	for i := 0; i < c.MaxIters; i++ {
		b.PurgeCache()
		benchStart := time.Now()
		result, err := bench()
		elapsed := time.Since(benchStart)
		if err != nil {
			return nil, err
		}
		n, err := count(result)
		if err != nil {
			return nil, err
		}
		samples = append(samples, model.Sample{Duration: elapsed, Count: n})
		if time.Since(runStart) >= c.MaxTime {
			break
		}
	}
	return samples, nil
}
