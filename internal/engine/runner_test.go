package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regexbench/runner/internal/config"
	"github.com/regexbench/runner/internal/model"
)

// spyBinding records loop interactions; it cannot compile anything.
type spyBinding struct {
	events *[]string
}

func newSpy() (*spyBinding, *[]string) {
	events := &[]string{}
	return &spyBinding{events: events}, events
}

func (s *spyBinding) Name() string    { return "spy" }
func (s *spyBinding) Version() string { return "spy" }

func (s *spyBinding) Compile(model.Haystack, model.Flags) (Pattern, error) {
	return nil, errors.New("spy binding cannot compile")
}

func (s *spyBinding) PurgeCache() {
	*s.events = append(*s.events, "purge")
}

func loopConfig(warmupIters, iters int, warmupTime, maxTime time.Duration) *config.Config {
	return &config.Config{
		MaxWarmupIters: warmupIters,
		MaxIters:       iters,
		MaxWarmupTime:  warmupTime,
		MaxTime:        maxTime,
	}
}

// TestLoop_SampleCount verifies max_iters=3 with a huge time budget
// yields exactly 3 samples with the bench's count.
func TestLoop_SampleCount(t *testing.T) {
	spy, _ := newSpy()
	samples, err := run(loopConfig(0, 3, 0, time.Hour), spy, func() (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	require.Len(t, samples, 3)
	for _, s := range samples {
		assert.Equal(t, 7, s.Count)
		assert.GreaterOrEqual(t, s.Duration, time.Duration(0))
	}
}

// TestLoop_ZeroIters verifies an iteration ceiling of zero skips the
// phase entirely, regardless of the time budget.
func TestLoop_ZeroIters(t *testing.T) {
	spy, events := newSpy()
	calls := 0
	samples, err := run(loopConfig(0, 0, 0, time.Hour), spy, func() (int, error) {
		calls++
		return 0, nil
	})
	require.NoError(t, err)
	assert.Empty(t, samples)
	assert.Zero(t, calls, "bench must never run with a zero iteration ceiling")
	assert.Empty(t, *events, "no purge without an iteration")
}

// TestLoop_ZeroTimeBudget verifies a zero time budget with a positive
// iteration ceiling still executes exactly one iteration per phase:
// budgets are checked only after a completed iteration.
func TestLoop_ZeroTimeBudget(t *testing.T) {
	spy, _ := newSpy()
	benches := 0
	samples, err := run(loopConfig(5, 5, 0, 0), spy, func() (int, error) {
		benches++
		return 0, nil
	})
	require.NoError(t, err)
	assert.Len(t, samples, 1)
	assert.Equal(t, 2, benches, "one warmup iteration plus one measurement iteration")
}

// TestLoop_WarmupDiscarded verifies warmup iterations execute the
// bench/count pair but never reach the sample sequence.
func TestLoop_WarmupDiscarded(t *testing.T) {
	spy, _ := newSpy()
	benches := 0
	samples, err := run(loopConfig(2, 1, time.Hour, time.Hour), spy, func() (int, error) {
		benches++
		return benches, nil
	})
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 3, benches, "two warmups plus one measurement")
	assert.Equal(t, 3, samples[0].Count, "the sample comes from the measurement iteration")
}

// TestLoop_PurgePerIteration verifies the cache purge precedes every
// iteration in both phases.
func TestLoop_PurgePerIteration(t *testing.T) {
	spy, events := newSpy()
	_, err := run(loopConfig(2, 3, time.Hour, time.Hour), spy, func() (int, error) {
		*events = append(*events, "bench")
		return 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"purge", "bench",
		"purge", "bench",
		"purge", "bench",
		"purge", "bench",
		"purge", "bench",
	}, *events)
}

// TestLoop_BenchErrorAborts verifies any bench error aborts the whole
// run with no partial samples.
func TestLoop_BenchErrorAborts(t *testing.T) {
	spy, _ := newSpy()
	boom := errors.New("boom")
	calls := 0
	samples, err := run(loopConfig(0, 5, 0, time.Hour), spy, func() (int, error) {
		calls++
		if calls == 2 {
			return 0, boom
		}
		return 0, nil
	})
	require.ErrorIs(t, err, boom)
	assert.Nil(t, samples)
	assert.Equal(t, 2, calls, "no iteration after the failure")
}

// TestLoop_CountErrorAborts verifies count failures are as fatal as
// bench failures.
func TestLoop_CountErrorAborts(t *testing.T) {
	spy, _ := newSpy()
	boom := errors.New("verify failed")
	count := func(int) (int, error) { return 0, boom }
	samples, err := runAndCount(loopConfig(0, 3, 0, time.Hour), spy, count, func() (int, error) {
		return 0, nil
	})
	require.ErrorIs(t, err, boom)
	assert.Nil(t, samples)
}

// TestLoop_WarmupErrorAborts verifies warmup failures prevent the
// measurement phase entirely.
func TestLoop_WarmupErrorAborts(t *testing.T) {
	spy, _ := newSpy()
	boom := errors.New("warmup boom")
	samples, err := run(loopConfig(1, 3, time.Hour, time.Hour), spy, func() (int, error) {
		return 0, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Nil(t, samples)
}

var _ Binding = (*spyBinding)(nil)
