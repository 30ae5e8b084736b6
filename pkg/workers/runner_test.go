package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/pkg/config"
)

type fakeStage struct {
	name    string
	enabled bool
	cycles  atomic.Int32
	err     error
}

func (s *fakeStage) Name() string                               { return s.name }
func (s *fakeStage) Enabled(*config.PipelineSettings) bool      { return s.enabled }
func (s *fakeStage) Interval(*config.PipelineSettings) time.Duration {
	return 10 * time.Millisecond
}
func (s *fakeStage) Cycle(context.Context, *config.PipelineSettings) error {
	s.cycles.Add(1)
	return s.err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	require.NoError(t, cfg.UpdatePipeline(config.DefaultPipelineSettings()))
	return cfg
}

func TestJitteredBounds(t *testing.T) {
	base := 30 * time.Second

	// Jittered interval should be within [base - 10%, base + 10%]
	for i := 0; i < 100; i++ {
		d := jittered(base)
		assert.GreaterOrEqual(t, d, 27*time.Second, "interval below minimum")
		assert.LessOrEqual(t, d, 33*time.Second, "interval above maximum")
	}
}

func TestJitteredZeroInterval(t *testing.T) {
	// A zero or negative interval falls back to one minute.
	for i := 0; i < 100; i++ {
		d := jittered(0)
		assert.GreaterOrEqual(t, d, 54*time.Second)
		assert.LessOrEqual(t, d, 66*time.Second)
	}
}

func TestStartupDelayBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := startupDelay()
		assert.GreaterOrEqual(t, d, startupDelayMin)
		assert.LessOrEqual(t, d, startupDelayMax)
	}
}

func TestWorkerHealthBeforeStart(t *testing.T) {
	w := NewWorker(&fakeStage{name: "stub"}, testConfig(t))

	h := w.Health()
	assert.Equal(t, "stub", h.Name)
	assert.False(t, h.Running)
	assert.Nil(t, h.LastCycleAt)
	assert.Empty(t, h.LastError)
	assert.Equal(t, 0, h.Cycles)
}

func TestWorkerStartStop(t *testing.T) {
	stage := &fakeStage{name: "stub", enabled: true}
	w := NewWorker(stage, testConfig(t))

	w.Start(context.Background())
	require.Eventually(t, func() bool { return w.Health().Running },
		time.Second, 10*time.Millisecond, "worker never reported running")

	// Stop during the startup delay: no cycle runs, shutdown is prompt.
	w.Stop()
	assert.False(t, w.Health().Running)
	assert.Equal(t, int32(0), stage.cycles.Load())

	// Stop is idempotent.
	w.Stop()
}

func TestRunCyclePanicRecovery(t *testing.T) {
	w := NewWorker(&panicStage{}, testConfig(t))

	err := w.runCycle(context.Background(), config.DefaultPipelineSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle panicked")
	assert.Contains(t, err.Error(), "boom")
}

type panicStage struct{ fakeStage }

func (s *panicStage) Cycle(context.Context, *config.PipelineSettings) error {
	panic("boom")
}

func TestRunnerHealthOrder(t *testing.T) {
	r := NewRunner(testConfig(t))
	r.Register(&fakeStage{name: "first"})
	r.Register(&fakeStage{name: "second"})

	health := r.Health()
	require.Len(t, health, 2)
	assert.Equal(t, "first", health[0].Name)
	assert.Equal(t, "second", health[1].Name)
}

func TestRunnerStartIdempotent(t *testing.T) {
	r := NewRunner(testConfig(t))
	r.Register(&fakeStage{name: "stub"})

	ctx := context.Background()
	r.Start(ctx)
	r.Start(ctx) // ignored
	r.Stop()
}
