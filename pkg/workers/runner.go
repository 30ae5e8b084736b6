// Package workers contains the pipeline stages and the runner that
// drives them. Each stage is a plain struct with a cycle method; the
// runner owns the goroutine, the poll cadence, the panic guard, and
// health tracking. Stages coordinate only through the store.
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime/debug"
	"sync"
	"time"

	"github.com/conveyor-dev/conveyor/pkg/config"
	"github.com/conveyor-dev/conveyor/pkg/metrics"
)

// Stage is one pipeline stage. Cycle processes a single batch against a
// settings snapshot and returns; scheduling, panics, and health are the
// runner's job. The snapshot passed to Enabled, Interval, and Cycle is
// the same object within one loop iteration, so a stage sees a
// consistent view even while an admin swaps settings.
type Stage interface {
	Name() string
	Enabled(ps *config.PipelineSettings) bool
	Interval(ps *config.PipelineSettings) time.Duration
	Cycle(ctx context.Context, ps *config.PipelineSettings) error
}

// Startup delay bounds. Staggering worker starts keeps the stages from
// hitting the store in lockstep right after boot.
const (
	startupDelayMin = 5 * time.Second
	startupDelayMax = 15 * time.Second
)

// disabledRecheck is how often a disabled stage re-reads its settings.
const disabledRecheck = 30 * time.Second

// pollJitterFraction spreads poll wakeups around the configured
// interval so stages sharing a cadence drift apart over time.
const pollJitterFraction = 0.1

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	Name        string     `json:"name"`
	Running     bool       `json:"running"`
	LastCycleAt *time.Time `json:"last_cycle_at,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
	Cycles      int        `json:"cycles"`
}

// Worker drives one Stage on a jittered polling loop.
type Worker struct {
	stage    Stage
	cfg      *config.Config
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu          sync.RWMutex
	running     bool
	lastCycleAt time.Time
	lastError   string
	cycles      int
}

// NewWorker wraps a stage in its polling driver.
func NewWorker(stage Stage, cfg *config.Config) *Worker {
	return &Worker{
		stage:  stage,
		cfg:    cfg,
		stopCh: make(chan struct{}),
	}
}

// Start begins the polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the in-flight cycle to
// finish. It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	h := WorkerHealth{
		Name:      w.stage.Name(),
		Running:   w.running,
		LastError: w.lastError,
		Cycles:    w.cycles,
	}
	if !w.lastCycleAt.IsZero() {
		at := w.lastCycleAt
		h.LastCycleAt = &at
	}
	return h
}

// run is the main polling loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker", w.stage.Name())

	w.setRunning(true)
	defer w.setRunning(false)

	w.sleep(startupDelay())
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			ps := w.cfg.Pipeline()
			if !w.stage.Enabled(ps) {
				w.sleep(disabledRecheck)
				continue
			}

			start := time.Now()
			err := w.runCycle(ctx, ps)
			metrics.ObserveWorkerCycle(w.stage.Name(), time.Since(start), err)
			w.recordCycle(err)
			if err != nil {
				log.Error("Cycle failed", "error", err)
			}

			w.sleep(jittered(w.stage.Interval(ps)))
		}
	}
}

// runCycle guards the stage against panics: one poisoned request must
// not take the loop down.
func (w *Worker) runCycle(ctx context.Context, ps *config.PipelineSettings) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cycle panicked: %v\n%s", r, debug.Stack())
		}
	}()
	return w.stage.Cycle(ctx, ps)
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

func (w *Worker) setRunning(v bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.running = v
}

func (w *Worker) recordCycle(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cycles++
	w.lastCycleAt = time.Now()
	if err != nil {
		w.lastError = err.Error()
	} else {
		w.lastError = ""
	}
}

func startupDelay() time.Duration {
	spread := startupDelayMax - startupDelayMin
	return startupDelayMin + time.Duration(rand.Int64N(int64(spread)))
}

// jittered returns the interval spread over [base - 10%, base + 10%].
func jittered(d time.Duration) time.Duration {
	if d <= 0 {
		d = time.Minute
	}
	jitter := time.Duration(float64(d) * pollJitterFraction)
	if jitter <= 0 {
		return d
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return d - jitter + offset
}

// Runner owns the pipeline workers and their lifecycle.
type Runner struct {
	cfg     *config.Config
	workers []*Worker
	started bool

	implementation *ImplementationWorker
	orchestrator   *Orchestrator
}

// NewRunner creates an empty runner; stages are added with Register.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg}
}

// Register adds a stage. Must be called before Start.
func (r *Runner) Register(stage Stage) {
	r.workers = append(r.workers, NewWorker(stage, r.cfg))
}

// Start launches all registered workers.
// It is safe to call multiple times; subsequent calls are no-ops.
func (r *Runner) Start(ctx context.Context) {
	if r.started {
		slog.Warn("Worker runner already started, ignoring duplicate Start call")
		return
	}
	r.started = true

	slog.Info("Starting pipeline workers", "count", len(r.workers))
	for _, w := range r.workers {
		w.Start(ctx)
	}
}

// Stop stops all workers, letting in-flight cycles complete.
func (r *Runner) Stop() {
	slog.Info("Stopping pipeline workers")
	for _, w := range r.workers {
		w.Stop()
	}
	slog.Info("Pipeline workers stopped")
}

// Health returns per-worker health snapshots in registration order.
func (r *Runner) Health() []WorkerHealth {
	out := make([]WorkerHealth, 0, len(r.workers))
	for _, w := range r.workers {
		out = append(out, w.Health())
	}
	return out
}

// Implementation returns the implementation stage for the admin
// trigger path, or nil when it is not registered.
func (r *Runner) Implementation() *ImplementationWorker { return r.implementation }

// Orchestrator returns the orchestrator stage for the admin deployment
// paths, or nil when it is not registered.
func (r *Runner) Orchestrator() *Orchestrator { return r.orchestrator }
