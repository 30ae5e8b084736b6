// Package metrics exposes the Prometheus instrumentation for the pipeline.
// Collectors are package-level and registered once at init, so the
// application (and any number of test harness instances in one process)
// share them safely.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	workerCycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conveyor_worker_cycles_total",
			Help: "Total polling cycles per worker",
		},
		[]string{"worker"},
	)
	workerCycleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conveyor_worker_cycle_errors_total",
			Help: "Cycles that ended with an error, per worker",
		},
		[]string{"worker"},
	)
	workerCycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "conveyor_worker_cycle_duration_seconds",
			Help:    "Duration of one polling cycle",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"worker"},
	)
	workerBudgetSkips = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conveyor_worker_budget_skips_total",
			Help: "Cycles skipped because a token budget gate was closed",
		},
		[]string{"worker"},
	)

	llmRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conveyor_llm_requests_total",
			Help: "LLM chat completions by provider, model, stage and status",
		},
		[]string{"provider", "model", "stage", "status"},
	)
	llmTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conveyor_llm_tokens_total",
			Help: "Tokens consumed by LLM calls, split by type",
		},
		[]string{"provider", "model", "stage", "type"},
	)
	llmDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "conveyor_llm_request_duration_seconds",
			Help:    "Wall-clock duration of LLM calls",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 120},
		},
		[]string{"provider", "model", "stage"},
	)

	stateTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conveyor_state_transitions_total",
			Help: "Request state transitions committed",
		},
		[]string{"from", "to"},
	)

	codeHostRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conveyor_codehost_requests_total",
			Help: "Code host API calls by operation and status",
		},
		[]string{"operation", "status"},
	)

	stallNotifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conveyor_stall_notifications_total",
			Help: "Stall alerts emitted, by state and level",
		},
		[]string{"state", "level"},
	)
	deployOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conveyor_deployments_total",
			Help: "Deployment outcomes observed, by status",
		},
		[]string{"status"},
	)
)

// ObserveWorkerCycle records one completed polling cycle.
func ObserveWorkerCycle(worker string, duration time.Duration, err error) {
	workerCycles.WithLabelValues(worker).Inc()
	workerCycleDuration.WithLabelValues(worker).Observe(duration.Seconds())
	if err != nil {
		workerCycleErrors.WithLabelValues(worker).Inc()
	}
}

// IncBudgetSkip records a cycle skipped by a closed budget gate.
func IncBudgetSkip(worker string) {
	workerBudgetSkips.WithLabelValues(worker).Inc()
}

// ObserveLLMRequest records one chat completion attempt.
func ObserveLLMRequest(provider, model, stage string, promptTokens, completionTokens int, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	llmRequests.WithLabelValues(provider, model, stage, status).Inc()
	llmDuration.WithLabelValues(provider, model, stage).Observe(duration.Seconds())
	if err == nil {
		llmTokens.WithLabelValues(provider, model, stage, "prompt").Add(float64(promptTokens))
		llmTokens.WithLabelValues(provider, model, stage, "completion").Add(float64(completionTokens))
	}
}

// ObserveTransition records a committed state transition.
func ObserveTransition(from, to string) {
	stateTransitions.WithLabelValues(from, to).Inc()
}

// ObserveCodeHostRequest records one code host API call.
func ObserveCodeHostRequest(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	codeHostRequests.WithLabelValues(operation, status).Inc()
}

// IncStallNotification records one stall alert.
func IncStallNotification(state, level string) {
	stallNotifications.WithLabelValues(state, level).Inc()
}

// IncDeployOutcome records one observed deployment outcome.
func IncDeployOutcome(status string) {
	deployOutcomes.WithLabelValues(status).Inc()
}
