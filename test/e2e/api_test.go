package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/ent/architectreview"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/pkg/config"
	"github.com/conveyor-dev/conveyor/pkg/prompt"
)

// ────────────────────────────────────────────────────────────
// Admin API scenarios — health surfaces, human review decisions,
// requeue operations, manual dispatch, and runtime configuration.
// ────────────────────────────────────────────────────────────

func TestE2E_HealthEndpoints(t *testing.T) {
	app := NewTestApp(t)

	body := app.getJSON("/healthz", http.StatusOK)
	assert.Equal(t, "healthy", body["status"])

	body = app.getJSON("/api/v1/health", http.StatusOK)
	assert.Equal(t, "healthy", body["status"])
	assert.NotNil(t, body["database"])
	assert.NotNil(t, body["pipeline"])
	workers, ok := body["workers"].([]any)
	require.True(t, ok, "workers missing from health payload")
	assert.Len(t, workers, 6)

	// Prometheus text surface.
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# HELP")
}

// TestE2E_TriageOverrideAndRequeue covers the human escape hatches
// around triage: overriding a clarify verdict and requeuing a request
// from scratch.
func TestE2E_TriageOverrideAndRequeue(t *testing.T) {
	app := NewTestApp(t)
	project, _ := app.seedProject()
	req := app.seedRequest(project.ID, "Export reports as CSV")

	app.LLM.AddRouted(prompt.StageTriage,
		LLMScriptEntry{Content: triageClarifyJSON("Which file formats?")})
	app.CycleTriage()
	require.Equal(t, request.StateNeedsClarification, app.reload(req.ID).State)

	review, err := app.Reviews.LatestTriageReview(app.ctx, req.ID)
	require.NoError(t, err)
	overridePath := "/api/v1/reviews/triage/" + review.ID + "/override"

	// Not a request state at all.
	app.postJSON(overridePath, map[string]any{
		"actor": "dana", "new_state": "bogus",
	}, http.StatusBadRequest)

	// A real state, but not one triage may produce.
	app.postJSON(overridePath, map[string]any{
		"actor": "dana", "new_state": "approved",
	}, http.StatusBadRequest)

	// The override lands and is attributed.
	app.postJSON(overridePath, map[string]any{
		"actor": "dana", "new_state": "triaged", "reason": "answered on the call",
	}, http.StatusOK)
	assert.Equal(t, request.StateTriaged, app.reload(req.ID).State)

	// Requeue resets the counters and returns the request to new.
	app.postJSON(fmt.Sprintf("/api/v1/requests/%d/triage", req.ID), nil, http.StatusOK)
	got := app.reload(req.ID)
	assert.Equal(t, request.StateNew, got.State)
	assert.Equal(t, 0, got.TriageCount)
	assert.Nil(t, got.LastTriageAt)

	// The next cycle picks the reset request up again.
	app.LLM.AddRouted(prompt.StageTriage, LLMScriptEntry{Content: triageApproveJSON()})
	app.CycleTriage()
	assert.Equal(t, request.StateTriaged, app.reload(req.ID).State)

	// Unknown request.
	app.postJSON("/api/v1/requests/999999/triage", nil, http.StatusNotFound)
}

// TestE2E_ArchitectFeedbackAndReject covers the human loop on solution
// designs: revision feedback leading to a second design pass, then a
// rejection sending the request back to triage output.
func TestE2E_ArchitectFeedbackAndReject(t *testing.T) {
	app := NewTestApp(t)
	project, repo := app.seedProject()
	app.Host.AddFile(repo, "internal/report/render.go", "package report\n")
	req := app.seedRequest(project.ID, "Export reports as CSV")

	app.LLM.AddRouted(prompt.StageTriage, LLMScriptEntry{Content: triageApproveJSON()})
	app.CycleTriage()

	app.LLM.AddRouted(prompt.StageArchitect,
		LLMScriptEntry{Content: fileSelectionJSON("internal/report/render.go")},
		LLMScriptEntry{Content: solutionJSON("Buffer the whole export in memory.")},
	)
	app.CycleArchitect()
	require.Equal(t, request.StateArchitectReview, app.reload(req.ID).State)

	first, err := app.Reviews.LatestArchitectReview(app.ctx, req.ID)
	require.NoError(t, err)

	// Feedback without text is rejected.
	app.postJSON("/api/v1/reviews/architect/"+first.ID+"/feedback",
		map[string]any{"actor": "dana"}, http.StatusBadRequest)

	// Real feedback marks the review revised and stays in place.
	app.postJSON("/api/v1/reviews/architect/"+first.ID+"/feedback",
		map[string]any{"actor": "dana", "feedback": "Prefer streaming writes over buffering."},
		http.StatusOK)

	first, err = app.Reviews.GetArchitectReview(app.ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, architectreview.DecisionRevised, first.Decision)
	require.NotNil(t, first.HumanFeedback)
	assert.Equal(t, "Prefer streaming writes over buffering.", *first.HumanFeedback)
	assert.Equal(t, request.StateArchitectReview, app.reload(req.ID).State)

	// The feedback comment triggers a second design pass.
	app.LLM.AddRouted(prompt.StageArchitect,
		LLMScriptEntry{Content: fileSelectionJSON("internal/report/render.go")},
		LLMScriptEntry{Content: solutionJSON("Stream rows through a CSV writer.")},
	)
	app.CycleArchitect()

	got := app.reload(req.ID)
	assert.Equal(t, 2, got.ArchitectCount)
	second, err := app.Reviews.LatestArchitectReview(app.ctx, req.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, architectreview.DecisionPending, second.Decision)
	assert.Equal(t, "Stream rows through a CSV writer.", second.SolutionSummary)

	// Rejecting the design returns the request for a fresh run.
	app.postJSON("/api/v1/reviews/architect/"+second.ID+"/reject",
		map[string]any{"actor": "dana", "reason": "wrong layering"}, http.StatusOK)

	got = app.reload(req.ID)
	assert.Equal(t, request.StateTriaged, got.State)
	assert.Equal(t, 0, got.ArchitectCount)
	assert.Nil(t, got.LastArchitectAt)

	second, err = app.Reviews.GetArchitectReview(app.ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, architectreview.DecisionRejected, second.Decision)

	// Approving a review no longer pending conflicts.
	app.postJSON("/api/v1/reviews/architect/"+second.ID+"/approve",
		map[string]any{"actor": "dana"}, http.StatusConflict)
}

// TestE2E_ManualImplementationFlow covers dispatch with auto-trigger
// off: nothing moves until the operator triggers, and a rejected
// attempt can be dispatched again.
func TestE2E_ManualImplementationFlow(t *testing.T) {
	app := NewTestApp(t, WithPipeline(func(ps *config.PipelineSettings) {
		ps.Implementation.AutoTrigger = false
	}))
	project, repo := app.seedProject()
	app.Host.AddFile(repo, "internal/report/render.go", "package report\n")
	req := app.seedRequest(project.ID, "Export reports as CSV")

	app.LLM.AddRouted(prompt.StageTriage, LLMScriptEntry{Content: triageApproveJSON()})
	app.CycleTriage()
	app.LLM.AddRouted(prompt.StageArchitect,
		LLMScriptEntry{Content: fileSelectionJSON("internal/report/render.go")},
		LLMScriptEntry{Content: solutionJSON("Add a CSV exporter.")},
	)
	app.CycleArchitect()
	app.approveSolution(req.ID, "dana")
	require.Equal(t, request.StateApproved, app.reload(req.ID).State)

	// Auto-trigger is off: the polling cycle does not dispatch.
	app.CycleImplementation()
	assert.Equal(t, request.StateApproved, app.reload(req.ID).State)
	assert.Empty(t, app.Host.Assignments())

	// Manual trigger dispatches immediately.
	app.postJSON(fmt.Sprintf("/api/v1/requests/%d/implement", req.ID), nil, http.StatusOK)
	got := app.reload(req.ID)
	assert.Equal(t, request.StateInProgress, got.State)
	require.NotNil(t, got.SessionID)
	assert.Len(t, app.Host.Assignments(), 1)

	// A second trigger conflicts while the session is live.
	app.postJSON(fmt.Sprintf("/api/v1/requests/%d/implement", req.ID), nil, http.StatusConflict)

	// Rejecting the attempt clears the session for a re-dispatch.
	app.postJSON(fmt.Sprintf("/api/v1/requests/%d/implementation/reject", req.ID),
		map[string]any{"reason": "agent went down the wrong path"}, http.StatusOK)

	got = app.reload(req.ID)
	assert.Equal(t, request.StateApproved, got.State)
	assert.Nil(t, got.SessionID)
	assert.Nil(t, got.ImplementationStatus)
	assert.Nil(t, got.PrNumber)

	app.postJSON(fmt.Sprintf("/api/v1/requests/%d/implement", req.ID), nil, http.StatusOK)
	assert.Equal(t, request.StateInProgress, app.reload(req.ID).State)
	assert.Len(t, app.Host.Assignments(), 2)

	app.postJSON("/api/v1/requests/999999/implement", nil, http.StatusNotFound)
}

// TestE2E_PipelineConfigAPI covers reading and updating the runtime
// pipeline settings, including the validation backstop.
func TestE2E_PipelineConfigAPI(t *testing.T) {
	app := NewTestApp(t)

	body := app.getJSON("/api/v1/config/pipeline", http.StatusOK)
	triage, ok := body["triage"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(30), triage["poll_sec"])
	orch, ok := body["orchestrator"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Auto", orch["deployment_mode"])

	// A partial body updates only the named fields.
	body = app.putJSON("/api/v1/config/pipeline", map[string]any{
		"triage": map[string]any{
			"enabled": true, "poll_sec": 45, "max_reviews": 3,
			"temperature": 0.3, "max_tokens": 2000,
		},
	}, http.StatusOK)
	triage = body["triage"].(map[string]any)
	assert.Equal(t, float64(45), triage["poll_sec"])
	assert.Equal(t, float64(3), triage["max_reviews"])

	body = app.getJSON("/api/v1/config/pipeline", http.StatusOK)
	triage = body["triage"].(map[string]any)
	assert.Equal(t, float64(45), triage["poll_sec"])
	architect := body["architect"].(map[string]any)
	assert.Equal(t, float64(20), architect["max_files"])

	// Validation failures leave the settings untouched.
	app.putJSON("/api/v1/config/pipeline", map[string]any{
		"triage": map[string]any{"poll_sec": 0},
	}, http.StatusBadRequest)

	app.putJSON("/api/v1/config/pipeline", map[string]any{
		"orchestrator": map[string]any{"deployment_mode": "Rolling"},
	}, http.StatusBadRequest)

	body = app.getJSON("/api/v1/config/pipeline", http.StatusOK)
	triage = body["triage"].(map[string]any)
	assert.Equal(t, float64(45), triage["poll_sec"])
	orch = body["orchestrator"].(map[string]any)
	assert.Equal(t, "Auto", orch["deployment_mode"])

	assert.Equal(t, 45, app.Config.Pipeline().Triage.PollSec)
}
