package e2e

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/pkg/codehost"
	"github.com/conveyor-dev/conveyor/pkg/config"
)

// ────────────────────────────────────────────────────────────
// Orchestrator scenarios — stall alerting, the deployment retry
// ladder, and the staged deployment mode.
// ────────────────────────────────────────────────────────────

// TestE2E_StallNotification verifies that a request sitting in
// architect_review past the warning threshold alerts exactly once.
func TestE2E_StallNotification(t *testing.T) {
	app := NewTestApp(t, WithSlack())
	project, _ := app.seedProject()
	req := app.seedRequest(project.ID, "Export reports as CSV")

	// Four days without progress: past the 3-day warning threshold,
	// short of the critical one.
	app.forceState(req.ID, request.StateArchitectReview)
	app.backdate(req.ID, time.Now().Add(-4*24*time.Hour))

	app.CycleOrchestrator()

	calls := app.Slack.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, testChannelID, calls[0].Channel)
	assert.Contains(t, calls[0].Blocks, "Request Stalled")
	assert.NotContains(t, calls[0].Blocks, "critical")
	assert.Contains(t, calls[0].Blocks, req.Title)

	got := app.reload(req.ID)
	require.NotNil(t, got.StallNotifiedAt)

	// The flag suppresses a second alert for the same stall.
	app.backdate(req.ID, time.Now().Add(-5*24*time.Hour))
	app.CycleOrchestrator()
	assert.Len(t, app.Slack.Calls(), 1)
}

// TestE2E_CriticalStallNotification verifies the escalated wording once
// a request stalls past the critical threshold.
func TestE2E_CriticalStallNotification(t *testing.T) {
	app := NewTestApp(t, WithSlack())
	project, _ := app.seedProject()
	req := app.seedRequest(project.ID, "Nightly usage digest")

	app.forceState(req.ID, request.StateArchitectReview)
	app.backdate(req.ID, time.Now().Add(-8*24*time.Hour))

	app.CycleOrchestrator()

	calls := app.Slack.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Blocks, "Request Stalled (critical)")
}

// TestE2E_DeploymentRetryLadder drives a failing deployment through the
// automatic retry ladder: re-run of failed jobs first, fresh dispatches
// after, a single exhaustion alert, and an operator reset over the API.
func TestE2E_DeploymentRetryLadder(t *testing.T) {
	app := NewTestApp(t, WithSlack())
	project, repo := app.seedProject()
	req := app.seedRequest(project.ID, "Export reports as CSV")

	runID := app.Host.AddWorkflowRun(repo, "deploy-api.yml", codehost.WorkflowRun{
		Status:     "completed",
		Conclusion: "failure",
		HeadBranch: "main",
	})
	app.forceState(req.ID, request.StateDone, func(u *ent.RequestUpdateOne) {
		u.SetImplementationStatus(request.ImplementationStatusPrMerged).
			SetDeploymentStatus(request.DeploymentStatusFailed).
			SetDeploymentRunID(runID).
			SetCompletedAt(time.Now())
	})

	// Retry 1 re-runs the failed jobs of the recorded run.
	app.CycleOrchestrator()
	got := app.reload(req.ID)
	assert.Equal(t, request.DeploymentStatusPending, got.DeploymentStatus)
	assert.Equal(t, 1, got.DeploymentRetryCount)
	require.NotNil(t, got.DeploymentRunID)
	assert.Equal(t, []int64{runID}, app.Host.RerunCalls())
	assert.Empty(t, app.Host.Dispatches())

	// The re-queued run is picked up again, then fails again.
	app.CycleOrchestrator()
	assert.Equal(t, request.DeploymentStatusInProgress, app.reload(req.ID).DeploymentStatus)
	app.Host.CompleteRun(repo, runID, "failure")
	app.CycleOrchestrator()
	assert.Equal(t, request.DeploymentStatusFailed, app.reload(req.ID).DeploymentStatus)

	// Retry 2 dispatches fresh runs on every deploy workflow and drops
	// the stale run handle.
	app.CycleOrchestrator()
	got = app.reload(req.ID)
	assert.Equal(t, request.DeploymentStatusPending, got.DeploymentStatus)
	assert.Equal(t, 2, got.DeploymentRetryCount)
	assert.Nil(t, got.DeploymentRunID)
	dispatches := app.Host.Dispatches()
	require.Len(t, dispatches, 2)
	assert.Equal(t, "deploy-api.yml", dispatches[0].Workflow)
	assert.Equal(t, "deploy-web.yml", dispatches[1].Workflow)

	// The newest dispatched run is adopted and fails as well.
	app.CycleOrchestrator()
	got = app.reload(req.ID)
	assert.Equal(t, request.DeploymentStatusInProgress, got.DeploymentStatus)
	require.NotNil(t, got.DeploymentRunID)
	secondRun := *got.DeploymentRunID
	assert.NotEqual(t, runID, secondRun)

	app.Host.CompleteRun(repo, secondRun, "failure")
	app.CycleOrchestrator()
	assert.Equal(t, request.DeploymentStatusFailed, app.reload(req.ID).DeploymentStatus)

	// Retry 3 exhausts the budget on its next failure.
	app.CycleOrchestrator()
	got = app.reload(req.ID)
	assert.Equal(t, 3, got.DeploymentRetryCount)
	require.Len(t, app.Host.Dispatches(), 4)

	app.CycleOrchestrator()
	got = app.reload(req.ID)
	require.NotNil(t, got.DeploymentRunID)
	thirdRun := *got.DeploymentRunID
	app.Host.CompleteRun(repo, thirdRun, "failure")
	app.CycleOrchestrator()
	assert.Equal(t, request.DeploymentStatusFailed, app.reload(req.ID).DeploymentStatus)

	// Exhaustion alerts once; further cycles stay quiet.
	app.CycleOrchestrator()
	got = app.reload(req.ID)
	assert.Equal(t, request.DeploymentStatusFailed, got.DeploymentStatus)
	require.NotNil(t, got.StallNotifiedAt)
	assert.Equal(t, 1, deployAlertCount(app, "Deployment Failed"))

	app.CycleOrchestrator()
	assert.Equal(t, 1, deployAlertCount(app, "Deployment Failed"))

	// An operator restarts the deployment; the budget and stall flag
	// reset and the re-run run succeeds.
	app.postJSON(fmt.Sprintf("/api/v1/requests/%d/deploy/retry", req.ID), nil, 200)

	got = app.reload(req.ID)
	assert.Equal(t, request.DeploymentStatusPending, got.DeploymentStatus)
	assert.Equal(t, 0, got.DeploymentRetryCount)
	assert.Nil(t, got.StallNotifiedAt)
	assert.Contains(t, app.Host.RerunCalls(), thirdRun)

	app.CycleOrchestrator()
	assert.Equal(t, request.DeploymentStatusInProgress, app.reload(req.ID).DeploymentStatus)

	app.Host.CompleteRun(repo, thirdRun, "success")
	app.CycleOrchestrator()

	got = app.reload(req.ID)
	assert.Equal(t, request.DeploymentStatusSucceeded, got.DeploymentStatus)
	assert.NotNil(t, got.DeployedAt)
	assert.Equal(t, 1, deployAlertCount(app, "Deployment Succeeded"))
	assert.Equal(t, 3, deployAlertCount(app, "Deployment Retrying"))
}

// TestE2E_StagedDeployment verifies that Staged mode holds
// review-approved pull requests until an operator releases the batch.
func TestE2E_StagedDeployment(t *testing.T) {
	app := NewTestApp(t, WithPipeline(func(ps *config.PipelineSettings) {
		ps.Orchestrator.DeploymentMode = config.DeploymentModeStaged
	}))
	project, repo := app.seedProject()
	req := app.seedRequest(project.ID, "Export reports as CSV")

	headRef := "copilot/fix-41"
	prNum := app.Host.OpenPullRequest(repo, codehost.PullRequest{
		Title:          "Add CSV export",
		Author:         "copilot-swe-agent[bot]",
		HeadRef:        headRef,
		BaseRef:        "main",
		MergeableState: "clean",
	})
	app.forceState(req.ID, request.StateInProgress, func(u *ent.RequestUpdateOne) {
		u.SetImplementationStatus(request.ImplementationStatusReviewApproved).
			SetPrNumber(prNum).
			SetBranchName(headRef).
			SetSessionID("session-staged")
	})

	// Staged mode: the orchestrator cycle leaves the PR alone.
	app.CycleOrchestrator()
	assert.Empty(t, app.Host.MergedPRs())
	assert.Equal(t, request.StateInProgress, app.reload(req.ID).State)

	// The operator releases the staged batch.
	resp := app.postJSON("/api/v1/deploy/staged", nil, 200)
	assert.Equal(t, float64(1), resp["merged"])
	assert.Equal(t, "1 pull request(s) merged", resp["message"])

	got := app.reload(req.ID)
	assert.Equal(t, request.StateDone, got.State)
	require.NotNil(t, got.ImplementationStatus)
	assert.Equal(t, request.ImplementationStatusPrMerged, *got.ImplementationStatus)
	assert.Equal(t, request.DeploymentStatusPending, got.DeploymentStatus)
	assert.Equal(t, []int{prNum}, app.Host.MergedPRs())
}

// TestE2E_MergeDefersWhenBranchBehind verifies that a PR behind its base
// is refreshed and merged on a later cycle instead of failing.
func TestE2E_MergeDefersWhenBranchBehind(t *testing.T) {
	app := NewTestApp(t)
	project, repo := app.seedProject()
	req := app.seedRequest(project.ID, "Export reports as CSV")

	headRef := "copilot/fix-7"
	prNum := app.Host.OpenPullRequest(repo, codehost.PullRequest{
		Title:          "Add CSV export",
		Author:         "copilot-swe-agent[bot]",
		HeadRef:        headRef,
		BaseRef:        "main",
		MergeableState: "behind",
	})
	app.forceState(req.ID, request.StateInProgress, func(u *ent.RequestUpdateOne) {
		u.SetImplementationStatus(request.ImplementationStatusReviewApproved).
			SetPrNumber(prNum).
			SetBranchName(headRef).
			SetSessionID("session-behind")
	})

	// First cycle refreshes the branch and defers.
	app.CycleOrchestrator()
	assert.Empty(t, app.Host.MergedPRs())
	assert.Equal(t, []int{prNum}, app.Host.BranchUpdates())
	assert.Equal(t, request.StateInProgress, app.reload(req.ID).State)

	// The refresh cleared the lag; the next cycle merges.
	app.CycleOrchestrator()
	assert.Equal(t, []int{prNum}, app.Host.MergedPRs())
	assert.Equal(t, request.StateDone, app.reload(req.ID).State)
}

// deployAlertCount counts Slack notifications carrying the given
// deployment label.
func deployAlertCount(app *TestApp, label string) int {
	n := 0
	for _, call := range app.Slack.Calls() {
		if strings.Contains(call.Blocks, label) {
			n++
		}
	}
	return n
}
