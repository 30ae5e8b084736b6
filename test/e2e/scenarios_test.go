package e2e

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/ent/architectreview"
	"github.com/conveyor-dev/conveyor/ent/codereview"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/ent/triagereview"
	"github.com/conveyor-dev/conveyor/pkg/codehost"
	"github.com/conveyor-dev/conveyor/pkg/prompt"
)

// ────────────────────────────────────────────────────────────
// Pipeline scenarios — each test drives the worker cycles by hand
// against a scripted LLM and an in-memory code host, asserting the
// stored request state and the mirrored issue after every hop.
// ────────────────────────────────────────────────────────────

// TestE2E_HappyPath walks one feature request through the whole
// pipeline: triage approval, solution design, human sign-off, agent
// dispatch, PR detection, code review, auto-merge, and a successful
// deployment run.
func TestE2E_HappyPath(t *testing.T) {
	app := NewTestApp(t)
	project, repo := app.seedProject()

	app.Host.AddFile(repo, "cmd/widgets/main.go", "package main\n\nfunc main() {}\n")
	app.Host.AddFile(repo, "internal/report/render.go", "package report\n\nfunc Render() {}\n")
	app.Host.AddFile(repo, "internal/report/export.go", "package report\n\nfunc Export() {}\n")

	req := app.seedRequest(project.ID, "Export reports as CSV")

	// Stage 1: triage approves.
	app.LLM.AddRouted(prompt.StageTriage, LLMScriptEntry{Content: triageApproveJSON()})
	app.CycleTriage()

	got := app.reload(req.ID)
	require.Equal(t, request.StateTriaged, got.State)
	assert.Equal(t, 1, got.TriageCount)
	require.NotNil(t, got.LastTriageAt)
	require.NotNil(t, got.IssueNumber)
	issueNum := *got.IssueNumber

	assert.Equal(t, 1, app.Host.IssueCount(repo))
	assert.Contains(t, app.Host.Labels(repo, issueNum), "agent:approved")
	comments := app.Host.IssueComments(repo, issueNum)
	require.NotEmpty(t, comments)
	assert.Contains(t, comments[0], "Triage decision: approve")
	assert.Contains(t, comments[0], "alignment 88/100")

	triage, err := app.Reviews.LatestTriageReview(app.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, triagereview.DecisionApprove, triage.Decision)
	assert.Equal(t, 88, triage.AlignmentScore)

	// Stage 2: architect selects files and designs the solution.
	summary := "Add a CSV exporter behind the existing report interface."
	app.LLM.AddRouted(prompt.StageArchitect,
		LLMScriptEntry{Content: fileSelectionJSON("internal/report/render.go", "internal/report/export.go")},
		LLMScriptEntry{Content: solutionJSON(summary)},
	)
	app.CycleArchitect()

	got = app.reload(req.ID)
	require.Equal(t, request.StateArchitectReview, got.State)
	assert.Equal(t, 1, got.ArchitectCount)

	design, err := app.Reviews.LatestArchitectReview(app.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, architectreview.DecisionPending, design.Decision)
	assert.Equal(t, summary, design.SolutionSummary)
	assert.Equal(t, 2, design.FilesAnalyzed)

	comments = app.Host.IssueComments(repo, issueNum)
	require.NotEmpty(t, comments)
	assert.Contains(t, comments[len(comments)-1], "Solution design ready for review.")

	// Stage 3: a human approves the design.
	app.approveSolution(req.ID, "dana")

	got = app.reload(req.ID)
	require.Equal(t, request.StateApproved, got.State)
	design, err = app.Reviews.LatestArchitectReview(app.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, architectreview.DecisionApproved, design.Decision)
	require.NotNil(t, design.ApprovedBy)
	assert.Equal(t, "dana", *design.ApprovedBy)

	// Stage 4: dispatch to the coding agent.
	app.CycleImplementation()

	got = app.reload(req.ID)
	require.Equal(t, request.StateInProgress, got.State)
	require.NotNil(t, got.SessionID)
	assert.True(t, strings.HasPrefix(*got.SessionID, "session-"), "session id %q", *got.SessionID)
	require.NotNil(t, got.ImplementationStatus)
	assert.Equal(t, request.ImplementationStatusPending, *got.ImplementationStatus)
	assert.NotNil(t, got.TriggeredAt)

	assignments := app.Host.Assignments()
	require.Len(t, assignments, 1)
	assert.Equal(t, issueNum, assignments[0].Number)
	assert.Equal(t, "main", assignments[0].Input.BaseBranch)
	assert.Contains(t, assignments[0].Input.Instructions, "CSV")

	labels := app.Host.Labels(repo, issueNum)
	assert.Contains(t, labels, "agent:approved")
	assert.Contains(t, labels, "copilot:implementing")

	// The agent opens a pull request referencing the issue.
	headRef := fmt.Sprintf("copilot/fix-%d", issueNum)
	prNum := app.Host.OpenPullRequest(repo, codehost.PullRequest{
		Title:          "Add CSV export to reports",
		Body:           fmt.Sprintf("Closes #%d", issueNum),
		Author:         "copilot-swe-agent[bot]",
		HeadRef:        headRef,
		BaseRef:        "main",
		MergeableState: "clean",
		ChangedFiles:   2,
		Additions:      160,
		Deletions:      4,
	})

	// Stage 5: the PR monitor picks it up.
	app.CyclePRMonitor()

	got = app.reload(req.ID)
	require.NotNil(t, got.ImplementationStatus)
	assert.Equal(t, request.ImplementationStatusPrOpened, *got.ImplementationStatus)
	require.NotNil(t, got.PrNumber)
	assert.Equal(t, prNum, *got.PrNumber)
	require.NotNil(t, got.BranchName)
	assert.Equal(t, headRef, *got.BranchName)
	assert.NotNil(t, got.PrURL)

	comments = app.Host.IssueComments(repo, issueNum)
	assert.Contains(t, comments[len(comments)-1], fmt.Sprintf("Pull request #%d is ready for review.", prNum))

	// Stage 6: the automated code review approves.
	app.Host.SetDiff(repo, prNum, "diff --git a/internal/report/render.go b/internal/report/render.go\n+func renderCSV() {}\n")
	app.LLM.AddRouted(prompt.StageCodeReview, LLMScriptEntry{Content: codeReviewApproveJSON()})
	app.CycleCodeReview()

	got = app.reload(req.ID)
	require.NotNil(t, got.ImplementationStatus)
	assert.Equal(t, request.ImplementationStatusReviewApproved, *got.ImplementationStatus)

	codeRev, err := app.Reviews.LatestCodeReview(app.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, codereview.DecisionApproved, codeRev.Decision)
	assert.Equal(t, 9, codeRev.QualityScore)
	assert.Equal(t, prNum, codeRev.PrNumber)

	prReviews := app.Host.PullRequestReviews(repo, prNum)
	require.Len(t, prReviews, 1)
	assert.Equal(t, "APPROVE", prReviews[0].Event)
	assert.Contains(t, app.Host.Labels(repo, issueNum), "review:approved")

	// Stage 7: the orchestrator merges in Auto mode.
	app.CycleOrchestrator()

	got = app.reload(req.ID)
	require.Equal(t, request.StateDone, got.State)
	require.NotNil(t, got.ImplementationStatus)
	assert.Equal(t, request.ImplementationStatusPrMerged, *got.ImplementationStatus)
	assert.Equal(t, request.DeploymentStatusPending, got.DeploymentStatus)
	assert.NotNil(t, got.CompletedAt)
	assert.True(t, got.BranchDeleted)

	assert.Equal(t, []int{prNum}, app.Host.MergedPRs())
	scrubs := app.Host.Scrubs()
	require.Len(t, scrubs, 1)
	assert.Equal(t, headRef, scrubs[0].Branch)
	assert.Equal(t, "_temp-attachments/", scrubs[0].Prefix)
	assert.Contains(t, app.Host.DeletedBranches(), headRef)

	labels = app.Host.Labels(repo, issueNum)
	assert.Contains(t, labels, "copilot:complete")
	assert.NotContains(t, labels, "copilot:implementing")

	// Stage 8: the merge triggers a deployment workflow run.
	runID := app.Host.AddWorkflowRun(repo, "deploy-api.yml", codehost.WorkflowRun{
		Status:     "in_progress",
		HeadBranch: "main",
	})
	app.CycleOrchestrator()

	got = app.reload(req.ID)
	assert.Equal(t, request.DeploymentStatusInProgress, got.DeploymentStatus)
	require.NotNil(t, got.DeploymentRunID)
	assert.Equal(t, runID, *got.DeploymentRunID)

	app.Host.CompleteRun(repo, runID, "success")
	app.CycleOrchestrator()

	got = app.reload(req.ID)
	assert.Equal(t, request.DeploymentStatusSucceeded, got.DeploymentStatus)
	assert.NotNil(t, got.DeployedAt)
	assert.Equal(t, 0, got.DeploymentRetryCount)

	// One completion per stage: triage, two architect phases, review.
	assert.Equal(t, 4, app.LLM.CallCount())
	assert.Equal(t, 1, app.LLM.CallsFor(prompt.StageTriage))
	assert.Equal(t, 2, app.LLM.CallsFor(prompt.StageArchitect))
	assert.Equal(t, 1, app.LLM.CallsFor(prompt.StageCodeReview))
}

// TestE2E_ClarificationLoop exercises the triage revision loop: each
// human reply re-triggers triage until the review cap is reached, after
// which the request waits for a human override.
func TestE2E_ClarificationLoop(t *testing.T) {
	app := NewTestApp(t)
	project, repo := app.seedProject()
	req := app.seedRequest(project.ID, "Make reports faster")

	question := "What export format do you need?"
	app.LLM.AddRouted(prompt.StageTriage,
		LLMScriptEntry{Content: triageClarifyJSON(question)},
		LLMScriptEntry{Content: triageClarifyJSON(question)},
		LLMScriptEntry{Content: triageClarifyJSON(question)},
	)

	app.CycleTriage()

	got := app.reload(req.ID)
	require.Equal(t, request.StateNeedsClarification, got.State)
	assert.Equal(t, 1, got.TriageCount)
	require.NotNil(t, got.IssueNumber)
	issueNum := *got.IssueNumber
	assert.Contains(t, app.Host.Labels(repo, issueNum), "agent:needs-info")

	comments := app.Host.IssueComments(repo, issueNum)
	require.NotEmpty(t, comments)
	assert.Contains(t, comments[0], "Clarification needed:")
	assert.Contains(t, comments[0], "- "+question)

	// Without a new human comment the request is not picked up again.
	app.CycleTriage()
	assert.Equal(t, 1, app.LLM.CallsFor(prompt.StageTriage))
	assert.Equal(t, 1, app.reload(req.ID).TriageCount)

	// Each human reply triggers one more pass, up to the cap of three.
	app.humanComment(req.ID, "CSV, roughly ten thousand rows per export.")
	app.CycleTriage()
	assert.Equal(t, 2, app.reload(req.ID).TriageCount)

	app.humanComment(req.ID, "Scheduled nightly, delivered by email.")
	app.CycleTriage()
	assert.Equal(t, 3, app.reload(req.ID).TriageCount)

	// The cap holds even with fresh human input.
	app.humanComment(req.ID, "Anything else you need?")
	app.CycleTriage()

	got = app.reload(req.ID)
	assert.Equal(t, 3, got.TriageCount)
	assert.Equal(t, request.StateNeedsClarification, got.State)
	assert.Equal(t, 3, app.LLM.CallsFor(prompt.StageTriage))
}

// TestE2E_DuplicateOfDeliveredRequest verifies the duplicate policy: a
// request flagged as duplicating already-delivered work is rejected
// even when the model itself leaned approve.
func TestE2E_DuplicateOfDeliveredRequest(t *testing.T) {
	app := NewTestApp(t)
	project, repo := app.seedProject()

	original := app.seedRequest(project.ID, "Export reports as CSV")
	app.forceState(original.ID, request.StateDone)

	dup := app.seedRequest(project.ID, "CSV download for the reporting page")
	app.LLM.AddRouted(prompt.StageTriage, LLMScriptEntry{Content: triageDuplicateJSON(original.ID)})
	app.CycleTriage()

	got := app.reload(dup.ID)
	require.Equal(t, request.StateRejected, got.State)

	review, err := app.Reviews.LatestTriageReview(app.ctx, dup.ID)
	require.NoError(t, err)
	assert.Equal(t, triagereview.DecisionReject, review.Decision)
	assert.True(t, review.IsDuplicate)
	require.NotNil(t, review.DuplicateOfRequestID)
	assert.Equal(t, original.ID, *review.DuplicateOfRequestID)
	assert.True(t, strings.HasPrefix(review.Reasoning,
		fmt.Sprintf("Duplicate of request %d (done).", original.ID)), "reasoning %q", review.Reasoning)

	require.NotNil(t, got.IssueNumber)
	assert.Contains(t, app.Host.Labels(repo, *got.IssueNumber), "agent:rejected")
}

// TestE2E_MalformedTriageResponse verifies the parse-failure fallback:
// prose instead of JSON escalates to clarification with zero scores
// instead of failing the request.
func TestE2E_MalformedTriageResponse(t *testing.T) {
	app := NewTestApp(t)
	project, repo := app.seedProject()
	req := app.seedRequest(project.ID, "Add dark mode")

	app.LLM.AddRouted(prompt.StageTriage,
		LLMScriptEntry{Content: "Happy to help! This looks like a great feature to build."})
	app.CycleTriage()

	got := app.reload(req.ID)
	require.Equal(t, request.StateNeedsClarification, got.State)
	assert.Equal(t, 1, got.TriageCount)

	review, err := app.Reviews.LatestTriageReview(app.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, triagereview.DecisionClarify, review.Decision)
	assert.Equal(t, prompt.TriageFallbackReasoning, review.Reasoning)
	assert.Zero(t, review.AlignmentScore)
	assert.Zero(t, review.CompletenessScore)
	assert.Zero(t, review.SalesAlignmentScore)

	require.NotNil(t, got.IssueNumber)
	assert.Contains(t, app.Host.Labels(repo, *got.IssueNumber), "agent:needs-info")
	comments := app.Host.IssueComments(repo, *got.IssueNumber)
	require.NotEmpty(t, comments)
	assert.Contains(t, comments[0], "could not be parsed")
}
