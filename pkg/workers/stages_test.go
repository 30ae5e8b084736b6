package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/pkg/codebase"
	"github.com/conveyor-dev/conveyor/pkg/codehost"
	"github.com/conveyor-dev/conveyor/pkg/config"
	"github.com/conveyor-dev/conveyor/pkg/prompt"
)

func TestTriageOutcome(t *testing.T) {
	state, label := triageOutcome(prompt.DecisionApprove)
	assert.Equal(t, request.StateTriaged, state)
	assert.Equal(t, labelApproved, label)

	state, label = triageOutcome(prompt.DecisionReject)
	assert.Equal(t, request.StateRejected, state)
	assert.Equal(t, labelRejected, label)

	state, label = triageOutcome(prompt.DecisionClarify)
	assert.Equal(t, request.StateNeedsClarification, state)
	assert.Equal(t, labelNeedsInfo, label)

	// Anything unrecognized escalates to a human.
	state, _ = triageOutcome("maybe")
	assert.Equal(t, request.StateNeedsClarification, state)
}

func TestDuplicateForcesReject(t *testing.T) {
	forced := []request.State{
		request.StateTriaged,
		request.StateApproved,
		request.StateInProgress,
		request.StateDone,
	}
	for _, s := range forced {
		assert.True(t, duplicateForcesReject(s), "state %s should force a reject", s)
	}

	tolerated := []request.State{
		request.StateNew,
		request.StateNeedsClarification,
		request.StateArchitectReview,
		request.StateRejected,
	}
	for _, s := range tolerated {
		assert.False(t, duplicateForcesReject(s), "state %s should not force a reject", s)
	}
}

func TestTriageComment(t *testing.T) {
	note := triageComment(&prompt.TriageResponse{
		Decision:            prompt.DecisionClarify,
		Reasoning:           "Scope is unclear.",
		AlignmentScore:      70,
		CompletenessScore:   40,
		SalesAlignmentScore: 55,
		ClarificationQuestions: []string{
			"Which user roles are affected?",
			"Is this needed before the next release?",
		},
	})

	assert.Contains(t, note, "Triage decision: clarify")
	assert.Contains(t, note, "alignment 70/100, completeness 40/100, sales alignment 55/100")
	assert.Contains(t, note, "Scope is unclear.")
	assert.Contains(t, note, "Clarification needed:\n- Which user roles are affected?")
	assert.NotRegexp(t, `\n$`, note)
}

func TestTriageCommentWithoutQuestions(t *testing.T) {
	note := triageComment(&prompt.TriageResponse{
		Decision:  prompt.DecisionApprove,
		Reasoning: "Fits the roadmap.",
	})
	assert.Contains(t, note, "Triage decision: approve")
	assert.NotContains(t, note, "Clarification needed")
}

func TestArchitectComment(t *testing.T) {
	note := architectComment(&prompt.Solution{
		SolutionSummary:     "Add a retry queue to the importer.",
		EstimatedComplexity: "medium",
		EstimatedEffort:     "2-3 days",
	}, true)

	assert.Contains(t, note, "Solution design ready for review.")
	assert.Contains(t, note, "Add a retry queue to the importer.")
	assert.Contains(t, note, "Estimated complexity: medium; effort: 2-3 days")
	assert.NotContains(t, note, "could not be parsed")
}

func TestArchitectCommentFallback(t *testing.T) {
	note := architectComment(&prompt.Solution{
		SolutionSummary: "Raw response preserved.",
	}, false)

	assert.Contains(t, note, "structured response could not be parsed")
	assert.NotContains(t, note, "Estimated complexity")
}

func TestArchitectCommentOpenQuestions(t *testing.T) {
	note := architectComment(&prompt.Solution{
		SolutionSummary:        "Split the billing module.",
		EstimatedComplexity:    "high",
		ClarificationQuestions: []string{"Keep the legacy invoice format?"},
	}, true)

	assert.Contains(t, note, "Estimated complexity: high; effort: -")
	assert.Contains(t, note, "Open questions:\n- Keep the legacy invoice format?")
}

type treeHost struct {
	codehost.Host
	entries []codehost.TreeEntry
}

func (h treeHost) ListTree(context.Context, codehost.Repo, string) ([]codehost.TreeEntry, error) {
	return h.entries, nil
}

func TestKnownPaths(t *testing.T) {
	svc := codebase.NewService(treeHost{entries: []codehost.TreeEntry{
		{Path: "pkg/api/server.go", Size: 4000},
		{Path: "pkg/store/store.go", Size: 9000},
	}}, nil)
	m, err := svc.Map(context.Background(), codehost.Repo{Owner: "acme", Name: "widgets"})
	require.NoError(t, err)

	got := knownPaths([]string{
		"pkg/api/server.go",
		"pkg/api/invented.go",
		"pkg/store/store.go",
	}, m)
	assert.Equal(t, []string{"pkg/api/server.go", "pkg/store/store.go"}, got)
}

func TestSessionIdentifier(t *testing.T) {
	at := time.Date(2026, 8, 25, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, "session-7-20260825123045", sessionIdentifier(7, at))

	// Non-UTC input normalizes to UTC.
	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "session-7-20260825123045",
		sessionIdentifier(7, time.Date(2026, 8, 25, 7, 30, 45, 0, est)))
}

func TestImageAttachments(t *testing.T) {
	atts := []*ent.Attachment{
		{FileName: "mock.png", ContentType: "image/png"},
		{FileName: "notes.pdf", ContentType: "application/pdf"},
		{FileName: "screen.jpg", ContentType: "image/jpeg"},
	}

	images := imageAttachments(atts)
	require.Len(t, images, 2)
	assert.Equal(t, "mock.png", images[0].FileName)
	assert.Equal(t, "screen.jpg", images[1].FileName)
}

func TestCodeReviewComment(t *testing.T) {
	note := codeReviewComment(&prompt.CodeReviewResponse{
		Decision:             prompt.ReviewApproved,
		Summary:              "Matches the design.",
		DesignCompliance:     true,
		SecurityPass:         true,
		CodingStandardsPass:  false,
		CodingStandardsNotes: "Missing error wrapping in two places.",
		QualityScore:         7,
	})

	assert.Contains(t, note, "Code review: approved")
	assert.Contains(t, note, "Matches the design.")
	assert.Contains(t, note, "Design compliance: pass.")
	assert.Contains(t, note, "Coding standards: FAIL. Missing error wrapping")
	assert.Contains(t, note, "Quality score: 7/10")
}

func TestStallQueries(t *testing.T) {
	settings := config.OrchestratorSettings{
		NeedsClarificationStaleDays: 7,
		ArchitectReviewStaleDays:    3,
		ApprovedStaleDays:           1,
		FailedStaleHours:            24,
	}

	queries := stallQueries(settings)
	require.Len(t, queries, 4)

	assert.Equal(t, request.StateNeedsClarification, queries[0].State)
	assert.Equal(t, 7*24*time.Hour, queries[0].Warning)
	assert.Equal(t, criticalClarificationAge, queries[0].Critical)

	assert.Equal(t, request.StateArchitectReview, queries[1].State)
	assert.Equal(t, 3*24*time.Hour, queries[1].Warning)

	assert.Equal(t, request.StateApproved, queries[2].State)
	assert.True(t, queries[2].RequireNoSession)
	assert.Equal(t, 24*time.Hour, queries[2].Warning)

	assert.Equal(t, request.StateInProgress, queries[3].State)
	assert.True(t, queries[3].FailedOnly)
	assert.Equal(t, 24*time.Hour, queries[3].Warning)
	assert.Equal(t, 72*time.Hour, queries[3].Critical)
}

func TestIssueURL(t *testing.T) {
	n := 12
	req := &ent.Request{
		ID:          5,
		IssueNumber: &n,
		Edges: ent.RequestEdges{
			Project: &ent.Project{Owner: "acme", Repo: "widgets"},
		},
	}
	assert.Equal(t, "https://github.com/acme/widgets/issues/12", issueURL(req))

	// No issue yet: empty, the notification renders without a link.
	assert.Empty(t, issueURL(&ent.Request{ID: 5, Edges: req.Edges}))
}

func TestIssueBody(t *testing.T) {
	req := &ent.Request{
		ID:          9,
		Description: "Exports time out on large projects.",
		Kind:        request.KindBug,
		Priority:    request.PriorityHigh,
	}

	body := issueBody(req)
	assert.Contains(t, body, "Exports time out on large projects.")
	assert.Contains(t, body, "Kind: bug | Priority: high | Pipeline request 9")
}
