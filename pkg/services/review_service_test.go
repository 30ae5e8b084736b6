package services

import (
	"context"
	"testing"
	"time"

	"github.com/conveyor-dev/conveyor/ent/architectreview"
	"github.com/conveyor-dev/conveyor/ent/codereview"
	"github.com/conveyor-dev/conveyor/ent/comment"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/ent/triagereview"
	"github.com/conveyor-dev/conveyor/pkg/models"
	testdb "github.com/conveyor-dev/conveyor/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CreateTriageReview(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReviewService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)
	req := createTestRequest(t, client.Client, project.ID)

	t.Run("persists a pass with clamped scores", func(t *testing.T) {
		review, err := service.CreateTriageReview(ctx, models.CreateTriageReviewInput{
			RequestID:           req.ID,
			Decision:            triagereview.DecisionApprove,
			Reasoning:           "Aligned with Q3 objectives",
			AlignmentScore:      120,
			CompletenessScore:   -5,
			SalesAlignmentScore: 80,
			SuggestedPriority:   "high",
			Tags:                []string{"search", "ux"},
			PromptTokens:        900,
			CompletionTokens:    240,
			Model:               "claude-sonnet-4-5",
			DurationMs:          1850,
		})
		require.NoError(t, err)
		assert.Equal(t, 100, review.AlignmentScore)
		assert.Equal(t, 0, review.CompletenessScore)
		assert.Equal(t, 80, review.SalesAlignmentScore)
		assert.Equal(t, []string{"search", "ux"}, review.Tags)
		assert.False(t, review.IsDuplicate)
	})

	t.Run("records duplicate pointer", func(t *testing.T) {
		dup := 9
		review, err := service.CreateTriageReview(ctx, models.CreateTriageReviewInput{
			RequestID:            req.ID,
			Decision:             triagereview.DecisionReject,
			Reasoning:            "Duplicate of an in-flight request",
			IsDuplicate:          true,
			DuplicateOfRequestID: &dup,
		})
		require.NoError(t, err)
		assert.True(t, review.IsDuplicate)
		require.NotNil(t, review.DuplicateOfRequestID)
		assert.Equal(t, 9, *review.DuplicateOfRequestID)
	})

	t.Run("validates decision", func(t *testing.T) {
		_, err := service.CreateTriageReview(ctx, models.CreateTriageReviewInput{RequestID: req.ID})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("latest wins", func(t *testing.T) {
		latest, err := service.LatestTriageReview(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, triagereview.DecisionReject, latest.Decision)
	})
}

func TestReviewService_ArchitectLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReviewService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)

	newArchitectReview := func(t *testing.T) (string, int) {
		req := createTestRequest(t, client.Client, project.ID)
		req = moveToState(t, client.Client, req, request.StateArchitectReview)
		review, err := service.CreateArchitectReview(ctx, models.CreateArchitectReviewInput{
			RequestID:       req.ID,
			SolutionSummary: "Add an inverted index",
			Approach:        "Extend the existing search module",
			SolutionJSON:    `{"summary":"Add an inverted index","impactedFiles":[]}`,
			FilesAnalyzed:   3,
			FilePaths:       []string{"internal/search/index.go"},
		})
		require.NoError(t, err)
		assert.Equal(t, architectreview.DecisionPending, review.Decision)
		return review.ID, req.ID
	}

	t.Run("approve marks review and advances request", func(t *testing.T) {
		reviewID, reqID := newArchitectReview(t)

		updated, err := service.ApproveArchitectReview(ctx, models.ArchitectDecisionInput{
			ReviewID: reviewID,
			Actor:    "alice",
		})
		require.NoError(t, err)
		assert.Equal(t, request.StateApproved, updated.State)

		review, err := service.GetArchitectReview(ctx, reviewID)
		require.NoError(t, err)
		assert.Equal(t, architectreview.DecisionApproved, review.Decision)
		require.NotNil(t, review.ApprovedBy)
		assert.Equal(t, "alice", *review.ApprovedBy)
		assert.NotNil(t, review.ApprovedAt)

		comments, err := client.Comment.Query().
			Where(comment.RequestIDEQ(reqID), comment.IsAgentEQ(true)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Contains(t, comments[0].Content, "alice")
	})

	t.Run("approve requires architect_review state", func(t *testing.T) {
		reviewID, reqID := newArchitectReview(t)
		_, err := client.Request.UpdateOneID(reqID).SetState(request.StateRejected).Save(ctx)
		require.NoError(t, err)

		_, err = service.ApproveArchitectReview(ctx, models.ArchitectDecisionInput{
			ReviewID: reviewID,
			Actor:    "alice",
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("reject returns request for redesign", func(t *testing.T) {
		reviewID, reqID := newArchitectReview(t)
		require.NoError(t, client.Request.UpdateOneID(reqID).
			SetArchitectCount(1).
			SetLastArchitectAt(time.Now()).
			Exec(ctx))

		updated, err := service.RejectArchitectReview(ctx, models.ArchitectDecisionInput{
			ReviewID: reviewID,
			Actor:    "bob",
			Reason:   "Index rebuild cost is prohibitive",
		})
		require.NoError(t, err)
		assert.Equal(t, request.StateTriaged, updated.State)
		assert.Equal(t, 0, updated.ArchitectCount)
		assert.Nil(t, updated.LastArchitectAt)

		review, err := service.GetArchitectReview(ctx, reviewID)
		require.NoError(t, err)
		assert.Equal(t, architectreview.DecisionRejected, review.Decision)
		require.NotNil(t, review.HumanFeedback)
		assert.Contains(t, *review.HumanFeedback, "prohibitive")
	})

	t.Run("feedback marks revised and appends human comment", func(t *testing.T) {
		reviewID, reqID := newArchitectReview(t)

		review, err := service.FeedbackArchitectReview(ctx, models.ArchitectDecisionInput{
			ReviewID: reviewID,
			Actor:    "carol",
			Reason:   "Prefer trigram search, not a custom index",
		})
		require.NoError(t, err)
		assert.Equal(t, architectreview.DecisionRevised, review.Decision)

		// Request stays put; the human comment triggers the next pass.
		got, err := client.Request.Get(ctx, reqID)
		require.NoError(t, err)
		assert.Equal(t, request.StateArchitectReview, got.State)

		humans, err := client.Comment.Query().
			Where(comment.RequestIDEQ(reqID), comment.IsAgentEQ(false)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, humans, 1)
		assert.Equal(t, "carol", humans[0].Author)

		// The architect selector now sees the request again.
		requests := NewRequestService(client.Client)
		selected, err := requests.SelectForArchitect(ctx, 3, 3)
		require.NoError(t, err)
		found := false
		for _, r := range selected {
			if r.ID == reqID {
				found = true
			}
		}
		assert.True(t, found, "feedback should re-queue the request for design")
	})

	t.Run("feedback requires text", func(t *testing.T) {
		reviewID, _ := newArchitectReview(t)
		_, err := service.FeedbackArchitectReview(ctx, models.ArchitectDecisionInput{
			ReviewID: reviewID,
			Actor:    "carol",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("latest approved review lookup", func(t *testing.T) {
		reviewID, reqID := newArchitectReview(t)

		_, err := service.LatestApprovedArchitectReview(ctx, reqID)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = service.ApproveArchitectReview(ctx, models.ArchitectDecisionInput{
			ReviewID: reviewID,
			Actor:    "alice",
		})
		require.NoError(t, err)

		approved, err := service.LatestApprovedArchitectReview(ctx, reqID)
		require.NoError(t, err)
		assert.Equal(t, reviewID, approved.ID)
	})
}

func TestReviewService_OverrideTriage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReviewService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)

	newRejected := func(t *testing.T) (string, int) {
		req := createTestRequest(t, client.Client, project.ID)
		review, err := service.CreateTriageReview(ctx, models.CreateTriageReviewInput{
			RequestID: req.ID,
			Decision:  triagereview.DecisionReject,
			Reasoning: "Out of scope",
		})
		require.NoError(t, err)
		moveToState(t, client.Client, req, request.StateRejected)
		return review.ID, req.ID
	}

	t.Run("moves request to chosen verdict", func(t *testing.T) {
		reviewID, reqID := newRejected(t)

		updated, err := service.OverrideTriage(ctx, models.TriageOverrideInput{
			ReviewID: reviewID,
			Actor:    "dave",
			NewState: request.StateTriaged,
			Reason:   "Strategic customer ask",
		})
		require.NoError(t, err)
		assert.Equal(t, request.StateTriaged, updated.State)
		assert.Equal(t, reqID, updated.ID)
	})

	t.Run("rejects states triage cannot produce", func(t *testing.T) {
		reviewID, _ := newRejected(t)

		_, err := service.OverrideTriage(ctx, models.TriageOverrideInput{
			ReviewID: reviewID,
			Actor:    "dave",
			NewState: request.StateApproved,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestReviewService_CreateCodeReview(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReviewService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)
	req := createTestRequest(t, client.Client, project.ID)

	t.Run("clamps quality score to 1-10", func(t *testing.T) {
		review, err := service.CreateCodeReview(ctx, models.CreateCodeReviewInput{
			RequestID:    req.ID,
			Decision:     codereview.DecisionApproved,
			Summary:      "Clean change",
			QualityScore: 42,
			PRNumber:     7,
		})
		require.NoError(t, err)
		assert.Equal(t, 10, review.QualityScore)

		review, err = service.CreateCodeReview(ctx, models.CreateCodeReviewInput{
			RequestID:    req.ID,
			Decision:     codereview.DecisionFailed,
			Summary:      "Could not parse structured response",
			QualityScore: 0,
			PRNumber:     8,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, review.QualityScore)
	})

	t.Run("requires pr number", func(t *testing.T) {
		_, err := service.CreateCodeReview(ctx, models.CreateCodeReviewInput{
			RequestID: req.ID,
			Decision:  codereview.DecisionApproved,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestReviewService_TokenBudgets(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewReviewService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)
	req := createTestRequest(t, client.Client, project.ID)
	now := time.Now()

	t.Run("empty window sums to zero", func(t *testing.T) {
		used, err := service.TriageTokensUsed(ctx, UTCDayStart(now))
		require.NoError(t, err)
		assert.Zero(t, used)
	})

	t.Run("sums tokens inside the window", func(t *testing.T) {
		_, err := service.CreateTriageReview(ctx, models.CreateTriageReviewInput{
			RequestID:        req.ID,
			Decision:         triagereview.DecisionApprove,
			Reasoning:        "ok",
			PromptTokens:     600,
			CompletionTokens: 150,
		})
		require.NoError(t, err)
		_, err = service.CreateTriageReview(ctx, models.CreateTriageReviewInput{
			RequestID:        req.ID,
			Decision:         triagereview.DecisionClarify,
			Reasoning:        "needs detail",
			PromptTokens:     400,
			CompletionTokens: 100,
		})
		require.NoError(t, err)

		used, err := service.TriageTokensUsed(ctx, UTCDayStart(now))
		require.NoError(t, err)
		assert.Equal(t, int64(1250), used)
	})

	t.Run("architect sums cover both phases", func(t *testing.T) {
		_, err := service.CreateArchitectReview(ctx, models.CreateArchitectReviewInput{
			RequestID:             req.ID,
			SolutionSummary:       "s",
			Approach:              "a",
			SolutionJSON:          "{}",
			Step1PromptTokens:     100,
			Step1CompletionTokens: 20,
			Step2PromptTokens:     300,
			Step2CompletionTokens: 80,
		})
		require.NoError(t, err)

		used, err := service.ArchitectTokensUsed(ctx, UTCDayStart(now))
		require.NoError(t, err)
		assert.Equal(t, int64(500), used)
	})

	t.Run("budget gate closes at the threshold", func(t *testing.T) {
		// 1250 tokens used today; 1250 budget means the gate is closed.
		err := CheckBudget(ctx, service.TriageTokensUsed, 1250, 0, now)
		assert.ErrorIs(t, err, ErrBudgetExceeded)

		err = CheckBudget(ctx, service.TriageTokensUsed, 1251, 0, now)
		assert.NoError(t, err)

		// Zero budgets are unlimited.
		err = CheckBudget(ctx, service.TriageTokensUsed, 0, 0, now)
		assert.NoError(t, err)

		// Monthly gate closes independently.
		err = CheckBudget(ctx, service.TriageTokensUsed, 0, 1000, now)
		assert.ErrorIs(t, err, ErrBudgetExceeded)
	})
}

func TestUTCWindows(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 2026-03-01 02:30 +05:00 is 2026-02-28 21:30 UTC: the UTC windows
	// must be February's, not March's.
	at := time.Date(2026, 3, 1, 2, 30, 0, 0, loc)

	day := UTCDayStart(at)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), day)

	month := UTCMonthStart(at)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), month)
}
