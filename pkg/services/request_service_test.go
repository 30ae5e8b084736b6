package services

import (
	"context"
	"testing"
	"time"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/comment"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/pkg/models"
	testdb "github.com/conveyor-dev/conveyor/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestService_CreateRequest(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRequestService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)

	t.Run("creates request in state new", func(t *testing.T) {
		req, err := service.CreateRequest(ctx, models.CreateRequestInput{
			ProjectID:   project.ID,
			Title:       "Add search",
			Description: "Full-text search over widgets",
			Kind:        request.KindFeature,
		})
		require.NoError(t, err)
		assert.Equal(t, request.StateNew, req.State)
		assert.Equal(t, request.PriorityMedium, req.Priority)
		assert.Equal(t, 0, req.TriageCount)
		assert.Nil(t, req.SessionID)
	})

	t.Run("records bug triple", func(t *testing.T) {
		req, err := service.CreateRequest(ctx, models.CreateRequestInput{
			ProjectID:        project.ID,
			Title:            "Crash on save",
			Description:      "Editor crashes",
			Kind:             request.KindBug,
			Priority:         request.PriorityHigh,
			StepsToReproduce: "1. Open editor 2. Save",
			ExpectedBehavior: "File saved",
			ActualBehavior:   "Crash",
		})
		require.NoError(t, err)
		assert.Equal(t, request.KindBug, req.Kind)
		assert.Equal(t, request.PriorityHigh, req.Priority)
		require.NotNil(t, req.StepsToReproduce)
		assert.Equal(t, "1. Open editor 2. Save", *req.StepsToReproduce)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			in   models.CreateRequestInput
		}{
			{
				name: "missing title",
				in:   models.CreateRequestInput{ProjectID: project.ID, Description: "d", Kind: request.KindBug},
			},
			{
				name: "missing description",
				in:   models.CreateRequestInput{ProjectID: project.ID, Title: "t", Kind: request.KindBug},
			},
			{
				name: "missing project",
				in:   models.CreateRequestInput{Title: "t", Description: "d", Kind: request.KindBug},
			},
			{
				name: "missing kind",
				in:   models.CreateRequestInput{ProjectID: project.ID, Title: "t", Description: "d"},
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateRequest(ctx, tt.in)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("unknown project maps to not found", func(t *testing.T) {
		_, err := service.CreateRequest(ctx, models.CreateRequestInput{
			ProjectID:   99999,
			Title:       "t",
			Description: "d",
			Kind:        request.KindBug,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRequestService_GetRequest(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRequestService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)
	req := createTestRequest(t, client.Client, project.ID)

	t.Run("retrieves by id", func(t *testing.T) {
		got, err := service.GetRequest(ctx, req.ID, false)
		require.NoError(t, err)
		assert.Equal(t, req.ID, got.ID)
		assert.Nil(t, got.Edges.Project)
	})

	t.Run("loads edges on demand", func(t *testing.T) {
		got, err := service.GetRequest(ctx, req.ID, true)
		require.NoError(t, err)
		require.NotNil(t, got.Edges.Project)
		assert.Equal(t, project.ID, got.Edges.Project.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := service.GetRequest(ctx, 99999, false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRequestService_ListRequests(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRequestService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)
	for i := 0; i < 5; i++ {
		createTestRequest(t, client.Client, project.ID)
	}
	other := createTestRequest(t, client.Client, project.ID)
	moveToState(t, client.Client, other, request.StateTriaged)

	t.Run("filters by state", func(t *testing.T) {
		resp, err := service.ListRequests(ctx, models.RequestFilters{State: request.StateTriaged})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
		require.Len(t, resp.Requests, 1)
		assert.Equal(t, other.ID, resp.Requests[0].ID)
	})

	t.Run("paginates", func(t *testing.T) {
		resp, err := service.ListRequests(ctx, models.RequestFilters{ProjectID: project.ID, Limit: 2, Offset: 0})
		require.NoError(t, err)
		assert.Equal(t, 6, resp.TotalCount)
		assert.Len(t, resp.Requests, 2)

		next, err := service.ListRequests(ctx, models.RequestFilters{ProjectID: project.ID, Limit: 2, Offset: 4})
		require.NoError(t, err)
		assert.Len(t, next.Requests, 2)
		assert.NotEqual(t, resp.Requests[0].ID, next.Requests[0].ID)
	})
}

func TestRequestService_Transition(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRequestService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)

	t.Run("legal transition appends agent comment", func(t *testing.T) {
		req := createTestRequest(t, client.Client, project.ID)

		updated, err := service.Transition(ctx, req, TransitionInput{
			To:      request.StateTriaged,
			Comment: "Triage approved the request.",
		})
		require.NoError(t, err)
		assert.Equal(t, request.StateTriaged, updated.State)
		assert.True(t, updated.UpdatedAt.After(req.UpdatedAt) || updated.UpdatedAt.Equal(req.UpdatedAt))

		comments, err := client.Comment.Query().
			Where(comment.RequestIDEQ(req.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.True(t, comments[0].IsAgent)
		assert.Equal(t, models.AgentAuthor, comments[0].Author)
		assert.Equal(t, "Triage approved the request.", comments[0].Content)
	})

	t.Run("illegal transition rejected", func(t *testing.T) {
		req := createTestRequest(t, client.Client, project.ID)

		_, err := service.Transition(ctx, req, TransitionInput{To: request.StateDone})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		// Row untouched.
		got, err := service.GetRequest(ctx, req.ID, false)
		require.NoError(t, err)
		assert.Equal(t, request.StateNew, got.State)
	})

	t.Run("stale snapshot fails with concurrent modification", func(t *testing.T) {
		req := createTestRequest(t, client.Client, project.ID)

		// Another worker wins the race.
		_, err := service.Transition(ctx, req, TransitionInput{To: request.StateTriaged})
		require.NoError(t, err)

		_, err = service.Transition(ctx, req, TransitionInput{To: request.StateNeedsClarification})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("mutate hook commits atomically with state", func(t *testing.T) {
		req := createTestRequest(t, client.Client, project.ID)

		now := time.Now()
		updated, err := service.Transition(ctx, req, TransitionInput{
			To:     request.StateNeedsClarification,
			Mutate: TriagePassMutator(now),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated.TriageCount)
		require.NotNil(t, updated.LastTriageAt)
	})

	t.Run("state change clears stall flag", func(t *testing.T) {
		req := createTestRequest(t, client.Client, project.ID)
		require.NoError(t, client.Request.UpdateOneID(req.ID).
			SetStallNotifiedAt(time.Now()).
			Exec(ctx))
		req, err := service.GetRequest(ctx, req.ID, false)
		require.NoError(t, err)
		require.NotNil(t, req.StallNotifiedAt)

		updated, err := service.Transition(ctx, req, TransitionInput{To: request.StateTriaged})
		require.NoError(t, err)
		assert.Nil(t, updated.StallNotifiedAt)
	})

	t.Run("self transition permitted for field updates", func(t *testing.T) {
		req := createTestRequest(t, client.Client, project.ID)
		req = moveToState(t, client.Client, req, request.StateInProgress)

		updated, err := service.Transition(ctx, req, TransitionInput{
			To: request.StateInProgress,
			Mutate: func(u *ent.RequestUpdate) {
				u.SetImplementationStatus(request.ImplementationStatusWorking)
			},
		})
		require.NoError(t, err)
		assert.Equal(t, request.StateInProgress, updated.State)
		require.NotNil(t, updated.ImplementationStatus)
		assert.Equal(t, request.ImplementationStatusWorking, *updated.ImplementationStatus)
	})
}

func TestRequestService_SelectForTriage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRequestService(client.Client)
	comments := NewCommentService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)

	t.Run("selects fresh requests oldest first", func(t *testing.T) {
		first := createTestRequest(t, client.Client, project.ID)
		second := createTestRequest(t, client.Client, project.ID)

		selected, err := service.SelectForTriage(ctx, 3, 5)
		require.NoError(t, err)
		require.Len(t, selected, 2)
		assert.Equal(t, first.ID, selected[0].ID)
		assert.Equal(t, second.ID, selected[1].ID)

		// Drain for the remaining subtests.
		for _, r := range selected {
			_, err := service.Transition(ctx, r, TransitionInput{To: request.StateRejected})
			require.NoError(t, err)
		}
	})

	t.Run("skips new requests already triaged once", func(t *testing.T) {
		req := createTestRequest(t, client.Client, project.ID)
		require.NoError(t, client.Request.UpdateOneID(req.ID).
			SetTriageCount(1).
			Exec(ctx))

		selected, err := service.SelectForTriage(ctx, 3, 5)
		require.NoError(t, err)
		assert.Empty(t, selected)

		require.NoError(t, client.Request.DeleteOneID(req.ID).Exec(ctx))
	})

	t.Run("clarification arm requires newer human comment", func(t *testing.T) {
		req := createTestRequest(t, client.Client, project.ID)
		req = moveToState(t, client.Client, req, request.StateNeedsClarification)
		require.NoError(t, client.Request.UpdateOneID(req.ID).
			SetTriageCount(1).
			SetLastTriageAt(time.Now()).
			Exec(ctx))

		// No human comment yet: not selected.
		selected, err := service.SelectForTriage(ctx, 3, 5)
		require.NoError(t, err)
		assert.Empty(t, selected)

		// Agent comments do not count.
		_, err = comments.CreateComment(ctx, models.CreateCommentInput{
			RequestID: req.ID,
			Content:   "Waiting on submitter.",
			IsAgent:   true,
		})
		require.NoError(t, err)
		selected, err = service.SelectForTriage(ctx, 3, 5)
		require.NoError(t, err)
		assert.Empty(t, selected)

		// A submitter reply re-queues it.
		_, err = comments.CreateComment(ctx, models.CreateCommentInput{
			RequestID: req.ID,
			Author:    "alice",
			Content:   "Here are the reproduction steps.",
		})
		require.NoError(t, err)
		selected, err = service.SelectForTriage(ctx, 3, 5)
		require.NoError(t, err)
		require.Len(t, selected, 1)
		assert.Equal(t, req.ID, selected[0].ID)

		// Retry cap spent: dropped again.
		require.NoError(t, client.Request.UpdateOneID(req.ID).
			SetTriageCount(3).
			Exec(ctx))
		selected, err = service.SelectForTriage(ctx, 3, 5)
		require.NoError(t, err)
		assert.Empty(t, selected)

		require.NoError(t, client.Request.DeleteOneID(req.ID).Exec(ctx))
	})

	t.Run("respects limit", func(t *testing.T) {
		for i := 0; i < 7; i++ {
			createTestRequest(t, client.Client, project.ID)
		}
		selected, err := service.SelectForTriage(ctx, 3, 5)
		require.NoError(t, err)
		assert.Len(t, selected, 5)
	})
}

func TestRequestService_SelectForArchitect(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRequestService(client.Client)
	comments := NewCommentService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)

	t.Run("selects freshly triaged requests", func(t *testing.T) {
		req := createTestRequest(t, client.Client, project.ID)
		req = moveToState(t, client.Client, req, request.StateTriaged)

		selected, err := service.SelectForArchitect(ctx, 3, 3)
		require.NoError(t, err)
		require.Len(t, selected, 1)
		assert.Equal(t, req.ID, selected[0].ID)

		require.NoError(t, client.Request.DeleteOneID(req.ID).Exec(ctx))
	})

	t.Run("re-review arm needs human feedback after last pass", func(t *testing.T) {
		req := createTestRequest(t, client.Client, project.ID)
		req = moveToState(t, client.Client, req, request.StateArchitectReview)
		require.NoError(t, client.Request.UpdateOneID(req.ID).
			SetArchitectCount(1).
			SetLastArchitectAt(time.Now()).
			Exec(ctx))

		selected, err := service.SelectForArchitect(ctx, 3, 3)
		require.NoError(t, err)
		assert.Empty(t, selected)

		_, err = comments.CreateComment(ctx, models.CreateCommentInput{
			RequestID: req.ID,
			Author:    "bob",
			Content:   "Please use the existing indexer instead.",
		})
		require.NoError(t, err)

		selected, err = service.SelectForArchitect(ctx, 3, 3)
		require.NoError(t, err)
		require.Len(t, selected, 1)
		assert.Equal(t, req.ID, selected[0].ID)
	})
}

func TestRequestService_ImplementationSelection(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRequestService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)

	newApproved := func(t *testing.T, issue *int) *ent.Request {
		req := createTestRequest(t, client.Client, project.ID)
		req = moveToState(t, client.Client, req, request.StateApproved)
		if issue != nil {
			require.NoError(t, client.Request.UpdateOneID(req.ID).SetIssueNumber(*issue).Exec(ctx))
		}
		got, err := service.GetRequest(ctx, req.ID, false)
		require.NoError(t, err)
		return got
	}

	t.Run("selects approved with issue and no session", func(t *testing.T) {
		issue := 11
		ready := newApproved(t, &issue)
		newApproved(t, nil) // no issue: skipped

		withSession := newApproved(t, &issue)
		require.NoError(t, client.Request.UpdateOneID(withSession.ID).
			SetSessionID("session-1-xyz").
			SetImplementationStatus(request.ImplementationStatusPending).
			Exec(ctx))

		selected, err := service.SelectForImplementation(ctx, 10)
		require.NoError(t, err)
		require.Len(t, selected, 1)
		assert.Equal(t, ready.ID, selected[0].ID)
	})

	t.Run("counts active sessions", func(t *testing.T) {
		count, err := service.CountActiveSessions(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		issue := 12
		working := newApproved(t, &issue)
		require.NoError(t, client.Request.UpdateOneID(working.ID).
			SetSessionID("session-2-xyz").
			SetImplementationStatus(request.ImplementationStatusWorking).
			Exec(ctx))

		count, err = service.CountActiveSessions(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		// PR opened no longer holds a session slot.
		require.NoError(t, client.Request.UpdateOneID(working.ID).
			SetImplementationStatus(request.ImplementationStatusPrOpened).
			Exec(ctx))
		count, err = service.CountActiveSessions(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestRequestService_SelectForCodeReview(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRequestService(client.Client)
	reviews := NewReviewService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)

	req := createTestRequest(t, client.Client, project.ID)
	req = moveToState(t, client.Client, req, request.StateInProgress)
	require.NoError(t, client.Request.UpdateOneID(req.ID).
		SetImplementationStatus(request.ImplementationStatusPrOpened).
		SetPrNumber(41).
		Exec(ctx))

	t.Run("selects opened PR without verdict", func(t *testing.T) {
		selected, err := service.SelectForCodeReview(ctx, 5)
		require.NoError(t, err)
		require.Len(t, selected, 1)
		assert.Equal(t, req.ID, selected[0].ID)
	})

	t.Run("skips PR already reviewed", func(t *testing.T) {
		_, err := reviews.CreateCodeReview(ctx, models.CreateCodeReviewInput{
			RequestID: req.ID,
			Decision:  "changes_requested",
			Summary:   "Needs tests",
			PRNumber:  41,
		})
		require.NoError(t, err)

		selected, err := service.SelectForCodeReview(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, selected)
	})

	t.Run("new PR number re-selects", func(t *testing.T) {
		require.NoError(t, client.Request.UpdateOneID(req.ID).
			SetPrNumber(42).
			Exec(ctx))

		selected, err := service.SelectForCodeReview(ctx, 5)
		require.NoError(t, err)
		require.Len(t, selected, 1)
		assert.Equal(t, req.ID, selected[0].ID)
	})
}

func TestRequestService_SelectStalled(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRequestService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)
	now := time.Now()

	t.Run("grades warning and critical by age", func(t *testing.T) {
		warn := createTestRequest(t, client.Client, project.ID)
		warn = moveToState(t, client.Client, warn, request.StateNeedsClarification)
		require.NoError(t, client.Request.UpdateOneID(warn.ID).
			SetUpdatedAt(now.Add(-8 * 24 * time.Hour)).
			Exec(ctx))

		crit := createTestRequest(t, client.Client, project.ID)
		crit = moveToState(t, client.Client, crit, request.StateNeedsClarification)
		require.NoError(t, client.Request.UpdateOneID(crit.ID).
			SetUpdatedAt(now.Add(-15 * 24 * time.Hour)).
			Exec(ctx))

		fresh := createTestRequest(t, client.Client, project.ID)
		moveToState(t, client.Client, fresh, request.StateNeedsClarification)

		stalled, err := service.SelectStalled(ctx, StallQuery{
			State:    request.StateNeedsClarification,
			Warning:  7 * 24 * time.Hour,
			Critical: 14 * 24 * time.Hour,
		}, now)
		require.NoError(t, err)
		require.Len(t, stalled, 2)
		assert.Equal(t, crit.ID, stalled[0].Request.ID)
		assert.Equal(t, models.StallLevelCritical, stalled[0].Level)
		assert.Equal(t, warn.ID, stalled[1].Request.ID)
		assert.Equal(t, models.StallLevelWarning, stalled[1].Level)
	})

	t.Run("already notified requests excluded", func(t *testing.T) {
		stalled, err := service.SelectStalled(ctx, StallQuery{
			State:    request.StateNeedsClarification,
			Warning:  7 * 24 * time.Hour,
			Critical: 14 * 24 * time.Hour,
		}, now)
		require.NoError(t, err)
		require.Len(t, stalled, 2)

		ok, err := service.MarkStallNotified(ctx, stalled[0].Request.ID, now)
		require.NoError(t, err)
		assert.True(t, ok)

		// Second notifier loses the race.
		ok, err = service.MarkStallNotified(ctx, stalled[0].Request.ID, now)
		require.NoError(t, err)
		assert.False(t, ok)

		remaining, err := service.SelectStalled(ctx, StallQuery{
			State:    request.StateNeedsClarification,
			Warning:  7 * 24 * time.Hour,
			Critical: 14 * 24 * time.Hour,
		}, now)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, stalled[1].Request.ID, remaining[0].Request.ID)
	})

	t.Run("failed implementation keyed on completed_at", func(t *testing.T) {
		failed := createTestRequest(t, client.Client, project.ID)
		failed = moveToState(t, client.Client, failed, request.StateInProgress)
		require.NoError(t, client.Request.UpdateOneID(failed.ID).
			SetImplementationStatus(request.ImplementationStatusFailed).
			SetCompletedAt(now.Add(-30 * time.Hour)).
			Exec(ctx))

		stalled, err := service.SelectStalled(ctx, StallQuery{
			State:      request.StateInProgress,
			Warning:    24 * time.Hour,
			Critical:   72 * time.Hour,
			FailedOnly: true,
		}, now)
		require.NoError(t, err)
		require.Len(t, stalled, 1)
		assert.Equal(t, failed.ID, stalled[0].Request.ID)
		assert.Equal(t, models.StallLevelWarning, stalled[0].Level)
	})

	t.Run("approved scan only counts unsessioned requests", func(t *testing.T) {
		approved := createTestRequest(t, client.Client, project.ID)
		approved = moveToState(t, client.Client, approved, request.StateApproved)
		require.NoError(t, client.Request.UpdateOneID(approved.ID).
			SetUpdatedAt(now.Add(-2 * 24 * time.Hour)).
			Exec(ctx))

		stalled, err := service.SelectStalled(ctx, StallQuery{
			State:            request.StateApproved,
			Warning:          24 * time.Hour,
			Critical:         3 * 24 * time.Hour,
			RequireNoSession: true,
		}, now)
		require.NoError(t, err)
		require.Len(t, stalled, 1)

		// With a session the request is not stalled, it is being worked.
		require.NoError(t, client.Request.UpdateOneID(approved.ID).
			SetSessionID("session-9-abc").
			SetUpdatedAt(now.Add(-2 * 24 * time.Hour)).
			Exec(ctx))
		stalled, err = service.SelectStalled(ctx, StallQuery{
			State:            request.StateApproved,
			Warning:          24 * time.Hour,
			Critical:         3 * 24 * time.Hour,
			RequireNoSession: true,
		}, now)
		require.NoError(t, err)
		assert.Empty(t, stalled)
	})
}

func TestRequestService_Resets(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRequestService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)

	t.Run("reset triage clears counters", func(t *testing.T) {
		req := createTestRequest(t, client.Client, project.ID)
		req = moveToState(t, client.Client, req, request.StateNeedsClarification)
		require.NoError(t, client.Request.UpdateOneID(req.ID).
			SetTriageCount(2).
			SetLastTriageAt(time.Now()).
			Exec(ctx))

		updated, err := service.ResetTriage(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, request.StateNew, updated.State)
		assert.Equal(t, 0, updated.TriageCount)
		assert.Nil(t, updated.LastTriageAt)
	})

	t.Run("reset architect clears counters", func(t *testing.T) {
		req := createTestRequest(t, client.Client, project.ID)
		req = moveToState(t, client.Client, req, request.StateArchitectReview)
		require.NoError(t, client.Request.UpdateOneID(req.ID).
			SetArchitectCount(2).
			SetLastArchitectAt(time.Now()).
			Exec(ctx))

		updated, err := service.ResetArchitect(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, request.StateTriaged, updated.State)
		assert.Equal(t, 0, updated.ArchitectCount)
		assert.Nil(t, updated.LastArchitectAt)
	})

	t.Run("clear implementation returns request to dispatch queue", func(t *testing.T) {
		req := createTestRequest(t, client.Client, project.ID)
		req = moveToState(t, client.Client, req, request.StateInProgress)
		require.NoError(t, client.Request.UpdateOneID(req.ID).
			SetSessionID("session-5-abc").
			SetPrNumber(7).
			SetPrURL("https://github.test/acme/widgets/pull/7").
			SetBranchName("copilot/fix-7").
			SetTriggeredAt(time.Now()).
			SetImplementationStatus(request.ImplementationStatusWorking).
			Exec(ctx))

		updated, err := service.ClearImplementation(ctx, req.ID, "wrong approach")
		require.NoError(t, err)
		assert.Equal(t, request.StateApproved, updated.State)
		assert.Nil(t, updated.SessionID)
		assert.Nil(t, updated.PrNumber)
		assert.Nil(t, updated.PrURL)
		assert.Nil(t, updated.BranchName)
		assert.Nil(t, updated.ImplementationStatus)
	})

	t.Run("clear implementation rejects wrong state", func(t *testing.T) {
		req := createTestRequest(t, client.Client, project.ID)
		_, err := service.ClearImplementation(ctx, req.ID, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestRequestService_SetIssueNumber(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRequestService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)
	req := createTestRequest(t, client.Client, project.ID)

	require.NoError(t, service.SetIssueNumber(ctx, req.ID, 101))

	// Second write is a no-op; the first issue wins.
	require.NoError(t, service.SetIssueNumber(ctx, req.ID, 202))

	got, err := service.GetRequest(ctx, req.ID, false)
	require.NoError(t, err)
	require.NotNil(t, got.IssueNumber)
	assert.Equal(t, 101, *got.IssueNumber)
}

func TestRequestService_ListProjectSiblings(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRequestService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)
	target := createTestRequest(t, client.Client, project.ID)
	sibling := createTestRequest(t, client.Client, project.ID)

	otherProject, err := client.Project.Create().
		SetName("Other").
		SetOwner("acme").
		SetRepo("other-" + uuid.New().String()[:8]).
		Save(ctx)
	require.NoError(t, err)
	createTestRequest(t, client.Client, otherProject.ID)

	siblings, err := service.ListProjectSiblings(ctx, target, 10)
	require.NoError(t, err)
	require.Len(t, siblings, 1)
	assert.Equal(t, sibling.ID, siblings[0].ID)
}

func TestRequestService_TransitionPathInvariant(t *testing.T) {
	// Every observed state sequence must be a path in the pipeline graph;
	// spot-check a few forbidden jumps at the model level.
	forbidden := []struct {
		from, to request.State
	}{
		{request.StateNew, request.StateApproved},
		{request.StateNew, request.StateInProgress},
		{request.StateTriaged, request.StateDone},
		{request.StateDone, request.StateInProgress},
		{request.StateRejected, request.StateDone},
	}
	for _, f := range forbidden {
		assert.False(t, models.CanTransition(f.from, f.to), "%s -> %s must be illegal", f.from, f.to)
	}
}
