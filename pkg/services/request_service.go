package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/attachment"
	"github.com/conveyor-dev/conveyor/ent/comment"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/pkg/metrics"
	"github.com/conveyor-dev/conveyor/pkg/models"
	"github.com/google/uuid"
)

// RequestService manages the request aggregate: creation, worker selection
// queries, and guarded state transitions.
type RequestService struct {
	client *ent.Client
}

// NewRequestService creates a new RequestService
func NewRequestService(client *ent.Client) *RequestService {
	return &RequestService{client: client}
}

// CreateRequest inserts a new request in state "new".
func (s *RequestService) CreateRequest(ctx context.Context, in models.CreateRequestInput) (*ent.Request, error) {
	if in.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if in.Description == "" {
		return nil, NewValidationError("description", "required")
	}
	if in.ProjectID == 0 {
		return nil, NewValidationError("project_id", "required")
	}
	if in.Kind == "" {
		return nil, NewValidationError("kind", "required")
	}

	builder := s.client.Request.Create().
		SetTitle(in.Title).
		SetDescription(in.Description).
		SetProjectID(in.ProjectID).
		SetKind(in.Kind).
		SetState(request.StateNew)

	if in.Priority != "" {
		builder.SetPriority(in.Priority)
	}
	if in.SubmitterName != "" {
		builder.SetSubmitterName(in.SubmitterName)
	}
	if in.SubmitterEmail != "" {
		builder.SetSubmitterEmail(in.SubmitterEmail)
	}
	if in.StepsToReproduce != "" {
		builder.SetStepsToReproduce(in.StepsToReproduce)
	}
	if in.ExpectedBehavior != "" {
		builder.SetExpectedBehavior(in.ExpectedBehavior)
	}
	if in.ActualBehavior != "" {
		builder.SetActualBehavior(in.ActualBehavior)
	}

	req, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: project %d", ErrNotFound, in.ProjectID)
		}
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return req, nil
}

// GetRequest retrieves a request by ID with optional edge loading.
func (s *RequestService) GetRequest(ctx context.Context, id int, withEdges bool) (*ent.Request, error) {
	query := s.client.Request.Query().Where(request.IDEQ(id))

	if withEdges {
		query = query.
			WithProject().
			WithComments(func(q *ent.CommentQuery) {
				q.Order(ent.Asc(comment.FieldCreatedAt))
			}).
			WithAttachments()
	}

	req, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	return req, nil
}

// ListRequests lists requests with filtering and pagination.
func (s *RequestService) ListRequests(ctx context.Context, filters models.RequestFilters) (*models.RequestListResponse, error) {
	query := s.client.Request.Query()

	if filters.ProjectID != 0 {
		query = query.Where(request.ProjectIDEQ(filters.ProjectID))
	}
	if filters.State != "" {
		query = query.Where(request.StateEQ(filters.State))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count requests: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	requests, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(request.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return &models.RequestListResponse{
		Requests:   requests,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// TransitionInput describes one guarded state change. Mutate may apply
// additional field updates that commit atomically with the state change;
// Comment, when non-empty, is appended as a system agent comment in the
// same transaction.
type TransitionInput struct {
	To         request.State
	Comment    string
	ReviewKind *comment.ReviewKind
	ReviewID   string
	Mutate     func(*ent.RequestUpdate)
}

// Transition applies a guarded state change to a request. The write is
// conditional on the state and updated_at the caller read, so a row
// touched by another worker in the meantime fails with
// ErrConcurrentModification and the caller retries next cycle. Moving to
// a different state clears the stall flag; updated_at bumps on every
// write.
func (s *RequestService) Transition(ctx context.Context, req *ent.Request, in TransitionInput) (*ent.Request, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := applyTransition(ctx, tx, req, in); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}
	if in.To != req.State {
		metrics.ObserveTransition(string(req.State), string(in.To))
	}

	updated, err := s.client.Request.Get(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch request %d: %w", req.ID, err)
	}
	return updated, nil
}

// applyTransition performs the guarded state change inside the caller's
// transaction so review-table writes can commit atomically with it.
func applyTransition(ctx context.Context, tx *ent.Tx, req *ent.Request, in TransitionInput) error {
	if !models.CanTransition(req.State, in.To) {
		return fmt.Errorf("%w: %s -> %s (request %d)", ErrInvalidTransition, req.State, in.To, req.ID)
	}

	update := tx.Request.Update().
		Where(
			request.IDEQ(req.ID),
			request.StateEQ(req.State),
			request.UpdatedAtEQ(req.UpdatedAt),
		).
		SetState(in.To)

	if in.To != req.State {
		update.ClearStallNotifiedAt()
	}
	if in.Mutate != nil {
		in.Mutate(update)
	}

	count, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update request %d: %w", req.ID, err)
	}
	if count == 0 {
		return fmt.Errorf("request %d: %w", req.ID, ErrConcurrentModification)
	}

	if in.Comment != "" {
		builder := tx.Comment.Create().
			SetID(uuid.New().String()).
			SetRequestID(req.ID).
			SetAuthor(models.AgentAuthor).
			SetContent(in.Comment).
			SetIsAgent(true)
		if in.ReviewKind != nil {
			builder.SetReviewKind(*in.ReviewKind)
			if in.ReviewID != "" {
				builder.SetReviewID(in.ReviewID)
			}
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("failed to append transition comment: %w", err)
		}
	}

	return nil
}

// SelectForTriage returns requests the triage stage should review, oldest
// first: fresh requests, plus clarification requests where a human
// commented after the last triage pass and the retry cap is not spent.
func (s *RequestService) SelectForTriage(ctx context.Context, maxReviews, limit int) ([]*ent.Request, error) {
	requests, err := s.client.Request.Query().
		Where(request.Or(
			request.And(
				request.StateEQ(request.StateNew),
				request.TriageCountEQ(0),
			),
			request.And(
				request.StateEQ(request.StateNeedsClarification),
				request.TriageCountLT(maxReviews),
				hasNewerHumanComment(request.FieldLastTriageAt),
			),
		)).
		WithProject().
		Order(ent.Asc(request.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select triage candidates: %w", err)
	}
	return requests, nil
}

// SelectForArchitect returns requests the architect stage should design
// for: freshly triaged ones, plus reviews a human commented on since the
// last design pass.
func (s *RequestService) SelectForArchitect(ctx context.Context, maxReviews, limit int) ([]*ent.Request, error) {
	requests, err := s.client.Request.Query().
		Where(request.Or(
			request.And(
				request.StateEQ(request.StateTriaged),
				request.ArchitectCountEQ(0),
			),
			request.And(
				request.StateEQ(request.StateArchitectReview),
				request.ArchitectCountLT(maxReviews),
				hasNewerHumanComment(request.FieldLastArchitectAt),
			),
		)).
		WithProject().
		Order(ent.Asc(request.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select architect candidates: %w", err)
	}
	return requests, nil
}

// hasNewerHumanComment builds the re-review arm of a selection predicate:
// true when a non-agent comment arrived after the given last-reviewed
// column. COALESCE to -infinity makes a reset (cleared column) select the
// row even if a comment races the reset, which converges because review
// writes are idempotent per pass.
func hasNewerHumanComment(lastReviewedColumn string) func(*sql.Selector) {
	return func(sel *sql.Selector) {
		sel.Where(sql.ExprP(fmt.Sprintf(
			`EXISTS (
				SELECT 1 FROM comments
				WHERE comments.request_id = requests.id
				  AND comments.is_agent = false
				  AND comments.created_at > COALESCE(requests.%s, '-infinity'::timestamptz)
			)`, lastReviewedColumn)))
	}
}

// SelectForImplementation returns approved requests with no active coding
// session, least-recently-updated first, capped to the remaining session
// capacity.
func (s *RequestService) SelectForImplementation(ctx context.Context, limit int) ([]*ent.Request, error) {
	requests, err := s.client.Request.Query().
		Where(
			request.StateEQ(request.StateApproved),
			request.SessionIDIsNil(),
			request.IssueNumberNotNil(),
		).
		WithProject().
		Order(ent.Asc(request.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select implementation candidates: %w", err)
	}
	return requests, nil
}

// CountActiveSessions counts requests whose coding session is dispatched
// but has not yet opened a PR. This is the quantity MaxConcurrentSessions
// bounds.
func (s *RequestService) CountActiveSessions(ctx context.Context) (int, error) {
	count, err := s.client.Request.Query().
		Where(request.ImplementationStatusIn(
			request.ImplementationStatusPending,
			request.ImplementationStatusWorking,
		)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active sessions: %w", err)
	}
	return count, nil
}

// SelectForPRMonitor returns in-progress requests whose PR lifecycle still
// needs observation.
func (s *RequestService) SelectForPRMonitor(ctx context.Context) ([]*ent.Request, error) {
	requests, err := s.client.Request.Query().
		Where(
			request.StateEQ(request.StateInProgress),
			request.SessionIDNotNil(),
			request.ImplementationStatusIn(
				request.ImplementationStatusPending,
				request.ImplementationStatusWorking,
				request.ImplementationStatusPrOpened,
			),
		).
		WithProject().
		Order(ent.Asc(request.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select PR monitor candidates: %w", err)
	}
	return requests, nil
}

// SelectForCodeReview returns requests with an opened PR that has no
// review verdict yet for the current PR number.
func (s *RequestService) SelectForCodeReview(ctx context.Context, limit int) ([]*ent.Request, error) {
	requests, err := s.client.Request.Query().
		Where(
			request.StateEQ(request.StateInProgress),
			request.ImplementationStatusEQ(request.ImplementationStatusPrOpened),
			request.PrNumberNotNil(),
			func(sel *sql.Selector) {
				sel.Where(sql.ExprP(
					`NOT EXISTS (
						SELECT 1 FROM code_reviews
						WHERE code_reviews.request_id = requests.id
						  AND code_reviews.pr_number = requests.pr_number
					)`))
			},
		).
		WithProject().
		Order(ent.Asc(request.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select code review candidates: %w", err)
	}
	return requests, nil
}

// SelectMergeable returns requests whose PR passed review and awaits
// merging, oldest approval first.
func (s *RequestService) SelectMergeable(ctx context.Context) ([]*ent.Request, error) {
	requests, err := s.client.Request.Query().
		Where(
			request.StateEQ(request.StateInProgress),
			request.ImplementationStatusEQ(request.ImplementationStatusReviewApproved),
			request.PrNumberNotNil(),
		).
		WithProject().
		Order(ent.Asc(request.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select mergeable requests: %w", err)
	}
	return requests, nil
}

// SelectForDeploymentWatch returns merged requests whose deployment is
// pending, being observed, or awaiting a retry decision.
func (s *RequestService) SelectForDeploymentWatch(ctx context.Context) ([]*ent.Request, error) {
	requests, err := s.client.Request.Query().
		Where(
			request.StateEQ(request.StateDone),
			request.DeploymentStatusIn(
				request.DeploymentStatusPending,
				request.DeploymentStatusInProgress,
				request.DeploymentStatusFailed,
			),
		).
		WithProject().
		Order(ent.Asc(request.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select deployment candidates: %w", err)
	}
	return requests, nil
}

// StallQuery describes one stall scan: requests sitting in a state longer
// than the warning threshold, not yet notified.
type StallQuery struct {
	State            request.State
	Warning          time.Duration
	Critical         time.Duration
	RequireNoSession bool // approved-with-no-session scan
	FailedOnly       bool // in-progress scan keyed on completed_at
}

// SelectStalled returns requests matching a stall scan, along with the
// level each one has reached. Requests already notified are excluded:
// exactly one notification fires per entry into the stall state.
func (s *RequestService) SelectStalled(ctx context.Context, q StallQuery, now time.Time) ([]models.StalledRequest, error) {
	warnCutoff := now.Add(-q.Warning)

	query := s.client.Request.Query().
		Where(
			request.StateEQ(q.State),
			request.StallNotifiedAtIsNil(),
		)

	switch {
	case q.FailedOnly:
		query = query.Where(
			request.ImplementationStatusEQ(request.ImplementationStatusFailed),
			request.CompletedAtNotNil(),
			request.CompletedAtLT(warnCutoff),
		)
	case q.RequireNoSession:
		query = query.Where(
			request.SessionIDIsNil(),
			request.UpdatedAtLT(warnCutoff),
		)
	default:
		query = query.Where(request.UpdatedAtLT(warnCutoff))
	}

	requests, err := query.WithProject().Order(ent.Asc(request.FieldUpdatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select stalled requests: %w", err)
	}

	stalled := make([]models.StalledRequest, 0, len(requests))
	for _, req := range requests {
		since := req.UpdatedAt
		if q.FailedOnly && req.CompletedAt != nil {
			since = *req.CompletedAt
		}
		level := models.StallLevelWarning
		if q.Critical > 0 && since.Before(now.Add(-q.Critical)) {
			level = models.StallLevelCritical
		}
		stalled = append(stalled, models.StalledRequest{
			Request: req,
			Level:   level,
			State:   q.State,
			Since:   since,
		})
	}
	return stalled, nil
}

// MarkStallNotified records that a stall alert fired for the request.
// Conditional on the flag still being clear, so concurrent orchestrators
// emit at most one notification.
func (s *RequestService) MarkStallNotified(ctx context.Context, requestID int, at time.Time) (bool, error) {
	count, err := s.client.Request.Update().
		Where(
			request.IDEQ(requestID),
			request.StallNotifiedAtIsNil(),
		).
		SetStallNotifiedAt(at).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark stall notified: %w", err)
	}
	return count > 0, nil
}

// MarkBranchDeleted records that the working branch was cleaned up after
// a merge. Bookkeeping only, so no transition guard.
func (s *RequestService) MarkBranchDeleted(ctx context.Context, requestID int) error {
	if err := s.client.Request.UpdateOneID(requestID).
		SetBranchDeleted(true).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark branch deleted: %w", err)
	}
	return nil
}

func recordTriagePass(update *ent.RequestUpdate, at time.Time) {
	update.AddTriageCount(1).SetLastTriageAt(at)
}

func recordArchitectPass(update *ent.RequestUpdate, at time.Time) {
	update.AddArchitectCount(1).SetLastArchitectAt(at)
}

// TriagePassMutator returns a Mutate hook recording one triage pass.
func TriagePassMutator(at time.Time) func(*ent.RequestUpdate) {
	return func(u *ent.RequestUpdate) { recordTriagePass(u, at) }
}

// ArchitectPassMutator returns a Mutate hook recording one architect pass.
func ArchitectPassMutator(at time.Time) func(*ent.RequestUpdate) {
	return func(u *ent.RequestUpdate) { recordArchitectPass(u, at) }
}

// ResetTriage re-queues a request for triage: state back to new, triage
// counters cleared. The cleared last_triage_at plus the COALESCE in the
// selection predicate make this converge even when a submitter comment
// lands mid-reset.
func (s *RequestService) ResetTriage(ctx context.Context, requestID int) (*ent.Request, error) {
	req, err := s.GetRequest(ctx, requestID, false)
	if err != nil {
		return nil, err
	}

	return s.Transition(ctx, req, TransitionInput{
		To:      request.StateNew,
		Comment: "Request re-queued for triage.",
		Mutate: func(u *ent.RequestUpdate) {
			u.SetTriageCount(0).ClearLastTriageAt()
		},
	})
}

// ResetArchitect re-queues a request for solution design: state back to
// triaged, architect counters cleared.
func (s *RequestService) ResetArchitect(ctx context.Context, requestID int) (*ent.Request, error) {
	req, err := s.GetRequest(ctx, requestID, false)
	if err != nil {
		return nil, err
	}

	return s.Transition(ctx, req, TransitionInput{
		To:      request.StateTriaged,
		Comment: "Request re-queued for solution design.",
		Mutate: func(u *ent.RequestUpdate) {
			u.SetArchitectCount(0).ClearLastArchitectAt()
		},
	})
}

// ClearImplementation rejects the current implementation attempt: the
// request returns to approved and every coding-session field is cleared
// so the trigger can dispatch it again.
func (s *RequestService) ClearImplementation(ctx context.Context, requestID int, reason string) (*ent.Request, error) {
	req, err := s.GetRequest(ctx, requestID, false)
	if err != nil {
		return nil, err
	}
	if req.State != request.StateInProgress {
		return nil, fmt.Errorf("%w: request %d is %s, not in_progress", ErrInvalidTransition, requestID, req.State)
	}

	msg := "Implementation attempt rejected; request returned to the dispatch queue."
	if reason != "" {
		msg = fmt.Sprintf("Implementation attempt rejected: %s", reason)
	}

	return s.Transition(ctx, req, TransitionInput{
		To:      request.StateApproved,
		Comment: msg,
		Mutate: func(u *ent.RequestUpdate) {
			u.ClearSessionID().
				ClearPrNumber().
				ClearPrURL().
				ClearBranchName().
				ClearTriggeredAt().
				ClearCompletedAt().
				ClearImplementationStatus()
		},
	})
}

// SetIssueNumber records the code-host issue backing a request. Used by
// the idempotent ensure-issue effect; conditional on the column still
// being empty.
func (s *RequestService) SetIssueNumber(ctx context.Context, requestID, issueNumber int) error {
	_, err := s.client.Request.Update().
		Where(
			request.IDEQ(requestID),
			request.IssueNumberIsNil(),
		).
		SetIssueNumber(issueNumber).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record issue number: %w", err)
	}
	return nil
}

// ListProjectSiblings returns up to limit recent requests in the same
// project, excluding the request itself. Triage feeds these to the model
// as duplicate-detection context.
func (s *RequestService) ListProjectSiblings(ctx context.Context, req *ent.Request, limit int) ([]*ent.Request, error) {
	siblings, err := s.client.Request.Query().
		Where(
			request.ProjectIDEQ(req.ProjectID),
			request.IDNEQ(req.ID),
		).
		Order(ent.Desc(request.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list project siblings: %w", err)
	}
	return siblings, nil
}

// Attachments returns a request's attachments, oldest first.
func (s *RequestService) Attachments(ctx context.Context, requestID int) ([]*ent.Attachment, error) {
	attachments, err := s.client.Request.Query().
		Where(request.IDEQ(requestID)).
		QueryAttachments().
		Order(ent.Asc(attachment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}
	return attachments, nil
}
