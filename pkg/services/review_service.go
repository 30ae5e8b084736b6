package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/architectreview"
	"github.com/conveyor-dev/conveyor/ent/codereview"
	"github.com/conveyor-dev/conveyor/ent/comment"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/ent/triagereview"
	"github.com/conveyor-dev/conveyor/pkg/models"
	"github.com/google/uuid"
)

// ReviewService persists the three review artifact kinds and applies the
// human verdicts that move requests past them.
type ReviewService struct {
	client *ent.Client
}

// NewReviewService creates a new ReviewService
func NewReviewService(client *ent.Client) *ReviewService {
	return &ReviewService{client: client}
}

// clampScore bounds a model-reported score to [lo, hi].
func clampScore(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CreateTriageReview persists one triage pass. Scores arrive straight
// from the model and are clamped to 0-100.
func (s *ReviewService) CreateTriageReview(ctx context.Context, in models.CreateTriageReviewInput) (*ent.TriageReview, error) {
	if in.RequestID == 0 {
		return nil, NewValidationError("request_id", "required")
	}
	if in.Decision == "" {
		return nil, NewValidationError("decision", "required")
	}

	builder := s.client.TriageReview.Create().
		SetID(uuid.New().String()).
		SetRequestID(in.RequestID).
		SetDecision(in.Decision).
		SetReasoning(in.Reasoning).
		SetAlignmentScore(clampScore(in.AlignmentScore, 0, 100)).
		SetCompletenessScore(clampScore(in.CompletenessScore, 0, 100)).
		SetSalesAlignmentScore(clampScore(in.SalesAlignmentScore, 0, 100)).
		SetIsDuplicate(in.IsDuplicate).
		SetPromptTokens(in.PromptTokens).
		SetCompletionTokens(in.CompletionTokens).
		SetModel(in.Model).
		SetDurationMs(in.DurationMs)

	if in.SuggestedPriority != "" {
		builder.SetSuggestedPriority(in.SuggestedPriority)
	}
	if len(in.Tags) > 0 {
		builder.SetTags(in.Tags)
	}
	if len(in.ClarificationQuestions) > 0 {
		builder.SetClarificationQuestions(in.ClarificationQuestions)
	}
	if in.DuplicateOfRequestID != nil {
		builder.SetDuplicateOfRequestID(*in.DuplicateOfRequestID)
	}

	review, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: request %d", ErrNotFound, in.RequestID)
		}
		return nil, fmt.Errorf("failed to create triage review: %w", err)
	}
	return review, nil
}

// CreateArchitectReview persists one solution design pass with decision
// pending; a human verdict moves it on.
func (s *ReviewService) CreateArchitectReview(ctx context.Context, in models.CreateArchitectReviewInput) (*ent.ArchitectReview, error) {
	if in.RequestID == 0 {
		return nil, NewValidationError("request_id", "required")
	}
	if in.SolutionJSON == "" {
		return nil, NewValidationError("solution_json", "required")
	}

	builder := s.client.ArchitectReview.Create().
		SetID(uuid.New().String()).
		SetRequestID(in.RequestID).
		SetSolutionSummary(in.SolutionSummary).
		SetApproach(in.Approach).
		SetSolutionJSON(in.SolutionJSON).
		SetEstimatedComplexity(in.EstimatedComplexity).
		SetEstimatedEffort(in.EstimatedEffort).
		SetFilesAnalyzed(in.FilesAnalyzed).
		SetStep1PromptTokens(in.Step1PromptTokens).
		SetStep1CompletionTokens(in.Step1CompletionTokens).
		SetStep2PromptTokens(in.Step2PromptTokens).
		SetStep2CompletionTokens(in.Step2CompletionTokens).
		SetModel(in.Model).
		SetDurationMs(in.DurationMs).
		SetDecision(architectreview.DecisionPending)

	if len(in.FilePaths) > 0 {
		builder.SetFilePaths(in.FilePaths)
	}

	review, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: request %d", ErrNotFound, in.RequestID)
		}
		return nil, fmt.Errorf("failed to create architect review: %w", err)
	}
	return review, nil
}

// CreateCodeReview persists one PR review verdict. The quality score is
// clamped to 1-10.
func (s *ReviewService) CreateCodeReview(ctx context.Context, in models.CreateCodeReviewInput) (*ent.CodeReview, error) {
	if in.RequestID == 0 {
		return nil, NewValidationError("request_id", "required")
	}
	if in.Decision == "" {
		return nil, NewValidationError("decision", "required")
	}
	if in.PRNumber == 0 {
		return nil, NewValidationError("pr_number", "required")
	}

	review, err := s.client.CodeReview.Create().
		SetID(uuid.New().String()).
		SetRequestID(in.RequestID).
		SetDecision(in.Decision).
		SetSummary(in.Summary).
		SetDesignCompliance(in.DesignCompliance).
		SetDesignComplianceNotes(in.DesignComplianceNotes).
		SetSecurityPass(in.SecurityPass).
		SetSecurityNotes(in.SecurityNotes).
		SetCodingStandardsPass(in.CodingStandardsPass).
		SetCodingStandardsNotes(in.CodingStandardsNotes).
		SetQualityScore(clampScore(in.QualityScore, 1, 10)).
		SetFilesChanged(in.FilesChanged).
		SetLinesAdded(in.LinesAdded).
		SetLinesRemoved(in.LinesRemoved).
		SetPrNumber(in.PRNumber).
		SetPromptTokens(in.PromptTokens).
		SetCompletionTokens(in.CompletionTokens).
		SetModel(in.Model).
		SetDurationMs(in.DurationMs).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: request %d", ErrNotFound, in.RequestID)
		}
		return nil, fmt.Errorf("failed to create code review: %w", err)
	}
	return review, nil
}

// LatestTriageReview returns the newest triage pass for a request.
func (s *ReviewService) LatestTriageReview(ctx context.Context, requestID int) (*ent.TriageReview, error) {
	review, err := s.client.TriageReview.Query().
		Where(triagereview.RequestIDEQ(requestID)).
		Order(ent.Desc(triagereview.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest triage review: %w", err)
	}
	return review, nil
}

// LatestArchitectReview returns the newest solution design for a request.
func (s *ReviewService) LatestArchitectReview(ctx context.Context, requestID int) (*ent.ArchitectReview, error) {
	review, err := s.client.ArchitectReview.Query().
		Where(architectreview.RequestIDEQ(requestID)).
		Order(ent.Desc(architectreview.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest architect review: %w", err)
	}
	return review, nil
}

// LatestApprovedArchitectReview returns the newest human-approved
// solution for a request. The implementation trigger refuses to dispatch
// without one.
func (s *ReviewService) LatestApprovedArchitectReview(ctx context.Context, requestID int) (*ent.ArchitectReview, error) {
	review, err := s.client.ArchitectReview.Query().
		Where(
			architectreview.RequestIDEQ(requestID),
			architectreview.DecisionEQ(architectreview.DecisionApproved),
		).
		Order(ent.Desc(architectreview.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get approved architect review: %w", err)
	}
	return review, nil
}

// LatestCodeReview returns the newest PR review for a request.
func (s *ReviewService) LatestCodeReview(ctx context.Context, requestID int) (*ent.CodeReview, error) {
	review, err := s.client.CodeReview.Query().
		Where(codereview.RequestIDEQ(requestID)).
		Order(ent.Desc(codereview.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest code review: %w", err)
	}
	return review, nil
}

// GetTriageReview retrieves a triage review by ID.
func (s *ReviewService) GetTriageReview(ctx context.Context, id string) (*ent.TriageReview, error) {
	review, err := s.client.TriageReview.Query().
		Where(triagereview.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get triage review: %w", err)
	}
	return review, nil
}

// GetArchitectReview retrieves an architect review by ID.
func (s *ReviewService) GetArchitectReview(ctx context.Context, id string) (*ent.ArchitectReview, error) {
	review, err := s.client.ArchitectReview.Query().
		Where(architectreview.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get architect review: %w", err)
	}
	return review, nil
}

// ApproveArchitectReview records a human approval on a pending or revised
// solution and advances the request to approved, atomically.
func (s *ReviewService) ApproveArchitectReview(ctx context.Context, in models.ArchitectDecisionInput) (*ent.Request, error) {
	if in.Actor == "" {
		return nil, NewValidationError("actor", "required")
	}

	review, err := s.GetArchitectReview(ctx, in.ReviewID)
	if err != nil {
		return nil, err
	}
	req, err := s.client.Request.Get(ctx, review.RequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get request %d: %w", review.RequestID, err)
	}
	if req.State != request.StateArchitectReview {
		return nil, fmt.Errorf("%w: %s -> %s (request %d)", ErrInvalidTransition, req.State, request.StateApproved, req.ID)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	if err := tx.ArchitectReview.UpdateOneID(review.ID).
		SetDecision(architectreview.DecisionApproved).
		SetApprovedBy(in.Actor).
		SetApprovedAt(now).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to approve architect review: %w", err)
	}

	kind := comment.ReviewKindArchitect
	msg := fmt.Sprintf("Solution approved by %s.", in.Actor)
	if in.Reason != "" {
		msg = fmt.Sprintf("Solution approved by %s: %s", in.Actor, in.Reason)
	}
	if err := applyTransition(ctx, tx, req, TransitionInput{
		To:         request.StateApproved,
		Comment:    msg,
		ReviewKind: &kind,
		ReviewID:   review.ID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit approval: %w", err)
	}

	return s.client.Request.Get(ctx, req.ID)
}

// RejectArchitectReview records a human rejection of a solution. The
// request returns to triaged with its architect counters cleared, so the
// next cycle produces a fresh design.
func (s *ReviewService) RejectArchitectReview(ctx context.Context, in models.ArchitectDecisionInput) (*ent.Request, error) {
	if in.Actor == "" {
		return nil, NewValidationError("actor", "required")
	}

	review, err := s.GetArchitectReview(ctx, in.ReviewID)
	if err != nil {
		return nil, err
	}
	req, err := s.client.Request.Get(ctx, review.RequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get request %d: %w", review.RequestID, err)
	}
	if req.State != request.StateArchitectReview {
		return nil, fmt.Errorf("%w: %s -> %s (request %d)", ErrInvalidTransition, req.State, request.StateTriaged, req.ID)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	reviewUpdate := tx.ArchitectReview.UpdateOneID(review.ID).
		SetDecision(architectreview.DecisionRejected)
	if in.Reason != "" {
		reviewUpdate.SetHumanFeedback(in.Reason)
	}
	if err := reviewUpdate.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to reject architect review: %w", err)
	}

	kind := comment.ReviewKindArchitect
	msg := fmt.Sprintf("Solution rejected by %s; request returned for redesign.", in.Actor)
	if in.Reason != "" {
		msg = fmt.Sprintf("Solution rejected by %s: %s", in.Actor, in.Reason)
	}
	if err := applyTransition(ctx, tx, req, TransitionInput{
		To:         request.StateTriaged,
		Comment:    msg,
		ReviewKind: &kind,
		ReviewID:   review.ID,
		Mutate: func(u *ent.RequestUpdate) {
			u.SetArchitectCount(0).ClearLastArchitectAt()
		},
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rejection: %w", err)
	}

	return s.client.Request.Get(ctx, req.ID)
}

// FeedbackArchitectReview records human revision feedback. The review is
// marked revised and the feedback lands as a human comment, which the
// architect selection predicate picks up for another pass. The request
// stays in architect_review.
func (s *ReviewService) FeedbackArchitectReview(ctx context.Context, in models.ArchitectDecisionInput) (*ent.ArchitectReview, error) {
	if in.Actor == "" {
		return nil, NewValidationError("actor", "required")
	}
	if in.Reason == "" {
		return nil, NewValidationError("reason", "feedback text required")
	}

	review, err := s.GetArchitectReview(ctx, in.ReviewID)
	if err != nil {
		return nil, err
	}
	req, err := s.client.Request.Get(ctx, review.RequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get request %d: %w", review.RequestID, err)
	}
	if req.State != request.StateArchitectReview {
		return nil, fmt.Errorf("%w: feedback on request %d in state %s", ErrInvalidTransition, req.ID, req.State)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.ArchitectReview.UpdateOneID(review.ID).
		SetDecision(architectreview.DecisionRevised).
		SetHumanFeedback(in.Reason).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record feedback: %w", err)
	}

	kind := comment.ReviewKindArchitect
	if _, err := tx.Comment.Create().
		SetID(uuid.New().String()).
		SetRequestID(req.ID).
		SetAuthor(in.Actor).
		SetContent(in.Reason).
		SetIsAgent(false).
		SetReviewKind(kind).
		SetReviewID(review.ID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to append feedback comment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit feedback: %w", err)
	}

	return s.GetArchitectReview(ctx, review.ID)
}

// overridableStates are the states a human may move a request to when
// overriding a triage verdict: exactly those triage itself can produce.
var overridableStates = map[request.State]bool{
	request.StateTriaged:            true,
	request.StateRejected:           true,
	request.StateNeedsClarification: true,
}

// OverrideTriage moves a triaged request to a human-chosen verdict state,
// recording who and why.
func (s *ReviewService) OverrideTriage(ctx context.Context, in models.TriageOverrideInput) (*ent.Request, error) {
	if in.Actor == "" {
		return nil, NewValidationError("actor", "required")
	}
	if !overridableStates[in.NewState] {
		return nil, NewValidationError("new_state", "must be triaged, rejected, or needs_clarification")
	}

	review, err := s.GetTriageReview(ctx, in.ReviewID)
	if err != nil {
		return nil, err
	}
	req, err := s.client.Request.Get(ctx, review.RequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get request %d: %w", review.RequestID, err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	kind := comment.ReviewKindTriage
	msg := fmt.Sprintf("Triage verdict overridden by %s: request moved to %s.", in.Actor, in.NewState)
	if in.Reason != "" {
		msg = fmt.Sprintf("Triage verdict overridden by %s (%s): request moved to %s.", in.Actor, in.Reason, in.NewState)
	}
	if err := applyTransition(ctx, tx, req, TransitionInput{
		To:         in.NewState,
		Comment:    msg,
		ReviewKind: &kind,
		ReviewID:   review.ID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit override: %w", err)
	}

	return s.client.Request.Get(ctx, req.ID)
}

// tokenSums receives SUM aggregates; NullInt64 survives an empty window.
type tokenSums struct {
	Prompt     sql.NullInt64 `sql:"prompt"`
	Completion sql.NullInt64 `sql:"completion"`
}

func (t tokenSums) total() int64 {
	return t.Prompt.Int64 + t.Completion.Int64
}

// TriageTokensUsed sums triage token usage since a point in time.
func (s *ReviewService) TriageTokensUsed(ctx context.Context, since time.Time) (int64, error) {
	var sums []tokenSums
	err := s.client.TriageReview.Query().
		Where(triagereview.CreatedAtGTE(since)).
		Aggregate(
			ent.As(ent.Sum(triagereview.FieldPromptTokens), "prompt"),
			ent.As(ent.Sum(triagereview.FieldCompletionTokens), "completion"),
		).
		Scan(ctx, &sums)
	if err != nil {
		return 0, fmt.Errorf("failed to sum triage tokens: %w", err)
	}
	if len(sums) == 0 {
		return 0, nil
	}
	return sums[0].total(), nil
}

// ArchitectTokensUsed sums architect token usage (both phases) since a
// point in time.
func (s *ReviewService) ArchitectTokensUsed(ctx context.Context, since time.Time) (int64, error) {
	var sums []struct {
		S1P sql.NullInt64 `sql:"s1p"`
		S1C sql.NullInt64 `sql:"s1c"`
		S2P sql.NullInt64 `sql:"s2p"`
		S2C sql.NullInt64 `sql:"s2c"`
	}
	err := s.client.ArchitectReview.Query().
		Where(architectreview.CreatedAtGTE(since)).
		Aggregate(
			ent.As(ent.Sum(architectreview.FieldStep1PromptTokens), "s1p"),
			ent.As(ent.Sum(architectreview.FieldStep1CompletionTokens), "s1c"),
			ent.As(ent.Sum(architectreview.FieldStep2PromptTokens), "s2p"),
			ent.As(ent.Sum(architectreview.FieldStep2CompletionTokens), "s2c"),
		).
		Scan(ctx, &sums)
	if err != nil {
		return 0, fmt.Errorf("failed to sum architect tokens: %w", err)
	}
	if len(sums) == 0 {
		return 0, nil
	}
	return sums[0].S1P.Int64 + sums[0].S1C.Int64 + sums[0].S2P.Int64 + sums[0].S2C.Int64, nil
}

// UTCDayStart returns midnight UTC of the day containing t.
func UTCDayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// UTCMonthStart returns the first instant of the UTC month containing t.
func UTCMonthStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// CheckBudget evaluates a stage's daily and monthly token budgets against
// actual usage reported by used. A zero budget is unlimited; a positive
// budget already met or exceeded closes the gate with ErrBudgetExceeded.
func CheckBudget(ctx context.Context, used func(context.Context, time.Time) (int64, error), dailyBudget, monthlyBudget int64, now time.Time) error {
	if dailyBudget > 0 {
		day, err := used(ctx, UTCDayStart(now))
		if err != nil {
			return err
		}
		if day >= dailyBudget {
			return fmt.Errorf("%w: %d/%d tokens today", ErrBudgetExceeded, day, dailyBudget)
		}
	}
	if monthlyBudget > 0 {
		month, err := used(ctx, UTCMonthStart(now))
		if err != nil {
			return err
		}
		if month >= monthlyBudget {
			return fmt.Errorf("%w: %d/%d tokens this month", ErrBudgetExceeded, month, monthlyBudget)
		}
	}
	return nil
}
