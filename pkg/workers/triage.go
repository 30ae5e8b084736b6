package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/comment"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/ent/triagereview"
	"github.com/conveyor-dev/conveyor/pkg/codehost"
	"github.com/conveyor-dev/conveyor/pkg/config"
	"github.com/conveyor-dev/conveyor/pkg/llm"
	"github.com/conveyor-dev/conveyor/pkg/metrics"
	"github.com/conveyor-dev/conveyor/pkg/models"
	"github.com/conveyor-dev/conveyor/pkg/prompt"
	"github.com/conveyor-dev/conveyor/pkg/services"
)

// triageBatchSize bounds one polling cycle.
const triageBatchSize = 5

// siblingContextLimit caps how many same-project requests ride along as
// duplicate-detection context.
const siblingContextLimit = 50

// TriageWorker runs the product-owner review stage: it scores fresh
// requests against the reference documents and decides approve, reject,
// or clarify.
type TriageWorker struct {
	requests *services.RequestService
	reviews  *services.ReviewService
	comments *services.CommentService
	prompts  *services.PromptService
	llm      llm.Client
	builder  *prompt.Builder
	effects  *hostEffects

	// budgetClosed dedupes the budget warning; only the runner
	// goroutine touches it.
	budgetClosed bool
}

// NewTriageWorker creates the triage stage.
func NewTriageWorker(d Deps) *TriageWorker {
	return &TriageWorker{
		requests: d.Requests,
		reviews:  d.Reviews,
		comments: d.Comments,
		prompts:  d.Prompts,
		llm:      d.LLM,
		builder:  d.Prompt,
		effects:  newHostEffects(d),
	}
}

func (w *TriageWorker) Name() string { return "triage" }

func (w *TriageWorker) Enabled(ps *config.PipelineSettings) bool { return ps.Triage.Enabled }

func (w *TriageWorker) Interval(ps *config.PipelineSettings) time.Duration {
	return time.Duration(ps.Triage.PollSec) * time.Second
}

// Cycle reviews up to triageBatchSize requests. One request's failure
// is logged and the batch continues.
func (w *TriageWorker) Cycle(ctx context.Context, ps *config.PipelineSettings) error {
	settings := ps.Triage

	err := services.CheckBudget(ctx, w.reviews.TriageTokensUsed,
		int64(settings.DailyBudget), int64(settings.MonthlyBudget), time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrBudgetExceeded) {
			if !w.budgetClosed {
				slog.Warn("Triage budget exhausted, skipping cycles until it reopens", "error", err)
				w.budgetClosed = true
			}
			metrics.IncBudgetSkip(w.Name())
			return nil
		}
		return err
	}
	w.budgetClosed = false

	batch, err := w.requests.SelectForTriage(ctx, settings.MaxReviews, triageBatchSize)
	if err != nil {
		return err
	}

	for _, req := range batch {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.processRequest(ctx, req, settings); err != nil {
			slog.Error("Triage failed", "request_id", req.ID, "error", err)
		}
	}
	return nil
}

func (w *TriageWorker) processRequest(ctx context.Context, req *ent.Request, settings config.TriageSettings) error {
	siblings, err := w.requests.ListProjectSiblings(ctx, req, siblingContextLimit)
	if err != nil {
		return err
	}
	conversation, err := w.comments.ListComments(ctx, req.ID)
	if err != nil {
		return err
	}

	resp, err := w.llm.Complete(ctx, llm.Request{
		Stage:        prompt.StageTriage,
		SystemPrompt: w.builder.TriageSystem(promptOverride(ctx, w.prompts, prompt.StageTriage)),
		UserPrompt:   w.builder.TriageUser(req, conversation, siblings),
		Temperature:  settings.Temperature,
		MaxTokens:    settings.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("triage completion for request %d: %w", req.ID, err)
	}

	verdict := prompt.ParseTriageResponse(resp.Content)
	w.applyDuplicatePolicy(ctx, verdict)

	review, err := w.reviews.CreateTriageReview(ctx, models.CreateTriageReviewInput{
		RequestID:              req.ID,
		Decision:               triagereview.Decision(verdict.Decision),
		Reasoning:              verdict.Reasoning,
		AlignmentScore:         verdict.AlignmentScore,
		CompletenessScore:      verdict.CompletenessScore,
		SalesAlignmentScore:    verdict.SalesAlignmentScore,
		SuggestedPriority:      verdict.SuggestedPriority,
		Tags:                   verdict.Tags,
		ClarificationQuestions: verdict.ClarificationQuestions,
		IsDuplicate:            verdict.IsDuplicate,
		DuplicateOfRequestID:   verdict.DuplicateOfRequestID,
		PromptTokens:           resp.PromptTokens,
		CompletionTokens:       resp.CompletionTokens,
		Model:                  resp.Model,
		DurationMs:             resp.Duration.Milliseconds(),
	})
	if err != nil {
		return err
	}

	to, lbl := triageOutcome(verdict.Decision)
	note := triageComment(verdict)
	kind := comment.ReviewKindTriage
	if _, err := w.requests.Transition(ctx, req, services.TransitionInput{
		To:         to,
		Comment:    note,
		ReviewKind: &kind,
		ReviewID:   review.ID,
		Mutate:     services.TriagePassMutator(time.Now()),
	}); err != nil {
		return err
	}

	if _, err := w.effects.ensureIssue(ctx, req); err != nil {
		slog.Warn("Issue mirror unavailable", "request_id", req.ID, "error", err)
		return nil
	}
	w.effects.label(ctx, req, lbl)
	w.effects.comment(ctx, req, note)
	return nil
}

// applyDuplicatePolicy forces a reject when the flagged duplicate is a
// request already moving through the pipeline or delivered. Duplicates
// of rejected or unreviewed requests stay with the model's decision.
func (w *TriageWorker) applyDuplicatePolicy(ctx context.Context, verdict *prompt.TriageResponse) {
	if !verdict.IsDuplicate || verdict.DuplicateOfRequestID == nil {
		return
	}
	dup, err := w.requests.GetRequest(ctx, *verdict.DuplicateOfRequestID, false)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			slog.Warn("Failed to load duplicate target", "request_id", *verdict.DuplicateOfRequestID, "error", err)
		}
		return
	}
	if !duplicateForcesReject(dup.State) {
		return
	}
	if verdict.Decision != prompt.DecisionReject {
		verdict.Decision = prompt.DecisionReject
		verdict.Reasoning = fmt.Sprintf("Duplicate of request %d (%s). %s", dup.ID, dup.State, verdict.Reasoning)
	}
}

func duplicateForcesReject(s request.State) bool {
	switch s {
	case request.StateTriaged, request.StateApproved, request.StateInProgress, request.StateDone:
		return true
	}
	return false
}

func triageOutcome(decision string) (request.State, codehost.Label) {
	switch decision {
	case prompt.DecisionApprove:
		return request.StateTriaged, labelApproved
	case prompt.DecisionReject:
		return request.StateRejected, labelRejected
	default:
		return request.StateNeedsClarification, labelNeedsInfo
	}
}

// triageComment renders the verdict as the agent comment recorded on
// the request and mirrored to the issue.
func triageComment(v *prompt.TriageResponse) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Triage decision: %s\n\n", v.Decision)
	fmt.Fprintf(&sb, "Scores: alignment %d/100, completeness %d/100, sales alignment %d/100\n\n",
		v.AlignmentScore, v.CompletenessScore, v.SalesAlignmentScore)
	sb.WriteString(v.Reasoning)
	if len(v.ClarificationQuestions) > 0 {
		sb.WriteString("\n\nClarification needed:\n")
		for _, q := range v.ClarificationQuestions {
			fmt.Fprintf(&sb, "- %s\n", q)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
