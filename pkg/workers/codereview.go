package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/codereview"
	"github.com/conveyor-dev/conveyor/ent/comment"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/pkg/codehost"
	"github.com/conveyor-dev/conveyor/pkg/config"
	"github.com/conveyor-dev/conveyor/pkg/llm"
	"github.com/conveyor-dev/conveyor/pkg/models"
	"github.com/conveyor-dev/conveyor/pkg/prompt"
	"github.com/conveyor-dev/conveyor/pkg/services"
)

const codeReviewBatchSize = 3

// CodeReviewWorker reviews agent pull requests against the approved
// solution design and either approves the PR or requests changes.
type CodeReviewWorker struct {
	requests *services.RequestService
	reviews  *services.ReviewService
	comments *services.CommentService
	prompts  *services.PromptService
	llm      llm.Client
	builder  *prompt.Builder
	host     codehost.Host
	effects  *hostEffects
	deploy   *deployer
}

// NewCodeReviewWorker creates the PR review stage.
func NewCodeReviewWorker(d Deps) *CodeReviewWorker {
	return &CodeReviewWorker{
		requests: d.Requests,
		reviews:  d.Reviews,
		comments: d.Comments,
		prompts:  d.Prompts,
		llm:      d.LLM,
		builder:  d.Prompt,
		host:     d.Host,
		effects:  newHostEffects(d),
		deploy:   newDeployer(d),
	}
}

func (w *CodeReviewWorker) Name() string { return "code_review" }

func (w *CodeReviewWorker) Enabled(ps *config.PipelineSettings) bool {
	return ps.CodeReview.Enabled
}

// Interval follows the PR poll cadence: this stage consumes what the PR
// monitor produces.
func (w *CodeReviewWorker) Interval(ps *config.PipelineSettings) time.Duration {
	return time.Duration(ps.Implementation.PrPollSec) * time.Second
}

func (w *CodeReviewWorker) Cycle(ctx context.Context, ps *config.PipelineSettings) error {
	batch, err := w.requests.SelectForCodeReview(ctx, codeReviewBatchSize)
	if err != nil {
		return err
	}

	for _, req := range batch {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.processRequest(ctx, req, ps); err != nil {
			slog.Error("Code review failed", "request_id", req.ID, "error", err)
		}
	}
	return nil
}

func (w *CodeReviewWorker) processRequest(ctx context.Context, req *ent.Request, ps *config.PipelineSettings) error {
	settings := ps.CodeReview
	repo, ok := repoOf(req)
	if !ok {
		return fmt.Errorf("request %d has no project loaded", req.ID)
	}
	if req.PrNumber == nil {
		return nil
	}
	started := time.Now()

	pr, err := w.host.GetPullRequest(ctx, repo, *req.PrNumber)
	if err != nil {
		return err
	}
	diff, err := w.host.PullRequestDiff(ctx, repo, *req.PrNumber)
	if err != nil {
		return err
	}

	var solutionSummary, solutionJSON string
	approved, err := w.reviews.LatestApprovedArchitectReview(ctx, req.ID)
	switch {
	case err == nil:
		solutionSummary = approved.SolutionSummary
		solutionJSON = approved.SolutionJSON
	case errors.Is(err, services.ErrNotFound):
		slog.Warn("Reviewing without an approved solution design", "request_id", req.ID)
	default:
		return err
	}

	resp, err := w.llm.Complete(ctx, llm.Request{
		Stage:        prompt.StageCodeReview,
		SystemPrompt: w.builder.CodeReviewSystem(promptOverride(ctx, w.prompts, prompt.StageCodeReview)),
		UserPrompt: w.builder.CodeReviewUser(prompt.CodeReviewInput{
			Request:         req,
			SolutionSummary: solutionSummary,
			SolutionJSON:    solutionJSON,
			Diff:            diff,
			FilesChanged:    pr.ChangedFiles,
			Additions:       pr.Additions,
			Deletions:       pr.Deletions,
			MaxInputTokens:  settings.MaxInputTokens,
		}),
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("code review completion for request %d: %w", req.ID, err)
	}

	parsed := prompt.ParseCodeReviewResponse(resp.Content)
	decision := codereview.DecisionChangesRequested
	if parsed.Decision == prompt.ReviewApproved {
		decision = codereview.DecisionApproved
	}

	review, err := w.reviews.CreateCodeReview(ctx, models.CreateCodeReviewInput{
		RequestID:             req.ID,
		Decision:              decision,
		Summary:               parsed.Summary,
		DesignCompliance:      parsed.DesignCompliance,
		DesignComplianceNotes: parsed.DesignComplianceNotes,
		SecurityPass:          parsed.SecurityPass,
		SecurityNotes:         parsed.SecurityNotes,
		CodingStandardsPass:   parsed.CodingStandardsPass,
		CodingStandardsNotes:  parsed.CodingStandardsNotes,
		QualityScore:          parsed.QualityScore,
		FilesChanged:          pr.ChangedFiles,
		LinesAdded:            pr.Additions,
		LinesRemoved:          pr.Deletions,
		PRNumber:              pr.Number,
		PromptTokens:          resp.PromptTokens,
		CompletionTokens:      resp.CompletionTokens,
		Model:                 resp.Model,
		DurationMs:            time.Since(started).Milliseconds(),
	})
	if err != nil {
		return err
	}

	event := "REQUEST_CHANGES"
	if decision == codereview.DecisionApproved {
		event = "APPROVE"
	}
	if err := w.host.CreatePullRequestReview(ctx, repo, pr.Number, codehost.ReviewInput{
		Event: event,
		Body:  codeReviewComment(parsed),
	}); err != nil {
		slog.Warn("Failed to post PR review", "request_id", req.ID, "pr", pr.Number, "error", err)
	}

	if decision != codereview.DecisionApproved {
		w.effects.label(ctx, req, labelReviewChanges)
		kind := comment.ReviewKindCodeReview
		_, err := w.comments.CreateComment(ctx, models.CreateCommentInput{
			RequestID:  req.ID,
			Content:    codeReviewComment(parsed),
			IsAgent:    true,
			ReviewKind: &kind,
			ReviewID:   review.ID,
		})
		return err
	}

	kind := comment.ReviewKindCodeReview
	if _, err := w.requests.Transition(ctx, req, services.TransitionInput{
		To:         request.StateInProgress,
		Comment:    codeReviewComment(parsed),
		ReviewKind: &kind,
		ReviewID:   review.ID,
		Mutate: func(u *ent.RequestUpdate) {
			u.SetImplementationStatus(request.ImplementationStatusReviewApproved)
		},
	}); err != nil {
		return err
	}
	w.effects.label(ctx, req, labelReviewApproved)

	switch {
	case ps.Orchestrator.DeploymentMode == config.DeploymentModeStaged:
		w.effects.label(ctx, req, labelDeployStaged)
	case settings.AutoMerge:
		// Merge immediately instead of waiting for the orchestrator's
		// next cycle. mergeOne refetches state, so the two paths converge.
		if err := w.deploy.mergeRequest(ctx, req.ID); err != nil {
			slog.Error("Auto-merge failed", "request_id", req.ID, "error", err)
		}
	}
	return nil
}

// codeReviewComment renders the structured verdict for humans.
func codeReviewComment(r *prompt.CodeReviewResponse) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Code review: %s\n\n%s\n\n", reviewVerdict(r.Decision), r.Summary)
	fmt.Fprintf(&sb, "- Design compliance: %s %s\n", passMark(r.DesignCompliance), r.DesignComplianceNotes)
	fmt.Fprintf(&sb, "- Security: %s %s\n", passMark(r.SecurityPass), r.SecurityNotes)
	fmt.Fprintf(&sb, "- Coding standards: %s %s\n", passMark(r.CodingStandardsPass), r.CodingStandardsNotes)
	fmt.Fprintf(&sb, "- Quality score: %d/10", r.QualityScore)
	return sb.String()
}

func reviewVerdict(decision string) string {
	if decision == prompt.ReviewApproved {
		return "approved"
	}
	return "changes requested"
}

func passMark(ok bool) string {
	if ok {
		return "pass."
	}
	return "FAIL."
}
