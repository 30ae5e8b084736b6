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
	"github.com/conveyor-dev/conveyor/pkg/codebase"
	"github.com/conveyor-dev/conveyor/pkg/config"
	"github.com/conveyor-dev/conveyor/pkg/llm"
	"github.com/conveyor-dev/conveyor/pkg/metrics"
	"github.com/conveyor-dev/conveyor/pkg/models"
	"github.com/conveyor-dev/conveyor/pkg/prompt"
	"github.com/conveyor-dev/conveyor/pkg/services"
)

// architectBatchSize bounds one polling cycle.
const architectBatchSize = 3

// fileSelectionMaxTokens caps the phase one output; a path list is
// small even at the file cap.
const fileSelectionMaxTokens = 1000

// solutionInputTokenLimit is the window guard for the phase two call.
// When the composed prompt estimates above it, files are dropped from
// the tail of the relevance-ordered list first, then the survivors are
// trimmed to head and tail lines, and last the repository map is cut.
const solutionInputTokenLimit = 100000

// minSolutionFiles is the floor below which the window guard stops
// dropping files and trims content instead.
const minSolutionFiles = 5

// minRepoMapTokens keeps the head of the repository map even when the
// window guard has to cut it.
const minRepoMapTokens = 500

// ArchitectWorker runs the solution-design stage: a file-selection call
// over the repository map, then a solution proposal over the selected
// file contents.
type ArchitectWorker struct {
	requests *services.RequestService
	reviews  *services.ReviewService
	comments *services.CommentService
	prompts  *services.PromptService
	llm      llm.Client
	codebase *codebase.Service
	builder  *prompt.Builder
	effects  *hostEffects

	budgetClosed bool
}

// NewArchitectWorker creates the architect stage.
func NewArchitectWorker(d Deps) *ArchitectWorker {
	return &ArchitectWorker{
		requests: d.Requests,
		reviews:  d.Reviews,
		comments: d.Comments,
		prompts:  d.Prompts,
		llm:      d.LLM,
		codebase: d.Codebase,
		builder:  d.Prompt,
		effects:  newHostEffects(d),
	}
}

func (w *ArchitectWorker) Name() string { return "architect" }

func (w *ArchitectWorker) Enabled(ps *config.PipelineSettings) bool { return ps.Architect.Enabled }

func (w *ArchitectWorker) Interval(ps *config.PipelineSettings) time.Duration {
	return time.Duration(ps.Architect.PollSec) * time.Second
}

// Cycle designs solutions for up to architectBatchSize requests.
func (w *ArchitectWorker) Cycle(ctx context.Context, ps *config.PipelineSettings) error {
	settings := ps.Architect

	err := services.CheckBudget(ctx, w.reviews.ArchitectTokensUsed,
		int64(settings.DailyBudget), int64(settings.MonthlyBudget), time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrBudgetExceeded) {
			if !w.budgetClosed {
				slog.Warn("Architect budget exhausted, skipping cycles until it reopens", "error", err)
				w.budgetClosed = true
			}
			metrics.IncBudgetSkip(w.Name())
			return nil
		}
		return err
	}
	w.budgetClosed = false

	batch, err := w.requests.SelectForArchitect(ctx, settings.MaxReviews, architectBatchSize)
	if err != nil {
		return err
	}

	for _, req := range batch {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.processRequest(ctx, req, settings); err != nil {
			slog.Error("Architect review failed", "request_id", req.ID, "error", err)
		}
	}
	return nil
}

func (w *ArchitectWorker) processRequest(ctx context.Context, req *ent.Request, settings config.ArchitectSettings) error {
	repo, ok := repoOf(req)
	if !ok {
		return fmt.Errorf("request %d has no project loaded", req.ID)
	}

	repoMap, err := w.codebase.Map(ctx, repo)
	if err != nil {
		return fmt.Errorf("repository map for %s: %w", repo, err)
	}

	triage, err := w.reviews.LatestTriageReview(ctx, req.ID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return err
	}

	started := time.Now()
	system := w.builder.ArchitectSystem(promptOverride(ctx, w.prompts, prompt.StageArchitect))

	// Phase one: pick the files worth reading.
	selection, err := w.llm.Complete(ctx, llm.Request{
		Stage:        prompt.StageArchitect,
		SystemPrompt: system,
		UserPrompt:   w.builder.FileSelectionUser(req, repoMap.Rendered(), triage, settings.MaxFiles),
		Temperature:  settings.Temperature,
		MaxTokens:    fileSelectionMaxTokens,
	})
	if err != nil {
		return fmt.Errorf("file selection for request %d: %w", req.ID, err)
	}
	paths := knownPaths(prompt.ParseFileSelection(selection.Content, settings.MaxFiles), repoMap)

	files, err := w.codebase.Contents(ctx, repo, paths, settings.MaxContentChars)
	if err != nil {
		return fmt.Errorf("file contents for request %d: %w", req.ID, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	revision := w.revisionContext(ctx, req)

	// Phase two: propose the solution.
	user, files := w.fitSolutionInput(system, req, repoMap.Rendered(), files, triage, revision)
	proposal, err := w.llm.Complete(ctx, llm.Request{
		Stage:        prompt.StageArchitect,
		SystemPrompt: system,
		UserPrompt:   user,
		Temperature:  settings.Temperature,
		MaxTokens:    settings.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("solution proposal for request %d: %w", req.ID, err)
	}

	solution, solutionJSON, parsed := prompt.ParseSolutionResponse(proposal.Content)

	summary := solution.SolutionSummary
	if unknown := solution.UnknownPaths(repoMap.HasPath); len(unknown) > 0 {
		summary = fmt.Sprintf("%s\n\n[note: %d path(s) not found in the repository map: %s]",
			summary, len(unknown), strings.Join(unknown, ", "))
	}

	review, err := w.reviews.CreateArchitectReview(ctx, models.CreateArchitectReviewInput{
		RequestID:             req.ID,
		SolutionSummary:       summary,
		Approach:              solution.Approach,
		SolutionJSON:          solutionJSON,
		EstimatedComplexity:   solution.EstimatedComplexity,
		EstimatedEffort:       solution.EstimatedEffort,
		FilesAnalyzed:         len(files),
		FilePaths:             filePaths(files),
		Step1PromptTokens:     selection.PromptTokens,
		Step1CompletionTokens: selection.CompletionTokens,
		Step2PromptTokens:     proposal.PromptTokens,
		Step2CompletionTokens: proposal.CompletionTokens,
		Model:                 proposal.Model,
		DurationMs:            time.Since(started).Milliseconds(),
	})
	if err != nil {
		return err
	}

	note := architectComment(solution, parsed)
	kind := comment.ReviewKindArchitect
	if _, err := w.requests.Transition(ctx, req, services.TransitionInput{
		To:         request.StateArchitectReview,
		Comment:    note,
		ReviewKind: &kind,
		ReviewID:   review.ID,
		Mutate:     services.ArchitectPassMutator(time.Now()),
	}); err != nil {
		return err
	}

	w.effects.comment(ctx, req, note)
	return nil
}

// revisionContext assembles the prior summary and the newest human
// feedback for a re-review pass; nil on the first pass.
func (w *ArchitectWorker) revisionContext(ctx context.Context, req *ent.Request) *prompt.Revision {
	if req.ArchitectCount == 0 {
		return nil
	}
	prior, err := w.reviews.LatestArchitectReview(ctx, req.ID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			slog.Warn("Failed to load prior architect review", "request_id", req.ID, "error", err)
		}
		return nil
	}

	rev := &prompt.Revision{PriorSummary: prior.SolutionSummary}
	feedback, err := w.comments.ListHumanCommentsSince(ctx, req.ID, req.LastArchitectAt)
	if err != nil {
		slog.Warn("Failed to load review feedback", "request_id", req.ID, "error", err)
	} else if len(feedback) > 0 {
		rev.Feedback = feedback[len(feedback)-1].Content
	}
	if prior.HumanFeedback != nil && rev.Feedback == "" {
		rev.Feedback = *prior.HumanFeedback
	}
	return rev
}

// fitSolutionInput composes the phase two user message, shedding input
// until it fits the window guard: files drop from the tail of the
// relevance-ordered list down to minSolutionFiles, then every survivor
// is trimmed to head and tail lines, then the repository map is cut to
// whatever budget remains.
func (w *ArchitectWorker) fitSolutionInput(system string, req *ent.Request, repoMap string, files []codebase.File, triage *ent.TriageReview, rev *prompt.Revision) (string, []codebase.File) {
	user := w.builder.SolutionUser(req, repoMap, files, triage, rev)
	if w.fits(system, user) {
		return user, files
	}

	for len(files) > minSolutionFiles && !w.fits(system, user) {
		files = files[:len(files)-1]
		user = w.builder.SolutionUser(req, repoMap, files, triage, rev)
	}
	if !w.fits(system, user) {
		for i := range files {
			trimmed := prompt.TrimFileHeadTail(files[i].Content)
			if trimmed != files[i].Content {
				files[i].Content = trimmed
				files[i].Truncated = true
			}
		}
		user = w.builder.SolutionUser(req, repoMap, files, triage, rev)
	}
	if !w.fits(system, user) {
		rest := llm.EstimateTokens(user) - llm.EstimateTokens(repoMap)
		budget := solutionInputTokenLimit - llm.EstimateTokens(system) - rest
		if budget < minRepoMapTokens {
			budget = minRepoMapTokens
		}
		repoMap = llm.TruncateToTokens(repoMap, budget)
		user = w.builder.SolutionUser(req, repoMap, files, triage, rev)
	}
	return user, files
}

func (w *ArchitectWorker) fits(system, user string) bool {
	return llm.EstimateTokens(system)+llm.EstimateTokens(user) <= solutionInputTokenLimit
}

// knownPaths filters the model's selection down to paths the map
// actually contains.
func knownPaths(paths []string, m *codebase.RepoMap) []string {
	out := paths[:0]
	for _, p := range paths {
		if m.HasPath(p) {
			out = append(out, p)
		}
	}
	return out
}

func filePaths(files []codebase.File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}

// architectComment renders the agent comment recorded with the design.
func architectComment(sol *prompt.Solution, parsed bool) string {
	var sb strings.Builder
	if !parsed {
		sb.WriteString("Solution design ready for review (structured response could not be parsed; see the stored document).\n\n")
	} else {
		sb.WriteString("Solution design ready for review.\n\n")
	}
	sb.WriteString(sol.SolutionSummary)
	if sol.EstimatedComplexity != "" || sol.EstimatedEffort != "" {
		fmt.Fprintf(&sb, "\n\nEstimated complexity: %s; effort: %s",
			orDash(sol.EstimatedComplexity), orDash(sol.EstimatedEffort))
	}
	if len(sol.ClarificationQuestions) > 0 {
		sb.WriteString("\n\nOpen questions:\n")
		for _, q := range sol.ClarificationQuestions {
			fmt.Fprintf(&sb, "- %s\n", q)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
