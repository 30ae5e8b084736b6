package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/pkg/codehost"
	"github.com/conveyor-dev/conveyor/pkg/config"
	"github.com/conveyor-dev/conveyor/pkg/prompt"
	"github.com/conveyor-dev/conveyor/pkg/services"
)

// implementationBatchSize bounds one polling cycle. Dispatch is the
// most expensive downstream effect, so it trickles.
const implementationBatchSize = 1

// attachmentPrefix is the staging directory attachments land under on
// the side branch; it is stripped again before merge.
const attachmentPrefix = "_temp-attachments/"

// ImplementationWorker dispatches approved requests to the external
// coding agent: it builds the instruction document from the approved
// solution, stages image attachments, and assigns the issue.
type ImplementationWorker struct {
	cfg      *config.Config
	requests *services.RequestService
	reviews  *services.ReviewService
	host     codehost.Host
	effects  *hostEffects
}

// NewImplementationWorker creates the dispatch stage.
func NewImplementationWorker(d Deps) *ImplementationWorker {
	return &ImplementationWorker{
		cfg:      d.Config,
		requests: d.Requests,
		reviews:  d.Reviews,
		host:     d.Host,
		effects:  newHostEffects(d),
	}
}

func (w *ImplementationWorker) Name() string { return "implementation" }

func (w *ImplementationWorker) Enabled(ps *config.PipelineSettings) bool {
	return ps.Implementation.Enabled
}

func (w *ImplementationWorker) Interval(ps *config.PipelineSettings) time.Duration {
	return time.Duration(ps.Implementation.PollSec) * time.Second
}

// Cycle dispatches at most one request, respecting the concurrent
// session bound. With auto-trigger off, dispatch happens only through
// TriggerRequest.
func (w *ImplementationWorker) Cycle(ctx context.Context, ps *config.PipelineSettings) error {
	settings := ps.Implementation
	if !settings.AutoTrigger {
		return nil
	}

	active, err := w.requests.CountActiveSessions(ctx)
	if err != nil {
		return err
	}
	if active >= settings.MaxConcurrent {
		return nil
	}

	batch, err := w.requests.SelectForImplementation(ctx, implementationBatchSize)
	if err != nil {
		return err
	}

	for _, req := range batch {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.dispatch(ctx, req, settings); err != nil {
			slog.Error("Implementation dispatch failed", "request_id", req.ID, "error", err)
		}
	}
	return nil
}

// TriggerRequest dispatches one request immediately, bypassing the
// auto-trigger switch and the concurrency bound. State preconditions
// still hold: only an approved request without a session can dispatch.
func (w *ImplementationWorker) TriggerRequest(ctx context.Context, requestID int) error {
	req, err := w.requests.GetRequest(ctx, requestID, true)
	if err != nil {
		return err
	}
	if req.State != request.StateApproved || req.SessionID != nil {
		return fmt.Errorf("%w: request %d is not awaiting dispatch", services.ErrInvalidTransition, requestID)
	}
	if req.IssueNumber == nil {
		if _, err := w.effects.ensureIssue(ctx, req); err != nil {
			return err
		}
	}
	return w.dispatch(ctx, req, w.cfg.Pipeline().Implementation)
}

func (w *ImplementationWorker) dispatch(ctx context.Context, req *ent.Request, settings config.ImplementationSettings) error {
	repo, ok := repoOf(req)
	if !ok {
		return fmt.Errorf("request %d has no project loaded", req.ID)
	}
	if req.IssueNumber == nil {
		return fmt.Errorf("request %d has no tracked issue", req.ID)
	}

	approved, err := w.reviews.LatestApprovedArchitectReview(ctx, req.ID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			slog.Warn("Approved request has no approved architect review, skipping", "request_id", req.ID)
			return nil
		}
		return err
	}
	solution, err := prompt.DecodeSolution(approved.SolutionJSON)
	if err != nil {
		return fmt.Errorf("request %d solution document: %w", req.ID, err)
	}

	doc := prompt.BuildInstructionDocument(req, solution)

	branch := settings.BaseBranch
	attachments, err := w.requests.Attachments(ctx, req.ID)
	if err != nil {
		return err
	}
	if images := imageAttachments(attachments); len(images) > 0 {
		sideBranch := fmt.Sprintf("attachments/request-%d", req.ID)
		paths, err := w.stageAttachments(ctx, repo, sideBranch, settings.BaseBranch, req.ID, images)
		if err != nil {
			slog.Warn("Attachment staging failed, dispatching from base branch",
				"request_id", req.ID, "error", err)
		} else {
			branch = sideBranch
			doc += "\n\n" + prompt.FormatAttachmentsSection(sideBranch, paths)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := w.host.AssignAgent(ctx, repo, *req.IssueNumber, codehost.AgentAssignment{
		Instructions: doc,
		BaseBranch:   branch,
		Model:        settings.Model,
	}); err != nil {
		return fmt.Errorf("failed to assign coding agent for request %d: %w", req.ID, err)
	}

	now := time.Now()
	session := sessionIdentifier(req.ID, now)
	if _, err := w.requests.Transition(ctx, req, services.TransitionInput{
		To:      request.StateInProgress,
		Comment: fmt.Sprintf("Implementation dispatched to the coding agent as %s on branch %s.", session, branch),
		Mutate: func(u *ent.RequestUpdate) {
			u.SetSessionID(session).
				SetImplementationStatus(request.ImplementationStatusPending).
				SetTriggeredAt(now).
				SetBranchDeleted(false)
		},
	}); err != nil {
		return err
	}

	w.effects.label(ctx, req, labelImplementing)
	w.effects.comment(ctx, req, fmt.Sprintf("Coding session %s started.", session))
	return nil
}

// stageAttachments publishes image attachments on a short-lived branch
// so the coding agent can fetch them. Any failure tears the branch down
// and reports the error; the caller falls back to the base branch.
func (w *ImplementationWorker) stageAttachments(ctx context.Context, repo codehost.Repo, branch, base string, requestID int, attachments []*ent.Attachment) ([]string, error) {
	if err := w.host.EnsureBranch(ctx, repo, branch, base); err != nil {
		return nil, fmt.Errorf("failed to create attachment branch: %w", err)
	}

	files := make([]codehost.CommitFile, 0, len(attachments))
	paths := make([]string, 0, len(attachments))
	for _, att := range attachments {
		p := fmt.Sprintf("%s%d/%s", attachmentPrefix, requestID, att.FileName)
		files = append(files, codehost.CommitFile{Path: p, Content: att.Data})
		paths = append(paths, p)
	}

	message := fmt.Sprintf("Stage attachments for request %d", requestID)
	if err := w.host.CommitFiles(ctx, repo, branch, message, files); err != nil {
		if delErr := w.host.DeleteBranch(ctx, repo, branch); delErr != nil {
			slog.Warn("Failed to clean up attachment branch", "branch", branch, "error", delErr)
		}
		return nil, fmt.Errorf("failed to commit attachments: %w", err)
	}
	return paths, nil
}

func imageAttachments(attachments []*ent.Attachment) []*ent.Attachment {
	var out []*ent.Attachment
	for _, att := range attachments {
		if strings.HasPrefix(att.ContentType, "image/") {
			out = append(out, att)
		}
	}
	return out
}

// sessionIdentifier names one coding-agent dispatch. The timestamp is
// UTC so identifiers sort chronologically across pods.
func sessionIdentifier(requestID int, now time.Time) string {
	return fmt.Sprintf("session-%d-%s", requestID, now.UTC().Format("20060102150405"))
}
