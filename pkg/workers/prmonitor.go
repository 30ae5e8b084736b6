package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/pkg/codehost"
	"github.com/conveyor-dev/conveyor/pkg/config"
	"github.com/conveyor-dev/conveyor/pkg/services"
)

// PRMonitorWorker observes the pull-request lifecycle for every
// request with an active coding session and advances the
// implementation status as the PR opens, merges, or closes.
type PRMonitorWorker struct {
	requests       *services.RequestService
	host           codehost.Host
	effects        *hostEffects
	agentPrincipal string
}

// NewPRMonitorWorker creates the PR lifecycle stage.
func NewPRMonitorWorker(d Deps) *PRMonitorWorker {
	return &PRMonitorWorker{
		requests:       d.Requests,
		host:           d.Host,
		effects:        newHostEffects(d),
		agentPrincipal: d.AgentPrincipal,
	}
}

func (w *PRMonitorWorker) Name() string { return "pr_monitor" }

func (w *PRMonitorWorker) Enabled(ps *config.PipelineSettings) bool {
	return ps.Implementation.Enabled
}

func (w *PRMonitorWorker) Interval(ps *config.PipelineSettings) time.Duration {
	return time.Duration(ps.Implementation.PrPollSec) * time.Second
}

func (w *PRMonitorWorker) Cycle(ctx context.Context, _ *config.PipelineSettings) error {
	batch, err := w.requests.SelectForPRMonitor(ctx)
	if err != nil {
		return err
	}

	for _, req := range batch {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.observe(ctx, req); err != nil {
			slog.Error("PR monitoring failed", "request_id", req.ID, "error", err)
		}
	}
	return nil
}

func (w *PRMonitorWorker) observe(ctx context.Context, req *ent.Request) error {
	if req.ImplementationStatus == nil {
		return nil
	}
	switch *req.ImplementationStatus {
	case request.ImplementationStatusPending, request.ImplementationStatusWorking:
		return w.findPullRequest(ctx, req)
	case request.ImplementationStatusPrOpened:
		return w.trackPullRequest(ctx, req)
	default:
		return nil
	}
}

// findPullRequest looks for the PR the coding agent opened against the
// tracked issue. No PR yet simply means the agent is still working.
func (w *PRMonitorWorker) findPullRequest(ctx context.Context, req *ent.Request) error {
	repo, ok := repoOf(req)
	if !ok {
		return fmt.Errorf("request %d has no project loaded", req.ID)
	}
	if req.IssueNumber == nil {
		return nil
	}

	pr, err := w.host.FindAgentPullRequest(ctx, repo, *req.IssueNumber, w.agentPrincipal)
	if err != nil {
		if errors.Is(err, codehost.ErrNotFound) {
			return nil
		}
		return err
	}
	if pr == nil {
		return nil
	}

	if _, err := w.requests.Transition(ctx, req, services.TransitionInput{
		To:      request.StateInProgress,
		Comment: fmt.Sprintf("Pull request #%d opened by the coding agent: %s", pr.Number, pr.HTMLURL),
		Mutate: func(u *ent.RequestUpdate) {
			u.SetPrNumber(pr.Number).
				SetPrURL(pr.HTMLURL).
				SetBranchName(pr.HeadRef).
				SetImplementationStatus(request.ImplementationStatusPrOpened)
		},
	}); err != nil {
		return err
	}

	w.effects.comment(ctx, req, fmt.Sprintf("Pull request #%d is ready for review.", pr.Number))
	return nil
}

// trackPullRequest watches an open PR until it merges or closes.
func (w *PRMonitorWorker) trackPullRequest(ctx context.Context, req *ent.Request) error {
	repo, ok := repoOf(req)
	if !ok {
		return fmt.Errorf("request %d has no project loaded", req.ID)
	}
	if req.PrNumber == nil {
		return nil
	}

	pr, err := w.host.GetPullRequest(ctx, repo, *req.PrNumber)
	if err != nil {
		return err
	}
	now := time.Now()

	switch {
	case pr.Merged:
		if _, err := w.requests.Transition(ctx, req, services.TransitionInput{
			To:      request.StateDone,
			Comment: fmt.Sprintf("Pull request #%d merged. Deployment pending.", pr.Number),
			Mutate: func(u *ent.RequestUpdate) {
				u.SetImplementationStatus(request.ImplementationStatusPrMerged).
					SetDeploymentStatus(request.DeploymentStatusPending).
					SetCompletedAt(now)
			},
		}); err != nil {
			return err
		}
		w.effects.removeLabel(ctx, req, labelDeployStaged.Name)
		w.effects.label(ctx, req, labelComplete)
		return nil

	case pr.State == "closed":
		_, err := w.requests.Transition(ctx, req, services.TransitionInput{
			To:      request.StateInProgress,
			Comment: fmt.Sprintf("Pull request #%d was closed without merging.", pr.Number),
			Mutate: func(u *ent.RequestUpdate) {
				u.SetImplementationStatus(request.ImplementationStatusFailed).
					SetCompletedAt(now)
			},
		})
		return err

	default:
		return nil
	}
}
