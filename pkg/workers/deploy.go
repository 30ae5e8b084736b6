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
	"github.com/conveyor-dev/conveyor/pkg/metrics"
	"github.com/conveyor-dev/conveyor/pkg/notify"
	"github.com/conveyor-dev/conveyor/pkg/services"
)

const (
	// deployWatchSlack absorbs clock skew between the store and the
	// code host when matching a workflow run to a merge.
	deployWatchSlack = 2 * time.Minute

	// deployRunListLimit bounds the run listing per workflow file.
	deployRunListLimit = 5
)

// deployer merges review-approved pull requests and follows the
// deployment workflows they trigger through to success or failure.
// It is driven by the orchestrator cycle and by the admin operations.
type deployer struct {
	requests  *services.RequestService
	host      codehost.Host
	effects   *hostEffects
	notify    *notify.Service
	workflows []string
}

func newDeployer(d Deps) *deployer {
	return &deployer{
		requests:  d.Requests,
		host:      d.Host,
		effects:   newHostEffects(d),
		notify:    d.Notify,
		workflows: d.DeployWorkflows,
	}
}

// mergeApproved merges every review-approved pull request and returns
// how many landed. Per-request failures are logged; the sweep continues.
func (dp *deployer) mergeApproved(ctx context.Context) (int, error) {
	batch, err := dp.requests.SelectMergeable(ctx)
	if err != nil {
		return 0, err
	}

	merged := 0
	for _, req := range batch {
		if err := ctx.Err(); err != nil {
			return merged, err
		}
		ok, err := dp.mergeOne(ctx, req.ID)
		if err != nil {
			slog.Error("Merge failed", "request_id", req.ID, "error", err)
			continue
		}
		if ok {
			merged++
		}
	}
	return merged, nil
}

// mergeRequest merges a single review-approved request.
func (dp *deployer) mergeRequest(ctx context.Context, requestID int) error {
	_, err := dp.mergeOne(ctx, requestID)
	return err
}

// mergeOne refetches the request, scrubs staged attachments from the
// branch, and merges the pull request. Returns false without error when
// the merge must wait for the next cycle (branch behind base) or the
// request raced out of the mergeable window.
func (dp *deployer) mergeOne(ctx context.Context, requestID int) (bool, error) {
	req, err := dp.requests.GetRequest(ctx, requestID, true)
	if err != nil {
		return false, err
	}
	if req.State != request.StateInProgress ||
		req.ImplementationStatus == nil ||
		*req.ImplementationStatus != request.ImplementationStatusReviewApproved {
		return false, nil
	}
	repo, ok := repoOf(req)
	if !ok {
		return false, fmt.Errorf("request %d has no project loaded", req.ID)
	}
	if req.PrNumber == nil || req.BranchName == nil {
		return false, fmt.Errorf("request %d has no pull request recorded", req.ID)
	}

	// Staged attachments must never reach the base branch.
	if err := dp.host.RemovePathPrefix(ctx, repo, *req.BranchName, attachmentPrefix); err != nil {
		return false, fmt.Errorf("failed to scrub attachments from %s: %w", *req.BranchName, err)
	}

	pr, err := dp.host.GetPullRequest(ctx, repo, *req.PrNumber)
	if err != nil {
		return false, err
	}

	switch {
	case pr.Merged:
		// Merged outside the pipeline; converge on the bookkeeping.

	case pr.State == "closed":
		_, err := dp.requests.Transition(ctx, req, services.TransitionInput{
			To:      request.StateInProgress,
			Comment: fmt.Sprintf("Pull request #%d was closed without merging.", pr.Number),
			Mutate: func(u *ent.RequestUpdate) {
				u.SetImplementationStatus(request.ImplementationStatusFailed).
					SetCompletedAt(time.Now())
			},
		})
		return false, err

	case pr.MergeableState == "behind":
		if err := dp.host.UpdatePullRequestBranch(ctx, repo, pr.Number); err != nil {
			return false, fmt.Errorf("failed to refresh branch of #%d: %w", pr.Number, err)
		}
		slog.Info("Branch refreshed from base, merge deferred",
			"request_id", req.ID, "pr", pr.Number)
		return false, nil

	default:
		if err := dp.host.MergePullRequest(ctx, repo, pr.Number, codehost.MergeInput{
			CommitTitle:   fmt.Sprintf("%s (request %d)", req.Title, req.ID),
			CommitMessage: fmt.Sprintf("Merges PR #%d for pipeline request %d.", pr.Number, req.ID),
		}); err != nil {
			return false, fmt.Errorf("failed to merge #%d: %w", pr.Number, err)
		}
	}

	if _, err := dp.requests.Transition(ctx, req, services.TransitionInput{
		To:      request.StateDone,
		Comment: fmt.Sprintf("Pull request #%d merged. Deployment pending.", pr.Number),
		Mutate: func(u *ent.RequestUpdate) {
			u.SetImplementationStatus(request.ImplementationStatusPrMerged).
				SetDeploymentStatus(request.DeploymentStatusPending).
				SetCompletedAt(time.Now())
		},
	}); err != nil {
		return false, err
	}

	if err := dp.host.DeleteBranch(ctx, repo, *req.BranchName); err != nil {
		slog.Warn("Failed to delete merged branch",
			"request_id", req.ID, "branch", *req.BranchName, "error", err)
	} else if err := dp.requests.MarkBranchDeleted(ctx, req.ID); err != nil {
		slog.Warn("Failed to record branch cleanup", "request_id", req.ID, "error", err)
	}

	dp.effects.removeLabel(ctx, req, labelDeployStaged.Name)
	dp.effects.label(ctx, req, labelComplete)
	slog.Info("Pull request merged", "request_id", req.ID, "pr", pr.Number)
	return true, nil
}

// watchDeployments advances the deployment status of every merged
// request: it matches pending requests to workflow runs, polls running
// deployments, and retries failed ones.
func (dp *deployer) watchDeployments(ctx context.Context, ps *config.PipelineSettings) error {
	batch, err := dp.requests.SelectForDeploymentWatch(ctx)
	if err != nil {
		return err
	}

	for _, req := range batch {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := dp.observeDeployment(ctx, req, ps); err != nil {
			slog.Error("Deployment watch failed", "request_id", req.ID, "error", err)
		}
	}
	return nil
}

func (dp *deployer) observeDeployment(ctx context.Context, req *ent.Request, ps *config.PipelineSettings) error {
	switch req.DeploymentStatus {
	case request.DeploymentStatusPending:
		return dp.findDeploymentRun(ctx, req, ps.Implementation.BaseBranch)
	case request.DeploymentStatusInProgress:
		return dp.trackDeploymentRun(ctx, req)
	case request.DeploymentStatusFailed:
		return dp.retryFailedDeployment(ctx, req, ps)
	default:
		return nil
	}
}

// findDeploymentRun attaches a pending deployment to a workflow run.
// With a run already recorded (a re-run of failed jobs) that run is
// watched directly; otherwise the freshest run created since the merge
// is adopted. No matching run yet means the push has not triggered one.
func (dp *deployer) findDeploymentRun(ctx context.Context, req *ent.Request, base string) error {
	repo, ok := repoOf(req)
	if !ok {
		return fmt.Errorf("request %d has no project loaded", req.ID)
	}

	if req.DeploymentRunID != nil {
		run, err := dp.host.GetWorkflowRun(ctx, repo, *req.DeploymentRunID)
		if errors.Is(err, codehost.ErrNotFound) {
			_, err := dp.requests.Transition(ctx, req, services.TransitionInput{
				To:      request.StateDone,
				Comment: fmt.Sprintf("Deployment run %d no longer exists; matching a fresh run.", *req.DeploymentRunID),
				Mutate:  func(u *ent.RequestUpdate) { u.ClearDeploymentRunID() },
			})
			return err
		}
		if err != nil {
			return err
		}
		if run.Status == "completed" {
			return dp.finishDeployment(ctx, req, run)
		}
		_, err = dp.requests.Transition(ctx, req, services.TransitionInput{
			To:      request.StateDone,
			Comment: fmt.Sprintf("Deployment run %d restarted.", run.ID),
			Mutate: func(u *ent.RequestUpdate) {
				u.SetDeploymentStatus(request.DeploymentStatusInProgress)
			},
		})
		return err
	}

	horizon := req.UpdatedAt.Add(-deployWatchSlack)
	var newest *codehost.WorkflowRun
	for _, wf := range dp.workflows {
		runs, err := dp.host.ListWorkflowRuns(ctx, repo, wf, base, deployRunListLimit)
		if err != nil {
			slog.Warn("Failed to list workflow runs",
				"request_id", req.ID, "workflow", wf, "error", err)
			continue
		}
		for i := range runs {
			run := &runs[i]
			if run.CreatedAt.Before(horizon) {
				continue
			}
			if newest == nil || run.CreatedAt.After(newest.CreatedAt) {
				newest = run
			}
		}
	}
	if newest == nil {
		return nil
	}

	_, err := dp.requests.Transition(ctx, req, services.TransitionInput{
		To:      request.StateDone,
		Comment: fmt.Sprintf("Deployment run %d (%s) started.", newest.ID, newest.Name),
		Mutate: func(u *ent.RequestUpdate) {
			u.SetDeploymentStatus(request.DeploymentStatusInProgress).
				SetDeploymentRunID(newest.ID)
		},
	})
	return err
}

// trackDeploymentRun polls the recorded run until it completes.
func (dp *deployer) trackDeploymentRun(ctx context.Context, req *ent.Request) error {
	repo, ok := repoOf(req)
	if !ok {
		return fmt.Errorf("request %d has no project loaded", req.ID)
	}
	if req.DeploymentRunID == nil {
		_, err := dp.requests.Transition(ctx, req, services.TransitionInput{
			To:      request.StateDone,
			Comment: "Deployment run handle lost; matching a fresh run.",
			Mutate: func(u *ent.RequestUpdate) {
				u.SetDeploymentStatus(request.DeploymentStatusPending)
			},
		})
		return err
	}

	run, err := dp.host.GetWorkflowRun(ctx, repo, *req.DeploymentRunID)
	if errors.Is(err, codehost.ErrNotFound) {
		_, err := dp.requests.Transition(ctx, req, services.TransitionInput{
			To:      request.StateDone,
			Comment: fmt.Sprintf("Deployment run %d no longer exists; matching a fresh run.", *req.DeploymentRunID),
			Mutate: func(u *ent.RequestUpdate) {
				u.SetDeploymentStatus(request.DeploymentStatusPending).
					ClearDeploymentRunID()
			},
		})
		return err
	}
	if err != nil {
		return err
	}
	if run.Status != "completed" {
		return nil
	}
	return dp.finishDeployment(ctx, req, run)
}

// finishDeployment records the outcome of a completed workflow run.
// Failure only flips the status; the retry decision happens on the next
// cycle so a crash between the two steps loses nothing.
func (dp *deployer) finishDeployment(ctx context.Context, req *ent.Request, run *codehost.WorkflowRun) error {
	if run.Conclusion == "success" {
		now := time.Now()
		if _, err := dp.requests.Transition(ctx, req, services.TransitionInput{
			To:      request.StateDone,
			Comment: fmt.Sprintf("Deployment run %d succeeded.", run.ID),
			Mutate: func(u *ent.RequestUpdate) {
				u.SetDeploymentStatus(request.DeploymentStatusSucceeded).
					SetDeployedAt(now).
					SetDeploymentRetryCount(0)
			},
		}); err != nil {
			return err
		}
		metrics.IncDeployOutcome(notify.DeploySucceeded)
		slog.Info("Deployment succeeded", "request_id", req.ID, "run_id", run.ID)
		dp.notify.NotifyDeployment(ctx, notify.DeploymentInput{
			RequestID: req.ID,
			Title:     req.Title,
			Status:    notify.DeploySucceeded,
			Workflow:  run.Name,
			RunURL:    run.HTMLURL,
		})
		return nil
	}

	if _, err := dp.requests.Transition(ctx, req, services.TransitionInput{
		To:      request.StateDone,
		Comment: fmt.Sprintf("Deployment run %d finished with conclusion %q.", run.ID, run.Conclusion),
		Mutate: func(u *ent.RequestUpdate) {
			u.SetDeploymentStatus(request.DeploymentStatusFailed)
		},
	}); err != nil {
		return err
	}
	metrics.IncDeployOutcome(notify.DeployFailed)
	slog.Warn("Deployment failed",
		"request_id", req.ID, "run_id", run.ID, "conclusion", run.Conclusion)
	return nil
}

// retryFailedDeployment drives the automatic retry ladder. The first
// retry re-runs the failed jobs of the recorded run; later retries
// dispatch fresh workflow runs. Exhausted retries flag the request
// stalled and notify once.
func (dp *deployer) retryFailedDeployment(ctx context.Context, req *ent.Request, ps *config.PipelineSettings) error {
	settings := ps.Orchestrator
	repo, ok := repoOf(req)
	if !ok {
		return fmt.Errorf("request %d has no project loaded", req.ID)
	}

	if req.DeploymentRetryCount >= settings.MaxDeployRetries {
		flagged, err := dp.requests.MarkStallNotified(ctx, req.ID, time.Now())
		if err != nil {
			return err
		}
		if flagged {
			slog.Error("Deployment retries exhausted",
				"request_id", req.ID, "attempts", req.DeploymentRetryCount)
			dp.notify.NotifyDeployment(ctx, notify.DeploymentInput{
				RequestID: req.ID,
				Title:     req.Title,
				Status:    notify.DeployFailed,
				Attempt:   req.DeploymentRetryCount,
			})
		}
		return nil
	}

	// Kick before the status flips: a failed kick leaves the request
	// in the failed status and this cycle repeats.
	rerun := req.DeploymentRetryCount == 0 && req.DeploymentRunID != nil
	if rerun {
		if err := dp.host.RerunFailedJobs(ctx, repo, *req.DeploymentRunID); err != nil {
			return fmt.Errorf("failed to re-run deployment jobs: %w", err)
		}
	} else {
		for _, wf := range dp.workflows {
			if err := dp.host.DispatchWorkflow(ctx, repo, wf, ps.Implementation.BaseBranch); err != nil {
				return fmt.Errorf("failed to dispatch %s: %w", wf, err)
			}
		}
	}

	attempt := req.DeploymentRetryCount + 1
	if _, err := dp.requests.Transition(ctx, req, services.TransitionInput{
		To:      request.StateDone,
		Comment: fmt.Sprintf("Deployment retry %d of %d started.", attempt, settings.MaxDeployRetries),
		Mutate: func(u *ent.RequestUpdate) {
			u.SetDeploymentStatus(request.DeploymentStatusPending).
				AddDeploymentRetryCount(1)
			if !rerun {
				u.ClearDeploymentRunID()
			}
		},
	}); err != nil {
		return err
	}
	metrics.IncDeployOutcome(notify.DeployRetrying)
	dp.notify.NotifyDeployment(ctx, notify.DeploymentInput{
		RequestID: req.ID,
		Title:     req.Title,
		Status:    notify.DeployRetrying,
		Attempt:   attempt,
	})
	return nil
}

// retryNow restarts a failed deployment on operator request and resets
// the automatic retry budget.
func (dp *deployer) retryNow(ctx context.Context, requestID int, base string) error {
	req, err := dp.requests.GetRequest(ctx, requestID, true)
	if err != nil {
		return err
	}
	if req.State != request.StateDone || req.DeploymentStatus != request.DeploymentStatusFailed {
		return fmt.Errorf("%w: request %d has no failed deployment", services.ErrInvalidTransition, requestID)
	}
	repo, ok := repoOf(req)
	if !ok {
		return fmt.Errorf("request %d has no project loaded", req.ID)
	}

	rerun := req.DeploymentRunID != nil
	if rerun {
		if err := dp.host.RerunFailedJobs(ctx, repo, *req.DeploymentRunID); err != nil {
			return fmt.Errorf("failed to re-run deployment jobs: %w", err)
		}
	} else {
		for _, wf := range dp.workflows {
			if err := dp.host.DispatchWorkflow(ctx, repo, wf, base); err != nil {
				return fmt.Errorf("failed to dispatch %s: %w", wf, err)
			}
		}
	}

	_, err = dp.requests.Transition(ctx, req, services.TransitionInput{
		To:      request.StateDone,
		Comment: "Deployment restarted by an operator.",
		Mutate: func(u *ent.RequestUpdate) {
			u.SetDeploymentStatus(request.DeploymentStatusPending).
				SetDeploymentRetryCount(0).
				ClearStallNotifiedAt()
			if !rerun {
				u.ClearDeploymentRunID()
			}
		},
	})
	return err
}
