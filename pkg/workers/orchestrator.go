package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/pkg/config"
	"github.com/conveyor-dev/conveyor/pkg/metrics"
	"github.com/conveyor-dev/conveyor/pkg/models"
	"github.com/conveyor-dev/conveyor/pkg/notify"
	"github.com/conveyor-dev/conveyor/pkg/services"
)

// Critical stall grades. The warning thresholds are configurable; a
// request is critical once it sits roughly twice as long.
const (
	criticalClarificationAge = 14 * 24 * time.Hour
	criticalArchitectAge     = 7 * 24 * time.Hour
	criticalApprovedAge      = 3 * 24 * time.Hour
	criticalFailedAge        = 72 * time.Hour
)

// Orchestrator is the supervising stage: it flags stalled requests,
// merges review-approved pull requests in Auto mode, and follows
// deployments through their workflow runs. It also backs the admin
// operations for staged deployment and manual retry.
type Orchestrator struct {
	cfg      *config.Config
	requests *services.RequestService
	notify   *notify.Service
	deploy   *deployer
}

// NewOrchestrator creates the supervising stage.
func NewOrchestrator(d Deps) *Orchestrator {
	return &Orchestrator{
		cfg:      d.Config,
		requests: d.Requests,
		notify:   d.Notify,
		deploy:   newDeployer(d),
	}
}

func (o *Orchestrator) Name() string { return "orchestrator" }

func (o *Orchestrator) Enabled(ps *config.PipelineSettings) bool {
	return ps.Orchestrator.Enabled
}

func (o *Orchestrator) Interval(ps *config.PipelineSettings) time.Duration {
	return time.Duration(ps.Orchestrator.PollSec) * time.Second
}

// Cycle runs the three supervision phases. A phase failure is reported
// but never blocks the later phases.
func (o *Orchestrator) Cycle(ctx context.Context, ps *config.PipelineSettings) error {
	settings := ps.Orchestrator

	var firstErr error
	if err := o.detectStalls(ctx, settings); err != nil {
		firstErr = err
	}
	if settings.DeploymentMode == config.DeploymentModeAuto {
		if _, err := o.deploy.mergeApproved(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := o.deploy.watchDeployments(ctx, ps); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// DeployStaged merges every review-approved pull request regardless of
// the deployment mode. Backs the staged-deployment admin operation.
func (o *Orchestrator) DeployStaged(ctx context.Context) (int, error) {
	return o.deploy.mergeApproved(ctx)
}

// RetryDeployment restarts a failed deployment and resets its retry
// budget. Backs the manual-retry admin operation.
func (o *Orchestrator) RetryDeployment(ctx context.Context, requestID int) error {
	base := o.cfg.Pipeline().Implementation.BaseBranch
	return o.deploy.retryNow(ctx, requestID, base)
}

func (o *Orchestrator) detectStalls(ctx context.Context, settings config.OrchestratorSettings) error {
	now := time.Now()
	for _, q := range stallQueries(settings) {
		stalled, err := o.requests.SelectStalled(ctx, q, now)
		if err != nil {
			return err
		}
		for _, s := range stalled {
			if err := ctx.Err(); err != nil {
				return err
			}
			o.notifyStall(ctx, s, now)
		}
	}
	return nil
}

// stallQueries maps the configured warning thresholds onto the four
// stall scans.
func stallQueries(settings config.OrchestratorSettings) []services.StallQuery {
	return []services.StallQuery{
		{
			State:    request.StateNeedsClarification,
			Warning:  days(settings.NeedsClarificationStaleDays),
			Critical: criticalClarificationAge,
		},
		{
			State:    request.StateArchitectReview,
			Warning:  days(settings.ArchitectReviewStaleDays),
			Critical: criticalArchitectAge,
		},
		{
			State:            request.StateApproved,
			Warning:          days(settings.ApprovedStaleDays),
			Critical:         criticalApprovedAge,
			RequireNoSession: true,
		},
		{
			State:      request.StateInProgress,
			Warning:    time.Duration(settings.FailedStaleHours) * time.Hour,
			Critical:   criticalFailedAge,
			FailedOnly: true,
		},
	}
}

func days(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

// notifyStall flags one stalled request. The conditional flag write
// keeps concurrent orchestrators from double-alerting.
func (o *Orchestrator) notifyStall(ctx context.Context, s models.StalledRequest, now time.Time) {
	req := s.Request
	flagged, err := o.requests.MarkStallNotified(ctx, req.ID, now)
	if err != nil {
		slog.Error("Failed to flag stalled request", "request_id", req.ID, "error", err)
		return
	}
	if !flagged {
		return
	}

	slog.Warn("Request stalled",
		"request_id", req.ID, "state", s.State, "level", s.Level, "since", s.Since)
	metrics.IncStallNotification(string(s.State), string(s.Level))
	o.notify.NotifyStall(ctx, notify.StallInput{
		RequestID:  req.ID,
		Title:      req.Title,
		State:      string(s.State),
		StalledFor: now.Sub(s.Since),
		Critical:   s.Level == models.StallLevelCritical,
		IssueURL:   issueURL(req),
	})
}
