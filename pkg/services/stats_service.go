package services

import (
	"context"
	"fmt"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/pkg/models"
)

// StatsService computes the pipeline health counters. Every request falls
// into exactly one of pending / in progress / succeeded / failed; stalled
// is an overlay counting currently-flagged requests.
type StatsService struct {
	client *ent.Client
}

// NewStatsService creates a new StatsService
func NewStatsService(client *ent.Client) *StatsService {
	return &StatsService{client: client}
}

// pendingStates are the states before an implementation session exists.
var pendingStates = []request.State{
	request.StateNew,
	request.StateNeedsClarification,
	request.StateTriaged,
	request.StateArchitectReview,
	request.StateApproved,
}

// PipelineHealth returns the counter snapshot for the health operation.
func (s *StatsService) PipelineHealth(ctx context.Context) (*models.PipelineHealth, error) {
	health := &models.PipelineHealth{}

	stalled, err := s.client.Request.Query().
		Where(request.StallNotifiedAtNotNil()).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count stalled requests: %w", err)
	}
	health.Stalled = stalled

	pending, err := s.client.Request.Query().
		Where(request.StateIn(pendingStates...)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending requests: %w", err)
	}
	health.Pending = pending

	// Done with an unfinished deployment is still in flight.
	inProgress, err := s.client.Request.Query().
		Where(request.Or(
			request.StateEQ(request.StateInProgress),
			request.And(
				request.StateEQ(request.StateDone),
				request.DeploymentStatusIn(
					request.DeploymentStatusPending,
					request.DeploymentStatusInProgress,
				),
			),
		)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count in-progress requests: %w", err)
	}
	health.InProgress = inProgress

	succeeded, err := s.client.Request.Query().
		Where(
			request.StateEQ(request.StateDone),
			request.DeploymentStatusIn(
				request.DeploymentStatusNone,
				request.DeploymentStatusSucceeded,
			),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count succeeded requests: %w", err)
	}
	health.Succeeded = succeeded

	failed, err := s.client.Request.Query().
		Where(request.Or(
			request.StateEQ(request.StateRejected),
			request.And(
				request.StateEQ(request.StateDone),
				request.DeploymentStatusEQ(request.DeploymentStatusFailed),
			),
		)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count failed requests: %w", err)
	}
	health.Failed = failed

	return health, nil
}
