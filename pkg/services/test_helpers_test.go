package services

import (
	"context"
	"testing"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/pkg/models"
	"github.com/stretchr/testify/require"
)

// createTestProject inserts a project fixture.
func createTestProject(t *testing.T, client *ent.Client) *ent.Project {
	t.Helper()
	p, err := client.Project.Create().
		SetName("Test Project").
		SetOwner("acme").
		SetRepo("widgets-" + t.Name()).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

// createTestRequest inserts a request fixture in state new.
func createTestRequest(t *testing.T, client *ent.Client, projectID int) *ent.Request {
	t.Helper()
	svc := NewRequestService(client)
	req, err := svc.CreateRequest(context.Background(), models.CreateRequestInput{
		ProjectID:   projectID,
		Title:       "Add search",
		Description: "Users need full-text search over widgets.",
		Kind:        request.KindFeature,
	})
	require.NoError(t, err)
	return req
}

// happyPath is the forward pipeline order used by moveToState.
var happyPath = []request.State{
	request.StateTriaged,
	request.StateArchitectReview,
	request.StateApproved,
	request.StateInProgress,
	request.StateDone,
}

// moveToState walks a request through legal transitions to the target
// state so tests can start from mid-pipeline fixtures.
func moveToState(t *testing.T, client *ent.Client, req *ent.Request, target request.State) *ent.Request {
	t.Helper()
	svc := NewRequestService(client)
	ctx := context.Background()

	if target == req.State {
		return req
	}

	// Side states are one hop from new.
	if target == request.StateRejected || target == request.StateNeedsClarification {
		moved, err := svc.Transition(ctx, req, TransitionInput{To: target})
		require.NoError(t, err)
		return moved
	}

	var err error
	for _, next := range happyPath {
		req, err = svc.Transition(ctx, req, TransitionInput{To: next})
		require.NoError(t, err)
		if next == target {
			break
		}
	}
	require.Equal(t, target, req.State, "moveToState: unreachable target")
	return req
}
