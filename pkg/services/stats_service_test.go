package services

import (
	"context"
	"testing"
	"time"

	"github.com/conveyor-dev/conveyor/ent/request"
	testdb "github.com/conveyor-dev/conveyor/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_PipelineHealth(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStatsService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)

	// Two pending (new, triaged), one in progress, one deploying, one
	// succeeded, one rejected, one failed deployment.
	createTestRequest(t, client.Client, project.ID)
	triaged := createTestRequest(t, client.Client, project.ID)
	moveToState(t, client.Client, triaged, request.StateTriaged)

	inProgress := createTestRequest(t, client.Client, project.ID)
	moveToState(t, client.Client, inProgress, request.StateInProgress)

	deploying := createTestRequest(t, client.Client, project.ID)
	deploying = moveToState(t, client.Client, deploying, request.StateDone)
	require.NoError(t, client.Request.UpdateOneID(deploying.ID).
		SetDeploymentStatus(request.DeploymentStatusInProgress).
		Exec(ctx))

	succeeded := createTestRequest(t, client.Client, project.ID)
	succeeded = moveToState(t, client.Client, succeeded, request.StateDone)
	require.NoError(t, client.Request.UpdateOneID(succeeded.ID).
		SetDeploymentStatus(request.DeploymentStatusSucceeded).
		Exec(ctx))

	rejected := createTestRequest(t, client.Client, project.ID)
	moveToState(t, client.Client, rejected, request.StateRejected)

	deployFailed := createTestRequest(t, client.Client, project.ID)
	deployFailed = moveToState(t, client.Client, deployFailed, request.StateDone)
	require.NoError(t, client.Request.UpdateOneID(deployFailed.ID).
		SetDeploymentStatus(request.DeploymentStatusFailed).
		Exec(ctx))

	// One of the pending requests is flagged stalled.
	require.NoError(t, client.Request.UpdateOneID(triaged.ID).
		SetStallNotifiedAt(time.Now()).
		Exec(ctx))

	health, err := service.PipelineHealth(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, health.Stalled)
	assert.Equal(t, 2, health.Pending)
	assert.Equal(t, 2, health.InProgress, "deploying requests still count as in flight")
	assert.Equal(t, 1, health.Succeeded)
	assert.Equal(t, 2, health.Failed, "rejected plus failed deployment")
}
