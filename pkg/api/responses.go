package api

import (
	"github.com/conveyor-dev/conveyor/pkg/database"
	"github.com/conveyor-dev/conveyor/pkg/models"
	"github.com/conveyor-dev/conveyor/pkg/workers"
)

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database,omitempty"`
	Pipeline *models.PipelineHealth `json:"pipeline,omitempty"`
	Workers  []workers.WorkerHealth `json:"workers,omitempty"`
}

// StagedDeployResponse is returned by POST /api/v1/deploy/staged.
type StagedDeployResponse struct {
	Merged  int    `json:"merged"`
	Message string `json:"message"`
}
