package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/conveyor-dev/conveyor/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthCheckTimeout bounds the database ping inside health handlers.
const healthCheckTimeout = 5 * time.Second

// livenessHandler handles GET /healthz.
// Minimal unauthenticated liveness: the process is up and the database
// answers a ping. External dependencies (code host, LLM) are excluded so
// an upstream outage does not get the orchestrator pod restarted.
func (s *Server) livenessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if _, err := s.db.Health(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": healthStatusUnhealthy,
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": healthStatusHealthy})
}

// healthHandler handles GET /api/v1/health.
// Returns the pipeline counters required by the stats surface plus
// per-worker snapshots. A worker whose last cycle errored degrades the
// overall status; only a dead database makes it unhealthy.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	resp := &HealthResponse{
		Status:  healthStatusHealthy,
		Version: version.GitCommit,
	}

	dbHealth, err := s.db.Health(ctx)
	resp.Database = dbHealth
	if err != nil {
		resp.Status = healthStatusUnhealthy
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	pipeline, err := s.stats.PipelineHealth(ctx)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Pipeline = pipeline

	if s.runner != nil {
		resp.Workers = s.runner.Health()
		for _, w := range resp.Workers {
			if w.LastError != "" {
				resp.Status = healthStatusDegraded
				break
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
