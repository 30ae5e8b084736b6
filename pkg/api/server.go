// Package api exposes the pipeline's operations surface over HTTP: the
// admin operations the intake layer calls (re-queue, review decisions,
// implementation and deployment control), runtime pipeline settings,
// and the health and metrics endpoints. Request CRUD itself lives in
// the intake layer, not here.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/conveyor-dev/conveyor/pkg/config"
	"github.com/conveyor-dev/conveyor/pkg/database"
	"github.com/conveyor-dev/conveyor/pkg/services"
	"github.com/conveyor-dev/conveyor/pkg/workers"
)

// Server is the HTTP API server.
type Server struct {
	cfg      *config.Config
	db       *database.Client
	requests *services.RequestService
	reviews  *services.ReviewService
	stats    *services.StatsService
	runner   *workers.Runner

	http *http.Server
}

// NewServer creates a new API server.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	requests *services.RequestService,
	reviews *services.ReviewService,
	stats *services.StatsService,
	runner *workers.Runner,
) *Server {
	return &Server{
		cfg:      cfg,
		db:       db,
		requests: requests,
		reviews:  reviews,
		stats:    stats,
		runner:   runner,
	}
}

// Router builds the route table.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/healthz", s.livenessHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", s.healthHandler)

		req := v1.Group("/requests/:id")
		{
			req.POST("/triage", s.queueTriageHandler)
			req.POST("/architect", s.queueArchitectHandler)
			req.POST("/implement", s.triggerImplementationHandler)
			req.POST("/implementation/reject", s.rejectImplementationHandler)
			req.POST("/deploy/retry", s.retryDeploymentHandler)
		}

		v1.POST("/reviews/architect/:id/approve", s.approveArchitectHandler)
		v1.POST("/reviews/architect/:id/reject", s.rejectArchitectHandler)
		v1.POST("/reviews/architect/:id/feedback", s.feedbackArchitectHandler)
		v1.POST("/reviews/triage/:id/override", s.overrideTriageHandler)

		v1.POST("/deploy/staged", s.deployStagedHandler)

		v1.GET("/config/pipeline", s.getPipelineHandler)
		v1.PUT("/config/pipeline", s.updatePipelineHandler)
	}

	return r
}

// Start runs the HTTP server. Blocks until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown stops the HTTP server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
