package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conveyor-dev/conveyor/pkg/config"
)

// getPipelineHandler handles GET /api/v1/config/pipeline.
func (s *Server) getPipelineHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.cfg.Pipeline())
}

// updatePipelineHandler handles PUT /api/v1/config/pipeline.
// The body decodes over the current snapshot, so fields omitted from
// the body keep their current values. Workers pick up the new settings
// on their next cycle.
func (s *Server) updatePipelineHandler(c *gin.Context) {
	ps := s.cfg.Pipeline().Clone()
	if err := c.ShouldBindJSON(ps); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.cfg.UpdatePipeline(ps); err != nil {
		if errors.Is(err, config.ErrValidationFailed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("Failed to update pipeline settings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("Pipeline settings updated", "actor", requestActor(c))
	c.JSON(http.StatusOK, s.cfg.Pipeline())
}
