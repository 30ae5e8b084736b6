package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// deployStagedHandler handles POST /api/v1/deploy/staged.
// Merges every review-approved pull request now, regardless of the
// deployment mode. This is the release button for Staged installations.
func (s *Server) deployStagedHandler(c *gin.Context) {
	orch := s.runner.Orchestrator()
	if orch == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "orchestrator stage is not available"})
		return
	}

	merged, err := orch.DeployStaged(c.Request.Context())
	if err != nil {
		// Partial progress still merged some PRs; report both.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  err.Error(),
			"merged": merged,
		})
		return
	}

	c.JSON(http.StatusOK, &StagedDeployResponse{
		Merged:  merged,
		Message: fmt.Sprintf("%d pull request(s) merged", merged),
	})
}
