package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// requestID parses the :id path parameter. On failure it writes the 400
// response and reports false.
func requestID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// queueTriageHandler handles POST /api/v1/requests/:id/triage.
// Resets the request to new with cleared triage counters so the triage
// worker picks it up on its next cycle.
func (s *Server) queueTriageHandler(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	req, err := s.requests.ResetTriage(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// queueArchitectHandler handles POST /api/v1/requests/:id/architect.
// Resets the request to triaged with cleared architect counters.
func (s *Server) queueArchitectHandler(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	req, err := s.requests.ResetArchitect(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// triggerImplementationHandler handles POST /api/v1/requests/:id/implement.
// Dispatches an approved request to the coding agent immediately,
// bypassing the auto-trigger gate and the concurrency cap.
func (s *Server) triggerImplementationHandler(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	impl := s.runner.Implementation()
	if impl == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "implementation stage is not available"})
		return
	}

	if err := impl.TriggerRequest(c.Request.Context(), id); err != nil {
		mapServiceError(c, err)
		return
	}

	req, err := s.requests.GetRequest(c.Request.Context(), id, false)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// rejectImplementationHandler handles POST /api/v1/requests/:id/implementation/reject.
// Returns an in-progress request to approved with its coding-session
// fields cleared so it can be dispatched again.
func (s *Server) rejectImplementationHandler(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	var body RejectImplementationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	req, err := s.requests.ClearImplementation(c.Request.Context(), id, body.Reason)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// retryDeploymentHandler handles POST /api/v1/requests/:id/deploy/retry.
// Restarts a failed deployment and resets its retry budget.
func (s *Server) retryDeploymentHandler(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	orch := s.runner.Orchestrator()
	if orch == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "orchestrator stage is not available"})
		return
	}

	if err := orch.RetryDeployment(c.Request.Context(), id); err != nil {
		mapServiceError(c, err)
		return
	}

	req, err := s.requests.GetRequest(c.Request.Context(), id, false)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}
