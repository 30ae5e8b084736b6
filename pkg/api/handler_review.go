package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/pkg/models"
)

// decisionInput binds the optional decision body and resolves the actor,
// falling back to the proxy identity headers.
func decisionInput(c *gin.Context) (models.ArchitectDecisionInput, bool) {
	var body DecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return models.ArchitectDecisionInput{}, false
		}
	}

	actor := body.Actor
	if actor == "" {
		actor = requestActor(c)
	}

	return models.ArchitectDecisionInput{
		ReviewID: c.Param("id"),
		Actor:    actor,
		Reason:   body.Reason,
	}, true
}

// approveArchitectHandler handles POST /api/v1/reviews/architect/:id/approve.
// Marks the solution approved and advances the request to approved.
func (s *Server) approveArchitectHandler(c *gin.Context) {
	in, ok := decisionInput(c)
	if !ok {
		return
	}

	req, err := s.reviews.ApproveArchitectReview(c.Request.Context(), in)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// rejectArchitectHandler handles POST /api/v1/reviews/architect/:id/reject.
// Marks the solution rejected and returns the request to triaged for a
// fresh design.
func (s *Server) rejectArchitectHandler(c *gin.Context) {
	in, ok := decisionInput(c)
	if !ok {
		return
	}

	req, err := s.reviews.RejectArchitectReview(c.Request.Context(), in)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// feedbackArchitectHandler handles POST /api/v1/reviews/architect/:id/feedback.
// Records revision feedback; the request stays in architect_review and
// the next architect pass revises the solution against it.
func (s *Server) feedbackArchitectHandler(c *gin.Context) {
	var body FeedbackRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Feedback == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feedback text is required"})
		return
	}

	actor := body.Actor
	if actor == "" {
		actor = requestActor(c)
	}

	review, err := s.reviews.FeedbackArchitectReview(c.Request.Context(), models.ArchitectDecisionInput{
		ReviewID: c.Param("id"),
		Actor:    actor,
		Reason:   body.Feedback,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// overrideTriageHandler handles POST /api/v1/reviews/triage/:id/override.
// Moves the request to a human-chosen verdict state, restricted to the
// states triage itself can produce.
func (s *Server) overrideTriageHandler(c *gin.Context) {
	var body OverrideRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newState := request.State(body.NewState)
	if err := request.StateValidator(newState); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid new_state: " + body.NewState})
		return
	}

	actor := body.Actor
	if actor == "" {
		actor = requestActor(c)
	}

	req, err := s.reviews.OverrideTriage(c.Request.Context(), models.TriageOverrideInput{
		ReviewID: c.Param("id"),
		Actor:    actor,
		NewState: newState,
		Reason:   body.Reason,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}
