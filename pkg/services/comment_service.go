package services

import (
	"context"
	"fmt"
	"time"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/comment"
	"github.com/conveyor-dev/conveyor/pkg/models"
	"github.com/google/uuid"
)

// CommentService manages the conversation thread attached to each request.
type CommentService struct {
	client *ent.Client
}

// NewCommentService creates a new CommentService
func NewCommentService(client *ent.Client) *CommentService {
	return &CommentService{client: client}
}

// CreateComment appends a comment to a request's thread.
func (s *CommentService) CreateComment(ctx context.Context, in models.CreateCommentInput) (*ent.Comment, error) {
	if in.RequestID == 0 {
		return nil, NewValidationError("request_id", "required")
	}
	if in.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	author := in.Author
	if author == "" {
		if !in.IsAgent {
			return nil, NewValidationError("author", "required")
		}
		author = models.AgentAuthor
	}

	builder := s.client.Comment.Create().
		SetID(uuid.New().String()).
		SetRequestID(in.RequestID).
		SetAuthor(author).
		SetContent(in.Content).
		SetIsAgent(in.IsAgent)

	if in.ReviewKind != nil {
		builder.SetReviewKind(*in.ReviewKind)
		if in.ReviewID != "" {
			builder.SetReviewID(in.ReviewID)
		}
	}

	c, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: request %d", ErrNotFound, in.RequestID)
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return c, nil
}

// ListComments returns a request's thread, oldest first.
func (s *CommentService) ListComments(ctx context.Context, requestID int) ([]*ent.Comment, error) {
	comments, err := s.client.Comment.Query().
		Where(comment.RequestIDEQ(requestID)).
		Order(ent.Asc(comment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// ListHumanCommentsSince returns non-agent comments created after the
// given time (all of them when since is nil), oldest first. Review stages
// feed these to the model as the "what changed since last pass" context.
func (s *CommentService) ListHumanCommentsSince(ctx context.Context, requestID int, since *time.Time) ([]*ent.Comment, error) {
	query := s.client.Comment.Query().
		Where(
			comment.RequestIDEQ(requestID),
			comment.IsAgentEQ(false),
		)
	if since != nil {
		query = query.Where(comment.CreatedAtGT(*since))
	}
	comments, err := query.Order(ent.Asc(comment.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list human comments: %w", err)
	}
	return comments, nil
}
