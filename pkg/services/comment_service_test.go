package services

import (
	"context"
	"testing"
	"time"

	"github.com/conveyor-dev/conveyor/ent/comment"
	"github.com/conveyor-dev/conveyor/pkg/models"
	testdb "github.com/conveyor-dev/conveyor/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_CreateComment(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCommentService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)
	req := createTestRequest(t, client.Client, project.ID)

	t.Run("creates human comment", func(t *testing.T) {
		c, err := service.CreateComment(ctx, models.CreateCommentInput{
			RequestID: req.ID,
			Author:    "alice",
			Content:   "Can we also cover the admin view?",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", c.Author)
		assert.False(t, c.IsAgent)
		assert.Nil(t, c.ReviewKind)
	})

	t.Run("agent comments default their author", func(t *testing.T) {
		kind := comment.ReviewKindTriage
		c, err := service.CreateComment(ctx, models.CreateCommentInput{
			RequestID:  req.ID,
			Content:    "Triage requested clarification.",
			IsAgent:    true,
			ReviewKind: &kind,
			ReviewID:   "tr-1",
		})
		require.NoError(t, err)
		assert.Equal(t, models.AgentAuthor, c.Author)
		require.NotNil(t, c.ReviewKind)
		assert.Equal(t, comment.ReviewKindTriage, *c.ReviewKind)
	})

	t.Run("human comment requires author", func(t *testing.T) {
		_, err := service.CreateComment(ctx, models.CreateCommentInput{
			RequestID: req.ID,
			Content:   "anonymous",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown request maps to not found", func(t *testing.T) {
		_, err := service.CreateComment(ctx, models.CreateCommentInput{
			RequestID: 99999,
			Author:    "alice",
			Content:   "lost",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCommentService_Listing(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCommentService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client)
	req := createTestRequest(t, client.Client, project.ID)

	_, err := service.CreateComment(ctx, models.CreateCommentInput{
		RequestID: req.ID, Author: "alice", Content: "first",
	})
	require.NoError(t, err)

	cutoff := time.Now()

	_, err = service.CreateComment(ctx, models.CreateCommentInput{
		RequestID: req.ID, Content: "agent note", IsAgent: true,
	})
	require.NoError(t, err)
	_, err = service.CreateComment(ctx, models.CreateCommentInput{
		RequestID: req.ID, Author: "bob", Content: "second",
	})
	require.NoError(t, err)

	t.Run("lists thread oldest first", func(t *testing.T) {
		comments, err := service.ListComments(ctx, req.ID)
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, "first", comments[0].Content)
		assert.Equal(t, "second", comments[2].Content)
	})

	t.Run("human comments since cutoff", func(t *testing.T) {
		humans, err := service.ListHumanCommentsSince(ctx, req.ID, &cutoff)
		require.NoError(t, err)
		require.Len(t, humans, 1)
		assert.Equal(t, "bob", humans[0].Author)
	})

	t.Run("nil cutoff returns all human comments", func(t *testing.T) {
		humans, err := service.ListHumanCommentsSince(ctx, req.ID, nil)
		require.NoError(t, err)
		assert.Len(t, humans, 2)
	})
}
