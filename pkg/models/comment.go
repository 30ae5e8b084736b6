package models

import "github.com/conveyor-dev/conveyor/ent/comment"

// CreateCommentInput contains fields for appending a comment to a request.
type CreateCommentInput struct {
	RequestID  int                 `json:"request_id"`
	Author     string              `json:"author"`
	Content    string              `json:"content"`
	IsAgent    bool                `json:"is_agent"`
	ReviewKind *comment.ReviewKind `json:"review_kind,omitempty"`
	ReviewID   string              `json:"review_id,omitempty"`
}

// AgentAuthor is the author recorded on pipeline-generated comments.
const AgentAuthor = "conveyor"
