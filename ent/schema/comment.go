package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Comment holds the schema definition for the Comment entity.
// Both humans and pipeline agents write comments; the is_agent flag is
// what the triage and architect re-review predicates key on.
type Comment struct {
	ent.Schema
}

// Fields of the Comment.
func (Comment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("comment_id").
			Unique().
			Immutable(),
		field.Int("request_id").
			Immutable(),
		field.String("author"),
		field.Text("content"),
		field.Bool("is_agent").
			Default(false).
			Comment("True when written by a pipeline stage, false for humans"),
		field.Enum("review_kind").
			Values("triage", "architect", "code_review").
			Optional().
			Nillable().
			Comment("Set when the comment records a review outcome"),
		field.String("review_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Comment.
func (Comment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("comments").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Comment.
func (Comment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "created_at"),
		index.Fields("request_id", "is_agent", "created_at"),
	}
}
