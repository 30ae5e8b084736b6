package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CodeReview holds the schema definition for the CodeReview entity.
// Records the automated review verdict for an opened pull request.
type CodeReview struct {
	ent.Schema
}

// Fields of the CodeReview.
func (CodeReview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("review_id").
			Unique().
			Immutable(),
		field.Int("request_id").
			Immutable(),
		field.Enum("decision").
			Values("approved", "changes_requested", "failed"),
		field.Text("summary"),
		field.Bool("design_compliance").
			Default(false),
		field.Text("design_compliance_notes").
			Optional(),
		field.Bool("security_pass").
			Default(false),
		field.Text("security_notes").
			Optional(),
		field.Bool("coding_standards_pass").
			Default(false),
		field.Text("coding_standards_notes").
			Optional(),
		field.Int("quality_score").
			Default(1).
			Comment("Clamped to 1-10"),
		field.Int("files_changed").
			Default(0),
		field.Int("lines_added").
			Default(0),
		field.Int("lines_removed").
			Default(0),
		field.Int("pr_number"),
		field.Int("prompt_tokens").
			Default(0),
		field.Int("completion_tokens").
			Default(0),
		field.String("model").
			Optional(),
		field.Int64("duration_ms").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CodeReview.
func (CodeReview) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("code_reviews").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CodeReview.
func (CodeReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "created_at"),
		index.Fields("pr_number"),
	}
}
