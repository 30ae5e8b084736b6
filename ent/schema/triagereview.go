package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TriageReview holds the schema definition for the TriageReview entity.
// One row per triage pass over a request; the newest row per request is
// the authoritative triage outcome.
type TriageReview struct {
	ent.Schema
}

// Fields of the TriageReview.
func (TriageReview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("review_id").
			Unique().
			Immutable(),
		field.Int("request_id").
			Immutable(),
		field.Enum("decision").
			Values("approve", "reject", "clarify"),
		field.Text("reasoning"),
		field.Int("alignment_score").
			Comment("Product objective alignment, 0-100"),
		field.Int("completeness_score").
			Comment("Request completeness, 0-100"),
		field.Int("sales_alignment_score").
			Comment("Sales positioning alignment, 0-100"),
		field.String("suggested_priority").
			Optional().
			Nillable(),
		field.JSON("tags", []string{}).
			Optional(),
		field.JSON("clarification_questions", []string{}).
			Optional(),
		field.Bool("is_duplicate").
			Default(false),
		field.Int("duplicate_of_request_id").
			Optional().
			Nillable(),
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

// Edges of the TriageReview.
func (TriageReview) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("triage_reviews").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TriageReview.
func (TriageReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "created_at"),

		// Budget sums scan by day/month window.
		index.Fields("created_at"),
	}
}
