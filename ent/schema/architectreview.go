package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ArchitectReview holds the schema definition for the ArchitectReview
// entity. Stores the two-phase solution design for a triaged request,
// including the full solution document as submitted-for-approval JSON.
type ArchitectReview struct {
	ent.Schema
}

// Fields of the ArchitectReview.
func (ArchitectReview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("review_id").
			Unique().
			Immutable(),
		field.Int("request_id").
			Immutable(),
		field.Text("solution_summary"),
		field.Text("approach"),
		field.Text("solution_json").
			Comment("Full solution document, verbatim JSON"),
		field.String("estimated_complexity").
			Optional(),
		field.String("estimated_effort").
			Optional(),
		field.Int("files_analyzed").
			Default(0).
			Comment("Count of repository files read during step 2"),
		field.JSON("file_paths", []string{}).
			Optional().
			Comment("Paths whose content was fed to the model"),
		field.Int("step1_prompt_tokens").
			Default(0),
		field.Int("step1_completion_tokens").
			Default(0),
		field.Int("step2_prompt_tokens").
			Default(0),
		field.Int("step2_completion_tokens").
			Default(0),
		field.String("model").
			Optional(),
		field.Int64("duration_ms").
			Default(0),
		field.Enum("decision").
			Values("pending", "approved", "rejected", "revised").
			Default("pending"),
		field.Text("human_feedback").
			Optional().
			Nillable(),
		field.String("approved_by").
			Optional().
			Nillable(),
		field.Time("approved_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ArchitectReview.
func (ArchitectReview) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", Request.Type).
			Ref("architect_reviews").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ArchitectReview.
func (ArchitectReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "created_at"),
		index.Fields("decision"),
		index.Fields("created_at"),
	}
}
