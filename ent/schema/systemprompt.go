package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SystemPrompt holds the schema definition for the SystemPrompt entity.
// Stage prompts are editable at runtime; builders fall back to compiled
// defaults when no row exists for a stage.
type SystemPrompt struct {
	ent.Schema
}

// Fields of the SystemPrompt.
func (SystemPrompt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stage").
			Unique().
			Immutable().
			Comment("Stage name: triage, architect, code_review"),
		field.Text("content"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
