package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Request holds the schema definition for the Request entity.
// A request is the unit of work that flows through the pipeline; its
// state column is the contract every worker coordinates on.
type Request struct {
	ent.Schema
}

// Fields of the Request.
func (Request) Fields() []ent.Field {
	return []ent.Field{
		field.String("title"),
		field.Text("description"),
		field.String("submitter_name").
			Optional().
			Nillable(),
		field.String("submitter_email").
			Optional().
			Nillable(),
		field.Int("project_id"),
		field.Enum("kind").
			Values("bug", "feature", "enhancement", "question").
			Default("feature"),
		field.Enum("priority").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.Enum("state").
			Values("new", "needs_clarification", "triaged", "architect_review",
				"approved", "in_progress", "done", "rejected").
			Default("new"),

		// Bug reports carry a structured triple; empty for other kinds.
		field.Text("steps_to_reproduce").
			Optional().
			Nillable(),
		field.Text("expected_behavior").
			Optional().
			Nillable(),
		field.Text("actual_behavior").
			Optional().
			Nillable(),

		// Triage bookkeeping
		field.Time("last_triage_at").
			Optional().
			Nillable().
			Comment("When triage last reviewed this request"),
		field.Int("triage_count").
			Default(0),

		// Architect bookkeeping
		field.Time("last_architect_at").
			Optional().
			Nillable().
			Comment("When the architect last produced a solution"),
		field.Int("architect_count").
			Default(0),

		// Implementation tracking
		field.String("session_id").
			Optional().
			Nillable().
			Comment("Coding agent session identifier"),
		field.Int("issue_number").
			Optional().
			Nillable(),
		field.Int("pr_number").
			Optional().
			Nillable(),
		field.String("pr_url").
			Optional().
			Nillable(),
		field.String("branch_name").
			Optional().
			Nillable(),
		field.Time("triggered_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Enum("implementation_status").
			Values("pending", "working", "pr_opened", "review_approved",
				"pr_merged", "failed").
			Optional().
			Nillable(),

		// Deployment tracking
		field.Enum("deployment_status").
			Values("none", "pending", "in_progress", "succeeded", "failed").
			Default("none"),
		field.Int64("deployment_run_id").
			Optional().
			Nillable().
			Comment("Workflow run being observed"),
		field.Time("deployed_at").
			Optional().
			Nillable(),
		field.Int("deployment_retry_count").
			Default(0),
		field.Bool("branch_deleted").
			Default(false),

		field.Time("stall_notified_at").
			Optional().
			Nillable().
			Comment("Set when a stall alert fires; cleared on progress"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Optimistic concurrency token; bumped on every write"),
	}
}

// Edges of the Request.
func (Request) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("requests").
			Field("project_id").
			Unique().
			Required(),
		edge.To("comments", Comment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("attachments", Attachment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("triage_reviews", TriageReview.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("architect_reviews", ArchitectReview.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("code_reviews", CodeReview.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Request.
func (Request) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("project_id"),
		index.Fields("implementation_status"),
		index.Fields("deployment_status"),

		// Worker selection scans order by updated_at within a state.
		index.Fields("state", "updated_at"),
	}
}
