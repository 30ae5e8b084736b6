// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArchitectReviewsColumns holds the columns for the "architect_reviews" table.
	ArchitectReviewsColumns = []*schema.Column{
		{Name: "review_id", Type: field.TypeString, Unique: true},
		{Name: "solution_summary", Type: field.TypeString, Size: 2147483647},
		{Name: "approach", Type: field.TypeString, Size: 2147483647},
		{Name: "solution_json", Type: field.TypeString, Size: 2147483647},
		{Name: "estimated_complexity", Type: field.TypeString, Nullable: true},
		{Name: "estimated_effort", Type: field.TypeString, Nullable: true},
		{Name: "files_analyzed", Type: field.TypeInt, Default: 0},
		{Name: "file_paths", Type: field.TypeJSON, Nullable: true},
		{Name: "step1_prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "step1_completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "step2_prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "step2_completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "decision", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "revised"}, Default: "pending"},
		{Name: "human_feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeInt},
	}
	// ArchitectReviewsTable holds the schema information for the "architect_reviews" table.
	ArchitectReviewsTable = &schema.Table{
		Name:       "architect_reviews",
		Columns:    ArchitectReviewsColumns,
		PrimaryKey: []*schema.Column{ArchitectReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "architect_reviews_requests_architect_reviews",
				Columns:    []*schema.Column{ArchitectReviewsColumns[19]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "architectreview_request_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ArchitectReviewsColumns[19], ArchitectReviewsColumns[18]},
			},
			{
				Name:    "architectreview_decision",
				Unique:  false,
				Columns: []*schema.Column{ArchitectReviewsColumns[14]},
			},
			{
				Name:    "architectreview_created_at",
				Unique:  false,
				Columns: []*schema.Column{ArchitectReviewsColumns[18]},
			},
		},
	}
	// AttachmentsColumns holds the columns for the "attachments" table.
	AttachmentsColumns = []*schema.Column{
		{Name: "attachment_id", Type: field.TypeString, Unique: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "data", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeInt},
	}
	// AttachmentsTable holds the schema information for the "attachments" table.
	AttachmentsTable = &schema.Table{
		Name:       "attachments",
		Columns:    AttachmentsColumns,
		PrimaryKey: []*schema.Column{AttachmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attachments_requests_attachments",
				Columns:    []*schema.Column{AttachmentsColumns[5]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attachment_request_id",
				Unique:  false,
				Columns: []*schema.Column{AttachmentsColumns[5]},
			},
		},
	}
	// CodeReviewsColumns holds the columns for the "code_reviews" table.
	CodeReviewsColumns = []*schema.Column{
		{Name: "review_id", Type: field.TypeString, Unique: true},
		{Name: "decision", Type: field.TypeEnum, Enums: []string{"approved", "changes_requested", "failed"}},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "design_compliance", Type: field.TypeBool, Default: false},
		{Name: "design_compliance_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "security_pass", Type: field.TypeBool, Default: false},
		{Name: "security_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "coding_standards_pass", Type: field.TypeBool, Default: false},
		{Name: "coding_standards_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "quality_score", Type: field.TypeInt, Default: 1},
		{Name: "files_changed", Type: field.TypeInt, Default: 0},
		{Name: "lines_added", Type: field.TypeInt, Default: 0},
		{Name: "lines_removed", Type: field.TypeInt, Default: 0},
		{Name: "pr_number", Type: field.TypeInt},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeInt},
	}
	// CodeReviewsTable holds the schema information for the "code_reviews" table.
	CodeReviewsTable = &schema.Table{
		Name:       "code_reviews",
		Columns:    CodeReviewsColumns,
		PrimaryKey: []*schema.Column{CodeReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "code_reviews_requests_code_reviews",
				Columns:    []*schema.Column{CodeReviewsColumns[19]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "codereview_request_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CodeReviewsColumns[19], CodeReviewsColumns[18]},
			},
			{
				Name:    "codereview_pr_number",
				Unique:  false,
				Columns: []*schema.Column{CodeReviewsColumns[13]},
			},
		},
	}
	// CommentsColumns holds the columns for the "comments" table.
	CommentsColumns = []*schema.Column{
		{Name: "comment_id", Type: field.TypeString, Unique: true},
		{Name: "author", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "is_agent", Type: field.TypeBool, Default: false},
		{Name: "review_kind", Type: field.TypeEnum, Nullable: true, Enums: []string{"triage", "architect", "code_review"}},
		{Name: "review_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeInt},
	}
	// CommentsTable holds the schema information for the "comments" table.
	CommentsTable = &schema.Table{
		Name:       "comments",
		Columns:    CommentsColumns,
		PrimaryKey: []*schema.Column{CommentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "comments_requests_comments",
				Columns:    []*schema.Column{CommentsColumns[7]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "comment_request_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[7], CommentsColumns[6]},
			},
			{
				Name:    "comment_request_id_is_agent_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[7], CommentsColumns[3], CommentsColumns[6]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "owner", Type: field.TypeString},
		{Name: "repo", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_owner_repo",
				Unique:  true,
				Columns: []*schema.Column{ProjectsColumns[2], ProjectsColumns[3]},
			},
		},
	}
	// RequestsColumns holds the columns for the "requests" table.
	RequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "submitter_name", Type: field.TypeString, Nullable: true},
		{Name: "submitter_email", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"bug", "feature", "enhancement", "question"}, Default: "feature"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"new", "needs_clarification", "triaged", "architect_review", "approved", "in_progress", "done", "rejected"}, Default: "new"},
		{Name: "steps_to_reproduce", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "expected_behavior", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "actual_behavior", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "last_triage_at", Type: field.TypeTime, Nullable: true},
		{Name: "triage_count", Type: field.TypeInt, Default: 0},
		{Name: "last_architect_at", Type: field.TypeTime, Nullable: true},
		{Name: "architect_count", Type: field.TypeInt, Default: 0},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "issue_number", Type: field.TypeInt, Nullable: true},
		{Name: "pr_number", Type: field.TypeInt, Nullable: true},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "branch_name", Type: field.TypeString, Nullable: true},
		{Name: "triggered_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "implementation_status", Type: field.TypeEnum, Nullable: true, Enums: []string{"pending", "working", "pr_opened", "review_approved", "pr_merged", "failed"}},
		{Name: "deployment_status", Type: field.TypeEnum, Enums: []string{"none", "pending", "in_progress", "succeeded", "failed"}, Default: "none"},
		{Name: "deployment_run_id", Type: field.TypeInt64, Nullable: true},
		{Name: "deployed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deployment_retry_count", Type: field.TypeInt, Default: 0},
		{Name: "branch_deleted", Type: field.TypeBool, Default: false},
		{Name: "stall_notified_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeInt},
	}
	// RequestsTable holds the schema information for the "requests" table.
	RequestsTable = &schema.Table{
		Name:       "requests",
		Columns:    RequestsColumns,
		PrimaryKey: []*schema.Column{RequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "requests_projects_requests",
				Columns:    []*schema.Column{RequestsColumns[31]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "request_state",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[7]},
			},
			{
				Name:    "request_project_id",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[31]},
			},
			{
				Name:    "request_implementation_status",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[22]},
			},
			{
				Name:    "request_deployment_status",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[23]},
			},
			{
				Name:    "request_state_updated_at",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[7], RequestsColumns[30]},
			},
		},
	}
	// SystemPromptsColumns holds the columns for the "system_prompts" table.
	SystemPromptsColumns = []*schema.Column{
		{Name: "stage", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SystemPromptsTable holds the schema information for the "system_prompts" table.
	SystemPromptsTable = &schema.Table{
		Name:       "system_prompts",
		Columns:    SystemPromptsColumns,
		PrimaryKey: []*schema.Column{SystemPromptsColumns[0]},
	}
	// TriageReviewsColumns holds the columns for the "triage_reviews" table.
	TriageReviewsColumns = []*schema.Column{
		{Name: "review_id", Type: field.TypeString, Unique: true},
		{Name: "decision", Type: field.TypeEnum, Enums: []string{"approve", "reject", "clarify"}},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647},
		{Name: "alignment_score", Type: field.TypeInt},
		{Name: "completeness_score", Type: field.TypeInt},
		{Name: "sales_alignment_score", Type: field.TypeInt},
		{Name: "suggested_priority", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "clarification_questions", Type: field.TypeJSON, Nullable: true},
		{Name: "is_duplicate", Type: field.TypeBool, Default: false},
		{Name: "duplicate_of_request_id", Type: field.TypeInt, Nullable: true},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeInt},
	}
	// TriageReviewsTable holds the schema information for the "triage_reviews" table.
	TriageReviewsTable = &schema.Table{
		Name:       "triage_reviews",
		Columns:    TriageReviewsColumns,
		PrimaryKey: []*schema.Column{TriageReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "triage_reviews_requests_triage_reviews",
				Columns:    []*schema.Column{TriageReviewsColumns[16]},
				RefColumns: []*schema.Column{RequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "triagereview_request_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TriageReviewsColumns[16], TriageReviewsColumns[15]},
			},
			{
				Name:    "triagereview_created_at",
				Unique:  false,
				Columns: []*schema.Column{TriageReviewsColumns[15]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArchitectReviewsTable,
		AttachmentsTable,
		CodeReviewsTable,
		CommentsTable,
		ProjectsTable,
		RequestsTable,
		SystemPromptsTable,
		TriageReviewsTable,
	}
)

func init() {
	ArchitectReviewsTable.ForeignKeys[0].RefTable = RequestsTable
	AttachmentsTable.ForeignKeys[0].RefTable = RequestsTable
	CodeReviewsTable.ForeignKeys[0].RefTable = RequestsTable
	CommentsTable.ForeignKeys[0].RefTable = RequestsTable
	RequestsTable.ForeignKeys[0].RefTable = ProjectsTable
	TriageReviewsTable.ForeignKeys[0].RefTable = RequestsTable
}
