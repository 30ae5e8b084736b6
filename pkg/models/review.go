package models

import (
	"github.com/conveyor-dev/conveyor/ent/architectreview"
	"github.com/conveyor-dev/conveyor/ent/codereview"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/ent/triagereview"
)

// CreateTriageReviewInput contains fields for persisting one triage pass.
type CreateTriageReviewInput struct {
	RequestID              int                   `json:"request_id"`
	Decision               triagereview.Decision `json:"decision"`
	Reasoning              string                `json:"reasoning"`
	AlignmentScore         int                   `json:"alignment_score"`
	CompletenessScore      int                   `json:"completeness_score"`
	SalesAlignmentScore    int                   `json:"sales_alignment_score"`
	SuggestedPriority      string                `json:"suggested_priority,omitempty"`
	Tags                   []string              `json:"tags,omitempty"`
	ClarificationQuestions []string              `json:"clarification_questions,omitempty"`
	IsDuplicate            bool                  `json:"is_duplicate"`
	DuplicateOfRequestID   *int                  `json:"duplicate_of_request_id,omitempty"`
	PromptTokens           int                   `json:"prompt_tokens"`
	CompletionTokens       int                   `json:"completion_tokens"`
	Model                  string                `json:"model,omitempty"`
	DurationMs             int64                 `json:"duration_ms"`
}

// CreateArchitectReviewInput contains fields for persisting one solution design.
type CreateArchitectReviewInput struct {
	RequestID             int      `json:"request_id"`
	SolutionSummary       string   `json:"solution_summary"`
	Approach              string   `json:"approach"`
	SolutionJSON          string   `json:"solution_json"`
	EstimatedComplexity   string   `json:"estimated_complexity,omitempty"`
	EstimatedEffort       string   `json:"estimated_effort,omitempty"`
	FilesAnalyzed         int      `json:"files_analyzed"`
	FilePaths             []string `json:"file_paths,omitempty"`
	Step1PromptTokens     int      `json:"step1_prompt_tokens"`
	Step1CompletionTokens int      `json:"step1_completion_tokens"`
	Step2PromptTokens     int      `json:"step2_prompt_tokens"`
	Step2CompletionTokens int      `json:"step2_completion_tokens"`
	Model                 string   `json:"model,omitempty"`
	DurationMs            int64    `json:"duration_ms"`
}

// CreateCodeReviewInput contains fields for persisting one PR review verdict.
type CreateCodeReviewInput struct {
	RequestID             int                 `json:"request_id"`
	Decision              codereview.Decision `json:"decision"`
	Summary               string              `json:"summary"`
	DesignCompliance      bool                `json:"design_compliance"`
	DesignComplianceNotes string              `json:"design_compliance_notes,omitempty"`
	SecurityPass          bool                `json:"security_pass"`
	SecurityNotes         string              `json:"security_notes,omitempty"`
	CodingStandardsPass   bool                `json:"coding_standards_pass"`
	CodingStandardsNotes  string              `json:"coding_standards_notes,omitempty"`
	QualityScore          int                 `json:"quality_score"`
	FilesChanged          int                 `json:"files_changed"`
	LinesAdded            int                 `json:"lines_added"`
	LinesRemoved          int                 `json:"lines_removed"`
	PRNumber              int                 `json:"pr_number"`
	PromptTokens          int                 `json:"prompt_tokens"`
	CompletionTokens      int                 `json:"completion_tokens"`
	Model                 string              `json:"model,omitempty"`
	DurationMs            int64               `json:"duration_ms"`
}

// ArchitectDecisionInput records a human verdict on an architect review.
type ArchitectDecisionInput struct {
	ReviewID string                   `json:"review_id"`
	Decision architectreview.Decision `json:"decision"`
	Actor    string                   `json:"actor"`
	Reason   string                   `json:"reason,omitempty"`
}

// TriageOverrideInput records a human override of a triage verdict. The
// new state is restricted to the states triage itself can produce.
type TriageOverrideInput struct {
	ReviewID string        `json:"review_id"`
	Actor    string        `json:"actor"`
	NewState request.State `json:"new_state"`
	Reason   string        `json:"reason,omitempty"`
}
