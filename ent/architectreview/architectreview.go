// Code generated by ent, DO NOT EDIT.

package architectreview

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the architectreview type in the database.
	Label = "architect_review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "review_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldSolutionSummary holds the string denoting the solution_summary field in the database.
	FieldSolutionSummary = "solution_summary"
	// FieldApproach holds the string denoting the approach field in the database.
	FieldApproach = "approach"
	// FieldSolutionJSON holds the string denoting the solution_json field in the database.
	FieldSolutionJSON = "solution_json"
	// FieldEstimatedComplexity holds the string denoting the estimated_complexity field in the database.
	FieldEstimatedComplexity = "estimated_complexity"
	// FieldEstimatedEffort holds the string denoting the estimated_effort field in the database.
	FieldEstimatedEffort = "estimated_effort"
	// FieldFilesAnalyzed holds the string denoting the files_analyzed field in the database.
	FieldFilesAnalyzed = "files_analyzed"
	// FieldFilePaths holds the string denoting the file_paths field in the database.
	FieldFilePaths = "file_paths"
	// FieldStep1PromptTokens holds the string denoting the step1_prompt_tokens field in the database.
	FieldStep1PromptTokens = "step1_prompt_tokens"
	// FieldStep1CompletionTokens holds the string denoting the step1_completion_tokens field in the database.
	FieldStep1CompletionTokens = "step1_completion_tokens"
	// FieldStep2PromptTokens holds the string denoting the step2_prompt_tokens field in the database.
	FieldStep2PromptTokens = "step2_prompt_tokens"
	// FieldStep2CompletionTokens holds the string denoting the step2_completion_tokens field in the database.
	FieldStep2CompletionTokens = "step2_completion_tokens"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldHumanFeedback holds the string denoting the human_feedback field in the database.
	FieldHumanFeedback = "human_feedback"
	// FieldApprovedBy holds the string denoting the approved_by field in the database.
	FieldApprovedBy = "approved_by"
	// FieldApprovedAt holds the string denoting the approved_at field in the database.
	FieldApprovedAt = "approved_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// RequestFieldID holds the string denoting the ID field of the Request.
	RequestFieldID = "id"
	// Table holds the table name of the architectreview in the database.
	Table = "architect_reviews"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "architect_reviews"
	// RequestInverseTable is the table name for the Request entity.
	// It exists in this package in order to avoid circular dependency with the "request" package.
	RequestInverseTable = "requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
)

// Columns holds all SQL columns for architectreview fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldSolutionSummary,
	FieldApproach,
	FieldSolutionJSON,
	FieldEstimatedComplexity,
	FieldEstimatedEffort,
	FieldFilesAnalyzed,
	FieldFilePaths,
	FieldStep1PromptTokens,
	FieldStep1CompletionTokens,
	FieldStep2PromptTokens,
	FieldStep2CompletionTokens,
	FieldModel,
	FieldDurationMs,
	FieldDecision,
	FieldHumanFeedback,
	FieldApprovedBy,
	FieldApprovedAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultFilesAnalyzed holds the default value on creation for the "files_analyzed" field.
	DefaultFilesAnalyzed int
	// DefaultStep1PromptTokens holds the default value on creation for the "step1_prompt_tokens" field.
	DefaultStep1PromptTokens int
	// DefaultStep1CompletionTokens holds the default value on creation for the "step1_completion_tokens" field.
	DefaultStep1CompletionTokens int
	// DefaultStep2PromptTokens holds the default value on creation for the "step2_prompt_tokens" field.
	DefaultStep2PromptTokens int
	// DefaultStep2CompletionTokens holds the default value on creation for the "step2_completion_tokens" field.
	DefaultStep2CompletionTokens int
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Decision defines the type for the "decision" enum field.
type Decision string

// DecisionPending is the default value of the Decision enum.
const DefaultDecision = DecisionPending

// Decision values.
const (
	DecisionPending  Decision = "pending"
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
	DecisionRevised  Decision = "revised"
)

func (d Decision) String() string {
	return string(d)
}

// DecisionValidator is a validator for the "decision" field enum values. It is called by the builders before save.
func DecisionValidator(d Decision) error {
	switch d {
	case DecisionPending, DecisionApproved, DecisionRejected, DecisionRevised:
		return nil
	default:
		return fmt.Errorf("architectreview: invalid enum value for decision field: %q", d)
	}
}

// OrderOption defines the ordering options for the ArchitectReview queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// BySolutionSummary orders the results by the solution_summary field.
func BySolutionSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolutionSummary, opts...).ToFunc()
}

// ByApproach orders the results by the approach field.
func ByApproach(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApproach, opts...).ToFunc()
}

// BySolutionJSON orders the results by the solution_json field.
func BySolutionJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolutionJSON, opts...).ToFunc()
}

// ByEstimatedComplexity orders the results by the estimated_complexity field.
func ByEstimatedComplexity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedComplexity, opts...).ToFunc()
}

// ByEstimatedEffort orders the results by the estimated_effort field.
func ByEstimatedEffort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedEffort, opts...).ToFunc()
}

// ByFilesAnalyzed orders the results by the files_analyzed field.
func ByFilesAnalyzed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilesAnalyzed, opts...).ToFunc()
}

// ByStep1PromptTokens orders the results by the step1_prompt_tokens field.
func ByStep1PromptTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStep1PromptTokens, opts...).ToFunc()
}

// ByStep1CompletionTokens orders the results by the step1_completion_tokens field.
func ByStep1CompletionTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStep1CompletionTokens, opts...).ToFunc()
}

// ByStep2PromptTokens orders the results by the step2_prompt_tokens field.
func ByStep2PromptTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStep2PromptTokens, opts...).ToFunc()
}

// ByStep2CompletionTokens orders the results by the step2_completion_tokens field.
func ByStep2CompletionTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStep2CompletionTokens, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByHumanFeedback orders the results by the human_feedback field.
func ByHumanFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanFeedback, opts...).ToFunc()
}

// ByApprovedBy orders the results by the approved_by field.
func ByApprovedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedBy, opts...).ToFunc()
}

// ByApprovedAt orders the results by the approved_at field.
func ByApprovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRequestField orders the results by request field.
func ByRequestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequestStep(), sql.OrderByField(field, opts...))
	}
}
func newRequestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequestInverseTable, RequestFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
	)
}
