// Code generated by ent, DO NOT EDIT.

package triagereview

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the triagereview type in the database.
	Label = "triage_review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "review_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldAlignmentScore holds the string denoting the alignment_score field in the database.
	FieldAlignmentScore = "alignment_score"
	// FieldCompletenessScore holds the string denoting the completeness_score field in the database.
	FieldCompletenessScore = "completeness_score"
	// FieldSalesAlignmentScore holds the string denoting the sales_alignment_score field in the database.
	FieldSalesAlignmentScore = "sales_alignment_score"
	// FieldSuggestedPriority holds the string denoting the suggested_priority field in the database.
	FieldSuggestedPriority = "suggested_priority"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldClarificationQuestions holds the string denoting the clarification_questions field in the database.
	FieldClarificationQuestions = "clarification_questions"
	// FieldIsDuplicate holds the string denoting the is_duplicate field in the database.
	FieldIsDuplicate = "is_duplicate"
	// FieldDuplicateOfRequestID holds the string denoting the duplicate_of_request_id field in the database.
	FieldDuplicateOfRequestID = "duplicate_of_request_id"
	// FieldPromptTokens holds the string denoting the prompt_tokens field in the database.
	FieldPromptTokens = "prompt_tokens"
	// FieldCompletionTokens holds the string denoting the completion_tokens field in the database.
	FieldCompletionTokens = "completion_tokens"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// RequestFieldID holds the string denoting the ID field of the Request.
	RequestFieldID = "id"
	// Table holds the table name of the triagereview in the database.
	Table = "triage_reviews"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "triage_reviews"
	// RequestInverseTable is the table name for the Request entity.
	// It exists in this package in order to avoid circular dependency with the "request" package.
	RequestInverseTable = "requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
)

// Columns holds all SQL columns for triagereview fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldDecision,
	FieldReasoning,
	FieldAlignmentScore,
	FieldCompletenessScore,
	FieldSalesAlignmentScore,
	FieldSuggestedPriority,
	FieldTags,
	FieldClarificationQuestions,
	FieldIsDuplicate,
	FieldDuplicateOfRequestID,
	FieldPromptTokens,
	FieldCompletionTokens,
	FieldModel,
	FieldDurationMs,
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
	// DefaultIsDuplicate holds the default value on creation for the "is_duplicate" field.
	DefaultIsDuplicate bool
	// DefaultPromptTokens holds the default value on creation for the "prompt_tokens" field.
	DefaultPromptTokens int
	// DefaultCompletionTokens holds the default value on creation for the "completion_tokens" field.
	DefaultCompletionTokens int
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Decision defines the type for the "decision" enum field.
type Decision string

// Decision values.
const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
	DecisionClarify Decision = "clarify"
)

func (d Decision) String() string {
	return string(d)
}

// DecisionValidator is a validator for the "decision" field enum values. It is called by the builders before save.
func DecisionValidator(d Decision) error {
	switch d {
	case DecisionApprove, DecisionReject, DecisionClarify:
		return nil
	default:
		return fmt.Errorf("triagereview: invalid enum value for decision field: %q", d)
	}
}

// OrderOption defines the ordering options for the TriageReview queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByAlignmentScore orders the results by the alignment_score field.
func ByAlignmentScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlignmentScore, opts...).ToFunc()
}

// ByCompletenessScore orders the results by the completeness_score field.
func ByCompletenessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletenessScore, opts...).ToFunc()
}

// BySalesAlignmentScore orders the results by the sales_alignment_score field.
func BySalesAlignmentScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSalesAlignmentScore, opts...).ToFunc()
}

// BySuggestedPriority orders the results by the suggested_priority field.
func BySuggestedPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedPriority, opts...).ToFunc()
}

// ByIsDuplicate orders the results by the is_duplicate field.
func ByIsDuplicate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDuplicate, opts...).ToFunc()
}

// ByDuplicateOfRequestID orders the results by the duplicate_of_request_id field.
func ByDuplicateOfRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuplicateOfRequestID, opts...).ToFunc()
}

// ByPromptTokens orders the results by the prompt_tokens field.
func ByPromptTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTokens, opts...).ToFunc()
}

// ByCompletionTokens orders the results by the completion_tokens field.
func ByCompletionTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionTokens, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
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
