// Code generated by ent, DO NOT EDIT.

package codereview

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the codereview type in the database.
	Label = "code_review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "review_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldDesignCompliance holds the string denoting the design_compliance field in the database.
	FieldDesignCompliance = "design_compliance"
	// FieldDesignComplianceNotes holds the string denoting the design_compliance_notes field in the database.
	FieldDesignComplianceNotes = "design_compliance_notes"
	// FieldSecurityPass holds the string denoting the security_pass field in the database.
	FieldSecurityPass = "security_pass"
	// FieldSecurityNotes holds the string denoting the security_notes field in the database.
	FieldSecurityNotes = "security_notes"
	// FieldCodingStandardsPass holds the string denoting the coding_standards_pass field in the database.
	FieldCodingStandardsPass = "coding_standards_pass"
	// FieldCodingStandardsNotes holds the string denoting the coding_standards_notes field in the database.
	FieldCodingStandardsNotes = "coding_standards_notes"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// FieldFilesChanged holds the string denoting the files_changed field in the database.
	FieldFilesChanged = "files_changed"
	// FieldLinesAdded holds the string denoting the lines_added field in the database.
	FieldLinesAdded = "lines_added"
	// FieldLinesRemoved holds the string denoting the lines_removed field in the database.
	FieldLinesRemoved = "lines_removed"
	// FieldPrNumber holds the string denoting the pr_number field in the database.
	FieldPrNumber = "pr_number"
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
	// Table holds the table name of the codereview in the database.
	Table = "code_reviews"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "code_reviews"
	// RequestInverseTable is the table name for the Request entity.
	// It exists in this package in order to avoid circular dependency with the "request" package.
	RequestInverseTable = "requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
)

// Columns holds all SQL columns for codereview fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldDecision,
	FieldSummary,
	FieldDesignCompliance,
	FieldDesignComplianceNotes,
	FieldSecurityPass,
	FieldSecurityNotes,
	FieldCodingStandardsPass,
	FieldCodingStandardsNotes,
	FieldQualityScore,
	FieldFilesChanged,
	FieldLinesAdded,
	FieldLinesRemoved,
	FieldPrNumber,
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
	// DefaultDesignCompliance holds the default value on creation for the "design_compliance" field.
	DefaultDesignCompliance bool
	// DefaultSecurityPass holds the default value on creation for the "security_pass" field.
	DefaultSecurityPass bool
	// DefaultCodingStandardsPass holds the default value on creation for the "coding_standards_pass" field.
	DefaultCodingStandardsPass bool
	// DefaultQualityScore holds the default value on creation for the "quality_score" field.
	DefaultQualityScore int
	// DefaultFilesChanged holds the default value on creation for the "files_changed" field.
	DefaultFilesChanged int
	// DefaultLinesAdded holds the default value on creation for the "lines_added" field.
	DefaultLinesAdded int
	// DefaultLinesRemoved holds the default value on creation for the "lines_removed" field.
	DefaultLinesRemoved int
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
	DecisionApproved         Decision = "approved"
	DecisionChangesRequested Decision = "changes_requested"
	DecisionFailed           Decision = "failed"
)

func (d Decision) String() string {
	return string(d)
}

// DecisionValidator is a validator for the "decision" field enum values. It is called by the builders before save.
func DecisionValidator(d Decision) error {
	switch d {
	case DecisionApproved, DecisionChangesRequested, DecisionFailed:
		return nil
	default:
		return fmt.Errorf("codereview: invalid enum value for decision field: %q", d)
	}
}

// OrderOption defines the ordering options for the CodeReview queries.
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

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByDesignCompliance orders the results by the design_compliance field.
func ByDesignCompliance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDesignCompliance, opts...).ToFunc()
}

// ByDesignComplianceNotes orders the results by the design_compliance_notes field.
func ByDesignComplianceNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDesignComplianceNotes, opts...).ToFunc()
}

// BySecurityPass orders the results by the security_pass field.
func BySecurityPass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecurityPass, opts...).ToFunc()
}

// BySecurityNotes orders the results by the security_notes field.
func BySecurityNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecurityNotes, opts...).ToFunc()
}

// ByCodingStandardsPass orders the results by the coding_standards_pass field.
func ByCodingStandardsPass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCodingStandardsPass, opts...).ToFunc()
}

// ByCodingStandardsNotes orders the results by the coding_standards_notes field.
func ByCodingStandardsNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCodingStandardsNotes, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}

// ByFilesChanged orders the results by the files_changed field.
func ByFilesChanged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilesChanged, opts...).ToFunc()
}

// ByLinesAdded orders the results by the lines_added field.
func ByLinesAdded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinesAdded, opts...).ToFunc()
}

// ByLinesRemoved orders the results by the lines_removed field.
func ByLinesRemoved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinesRemoved, opts...).ToFunc()
}

// ByPrNumber orders the results by the pr_number field.
func ByPrNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrNumber, opts...).ToFunc()
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
