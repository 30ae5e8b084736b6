// Code generated by ent, DO NOT EDIT.

package comment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the comment type in the database.
	Label = "comment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "comment_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldIsAgent holds the string denoting the is_agent field in the database.
	FieldIsAgent = "is_agent"
	// FieldReviewKind holds the string denoting the review_kind field in the database.
	FieldReviewKind = "review_kind"
	// FieldReviewID holds the string denoting the review_id field in the database.
	FieldReviewID = "review_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// RequestFieldID holds the string denoting the ID field of the Request.
	RequestFieldID = "id"
	// Table holds the table name of the comment in the database.
	Table = "comments"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "comments"
	// RequestInverseTable is the table name for the Request entity.
	// It exists in this package in order to avoid circular dependency with the "request" package.
	RequestInverseTable = "requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
)

// Columns holds all SQL columns for comment fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldAuthor,
	FieldContent,
	FieldIsAgent,
	FieldReviewKind,
	FieldReviewID,
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
	// DefaultIsAgent holds the default value on creation for the "is_agent" field.
	DefaultIsAgent bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ReviewKind defines the type for the "review_kind" enum field.
type ReviewKind string

// ReviewKind values.
const (
	ReviewKindTriage     ReviewKind = "triage"
	ReviewKindArchitect  ReviewKind = "architect"
	ReviewKindCodeReview ReviewKind = "code_review"
)

func (rk ReviewKind) String() string {
	return string(rk)
}

// ReviewKindValidator is a validator for the "review_kind" field enum values. It is called by the builders before save.
func ReviewKindValidator(rk ReviewKind) error {
	switch rk {
	case ReviewKindTriage, ReviewKindArchitect, ReviewKindCodeReview:
		return nil
	default:
		return fmt.Errorf("comment: invalid enum value for review_kind field: %q", rk)
	}
}

// OrderOption defines the ordering options for the Comment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByIsAgent orders the results by the is_agent field.
func ByIsAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAgent, opts...).ToFunc()
}

// ByReviewKind orders the results by the review_kind field.
func ByReviewKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewKind, opts...).ToFunc()
}

// ByReviewID orders the results by the review_id field.
func ByReviewID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewID, opts...).ToFunc()
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
