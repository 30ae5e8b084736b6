// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/ent/triagereview"
)

// TriageReview is the model entity for the TriageReview schema.
type TriageReview struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID int `json:"request_id,omitempty"`
	// Decision holds the value of the "decision" field.
	Decision triagereview.Decision `json:"decision,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// Product objective alignment, 0-100
	AlignmentScore int `json:"alignment_score,omitempty"`
	// Request completeness, 0-100
	CompletenessScore int `json:"completeness_score,omitempty"`
	// Sales positioning alignment, 0-100
	SalesAlignmentScore int `json:"sales_alignment_score,omitempty"`
	// SuggestedPriority holds the value of the "suggested_priority" field.
	SuggestedPriority *string `json:"suggested_priority,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// ClarificationQuestions holds the value of the "clarification_questions" field.
	ClarificationQuestions []string `json:"clarification_questions,omitempty"`
	// IsDuplicate holds the value of the "is_duplicate" field.
	IsDuplicate bool `json:"is_duplicate,omitempty"`
	// DuplicateOfRequestID holds the value of the "duplicate_of_request_id" field.
	DuplicateOfRequestID *int `json:"duplicate_of_request_id,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens int `json:"prompt_tokens,omitempty"`
	// CompletionTokens holds the value of the "completion_tokens" field.
	CompletionTokens int `json:"completion_tokens,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TriageReviewQuery when eager-loading is set.
	Edges        TriageReviewEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TriageReviewEdges holds the relations/edges for other nodes in the graph.
type TriageReviewEdges struct {
	// Request holds the value of the request edge.
	Request *Request `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TriageReviewEdges) RequestOrErr() (*Request, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: request.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TriageReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case triagereview.FieldTags, triagereview.FieldClarificationQuestions:
			values[i] = new([]byte)
		case triagereview.FieldIsDuplicate:
			values[i] = new(sql.NullBool)
		case triagereview.FieldRequestID, triagereview.FieldAlignmentScore, triagereview.FieldCompletenessScore, triagereview.FieldSalesAlignmentScore, triagereview.FieldDuplicateOfRequestID, triagereview.FieldPromptTokens, triagereview.FieldCompletionTokens, triagereview.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case triagereview.FieldID, triagereview.FieldDecision, triagereview.FieldReasoning, triagereview.FieldSuggestedPriority, triagereview.FieldModel:
			values[i] = new(sql.NullString)
		case triagereview.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TriageReview fields.
func (_m *TriageReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case triagereview.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case triagereview.FieldRequestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = int(value.Int64)
			}
		case triagereview.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = triagereview.Decision(value.String)
			}
		case triagereview.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case triagereview.FieldAlignmentScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field alignment_score", values[i])
			} else if value.Valid {
				_m.AlignmentScore = int(value.Int64)
			}
		case triagereview.FieldCompletenessScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completeness_score", values[i])
			} else if value.Valid {
				_m.CompletenessScore = int(value.Int64)
			}
		case triagereview.FieldSalesAlignmentScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sales_alignment_score", values[i])
			} else if value.Valid {
				_m.SalesAlignmentScore = int(value.Int64)
			}
		case triagereview.FieldSuggestedPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_priority", values[i])
			} else if value.Valid {
				_m.SuggestedPriority = new(string)
				*_m.SuggestedPriority = value.String
			}
		case triagereview.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case triagereview.FieldClarificationQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field clarification_questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ClarificationQuestions); err != nil {
					return fmt.Errorf("unmarshal field clarification_questions: %w", err)
				}
			}
		case triagereview.FieldIsDuplicate:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_duplicate", values[i])
			} else if value.Valid {
				_m.IsDuplicate = value.Bool
			}
		case triagereview.FieldDuplicateOfRequestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duplicate_of_request_id", values[i])
			} else if value.Valid {
				_m.DuplicateOfRequestID = new(int)
				*_m.DuplicateOfRequestID = int(value.Int64)
			}
		case triagereview.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = int(value.Int64)
			}
		case triagereview.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = int(value.Int64)
			}
		case triagereview.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case triagereview.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case triagereview.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TriageReview.
// This includes values selected through modifiers, order, etc.
func (_m *TriageReview) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the TriageReview entity.
func (_m *TriageReview) QueryRequest() *RequestQuery {
	return NewTriageReviewClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this TriageReview.
// Note that you need to call TriageReview.Unwrap() before calling this method if this TriageReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TriageReview) Update() *TriageReviewUpdateOne {
	return NewTriageReviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TriageReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TriageReview) Unwrap() *TriageReview {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TriageReview is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TriageReview) String() string {
	var builder strings.Builder
	builder.WriteString("TriageReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestID))
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Decision))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("alignment_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlignmentScore))
	builder.WriteString(", ")
	builder.WriteString("completeness_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletenessScore))
	builder.WriteString(", ")
	builder.WriteString("sales_alignment_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SalesAlignmentScore))
	builder.WriteString(", ")
	if v := _m.SuggestedPriority; v != nil {
		builder.WriteString("suggested_priority=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("clarification_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClarificationQuestions))
	builder.WriteString(", ")
	builder.WriteString("is_duplicate=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDuplicate))
	builder.WriteString(", ")
	if v := _m.DuplicateOfRequestID; v != nil {
		builder.WriteString("duplicate_of_request_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("prompt_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptTokens))
	builder.WriteString(", ")
	builder.WriteString("completion_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionTokens))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TriageReviews is a parsable slice of TriageReview.
type TriageReviews []*TriageReview
