// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conveyor-dev/conveyor/ent/architectreview"
	"github.com/conveyor-dev/conveyor/ent/request"
)

// ArchitectReview is the model entity for the ArchitectReview schema.
type ArchitectReview struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID int `json:"request_id,omitempty"`
	// SolutionSummary holds the value of the "solution_summary" field.
	SolutionSummary string `json:"solution_summary,omitempty"`
	// Approach holds the value of the "approach" field.
	Approach string `json:"approach,omitempty"`
	// Full solution document, verbatim JSON
	SolutionJSON string `json:"solution_json,omitempty"`
	// EstimatedComplexity holds the value of the "estimated_complexity" field.
	EstimatedComplexity string `json:"estimated_complexity,omitempty"`
	// EstimatedEffort holds the value of the "estimated_effort" field.
	EstimatedEffort string `json:"estimated_effort,omitempty"`
	// Count of repository files read during step 2
	FilesAnalyzed int `json:"files_analyzed,omitempty"`
	// Paths whose content was fed to the model
	FilePaths []string `json:"file_paths,omitempty"`
	// Step1PromptTokens holds the value of the "step1_prompt_tokens" field.
	Step1PromptTokens int `json:"step1_prompt_tokens,omitempty"`
	// Step1CompletionTokens holds the value of the "step1_completion_tokens" field.
	Step1CompletionTokens int `json:"step1_completion_tokens,omitempty"`
	// Step2PromptTokens holds the value of the "step2_prompt_tokens" field.
	Step2PromptTokens int `json:"step2_prompt_tokens,omitempty"`
	// Step2CompletionTokens holds the value of the "step2_completion_tokens" field.
	Step2CompletionTokens int `json:"step2_completion_tokens,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// Decision holds the value of the "decision" field.
	Decision architectreview.Decision `json:"decision,omitempty"`
	// HumanFeedback holds the value of the "human_feedback" field.
	HumanFeedback *string `json:"human_feedback,omitempty"`
	// ApprovedBy holds the value of the "approved_by" field.
	ApprovedBy *string `json:"approved_by,omitempty"`
	// ApprovedAt holds the value of the "approved_at" field.
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ArchitectReviewQuery when eager-loading is set.
	Edges        ArchitectReviewEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ArchitectReviewEdges holds the relations/edges for other nodes in the graph.
type ArchitectReviewEdges struct {
	// Request holds the value of the request edge.
	Request *Request `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ArchitectReviewEdges) RequestOrErr() (*Request, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: request.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ArchitectReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case architectreview.FieldFilePaths:
			values[i] = new([]byte)
		case architectreview.FieldRequestID, architectreview.FieldFilesAnalyzed, architectreview.FieldStep1PromptTokens, architectreview.FieldStep1CompletionTokens, architectreview.FieldStep2PromptTokens, architectreview.FieldStep2CompletionTokens, architectreview.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case architectreview.FieldID, architectreview.FieldSolutionSummary, architectreview.FieldApproach, architectreview.FieldSolutionJSON, architectreview.FieldEstimatedComplexity, architectreview.FieldEstimatedEffort, architectreview.FieldModel, architectreview.FieldDecision, architectreview.FieldHumanFeedback, architectreview.FieldApprovedBy:
			values[i] = new(sql.NullString)
		case architectreview.FieldApprovedAt, architectreview.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ArchitectReview fields.
func (_m *ArchitectReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case architectreview.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case architectreview.FieldRequestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = int(value.Int64)
			}
		case architectreview.FieldSolutionSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solution_summary", values[i])
			} else if value.Valid {
				_m.SolutionSummary = value.String
			}
		case architectreview.FieldApproach:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approach", values[i])
			} else if value.Valid {
				_m.Approach = value.String
			}
		case architectreview.FieldSolutionJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solution_json", values[i])
			} else if value.Valid {
				_m.SolutionJSON = value.String
			}
		case architectreview.FieldEstimatedComplexity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_complexity", values[i])
			} else if value.Valid {
				_m.EstimatedComplexity = value.String
			}
		case architectreview.FieldEstimatedEffort:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_effort", values[i])
			} else if value.Valid {
				_m.EstimatedEffort = value.String
			}
		case architectreview.FieldFilesAnalyzed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field files_analyzed", values[i])
			} else if value.Valid {
				_m.FilesAnalyzed = int(value.Int64)
			}
		case architectreview.FieldFilePaths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field file_paths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FilePaths); err != nil {
					return fmt.Errorf("unmarshal field file_paths: %w", err)
				}
			}
		case architectreview.FieldStep1PromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step1_prompt_tokens", values[i])
			} else if value.Valid {
				_m.Step1PromptTokens = int(value.Int64)
			}
		case architectreview.FieldStep1CompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step1_completion_tokens", values[i])
			} else if value.Valid {
				_m.Step1CompletionTokens = int(value.Int64)
			}
		case architectreview.FieldStep2PromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step2_prompt_tokens", values[i])
			} else if value.Valid {
				_m.Step2PromptTokens = int(value.Int64)
			}
		case architectreview.FieldStep2CompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step2_completion_tokens", values[i])
			} else if value.Valid {
				_m.Step2CompletionTokens = int(value.Int64)
			}
		case architectreview.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case architectreview.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case architectreview.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = architectreview.Decision(value.String)
			}
		case architectreview.FieldHumanFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field human_feedback", values[i])
			} else if value.Valid {
				_m.HumanFeedback = new(string)
				*_m.HumanFeedback = value.String
			}
		case architectreview.FieldApprovedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approved_by", values[i])
			} else if value.Valid {
				_m.ApprovedBy = new(string)
				*_m.ApprovedBy = value.String
			}
		case architectreview.FieldApprovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field approved_at", values[i])
			} else if value.Valid {
				_m.ApprovedAt = new(time.Time)
				*_m.ApprovedAt = value.Time
			}
		case architectreview.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ArchitectReview.
// This includes values selected through modifiers, order, etc.
func (_m *ArchitectReview) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the ArchitectReview entity.
func (_m *ArchitectReview) QueryRequest() *RequestQuery {
	return NewArchitectReviewClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this ArchitectReview.
// Note that you need to call ArchitectReview.Unwrap() before calling this method if this ArchitectReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ArchitectReview) Update() *ArchitectReviewUpdateOne {
	return NewArchitectReviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ArchitectReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ArchitectReview) Unwrap() *ArchitectReview {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ArchitectReview is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ArchitectReview) String() string {
	var builder strings.Builder
	builder.WriteString("ArchitectReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestID))
	builder.WriteString(", ")
	builder.WriteString("solution_summary=")
	builder.WriteString(_m.SolutionSummary)
	builder.WriteString(", ")
	builder.WriteString("approach=")
	builder.WriteString(_m.Approach)
	builder.WriteString(", ")
	builder.WriteString("solution_json=")
	builder.WriteString(_m.SolutionJSON)
	builder.WriteString(", ")
	builder.WriteString("estimated_complexity=")
	builder.WriteString(_m.EstimatedComplexity)
	builder.WriteString(", ")
	builder.WriteString("estimated_effort=")
	builder.WriteString(_m.EstimatedEffort)
	builder.WriteString(", ")
	builder.WriteString("files_analyzed=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilesAnalyzed))
	builder.WriteString(", ")
	builder.WriteString("file_paths=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilePaths))
	builder.WriteString(", ")
	builder.WriteString("step1_prompt_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.Step1PromptTokens))
	builder.WriteString(", ")
	builder.WriteString("step1_completion_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.Step1CompletionTokens))
	builder.WriteString(", ")
	builder.WriteString("step2_prompt_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.Step2PromptTokens))
	builder.WriteString(", ")
	builder.WriteString("step2_completion_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.Step2CompletionTokens))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Decision))
	builder.WriteString(", ")
	if v := _m.HumanFeedback; v != nil {
		builder.WriteString("human_feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ApprovedBy; v != nil {
		builder.WriteString("approved_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ApprovedAt; v != nil {
		builder.WriteString("approved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ArchitectReviews is a parsable slice of ArchitectReview.
type ArchitectReviews []*ArchitectReview
