// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conveyor-dev/conveyor/ent/codereview"
	"github.com/conveyor-dev/conveyor/ent/request"
)

// CodeReview is the model entity for the CodeReview schema.
type CodeReview struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID int `json:"request_id,omitempty"`
	// Decision holds the value of the "decision" field.
	Decision codereview.Decision `json:"decision,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// DesignCompliance holds the value of the "design_compliance" field.
	DesignCompliance bool `json:"design_compliance,omitempty"`
	// DesignComplianceNotes holds the value of the "design_compliance_notes" field.
	DesignComplianceNotes string `json:"design_compliance_notes,omitempty"`
	// SecurityPass holds the value of the "security_pass" field.
	SecurityPass bool `json:"security_pass,omitempty"`
	// SecurityNotes holds the value of the "security_notes" field.
	SecurityNotes string `json:"security_notes,omitempty"`
	// CodingStandardsPass holds the value of the "coding_standards_pass" field.
	CodingStandardsPass bool `json:"coding_standards_pass,omitempty"`
	// CodingStandardsNotes holds the value of the "coding_standards_notes" field.
	CodingStandardsNotes string `json:"coding_standards_notes,omitempty"`
	// Clamped to 1-10
	QualityScore int `json:"quality_score,omitempty"`
	// FilesChanged holds the value of the "files_changed" field.
	FilesChanged int `json:"files_changed,omitempty"`
	// LinesAdded holds the value of the "lines_added" field.
	LinesAdded int `json:"lines_added,omitempty"`
	// LinesRemoved holds the value of the "lines_removed" field.
	LinesRemoved int `json:"lines_removed,omitempty"`
	// PrNumber holds the value of the "pr_number" field.
	PrNumber int `json:"pr_number,omitempty"`
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
	// The values are being populated by the CodeReviewQuery when eager-loading is set.
	Edges        CodeReviewEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CodeReviewEdges holds the relations/edges for other nodes in the graph.
type CodeReviewEdges struct {
	// Request holds the value of the request edge.
	Request *Request `json:"request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RequestOrErr returns the Request value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CodeReviewEdges) RequestOrErr() (*Request, error) {
	if e.Request != nil {
		return e.Request, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: request.Label}
	}
	return nil, &NotLoadedError{edge: "request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CodeReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case codereview.FieldDesignCompliance, codereview.FieldSecurityPass, codereview.FieldCodingStandardsPass:
			values[i] = new(sql.NullBool)
		case codereview.FieldRequestID, codereview.FieldQualityScore, codereview.FieldFilesChanged, codereview.FieldLinesAdded, codereview.FieldLinesRemoved, codereview.FieldPrNumber, codereview.FieldPromptTokens, codereview.FieldCompletionTokens, codereview.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case codereview.FieldID, codereview.FieldDecision, codereview.FieldSummary, codereview.FieldDesignComplianceNotes, codereview.FieldSecurityNotes, codereview.FieldCodingStandardsNotes, codereview.FieldModel:
			values[i] = new(sql.NullString)
		case codereview.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CodeReview fields.
func (_m *CodeReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case codereview.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case codereview.FieldRequestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = int(value.Int64)
			}
		case codereview.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = codereview.Decision(value.String)
			}
		case codereview.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case codereview.FieldDesignCompliance:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field design_compliance", values[i])
			} else if value.Valid {
				_m.DesignCompliance = value.Bool
			}
		case codereview.FieldDesignComplianceNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field design_compliance_notes", values[i])
			} else if value.Valid {
				_m.DesignComplianceNotes = value.String
			}
		case codereview.FieldSecurityPass:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field security_pass", values[i])
			} else if value.Valid {
				_m.SecurityPass = value.Bool
			}
		case codereview.FieldSecurityNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field security_notes", values[i])
			} else if value.Valid {
				_m.SecurityNotes = value.String
			}
		case codereview.FieldCodingStandardsPass:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field coding_standards_pass", values[i])
			} else if value.Valid {
				_m.CodingStandardsPass = value.Bool
			}
		case codereview.FieldCodingStandardsNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field coding_standards_notes", values[i])
			} else if value.Valid {
				_m.CodingStandardsNotes = value.String
			}
		case codereview.FieldQualityScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[i])
			} else if value.Valid {
				_m.QualityScore = int(value.Int64)
			}
		case codereview.FieldFilesChanged:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field files_changed", values[i])
			} else if value.Valid {
				_m.FilesChanged = int(value.Int64)
			}
		case codereview.FieldLinesAdded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lines_added", values[i])
			} else if value.Valid {
				_m.LinesAdded = int(value.Int64)
			}
		case codereview.FieldLinesRemoved:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lines_removed", values[i])
			} else if value.Valid {
				_m.LinesRemoved = int(value.Int64)
			}
		case codereview.FieldPrNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pr_number", values[i])
			} else if value.Valid {
				_m.PrNumber = int(value.Int64)
			}
		case codereview.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = int(value.Int64)
			}
		case codereview.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = int(value.Int64)
			}
		case codereview.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case codereview.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case codereview.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CodeReview.
// This includes values selected through modifiers, order, etc.
func (_m *CodeReview) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequest queries the "request" edge of the CodeReview entity.
func (_m *CodeReview) QueryRequest() *RequestQuery {
	return NewCodeReviewClient(_m.config).QueryRequest(_m)
}

// Update returns a builder for updating this CodeReview.
// Note that you need to call CodeReview.Unwrap() before calling this method if this CodeReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CodeReview) Update() *CodeReviewUpdateOne {
	return NewCodeReviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CodeReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CodeReview) Unwrap() *CodeReview {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CodeReview is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CodeReview) String() string {
	var builder strings.Builder
	builder.WriteString("CodeReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("request_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestID))
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Decision))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("design_compliance=")
	builder.WriteString(fmt.Sprintf("%v", _m.DesignCompliance))
	builder.WriteString(", ")
	builder.WriteString("design_compliance_notes=")
	builder.WriteString(_m.DesignComplianceNotes)
	builder.WriteString(", ")
	builder.WriteString("security_pass=")
	builder.WriteString(fmt.Sprintf("%v", _m.SecurityPass))
	builder.WriteString(", ")
	builder.WriteString("security_notes=")
	builder.WriteString(_m.SecurityNotes)
	builder.WriteString(", ")
	builder.WriteString("coding_standards_pass=")
	builder.WriteString(fmt.Sprintf("%v", _m.CodingStandardsPass))
	builder.WriteString(", ")
	builder.WriteString("coding_standards_notes=")
	builder.WriteString(_m.CodingStandardsNotes)
	builder.WriteString(", ")
	builder.WriteString("quality_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityScore))
	builder.WriteString(", ")
	builder.WriteString("files_changed=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilesChanged))
	builder.WriteString(", ")
	builder.WriteString("lines_added=")
	builder.WriteString(fmt.Sprintf("%v", _m.LinesAdded))
	builder.WriteString(", ")
	builder.WriteString("lines_removed=")
	builder.WriteString(fmt.Sprintf("%v", _m.LinesRemoved))
	builder.WriteString(", ")
	builder.WriteString("pr_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrNumber))
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

// CodeReviews is a parsable slice of CodeReview.
type CodeReviews []*CodeReview
