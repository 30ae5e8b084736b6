// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conveyor-dev/conveyor/ent/project"
	"github.com/conveyor-dev/conveyor/ent/request"
)

// Request is the model entity for the Request schema.
type Request struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// SubmitterName holds the value of the "submitter_name" field.
	SubmitterName *string `json:"submitter_name,omitempty"`
	// SubmitterEmail holds the value of the "submitter_email" field.
	SubmitterEmail *string `json:"submitter_email,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID int `json:"project_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind request.Kind `json:"kind,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority request.Priority `json:"priority,omitempty"`
	// State holds the value of the "state" field.
	State request.State `json:"state,omitempty"`
	// StepsToReproduce holds the value of the "steps_to_reproduce" field.
	StepsToReproduce *string `json:"steps_to_reproduce,omitempty"`
	// ExpectedBehavior holds the value of the "expected_behavior" field.
	ExpectedBehavior *string `json:"expected_behavior,omitempty"`
	// ActualBehavior holds the value of the "actual_behavior" field.
	ActualBehavior *string `json:"actual_behavior,omitempty"`
	// When triage last reviewed this request
	LastTriageAt *time.Time `json:"last_triage_at,omitempty"`
	// TriageCount holds the value of the "triage_count" field.
	TriageCount int `json:"triage_count,omitempty"`
	// When the architect last produced a solution
	LastArchitectAt *time.Time `json:"last_architect_at,omitempty"`
	// ArchitectCount holds the value of the "architect_count" field.
	ArchitectCount int `json:"architect_count,omitempty"`
	// Coding agent session identifier
	SessionID *string `json:"session_id,omitempty"`
	// IssueNumber holds the value of the "issue_number" field.
	IssueNumber *int `json:"issue_number,omitempty"`
	// PrNumber holds the value of the "pr_number" field.
	PrNumber *int `json:"pr_number,omitempty"`
	// PrURL holds the value of the "pr_url" field.
	PrURL *string `json:"pr_url,omitempty"`
	// BranchName holds the value of the "branch_name" field.
	BranchName *string `json:"branch_name,omitempty"`
	// TriggeredAt holds the value of the "triggered_at" field.
	TriggeredAt *time.Time `json:"triggered_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ImplementationStatus holds the value of the "implementation_status" field.
	ImplementationStatus *request.ImplementationStatus `json:"implementation_status,omitempty"`
	// DeploymentStatus holds the value of the "deployment_status" field.
	DeploymentStatus request.DeploymentStatus `json:"deployment_status,omitempty"`
	// Workflow run being observed
	DeploymentRunID *int64 `json:"deployment_run_id,omitempty"`
	// DeployedAt holds the value of the "deployed_at" field.
	DeployedAt *time.Time `json:"deployed_at,omitempty"`
	// DeploymentRetryCount holds the value of the "deployment_retry_count" field.
	DeploymentRetryCount int `json:"deployment_retry_count,omitempty"`
	// BranchDeleted holds the value of the "branch_deleted" field.
	BranchDeleted bool `json:"branch_deleted,omitempty"`
	// Set when a stall alert fires; cleared on progress
	StallNotifiedAt *time.Time `json:"stall_notified_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Optimistic concurrency token; bumped on every write
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RequestQuery when eager-loading is set.
	Edges        RequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RequestEdges holds the relations/edges for other nodes in the graph.
type RequestEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Comments holds the value of the comments edge.
	Comments []*Comment `json:"comments,omitempty"`
	// Attachments holds the value of the attachments edge.
	Attachments []*Attachment `json:"attachments,omitempty"`
	// TriageReviews holds the value of the triage_reviews edge.
	TriageReviews []*TriageReview `json:"triage_reviews,omitempty"`
	// ArchitectReviews holds the value of the architect_reviews edge.
	ArchitectReviews []*ArchitectReview `json:"architect_reviews,omitempty"`
	// CodeReviews holds the value of the code_reviews edge.
	CodeReviews []*CodeReview `json:"code_reviews,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RequestEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// CommentsOrErr returns the Comments value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) CommentsOrErr() ([]*Comment, error) {
	if e.loadedTypes[1] {
		return e.Comments, nil
	}
	return nil, &NotLoadedError{edge: "comments"}
}

// AttachmentsOrErr returns the Attachments value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) AttachmentsOrErr() ([]*Attachment, error) {
	if e.loadedTypes[2] {
		return e.Attachments, nil
	}
	return nil, &NotLoadedError{edge: "attachments"}
}

// TriageReviewsOrErr returns the TriageReviews value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) TriageReviewsOrErr() ([]*TriageReview, error) {
	if e.loadedTypes[3] {
		return e.TriageReviews, nil
	}
	return nil, &NotLoadedError{edge: "triage_reviews"}
}

// ArchitectReviewsOrErr returns the ArchitectReviews value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) ArchitectReviewsOrErr() ([]*ArchitectReview, error) {
	if e.loadedTypes[4] {
		return e.ArchitectReviews, nil
	}
	return nil, &NotLoadedError{edge: "architect_reviews"}
}

// CodeReviewsOrErr returns the CodeReviews value or an error if the edge
// was not loaded in eager-loading.
func (e RequestEdges) CodeReviewsOrErr() ([]*CodeReview, error) {
	if e.loadedTypes[5] {
		return e.CodeReviews, nil
	}
	return nil, &NotLoadedError{edge: "code_reviews"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Request) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case request.FieldBranchDeleted:
			values[i] = new(sql.NullBool)
		case request.FieldID, request.FieldProjectID, request.FieldTriageCount, request.FieldArchitectCount, request.FieldIssueNumber, request.FieldPrNumber, request.FieldDeploymentRunID, request.FieldDeploymentRetryCount:
			values[i] = new(sql.NullInt64)
		case request.FieldTitle, request.FieldDescription, request.FieldSubmitterName, request.FieldSubmitterEmail, request.FieldKind, request.FieldPriority, request.FieldState, request.FieldStepsToReproduce, request.FieldExpectedBehavior, request.FieldActualBehavior, request.FieldSessionID, request.FieldPrURL, request.FieldBranchName, request.FieldImplementationStatus, request.FieldDeploymentStatus:
			values[i] = new(sql.NullString)
		case request.FieldLastTriageAt, request.FieldLastArchitectAt, request.FieldTriggeredAt, request.FieldCompletedAt, request.FieldDeployedAt, request.FieldStallNotifiedAt, request.FieldCreatedAt, request.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Request fields.
func (_m *Request) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case request.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case request.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case request.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case request.FieldSubmitterName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitter_name", values[i])
			} else if value.Valid {
				_m.SubmitterName = new(string)
				*_m.SubmitterName = value.String
			}
		case request.FieldSubmitterEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitter_email", values[i])
			} else if value.Valid {
				_m.SubmitterEmail = new(string)
				*_m.SubmitterEmail = value.String
			}
		case request.FieldProjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = int(value.Int64)
			}
		case request.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = request.Kind(value.String)
			}
		case request.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = request.Priority(value.String)
			}
		case request.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = request.State(value.String)
			}
		case request.FieldStepsToReproduce:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field steps_to_reproduce", values[i])
			} else if value.Valid {
				_m.StepsToReproduce = new(string)
				*_m.StepsToReproduce = value.String
			}
		case request.FieldExpectedBehavior:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_behavior", values[i])
			} else if value.Valid {
				_m.ExpectedBehavior = new(string)
				*_m.ExpectedBehavior = value.String
			}
		case request.FieldActualBehavior:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actual_behavior", values[i])
			} else if value.Valid {
				_m.ActualBehavior = new(string)
				*_m.ActualBehavior = value.String
			}
		case request.FieldLastTriageAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_triage_at", values[i])
			} else if value.Valid {
				_m.LastTriageAt = new(time.Time)
				*_m.LastTriageAt = value.Time
			}
		case request.FieldTriageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field triage_count", values[i])
			} else if value.Valid {
				_m.TriageCount = int(value.Int64)
			}
		case request.FieldLastArchitectAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_architect_at", values[i])
			} else if value.Valid {
				_m.LastArchitectAt = new(time.Time)
				*_m.LastArchitectAt = value.Time
			}
		case request.FieldArchitectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field architect_count", values[i])
			} else if value.Valid {
				_m.ArchitectCount = int(value.Int64)
			}
		case request.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case request.FieldIssueNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field issue_number", values[i])
			} else if value.Valid {
				_m.IssueNumber = new(int)
				*_m.IssueNumber = int(value.Int64)
			}
		case request.FieldPrNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pr_number", values[i])
			} else if value.Valid {
				_m.PrNumber = new(int)
				*_m.PrNumber = int(value.Int64)
			}
		case request.FieldPrURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pr_url", values[i])
			} else if value.Valid {
				_m.PrURL = new(string)
				*_m.PrURL = value.String
			}
		case request.FieldBranchName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_name", values[i])
			} else if value.Valid {
				_m.BranchName = new(string)
				*_m.BranchName = value.String
			}
		case request.FieldTriggeredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_at", values[i])
			} else if value.Valid {
				_m.TriggeredAt = new(time.Time)
				*_m.TriggeredAt = value.Time
			}
		case request.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case request.FieldImplementationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field implementation_status", values[i])
			} else if value.Valid {
				_m.ImplementationStatus = new(request.ImplementationStatus)
				*_m.ImplementationStatus = request.ImplementationStatus(value.String)
			}
		case request.FieldDeploymentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deployment_status", values[i])
			} else if value.Valid {
				_m.DeploymentStatus = request.DeploymentStatus(value.String)
			}
		case request.FieldDeploymentRunID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field deployment_run_id", values[i])
			} else if value.Valid {
				_m.DeploymentRunID = new(int64)
				*_m.DeploymentRunID = value.Int64
			}
		case request.FieldDeployedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deployed_at", values[i])
			} else if value.Valid {
				_m.DeployedAt = new(time.Time)
				*_m.DeployedAt = value.Time
			}
		case request.FieldDeploymentRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field deployment_retry_count", values[i])
			} else if value.Valid {
				_m.DeploymentRetryCount = int(value.Int64)
			}
		case request.FieldBranchDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field branch_deleted", values[i])
			} else if value.Valid {
				_m.BranchDeleted = value.Bool
			}
		case request.FieldStallNotifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field stall_notified_at", values[i])
			} else if value.Valid {
				_m.StallNotifiedAt = new(time.Time)
				*_m.StallNotifiedAt = value.Time
			}
		case request.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case request.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Request.
// This includes values selected through modifiers, order, etc.
func (_m *Request) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Request entity.
func (_m *Request) QueryProject() *ProjectQuery {
	return NewRequestClient(_m.config).QueryProject(_m)
}

// QueryComments queries the "comments" edge of the Request entity.
func (_m *Request) QueryComments() *CommentQuery {
	return NewRequestClient(_m.config).QueryComments(_m)
}

// QueryAttachments queries the "attachments" edge of the Request entity.
func (_m *Request) QueryAttachments() *AttachmentQuery {
	return NewRequestClient(_m.config).QueryAttachments(_m)
}

// QueryTriageReviews queries the "triage_reviews" edge of the Request entity.
func (_m *Request) QueryTriageReviews() *TriageReviewQuery {
	return NewRequestClient(_m.config).QueryTriageReviews(_m)
}

// QueryArchitectReviews queries the "architect_reviews" edge of the Request entity.
func (_m *Request) QueryArchitectReviews() *ArchitectReviewQuery {
	return NewRequestClient(_m.config).QueryArchitectReviews(_m)
}

// QueryCodeReviews queries the "code_reviews" edge of the Request entity.
func (_m *Request) QueryCodeReviews() *CodeReviewQuery {
	return NewRequestClient(_m.config).QueryCodeReviews(_m)
}

// Update returns a builder for updating this Request.
// Note that you need to call Request.Unwrap() before calling this method if this Request
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Request) Update() *RequestUpdateOne {
	return NewRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Request entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Request) Unwrap() *Request {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Request is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Request) String() string {
	var builder strings.Builder
	builder.WriteString("Request(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.SubmitterName; v != nil {
		builder.WriteString("submitter_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SubmitterEmail; v != nil {
		builder.WriteString("submitter_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	if v := _m.StepsToReproduce; v != nil {
		builder.WriteString("steps_to_reproduce=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExpectedBehavior; v != nil {
		builder.WriteString("expected_behavior=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActualBehavior; v != nil {
		builder.WriteString("actual_behavior=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastTriageAt; v != nil {
		builder.WriteString("last_triage_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("triage_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriageCount))
	builder.WriteString(", ")
	if v := _m.LastArchitectAt; v != nil {
		builder.WriteString("last_architect_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("architect_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArchitectCount))
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.IssueNumber; v != nil {
		builder.WriteString("issue_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PrNumber; v != nil {
		builder.WriteString("pr_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PrURL; v != nil {
		builder.WriteString("pr_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BranchName; v != nil {
		builder.WriteString("branch_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TriggeredAt; v != nil {
		builder.WriteString("triggered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ImplementationStatus; v != nil {
		builder.WriteString("implementation_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("deployment_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeploymentStatus))
	builder.WriteString(", ")
	if v := _m.DeploymentRunID; v != nil {
		builder.WriteString("deployment_run_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DeployedAt; v != nil {
		builder.WriteString("deployed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("deployment_retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeploymentRetryCount))
	builder.WriteString(", ")
	builder.WriteString("branch_deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.BranchDeleted))
	builder.WriteString(", ")
	if v := _m.StallNotifiedAt; v != nil {
		builder.WriteString("stall_notified_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Requests is a parsable slice of Request.
type Requests []*Request
