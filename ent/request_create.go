// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conveyor-dev/conveyor/ent/architectreview"
	"github.com/conveyor-dev/conveyor/ent/attachment"
	"github.com/conveyor-dev/conveyor/ent/codereview"
	"github.com/conveyor-dev/conveyor/ent/comment"
	"github.com/conveyor-dev/conveyor/ent/project"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/ent/triagereview"
)

// RequestCreate is the builder for creating a Request entity.
type RequestCreate struct {
	config
	mutation *RequestMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *RequestCreate) SetTitle(v string) *RequestCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RequestCreate) SetDescription(v string) *RequestCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetSubmitterName sets the "submitter_name" field.
func (_c *RequestCreate) SetSubmitterName(v string) *RequestCreate {
	_c.mutation.SetSubmitterName(v)
	return _c
}

// SetNillableSubmitterName sets the "submitter_name" field if the given value is not nil.
func (_c *RequestCreate) SetNillableSubmitterName(v *string) *RequestCreate {
	if v != nil {
		_c.SetSubmitterName(*v)
	}
	return _c
}

// SetSubmitterEmail sets the "submitter_email" field.
func (_c *RequestCreate) SetSubmitterEmail(v string) *RequestCreate {
	_c.mutation.SetSubmitterEmail(v)
	return _c
}

// SetNillableSubmitterEmail sets the "submitter_email" field if the given value is not nil.
func (_c *RequestCreate) SetNillableSubmitterEmail(v *string) *RequestCreate {
	if v != nil {
		_c.SetSubmitterEmail(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *RequestCreate) SetProjectID(v int) *RequestCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *RequestCreate) SetKind(v request.Kind) *RequestCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *RequestCreate) SetNillableKind(v *request.Kind) *RequestCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *RequestCreate) SetPriority(v request.Priority) *RequestCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *RequestCreate) SetNillablePriority(v *request.Priority) *RequestCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *RequestCreate) SetState(v request.State) *RequestCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *RequestCreate) SetNillableState(v *request.State) *RequestCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetStepsToReproduce sets the "steps_to_reproduce" field.
func (_c *RequestCreate) SetStepsToReproduce(v string) *RequestCreate {
	_c.mutation.SetStepsToReproduce(v)
	return _c
}

// SetNillableStepsToReproduce sets the "steps_to_reproduce" field if the given value is not nil.
func (_c *RequestCreate) SetNillableStepsToReproduce(v *string) *RequestCreate {
	if v != nil {
		_c.SetStepsToReproduce(*v)
	}
	return _c
}

// SetExpectedBehavior sets the "expected_behavior" field.
func (_c *RequestCreate) SetExpectedBehavior(v string) *RequestCreate {
	_c.mutation.SetExpectedBehavior(v)
	return _c
}

// SetNillableExpectedBehavior sets the "expected_behavior" field if the given value is not nil.
func (_c *RequestCreate) SetNillableExpectedBehavior(v *string) *RequestCreate {
	if v != nil {
		_c.SetExpectedBehavior(*v)
	}
	return _c
}

// SetActualBehavior sets the "actual_behavior" field.
func (_c *RequestCreate) SetActualBehavior(v string) *RequestCreate {
	_c.mutation.SetActualBehavior(v)
	return _c
}

// SetNillableActualBehavior sets the "actual_behavior" field if the given value is not nil.
func (_c *RequestCreate) SetNillableActualBehavior(v *string) *RequestCreate {
	if v != nil {
		_c.SetActualBehavior(*v)
	}
	return _c
}

// SetLastTriageAt sets the "last_triage_at" field.
func (_c *RequestCreate) SetLastTriageAt(v time.Time) *RequestCreate {
	_c.mutation.SetLastTriageAt(v)
	return _c
}

// SetNillableLastTriageAt sets the "last_triage_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableLastTriageAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetLastTriageAt(*v)
	}
	return _c
}

// SetTriageCount sets the "triage_count" field.
func (_c *RequestCreate) SetTriageCount(v int) *RequestCreate {
	_c.mutation.SetTriageCount(v)
	return _c
}

// SetNillableTriageCount sets the "triage_count" field if the given value is not nil.
func (_c *RequestCreate) SetNillableTriageCount(v *int) *RequestCreate {
	if v != nil {
		_c.SetTriageCount(*v)
	}
	return _c
}

// SetLastArchitectAt sets the "last_architect_at" field.
func (_c *RequestCreate) SetLastArchitectAt(v time.Time) *RequestCreate {
	_c.mutation.SetLastArchitectAt(v)
	return _c
}

// SetNillableLastArchitectAt sets the "last_architect_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableLastArchitectAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetLastArchitectAt(*v)
	}
	return _c
}

// SetArchitectCount sets the "architect_count" field.
func (_c *RequestCreate) SetArchitectCount(v int) *RequestCreate {
	_c.mutation.SetArchitectCount(v)
	return _c
}

// SetNillableArchitectCount sets the "architect_count" field if the given value is not nil.
func (_c *RequestCreate) SetNillableArchitectCount(v *int) *RequestCreate {
	if v != nil {
		_c.SetArchitectCount(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RequestCreate) SetSessionID(v string) *RequestCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *RequestCreate) SetNillableSessionID(v *string) *RequestCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetIssueNumber sets the "issue_number" field.
func (_c *RequestCreate) SetIssueNumber(v int) *RequestCreate {
	_c.mutation.SetIssueNumber(v)
	return _c
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_c *RequestCreate) SetNillableIssueNumber(v *int) *RequestCreate {
	if v != nil {
		_c.SetIssueNumber(*v)
	}
	return _c
}

// SetPrNumber sets the "pr_number" field.
func (_c *RequestCreate) SetPrNumber(v int) *RequestCreate {
	_c.mutation.SetPrNumber(v)
	return _c
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_c *RequestCreate) SetNillablePrNumber(v *int) *RequestCreate {
	if v != nil {
		_c.SetPrNumber(*v)
	}
	return _c
}

// SetPrURL sets the "pr_url" field.
func (_c *RequestCreate) SetPrURL(v string) *RequestCreate {
	_c.mutation.SetPrURL(v)
	return _c
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_c *RequestCreate) SetNillablePrURL(v *string) *RequestCreate {
	if v != nil {
		_c.SetPrURL(*v)
	}
	return _c
}

// SetBranchName sets the "branch_name" field.
func (_c *RequestCreate) SetBranchName(v string) *RequestCreate {
	_c.mutation.SetBranchName(v)
	return _c
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_c *RequestCreate) SetNillableBranchName(v *string) *RequestCreate {
	if v != nil {
		_c.SetBranchName(*v)
	}
	return _c
}

// SetTriggeredAt sets the "triggered_at" field.
func (_c *RequestCreate) SetTriggeredAt(v time.Time) *RequestCreate {
	_c.mutation.SetTriggeredAt(v)
	return _c
}

// SetNillableTriggeredAt sets the "triggered_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableTriggeredAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetTriggeredAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RequestCreate) SetCompletedAt(v time.Time) *RequestCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableCompletedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetImplementationStatus sets the "implementation_status" field.
func (_c *RequestCreate) SetImplementationStatus(v request.ImplementationStatus) *RequestCreate {
	_c.mutation.SetImplementationStatus(v)
	return _c
}

// SetNillableImplementationStatus sets the "implementation_status" field if the given value is not nil.
func (_c *RequestCreate) SetNillableImplementationStatus(v *request.ImplementationStatus) *RequestCreate {
	if v != nil {
		_c.SetImplementationStatus(*v)
	}
	return _c
}

// SetDeploymentStatus sets the "deployment_status" field.
func (_c *RequestCreate) SetDeploymentStatus(v request.DeploymentStatus) *RequestCreate {
	_c.mutation.SetDeploymentStatus(v)
	return _c
}

// SetNillableDeploymentStatus sets the "deployment_status" field if the given value is not nil.
func (_c *RequestCreate) SetNillableDeploymentStatus(v *request.DeploymentStatus) *RequestCreate {
	if v != nil {
		_c.SetDeploymentStatus(*v)
	}
	return _c
}

// SetDeploymentRunID sets the "deployment_run_id" field.
func (_c *RequestCreate) SetDeploymentRunID(v int64) *RequestCreate {
	_c.mutation.SetDeploymentRunID(v)
	return _c
}

// SetNillableDeploymentRunID sets the "deployment_run_id" field if the given value is not nil.
func (_c *RequestCreate) SetNillableDeploymentRunID(v *int64) *RequestCreate {
	if v != nil {
		_c.SetDeploymentRunID(*v)
	}
	return _c
}

// SetDeployedAt sets the "deployed_at" field.
func (_c *RequestCreate) SetDeployedAt(v time.Time) *RequestCreate {
	_c.mutation.SetDeployedAt(v)
	return _c
}

// SetNillableDeployedAt sets the "deployed_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableDeployedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetDeployedAt(*v)
	}
	return _c
}

// SetDeploymentRetryCount sets the "deployment_retry_count" field.
func (_c *RequestCreate) SetDeploymentRetryCount(v int) *RequestCreate {
	_c.mutation.SetDeploymentRetryCount(v)
	return _c
}

// SetNillableDeploymentRetryCount sets the "deployment_retry_count" field if the given value is not nil.
func (_c *RequestCreate) SetNillableDeploymentRetryCount(v *int) *RequestCreate {
	if v != nil {
		_c.SetDeploymentRetryCount(*v)
	}
	return _c
}

// SetBranchDeleted sets the "branch_deleted" field.
func (_c *RequestCreate) SetBranchDeleted(v bool) *RequestCreate {
	_c.mutation.SetBranchDeleted(v)
	return _c
}

// SetNillableBranchDeleted sets the "branch_deleted" field if the given value is not nil.
func (_c *RequestCreate) SetNillableBranchDeleted(v *bool) *RequestCreate {
	if v != nil {
		_c.SetBranchDeleted(*v)
	}
	return _c
}

// SetStallNotifiedAt sets the "stall_notified_at" field.
func (_c *RequestCreate) SetStallNotifiedAt(v time.Time) *RequestCreate {
	_c.mutation.SetStallNotifiedAt(v)
	return _c
}

// SetNillableStallNotifiedAt sets the "stall_notified_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableStallNotifiedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetStallNotifiedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RequestCreate) SetCreatedAt(v time.Time) *RequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableCreatedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RequestCreate) SetUpdatedAt(v time.Time) *RequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RequestCreate) SetNillableUpdatedAt(v *time.Time) *RequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *RequestCreate) SetProject(v *Project) *RequestCreate {
	return _c.SetProjectID(v.ID)
}

// AddCommentIDs adds the "comments" edge to the Comment entity by IDs.
func (_c *RequestCreate) AddCommentIDs(ids ...string) *RequestCreate {
	_c.mutation.AddCommentIDs(ids...)
	return _c
}

// AddComments adds the "comments" edges to the Comment entity.
func (_c *RequestCreate) AddComments(v ...*Comment) *RequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCommentIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_c *RequestCreate) AddAttachmentIDs(ids ...string) *RequestCreate {
	_c.mutation.AddAttachmentIDs(ids...)
	return _c
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_c *RequestCreate) AddAttachments(v ...*Attachment) *RequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttachmentIDs(ids...)
}

// AddTriageReviewIDs adds the "triage_reviews" edge to the TriageReview entity by IDs.
func (_c *RequestCreate) AddTriageReviewIDs(ids ...string) *RequestCreate {
	_c.mutation.AddTriageReviewIDs(ids...)
	return _c
}

// AddTriageReviews adds the "triage_reviews" edges to the TriageReview entity.
func (_c *RequestCreate) AddTriageReviews(v ...*TriageReview) *RequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTriageReviewIDs(ids...)
}

// AddArchitectReviewIDs adds the "architect_reviews" edge to the ArchitectReview entity by IDs.
func (_c *RequestCreate) AddArchitectReviewIDs(ids ...string) *RequestCreate {
	_c.mutation.AddArchitectReviewIDs(ids...)
	return _c
}

// AddArchitectReviews adds the "architect_reviews" edges to the ArchitectReview entity.
func (_c *RequestCreate) AddArchitectReviews(v ...*ArchitectReview) *RequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArchitectReviewIDs(ids...)
}

// AddCodeReviewIDs adds the "code_reviews" edge to the CodeReview entity by IDs.
func (_c *RequestCreate) AddCodeReviewIDs(ids ...string) *RequestCreate {
	_c.mutation.AddCodeReviewIDs(ids...)
	return _c
}

// AddCodeReviews adds the "code_reviews" edges to the CodeReview entity.
func (_c *RequestCreate) AddCodeReviews(v ...*CodeReview) *RequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCodeReviewIDs(ids...)
}

// Mutation returns the RequestMutation object of the builder.
func (_c *RequestCreate) Mutation() *RequestMutation {
	return _c.mutation
}

// Save creates the Request in the database.
func (_c *RequestCreate) Save(ctx context.Context) (*Request, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestCreate) SaveX(ctx context.Context) *Request {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := request.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := request.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := request.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.TriageCount(); !ok {
		v := request.DefaultTriageCount
		_c.mutation.SetTriageCount(v)
	}
	if _, ok := _c.mutation.ArchitectCount(); !ok {
		v := request.DefaultArchitectCount
		_c.mutation.SetArchitectCount(v)
	}
	if _, ok := _c.mutation.DeploymentStatus(); !ok {
		v := request.DefaultDeploymentStatus
		_c.mutation.SetDeploymentStatus(v)
	}
	if _, ok := _c.mutation.DeploymentRetryCount(); !ok {
		v := request.DefaultDeploymentRetryCount
		_c.mutation.SetDeploymentRetryCount(v)
	}
	if _, ok := _c.mutation.BranchDeleted(); !ok {
		v := request.DefaultBranchDeleted
		_c.mutation.SetBranchDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := request.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := request.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Request.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Request.description"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Request.project_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Request.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := request.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Request.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Request.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := request.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Request.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Request.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := request.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Request.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriageCount(); !ok {
		return &ValidationError{Name: "triage_count", err: errors.New(`ent: missing required field "Request.triage_count"`)}
	}
	if _, ok := _c.mutation.ArchitectCount(); !ok {
		return &ValidationError{Name: "architect_count", err: errors.New(`ent: missing required field "Request.architect_count"`)}
	}
	if v, ok := _c.mutation.ImplementationStatus(); ok {
		if err := request.ImplementationStatusValidator(v); err != nil {
			return &ValidationError{Name: "implementation_status", err: fmt.Errorf(`ent: validator failed for field "Request.implementation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeploymentStatus(); !ok {
		return &ValidationError{Name: "deployment_status", err: errors.New(`ent: missing required field "Request.deployment_status"`)}
	}
	if v, ok := _c.mutation.DeploymentStatus(); ok {
		if err := request.DeploymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "deployment_status", err: fmt.Errorf(`ent: validator failed for field "Request.deployment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeploymentRetryCount(); !ok {
		return &ValidationError{Name: "deployment_retry_count", err: errors.New(`ent: missing required field "Request.deployment_retry_count"`)}
	}
	if _, ok := _c.mutation.BranchDeleted(); !ok {
		return &ValidationError{Name: "branch_deleted", err: errors.New(`ent: missing required field "Request.branch_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Request.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Request.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Request.project"`)}
	}
	return nil
}

func (_c *RequestCreate) sqlSave(ctx context.Context) (*Request, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RequestCreate) createSpec() (*Request, *sqlgraph.CreateSpec) {
	var (
		_node = &Request{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(request.Table, sqlgraph.NewFieldSpec(request.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(request.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(request.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.SubmitterName(); ok {
		_spec.SetField(request.FieldSubmitterName, field.TypeString, value)
		_node.SubmitterName = &value
	}
	if value, ok := _c.mutation.SubmitterEmail(); ok {
		_spec.SetField(request.FieldSubmitterEmail, field.TypeString, value)
		_node.SubmitterEmail = &value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(request.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(request.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(request.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.StepsToReproduce(); ok {
		_spec.SetField(request.FieldStepsToReproduce, field.TypeString, value)
		_node.StepsToReproduce = &value
	}
	if value, ok := _c.mutation.ExpectedBehavior(); ok {
		_spec.SetField(request.FieldExpectedBehavior, field.TypeString, value)
		_node.ExpectedBehavior = &value
	}
	if value, ok := _c.mutation.ActualBehavior(); ok {
		_spec.SetField(request.FieldActualBehavior, field.TypeString, value)
		_node.ActualBehavior = &value
	}
	if value, ok := _c.mutation.LastTriageAt(); ok {
		_spec.SetField(request.FieldLastTriageAt, field.TypeTime, value)
		_node.LastTriageAt = &value
	}
	if value, ok := _c.mutation.TriageCount(); ok {
		_spec.SetField(request.FieldTriageCount, field.TypeInt, value)
		_node.TriageCount = value
	}
	if value, ok := _c.mutation.LastArchitectAt(); ok {
		_spec.SetField(request.FieldLastArchitectAt, field.TypeTime, value)
		_node.LastArchitectAt = &value
	}
	if value, ok := _c.mutation.ArchitectCount(); ok {
		_spec.SetField(request.FieldArchitectCount, field.TypeInt, value)
		_node.ArchitectCount = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(request.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.IssueNumber(); ok {
		_spec.SetField(request.FieldIssueNumber, field.TypeInt, value)
		_node.IssueNumber = &value
	}
	if value, ok := _c.mutation.PrNumber(); ok {
		_spec.SetField(request.FieldPrNumber, field.TypeInt, value)
		_node.PrNumber = &value
	}
	if value, ok := _c.mutation.PrURL(); ok {
		_spec.SetField(request.FieldPrURL, field.TypeString, value)
		_node.PrURL = &value
	}
	if value, ok := _c.mutation.BranchName(); ok {
		_spec.SetField(request.FieldBranchName, field.TypeString, value)
		_node.BranchName = &value
	}
	if value, ok := _c.mutation.TriggeredAt(); ok {
		_spec.SetField(request.FieldTriggeredAt, field.TypeTime, value)
		_node.TriggeredAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(request.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ImplementationStatus(); ok {
		_spec.SetField(request.FieldImplementationStatus, field.TypeEnum, value)
		_node.ImplementationStatus = &value
	}
	if value, ok := _c.mutation.DeploymentStatus(); ok {
		_spec.SetField(request.FieldDeploymentStatus, field.TypeEnum, value)
		_node.DeploymentStatus = value
	}
	if value, ok := _c.mutation.DeploymentRunID(); ok {
		_spec.SetField(request.FieldDeploymentRunID, field.TypeInt64, value)
		_node.DeploymentRunID = &value
	}
	if value, ok := _c.mutation.DeployedAt(); ok {
		_spec.SetField(request.FieldDeployedAt, field.TypeTime, value)
		_node.DeployedAt = &value
	}
	if value, ok := _c.mutation.DeploymentRetryCount(); ok {
		_spec.SetField(request.FieldDeploymentRetryCount, field.TypeInt, value)
		_node.DeploymentRetryCount = value
	}
	if value, ok := _c.mutation.BranchDeleted(); ok {
		_spec.SetField(request.FieldBranchDeleted, field.TypeBool, value)
		_node.BranchDeleted = value
	}
	if value, ok := _c.mutation.StallNotifiedAt(); ok {
		_spec.SetField(request.FieldStallNotifiedAt, field.TypeTime, value)
		_node.StallNotifiedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(request.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   request.ProjectTable,
			Columns: []string{request.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CommentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CommentsTable,
			Columns: []string{request.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AttachmentsTable,
			Columns: []string{request.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TriageReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TriageReviewsTable,
			Columns: []string{request.TriageReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triagereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArchitectReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.ArchitectReviewsTable,
			Columns: []string{request.ArchitectReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(architectreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CodeReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CodeReviewsTable,
			Columns: []string{request.CodeReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RequestCreateBulk is the builder for creating many Request entities in bulk.
type RequestCreateBulk struct {
	config
	err      error
	builders []*RequestCreate
}

// Save creates the Request entities in the database.
func (_c *RequestCreateBulk) Save(ctx context.Context) ([]*Request, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Request, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RequestCreateBulk) SaveX(ctx context.Context) []*Request {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
