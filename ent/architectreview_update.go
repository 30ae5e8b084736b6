// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/conveyor-dev/conveyor/ent/architectreview"
	"github.com/conveyor-dev/conveyor/ent/predicate"
)

// ArchitectReviewUpdate is the builder for updating ArchitectReview entities.
type ArchitectReviewUpdate struct {
	config
	hooks    []Hook
	mutation *ArchitectReviewMutation
}

// Where appends a list predicates to the ArchitectReviewUpdate builder.
func (_u *ArchitectReviewUpdate) Where(ps ...predicate.ArchitectReview) *ArchitectReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSolutionSummary sets the "solution_summary" field.
func (_u *ArchitectReviewUpdate) SetSolutionSummary(v string) *ArchitectReviewUpdate {
	_u.mutation.SetSolutionSummary(v)
	return _u
}

// SetNillableSolutionSummary sets the "solution_summary" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableSolutionSummary(v *string) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetSolutionSummary(*v)
	}
	return _u
}

// SetApproach sets the "approach" field.
func (_u *ArchitectReviewUpdate) SetApproach(v string) *ArchitectReviewUpdate {
	_u.mutation.SetApproach(v)
	return _u
}

// SetNillableApproach sets the "approach" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableApproach(v *string) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetApproach(*v)
	}
	return _u
}

// SetSolutionJSON sets the "solution_json" field.
func (_u *ArchitectReviewUpdate) SetSolutionJSON(v string) *ArchitectReviewUpdate {
	_u.mutation.SetSolutionJSON(v)
	return _u
}

// SetNillableSolutionJSON sets the "solution_json" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableSolutionJSON(v *string) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetSolutionJSON(*v)
	}
	return _u
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (_u *ArchitectReviewUpdate) SetEstimatedComplexity(v string) *ArchitectReviewUpdate {
	_u.mutation.SetEstimatedComplexity(v)
	return _u
}

// SetNillableEstimatedComplexity sets the "estimated_complexity" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableEstimatedComplexity(v *string) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetEstimatedComplexity(*v)
	}
	return _u
}

// ClearEstimatedComplexity clears the value of the "estimated_complexity" field.
func (_u *ArchitectReviewUpdate) ClearEstimatedComplexity() *ArchitectReviewUpdate {
	_u.mutation.ClearEstimatedComplexity()
	return _u
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (_u *ArchitectReviewUpdate) SetEstimatedEffort(v string) *ArchitectReviewUpdate {
	_u.mutation.SetEstimatedEffort(v)
	return _u
}

// SetNillableEstimatedEffort sets the "estimated_effort" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableEstimatedEffort(v *string) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetEstimatedEffort(*v)
	}
	return _u
}

// ClearEstimatedEffort clears the value of the "estimated_effort" field.
func (_u *ArchitectReviewUpdate) ClearEstimatedEffort() *ArchitectReviewUpdate {
	_u.mutation.ClearEstimatedEffort()
	return _u
}

// SetFilesAnalyzed sets the "files_analyzed" field.
func (_u *ArchitectReviewUpdate) SetFilesAnalyzed(v int) *ArchitectReviewUpdate {
	_u.mutation.ResetFilesAnalyzed()
	_u.mutation.SetFilesAnalyzed(v)
	return _u
}

// SetNillableFilesAnalyzed sets the "files_analyzed" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableFilesAnalyzed(v *int) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetFilesAnalyzed(*v)
	}
	return _u
}

// AddFilesAnalyzed adds value to the "files_analyzed" field.
func (_u *ArchitectReviewUpdate) AddFilesAnalyzed(v int) *ArchitectReviewUpdate {
	_u.mutation.AddFilesAnalyzed(v)
	return _u
}

// SetFilePaths sets the "file_paths" field.
func (_u *ArchitectReviewUpdate) SetFilePaths(v []string) *ArchitectReviewUpdate {
	_u.mutation.SetFilePaths(v)
	return _u
}

// AppendFilePaths appends value to the "file_paths" field.
func (_u *ArchitectReviewUpdate) AppendFilePaths(v []string) *ArchitectReviewUpdate {
	_u.mutation.AppendFilePaths(v)
	return _u
}

// ClearFilePaths clears the value of the "file_paths" field.
func (_u *ArchitectReviewUpdate) ClearFilePaths() *ArchitectReviewUpdate {
	_u.mutation.ClearFilePaths()
	return _u
}

// SetStep1PromptTokens sets the "step1_prompt_tokens" field.
func (_u *ArchitectReviewUpdate) SetStep1PromptTokens(v int) *ArchitectReviewUpdate {
	_u.mutation.ResetStep1PromptTokens()
	_u.mutation.SetStep1PromptTokens(v)
	return _u
}

// SetNillableStep1PromptTokens sets the "step1_prompt_tokens" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableStep1PromptTokens(v *int) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetStep1PromptTokens(*v)
	}
	return _u
}

// AddStep1PromptTokens adds value to the "step1_prompt_tokens" field.
func (_u *ArchitectReviewUpdate) AddStep1PromptTokens(v int) *ArchitectReviewUpdate {
	_u.mutation.AddStep1PromptTokens(v)
	return _u
}

// SetStep1CompletionTokens sets the "step1_completion_tokens" field.
func (_u *ArchitectReviewUpdate) SetStep1CompletionTokens(v int) *ArchitectReviewUpdate {
	_u.mutation.ResetStep1CompletionTokens()
	_u.mutation.SetStep1CompletionTokens(v)
	return _u
}

// SetNillableStep1CompletionTokens sets the "step1_completion_tokens" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableStep1CompletionTokens(v *int) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetStep1CompletionTokens(*v)
	}
	return _u
}

// AddStep1CompletionTokens adds value to the "step1_completion_tokens" field.
func (_u *ArchitectReviewUpdate) AddStep1CompletionTokens(v int) *ArchitectReviewUpdate {
	_u.mutation.AddStep1CompletionTokens(v)
	return _u
}

// SetStep2PromptTokens sets the "step2_prompt_tokens" field.
func (_u *ArchitectReviewUpdate) SetStep2PromptTokens(v int) *ArchitectReviewUpdate {
	_u.mutation.ResetStep2PromptTokens()
	_u.mutation.SetStep2PromptTokens(v)
	return _u
}

// SetNillableStep2PromptTokens sets the "step2_prompt_tokens" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableStep2PromptTokens(v *int) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetStep2PromptTokens(*v)
	}
	return _u
}

// AddStep2PromptTokens adds value to the "step2_prompt_tokens" field.
func (_u *ArchitectReviewUpdate) AddStep2PromptTokens(v int) *ArchitectReviewUpdate {
	_u.mutation.AddStep2PromptTokens(v)
	return _u
}

// SetStep2CompletionTokens sets the "step2_completion_tokens" field.
func (_u *ArchitectReviewUpdate) SetStep2CompletionTokens(v int) *ArchitectReviewUpdate {
	_u.mutation.ResetStep2CompletionTokens()
	_u.mutation.SetStep2CompletionTokens(v)
	return _u
}

// SetNillableStep2CompletionTokens sets the "step2_completion_tokens" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableStep2CompletionTokens(v *int) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetStep2CompletionTokens(*v)
	}
	return _u
}

// AddStep2CompletionTokens adds value to the "step2_completion_tokens" field.
func (_u *ArchitectReviewUpdate) AddStep2CompletionTokens(v int) *ArchitectReviewUpdate {
	_u.mutation.AddStep2CompletionTokens(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *ArchitectReviewUpdate) SetModel(v string) *ArchitectReviewUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableModel(v *string) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *ArchitectReviewUpdate) ClearModel() *ArchitectReviewUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ArchitectReviewUpdate) SetDurationMs(v int64) *ArchitectReviewUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableDurationMs(v *int64) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ArchitectReviewUpdate) AddDurationMs(v int64) *ArchitectReviewUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ArchitectReviewUpdate) SetDecision(v architectreview.Decision) *ArchitectReviewUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableDecision(v *architectreview.Decision) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetHumanFeedback sets the "human_feedback" field.
func (_u *ArchitectReviewUpdate) SetHumanFeedback(v string) *ArchitectReviewUpdate {
	_u.mutation.SetHumanFeedback(v)
	return _u
}

// SetNillableHumanFeedback sets the "human_feedback" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableHumanFeedback(v *string) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetHumanFeedback(*v)
	}
	return _u
}

// ClearHumanFeedback clears the value of the "human_feedback" field.
func (_u *ArchitectReviewUpdate) ClearHumanFeedback() *ArchitectReviewUpdate {
	_u.mutation.ClearHumanFeedback()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *ArchitectReviewUpdate) SetApprovedBy(v string) *ArchitectReviewUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableApprovedBy(v *string) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *ArchitectReviewUpdate) ClearApprovedBy() *ArchitectReviewUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *ArchitectReviewUpdate) SetApprovedAt(v time.Time) *ArchitectReviewUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *ArchitectReviewUpdate) SetNillableApprovedAt(v *time.Time) *ArchitectReviewUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *ArchitectReviewUpdate) ClearApprovedAt() *ArchitectReviewUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// Mutation returns the ArchitectReviewMutation object of the builder.
func (_u *ArchitectReviewUpdate) Mutation() *ArchitectReviewMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArchitectReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArchitectReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArchitectReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArchitectReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArchitectReviewUpdate) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := architectreview.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ArchitectReview.decision": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ArchitectReview.request"`)
	}
	return nil
}

func (_u *ArchitectReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(architectreview.Table, architectreview.Columns, sqlgraph.NewFieldSpec(architectreview.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SolutionSummary(); ok {
		_spec.SetField(architectreview.FieldSolutionSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Approach(); ok {
		_spec.SetField(architectreview.FieldApproach, field.TypeString, value)
	}
	if value, ok := _u.mutation.SolutionJSON(); ok {
		_spec.SetField(architectreview.FieldSolutionJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedComplexity(); ok {
		_spec.SetField(architectreview.FieldEstimatedComplexity, field.TypeString, value)
	}
	if _u.mutation.EstimatedComplexityCleared() {
		_spec.ClearField(architectreview.FieldEstimatedComplexity, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedEffort(); ok {
		_spec.SetField(architectreview.FieldEstimatedEffort, field.TypeString, value)
	}
	if _u.mutation.EstimatedEffortCleared() {
		_spec.ClearField(architectreview.FieldEstimatedEffort, field.TypeString)
	}
	if value, ok := _u.mutation.FilesAnalyzed(); ok {
		_spec.SetField(architectreview.FieldFilesAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFilesAnalyzed(); ok {
		_spec.AddField(architectreview.FieldFilesAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilePaths(); ok {
		_spec.SetField(architectreview.FieldFilePaths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilePaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, architectreview.FieldFilePaths, value)
		})
	}
	if _u.mutation.FilePathsCleared() {
		_spec.ClearField(architectreview.FieldFilePaths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Step1PromptTokens(); ok {
		_spec.SetField(architectreview.FieldStep1PromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep1PromptTokens(); ok {
		_spec.AddField(architectreview.FieldStep1PromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Step1CompletionTokens(); ok {
		_spec.SetField(architectreview.FieldStep1CompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep1CompletionTokens(); ok {
		_spec.AddField(architectreview.FieldStep1CompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Step2PromptTokens(); ok {
		_spec.SetField(architectreview.FieldStep2PromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep2PromptTokens(); ok {
		_spec.AddField(architectreview.FieldStep2PromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Step2CompletionTokens(); ok {
		_spec.SetField(architectreview.FieldStep2CompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep2CompletionTokens(); ok {
		_spec.AddField(architectreview.FieldStep2CompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(architectreview.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(architectreview.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(architectreview.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(architectreview.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(architectreview.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HumanFeedback(); ok {
		_spec.SetField(architectreview.FieldHumanFeedback, field.TypeString, value)
	}
	if _u.mutation.HumanFeedbackCleared() {
		_spec.ClearField(architectreview.FieldHumanFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(architectreview.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(architectreview.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(architectreview.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(architectreview.FieldApprovedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{architectreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArchitectReviewUpdateOne is the builder for updating a single ArchitectReview entity.
type ArchitectReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArchitectReviewMutation
}

// SetSolutionSummary sets the "solution_summary" field.
func (_u *ArchitectReviewUpdateOne) SetSolutionSummary(v string) *ArchitectReviewUpdateOne {
	_u.mutation.SetSolutionSummary(v)
	return _u
}

// SetNillableSolutionSummary sets the "solution_summary" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableSolutionSummary(v *string) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetSolutionSummary(*v)
	}
	return _u
}

// SetApproach sets the "approach" field.
func (_u *ArchitectReviewUpdateOne) SetApproach(v string) *ArchitectReviewUpdateOne {
	_u.mutation.SetApproach(v)
	return _u
}

// SetNillableApproach sets the "approach" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableApproach(v *string) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetApproach(*v)
	}
	return _u
}

// SetSolutionJSON sets the "solution_json" field.
func (_u *ArchitectReviewUpdateOne) SetSolutionJSON(v string) *ArchitectReviewUpdateOne {
	_u.mutation.SetSolutionJSON(v)
	return _u
}

// SetNillableSolutionJSON sets the "solution_json" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableSolutionJSON(v *string) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetSolutionJSON(*v)
	}
	return _u
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (_u *ArchitectReviewUpdateOne) SetEstimatedComplexity(v string) *ArchitectReviewUpdateOne {
	_u.mutation.SetEstimatedComplexity(v)
	return _u
}

// SetNillableEstimatedComplexity sets the "estimated_complexity" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableEstimatedComplexity(v *string) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetEstimatedComplexity(*v)
	}
	return _u
}

// ClearEstimatedComplexity clears the value of the "estimated_complexity" field.
func (_u *ArchitectReviewUpdateOne) ClearEstimatedComplexity() *ArchitectReviewUpdateOne {
	_u.mutation.ClearEstimatedComplexity()
	return _u
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (_u *ArchitectReviewUpdateOne) SetEstimatedEffort(v string) *ArchitectReviewUpdateOne {
	_u.mutation.SetEstimatedEffort(v)
	return _u
}

// SetNillableEstimatedEffort sets the "estimated_effort" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableEstimatedEffort(v *string) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetEstimatedEffort(*v)
	}
	return _u
}

// ClearEstimatedEffort clears the value of the "estimated_effort" field.
func (_u *ArchitectReviewUpdateOne) ClearEstimatedEffort() *ArchitectReviewUpdateOne {
	_u.mutation.ClearEstimatedEffort()
	return _u
}

// SetFilesAnalyzed sets the "files_analyzed" field.
func (_u *ArchitectReviewUpdateOne) SetFilesAnalyzed(v int) *ArchitectReviewUpdateOne {
	_u.mutation.ResetFilesAnalyzed()
	_u.mutation.SetFilesAnalyzed(v)
	return _u
}

// SetNillableFilesAnalyzed sets the "files_analyzed" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableFilesAnalyzed(v *int) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetFilesAnalyzed(*v)
	}
	return _u
}

// AddFilesAnalyzed adds value to the "files_analyzed" field.
func (_u *ArchitectReviewUpdateOne) AddFilesAnalyzed(v int) *ArchitectReviewUpdateOne {
	_u.mutation.AddFilesAnalyzed(v)
	return _u
}

// SetFilePaths sets the "file_paths" field.
func (_u *ArchitectReviewUpdateOne) SetFilePaths(v []string) *ArchitectReviewUpdateOne {
	_u.mutation.SetFilePaths(v)
	return _u
}

// AppendFilePaths appends value to the "file_paths" field.
func (_u *ArchitectReviewUpdateOne) AppendFilePaths(v []string) *ArchitectReviewUpdateOne {
	_u.mutation.AppendFilePaths(v)
	return _u
}

// ClearFilePaths clears the value of the "file_paths" field.
func (_u *ArchitectReviewUpdateOne) ClearFilePaths() *ArchitectReviewUpdateOne {
	_u.mutation.ClearFilePaths()
	return _u
}

// SetStep1PromptTokens sets the "step1_prompt_tokens" field.
func (_u *ArchitectReviewUpdateOne) SetStep1PromptTokens(v int) *ArchitectReviewUpdateOne {
	_u.mutation.ResetStep1PromptTokens()
	_u.mutation.SetStep1PromptTokens(v)
	return _u
}

// SetNillableStep1PromptTokens sets the "step1_prompt_tokens" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableStep1PromptTokens(v *int) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetStep1PromptTokens(*v)
	}
	return _u
}

// AddStep1PromptTokens adds value to the "step1_prompt_tokens" field.
func (_u *ArchitectReviewUpdateOne) AddStep1PromptTokens(v int) *ArchitectReviewUpdateOne {
	_u.mutation.AddStep1PromptTokens(v)
	return _u
}

// SetStep1CompletionTokens sets the "step1_completion_tokens" field.
func (_u *ArchitectReviewUpdateOne) SetStep1CompletionTokens(v int) *ArchitectReviewUpdateOne {
	_u.mutation.ResetStep1CompletionTokens()
	_u.mutation.SetStep1CompletionTokens(v)
	return _u
}

// SetNillableStep1CompletionTokens sets the "step1_completion_tokens" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableStep1CompletionTokens(v *int) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetStep1CompletionTokens(*v)
	}
	return _u
}

// AddStep1CompletionTokens adds value to the "step1_completion_tokens" field.
func (_u *ArchitectReviewUpdateOne) AddStep1CompletionTokens(v int) *ArchitectReviewUpdateOne {
	_u.mutation.AddStep1CompletionTokens(v)
	return _u
}

// SetStep2PromptTokens sets the "step2_prompt_tokens" field.
func (_u *ArchitectReviewUpdateOne) SetStep2PromptTokens(v int) *ArchitectReviewUpdateOne {
	_u.mutation.ResetStep2PromptTokens()
	_u.mutation.SetStep2PromptTokens(v)
	return _u
}

// SetNillableStep2PromptTokens sets the "step2_prompt_tokens" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableStep2PromptTokens(v *int) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetStep2PromptTokens(*v)
	}
	return _u
}

// AddStep2PromptTokens adds value to the "step2_prompt_tokens" field.
func (_u *ArchitectReviewUpdateOne) AddStep2PromptTokens(v int) *ArchitectReviewUpdateOne {
	_u.mutation.AddStep2PromptTokens(v)
	return _u
}

// SetStep2CompletionTokens sets the "step2_completion_tokens" field.
func (_u *ArchitectReviewUpdateOne) SetStep2CompletionTokens(v int) *ArchitectReviewUpdateOne {
	_u.mutation.ResetStep2CompletionTokens()
	_u.mutation.SetStep2CompletionTokens(v)
	return _u
}

// SetNillableStep2CompletionTokens sets the "step2_completion_tokens" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableStep2CompletionTokens(v *int) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetStep2CompletionTokens(*v)
	}
	return _u
}

// AddStep2CompletionTokens adds value to the "step2_completion_tokens" field.
func (_u *ArchitectReviewUpdateOne) AddStep2CompletionTokens(v int) *ArchitectReviewUpdateOne {
	_u.mutation.AddStep2CompletionTokens(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *ArchitectReviewUpdateOne) SetModel(v string) *ArchitectReviewUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableModel(v *string) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *ArchitectReviewUpdateOne) ClearModel() *ArchitectReviewUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ArchitectReviewUpdateOne) SetDurationMs(v int64) *ArchitectReviewUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableDurationMs(v *int64) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ArchitectReviewUpdateOne) AddDurationMs(v int64) *ArchitectReviewUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ArchitectReviewUpdateOne) SetDecision(v architectreview.Decision) *ArchitectReviewUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableDecision(v *architectreview.Decision) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetHumanFeedback sets the "human_feedback" field.
func (_u *ArchitectReviewUpdateOne) SetHumanFeedback(v string) *ArchitectReviewUpdateOne {
	_u.mutation.SetHumanFeedback(v)
	return _u
}

// SetNillableHumanFeedback sets the "human_feedback" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableHumanFeedback(v *string) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetHumanFeedback(*v)
	}
	return _u
}

// ClearHumanFeedback clears the value of the "human_feedback" field.
func (_u *ArchitectReviewUpdateOne) ClearHumanFeedback() *ArchitectReviewUpdateOne {
	_u.mutation.ClearHumanFeedback()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *ArchitectReviewUpdateOne) SetApprovedBy(v string) *ArchitectReviewUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableApprovedBy(v *string) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *ArchitectReviewUpdateOne) ClearApprovedBy() *ArchitectReviewUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *ArchitectReviewUpdateOne) SetApprovedAt(v time.Time) *ArchitectReviewUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *ArchitectReviewUpdateOne) SetNillableApprovedAt(v *time.Time) *ArchitectReviewUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *ArchitectReviewUpdateOne) ClearApprovedAt() *ArchitectReviewUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// Mutation returns the ArchitectReviewMutation object of the builder.
func (_u *ArchitectReviewUpdateOne) Mutation() *ArchitectReviewMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArchitectReviewUpdate builder.
func (_u *ArchitectReviewUpdateOne) Where(ps ...predicate.ArchitectReview) *ArchitectReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArchitectReviewUpdateOne) Select(field string, fields ...string) *ArchitectReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ArchitectReview entity.
func (_u *ArchitectReviewUpdateOne) Save(ctx context.Context) (*ArchitectReview, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArchitectReviewUpdateOne) SaveX(ctx context.Context) *ArchitectReview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArchitectReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArchitectReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArchitectReviewUpdateOne) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := architectreview.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ArchitectReview.decision": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ArchitectReview.request"`)
	}
	return nil
}

func (_u *ArchitectReviewUpdateOne) sqlSave(ctx context.Context) (_node *ArchitectReview, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(architectreview.Table, architectreview.Columns, sqlgraph.NewFieldSpec(architectreview.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ArchitectReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, architectreview.FieldID)
		for _, f := range fields {
			if !architectreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != architectreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SolutionSummary(); ok {
		_spec.SetField(architectreview.FieldSolutionSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Approach(); ok {
		_spec.SetField(architectreview.FieldApproach, field.TypeString, value)
	}
	if value, ok := _u.mutation.SolutionJSON(); ok {
		_spec.SetField(architectreview.FieldSolutionJSON, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedComplexity(); ok {
		_spec.SetField(architectreview.FieldEstimatedComplexity, field.TypeString, value)
	}
	if _u.mutation.EstimatedComplexityCleared() {
		_spec.ClearField(architectreview.FieldEstimatedComplexity, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedEffort(); ok {
		_spec.SetField(architectreview.FieldEstimatedEffort, field.TypeString, value)
	}
	if _u.mutation.EstimatedEffortCleared() {
		_spec.ClearField(architectreview.FieldEstimatedEffort, field.TypeString)
	}
	if value, ok := _u.mutation.FilesAnalyzed(); ok {
		_spec.SetField(architectreview.FieldFilesAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFilesAnalyzed(); ok {
		_spec.AddField(architectreview.FieldFilesAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilePaths(); ok {
		_spec.SetField(architectreview.FieldFilePaths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilePaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, architectreview.FieldFilePaths, value)
		})
	}
	if _u.mutation.FilePathsCleared() {
		_spec.ClearField(architectreview.FieldFilePaths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Step1PromptTokens(); ok {
		_spec.SetField(architectreview.FieldStep1PromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep1PromptTokens(); ok {
		_spec.AddField(architectreview.FieldStep1PromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Step1CompletionTokens(); ok {
		_spec.SetField(architectreview.FieldStep1CompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep1CompletionTokens(); ok {
		_spec.AddField(architectreview.FieldStep1CompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Step2PromptTokens(); ok {
		_spec.SetField(architectreview.FieldStep2PromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep2PromptTokens(); ok {
		_spec.AddField(architectreview.FieldStep2PromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Step2CompletionTokens(); ok {
		_spec.SetField(architectreview.FieldStep2CompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep2CompletionTokens(); ok {
		_spec.AddField(architectreview.FieldStep2CompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(architectreview.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(architectreview.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(architectreview.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(architectreview.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(architectreview.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HumanFeedback(); ok {
		_spec.SetField(architectreview.FieldHumanFeedback, field.TypeString, value)
	}
	if _u.mutation.HumanFeedbackCleared() {
		_spec.ClearField(architectreview.FieldHumanFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(architectreview.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(architectreview.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(architectreview.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(architectreview.FieldApprovedAt, field.TypeTime)
	}
	_node = &ArchitectReview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{architectreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
