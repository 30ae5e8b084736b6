// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/conveyor-dev/conveyor/ent/predicate"
	"github.com/conveyor-dev/conveyor/ent/triagereview"
)

// TriageReviewUpdate is the builder for updating TriageReview entities.
type TriageReviewUpdate struct {
	config
	hooks    []Hook
	mutation *TriageReviewMutation
}

// Where appends a list predicates to the TriageReviewUpdate builder.
func (_u *TriageReviewUpdate) Where(ps ...predicate.TriageReview) *TriageReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *TriageReviewUpdate) SetDecision(v triagereview.Decision) *TriageReviewUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *TriageReviewUpdate) SetNillableDecision(v *triagereview.Decision) *TriageReviewUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *TriageReviewUpdate) SetReasoning(v string) *TriageReviewUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *TriageReviewUpdate) SetNillableReasoning(v *string) *TriageReviewUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetAlignmentScore sets the "alignment_score" field.
func (_u *TriageReviewUpdate) SetAlignmentScore(v int) *TriageReviewUpdate {
	_u.mutation.ResetAlignmentScore()
	_u.mutation.SetAlignmentScore(v)
	return _u
}

// SetNillableAlignmentScore sets the "alignment_score" field if the given value is not nil.
func (_u *TriageReviewUpdate) SetNillableAlignmentScore(v *int) *TriageReviewUpdate {
	if v != nil {
		_u.SetAlignmentScore(*v)
	}
	return _u
}

// AddAlignmentScore adds value to the "alignment_score" field.
func (_u *TriageReviewUpdate) AddAlignmentScore(v int) *TriageReviewUpdate {
	_u.mutation.AddAlignmentScore(v)
	return _u
}

// SetCompletenessScore sets the "completeness_score" field.
func (_u *TriageReviewUpdate) SetCompletenessScore(v int) *TriageReviewUpdate {
	_u.mutation.ResetCompletenessScore()
	_u.mutation.SetCompletenessScore(v)
	return _u
}

// SetNillableCompletenessScore sets the "completeness_score" field if the given value is not nil.
func (_u *TriageReviewUpdate) SetNillableCompletenessScore(v *int) *TriageReviewUpdate {
	if v != nil {
		_u.SetCompletenessScore(*v)
	}
	return _u
}

// AddCompletenessScore adds value to the "completeness_score" field.
func (_u *TriageReviewUpdate) AddCompletenessScore(v int) *TriageReviewUpdate {
	_u.mutation.AddCompletenessScore(v)
	return _u
}

// SetSalesAlignmentScore sets the "sales_alignment_score" field.
func (_u *TriageReviewUpdate) SetSalesAlignmentScore(v int) *TriageReviewUpdate {
	_u.mutation.ResetSalesAlignmentScore()
	_u.mutation.SetSalesAlignmentScore(v)
	return _u
}

// SetNillableSalesAlignmentScore sets the "sales_alignment_score" field if the given value is not nil.
func (_u *TriageReviewUpdate) SetNillableSalesAlignmentScore(v *int) *TriageReviewUpdate {
	if v != nil {
		_u.SetSalesAlignmentScore(*v)
	}
	return _u
}

// AddSalesAlignmentScore adds value to the "sales_alignment_score" field.
func (_u *TriageReviewUpdate) AddSalesAlignmentScore(v int) *TriageReviewUpdate {
	_u.mutation.AddSalesAlignmentScore(v)
	return _u
}

// SetSuggestedPriority sets the "suggested_priority" field.
func (_u *TriageReviewUpdate) SetSuggestedPriority(v string) *TriageReviewUpdate {
	_u.mutation.SetSuggestedPriority(v)
	return _u
}

// SetNillableSuggestedPriority sets the "suggested_priority" field if the given value is not nil.
func (_u *TriageReviewUpdate) SetNillableSuggestedPriority(v *string) *TriageReviewUpdate {
	if v != nil {
		_u.SetSuggestedPriority(*v)
	}
	return _u
}

// ClearSuggestedPriority clears the value of the "suggested_priority" field.
func (_u *TriageReviewUpdate) ClearSuggestedPriority() *TriageReviewUpdate {
	_u.mutation.ClearSuggestedPriority()
	return _u
}

// SetTags sets the "tags" field.
func (_u *TriageReviewUpdate) SetTags(v []string) *TriageReviewUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *TriageReviewUpdate) AppendTags(v []string) *TriageReviewUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *TriageReviewUpdate) ClearTags() *TriageReviewUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetClarificationQuestions sets the "clarification_questions" field.
func (_u *TriageReviewUpdate) SetClarificationQuestions(v []string) *TriageReviewUpdate {
	_u.mutation.SetClarificationQuestions(v)
	return _u
}

// AppendClarificationQuestions appends value to the "clarification_questions" field.
func (_u *TriageReviewUpdate) AppendClarificationQuestions(v []string) *TriageReviewUpdate {
	_u.mutation.AppendClarificationQuestions(v)
	return _u
}

// ClearClarificationQuestions clears the value of the "clarification_questions" field.
func (_u *TriageReviewUpdate) ClearClarificationQuestions() *TriageReviewUpdate {
	_u.mutation.ClearClarificationQuestions()
	return _u
}

// SetIsDuplicate sets the "is_duplicate" field.
func (_u *TriageReviewUpdate) SetIsDuplicate(v bool) *TriageReviewUpdate {
	_u.mutation.SetIsDuplicate(v)
	return _u
}

// SetNillableIsDuplicate sets the "is_duplicate" field if the given value is not nil.
func (_u *TriageReviewUpdate) SetNillableIsDuplicate(v *bool) *TriageReviewUpdate {
	if v != nil {
		_u.SetIsDuplicate(*v)
	}
	return _u
}

// SetDuplicateOfRequestID sets the "duplicate_of_request_id" field.
func (_u *TriageReviewUpdate) SetDuplicateOfRequestID(v int) *TriageReviewUpdate {
	_u.mutation.ResetDuplicateOfRequestID()
	_u.mutation.SetDuplicateOfRequestID(v)
	return _u
}

// SetNillableDuplicateOfRequestID sets the "duplicate_of_request_id" field if the given value is not nil.
func (_u *TriageReviewUpdate) SetNillableDuplicateOfRequestID(v *int) *TriageReviewUpdate {
	if v != nil {
		_u.SetDuplicateOfRequestID(*v)
	}
	return _u
}

// AddDuplicateOfRequestID adds value to the "duplicate_of_request_id" field.
func (_u *TriageReviewUpdate) AddDuplicateOfRequestID(v int) *TriageReviewUpdate {
	_u.mutation.AddDuplicateOfRequestID(v)
	return _u
}

// ClearDuplicateOfRequestID clears the value of the "duplicate_of_request_id" field.
func (_u *TriageReviewUpdate) ClearDuplicateOfRequestID() *TriageReviewUpdate {
	_u.mutation.ClearDuplicateOfRequestID()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *TriageReviewUpdate) SetPromptTokens(v int) *TriageReviewUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *TriageReviewUpdate) SetNillablePromptTokens(v *int) *TriageReviewUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *TriageReviewUpdate) AddPromptTokens(v int) *TriageReviewUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *TriageReviewUpdate) SetCompletionTokens(v int) *TriageReviewUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *TriageReviewUpdate) SetNillableCompletionTokens(v *int) *TriageReviewUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *TriageReviewUpdate) AddCompletionTokens(v int) *TriageReviewUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *TriageReviewUpdate) SetModel(v string) *TriageReviewUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TriageReviewUpdate) SetNillableModel(v *string) *TriageReviewUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *TriageReviewUpdate) ClearModel() *TriageReviewUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TriageReviewUpdate) SetDurationMs(v int64) *TriageReviewUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TriageReviewUpdate) SetNillableDurationMs(v *int64) *TriageReviewUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TriageReviewUpdate) AddDurationMs(v int64) *TriageReviewUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the TriageReviewMutation object of the builder.
func (_u *TriageReviewUpdate) Mutation() *TriageReviewMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriageReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriageReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriageReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriageReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriageReviewUpdate) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := triagereview.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "TriageReview.decision": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TriageReview.request"`)
	}
	return nil
}

func (_u *TriageReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triagereview.Table, triagereview.Columns, sqlgraph.NewFieldSpec(triagereview.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(triagereview.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(triagereview.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlignmentScore(); ok {
		_spec.SetField(triagereview.FieldAlignmentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAlignmentScore(); ok {
		_spec.AddField(triagereview.FieldAlignmentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletenessScore(); ok {
		_spec.SetField(triagereview.FieldCompletenessScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletenessScore(); ok {
		_spec.AddField(triagereview.FieldCompletenessScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SalesAlignmentScore(); ok {
		_spec.SetField(triagereview.FieldSalesAlignmentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSalesAlignmentScore(); ok {
		_spec.AddField(triagereview.FieldSalesAlignmentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuggestedPriority(); ok {
		_spec.SetField(triagereview.FieldSuggestedPriority, field.TypeString, value)
	}
	if _u.mutation.SuggestedPriorityCleared() {
		_spec.ClearField(triagereview.FieldSuggestedPriority, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(triagereview.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, triagereview.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(triagereview.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.ClarificationQuestions(); ok {
		_spec.SetField(triagereview.FieldClarificationQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClarificationQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, triagereview.FieldClarificationQuestions, value)
		})
	}
	if _u.mutation.ClarificationQuestionsCleared() {
		_spec.ClearField(triagereview.FieldClarificationQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsDuplicate(); ok {
		_spec.SetField(triagereview.FieldIsDuplicate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DuplicateOfRequestID(); ok {
		_spec.SetField(triagereview.FieldDuplicateOfRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuplicateOfRequestID(); ok {
		_spec.AddField(triagereview.FieldDuplicateOfRequestID, field.TypeInt, value)
	}
	if _u.mutation.DuplicateOfRequestIDCleared() {
		_spec.ClearField(triagereview.FieldDuplicateOfRequestID, field.TypeInt)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(triagereview.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(triagereview.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(triagereview.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(triagereview.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(triagereview.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(triagereview.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(triagereview.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(triagereview.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triagereview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriageReviewUpdateOne is the builder for updating a single TriageReview entity.
type TriageReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriageReviewMutation
}

// SetDecision sets the "decision" field.
func (_u *TriageReviewUpdateOne) SetDecision(v triagereview.Decision) *TriageReviewUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *TriageReviewUpdateOne) SetNillableDecision(v *triagereview.Decision) *TriageReviewUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *TriageReviewUpdateOne) SetReasoning(v string) *TriageReviewUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *TriageReviewUpdateOne) SetNillableReasoning(v *string) *TriageReviewUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetAlignmentScore sets the "alignment_score" field.
func (_u *TriageReviewUpdateOne) SetAlignmentScore(v int) *TriageReviewUpdateOne {
	_u.mutation.ResetAlignmentScore()
	_u.mutation.SetAlignmentScore(v)
	return _u
}

// SetNillableAlignmentScore sets the "alignment_score" field if the given value is not nil.
func (_u *TriageReviewUpdateOne) SetNillableAlignmentScore(v *int) *TriageReviewUpdateOne {
	if v != nil {
		_u.SetAlignmentScore(*v)
	}
	return _u
}

// AddAlignmentScore adds value to the "alignment_score" field.
func (_u *TriageReviewUpdateOne) AddAlignmentScore(v int) *TriageReviewUpdateOne {
	_u.mutation.AddAlignmentScore(v)
	return _u
}

// SetCompletenessScore sets the "completeness_score" field.
func (_u *TriageReviewUpdateOne) SetCompletenessScore(v int) *TriageReviewUpdateOne {
	_u.mutation.ResetCompletenessScore()
	_u.mutation.SetCompletenessScore(v)
	return _u
}

// SetNillableCompletenessScore sets the "completeness_score" field if the given value is not nil.
func (_u *TriageReviewUpdateOne) SetNillableCompletenessScore(v *int) *TriageReviewUpdateOne {
	if v != nil {
		_u.SetCompletenessScore(*v)
	}
	return _u
}

// AddCompletenessScore adds value to the "completeness_score" field.
func (_u *TriageReviewUpdateOne) AddCompletenessScore(v int) *TriageReviewUpdateOne {
	_u.mutation.AddCompletenessScore(v)
	return _u
}

// SetSalesAlignmentScore sets the "sales_alignment_score" field.
func (_u *TriageReviewUpdateOne) SetSalesAlignmentScore(v int) *TriageReviewUpdateOne {
	_u.mutation.ResetSalesAlignmentScore()
	_u.mutation.SetSalesAlignmentScore(v)
	return _u
}

// SetNillableSalesAlignmentScore sets the "sales_alignment_score" field if the given value is not nil.
func (_u *TriageReviewUpdateOne) SetNillableSalesAlignmentScore(v *int) *TriageReviewUpdateOne {
	if v != nil {
		_u.SetSalesAlignmentScore(*v)
	}
	return _u
}

// AddSalesAlignmentScore adds value to the "sales_alignment_score" field.
func (_u *TriageReviewUpdateOne) AddSalesAlignmentScore(v int) *TriageReviewUpdateOne {
	_u.mutation.AddSalesAlignmentScore(v)
	return _u
}

// SetSuggestedPriority sets the "suggested_priority" field.
func (_u *TriageReviewUpdateOne) SetSuggestedPriority(v string) *TriageReviewUpdateOne {
	_u.mutation.SetSuggestedPriority(v)
	return _u
}

// SetNillableSuggestedPriority sets the "suggested_priority" field if the given value is not nil.
func (_u *TriageReviewUpdateOne) SetNillableSuggestedPriority(v *string) *TriageReviewUpdateOne {
	if v != nil {
		_u.SetSuggestedPriority(*v)
	}
	return _u
}

// ClearSuggestedPriority clears the value of the "suggested_priority" field.
func (_u *TriageReviewUpdateOne) ClearSuggestedPriority() *TriageReviewUpdateOne {
	_u.mutation.ClearSuggestedPriority()
	return _u
}

// SetTags sets the "tags" field.
func (_u *TriageReviewUpdateOne) SetTags(v []string) *TriageReviewUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *TriageReviewUpdateOne) AppendTags(v []string) *TriageReviewUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *TriageReviewUpdateOne) ClearTags() *TriageReviewUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetClarificationQuestions sets the "clarification_questions" field.
func (_u *TriageReviewUpdateOne) SetClarificationQuestions(v []string) *TriageReviewUpdateOne {
	_u.mutation.SetClarificationQuestions(v)
	return _u
}

// AppendClarificationQuestions appends value to the "clarification_questions" field.
func (_u *TriageReviewUpdateOne) AppendClarificationQuestions(v []string) *TriageReviewUpdateOne {
	_u.mutation.AppendClarificationQuestions(v)
	return _u
}

// ClearClarificationQuestions clears the value of the "clarification_questions" field.
func (_u *TriageReviewUpdateOne) ClearClarificationQuestions() *TriageReviewUpdateOne {
	_u.mutation.ClearClarificationQuestions()
	return _u
}

// SetIsDuplicate sets the "is_duplicate" field.
func (_u *TriageReviewUpdateOne) SetIsDuplicate(v bool) *TriageReviewUpdateOne {
	_u.mutation.SetIsDuplicate(v)
	return _u
}

// SetNillableIsDuplicate sets the "is_duplicate" field if the given value is not nil.
func (_u *TriageReviewUpdateOne) SetNillableIsDuplicate(v *bool) *TriageReviewUpdateOne {
	if v != nil {
		_u.SetIsDuplicate(*v)
	}
	return _u
}

// SetDuplicateOfRequestID sets the "duplicate_of_request_id" field.
func (_u *TriageReviewUpdateOne) SetDuplicateOfRequestID(v int) *TriageReviewUpdateOne {
	_u.mutation.ResetDuplicateOfRequestID()
	_u.mutation.SetDuplicateOfRequestID(v)
	return _u
}

// SetNillableDuplicateOfRequestID sets the "duplicate_of_request_id" field if the given value is not nil.
func (_u *TriageReviewUpdateOne) SetNillableDuplicateOfRequestID(v *int) *TriageReviewUpdateOne {
	if v != nil {
		_u.SetDuplicateOfRequestID(*v)
	}
	return _u
}

// AddDuplicateOfRequestID adds value to the "duplicate_of_request_id" field.
func (_u *TriageReviewUpdateOne) AddDuplicateOfRequestID(v int) *TriageReviewUpdateOne {
	_u.mutation.AddDuplicateOfRequestID(v)
	return _u
}

// ClearDuplicateOfRequestID clears the value of the "duplicate_of_request_id" field.
func (_u *TriageReviewUpdateOne) ClearDuplicateOfRequestID() *TriageReviewUpdateOne {
	_u.mutation.ClearDuplicateOfRequestID()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *TriageReviewUpdateOne) SetPromptTokens(v int) *TriageReviewUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *TriageReviewUpdateOne) SetNillablePromptTokens(v *int) *TriageReviewUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *TriageReviewUpdateOne) AddPromptTokens(v int) *TriageReviewUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *TriageReviewUpdateOne) SetCompletionTokens(v int) *TriageReviewUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *TriageReviewUpdateOne) SetNillableCompletionTokens(v *int) *TriageReviewUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *TriageReviewUpdateOne) AddCompletionTokens(v int) *TriageReviewUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *TriageReviewUpdateOne) SetModel(v string) *TriageReviewUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TriageReviewUpdateOne) SetNillableModel(v *string) *TriageReviewUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *TriageReviewUpdateOne) ClearModel() *TriageReviewUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TriageReviewUpdateOne) SetDurationMs(v int64) *TriageReviewUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TriageReviewUpdateOne) SetNillableDurationMs(v *int64) *TriageReviewUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TriageReviewUpdateOne) AddDurationMs(v int64) *TriageReviewUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the TriageReviewMutation object of the builder.
func (_u *TriageReviewUpdateOne) Mutation() *TriageReviewMutation {
	return _u.mutation
}

// Where appends a list predicates to the TriageReviewUpdate builder.
func (_u *TriageReviewUpdateOne) Where(ps ...predicate.TriageReview) *TriageReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriageReviewUpdateOne) Select(field string, fields ...string) *TriageReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TriageReview entity.
func (_u *TriageReviewUpdateOne) Save(ctx context.Context) (*TriageReview, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriageReviewUpdateOne) SaveX(ctx context.Context) *TriageReview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriageReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriageReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriageReviewUpdateOne) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := triagereview.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "TriageReview.decision": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TriageReview.request"`)
	}
	return nil
}

func (_u *TriageReviewUpdateOne) sqlSave(ctx context.Context) (_node *TriageReview, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triagereview.Table, triagereview.Columns, sqlgraph.NewFieldSpec(triagereview.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TriageReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, triagereview.FieldID)
		for _, f := range fields {
			if !triagereview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != triagereview.FieldID {
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
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(triagereview.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(triagereview.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlignmentScore(); ok {
		_spec.SetField(triagereview.FieldAlignmentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAlignmentScore(); ok {
		_spec.AddField(triagereview.FieldAlignmentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletenessScore(); ok {
		_spec.SetField(triagereview.FieldCompletenessScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletenessScore(); ok {
		_spec.AddField(triagereview.FieldCompletenessScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SalesAlignmentScore(); ok {
		_spec.SetField(triagereview.FieldSalesAlignmentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSalesAlignmentScore(); ok {
		_spec.AddField(triagereview.FieldSalesAlignmentScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuggestedPriority(); ok {
		_spec.SetField(triagereview.FieldSuggestedPriority, field.TypeString, value)
	}
	if _u.mutation.SuggestedPriorityCleared() {
		_spec.ClearField(triagereview.FieldSuggestedPriority, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(triagereview.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, triagereview.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(triagereview.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.ClarificationQuestions(); ok {
		_spec.SetField(triagereview.FieldClarificationQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClarificationQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, triagereview.FieldClarificationQuestions, value)
		})
	}
	if _u.mutation.ClarificationQuestionsCleared() {
		_spec.ClearField(triagereview.FieldClarificationQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsDuplicate(); ok {
		_spec.SetField(triagereview.FieldIsDuplicate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DuplicateOfRequestID(); ok {
		_spec.SetField(triagereview.FieldDuplicateOfRequestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuplicateOfRequestID(); ok {
		_spec.AddField(triagereview.FieldDuplicateOfRequestID, field.TypeInt, value)
	}
	if _u.mutation.DuplicateOfRequestIDCleared() {
		_spec.ClearField(triagereview.FieldDuplicateOfRequestID, field.TypeInt)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(triagereview.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(triagereview.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(triagereview.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(triagereview.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(triagereview.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(triagereview.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(triagereview.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(triagereview.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &TriageReview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triagereview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
