// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conveyor-dev/conveyor/ent/codereview"
	"github.com/conveyor-dev/conveyor/ent/predicate"
)

// CodeReviewUpdate is the builder for updating CodeReview entities.
type CodeReviewUpdate struct {
	config
	hooks    []Hook
	mutation *CodeReviewMutation
}

// Where appends a list predicates to the CodeReviewUpdate builder.
func (_u *CodeReviewUpdate) Where(ps ...predicate.CodeReview) *CodeReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *CodeReviewUpdate) SetDecision(v codereview.Decision) *CodeReviewUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableDecision(v *codereview.Decision) *CodeReviewUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CodeReviewUpdate) SetSummary(v string) *CodeReviewUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableSummary(v *string) *CodeReviewUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetDesignCompliance sets the "design_compliance" field.
func (_u *CodeReviewUpdate) SetDesignCompliance(v bool) *CodeReviewUpdate {
	_u.mutation.SetDesignCompliance(v)
	return _u
}

// SetNillableDesignCompliance sets the "design_compliance" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableDesignCompliance(v *bool) *CodeReviewUpdate {
	if v != nil {
		_u.SetDesignCompliance(*v)
	}
	return _u
}

// SetDesignComplianceNotes sets the "design_compliance_notes" field.
func (_u *CodeReviewUpdate) SetDesignComplianceNotes(v string) *CodeReviewUpdate {
	_u.mutation.SetDesignComplianceNotes(v)
	return _u
}

// SetNillableDesignComplianceNotes sets the "design_compliance_notes" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableDesignComplianceNotes(v *string) *CodeReviewUpdate {
	if v != nil {
		_u.SetDesignComplianceNotes(*v)
	}
	return _u
}

// ClearDesignComplianceNotes clears the value of the "design_compliance_notes" field.
func (_u *CodeReviewUpdate) ClearDesignComplianceNotes() *CodeReviewUpdate {
	_u.mutation.ClearDesignComplianceNotes()
	return _u
}

// SetSecurityPass sets the "security_pass" field.
func (_u *CodeReviewUpdate) SetSecurityPass(v bool) *CodeReviewUpdate {
	_u.mutation.SetSecurityPass(v)
	return _u
}

// SetNillableSecurityPass sets the "security_pass" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableSecurityPass(v *bool) *CodeReviewUpdate {
	if v != nil {
		_u.SetSecurityPass(*v)
	}
	return _u
}

// SetSecurityNotes sets the "security_notes" field.
func (_u *CodeReviewUpdate) SetSecurityNotes(v string) *CodeReviewUpdate {
	_u.mutation.SetSecurityNotes(v)
	return _u
}

// SetNillableSecurityNotes sets the "security_notes" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableSecurityNotes(v *string) *CodeReviewUpdate {
	if v != nil {
		_u.SetSecurityNotes(*v)
	}
	return _u
}

// ClearSecurityNotes clears the value of the "security_notes" field.
func (_u *CodeReviewUpdate) ClearSecurityNotes() *CodeReviewUpdate {
	_u.mutation.ClearSecurityNotes()
	return _u
}

// SetCodingStandardsPass sets the "coding_standards_pass" field.
func (_u *CodeReviewUpdate) SetCodingStandardsPass(v bool) *CodeReviewUpdate {
	_u.mutation.SetCodingStandardsPass(v)
	return _u
}

// SetNillableCodingStandardsPass sets the "coding_standards_pass" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableCodingStandardsPass(v *bool) *CodeReviewUpdate {
	if v != nil {
		_u.SetCodingStandardsPass(*v)
	}
	return _u
}

// SetCodingStandardsNotes sets the "coding_standards_notes" field.
func (_u *CodeReviewUpdate) SetCodingStandardsNotes(v string) *CodeReviewUpdate {
	_u.mutation.SetCodingStandardsNotes(v)
	return _u
}

// SetNillableCodingStandardsNotes sets the "coding_standards_notes" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableCodingStandardsNotes(v *string) *CodeReviewUpdate {
	if v != nil {
		_u.SetCodingStandardsNotes(*v)
	}
	return _u
}

// ClearCodingStandardsNotes clears the value of the "coding_standards_notes" field.
func (_u *CodeReviewUpdate) ClearCodingStandardsNotes() *CodeReviewUpdate {
	_u.mutation.ClearCodingStandardsNotes()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *CodeReviewUpdate) SetQualityScore(v int) *CodeReviewUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableQualityScore(v *int) *CodeReviewUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *CodeReviewUpdate) AddQualityScore(v int) *CodeReviewUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetFilesChanged sets the "files_changed" field.
func (_u *CodeReviewUpdate) SetFilesChanged(v int) *CodeReviewUpdate {
	_u.mutation.ResetFilesChanged()
	_u.mutation.SetFilesChanged(v)
	return _u
}

// SetNillableFilesChanged sets the "files_changed" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableFilesChanged(v *int) *CodeReviewUpdate {
	if v != nil {
		_u.SetFilesChanged(*v)
	}
	return _u
}

// AddFilesChanged adds value to the "files_changed" field.
func (_u *CodeReviewUpdate) AddFilesChanged(v int) *CodeReviewUpdate {
	_u.mutation.AddFilesChanged(v)
	return _u
}

// SetLinesAdded sets the "lines_added" field.
func (_u *CodeReviewUpdate) SetLinesAdded(v int) *CodeReviewUpdate {
	_u.mutation.ResetLinesAdded()
	_u.mutation.SetLinesAdded(v)
	return _u
}

// SetNillableLinesAdded sets the "lines_added" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableLinesAdded(v *int) *CodeReviewUpdate {
	if v != nil {
		_u.SetLinesAdded(*v)
	}
	return _u
}

// AddLinesAdded adds value to the "lines_added" field.
func (_u *CodeReviewUpdate) AddLinesAdded(v int) *CodeReviewUpdate {
	_u.mutation.AddLinesAdded(v)
	return _u
}

// SetLinesRemoved sets the "lines_removed" field.
func (_u *CodeReviewUpdate) SetLinesRemoved(v int) *CodeReviewUpdate {
	_u.mutation.ResetLinesRemoved()
	_u.mutation.SetLinesRemoved(v)
	return _u
}

// SetNillableLinesRemoved sets the "lines_removed" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableLinesRemoved(v *int) *CodeReviewUpdate {
	if v != nil {
		_u.SetLinesRemoved(*v)
	}
	return _u
}

// AddLinesRemoved adds value to the "lines_removed" field.
func (_u *CodeReviewUpdate) AddLinesRemoved(v int) *CodeReviewUpdate {
	_u.mutation.AddLinesRemoved(v)
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *CodeReviewUpdate) SetPrNumber(v int) *CodeReviewUpdate {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillablePrNumber(v *int) *CodeReviewUpdate {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *CodeReviewUpdate) AddPrNumber(v int) *CodeReviewUpdate {
	_u.mutation.AddPrNumber(v)
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *CodeReviewUpdate) SetPromptTokens(v int) *CodeReviewUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillablePromptTokens(v *int) *CodeReviewUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *CodeReviewUpdate) AddPromptTokens(v int) *CodeReviewUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *CodeReviewUpdate) SetCompletionTokens(v int) *CodeReviewUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableCompletionTokens(v *int) *CodeReviewUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *CodeReviewUpdate) AddCompletionTokens(v int) *CodeReviewUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *CodeReviewUpdate) SetModel(v string) *CodeReviewUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableModel(v *string) *CodeReviewUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *CodeReviewUpdate) ClearModel() *CodeReviewUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *CodeReviewUpdate) SetDurationMs(v int64) *CodeReviewUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableDurationMs(v *int64) *CodeReviewUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *CodeReviewUpdate) AddDurationMs(v int64) *CodeReviewUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the CodeReviewMutation object of the builder.
func (_u *CodeReviewUpdate) Mutation() *CodeReviewMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CodeReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CodeReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CodeReviewUpdate) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := codereview.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "CodeReview.decision": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CodeReview.request"`)
	}
	return nil
}

func (_u *CodeReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(codereview.Table, codereview.Columns, sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(codereview.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(codereview.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.DesignCompliance(); ok {
		_spec.SetField(codereview.FieldDesignCompliance, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DesignComplianceNotes(); ok {
		_spec.SetField(codereview.FieldDesignComplianceNotes, field.TypeString, value)
	}
	if _u.mutation.DesignComplianceNotesCleared() {
		_spec.ClearField(codereview.FieldDesignComplianceNotes, field.TypeString)
	}
	if value, ok := _u.mutation.SecurityPass(); ok {
		_spec.SetField(codereview.FieldSecurityPass, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SecurityNotes(); ok {
		_spec.SetField(codereview.FieldSecurityNotes, field.TypeString, value)
	}
	if _u.mutation.SecurityNotesCleared() {
		_spec.ClearField(codereview.FieldSecurityNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CodingStandardsPass(); ok {
		_spec.SetField(codereview.FieldCodingStandardsPass, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CodingStandardsNotes(); ok {
		_spec.SetField(codereview.FieldCodingStandardsNotes, field.TypeString, value)
	}
	if _u.mutation.CodingStandardsNotesCleared() {
		_spec.ClearField(codereview.FieldCodingStandardsNotes, field.TypeString)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(codereview.FieldQualityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(codereview.FieldQualityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilesChanged(); ok {
		_spec.SetField(codereview.FieldFilesChanged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFilesChanged(); ok {
		_spec.AddField(codereview.FieldFilesChanged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LinesAdded(); ok {
		_spec.SetField(codereview.FieldLinesAdded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLinesAdded(); ok {
		_spec.AddField(codereview.FieldLinesAdded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LinesRemoved(); ok {
		_spec.SetField(codereview.FieldLinesRemoved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLinesRemoved(); ok {
		_spec.AddField(codereview.FieldLinesRemoved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(codereview.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(codereview.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(codereview.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(codereview.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(codereview.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(codereview.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(codereview.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(codereview.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(codereview.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(codereview.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codereview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CodeReviewUpdateOne is the builder for updating a single CodeReview entity.
type CodeReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CodeReviewMutation
}

// SetDecision sets the "decision" field.
func (_u *CodeReviewUpdateOne) SetDecision(v codereview.Decision) *CodeReviewUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableDecision(v *codereview.Decision) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CodeReviewUpdateOne) SetSummary(v string) *CodeReviewUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableSummary(v *string) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetDesignCompliance sets the "design_compliance" field.
func (_u *CodeReviewUpdateOne) SetDesignCompliance(v bool) *CodeReviewUpdateOne {
	_u.mutation.SetDesignCompliance(v)
	return _u
}

// SetNillableDesignCompliance sets the "design_compliance" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableDesignCompliance(v *bool) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetDesignCompliance(*v)
	}
	return _u
}

// SetDesignComplianceNotes sets the "design_compliance_notes" field.
func (_u *CodeReviewUpdateOne) SetDesignComplianceNotes(v string) *CodeReviewUpdateOne {
	_u.mutation.SetDesignComplianceNotes(v)
	return _u
}

// SetNillableDesignComplianceNotes sets the "design_compliance_notes" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableDesignComplianceNotes(v *string) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetDesignComplianceNotes(*v)
	}
	return _u
}

// ClearDesignComplianceNotes clears the value of the "design_compliance_notes" field.
func (_u *CodeReviewUpdateOne) ClearDesignComplianceNotes() *CodeReviewUpdateOne {
	_u.mutation.ClearDesignComplianceNotes()
	return _u
}

// SetSecurityPass sets the "security_pass" field.
func (_u *CodeReviewUpdateOne) SetSecurityPass(v bool) *CodeReviewUpdateOne {
	_u.mutation.SetSecurityPass(v)
	return _u
}

// SetNillableSecurityPass sets the "security_pass" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableSecurityPass(v *bool) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetSecurityPass(*v)
	}
	return _u
}

// SetSecurityNotes sets the "security_notes" field.
func (_u *CodeReviewUpdateOne) SetSecurityNotes(v string) *CodeReviewUpdateOne {
	_u.mutation.SetSecurityNotes(v)
	return _u
}

// SetNillableSecurityNotes sets the "security_notes" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableSecurityNotes(v *string) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetSecurityNotes(*v)
	}
	return _u
}

// ClearSecurityNotes clears the value of the "security_notes" field.
func (_u *CodeReviewUpdateOne) ClearSecurityNotes() *CodeReviewUpdateOne {
	_u.mutation.ClearSecurityNotes()
	return _u
}

// SetCodingStandardsPass sets the "coding_standards_pass" field.
func (_u *CodeReviewUpdateOne) SetCodingStandardsPass(v bool) *CodeReviewUpdateOne {
	_u.mutation.SetCodingStandardsPass(v)
	return _u
}

// SetNillableCodingStandardsPass sets the "coding_standards_pass" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableCodingStandardsPass(v *bool) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetCodingStandardsPass(*v)
	}
	return _u
}

// SetCodingStandardsNotes sets the "coding_standards_notes" field.
func (_u *CodeReviewUpdateOne) SetCodingStandardsNotes(v string) *CodeReviewUpdateOne {
	_u.mutation.SetCodingStandardsNotes(v)
	return _u
}

// SetNillableCodingStandardsNotes sets the "coding_standards_notes" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableCodingStandardsNotes(v *string) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetCodingStandardsNotes(*v)
	}
	return _u
}

// ClearCodingStandardsNotes clears the value of the "coding_standards_notes" field.
func (_u *CodeReviewUpdateOne) ClearCodingStandardsNotes() *CodeReviewUpdateOne {
	_u.mutation.ClearCodingStandardsNotes()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *CodeReviewUpdateOne) SetQualityScore(v int) *CodeReviewUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableQualityScore(v *int) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *CodeReviewUpdateOne) AddQualityScore(v int) *CodeReviewUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetFilesChanged sets the "files_changed" field.
func (_u *CodeReviewUpdateOne) SetFilesChanged(v int) *CodeReviewUpdateOne {
	_u.mutation.ResetFilesChanged()
	_u.mutation.SetFilesChanged(v)
	return _u
}

// SetNillableFilesChanged sets the "files_changed" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableFilesChanged(v *int) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetFilesChanged(*v)
	}
	return _u
}

// AddFilesChanged adds value to the "files_changed" field.
func (_u *CodeReviewUpdateOne) AddFilesChanged(v int) *CodeReviewUpdateOne {
	_u.mutation.AddFilesChanged(v)
	return _u
}

// SetLinesAdded sets the "lines_added" field.
func (_u *CodeReviewUpdateOne) SetLinesAdded(v int) *CodeReviewUpdateOne {
	_u.mutation.ResetLinesAdded()
	_u.mutation.SetLinesAdded(v)
	return _u
}

// SetNillableLinesAdded sets the "lines_added" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableLinesAdded(v *int) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetLinesAdded(*v)
	}
	return _u
}

// AddLinesAdded adds value to the "lines_added" field.
func (_u *CodeReviewUpdateOne) AddLinesAdded(v int) *CodeReviewUpdateOne {
	_u.mutation.AddLinesAdded(v)
	return _u
}

// SetLinesRemoved sets the "lines_removed" field.
func (_u *CodeReviewUpdateOne) SetLinesRemoved(v int) *CodeReviewUpdateOne {
	_u.mutation.ResetLinesRemoved()
	_u.mutation.SetLinesRemoved(v)
	return _u
}

// SetNillableLinesRemoved sets the "lines_removed" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableLinesRemoved(v *int) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetLinesRemoved(*v)
	}
	return _u
}

// AddLinesRemoved adds value to the "lines_removed" field.
func (_u *CodeReviewUpdateOne) AddLinesRemoved(v int) *CodeReviewUpdateOne {
	_u.mutation.AddLinesRemoved(v)
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *CodeReviewUpdateOne) SetPrNumber(v int) *CodeReviewUpdateOne {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillablePrNumber(v *int) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *CodeReviewUpdateOne) AddPrNumber(v int) *CodeReviewUpdateOne {
	_u.mutation.AddPrNumber(v)
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *CodeReviewUpdateOne) SetPromptTokens(v int) *CodeReviewUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillablePromptTokens(v *int) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *CodeReviewUpdateOne) AddPromptTokens(v int) *CodeReviewUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *CodeReviewUpdateOne) SetCompletionTokens(v int) *CodeReviewUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableCompletionTokens(v *int) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *CodeReviewUpdateOne) AddCompletionTokens(v int) *CodeReviewUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *CodeReviewUpdateOne) SetModel(v string) *CodeReviewUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableModel(v *string) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *CodeReviewUpdateOne) ClearModel() *CodeReviewUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *CodeReviewUpdateOne) SetDurationMs(v int64) *CodeReviewUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableDurationMs(v *int64) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *CodeReviewUpdateOne) AddDurationMs(v int64) *CodeReviewUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the CodeReviewMutation object of the builder.
func (_u *CodeReviewUpdateOne) Mutation() *CodeReviewMutation {
	return _u.mutation
}

// Where appends a list predicates to the CodeReviewUpdate builder.
func (_u *CodeReviewUpdateOne) Where(ps ...predicate.CodeReview) *CodeReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CodeReviewUpdateOne) Select(field string, fields ...string) *CodeReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CodeReview entity.
func (_u *CodeReviewUpdateOne) Save(ctx context.Context) (*CodeReview, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeReviewUpdateOne) SaveX(ctx context.Context) *CodeReview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CodeReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CodeReviewUpdateOne) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := codereview.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "CodeReview.decision": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CodeReview.request"`)
	}
	return nil
}

func (_u *CodeReviewUpdateOne) sqlSave(ctx context.Context) (_node *CodeReview, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(codereview.Table, codereview.Columns, sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CodeReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, codereview.FieldID)
		for _, f := range fields {
			if !codereview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != codereview.FieldID {
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
		_spec.SetField(codereview.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(codereview.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.DesignCompliance(); ok {
		_spec.SetField(codereview.FieldDesignCompliance, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DesignComplianceNotes(); ok {
		_spec.SetField(codereview.FieldDesignComplianceNotes, field.TypeString, value)
	}
	if _u.mutation.DesignComplianceNotesCleared() {
		_spec.ClearField(codereview.FieldDesignComplianceNotes, field.TypeString)
	}
	if value, ok := _u.mutation.SecurityPass(); ok {
		_spec.SetField(codereview.FieldSecurityPass, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SecurityNotes(); ok {
		_spec.SetField(codereview.FieldSecurityNotes, field.TypeString, value)
	}
	if _u.mutation.SecurityNotesCleared() {
		_spec.ClearField(codereview.FieldSecurityNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CodingStandardsPass(); ok {
		_spec.SetField(codereview.FieldCodingStandardsPass, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CodingStandardsNotes(); ok {
		_spec.SetField(codereview.FieldCodingStandardsNotes, field.TypeString, value)
	}
	if _u.mutation.CodingStandardsNotesCleared() {
		_spec.ClearField(codereview.FieldCodingStandardsNotes, field.TypeString)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(codereview.FieldQualityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(codereview.FieldQualityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilesChanged(); ok {
		_spec.SetField(codereview.FieldFilesChanged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFilesChanged(); ok {
		_spec.AddField(codereview.FieldFilesChanged, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LinesAdded(); ok {
		_spec.SetField(codereview.FieldLinesAdded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLinesAdded(); ok {
		_spec.AddField(codereview.FieldLinesAdded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LinesRemoved(); ok {
		_spec.SetField(codereview.FieldLinesRemoved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLinesRemoved(); ok {
		_spec.AddField(codereview.FieldLinesRemoved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(codereview.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(codereview.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(codereview.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(codereview.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(codereview.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(codereview.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(codereview.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(codereview.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(codereview.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(codereview.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &CodeReview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codereview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
