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
	"github.com/conveyor-dev/conveyor/ent/request"
)

// ArchitectReviewCreate is the builder for creating a ArchitectReview entity.
type ArchitectReviewCreate struct {
	config
	mutation *ArchitectReviewMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *ArchitectReviewCreate) SetRequestID(v int) *ArchitectReviewCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetSolutionSummary sets the "solution_summary" field.
func (_c *ArchitectReviewCreate) SetSolutionSummary(v string) *ArchitectReviewCreate {
	_c.mutation.SetSolutionSummary(v)
	return _c
}

// SetApproach sets the "approach" field.
func (_c *ArchitectReviewCreate) SetApproach(v string) *ArchitectReviewCreate {
	_c.mutation.SetApproach(v)
	return _c
}

// SetSolutionJSON sets the "solution_json" field.
func (_c *ArchitectReviewCreate) SetSolutionJSON(v string) *ArchitectReviewCreate {
	_c.mutation.SetSolutionJSON(v)
	return _c
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (_c *ArchitectReviewCreate) SetEstimatedComplexity(v string) *ArchitectReviewCreate {
	_c.mutation.SetEstimatedComplexity(v)
	return _c
}

// SetNillableEstimatedComplexity sets the "estimated_complexity" field if the given value is not nil.
func (_c *ArchitectReviewCreate) SetNillableEstimatedComplexity(v *string) *ArchitectReviewCreate {
	if v != nil {
		_c.SetEstimatedComplexity(*v)
	}
	return _c
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (_c *ArchitectReviewCreate) SetEstimatedEffort(v string) *ArchitectReviewCreate {
	_c.mutation.SetEstimatedEffort(v)
	return _c
}

// SetNillableEstimatedEffort sets the "estimated_effort" field if the given value is not nil.
func (_c *ArchitectReviewCreate) SetNillableEstimatedEffort(v *string) *ArchitectReviewCreate {
	if v != nil {
		_c.SetEstimatedEffort(*v)
	}
	return _c
}

// SetFilesAnalyzed sets the "files_analyzed" field.
func (_c *ArchitectReviewCreate) SetFilesAnalyzed(v int) *ArchitectReviewCreate {
	_c.mutation.SetFilesAnalyzed(v)
	return _c
}

// SetNillableFilesAnalyzed sets the "files_analyzed" field if the given value is not nil.
func (_c *ArchitectReviewCreate) SetNillableFilesAnalyzed(v *int) *ArchitectReviewCreate {
	if v != nil {
		_c.SetFilesAnalyzed(*v)
	}
	return _c
}

// SetFilePaths sets the "file_paths" field.
func (_c *ArchitectReviewCreate) SetFilePaths(v []string) *ArchitectReviewCreate {
	_c.mutation.SetFilePaths(v)
	return _c
}

// SetStep1PromptTokens sets the "step1_prompt_tokens" field.
func (_c *ArchitectReviewCreate) SetStep1PromptTokens(v int) *ArchitectReviewCreate {
	_c.mutation.SetStep1PromptTokens(v)
	return _c
}

// SetNillableStep1PromptTokens sets the "step1_prompt_tokens" field if the given value is not nil.
func (_c *ArchitectReviewCreate) SetNillableStep1PromptTokens(v *int) *ArchitectReviewCreate {
	if v != nil {
		_c.SetStep1PromptTokens(*v)
	}
	return _c
}

// SetStep1CompletionTokens sets the "step1_completion_tokens" field.
func (_c *ArchitectReviewCreate) SetStep1CompletionTokens(v int) *ArchitectReviewCreate {
	_c.mutation.SetStep1CompletionTokens(v)
	return _c
}

// SetNillableStep1CompletionTokens sets the "step1_completion_tokens" field if the given value is not nil.
func (_c *ArchitectReviewCreate) SetNillableStep1CompletionTokens(v *int) *ArchitectReviewCreate {
	if v != nil {
		_c.SetStep1CompletionTokens(*v)
	}
	return _c
}

// SetStep2PromptTokens sets the "step2_prompt_tokens" field.
func (_c *ArchitectReviewCreate) SetStep2PromptTokens(v int) *ArchitectReviewCreate {
	_c.mutation.SetStep2PromptTokens(v)
	return _c
}

// SetNillableStep2PromptTokens sets the "step2_prompt_tokens" field if the given value is not nil.
func (_c *ArchitectReviewCreate) SetNillableStep2PromptTokens(v *int) *ArchitectReviewCreate {
	if v != nil {
		_c.SetStep2PromptTokens(*v)
	}
	return _c
}

// SetStep2CompletionTokens sets the "step2_completion_tokens" field.
func (_c *ArchitectReviewCreate) SetStep2CompletionTokens(v int) *ArchitectReviewCreate {
	_c.mutation.SetStep2CompletionTokens(v)
	return _c
}

// SetNillableStep2CompletionTokens sets the "step2_completion_tokens" field if the given value is not nil.
func (_c *ArchitectReviewCreate) SetNillableStep2CompletionTokens(v *int) *ArchitectReviewCreate {
	if v != nil {
		_c.SetStep2CompletionTokens(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *ArchitectReviewCreate) SetModel(v string) *ArchitectReviewCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *ArchitectReviewCreate) SetNillableModel(v *string) *ArchitectReviewCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ArchitectReviewCreate) SetDurationMs(v int64) *ArchitectReviewCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ArchitectReviewCreate) SetNillableDurationMs(v *int64) *ArchitectReviewCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetDecision sets the "decision" field.
func (_c *ArchitectReviewCreate) SetDecision(v architectreview.Decision) *ArchitectReviewCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_c *ArchitectReviewCreate) SetNillableDecision(v *architectreview.Decision) *ArchitectReviewCreate {
	if v != nil {
		_c.SetDecision(*v)
	}
	return _c
}

// SetHumanFeedback sets the "human_feedback" field.
func (_c *ArchitectReviewCreate) SetHumanFeedback(v string) *ArchitectReviewCreate {
	_c.mutation.SetHumanFeedback(v)
	return _c
}

// SetNillableHumanFeedback sets the "human_feedback" field if the given value is not nil.
func (_c *ArchitectReviewCreate) SetNillableHumanFeedback(v *string) *ArchitectReviewCreate {
	if v != nil {
		_c.SetHumanFeedback(*v)
	}
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *ArchitectReviewCreate) SetApprovedBy(v string) *ArchitectReviewCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *ArchitectReviewCreate) SetNillableApprovedBy(v *string) *ArchitectReviewCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *ArchitectReviewCreate) SetApprovedAt(v time.Time) *ArchitectReviewCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *ArchitectReviewCreate) SetNillableApprovedAt(v *time.Time) *ArchitectReviewCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArchitectReviewCreate) SetCreatedAt(v time.Time) *ArchitectReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArchitectReviewCreate) SetNillableCreatedAt(v *time.Time) *ArchitectReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArchitectReviewCreate) SetID(v string) *ArchitectReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the Request entity.
func (_c *ArchitectReviewCreate) SetRequest(v *Request) *ArchitectReviewCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the ArchitectReviewMutation object of the builder.
func (_c *ArchitectReviewCreate) Mutation() *ArchitectReviewMutation {
	return _c.mutation
}

// Save creates the ArchitectReview in the database.
func (_c *ArchitectReviewCreate) Save(ctx context.Context) (*ArchitectReview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArchitectReviewCreate) SaveX(ctx context.Context) *ArchitectReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArchitectReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArchitectReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArchitectReviewCreate) defaults() {
	if _, ok := _c.mutation.FilesAnalyzed(); !ok {
		v := architectreview.DefaultFilesAnalyzed
		_c.mutation.SetFilesAnalyzed(v)
	}
	if _, ok := _c.mutation.Step1PromptTokens(); !ok {
		v := architectreview.DefaultStep1PromptTokens
		_c.mutation.SetStep1PromptTokens(v)
	}
	if _, ok := _c.mutation.Step1CompletionTokens(); !ok {
		v := architectreview.DefaultStep1CompletionTokens
		_c.mutation.SetStep1CompletionTokens(v)
	}
	if _, ok := _c.mutation.Step2PromptTokens(); !ok {
		v := architectreview.DefaultStep2PromptTokens
		_c.mutation.SetStep2PromptTokens(v)
	}
	if _, ok := _c.mutation.Step2CompletionTokens(); !ok {
		v := architectreview.DefaultStep2CompletionTokens
		_c.mutation.SetStep2CompletionTokens(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := architectreview.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.Decision(); !ok {
		v := architectreview.DefaultDecision
		_c.mutation.SetDecision(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := architectreview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArchitectReviewCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "ArchitectReview.request_id"`)}
	}
	if _, ok := _c.mutation.SolutionSummary(); !ok {
		return &ValidationError{Name: "solution_summary", err: errors.New(`ent: missing required field "ArchitectReview.solution_summary"`)}
	}
	if _, ok := _c.mutation.Approach(); !ok {
		return &ValidationError{Name: "approach", err: errors.New(`ent: missing required field "ArchitectReview.approach"`)}
	}
	if _, ok := _c.mutation.SolutionJSON(); !ok {
		return &ValidationError{Name: "solution_json", err: errors.New(`ent: missing required field "ArchitectReview.solution_json"`)}
	}
	if _, ok := _c.mutation.FilesAnalyzed(); !ok {
		return &ValidationError{Name: "files_analyzed", err: errors.New(`ent: missing required field "ArchitectReview.files_analyzed"`)}
	}
	if _, ok := _c.mutation.Step1PromptTokens(); !ok {
		return &ValidationError{Name: "step1_prompt_tokens", err: errors.New(`ent: missing required field "ArchitectReview.step1_prompt_tokens"`)}
	}
	if _, ok := _c.mutation.Step1CompletionTokens(); !ok {
		return &ValidationError{Name: "step1_completion_tokens", err: errors.New(`ent: missing required field "ArchitectReview.step1_completion_tokens"`)}
	}
	if _, ok := _c.mutation.Step2PromptTokens(); !ok {
		return &ValidationError{Name: "step2_prompt_tokens", err: errors.New(`ent: missing required field "ArchitectReview.step2_prompt_tokens"`)}
	}
	if _, ok := _c.mutation.Step2CompletionTokens(); !ok {
		return &ValidationError{Name: "step2_completion_tokens", err: errors.New(`ent: missing required field "ArchitectReview.step2_completion_tokens"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ArchitectReview.duration_ms"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "ArchitectReview.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := architectreview.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ArchitectReview.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ArchitectReview.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "ArchitectReview.request"`)}
	}
	return nil
}

func (_c *ArchitectReviewCreate) sqlSave(ctx context.Context) (*ArchitectReview, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ArchitectReview.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArchitectReviewCreate) createSpec() (*ArchitectReview, *sqlgraph.CreateSpec) {
	var (
		_node = &ArchitectReview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(architectreview.Table, sqlgraph.NewFieldSpec(architectreview.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SolutionSummary(); ok {
		_spec.SetField(architectreview.FieldSolutionSummary, field.TypeString, value)
		_node.SolutionSummary = value
	}
	if value, ok := _c.mutation.Approach(); ok {
		_spec.SetField(architectreview.FieldApproach, field.TypeString, value)
		_node.Approach = value
	}
	if value, ok := _c.mutation.SolutionJSON(); ok {
		_spec.SetField(architectreview.FieldSolutionJSON, field.TypeString, value)
		_node.SolutionJSON = value
	}
	if value, ok := _c.mutation.EstimatedComplexity(); ok {
		_spec.SetField(architectreview.FieldEstimatedComplexity, field.TypeString, value)
		_node.EstimatedComplexity = value
	}
	if value, ok := _c.mutation.EstimatedEffort(); ok {
		_spec.SetField(architectreview.FieldEstimatedEffort, field.TypeString, value)
		_node.EstimatedEffort = value
	}
	if value, ok := _c.mutation.FilesAnalyzed(); ok {
		_spec.SetField(architectreview.FieldFilesAnalyzed, field.TypeInt, value)
		_node.FilesAnalyzed = value
	}
	if value, ok := _c.mutation.FilePaths(); ok {
		_spec.SetField(architectreview.FieldFilePaths, field.TypeJSON, value)
		_node.FilePaths = value
	}
	if value, ok := _c.mutation.Step1PromptTokens(); ok {
		_spec.SetField(architectreview.FieldStep1PromptTokens, field.TypeInt, value)
		_node.Step1PromptTokens = value
	}
	if value, ok := _c.mutation.Step1CompletionTokens(); ok {
		_spec.SetField(architectreview.FieldStep1CompletionTokens, field.TypeInt, value)
		_node.Step1CompletionTokens = value
	}
	if value, ok := _c.mutation.Step2PromptTokens(); ok {
		_spec.SetField(architectreview.FieldStep2PromptTokens, field.TypeInt, value)
		_node.Step2PromptTokens = value
	}
	if value, ok := _c.mutation.Step2CompletionTokens(); ok {
		_spec.SetField(architectreview.FieldStep2CompletionTokens, field.TypeInt, value)
		_node.Step2CompletionTokens = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(architectreview.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(architectreview.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(architectreview.FieldDecision, field.TypeEnum, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.HumanFeedback(); ok {
		_spec.SetField(architectreview.FieldHumanFeedback, field.TypeString, value)
		_node.HumanFeedback = &value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(architectreview.FieldApprovedBy, field.TypeString, value)
		_node.ApprovedBy = &value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(architectreview.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(architectreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   architectreview.RequestTable,
			Columns: []string{architectreview.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(request.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RequestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ArchitectReviewCreateBulk is the builder for creating many ArchitectReview entities in bulk.
type ArchitectReviewCreateBulk struct {
	config
	err      error
	builders []*ArchitectReviewCreate
}

// Save creates the ArchitectReview entities in the database.
func (_c *ArchitectReviewCreateBulk) Save(ctx context.Context) ([]*ArchitectReview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ArchitectReview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArchitectReviewMutation)
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
func (_c *ArchitectReviewCreateBulk) SaveX(ctx context.Context) []*ArchitectReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArchitectReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArchitectReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
