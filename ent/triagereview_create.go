// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/ent/triagereview"
)

// TriageReviewCreate is the builder for creating a TriageReview entity.
type TriageReviewCreate struct {
	config
	mutation *TriageReviewMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *TriageReviewCreate) SetRequestID(v int) *TriageReviewCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *TriageReviewCreate) SetDecision(v triagereview.Decision) *TriageReviewCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *TriageReviewCreate) SetReasoning(v string) *TriageReviewCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetAlignmentScore sets the "alignment_score" field.
func (_c *TriageReviewCreate) SetAlignmentScore(v int) *TriageReviewCreate {
	_c.mutation.SetAlignmentScore(v)
	return _c
}

// SetCompletenessScore sets the "completeness_score" field.
func (_c *TriageReviewCreate) SetCompletenessScore(v int) *TriageReviewCreate {
	_c.mutation.SetCompletenessScore(v)
	return _c
}

// SetSalesAlignmentScore sets the "sales_alignment_score" field.
func (_c *TriageReviewCreate) SetSalesAlignmentScore(v int) *TriageReviewCreate {
	_c.mutation.SetSalesAlignmentScore(v)
	return _c
}

// SetSuggestedPriority sets the "suggested_priority" field.
func (_c *TriageReviewCreate) SetSuggestedPriority(v string) *TriageReviewCreate {
	_c.mutation.SetSuggestedPriority(v)
	return _c
}

// SetNillableSuggestedPriority sets the "suggested_priority" field if the given value is not nil.
func (_c *TriageReviewCreate) SetNillableSuggestedPriority(v *string) *TriageReviewCreate {
	if v != nil {
		_c.SetSuggestedPriority(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *TriageReviewCreate) SetTags(v []string) *TriageReviewCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetClarificationQuestions sets the "clarification_questions" field.
func (_c *TriageReviewCreate) SetClarificationQuestions(v []string) *TriageReviewCreate {
	_c.mutation.SetClarificationQuestions(v)
	return _c
}

// SetIsDuplicate sets the "is_duplicate" field.
func (_c *TriageReviewCreate) SetIsDuplicate(v bool) *TriageReviewCreate {
	_c.mutation.SetIsDuplicate(v)
	return _c
}

// SetNillableIsDuplicate sets the "is_duplicate" field if the given value is not nil.
func (_c *TriageReviewCreate) SetNillableIsDuplicate(v *bool) *TriageReviewCreate {
	if v != nil {
		_c.SetIsDuplicate(*v)
	}
	return _c
}

// SetDuplicateOfRequestID sets the "duplicate_of_request_id" field.
func (_c *TriageReviewCreate) SetDuplicateOfRequestID(v int) *TriageReviewCreate {
	_c.mutation.SetDuplicateOfRequestID(v)
	return _c
}

// SetNillableDuplicateOfRequestID sets the "duplicate_of_request_id" field if the given value is not nil.
func (_c *TriageReviewCreate) SetNillableDuplicateOfRequestID(v *int) *TriageReviewCreate {
	if v != nil {
		_c.SetDuplicateOfRequestID(*v)
	}
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *TriageReviewCreate) SetPromptTokens(v int) *TriageReviewCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *TriageReviewCreate) SetNillablePromptTokens(v *int) *TriageReviewCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *TriageReviewCreate) SetCompletionTokens(v int) *TriageReviewCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *TriageReviewCreate) SetNillableCompletionTokens(v *int) *TriageReviewCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *TriageReviewCreate) SetModel(v string) *TriageReviewCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *TriageReviewCreate) SetNillableModel(v *string) *TriageReviewCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *TriageReviewCreate) SetDurationMs(v int64) *TriageReviewCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *TriageReviewCreate) SetNillableDurationMs(v *int64) *TriageReviewCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TriageReviewCreate) SetCreatedAt(v time.Time) *TriageReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TriageReviewCreate) SetNillableCreatedAt(v *time.Time) *TriageReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TriageReviewCreate) SetID(v string) *TriageReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the Request entity.
func (_c *TriageReviewCreate) SetRequest(v *Request) *TriageReviewCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the TriageReviewMutation object of the builder.
func (_c *TriageReviewCreate) Mutation() *TriageReviewMutation {
	return _c.mutation
}

// Save creates the TriageReview in the database.
func (_c *TriageReviewCreate) Save(ctx context.Context) (*TriageReview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TriageReviewCreate) SaveX(ctx context.Context) *TriageReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriageReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriageReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TriageReviewCreate) defaults() {
	if _, ok := _c.mutation.IsDuplicate(); !ok {
		v := triagereview.DefaultIsDuplicate
		_c.mutation.SetIsDuplicate(v)
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := triagereview.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := triagereview.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := triagereview.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := triagereview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TriageReviewCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "TriageReview.request_id"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "TriageReview.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := triagereview.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "TriageReview.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "TriageReview.reasoning"`)}
	}
	if _, ok := _c.mutation.AlignmentScore(); !ok {
		return &ValidationError{Name: "alignment_score", err: errors.New(`ent: missing required field "TriageReview.alignment_score"`)}
	}
	if _, ok := _c.mutation.CompletenessScore(); !ok {
		return &ValidationError{Name: "completeness_score", err: errors.New(`ent: missing required field "TriageReview.completeness_score"`)}
	}
	if _, ok := _c.mutation.SalesAlignmentScore(); !ok {
		return &ValidationError{Name: "sales_alignment_score", err: errors.New(`ent: missing required field "TriageReview.sales_alignment_score"`)}
	}
	if _, ok := _c.mutation.IsDuplicate(); !ok {
		return &ValidationError{Name: "is_duplicate", err: errors.New(`ent: missing required field "TriageReview.is_duplicate"`)}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "TriageReview.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "TriageReview.completion_tokens"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "TriageReview.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TriageReview.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "TriageReview.request"`)}
	}
	return nil
}

func (_c *TriageReviewCreate) sqlSave(ctx context.Context) (*TriageReview, error) {
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
			return nil, fmt.Errorf("unexpected TriageReview.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TriageReviewCreate) createSpec() (*TriageReview, *sqlgraph.CreateSpec) {
	var (
		_node = &TriageReview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(triagereview.Table, sqlgraph.NewFieldSpec(triagereview.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(triagereview.FieldDecision, field.TypeEnum, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(triagereview.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.AlignmentScore(); ok {
		_spec.SetField(triagereview.FieldAlignmentScore, field.TypeInt, value)
		_node.AlignmentScore = value
	}
	if value, ok := _c.mutation.CompletenessScore(); ok {
		_spec.SetField(triagereview.FieldCompletenessScore, field.TypeInt, value)
		_node.CompletenessScore = value
	}
	if value, ok := _c.mutation.SalesAlignmentScore(); ok {
		_spec.SetField(triagereview.FieldSalesAlignmentScore, field.TypeInt, value)
		_node.SalesAlignmentScore = value
	}
	if value, ok := _c.mutation.SuggestedPriority(); ok {
		_spec.SetField(triagereview.FieldSuggestedPriority, field.TypeString, value)
		_node.SuggestedPriority = &value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(triagereview.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.ClarificationQuestions(); ok {
		_spec.SetField(triagereview.FieldClarificationQuestions, field.TypeJSON, value)
		_node.ClarificationQuestions = value
	}
	if value, ok := _c.mutation.IsDuplicate(); ok {
		_spec.SetField(triagereview.FieldIsDuplicate, field.TypeBool, value)
		_node.IsDuplicate = value
	}
	if value, ok := _c.mutation.DuplicateOfRequestID(); ok {
		_spec.SetField(triagereview.FieldDuplicateOfRequestID, field.TypeInt, value)
		_node.DuplicateOfRequestID = &value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(triagereview.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(triagereview.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(triagereview.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(triagereview.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(triagereview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   triagereview.RequestTable,
			Columns: []string{triagereview.RequestColumn},
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

// TriageReviewCreateBulk is the builder for creating many TriageReview entities in bulk.
type TriageReviewCreateBulk struct {
	config
	err      error
	builders []*TriageReviewCreate
}

// Save creates the TriageReview entities in the database.
func (_c *TriageReviewCreateBulk) Save(ctx context.Context) ([]*TriageReview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TriageReview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TriageReviewMutation)
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
func (_c *TriageReviewCreateBulk) SaveX(ctx context.Context) []*TriageReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriageReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriageReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
