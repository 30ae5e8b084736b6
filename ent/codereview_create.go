// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conveyor-dev/conveyor/ent/codereview"
	"github.com/conveyor-dev/conveyor/ent/request"
)

// CodeReviewCreate is the builder for creating a CodeReview entity.
type CodeReviewCreate struct {
	config
	mutation *CodeReviewMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *CodeReviewCreate) SetRequestID(v int) *CodeReviewCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *CodeReviewCreate) SetDecision(v codereview.Decision) *CodeReviewCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *CodeReviewCreate) SetSummary(v string) *CodeReviewCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetDesignCompliance sets the "design_compliance" field.
func (_c *CodeReviewCreate) SetDesignCompliance(v bool) *CodeReviewCreate {
	_c.mutation.SetDesignCompliance(v)
	return _c
}

// SetNillableDesignCompliance sets the "design_compliance" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableDesignCompliance(v *bool) *CodeReviewCreate {
	if v != nil {
		_c.SetDesignCompliance(*v)
	}
	return _c
}

// SetDesignComplianceNotes sets the "design_compliance_notes" field.
func (_c *CodeReviewCreate) SetDesignComplianceNotes(v string) *CodeReviewCreate {
	_c.mutation.SetDesignComplianceNotes(v)
	return _c
}

// SetNillableDesignComplianceNotes sets the "design_compliance_notes" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableDesignComplianceNotes(v *string) *CodeReviewCreate {
	if v != nil {
		_c.SetDesignComplianceNotes(*v)
	}
	return _c
}

// SetSecurityPass sets the "security_pass" field.
func (_c *CodeReviewCreate) SetSecurityPass(v bool) *CodeReviewCreate {
	_c.mutation.SetSecurityPass(v)
	return _c
}

// SetNillableSecurityPass sets the "security_pass" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableSecurityPass(v *bool) *CodeReviewCreate {
	if v != nil {
		_c.SetSecurityPass(*v)
	}
	return _c
}

// SetSecurityNotes sets the "security_notes" field.
func (_c *CodeReviewCreate) SetSecurityNotes(v string) *CodeReviewCreate {
	_c.mutation.SetSecurityNotes(v)
	return _c
}

// SetNillableSecurityNotes sets the "security_notes" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableSecurityNotes(v *string) *CodeReviewCreate {
	if v != nil {
		_c.SetSecurityNotes(*v)
	}
	return _c
}

// SetCodingStandardsPass sets the "coding_standards_pass" field.
func (_c *CodeReviewCreate) SetCodingStandardsPass(v bool) *CodeReviewCreate {
	_c.mutation.SetCodingStandardsPass(v)
	return _c
}

// SetNillableCodingStandardsPass sets the "coding_standards_pass" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableCodingStandardsPass(v *bool) *CodeReviewCreate {
	if v != nil {
		_c.SetCodingStandardsPass(*v)
	}
	return _c
}

// SetCodingStandardsNotes sets the "coding_standards_notes" field.
func (_c *CodeReviewCreate) SetCodingStandardsNotes(v string) *CodeReviewCreate {
	_c.mutation.SetCodingStandardsNotes(v)
	return _c
}

// SetNillableCodingStandardsNotes sets the "coding_standards_notes" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableCodingStandardsNotes(v *string) *CodeReviewCreate {
	if v != nil {
		_c.SetCodingStandardsNotes(*v)
	}
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *CodeReviewCreate) SetQualityScore(v int) *CodeReviewCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableQualityScore(v *int) *CodeReviewCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetFilesChanged sets the "files_changed" field.
func (_c *CodeReviewCreate) SetFilesChanged(v int) *CodeReviewCreate {
	_c.mutation.SetFilesChanged(v)
	return _c
}

// SetNillableFilesChanged sets the "files_changed" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableFilesChanged(v *int) *CodeReviewCreate {
	if v != nil {
		_c.SetFilesChanged(*v)
	}
	return _c
}

// SetLinesAdded sets the "lines_added" field.
func (_c *CodeReviewCreate) SetLinesAdded(v int) *CodeReviewCreate {
	_c.mutation.SetLinesAdded(v)
	return _c
}

// SetNillableLinesAdded sets the "lines_added" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableLinesAdded(v *int) *CodeReviewCreate {
	if v != nil {
		_c.SetLinesAdded(*v)
	}
	return _c
}

// SetLinesRemoved sets the "lines_removed" field.
func (_c *CodeReviewCreate) SetLinesRemoved(v int) *CodeReviewCreate {
	_c.mutation.SetLinesRemoved(v)
	return _c
}

// SetNillableLinesRemoved sets the "lines_removed" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableLinesRemoved(v *int) *CodeReviewCreate {
	if v != nil {
		_c.SetLinesRemoved(*v)
	}
	return _c
}

// SetPrNumber sets the "pr_number" field.
func (_c *CodeReviewCreate) SetPrNumber(v int) *CodeReviewCreate {
	_c.mutation.SetPrNumber(v)
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *CodeReviewCreate) SetPromptTokens(v int) *CodeReviewCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillablePromptTokens(v *int) *CodeReviewCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *CodeReviewCreate) SetCompletionTokens(v int) *CodeReviewCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableCompletionTokens(v *int) *CodeReviewCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *CodeReviewCreate) SetModel(v string) *CodeReviewCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableModel(v *string) *CodeReviewCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *CodeReviewCreate) SetDurationMs(v int64) *CodeReviewCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableDurationMs(v *int64) *CodeReviewCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CodeReviewCreate) SetCreatedAt(v time.Time) *CodeReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableCreatedAt(v *time.Time) *CodeReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CodeReviewCreate) SetID(v string) *CodeReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the Request entity.
func (_c *CodeReviewCreate) SetRequest(v *Request) *CodeReviewCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the CodeReviewMutation object of the builder.
func (_c *CodeReviewCreate) Mutation() *CodeReviewMutation {
	return _c.mutation
}

// Save creates the CodeReview in the database.
func (_c *CodeReviewCreate) Save(ctx context.Context) (*CodeReview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CodeReviewCreate) SaveX(ctx context.Context) *CodeReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CodeReviewCreate) defaults() {
	if _, ok := _c.mutation.DesignCompliance(); !ok {
		v := codereview.DefaultDesignCompliance
		_c.mutation.SetDesignCompliance(v)
	}
	if _, ok := _c.mutation.SecurityPass(); !ok {
		v := codereview.DefaultSecurityPass
		_c.mutation.SetSecurityPass(v)
	}
	if _, ok := _c.mutation.CodingStandardsPass(); !ok {
		v := codereview.DefaultCodingStandardsPass
		_c.mutation.SetCodingStandardsPass(v)
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		v := codereview.DefaultQualityScore
		_c.mutation.SetQualityScore(v)
	}
	if _, ok := _c.mutation.FilesChanged(); !ok {
		v := codereview.DefaultFilesChanged
		_c.mutation.SetFilesChanged(v)
	}
	if _, ok := _c.mutation.LinesAdded(); !ok {
		v := codereview.DefaultLinesAdded
		_c.mutation.SetLinesAdded(v)
	}
	if _, ok := _c.mutation.LinesRemoved(); !ok {
		v := codereview.DefaultLinesRemoved
		_c.mutation.SetLinesRemoved(v)
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := codereview.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := codereview.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := codereview.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := codereview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CodeReviewCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "CodeReview.request_id"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "CodeReview.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := codereview.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "CodeReview.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "CodeReview.summary"`)}
	}
	if _, ok := _c.mutation.DesignCompliance(); !ok {
		return &ValidationError{Name: "design_compliance", err: errors.New(`ent: missing required field "CodeReview.design_compliance"`)}
	}
	if _, ok := _c.mutation.SecurityPass(); !ok {
		return &ValidationError{Name: "security_pass", err: errors.New(`ent: missing required field "CodeReview.security_pass"`)}
	}
	if _, ok := _c.mutation.CodingStandardsPass(); !ok {
		return &ValidationError{Name: "coding_standards_pass", err: errors.New(`ent: missing required field "CodeReview.coding_standards_pass"`)}
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		return &ValidationError{Name: "quality_score", err: errors.New(`ent: missing required field "CodeReview.quality_score"`)}
	}
	if _, ok := _c.mutation.FilesChanged(); !ok {
		return &ValidationError{Name: "files_changed", err: errors.New(`ent: missing required field "CodeReview.files_changed"`)}
	}
	if _, ok := _c.mutation.LinesAdded(); !ok {
		return &ValidationError{Name: "lines_added", err: errors.New(`ent: missing required field "CodeReview.lines_added"`)}
	}
	if _, ok := _c.mutation.LinesRemoved(); !ok {
		return &ValidationError{Name: "lines_removed", err: errors.New(`ent: missing required field "CodeReview.lines_removed"`)}
	}
	if _, ok := _c.mutation.PrNumber(); !ok {
		return &ValidationError{Name: "pr_number", err: errors.New(`ent: missing required field "CodeReview.pr_number"`)}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "CodeReview.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "CodeReview.completion_tokens"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "CodeReview.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CodeReview.created_at"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "CodeReview.request"`)}
	}
	return nil
}

func (_c *CodeReviewCreate) sqlSave(ctx context.Context) (*CodeReview, error) {
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
			return nil, fmt.Errorf("unexpected CodeReview.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CodeReviewCreate) createSpec() (*CodeReview, *sqlgraph.CreateSpec) {
	var (
		_node = &CodeReview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(codereview.Table, sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(codereview.FieldDecision, field.TypeEnum, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(codereview.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.DesignCompliance(); ok {
		_spec.SetField(codereview.FieldDesignCompliance, field.TypeBool, value)
		_node.DesignCompliance = value
	}
	if value, ok := _c.mutation.DesignComplianceNotes(); ok {
		_spec.SetField(codereview.FieldDesignComplianceNotes, field.TypeString, value)
		_node.DesignComplianceNotes = value
	}
	if value, ok := _c.mutation.SecurityPass(); ok {
		_spec.SetField(codereview.FieldSecurityPass, field.TypeBool, value)
		_node.SecurityPass = value
	}
	if value, ok := _c.mutation.SecurityNotes(); ok {
		_spec.SetField(codereview.FieldSecurityNotes, field.TypeString, value)
		_node.SecurityNotes = value
	}
	if value, ok := _c.mutation.CodingStandardsPass(); ok {
		_spec.SetField(codereview.FieldCodingStandardsPass, field.TypeBool, value)
		_node.CodingStandardsPass = value
	}
	if value, ok := _c.mutation.CodingStandardsNotes(); ok {
		_spec.SetField(codereview.FieldCodingStandardsNotes, field.TypeString, value)
		_node.CodingStandardsNotes = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(codereview.FieldQualityScore, field.TypeInt, value)
		_node.QualityScore = value
	}
	if value, ok := _c.mutation.FilesChanged(); ok {
		_spec.SetField(codereview.FieldFilesChanged, field.TypeInt, value)
		_node.FilesChanged = value
	}
	if value, ok := _c.mutation.LinesAdded(); ok {
		_spec.SetField(codereview.FieldLinesAdded, field.TypeInt, value)
		_node.LinesAdded = value
	}
	if value, ok := _c.mutation.LinesRemoved(); ok {
		_spec.SetField(codereview.FieldLinesRemoved, field.TypeInt, value)
		_node.LinesRemoved = value
	}
	if value, ok := _c.mutation.PrNumber(); ok {
		_spec.SetField(codereview.FieldPrNumber, field.TypeInt, value)
		_node.PrNumber = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(codereview.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(codereview.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(codereview.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(codereview.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(codereview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   codereview.RequestTable,
			Columns: []string{codereview.RequestColumn},
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

// CodeReviewCreateBulk is the builder for creating many CodeReview entities in bulk.
type CodeReviewCreateBulk struct {
	config
	err      error
	builders []*CodeReviewCreate
}

// Save creates the CodeReview entities in the database.
func (_c *CodeReviewCreateBulk) Save(ctx context.Context) ([]*CodeReview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CodeReview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CodeReviewMutation)
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
func (_c *CodeReviewCreateBulk) SaveX(ctx context.Context) []*CodeReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
