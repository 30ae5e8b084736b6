// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conveyor-dev/conveyor/ent/comment"
	"github.com/conveyor-dev/conveyor/ent/predicate"
)

// CommentUpdate is the builder for updating Comment entities.
type CommentUpdate struct {
	config
	hooks    []Hook
	mutation *CommentMutation
}

// Where appends a list predicates to the CommentUpdate builder.
func (_u *CommentUpdate) Where(ps ...predicate.Comment) *CommentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAuthor sets the "author" field.
func (_u *CommentUpdate) SetAuthor(v string) *CommentUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableAuthor(v *string) *CommentUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CommentUpdate) SetContent(v string) *CommentUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableContent(v *string) *CommentUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetIsAgent sets the "is_agent" field.
func (_u *CommentUpdate) SetIsAgent(v bool) *CommentUpdate {
	_u.mutation.SetIsAgent(v)
	return _u
}

// SetNillableIsAgent sets the "is_agent" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableIsAgent(v *bool) *CommentUpdate {
	if v != nil {
		_u.SetIsAgent(*v)
	}
	return _u
}

// SetReviewKind sets the "review_kind" field.
func (_u *CommentUpdate) SetReviewKind(v comment.ReviewKind) *CommentUpdate {
	_u.mutation.SetReviewKind(v)
	return _u
}

// SetNillableReviewKind sets the "review_kind" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableReviewKind(v *comment.ReviewKind) *CommentUpdate {
	if v != nil {
		_u.SetReviewKind(*v)
	}
	return _u
}

// ClearReviewKind clears the value of the "review_kind" field.
func (_u *CommentUpdate) ClearReviewKind() *CommentUpdate {
	_u.mutation.ClearReviewKind()
	return _u
}

// SetReviewID sets the "review_id" field.
func (_u *CommentUpdate) SetReviewID(v string) *CommentUpdate {
	_u.mutation.SetReviewID(v)
	return _u
}

// SetNillableReviewID sets the "review_id" field if the given value is not nil.
func (_u *CommentUpdate) SetNillableReviewID(v *string) *CommentUpdate {
	if v != nil {
		_u.SetReviewID(*v)
	}
	return _u
}

// ClearReviewID clears the value of the "review_id" field.
func (_u *CommentUpdate) ClearReviewID() *CommentUpdate {
	_u.mutation.ClearReviewID()
	return _u
}

// Mutation returns the CommentMutation object of the builder.
func (_u *CommentUpdate) Mutation() *CommentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommentUpdate) check() error {
	if v, ok := _u.mutation.ReviewKind(); ok {
		if err := comment.ReviewKindValidator(v); err != nil {
			return &ValidationError{Name: "review_kind", err: fmt.Errorf(`ent: validator failed for field "Comment.review_kind": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Comment.request"`)
	}
	return nil
}

func (_u *CommentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comment.Table, comment.Columns, sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(comment.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(comment.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsAgent(); ok {
		_spec.SetField(comment.FieldIsAgent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewKind(); ok {
		_spec.SetField(comment.FieldReviewKind, field.TypeEnum, value)
	}
	if _u.mutation.ReviewKindCleared() {
		_spec.ClearField(comment.FieldReviewKind, field.TypeEnum)
	}
	if value, ok := _u.mutation.ReviewID(); ok {
		_spec.SetField(comment.FieldReviewID, field.TypeString, value)
	}
	if _u.mutation.ReviewIDCleared() {
		_spec.ClearField(comment.FieldReviewID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommentUpdateOne is the builder for updating a single Comment entity.
type CommentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommentMutation
}

// SetAuthor sets the "author" field.
func (_u *CommentUpdateOne) SetAuthor(v string) *CommentUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableAuthor(v *string) *CommentUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CommentUpdateOne) SetContent(v string) *CommentUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableContent(v *string) *CommentUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetIsAgent sets the "is_agent" field.
func (_u *CommentUpdateOne) SetIsAgent(v bool) *CommentUpdateOne {
	_u.mutation.SetIsAgent(v)
	return _u
}

// SetNillableIsAgent sets the "is_agent" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableIsAgent(v *bool) *CommentUpdateOne {
	if v != nil {
		_u.SetIsAgent(*v)
	}
	return _u
}

// SetReviewKind sets the "review_kind" field.
func (_u *CommentUpdateOne) SetReviewKind(v comment.ReviewKind) *CommentUpdateOne {
	_u.mutation.SetReviewKind(v)
	return _u
}

// SetNillableReviewKind sets the "review_kind" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableReviewKind(v *comment.ReviewKind) *CommentUpdateOne {
	if v != nil {
		_u.SetReviewKind(*v)
	}
	return _u
}

// ClearReviewKind clears the value of the "review_kind" field.
func (_u *CommentUpdateOne) ClearReviewKind() *CommentUpdateOne {
	_u.mutation.ClearReviewKind()
	return _u
}

// SetReviewID sets the "review_id" field.
func (_u *CommentUpdateOne) SetReviewID(v string) *CommentUpdateOne {
	_u.mutation.SetReviewID(v)
	return _u
}

// SetNillableReviewID sets the "review_id" field if the given value is not nil.
func (_u *CommentUpdateOne) SetNillableReviewID(v *string) *CommentUpdateOne {
	if v != nil {
		_u.SetReviewID(*v)
	}
	return _u
}

// ClearReviewID clears the value of the "review_id" field.
func (_u *CommentUpdateOne) ClearReviewID() *CommentUpdateOne {
	_u.mutation.ClearReviewID()
	return _u
}

// Mutation returns the CommentMutation object of the builder.
func (_u *CommentUpdateOne) Mutation() *CommentMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommentUpdate builder.
func (_u *CommentUpdateOne) Where(ps ...predicate.Comment) *CommentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommentUpdateOne) Select(field string, fields ...string) *CommentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Comment entity.
func (_u *CommentUpdateOne) Save(ctx context.Context) (*Comment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommentUpdateOne) SaveX(ctx context.Context) *Comment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommentUpdateOne) check() error {
	if v, ok := _u.mutation.ReviewKind(); ok {
		if err := comment.ReviewKindValidator(v); err != nil {
			return &ValidationError{Name: "review_kind", err: fmt.Errorf(`ent: validator failed for field "Comment.review_kind": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Comment.request"`)
	}
	return nil
}

func (_u *CommentUpdateOne) sqlSave(ctx context.Context) (_node *Comment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comment.Table, comment.Columns, sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Comment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, comment.FieldID)
		for _, f := range fields {
			if !comment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != comment.FieldID {
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
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(comment.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(comment.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsAgent(); ok {
		_spec.SetField(comment.FieldIsAgent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewKind(); ok {
		_spec.SetField(comment.FieldReviewKind, field.TypeEnum, value)
	}
	if _u.mutation.ReviewKindCleared() {
		_spec.ClearField(comment.FieldReviewKind, field.TypeEnum)
	}
	if value, ok := _u.mutation.ReviewID(); ok {
		_spec.SetField(comment.FieldReviewID, field.TypeString, value)
	}
	if _u.mutation.ReviewIDCleared() {
		_spec.ClearField(comment.FieldReviewID, field.TypeString)
	}
	_node = &Comment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
