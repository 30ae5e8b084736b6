// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conveyor-dev/conveyor/ent/architectreview"
	"github.com/conveyor-dev/conveyor/ent/predicate"
)

// ArchitectReviewDelete is the builder for deleting a ArchitectReview entity.
type ArchitectReviewDelete struct {
	config
	hooks    []Hook
	mutation *ArchitectReviewMutation
}

// Where appends a list predicates to the ArchitectReviewDelete builder.
func (_d *ArchitectReviewDelete) Where(ps ...predicate.ArchitectReview) *ArchitectReviewDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ArchitectReviewDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArchitectReviewDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ArchitectReviewDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(architectreview.Table, sqlgraph.NewFieldSpec(architectreview.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ArchitectReviewDeleteOne is the builder for deleting a single ArchitectReview entity.
type ArchitectReviewDeleteOne struct {
	_d *ArchitectReviewDelete
}

// Where appends a list predicates to the ArchitectReviewDelete builder.
func (_d *ArchitectReviewDeleteOne) Where(ps ...predicate.ArchitectReview) *ArchitectReviewDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ArchitectReviewDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{architectreview.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ArchitectReviewDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
