// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathlens/ent/practicetestevent"
	"github.com/abhisek/mathlens/ent/predicate"
)

// PracticeTestEventDelete is the builder for deleting a PracticeTestEvent entity.
type PracticeTestEventDelete struct {
	config
	hooks    []Hook
	mutation *PracticeTestEventMutation
}

// Where appends a list predicates to the PracticeTestEventDelete builder.
func (_d *PracticeTestEventDelete) Where(ps ...predicate.PracticeTestEvent) *PracticeTestEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PracticeTestEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PracticeTestEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PracticeTestEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(practicetestevent.Table, sqlgraph.NewFieldSpec(practicetestevent.FieldID, field.TypeInt))
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

// PracticeTestEventDeleteOne is the builder for deleting a single PracticeTestEvent entity.
type PracticeTestEventDeleteOne struct {
	_d *PracticeTestEventDelete
}

// Where appends a list predicates to the PracticeTestEventDelete builder.
func (_d *PracticeTestEventDeleteOne) Where(ps ...predicate.PracticeTestEvent) *PracticeTestEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PracticeTestEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{practicetestevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PracticeTestEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
