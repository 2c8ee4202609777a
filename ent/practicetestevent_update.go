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
	"github.com/abhisek/mathlens/ent/practicetestevent"
	"github.com/abhisek/mathlens/ent/predicate"
)

// PracticeTestEventUpdate is the builder for updating PracticeTestEvent entities.
type PracticeTestEventUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeTestEventMutation
}

// Where appends a list predicates to the PracticeTestEventUpdate builder.
func (_u *PracticeTestEventUpdate) Where(ps ...predicate.PracticeTestEvent) *PracticeTestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConcept sets the "concept" field.
func (_u *PracticeTestEventUpdate) SetConcept(v string) *PracticeTestEventUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *PracticeTestEventUpdate) SetNillableConcept(v *string) *PracticeTestEventUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetNumQuestions sets the "num_questions" field.
func (_u *PracticeTestEventUpdate) SetNumQuestions(v int) *PracticeTestEventUpdate {
	_u.mutation.ResetNumQuestions()
	_u.mutation.SetNumQuestions(v)
	return _u
}

// SetNillableNumQuestions sets the "num_questions" field if the given value is not nil.
func (_u *PracticeTestEventUpdate) SetNillableNumQuestions(v *int) *PracticeTestEventUpdate {
	if v != nil {
		_u.SetNumQuestions(*v)
	}
	return _u
}

// AddNumQuestions adds value to the "num_questions" field.
func (_u *PracticeTestEventUpdate) AddNumQuestions(v int) *PracticeTestEventUpdate {
	_u.mutation.AddNumQuestions(v)
	return _u
}

// SetConceptsCovered sets the "concepts_covered" field.
func (_u *PracticeTestEventUpdate) SetConceptsCovered(v []string) *PracticeTestEventUpdate {
	_u.mutation.SetConceptsCovered(v)
	return _u
}

// AppendConceptsCovered appends value to the "concepts_covered" field.
func (_u *PracticeTestEventUpdate) AppendConceptsCovered(v []string) *PracticeTestEventUpdate {
	_u.mutation.AppendConceptsCovered(v)
	return _u
}

// Mutation returns the PracticeTestEventMutation object of the builder.
func (_u *PracticeTestEventUpdate) Mutation() *PracticeTestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeTestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeTestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeTestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeTestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeTestEventUpdate) check() error {
	if v, ok := _u.mutation.Concept(); ok {
		if err := practicetestevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "PracticeTestEvent.concept": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeTestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicetestevent.Table, practicetestevent.Columns, sqlgraph.NewFieldSpec(practicetestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(practicetestevent.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumQuestions(); ok {
		_spec.SetField(practicetestevent.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumQuestions(); ok {
		_spec.AddField(practicetestevent.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptsCovered(); ok {
		_spec.SetField(practicetestevent.FieldConceptsCovered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptsCovered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicetestevent.FieldConceptsCovered, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicetestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeTestEventUpdateOne is the builder for updating a single PracticeTestEvent entity.
type PracticeTestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeTestEventMutation
}

// SetConcept sets the "concept" field.
func (_u *PracticeTestEventUpdateOne) SetConcept(v string) *PracticeTestEventUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *PracticeTestEventUpdateOne) SetNillableConcept(v *string) *PracticeTestEventUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetNumQuestions sets the "num_questions" field.
func (_u *PracticeTestEventUpdateOne) SetNumQuestions(v int) *PracticeTestEventUpdateOne {
	_u.mutation.ResetNumQuestions()
	_u.mutation.SetNumQuestions(v)
	return _u
}

// SetNillableNumQuestions sets the "num_questions" field if the given value is not nil.
func (_u *PracticeTestEventUpdateOne) SetNillableNumQuestions(v *int) *PracticeTestEventUpdateOne {
	if v != nil {
		_u.SetNumQuestions(*v)
	}
	return _u
}

// AddNumQuestions adds value to the "num_questions" field.
func (_u *PracticeTestEventUpdateOne) AddNumQuestions(v int) *PracticeTestEventUpdateOne {
	_u.mutation.AddNumQuestions(v)
	return _u
}

// SetConceptsCovered sets the "concepts_covered" field.
func (_u *PracticeTestEventUpdateOne) SetConceptsCovered(v []string) *PracticeTestEventUpdateOne {
	_u.mutation.SetConceptsCovered(v)
	return _u
}

// AppendConceptsCovered appends value to the "concepts_covered" field.
func (_u *PracticeTestEventUpdateOne) AppendConceptsCovered(v []string) *PracticeTestEventUpdateOne {
	_u.mutation.AppendConceptsCovered(v)
	return _u
}

// Mutation returns the PracticeTestEventMutation object of the builder.
func (_u *PracticeTestEventUpdateOne) Mutation() *PracticeTestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeTestEventUpdate builder.
func (_u *PracticeTestEventUpdateOne) Where(ps ...predicate.PracticeTestEvent) *PracticeTestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeTestEventUpdateOne) Select(field string, fields ...string) *PracticeTestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeTestEvent entity.
func (_u *PracticeTestEventUpdateOne) Save(ctx context.Context) (*PracticeTestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeTestEventUpdateOne) SaveX(ctx context.Context) *PracticeTestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeTestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeTestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeTestEventUpdateOne) check() error {
	if v, ok := _u.mutation.Concept(); ok {
		if err := practicetestevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "PracticeTestEvent.concept": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeTestEventUpdateOne) sqlSave(ctx context.Context) (_node *PracticeTestEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicetestevent.Table, practicetestevent.Columns, sqlgraph.NewFieldSpec(practicetestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeTestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicetestevent.FieldID)
		for _, f := range fields {
			if !practicetestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicetestevent.FieldID {
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
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(practicetestevent.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumQuestions(); ok {
		_spec.SetField(practicetestevent.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumQuestions(); ok {
		_spec.AddField(practicetestevent.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptsCovered(); ok {
		_spec.SetField(practicetestevent.FieldConceptsCovered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptsCovered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicetestevent.FieldConceptsCovered, value)
		})
	}
	_node = &PracticeTestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicetestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
