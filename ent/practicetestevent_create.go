// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathlens/ent/practicetestevent"
)

// PracticeTestEventCreate is the builder for creating a PracticeTestEvent entity.
type PracticeTestEventCreate struct {
	config
	mutation *PracticeTestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PracticeTestEventCreate) SetSequence(v int64) *PracticeTestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PracticeTestEventCreate) SetTimestamp(v time.Time) *PracticeTestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PracticeTestEventCreate) SetNillableTimestamp(v *time.Time) *PracticeTestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetConcept sets the "concept" field.
func (_c *PracticeTestEventCreate) SetConcept(v string) *PracticeTestEventCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetNumQuestions sets the "num_questions" field.
func (_c *PracticeTestEventCreate) SetNumQuestions(v int) *PracticeTestEventCreate {
	_c.mutation.SetNumQuestions(v)
	return _c
}

// SetConceptsCovered sets the "concepts_covered" field.
func (_c *PracticeTestEventCreate) SetConceptsCovered(v []string) *PracticeTestEventCreate {
	_c.mutation.SetConceptsCovered(v)
	return _c
}

// Mutation returns the PracticeTestEventMutation object of the builder.
func (_c *PracticeTestEventCreate) Mutation() *PracticeTestEventMutation {
	return _c.mutation
}

// Save creates the PracticeTestEvent in the database.
func (_c *PracticeTestEventCreate) Save(ctx context.Context) (*PracticeTestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeTestEventCreate) SaveX(ctx context.Context) *PracticeTestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeTestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeTestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeTestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := practicetestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeTestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PracticeTestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PracticeTestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Concept(); !ok {
		return &ValidationError{Name: "concept", err: errors.New(`ent: missing required field "PracticeTestEvent.concept"`)}
	}
	if v, ok := _c.mutation.Concept(); ok {
		if err := practicetestevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "PracticeTestEvent.concept": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NumQuestions(); !ok {
		return &ValidationError{Name: "num_questions", err: errors.New(`ent: missing required field "PracticeTestEvent.num_questions"`)}
	}
	if _, ok := _c.mutation.ConceptsCovered(); !ok {
		return &ValidationError{Name: "concepts_covered", err: errors.New(`ent: missing required field "PracticeTestEvent.concepts_covered"`)}
	}
	return nil
}

func (_c *PracticeTestEventCreate) sqlSave(ctx context.Context) (*PracticeTestEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PracticeTestEventCreate) createSpec() (*PracticeTestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeTestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicetestevent.Table, sqlgraph.NewFieldSpec(practicetestevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(practicetestevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(practicetestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(practicetestevent.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.NumQuestions(); ok {
		_spec.SetField(practicetestevent.FieldNumQuestions, field.TypeInt, value)
		_node.NumQuestions = value
	}
	if value, ok := _c.mutation.ConceptsCovered(); ok {
		_spec.SetField(practicetestevent.FieldConceptsCovered, field.TypeJSON, value)
		_node.ConceptsCovered = value
	}
	return _node, _spec
}

// PracticeTestEventCreateBulk is the builder for creating many PracticeTestEvent entities in bulk.
type PracticeTestEventCreateBulk struct {
	config
	err      error
	builders []*PracticeTestEventCreate
}

// Save creates the PracticeTestEvent entities in the database.
func (_c *PracticeTestEventCreateBulk) Save(ctx context.Context) ([]*PracticeTestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeTestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeTestEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *PracticeTestEventCreateBulk) SaveX(ctx context.Context) []*PracticeTestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeTestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeTestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
