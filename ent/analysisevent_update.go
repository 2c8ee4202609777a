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
	"github.com/abhisek/mathlens/ent/analysisevent"
	"github.com/abhisek/mathlens/ent/predicate"
)

// AnalysisEventUpdate is the builder for updating AnalysisEvent entities.
type AnalysisEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdate) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *AnalysisEventUpdate) SetQuestion(v string) *AnalysisEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableQuestion(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetMainConcept sets the "main_concept" field.
func (_u *AnalysisEventUpdate) SetMainConcept(v string) *AnalysisEventUpdate {
	_u.mutation.SetMainConcept(v)
	return _u
}

// SetNillableMainConcept sets the "main_concept" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableMainConcept(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetMainConcept(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnalysisEventUpdate) SetConfidence(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableConfidence(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnalysisEventUpdate) AddConfidence(v float64) *AnalysisEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetObservations sets the "observations" field.
func (_u *AnalysisEventUpdate) SetObservations(v []string) *AnalysisEventUpdate {
	_u.mutation.SetObservations(v)
	return _u
}

// AppendObservations appends value to the "observations" field.
func (_u *AnalysisEventUpdate) AppendObservations(v []string) *AnalysisEventUpdate {
	_u.mutation.AppendObservations(v)
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdate) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdate) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := analysisevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MainConcept(); ok {
		if err := analysisevent.MainConceptValidator(v); err != nil {
			return &ValidationError{Name: "main_concept", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.main_concept": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(analysisevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.MainConcept(); ok {
		_spec.SetField(analysisevent.FieldMainConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(analysisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(analysisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(analysisevent.FieldObservations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObservations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisevent.FieldObservations, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisEventUpdateOne is the builder for updating a single AnalysisEvent entity.
type AnalysisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// SetQuestion sets the "question" field.
func (_u *AnalysisEventUpdateOne) SetQuestion(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableQuestion(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetMainConcept sets the "main_concept" field.
func (_u *AnalysisEventUpdateOne) SetMainConcept(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetMainConcept(v)
	return _u
}

// SetNillableMainConcept sets the "main_concept" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableMainConcept(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetMainConcept(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnalysisEventUpdateOne) SetConfidence(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableConfidence(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnalysisEventUpdateOne) AddConfidence(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetObservations sets the "observations" field.
func (_u *AnalysisEventUpdateOne) SetObservations(v []string) *AnalysisEventUpdateOne {
	_u.mutation.SetObservations(v)
	return _u
}

// AppendObservations appends value to the "observations" field.
func (_u *AnalysisEventUpdateOne) AppendObservations(v []string) *AnalysisEventUpdateOne {
	_u.mutation.AppendObservations(v)
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdateOne) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdateOne) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisEventUpdateOne) Select(field string, fields ...string) *AnalysisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisEvent entity.
func (_u *AnalysisEventUpdateOne) Save(ctx context.Context) (*AnalysisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) SaveX(ctx context.Context) *AnalysisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdateOne) check() error {
	if v, ok := _u.mutation.Question(); ok {
		if err := analysisevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MainConcept(); ok {
		if err := analysisevent.MainConceptValidator(v); err != nil {
			return &ValidationError{Name: "main_concept", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.main_concept": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisevent.FieldID)
		for _, f := range fields {
			if !analysisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisevent.FieldID {
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
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(analysisevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.MainConcept(); ok {
		_spec.SetField(analysisevent.FieldMainConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(analysisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(analysisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(analysisevent.FieldObservations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObservations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisevent.FieldObservations, value)
		})
	}
	_node = &AnalysisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
