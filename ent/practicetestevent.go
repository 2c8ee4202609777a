// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathlens/ent/practicetestevent"
)

// PracticeTestEvent is the model entity for the PracticeTestEvent schema.
type PracticeTestEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global append order across all event types
	Sequence int64 `json:"sequence,omitempty"`
	// When the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Concept id the test was generated for
	Concept string `json:"concept,omitempty"`
	// Number of questions generated
	NumQuestions int `json:"num_questions,omitempty"`
	// All concept ids covered, head concept first
	ConceptsCovered []string `json:"concepts_covered,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeTestEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicetestevent.FieldConceptsCovered:
			values[i] = new([]byte)
		case practicetestevent.FieldID, practicetestevent.FieldSequence, practicetestevent.FieldNumQuestions:
			values[i] = new(sql.NullInt64)
		case practicetestevent.FieldConcept:
			values[i] = new(sql.NullString)
		case practicetestevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeTestEvent fields.
func (_m *PracticeTestEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicetestevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case practicetestevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case practicetestevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case practicetestevent.FieldConcept:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept", values[i])
			} else if value.Valid {
				_m.Concept = value.String
			}
		case practicetestevent.FieldNumQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field num_questions", values[i])
			} else if value.Valid {
				_m.NumQuestions = int(value.Int64)
			}
		case practicetestevent.FieldConceptsCovered:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concepts_covered", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConceptsCovered); err != nil {
					return fmt.Errorf("unmarshal field concepts_covered: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeTestEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeTestEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeTestEvent.
// Note that you need to call PracticeTestEvent.Unwrap() before calling this method if this PracticeTestEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeTestEvent) Update() *PracticeTestEventUpdateOne {
	return NewPracticeTestEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeTestEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeTestEvent) Unwrap() *PracticeTestEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeTestEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeTestEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeTestEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("concept=")
	builder.WriteString(_m.Concept)
	builder.WriteString(", ")
	builder.WriteString("num_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumQuestions))
	builder.WriteString(", ")
	builder.WriteString("concepts_covered=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptsCovered))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeTestEvents is a parsable slice of PracticeTestEvent.
type PracticeTestEvents []*PracticeTestEvent
