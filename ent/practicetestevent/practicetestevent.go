// Code generated by ent, DO NOT EDIT.

package practicetestevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practicetestevent type in the database.
	Label = "practice_test_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldConcept holds the string denoting the concept field in the database.
	FieldConcept = "concept"
	// FieldNumQuestions holds the string denoting the num_questions field in the database.
	FieldNumQuestions = "num_questions"
	// FieldConceptsCovered holds the string denoting the concepts_covered field in the database.
	FieldConceptsCovered = "concepts_covered"
	// Table holds the table name of the practicetestevent in the database.
	Table = "practice_test_events"
)

// Columns holds all SQL columns for practicetestevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldConcept,
	FieldNumQuestions,
	FieldConceptsCovered,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	ConceptValidator func(string) error
)

// OrderOption defines the ordering options for the PracticeTestEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByConcept orders the results by the concept field.
func ByConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcept, opts...).ToFunc()
}

// ByNumQuestions orders the results by the num_questions field.
func ByNumQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumQuestions, opts...).ToFunc()
}
