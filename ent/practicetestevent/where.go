// Code generated by ent, DO NOT EDIT.

package practicetestevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v string) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldEQ(FieldConcept, v))
}

// NumQuestions applies equality check predicate on the "num_questions" field. It's identical to NumQuestionsEQ.
func NumQuestions(v int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldEQ(FieldNumQuestions, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v string) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v string) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...string) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...string) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v string) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v string) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v string) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v string) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldLTE(FieldConcept, v))
}

// ConceptContains applies the Contains predicate on the "concept" field.
func ConceptContains(v string) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldContains(FieldConcept, v))
}

// ConceptHasPrefix applies the HasPrefix predicate on the "concept" field.
func ConceptHasPrefix(v string) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldHasPrefix(FieldConcept, v))
}

// ConceptHasSuffix applies the HasSuffix predicate on the "concept" field.
func ConceptHasSuffix(v string) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldHasSuffix(FieldConcept, v))
}

// ConceptEqualFold applies the EqualFold predicate on the "concept" field.
func ConceptEqualFold(v string) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldEqualFold(FieldConcept, v))
}

// ConceptContainsFold applies the ContainsFold predicate on the "concept" field.
func ConceptContainsFold(v string) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldContainsFold(FieldConcept, v))
}

// NumQuestionsEQ applies the EQ predicate on the "num_questions" field.
func NumQuestionsEQ(v int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldEQ(FieldNumQuestions, v))
}

// NumQuestionsNEQ applies the NEQ predicate on the "num_questions" field.
func NumQuestionsNEQ(v int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldNEQ(FieldNumQuestions, v))
}

// NumQuestionsIn applies the In predicate on the "num_questions" field.
func NumQuestionsIn(vs ...int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldIn(FieldNumQuestions, vs...))
}

// NumQuestionsNotIn applies the NotIn predicate on the "num_questions" field.
func NumQuestionsNotIn(vs ...int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldNotIn(FieldNumQuestions, vs...))
}

// NumQuestionsGT applies the GT predicate on the "num_questions" field.
func NumQuestionsGT(v int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldGT(FieldNumQuestions, v))
}

// NumQuestionsGTE applies the GTE predicate on the "num_questions" field.
func NumQuestionsGTE(v int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldGTE(FieldNumQuestions, v))
}

// NumQuestionsLT applies the LT predicate on the "num_questions" field.
func NumQuestionsLT(v int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldLT(FieldNumQuestions, v))
}

// NumQuestionsLTE applies the LTE predicate on the "num_questions" field.
func NumQuestionsLTE(v int) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.FieldLTE(FieldNumQuestions, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeTestEvent) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeTestEvent) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeTestEvent) predicate.PracticeTestEvent {
	return predicate.PracticeTestEvent(sql.NotPredicates(p))
}
