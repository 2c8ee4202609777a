// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathlens/ent/analysisevent"
	"github.com/abhisek/mathlens/ent/practicetestevent"
	"github.com/abhisek/mathlens/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysiseventMixin := schema.AnalysisEvent{}.Mixin()
	analysiseventMixinFields0 := analysiseventMixin[0].Fields()
	_ = analysiseventMixinFields0
	analysiseventFields := schema.AnalysisEvent{}.Fields()
	_ = analysiseventFields
	// analysiseventDescTimestamp is the schema descriptor for timestamp field.
	analysiseventDescTimestamp := analysiseventMixinFields0[1].Descriptor()
	// analysisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analysisevent.DefaultTimestamp = analysiseventDescTimestamp.Default.(func() time.Time)
	// analysiseventDescQuestion is the schema descriptor for question field.
	analysiseventDescQuestion := analysiseventFields[0].Descriptor()
	// analysisevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	analysisevent.QuestionValidator = analysiseventDescQuestion.Validators[0].(func(string) error)
	// analysiseventDescMainConcept is the schema descriptor for main_concept field.
	analysiseventDescMainConcept := analysiseventFields[1].Descriptor()
	// analysisevent.MainConceptValidator is a validator for the "main_concept" field. It is called by the builders before save.
	analysisevent.MainConceptValidator = analysiseventDescMainConcept.Validators[0].(func(string) error)
	practicetesteventMixin := schema.PracticeTestEvent{}.Mixin()
	practicetesteventMixinFields0 := practicetesteventMixin[0].Fields()
	_ = practicetesteventMixinFields0
	practicetesteventFields := schema.PracticeTestEvent{}.Fields()
	_ = practicetesteventFields
	// practicetesteventDescTimestamp is the schema descriptor for timestamp field.
	practicetesteventDescTimestamp := practicetesteventMixinFields0[1].Descriptor()
	// practicetestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	practicetestevent.DefaultTimestamp = practicetesteventDescTimestamp.Default.(func() time.Time)
	// practicetesteventDescConcept is the schema descriptor for concept field.
	practicetesteventDescConcept := practicetesteventFields[0].Descriptor()
	// practicetestevent.ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	practicetestevent.ConceptValidator = practicetesteventDescConcept.Validators[0].(func(string) error)
}
