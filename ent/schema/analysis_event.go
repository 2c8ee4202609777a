package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisEvent records one question classification.
type AnalysisEvent struct {
	ent.Schema
}

func (AnalysisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalysisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question").
			NotEmpty().
			Comment("The raw question text that was analyzed"),
		field.String("main_concept").
			NotEmpty().
			Comment("Concept id of the decoded main concept"),
		field.Float("confidence").
			Comment("Raw Viterbi path probability"),
		field.JSON("observations", []string{}).
			Comment("Observation symbols extracted from the question"),
	}
}

func (AnalysisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("main_concept"),
	}
}
