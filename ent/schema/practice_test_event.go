package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeTestEvent records one generated practice test.
type PracticeTestEvent struct {
	ent.Schema
}

func (PracticeTestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PracticeTestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("concept").
			NotEmpty().
			Comment("Concept id the test was generated for"),
		field.Int("num_questions").
			Comment("Number of questions generated"),
		field.JSON("concepts_covered", []string{}).
			Comment("All concept ids covered, head concept first"),
	}
}

func (PracticeTestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept"),
	}
}
