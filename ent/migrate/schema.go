// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisEventsColumns holds the columns for the "analysis_events" table.
	AnalysisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question", Type: field.TypeString},
		{Name: "main_concept", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "observations", Type: field.TypeJSON},
	}
	// AnalysisEventsTable holds the schema information for the "analysis_events" table.
	AnalysisEventsTable = &schema.Table{
		Name:       "analysis_events",
		Columns:    AnalysisEventsColumns,
		PrimaryKey: []*schema.Column{AnalysisEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[1]},
			},
			{
				Name:    "analysisevent_main_concept",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[4]},
			},
		},
	}
	// PracticeTestEventsColumns holds the columns for the "practice_test_events" table.
	PracticeTestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "concept", Type: field.TypeString},
		{Name: "num_questions", Type: field.TypeInt},
		{Name: "concepts_covered", Type: field.TypeJSON},
	}
	// PracticeTestEventsTable holds the schema information for the "practice_test_events" table.
	PracticeTestEventsTable = &schema.Table{
		Name:       "practice_test_events",
		Columns:    PracticeTestEventsColumns,
		PrimaryKey: []*schema.Column{PracticeTestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicetestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PracticeTestEventsColumns[1]},
			},
			{
				Name:    "practicetestevent_concept",
				Unique:  false,
				Columns: []*schema.Column{PracticeTestEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisEventsTable,
		PracticeTestEventsTable,
	}
)

func init() {
}
