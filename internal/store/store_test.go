package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	db := openTestStore(t).DB()

	// journal_mode reports "memory" for in-memory databases, so only the
	// pragmas that survive the in-memory fixture are checked here.
	for pragma, want := range map[string]string{
		"foreign_keys": "1",
		"synchronous":  "1", // NORMAL
	} {
		var got string
		if err := db.QueryRow("PRAGMA " + pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", pragma, err)
			continue
		}
		if got != want {
			t.Errorf("PRAGMA %s = %q, want %q", pragma, got, want)
		}
	}
}

func TestAnalysisAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnalysisRepo()
	ctx := context.Background()

	// Empty store.
	records, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent (empty): %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}

	err = repo.Append(ctx, AnalysisEventData{
		Question:     "solve for x: 2x + 3 = 7",
		MainConcept:  "linear_equations",
		Confidence:   0.0042,
		Observations: []string{"x", "equation"},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err = repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.Data.MainConcept != "linear_equations" {
		t.Errorf("main concept = %q, want 'linear_equations'", rec.Data.MainConcept)
	}
	if rec.Data.Confidence != 0.0042 {
		t.Errorf("confidence = %v, want 0.0042", rec.Data.Confidence)
	}
	if len(rec.Data.Observations) != 2 || rec.Data.Observations[0] != "x" {
		t.Errorf("observations = %v, want [x equation]", rec.Data.Observations)
	}
	if rec.Timestamp.IsZero() {
		t.Error("expected a non-zero timestamp")
	}
}

func TestAnalysisRecentNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnalysisRepo()
	ctx := context.Background()

	concepts := []string{"basic_arithmetic", "geometry_basics", "derivatives"}
	for _, c := range concepts {
		err := repo.Append(ctx, AnalysisEventData{
			Question:    "question about " + c,
			MainConcept: c,
			Confidence:  0.5,
		})
		if err != nil {
			t.Fatalf("append %s: %v", c, err)
		}
	}

	records, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Data.MainConcept != "derivatives" {
		t.Errorf("newest = %q, want 'derivatives'", records[0].Data.MainConcept)
	}
	if records[1].Data.MainConcept != "geometry_basics" {
		t.Errorf("second = %q, want 'geometry_basics'", records[1].Data.MainConcept)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("sequences not descending: %d then %d", records[0].Sequence, records[1].Sequence)
	}
}

func TestPracticeAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.PracticeRepo()
	ctx := context.Background()

	err := repo.Append(ctx, PracticeEventData{
		Concept:         "derivatives",
		NumQuestions:    10,
		ConceptsCovered: []string{"derivatives", "quadratic_equations"},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Data.NumQuestions != 10 {
		t.Errorf("num questions = %d, want 10", records[0].Data.NumQuestions)
	}
	if len(records[0].Data.ConceptsCovered) != 2 {
		t.Errorf("concepts covered = %v, want 2 entries", records[0].Data.ConceptsCovered)
	}
}

func TestSequenceSharedAcrossRepos(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.AnalysisRepo().Append(ctx, AnalysisEventData{Question: "q1", MainConcept: "basic_arithmetic"}); err != nil {
		t.Fatalf("append analysis: %v", err)
	}
	if err := s.PracticeRepo().Append(ctx, PracticeEventData{Concept: "basic_arithmetic", NumQuestions: 1}); err != nil {
		t.Fatalf("append practice: %v", err)
	}

	analyses, err := s.AnalysisRepo().Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent analysis: %v", err)
	}
	practices, err := s.PracticeRepo().Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent practice: %v", err)
	}

	// Both event types draw from the same global counter.
	if analyses[0].Sequence != 1 {
		t.Errorf("analysis sequence = %d, want 1", analyses[0].Sequence)
	}
	if practices[0].Sequence != 2 {
		t.Errorf("practice sequence = %d, want 2", practices[0].Sequence)
	}
}

func TestEventSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"analysis_events", "practice_test_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
