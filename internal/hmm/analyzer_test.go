package hmm

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/abhisek/mathlens/internal/concept"
)

func seedAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	g, err := concept.New(concept.Seed())
	if err != nil {
		t.Fatalf("build seed graph: %v", err)
	}
	a, err := NewAnalyzer(g)
	if err != nil {
		t.Fatalf("build analyzer: %v", err)
	}
	return a
}

func TestAnalyze_EmptyInput(t *testing.T) {
	a := seedAnalyzer(t)
	_, err := a.Analyze("")
	if !errors.Is(err, ErrNoObservations) {
		t.Errorf("Analyze(\"\"): got %v, want ErrNoObservations", err)
	}
}

func TestAnalyze_NoMatch(t *testing.T) {
	a := seedAnalyzer(t)
	_, err := a.Analyze("hello there friend")
	if !errors.Is(err, ErrNoObservations) {
		t.Errorf("got %v, want ErrNoObservations", err)
	}
}

func TestAnalyze_OperandShortcut(t *testing.T) {
	a := seedAnalyzer(t)
	result, err := a.Analyze("42 99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MainConcept != "basic_arithmetic" {
		t.Errorf("main concept = %q, want basic_arithmetic", result.MainConcept)
	}
	if result.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", result.Confidence)
	}
	if len(result.Prerequisites) != 0 {
		t.Errorf("prerequisites = %v, want empty", result.Prerequisites)
	}
	if len(result.RelatedConcepts) != 1 {
		t.Fatalf("related concepts = %v, want exactly one entry", result.RelatedConcepts)
	}
	rc := result.RelatedConcepts[0]
	if rc.Concept != "basic_arithmetic" || rc.Probability != 1.0 {
		t.Errorf("related entry = %+v, want basic_arithmetic at 1.0", rc)
	}
	if rc.Difficulty != 0.2 {
		t.Errorf("related difficulty = %v, want 0.2", rc.Difficulty)
	}
	if !reflect.DeepEqual(result.Observations, []string{SymOperand}) {
		t.Errorf("observations = %v, want [operand]", result.Observations)
	}
}

func TestAnalyze_ArithmeticQuestion(t *testing.T) {
	a := seedAnalyzer(t)
	result, err := a.Analyze("What is the sum of 5 and 3?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MainConcept != "basic_arithmetic" {
		t.Errorf("main concept = %q, want basic_arithmetic", result.MainConcept)
	}
	if len(result.Prerequisites) != 0 {
		t.Errorf("prerequisites = %v, want empty for a root concept", result.Prerequisites)
	}
}

func TestAnalyze_LinearEquation(t *testing.T) {
	a := seedAnalyzer(t)
	result, err := a.Analyze("solve for x: 2x + 3 = 7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MainConcept != "linear_equations" {
		t.Errorf("main concept = %q, want linear_equations (observations %v)",
			result.MainConcept, result.Observations)
	}
	if len(result.Prerequisites) != 1 || result.Prerequisites[0] != "basic_arithmetic" {
		t.Errorf("prerequisites = %v, want [basic_arithmetic]", result.Prerequisites)
	}
}

func TestAnalyze_UppercaseCompositePattern(t *testing.T) {
	a := seedAnalyzer(t)
	result, err := a.Analyze("6 OVER 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The fraction pattern fired, so this is a full decode over all concepts,
	// not the digits-only arithmetic shortcut.
	if !reflect.DeepEqual(result.Observations, []string{SymFraction}) {
		t.Fatalf("observations = %v, want [%s]", result.Observations, SymFraction)
	}
	if len(result.RelatedConcepts) != 7 {
		t.Errorf("related concepts = %d entries, want the full set of 7", len(result.RelatedConcepts))
	}
	if result.Confidence == 1.0 {
		t.Error("confidence = 1.0, shortcut must not fire when a pattern matched")
	}
}

func TestAnalyze_RelatedProbabilitiesSumToOne(t *testing.T) {
	a := seedAnalyzer(t)
	result, err := a.Analyze("find the derivative of the function")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.RelatedConcepts) != 7 {
		t.Fatalf("related concepts = %d entries, want the full set of 7", len(result.RelatedConcepts))
	}
	var sum float64
	for _, rc := range result.RelatedConcepts {
		sum += rc.Probability
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("related probabilities sum to %v, want 1", sum)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := seedAnalyzer(t)
	const question = "solve the quadratic equation x^2 + 3x = 10"

	first, err := a.Analyze(question)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := a.Analyze(question)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("analysis is not deterministic:\nfirst: %+v\nagain: %+v", first, again)
		}
	}
}
