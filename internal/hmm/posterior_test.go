package hmm

import (
	"errors"
	"math"
	"testing"

	"github.com/abhisek/mathlens/internal/concept"
)

func TestScore_CoversAllConceptsAndNormalizes(t *testing.T) {
	p, g := seedParams(t)
	obs := []string{"sum", "add"}
	_, path := Decode(p, obs)

	related, err := Score(p, g, obs, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(related) != g.Len() {
		t.Fatalf("got %d entries, want %d (never truncated)", len(related), g.Len())
	}

	var sum float64
	for _, r := range related {
		sum += r.Probability
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("posterior probabilities sum to %v, want 1", sum)
	}

	for i := 1; i < len(related); i++ {
		if related[i].Probability > related[i-1].Probability {
			t.Errorf("entries not sorted descending at %d: %v > %v", i, related[i].Probability, related[i-1].Probability)
		}
	}
}

func TestScore_ContextFromSecondToLastState(t *testing.T) {
	p, g := seedParams(t)
	obs := []string{"sum"}

	// Single-state path: context must come from the start distribution.
	sOne, err := Score(p, g, obs, []string{"basic_arithmetic"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Two-state path: context switches to transitions out of the
	// second-to-last state, changing the ranking.
	sTwo, err := Score(p, g, obs, []string{"integrals", "basic_arithmetic"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	probOne := make(map[string]float64, len(sOne))
	for _, r := range sOne {
		probOne[r.Concept] = r.Probability
	}
	same := true
	for _, r := range sTwo {
		if math.Abs(r.Probability-probOne[r.Concept]) > 1e-12 {
			same = false
			break
		}
	}
	if same {
		t.Error("posterior ignored the path context")
	}
}

func TestScore_NormalizationGuard(t *testing.T) {
	g, err := concept.New([]concept.Concept{{ID: "a", Keywords: []string{"alpha"}, Difficulty: 0.5}})
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}

	p := &Params{
		States:       []string{"a"},
		Observations: []string{"alpha"},
		Start:        []float64{0},
		Transition:   [][]float64{{0.7}},
		Emission:     [][]float64{{0.8}},
		stateIndex:   map[string]int{"a": 0},
		obsIndex:     map[string]int{"alpha": 0},
	}

	_, err = Score(p, g, []string{"alpha"}, []string{"a"})
	if err == nil {
		t.Fatal("expected normalization error for zero raw-score sum, got nil")
	}
	var normErr *NormalizationError
	if !errors.As(err, &normErr) {
		t.Errorf("expected *NormalizationError, got %T", err)
	}
	if normErr.Sum != 0 {
		t.Errorf("reported sum = %v, want 0", normErr.Sum)
	}
}
