package hmm

import (
	"slices"
	"testing"

	"github.com/abhisek/mathlens/internal/concept"
)

func fixtureParams(t *testing.T) *Params {
	t.Helper()
	g, err := concept.New([]concept.Concept{
		{ID: "a", Keywords: []string{"alpha"}, Difficulty: 0.5},
		{ID: "b", Keywords: []string{"beta"}, Prerequisites: []string{"a"}, Difficulty: 0.5},
		{ID: "c", Keywords: []string{"gamma"}, Prerequisites: []string{"b"}, Difficulty: 0.5},
	})
	if err != nil {
		t.Fatalf("build fixture graph: %v", err)
	}
	p, err := NewParams(g)
	if err != nil {
		t.Fatalf("build fixture params: %v", err)
	}
	return p
}

func TestDecode_PathLengthMatchesObservations(t *testing.T) {
	p := fixtureParams(t)
	for _, obs := range [][]string{
		{"alpha"},
		{"alpha", "beta"},
		{"alpha", "beta", "gamma", "alpha"},
	} {
		prob, path := Decode(p, obs)
		if len(path) != len(obs) {
			t.Errorf("Decode(%v): path length %d, want %d", obs, len(path), len(obs))
		}
		if prob <= 0 {
			t.Errorf("Decode(%v): probability %v, want > 0", obs, prob)
		}
	}
}

func TestDecode_StrongKeywordWins(t *testing.T) {
	p := fixtureParams(t)
	_, path := Decode(p, []string{"alpha", "alpha"})
	if path[len(path)-1] != "a" {
		t.Errorf("repeated alpha observations: final state %q, want a", path[len(path)-1])
	}
}

func TestDecode_Deterministic(t *testing.T) {
	p := fixtureParams(t)
	obs := []string{"beta", "gamma", "alpha"}
	prob1, path1 := Decode(p, obs)
	prob2, path2 := Decode(p, obs)
	if prob1 != prob2 || !slices.Equal(path1, path2) {
		t.Errorf("decoding is not deterministic: (%v, %v) vs (%v, %v)", prob1, path1, prob2, path2)
	}
}

func TestDecode_TieBreakEarliestState(t *testing.T) {
	// Two indistinguishable states: every score ties at every step, so the
	// earliest state in the fixed order must win throughout.
	p := &Params{
		States:       []string{"a", "b"},
		Observations: []string{"o"},
		Start:        []float64{0.5, 0.5},
		Transition:   [][]float64{{0.4, 0.4}, {0.4, 0.4}},
		Emission:     [][]float64{{0.5}, {0.5}},
		stateIndex:   map[string]int{"a": 0, "b": 1},
		obsIndex:     map[string]int{"o": 0},
	}

	_, path := Decode(p, []string{"o", "o", "o"})
	want := []string{"a", "a", "a"}
	if !slices.Equal(path, want) {
		t.Errorf("tie-break path = %v, want %v", path, want)
	}
}

func TestDecode_EmptyObservations(t *testing.T) {
	p := fixtureParams(t)
	prob, path := Decode(p, nil)
	if prob != 0 || path != nil {
		t.Errorf("Decode with no observations: got (%v, %v), want (0, nil)", prob, path)
	}
}
