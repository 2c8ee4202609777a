package concept

import (
	"errors"
	"strings"
	"testing"
)

func TestNew_SeedGraph(t *testing.T) {
	g, err := New(Seed())
	if err != nil {
		t.Fatalf("seed graph failed to build: %v", err)
	}
	if g.Len() != 7 {
		t.Errorf("got %d concepts, want 7", g.Len())
	}

	ids := g.IDs()
	if ids[0] != "basic_arithmetic" {
		t.Errorf("first concept is %q, want basic_arithmetic (insertion order must hold)", ids[0])
	}
	if ids[6] != "integrals" {
		t.Errorf("last concept is %q, want integrals", ids[6])
	}
}

func TestNew_Adjacency(t *testing.T) {
	g, err := New(Seed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	children := g.Children("basic_arithmetic")
	want := map[string]bool{"linear_equations": true, "geometry_basics": true}
	if len(children) != 2 {
		t.Fatalf("basic_arithmetic children: got %v, want 2 entries", children)
	}
	for _, c := range children {
		if !want[c] {
			t.Errorf("unexpected child %q", c)
		}
	}

	parents := g.Parents("derivatives")
	if len(parents) != 2 || parents[0] != "quadratic_equations" || parents[1] != "trigonometry" {
		t.Errorf("derivatives parents: got %v, want [quadratic_equations trigonometry] in order", parents)
	}
}

func TestNew_Connected(t *testing.T) {
	g, err := New(Seed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conn := g.Connected("trigonometry")
	// geometry_basics (parent) and derivatives (child)
	if len(conn) != 2 {
		t.Fatalf("trigonometry connected set: got %v, want 2 entries", conn)
	}
	if conn[0] != "geometry_basics" || conn[1] != "derivatives" {
		t.Errorf("connected set order: got %v, want parents before children", conn)
	}
}

func TestNew_PlaceholderForUndefinedPrerequisite(t *testing.T) {
	g, err := New([]Concept{
		{ID: "a", Keywords: []string{"alpha"}, Difficulty: 0.5},
		{ID: "b", Keywords: []string{"beta"}, Prerequisites: []string{"ghost"}, Difficulty: 0.5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The placeholder hosts the reverse edge but is not a defined concept.
	ghost, ok := g.Get("ghost")
	if !ok {
		t.Fatal("placeholder node not created for undefined prerequisite")
	}
	if !ghost.Placeholder {
		t.Error("placeholder node not flagged as Placeholder")
	}
	if len(ghost.Keywords) != 0 || ghost.Difficulty != 0 {
		t.Errorf("placeholder should be empty, got %+v", ghost)
	}
	if kids := g.Children("ghost"); len(kids) != 1 || kids[0] != "b" {
		t.Errorf("placeholder children: got %v, want [b]", kids)
	}
	for _, id := range g.IDs() {
		if id == "ghost" {
			t.Error("placeholder must not appear in the defined concept order")
		}
	}
}

func TestNew_DetectsCycle(t *testing.T) {
	_, err := New([]Concept{
		{ID: "a", Prerequisites: []string{"b"}},
		{ID: "b", Prerequisites: []string{"a"}},
	})
	if err == nil {
		t.Fatal("expected error for prerequisite cycle, got nil")
	}
	var cfgErr *ConfigError
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected *ConfigError, got %T", err)
	}
}

func TestNew_DetectsDuplicateID(t *testing.T) {
	_, err := New([]Concept{
		{ID: "a"},
		{ID: "a"},
	})
	if err == nil {
		t.Fatal("expected error for duplicate id, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestNew_RejectsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name string
		c    Concept
	}{
		{"difficulty above 1", Concept{ID: "a", Difficulty: 1.5}},
		{"negative difficulty", Concept{ID: "a", Difficulty: -0.1}},
		{"probability above 1", Concept{ID: "a", Probability: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New([]Concept{tt.c}); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestRoots(t *testing.T) {
	g, err := New(Seed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	roots := g.Roots()
	if len(roots) != 1 || roots[0].ID != "basic_arithmetic" {
		t.Errorf("roots: got %v, want [basic_arithmetic]", roots)
	}
}

func TestIDs_ReturnsCopy(t *testing.T) {
	g, err := New(Seed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := g.IDs()
	a[0] = "MUTATED"
	b := g.IDs()
	if b[0] == "MUTATED" {
		t.Error("IDs did not return a defensive copy")
	}
}

func TestPriorAndEffProb(t *testing.T) {
	withPrior := Concept{ID: "a", Difficulty: 0.4, Probability: 0.3}
	if got := withPrior.Prior(); got != 0.3 {
		t.Errorf("Prior with authored probability: got %v, want 0.3", got)
	}
	if got := withPrior.EffProb(); got != 0.3 {
		t.Errorf("EffProb with authored probability: got %v, want 0.3", got)
	}

	// The fallbacks differ: Prior uses 1-difficulty, EffProb uses 1.0.
	unset := Concept{ID: "b", Difficulty: 0.4}
	if got := unset.Prior(); got != 0.6 {
		t.Errorf("Prior fallback: got %v, want 0.6", got)
	}
	if got := unset.EffProb(); got != 1.0 {
		t.Errorf("EffProb fallback: got %v, want 1.0", got)
	}
}
