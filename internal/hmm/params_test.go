package hmm

import (
	"math"
	"testing"

	"github.com/abhisek/mathlens/internal/concept"
)

func seedParams(t *testing.T) (*Params, *concept.Graph) {
	t.Helper()
	g, err := concept.New(concept.Seed())
	if err != nil {
		t.Fatalf("build seed graph: %v", err)
	}
	p, err := NewParams(g)
	if err != nil {
		t.Fatalf("build params: %v", err)
	}
	return p, g
}

func TestNewParams_StateOrder(t *testing.T) {
	p, g := seedParams(t)
	ids := g.IDs()
	if len(p.States) != len(ids) {
		t.Fatalf("got %d states, want %d", len(p.States), len(ids))
	}
	for i, id := range ids {
		if p.States[i] != id {
			t.Errorf("state %d: got %q, want %q (graph insertion order)", i, p.States[i], id)
		}
	}
}

func TestNewParams_StartSumsToOne(t *testing.T) {
	p, _ := seedParams(t)
	var sum float64
	for _, s := range p.Start {
		sum += s
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("start probabilities sum to %v, want 1", sum)
	}
}

func TestNewParams_SelfLoopTransition(t *testing.T) {
	p, g := seedParams(t)
	for i, id := range p.States {
		c, _ := g.Get(id)
		want := 0.7 * c.EffProb()
		if p.Transition[i][i] != want {
			t.Errorf("Transition[%s][%s] = %v, want exactly %v", id, id, p.Transition[i][i], want)
		}
	}
}

func TestNewParams_TransitionConnectedVsDistant(t *testing.T) {
	p, g := seedParams(t)
	ba, _ := p.StateIndex("basic_arithmetic")
	lin, _ := p.StateIndex("linear_equations")
	integ, _ := p.StateIndex("integrals")

	linC, _ := g.Get("linear_equations")
	intC, _ := g.Get("integrals")

	// basic_arithmetic has two connected concepts (its children).
	wantConnected := (0.9 / 2) * 0.3 * linC.EffProb()
	if math.Abs(p.Transition[ba][lin]-wantConnected) > 1e-12 {
		t.Errorf("connected transition = %v, want %v", p.Transition[ba][lin], wantConnected)
	}

	wantDistant := (0.1 / float64(len(p.States)-1)) * 0.3 * intC.EffProb()
	if math.Abs(p.Transition[ba][integ]-wantDistant) > 1e-12 {
		t.Errorf("distant transition = %v, want %v", p.Transition[ba][integ], wantDistant)
	}
}

func TestNewParams_TransitionRowsNotNormalized(t *testing.T) {
	p, _ := seedParams(t)
	// The raw formula is the contract; rows are relative scores, not
	// distributions. Verify the build does not rescale them.
	var sum float64
	for _, v := range p.Transition[0] {
		sum += v
	}
	if math.Abs(sum-1) < 1e-9 {
		t.Error("transition row sums to 1; rows must keep their raw values")
	}
}

func TestNewParams_EmissionKeywordRatio(t *testing.T) {
	p, g := seedParams(t)
	for i, id := range p.States {
		c, _ := g.Get(id)
		k := len(c.Keywords)
		v := len(p.Observations)
		if k == 0 || v == k {
			continue
		}

		keySet := make(map[string]bool, k)
		for _, kw := range c.Keywords {
			keySet[kw] = true
		}
		var nonKeyword string
		for _, obs := range p.Observations {
			if !keySet[obs] {
				nonKeyword = obs
				break
			}
		}

		got := p.EmissionProb(i, c.Keywords[0]) / p.EmissionProb(i, nonKeyword)
		want := 4 * float64(v-k) / float64(k)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: emission ratio = %v, want %v", id, got, want)
		}
	}
}

func TestNewParams_VocabularyDeduped(t *testing.T) {
	p, _ := seedParams(t)
	seen := make(map[string]int)
	for _, obs := range p.Observations {
		seen[obs]++
	}
	for obs, n := range seen {
		if n > 1 {
			t.Errorf("observation %q appears %d times in vocabulary", obs, n)
		}
	}
	// "evaluate" is a keyword of four concepts but one vocabulary entry.
	if seen["evaluate"] != 1 {
		t.Errorf(`"evaluate" appears %d times, want 1`, seen["evaluate"])
	}
}

func TestEmissionProb_FloorForUnknownSymbol(t *testing.T) {
	p, _ := seedParams(t)
	// "equation" is a composite pattern symbol that is not a seed keyword.
	if got := p.EmissionProb(0, SymEquation); got != floorProb {
		t.Errorf("unknown symbol emission = %v, want floor %v", got, floorProb)
	}
	// "squared" doubles as a quadratic_equations keyword, so it resolves to a
	// computed emission, not the floor.
	quad, _ := p.StateIndex("quadratic_equations")
	if got := p.EmissionProb(quad, SymSquared); got <= floorProb {
		t.Errorf("keyword-backed symbol emission = %v, want a computed value", got)
	}
}

func TestNewParams_KeywordsSpanningVocabularyRejected(t *testing.T) {
	// Duplicate keyword inflates the keyword count to the vocabulary size
	// while leaving a non-keyword symbol, making the 0.2 split undefined.
	g, err := concept.New([]concept.Concept{
		{ID: "a", Keywords: []string{"x", "x"}, Difficulty: 0.5},
		{ID: "b", Keywords: []string{"y"}, Difficulty: 0.5},
	})
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	if _, err := NewParams(g); err == nil {
		t.Fatal("expected error for keywords spanning the vocabulary, got nil")
	}
}
