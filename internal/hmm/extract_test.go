package hmm

import (
	"slices"
	"testing"
)

func seedExtractor(t *testing.T) *Extractor {
	t.Helper()
	p, _ := seedParams(t)
	e, err := NewExtractor(p.Observations)
	if err != nil {
		t.Fatalf("build extractor: %v", err)
	}
	return e
}

func TestExtract_KeywordHit(t *testing.T) {
	e := seedExtractor(t)
	obs := e.Extract("What is the sum of 5 and 3?")

	if !slices.Contains(obs, "sum") {
		t.Errorf(`expected "sum" in observations, got %v`, obs)
	}
	if slices.Contains(obs, SymOperand) {
		t.Errorf("operand must not be emitted when a keyword matched, got %v", obs)
	}
	if slices.Contains(obs, SymEquation) {
		t.Errorf("no bare = present, equation must not be emitted, got %v", obs)
	}
}

func TestExtract_CaseInsensitiveWholeWord(t *testing.T) {
	e := seedExtractor(t)

	obs := e.Extract("Find the AREA of the shape")
	if !slices.Contains(obs, "area") {
		t.Errorf("keyword matching must be case-insensitive, got %v", obs)
	}

	// "triangle" contains "angle" but not as a whole word.
	obs = e.Extract("triangle")
	if slices.Contains(obs, "angle") {
		t.Errorf(`"angle" must not match inside "triangle", got %v`, obs)
	}
}

func TestExtract_SpecialPatterns(t *testing.T) {
	e := seedExtractor(t)
	tests := []struct {
		name string
		text string
		want string
	}{
		{"bare equals", "5 = 5", SymEquation},
		{"less than", "5 < 9", SymInequality},
		{"not equal", "5 != 9", SymInequality},
		{"caret squared", "y^2 is here", SymSquared},
		{"superscript two", "9²", SymSquared},
		{"word over", "3 over 4", SymFraction},
		{"word over uppercase", "6 OVER 2", SymFraction},
		{"divided by", "8 divided by 2", SymFraction},
		{"divided by mixed case", "8 Divided By 2", SymFraction},
		{"call syntax", "f(3) and g(y)", SymFunction},
		{"call syntax uppercase", "evaluate F(3)", SymFunction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := e.Extract(tt.text)
			if !slices.Contains(obs, tt.want) {
				t.Errorf("Extract(%q) = %v, want to contain %q", tt.text, obs, tt.want)
			}
		})
	}
}

func TestExtract_EqualsAdjacency(t *testing.T) {
	e := seedExtractor(t)
	tests := []struct {
		text string
		want bool
	}{
		{"a = b", true},
		{"a == b", false},
		{"a <= b", false},
		{"a >= b", false},
	}
	for _, tt := range tests {
		obs := e.Extract(tt.text)
		if got := slices.Contains(obs, SymEquation); got != tt.want {
			t.Errorf("Extract(%q) equation = %v, want %v (obs %v)", tt.text, got, tt.want, obs)
		}
	}
}

func TestExtract_OperandFallback(t *testing.T) {
	e := seedExtractor(t)
	obs := e.Extract("42 99")
	if len(obs) != 1 || obs[0] != SymOperand {
		t.Errorf("digits-only input: got %v, want [%s]", obs, SymOperand)
	}
}

func TestExtract_NoObservations(t *testing.T) {
	e := seedExtractor(t)
	for _, text := range []string{"", "hello there friend"} {
		if obs := e.Extract(text); len(obs) != 0 {
			t.Errorf("Extract(%q) = %v, want no observations", text, obs)
		}
	}
}

func TestExtract_NoDuplicateSymbols(t *testing.T) {
	e := seedExtractor(t)
	// "squared" can fire as a keyword and as the composite pattern; it must
	// still contribute once.
	obs := e.Extract("x squared equals x^2")
	n := 0
	for _, o := range obs {
		if o == "squared" {
			n++
		}
	}
	if n != 1 {
		t.Errorf(`"squared" emitted %d times, want 1 (obs %v)`, n, obs)
	}
}
