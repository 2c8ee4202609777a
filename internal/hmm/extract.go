package hmm

import (
	"fmt"
	"regexp"
)

// Composite observation symbols emitted for structural patterns in the text,
// tested after all keyword patterns, in this order.
const (
	SymEquation   = "equation"
	SymInequality = "inequality"
	SymSquared    = "squared"
	SymFraction   = "fraction"
	SymFunction   = "function"

	// SymOperand is the synthetic fallback when nothing else matched but the
	// text contains a bare number.
	SymOperand = "operand"
)

// specialPatterns are the five fixed composite patterns, matched without
// regard to case like the keyword patterns. A bare "=" counts as an equation
// only when not adjacent to <, >, or another =.
var specialPatterns = []struct {
	symbol  string
	pattern *regexp.Regexp
}{
	{SymEquation, regexp.MustCompile(`[^><=]=($|[^=])`)},
	{SymInequality, regexp.MustCompile(`[<>]=?|!=`)},
	{SymSquared, regexp.MustCompile(`\b\w+\^2\b|²`)},
	{SymFraction, regexp.MustCompile(`(?i)/|\bover\b|\bdivided by\b`)},
	{SymFunction, regexp.MustCompile(`(?i)\b[fg]\(.*?\)`)},
}

var operandPattern = regexp.MustCompile(`\b\d+\b`)

// Extractor turns raw question text into an ordered list of observation
// symbols. Keyword patterns are compiled once per vocabulary entry; the
// extractor is immutable and safe for concurrent use.
type Extractor struct {
	vocab    []string
	patterns []*regexp.Regexp
}

// NewExtractor compiles whole-word, case-insensitive patterns for every
// vocabulary entry, in vocabulary order.
func NewExtractor(vocab []string) (*Extractor, error) {
	e := &Extractor{
		vocab:    vocab,
		patterns: make([]*regexp.Regexp, len(vocab)),
	}
	for i, kw := range vocab {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("compile keyword pattern %q: %w", kw, err)
		}
		e.patterns[i] = re
	}
	return e, nil
}

// Extract returns the observation symbols present in the text: keyword hits
// in vocabulary order, then composite pattern hits in their fixed order. Each
// symbol appears at most once; no positional information is retained. If
// nothing matched but the text contains a bare number, the single synthetic
// symbol "operand" is returned. An empty result means no observations.
func (e *Extractor) Extract(text string) []string {
	var observations []string
	seen := make(map[string]bool)

	for i, re := range e.patterns {
		sym := e.vocab[i]
		if !seen[sym] && re.MatchString(text) {
			seen[sym] = true
			observations = append(observations, sym)
		}
	}
	for _, sp := range specialPatterns {
		if !seen[sp.symbol] && sp.pattern.MatchString(text) {
			seen[sp.symbol] = true
			observations = append(observations, sp.symbol)
		}
	}

	if len(observations) == 0 && operandPattern.MatchString(text) {
		observations = append(observations, SymOperand)
	}
	return observations
}
