package hmm

import (
	"go.uber.org/zap"

	"github.com/abhisek/mathlens/internal/concept"
)

// Result is the outcome of analyzing one question.
type Result struct {
	MainConcept     string
	Confidence      float64
	Prerequisites   []string
	RelatedConcepts []Related
	Observations    []string
}

// Analyzer classifies question text against a concept graph. It is built
// once and is safe for concurrent use: the graph, the derived tables, and
// the compiled patterns are all immutable.
type Analyzer struct {
	graph     *concept.Graph
	params    *Params
	extractor *Extractor
	base      string
	log       *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger attaches a logger for per-query diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(a *Analyzer) { a.log = log }
}

// NewAnalyzer derives HMM parameters from the graph and compiles the
// observation extractor. Fails with a *concept.ConfigError when the graph
// cannot produce valid tables.
func NewAnalyzer(g *concept.Graph, opts ...Option) (*Analyzer, error) {
	params, err := NewParams(g)
	if err != nil {
		return nil, err
	}
	extractor, err := NewExtractor(params.Observations)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		graph:     g,
		params:    params,
		extractor: extractor,
		base:      baseConcept(g),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// baseConcept picks the concept used for the operand-only shortcut: the
// first root in insertion order, falling back to the first concept.
func baseConcept(g *concept.Graph) string {
	if roots := g.Roots(); len(roots) > 0 {
		return roots[0].ID
	}
	return g.IDs()[0]
}

// Params exposes the derived HMM tables.
func (a *Analyzer) Params() *Params {
	return a.params
}

// Analyze classifies the question text. Returns ErrNoObservations when no
// symbol could be extracted, and a *NormalizationError when the posterior
// cannot be normalized. Identical input always yields an identical result.
func (a *Analyzer) Analyze(text string) (*Result, error) {
	observations := a.extractor.Extract(text)
	if len(observations) == 0 {
		return nil, ErrNoObservations
	}
	a.log.Debug("extracted observations", zap.Strings("symbols", observations))

	// A lone operand symbol means digits with no concept signal at all.
	// The base arithmetic concept is the only sensible answer, so skip
	// decoding and report it with full confidence.
	if len(observations) == 1 && observations[0] == SymOperand {
		base, _ := a.graph.Get(a.base)
		return &Result{
			MainConcept:   a.base,
			Confidence:    1.0,
			Prerequisites: []string{},
			RelatedConcepts: []Related{
				{Concept: a.base, Probability: 1.0, Difficulty: base.Difficulty},
			},
			Observations: observations,
		}, nil
	}

	confidence, path := Decode(a.params, observations)
	main := path[len(path)-1]
	a.log.Debug("decoded path",
		zap.Strings("path", path),
		zap.Float64("probability", confidence))

	related, err := Score(a.params, a.graph, observations, path)
	if err != nil {
		return nil, err
	}

	return &Result{
		MainConcept:     main,
		Confidence:      confidence,
		Prerequisites:   a.graph.Parents(main),
		RelatedConcepts: related,
		Observations:    observations,
	}, nil
}
