package practice

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/abhisek/mathlens/internal/concept"
)

// operators used by basic arithmetic questions.
var arithmeticOps = []string{"+", "-", "*", "/"}

// Generator produces practice tests from per-concept templates and the
// concept graph's template parameter ranges.
type Generator struct {
	graph *concept.Graph
	rng   *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand injects the random source. Tests use a fixed seed here to keep
// generated output reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// NewGenerator creates a Generator over the given graph.
func NewGenerator(graph *concept.Graph, opts ...Option) *Generator {
	g := &Generator{
		graph: graph,
		rng:   rand.New(rand.NewSource(rand.Int63())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a practice test for the named concept. When
// includePrerequisites is set, the test also covers the concept's
// prerequisite chain, walking the first prerequisite at each level.
// Each covered concept gets at least two questions; the head concept
// absorbs the remainder of numQuestions.
func (g *Generator) Generate(conceptID string, numQuestions int, includePrerequisites bool) (*Test, error) {
	head, ok := g.graph.Get(conceptID)
	if !ok || head.Placeholder {
		return nil, fmt.Errorf("unknown concept %q", conceptID)
	}
	if _, ok := templates[conceptID]; !ok {
		return nil, fmt.Errorf("no question templates for concept %q", conceptID)
	}

	covered := []string{conceptID}
	if includePrerequisites {
		current := conceptID
		for {
			c, ok := g.graph.Get(current)
			if !ok || len(c.Prerequisites) == 0 {
				break
			}
			for _, prereq := range c.Prerequisites {
				if !contains(covered, prereq) {
					covered = append(covered, prereq)
				}
			}
			current = c.Prerequisites[0]
		}
	}

	perConcept := make(map[string]int, len(covered))
	allocated := 0
	for _, id := range covered {
		n := max(2, numQuestions/len(covered))
		perConcept[id] = n
		allocated += n
	}
	perConcept[conceptID] += numQuestions - allocated

	test := &Test{
		Concept:               conceptID,
		IncludesPrerequisites: includePrerequisites,
		ConceptsCovered:       covered,
	}

	for _, id := range covered {
		tmpls, ok := templates[id]
		if !ok {
			continue
		}
		c, _ := g.graph.Get(id)
		for i := 0; i < perConcept[id]; i++ {
			tmpl := tmpls[g.rng.Intn(len(tmpls))]
			params, op := g.generateParams(c)

			text, err := fillTemplate(tmpl, params, op)
			if err != nil {
				continue
			}

			test.Questions = append(test.Questions, Question{
				ID:             uuid.NewString(),
				Text:           text,
				Concept:        id,
				Prerequisites:  g.graph.Parents(id),
				ExpectedAnswer: expectedAnswer(id, tmpl, params, op),
				Template:       tmpl,
			})
		}
	}

	return test, nil
}

// generateParams draws one value per template parameter range. The leading
// coefficient "a" is kept nonzero for equation concepts so answer formulas
// never divide by zero.
func (g *Generator) generateParams(c concept.Concept) (map[string]int, string) {
	params := make(map[string]int, len(c.TemplateParams))
	needNonzeroA := c.ID == "linear_equations" || c.ID == "quadratic_equations"

	// Draw in sorted key order so a seeded rng yields reproducible questions.
	names := make([]string, 0, len(c.TemplateParams))
	for name := range c.TemplateParams {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		r := c.TemplateParams[name]
		v := g.randInt(r)
		if name == "a" && needNonzeroA {
			for v == 0 {
				v = g.randInt(r)
			}
		}
		params[name] = v
	}

	var op string
	if c.ID == "basic_arithmetic" {
		op = arithmeticOps[g.rng.Intn(len(arithmeticOps))]
	}
	return params, op
}

func (g *Generator) randInt(r concept.ParamRange) int {
	lo, hi := r[0], r[1]
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
