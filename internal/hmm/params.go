package hmm

import (
	"fmt"

	"github.com/abhisek/mathlens/internal/concept"
)

// floorProb is the fixed probability returned for any observation symbol
// absent from the emission vocabulary (composite pattern symbols that never
// appear as keywords, for example).
const floorProb = 1e-10

// Params holds the HMM tables derived from a concept graph. Tables are dense
// and addressed by the stable integer indices of the ordered state and
// observation lists; they are built once and never mutated, so concurrent
// readers need no coordination.
type Params struct {
	States       []string // concept ids, graph insertion order
	Observations []string // keyword vocabulary, first-seen order
	Start        []float64
	Transition   [][]float64 // [from][to]
	Emission     [][]float64 // [state][observation]

	stateIndex map[string]int
	obsIndex   map[string]int
}

// NewParams derives the start distribution, transition matrix, and emission
// matrix from the graph.
//
// Transition rows are deliberately not normalized: the 0.7 self-loop /
// 0.9-connected / 0.1-elsewhere split produces relative scores, not a true
// distribution, and downstream consumers only ever compare or renormalize
// them. The raw values are the contract.
func NewParams(g *concept.Graph) (*Params, error) {
	states := g.IDs()
	if len(states) == 0 {
		return nil, &concept.ConfigError{Problems: []string{"empty concept graph"}}
	}

	p := &Params{
		States:     states,
		stateIndex: make(map[string]int, len(states)),
	}
	for i, id := range states {
		p.stateIndex[id] = i
	}

	// Vocabulary: union of keywords across concepts, first-seen order.
	p.obsIndex = make(map[string]int)
	for _, id := range states {
		c, _ := g.Get(id)
		for _, kw := range c.Keywords {
			if _, ok := p.obsIndex[kw]; !ok {
				p.obsIndex[kw] = len(p.Observations)
				p.Observations = append(p.Observations, kw)
			}
		}
	}

	// Start distribution: authored prior (falling back to 1-difficulty),
	// normalized over all concepts.
	var total float64
	for _, id := range states {
		c, _ := g.Get(id)
		total += c.Prior()
	}
	if total <= 0 {
		return nil, &concept.ConfigError{Problems: []string{"start distribution sums to zero"}}
	}
	p.Start = make([]float64, len(states))
	for i, id := range states {
		c, _ := g.Get(id)
		p.Start[i] = c.Prior() / total
	}

	// Transition matrix. Connected neighbours (parents plus children, which
	// may include placeholder nodes) split 0.9 of the 0.3 off-loop mass;
	// everything else splits the remaining 0.1.
	n := len(states)
	p.Transition = make([][]float64, n)
	for i, from := range states {
		row := make([]float64, n)
		connected := g.Connected(from)
		connectedSet := make(map[string]bool, len(connected))
		for _, id := range connected {
			connectedSet[id] = true
		}
		connectedProb := 0.9 / float64(max(len(connected), 1))

		for j, to := range states {
			c, _ := g.Get(to)
			scale := c.EffProb()
			switch {
			case i == j:
				row[j] = 0.7 * scale
			case connectedSet[to]:
				row[j] = connectedProb * 0.3 * scale
			default:
				row[j] = (0.1 / float64(n-1)) * 0.3 * scale
			}
		}
		p.Transition[i] = row
	}

	// Emission matrix: 0.8 mass split across a concept's own keywords, 0.2
	// across the rest of the vocabulary.
	vocabSize := len(p.Observations)
	p.Emission = make([][]float64, n)
	for i, id := range states {
		c, _ := g.Get(id)
		keySet := make(map[string]bool, len(c.Keywords))
		for _, kw := range c.Keywords {
			keySet[kw] = true
		}
		row := make([]float64, vocabSize)
		scale := c.EffProb()
		for j, obs := range p.Observations {
			if keySet[obs] {
				row[j] = (0.8 / float64(len(c.Keywords))) * scale
			} else {
				rest := vocabSize - len(c.Keywords)
				if rest <= 0 {
					return nil, &concept.ConfigError{Problems: []string{
						fmt.Sprintf("concept %q: keywords span the entire vocabulary, emission split is undefined", id),
					}}
				}
				row[j] = (0.2 / float64(rest)) * scale
			}
		}
		p.Emission[i] = row
	}

	return p, nil
}

// StateIndex returns the index of a concept id in the state order.
func (p *Params) StateIndex(id string) (int, bool) {
	i, ok := p.stateIndex[id]
	return i, ok
}

// EmissionProb returns the emission probability of the named symbol in the
// given state, or the fixed floor for symbols outside the vocabulary.
func (p *Params) EmissionProb(state int, symbol string) float64 {
	j, ok := p.obsIndex[symbol]
	if !ok {
		return floorProb
	}
	return p.Emission[state][j]
}
