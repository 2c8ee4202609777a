package hmm

import (
	"math"
	"sort"

	"github.com/abhisek/mathlens/internal/concept"
)

// Related is one entry in the posterior relevance ranking.
type Related struct {
	Concept     string
	Probability float64
	Difficulty  float64
}

// Score computes the normalized posterior relevance of every concept given
// the observations and the decoded path. Each concept's raw score is the mean
// emission probability of the observations times a context factor: the
// transition from the second-to-last path state when the path has at least
// two states, the start probability otherwise.
//
// The result covers the full concept set, sorted by descending probability
// (equal scores keep state order). Returns a *NormalizationError when the raw
// scores sum to zero or a non-finite value.
func Score(p *Params, g *concept.Graph, observations, path []string) ([]Related, error) {
	var prev int
	hasPrev := false
	if len(path) > 1 {
		if i, ok := p.StateIndex(path[len(path)-2]); ok {
			prev = i
			hasPrev = true
		}
	}

	related := make([]Related, len(p.States))
	var total float64
	for s, id := range p.States {
		var emissionScore float64
		for _, obs := range observations {
			emissionScore += p.EmissionProb(s, obs)
		}
		emissionScore /= float64(len(observations))

		var contextScore float64
		if hasPrev {
			contextScore = p.Transition[prev][s]
		} else {
			contextScore = p.Start[s]
		}

		raw := emissionScore * contextScore
		total += raw

		c, _ := g.Get(id)
		related[s] = Related{Concept: id, Probability: raw, Difficulty: c.Difficulty}
	}

	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, &NormalizationError{Sum: total}
	}

	for i := range related {
		related[i].Probability /= total
	}
	sort.SliceStable(related, func(i, j int) bool {
		return related[i].Probability > related[j].Probability
	})
	return related, nil
}
