package concept

import (
	"fmt"
	"slices"
)

// Graph holds the curriculum DAG with precomputed adjacency.
//
// The insertion order of defined concepts is preserved: it fixes the HMM
// state iteration order, which in turn fixes Viterbi tie-breaking. All
// accessors return defensive copies; a Graph is immutable once built.
type Graph struct {
	order    []string // defined (non-placeholder) concept ids, insertion order
	byID     map[string]*Concept
	parents  map[string][]string
	children map[string][]string
}

// New constructs a Graph from a slice of concepts. Prerequisite targets that
// are not defined as concepts get placeholder nodes hosting the reverse edge.
// Returns a *ConfigError on duplicate ids, out-of-range difficulty or
// probability, or a prerequisite cycle.
func New(concepts []Concept) (*Graph, error) {
	if err := validate(concepts); err != nil {
		return nil, err
	}

	g := &Graph{
		order:    make([]string, 0, len(concepts)),
		byID:     make(map[string]*Concept, len(concepts)),
		parents:  make(map[string][]string, len(concepts)),
		children: make(map[string][]string, len(concepts)),
	}

	for i := range concepts {
		c := concepts[i]
		g.order = append(g.order, c.ID)
		g.byID[c.ID] = &c
		g.parents[c.ID] = slices.Clone(c.Prerequisites)
	}

	// Reverse edges, creating placeholders for undefined prerequisites.
	for _, id := range g.order {
		for _, prereqID := range g.byID[id].Prerequisites {
			if _, ok := g.byID[prereqID]; !ok {
				g.byID[prereqID] = &Concept{ID: prereqID, Placeholder: true}
				g.parents[prereqID] = nil
			}
			g.children[prereqID] = append(g.children[prereqID], id)
		}
	}

	return g, nil
}

// validate performs the structural checks on the authored concept set.
func validate(concepts []Concept) error {
	var problems []string

	idSet := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		if c.ID == "" {
			problems = append(problems, "concept with empty id")
			continue
		}
		if idSet[c.ID] {
			problems = append(problems, fmt.Sprintf("duplicate concept id: %q", c.ID))
		}
		idSet[c.ID] = true
		if c.Difficulty < 0 || c.Difficulty > 1 {
			problems = append(problems, fmt.Sprintf("concept %q: difficulty must be in [0, 1], got %v", c.ID, c.Difficulty))
		}
		if c.Probability < 0 || c.Probability > 1 {
			problems = append(problems, fmt.Sprintf("concept %q: probability must be in [0, 1], got %v", c.ID, c.Probability))
		}
	}

	// Cycle check over the defined concepts (Kahn's algorithm). Undefined
	// prerequisite targets cannot participate in a cycle: they have no
	// outgoing prerequisite edges of their own.
	inDegree := make(map[string]int, len(concepts))
	adj := make(map[string][]string)
	for _, c := range concepts {
		deg := 0
		for _, p := range c.Prerequisites {
			if idSet[p] {
				deg++
				adj[p] = append(adj[p], c.ID)
			}
		}
		inDegree[c.ID] = deg
	}

	var queue []string
	for _, c := range concepts {
		if inDegree[c.ID] == 0 {
			queue = append(queue, c.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, next := range adj[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if visited < len(concepts) {
		var cycleNodes []string
		for _, c := range concepts {
			if inDegree[c.ID] > 0 {
				cycleNodes = append(cycleNodes, c.ID)
			}
		}
		problems = append(problems, fmt.Sprintf("prerequisite cycle involving: %v", cycleNodes))
	}

	if len(problems) > 0 {
		return &ConfigError{Problems: problems}
	}
	return nil
}

// IDs returns the defined concept ids in insertion order.
func (g *Graph) IDs() []string {
	return slices.Clone(g.order)
}

// Len returns the number of defined concepts.
func (g *Graph) Len() int {
	return len(g.order)
}

// Get returns a concept by id. Placeholder nodes are returned with their
// Placeholder flag set.
func (g *Graph) Get(id string) (Concept, bool) {
	c, ok := g.byID[id]
	if !ok {
		return Concept{}, false
	}
	return *c, true
}

// Parents returns the direct prerequisite ids of the given concept.
func (g *Graph) Parents(id string) []string {
	return slices.Clone(g.parents[id])
}

// Children returns the ids of concepts that list the given id as a prerequisite.
func (g *Graph) Children(id string) []string {
	return slices.Clone(g.children[id])
}

// Connected returns the union of parents and children of the given concept,
// deduplicated, parents first. The set may include placeholder ids.
func (g *Graph) Connected(id string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range g.parents[id] {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, c := range g.children[id] {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Roots returns the defined concepts with no prerequisites, in insertion order.
func (g *Graph) Roots() []Concept {
	var out []Concept
	for _, id := range g.order {
		if len(g.byID[id].Prerequisites) == 0 {
			out = append(out, *g.byID[id])
		}
	}
	return out
}
