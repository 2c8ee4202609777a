package concept

// ParamRange is an inclusive [min, max] range for a practice template parameter.
type ParamRange [2]int

// Concept represents a single curriculum topic node in the graph.
type Concept struct {
	ID             string
	Keywords       []string
	Prerequisites  []string
	Difficulty     float64
	Probability    float64 // authored prior; 0 means unset
	TemplateParams map[string]ParamRange

	// Placeholder marks a node that was auto-created because some concept
	// listed it as a prerequisite without defining it. Placeholders carry no
	// keywords, no prerequisites, and no difficulty; they exist only to host
	// reverse edges.
	Placeholder bool
}

// Prior returns the weight used for the start distribution: the authored
// probability when set, otherwise 1 - difficulty.
func (c Concept) Prior() float64 {
	if c.Probability > 0 {
		return c.Probability
	}
	return 1 - c.Difficulty
}

// EffProb returns the scaling factor used for transition and emission rows:
// the authored probability when set, otherwise 1.0. This is intentionally a
// different fallback than Prior.
func (c Concept) EffProb() float64 {
	if c.Probability > 0 {
		return c.Probability
	}
	return 1.0
}
