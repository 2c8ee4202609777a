package practice

// Question is a single generated practice question.
type Question struct {
	ID             string
	Text           string
	Concept        string
	Prerequisites  []string
	ExpectedAnswer string
	Template       string
}

// Test is a generated practice test for one concept, optionally covering its
// prerequisite chain.
type Test struct {
	Concept               string
	IncludesPrerequisites bool
	Questions             []Question
	ConceptsCovered       []string
}
