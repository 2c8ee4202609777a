package practice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathlens/internal/concept"
)

func seedGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	g, err := concept.New(concept.Seed())
	require.NoError(t, err)
	return NewGenerator(g, WithRand(rand.New(rand.NewSource(seed))))
}

func TestGenerate_SingleConcept(t *testing.T) {
	gen := seedGenerator(t, 1)
	test, err := gen.Generate("basic_arithmetic", 5, false)
	require.NoError(t, err)

	assert.Equal(t, "basic_arithmetic", test.Concept)
	assert.Equal(t, []string{"basic_arithmetic"}, test.ConceptsCovered)
	assert.Len(t, test.Questions, 5)
	for _, q := range test.Questions {
		assert.Equal(t, "basic_arithmetic", q.Concept)
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.ExpectedAnswer)
		assert.NotEmpty(t, q.ID)
		assert.NotContains(t, q.Text, "{", "unfilled placeholder in question text")
	}
}

func TestGenerate_PrerequisiteChain(t *testing.T) {
	gen := seedGenerator(t, 2)
	test, err := gen.Generate("derivatives", 10, true)
	require.NoError(t, err)

	// Chain walk: derivatives -> {quadratic, trigonometry} -> linear -> basic.
	assert.Equal(t, []string{
		"derivatives",
		"quadratic_equations",
		"trigonometry",
		"linear_equations",
		"basic_arithmetic",
	}, test.ConceptsCovered)

	// Five covered concepts at 10 questions: two each.
	assert.Len(t, test.Questions, 10)
	perConcept := make(map[string]int)
	for _, q := range test.Questions {
		perConcept[q.Concept]++
	}
	for id, n := range perConcept {
		assert.GreaterOrEqual(t, n, 2, "concept %s got fewer than two questions", id)
	}
}

func TestGenerate_HeadAbsorbsRemainder(t *testing.T) {
	gen := seedGenerator(t, 3)
	test, err := gen.Generate("linear_equations", 7, true)
	require.NoError(t, err)

	// Two covered concepts: max(2, 7/2) = 3 each, head gets the extra one.
	perConcept := make(map[string]int)
	for _, q := range test.Questions {
		perConcept[q.Concept]++
	}
	assert.Equal(t, 4, perConcept["linear_equations"])
	assert.Equal(t, 3, perConcept["basic_arithmetic"])
}

func TestGenerate_UnknownConcept(t *testing.T) {
	gen := seedGenerator(t, 4)
	_, err := gen.Generate("underwater_basket_weaving", 5, false)
	require.Error(t, err)
}

func TestGenerate_Reproducible(t *testing.T) {
	a, err := seedGenerator(t, 42).Generate("geometry_basics", 6, false)
	require.NoError(t, err)
	b, err := seedGenerator(t, 42).Generate("geometry_basics", 6, false)
	require.NoError(t, err)

	require.Len(t, b.Questions, len(a.Questions))
	for i := range a.Questions {
		assert.Equal(t, a.Questions[i].Text, b.Questions[i].Text)
		assert.Equal(t, a.Questions[i].ExpectedAnswer, b.Questions[i].ExpectedAnswer)
	}
}

func TestGenerate_NonzeroLeadingCoefficient(t *testing.T) {
	// The linear/quadratic "a" range includes zero; answers divide by it.
	gen := seedGenerator(t, 5)
	for i := 0; i < 20; i++ {
		test, err := gen.Generate("quadratic_equations", 3, false)
		require.NoError(t, err)
		for _, q := range test.Questions {
			assert.NotContains(t, q.Text, "0x²", "zero leading coefficient generated")
		}
	}
}

func TestExpectedAnswer(t *testing.T) {
	tests := []struct {
		name    string
		concept string
		tmpl    string
		params  map[string]int
		op      string
		want    string
	}{
		{"addition", "basic_arithmetic", "Calculate {a} {op} {b}", map[string]int{"a": 2, "b": 3}, "+", "5"},
		{"division", "basic_arithmetic", "Calculate {a} {op} {b}", map[string]int{"a": 6, "b": 4}, "/", "1.50"},
		{"linear solve", "linear_equations", "Solve for x: {a}x + {b} = {c}", map[string]int{"a": 2, "b": 3, "c": 7}, "", "x = 2.00"},
		{"linear find", "linear_equations", "Find x: {a}x = {b}", map[string]int{"a": 4, "b": 10}, "", "x = 2.50"},
		{"quadratic no real roots", "quadratic_equations", "Find the roots of {a}x² + {b}x + {c} = 0", map[string]int{"a": 1, "b": 0, "c": 1}, "", "No real solutions"},
		{"quadratic double root", "quadratic_equations", "Find the roots of {a}x² + {b}x + {c} = 0", map[string]int{"a": 1, "b": -2, "c": 1}, "", "x = 1.00"},
		{"quadratic two roots", "quadratic_equations", "Find the roots of {a}x² + {b}x + {c} = 0", map[string]int{"a": 1, "b": -3, "c": 2}, "", "x = 2.00 or x = 1.00"},
		{"rectangle area", "geometry_basics", "Find the area of a rectangle with width {width} and height {height}", map[string]int{"width": 4, "height": 5}, "", "20"},
		{"square perimeter", "geometry_basics", "What is the perimeter of a square with side length {side}?", map[string]int{"side": 7}, "", "28"},
		{"sine", "trigonometry", "Find sin({angle}°) to 2 decimal places", map[string]int{"angle": 30}, "", "0.50"},
		{"power rule", "derivatives", "Find d/dx [{a}x^{n} + {b}x]", map[string]int{"a": 3, "n": 2, "b": 4}, "", "6x^1 + 4"},
		{"unknown concept", "mystery", "whatever", nil, "", "Solution process required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expectedAnswer(tt.concept, tt.tmpl, tt.params, tt.op)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFillTemplate(t *testing.T) {
	got, err := fillTemplate("Calculate {a} {op} {b}", map[string]int{"a": 2, "b": 3}, "*")
	require.NoError(t, err)
	assert.Equal(t, "Calculate 2 * 3", got)

	_, err = fillTemplate("Needs {missing}", map[string]int{"a": 1}, "")
	require.Error(t, err)
}
