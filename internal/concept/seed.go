package concept

// Seed returns the built-in curriculum: seven concepts spanning arithmetic
// through integral calculus. The slice order fixes the HMM state order, so
// entries must not be reordered.
func Seed() []Concept {
	return []Concept{
		{
			ID: "basic_arithmetic",
			Keywords: []string{"add", "subtract", "multiply", "divide", "sum", "difference", "product",
				"quotient", "calculate", "compute", "evaluate", "operation", "+", "-", "*", "/"},
			Prerequisites: nil,
			Difficulty:    0.2,
			Probability:   0.4,
			TemplateParams: map[string]ParamRange{
				"a": {1, 100},
				"b": {1, 100},
			},
		},
		{
			ID: "linear_equations",
			Keywords: []string{"linear", "x", "variable", "constant",
				"unknown", "expression", "linear equation"},
			Prerequisites: []string{"basic_arithmetic"},
			Difficulty:    0.4,
			Probability:   0.3,
			TemplateParams: map[string]ParamRange{
				"a": {-10, 10},
				"b": {-20, 20},
				"c": {-50, 50},
			},
		},
		{
			ID: "quadratic_equations",
			Keywords: []string{"quadratic", "second degree", "square", "squared",
				"roots", "^2", "polynomial", "x^2"},
			Prerequisites: []string{"linear_equations"},
			Difficulty:    0.6,
			Probability:   0.4,
			TemplateParams: map[string]ParamRange{
				"a": {-5, 5},
				"b": {-10, 10},
				"c": {-15, 15},
			},
		},
		{
			ID: "geometry_basics",
			Keywords: []string{"angle", "triangle", "circle", "rectangle", "perimeter", "area", "circumference",
				"radius", "height", "width", "length", "square", "measure", "compute"},
			Prerequisites: []string{"basic_arithmetic"},
			Difficulty:    0.4,
			Probability:   0.4,
			TemplateParams: map[string]ParamRange{
				"side":   {1, 20},
				"radius": {1, 15},
				"height": {1, 20},
				"width":  {1, 20},
			},
		},
		{
			ID: "trigonometry",
			Keywords: []string{"sin", "cos", "tan", "angle", "triangle", "hypotenuse", "opposite", "adjacent", "sine",
				"cosine", "tangent", "cotangent", "cosecant", "secant", "cot", "csc", "sec", "right triangle",
				"calculate", "evaluate"},
			Prerequisites: []string{"geometry_basics"},
			Difficulty:    0.7,
			Probability:   0.875,
			TemplateParams: map[string]ParamRange{
				"angle": {0, 360},
				"side":  {1, 20},
			},
		},
		{
			ID: "derivatives",
			Keywords: []string{"derivative", "derivate", "rate of change", "differentiate", "slope", "tangent line", "function",
				"d/dx", "dx", "dy/dx", "calculus", "instantaneous rate", "evaluate"},
			Prerequisites: []string{"quadratic_equations", "trigonometry"},
			Difficulty:    0.8,
			Probability:   0.9,
			TemplateParams: map[string]ParamRange{
				"a": {-5, 5},
				"b": {-10, 10},
				"n": {2, 4},
			},
		},
		{
			ID: "integrals",
			Keywords: []string{"integral", "antiderivative", "integrate", "area under curve", "definite integral",
				"indefinite integral", "integration", "evaluate", "calculus", "dx", "∫", "limits"},
			Prerequisites: []string{"derivatives"},
			Difficulty:    0.9,
			Probability:   0.9,
			TemplateParams: map[string]ParamRange{
				"a": {-5, 5},
				"b": {-10, 10},
				"n": {2, 4},
			},
		},
	}
}
