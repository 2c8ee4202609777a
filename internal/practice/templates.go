package practice

import (
	"fmt"
	"regexp"
	"strconv"
)

// templates maps concept ids to their question templates. Placeholders use
// {name} syntax and are filled from the concept's template parameter ranges.
var templates = map[string][]string{
	"basic_arithmetic": {
		"Calculate {a} {op} {b}",
		"What is the result of {a} {op} {b}?",
		"Evaluate the expression: {a} {op} {b}",
	},
	"linear_equations": {
		"Solve for x: {a}x + {b} = {c}",
		"Find x: {a}x = {b}",
		"What value of x satisfies {a}x + {b} = {c}?",
	},
	"quadratic_equations": {
		"Solve the quadratic equation: {a}x² + {b}x + {c} = 0",
		"Find the roots of {a}x² + {b}x + {c} = 0",
		"Determine the values of x where {a}x² + {b}x + {c} = 0",
	},
	"geometry_basics": {
		"Find the area of a rectangle with width {width} and height {height}",
		"Calculate the circumference of a circle with radius {radius}",
		"What is the perimeter of a square with side length {side}?",
	},
	"trigonometry": {
		"Find sin({angle}°) to 2 decimal places",
		"Calculate cos({angle}°) to 2 decimal places",
		"Calculate tan({angle}°) to 2 decimal places",
	},
	"derivatives": {
		"Find d/dx [{a}x^{n} + {b}x]",
		"Calculate the derivative of {a}x^{n} + {b}x",
		"What is the slope of the tangent line to f(x) = {a}x^{n} at x = {b}?",
	},
	"integrals": {
		"Evaluate ∫({a}x^{n} + {b})dx",
		"Calculate the definite integral of {a}x^{n} from 0 to {b}",
		"Find ∫[{a}x^{n} - {b}x]dx",
	},
}

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// fillTemplate substitutes every {name} placeholder with its parameter value.
// Returns an error if the template references a parameter that was not
// generated, so the caller can skip the question instead of rendering a hole.
func fillTemplate(tmpl string, params map[string]int, op string) (string, error) {
	var missing string
	out := placeholderPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := m[1 : len(m)-1]
		if name == "op" {
			if op == "" {
				missing = name
			}
			return op
		}
		v, ok := params[name]
		if !ok {
			missing = name
			return m
		}
		return strconv.Itoa(v)
	})
	if missing != "" {
		return "", fmt.Errorf("template %q: missing parameter %q", tmpl, missing)
	}
	return out, nil
}
