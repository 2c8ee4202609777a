package practice

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// expectedAnswer computes the canonical answer for a filled template.
// Concepts without a closed form fall back to a generic marker.
func expectedAnswer(conceptID, tmpl string, params map[string]int, op string) string {
	switch conceptID {
	case "basic_arithmetic":
		a, b := params["a"], params["b"]
		switch op {
		case "+":
			return strconv.Itoa(a + b)
		case "-":
			return strconv.Itoa(a - b)
		case "*":
			return strconv.Itoa(a * b)
		case "/":
			return fmt.Sprintf("%.2f", float64(a)/float64(b))
		}

	case "linear_equations":
		a := float64(params["a"])
		b := float64(params["b"])
		c := float64(params["c"])
		if strings.Contains(tmpl, "Find") {
			// ax = b
			return fmt.Sprintf("x = %.2f", b/a)
		}
		// ax + b = c
		return fmt.Sprintf("x = %.2f", (c-b)/a)

	case "quadratic_equations":
		a := float64(params["a"])
		b := float64(params["b"])
		c := float64(params["c"])
		disc := b*b - 4*a*c
		switch {
		case disc < 0:
			return "No real solutions"
		case disc == 0:
			return fmt.Sprintf("x = %.2f", -b/(2*a))
		default:
			x1 := (-b + math.Sqrt(disc)) / (2 * a)
			x2 := (-b - math.Sqrt(disc)) / (2 * a)
			return fmt.Sprintf("x = %.2f or x = %.2f", x1, x2)
		}

	case "geometry_basics":
		if strings.Contains(tmpl, "rectangle") {
			return strconv.Itoa(params["width"] * params["height"])
		}
		if strings.Contains(tmpl, "circle") {
			return fmt.Sprintf("%.2f", 2*math.Pi*float64(params["radius"]))
		}
		if strings.Contains(tmpl, "square") {
			return strconv.Itoa(4 * params["side"])
		}

	case "trigonometry":
		rad := float64(params["angle"]) * math.Pi / 180
		if strings.Contains(tmpl, "sin") {
			return fmt.Sprintf("%.2f", math.Sin(rad))
		}
		if strings.Contains(tmpl, "cos") {
			return fmt.Sprintf("%.2f", math.Cos(rad))
		}
		if strings.Contains(tmpl, "tan") {
			return fmt.Sprintf("%.2f", math.Tan(rad))
		}

	case "derivatives":
		a, b, n := params["a"], params["b"], params["n"]
		if strings.Contains(tmpl, "slope") {
			// f(x) = ax^n, slope at x = b
			return fmt.Sprintf("%.2f", float64(a*n)*math.Pow(float64(b), float64(n-1)))
		}
		// d/dx [ax^n + bx] = n*a*x^(n-1) + b
		return fmt.Sprintf("%dx^%d + %d", a*n, n-1, b)

	case "integrals":
		a, b, n := params["a"], params["b"], params["n"]
		if strings.Contains(tmpl, "definite") {
			// ∫0..b ax^n dx = a*b^(n+1)/(n+1)
			return fmt.Sprintf("%.2f", float64(a)*math.Pow(float64(b), float64(n+1))/float64(n+1))
		}
		if strings.Contains(tmpl, "- {b}x") || strings.Contains(tmpl, "]dx") {
			// ∫ ax^n - bx dx
			return fmt.Sprintf("(%.2fx^%d - %.2fx^2/2) + C", float64(a)/float64(n+1), n+1, float64(b))
		}
		// ∫ ax^n + b dx
		return fmt.Sprintf("(%.2fx^%d + %dx) + C", float64(a)/float64(n+1), n+1, b)
	}

	return "Solution process required"
}
