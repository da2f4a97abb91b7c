package expr_test

import (
	"testing"

	"github.com/katalvlaran/spacetime/expr"
	"github.com/stretchr/testify/assert"
)

// TestLaTeX_GreekCoordinates verifies coordinate names map onto LaTeX macros.
func TestLaTeX_GreekCoordinates(t *testing.T) {
	assert.Equal(t, "\\chi", expr.Sym("chi").LaTeX())
	assert.Equal(t, "\\theta", expr.Sym("theta").LaTeX())
	assert.Equal(t, "\\phi", expr.Sym("phi").LaTeX())
	assert.Equal(t, "t", expr.Sym("t").LaTeX(), "latin names render verbatim")
	assert.Equal(t, "d\\theta", expr.Sym("dtheta").LaTeX(), "differentials keep the d prefix")
}

// TestLaTeX_Fraction verifies rational and quotient rendering.
func TestLaTeX_Fraction(t *testing.T) {
	assert.Equal(t, "\\frac{1}{2}", expr.Frac(1, 2).LaTeX())

	q := expr.Div(expr.Sym("chi"), expr.Sym("R"))
	assert.Equal(t, "\\frac{\\chi}{R}", q.LaTeX())
}

// TestLaTeX_FunctionCalls verifies builtin and opaque application spelling.
func TestLaTeX_FunctionCalls(t *testing.T) {
	chi, r := expr.Sym("chi"), expr.Sym("R")

	s := expr.Sin(expr.Div(chi, r))
	assert.Equal(t, "\\sin\\left(\\frac{\\chi}{R}\\right)", s.LaTeX())

	a := expr.Apply("a", expr.Sym("t"))
	assert.Equal(t, "a\\left(t\\right)^{2}", expr.Pow(a, expr.Int(2)).LaTeX())
}

// TestString_QuotientRendering verifies reciprocal powers print as division.
func TestString_QuotientRendering(t *testing.T) {
	chi, r := expr.Sym("chi"), expr.Sym("R")

	assert.Equal(t, "chi/R", expr.Div(chi, r).String())
	assert.Equal(t, "1/R", expr.Pow(r, expr.Int(-1)).String())
}

// TestString_SumParenthesizedInProduct verifies sums gain parentheses
// inside products and powers.
func TestString_SumParenthesizedInProduct(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	sum := expr.Add(x, y)

	assert.Equal(t, "-(x + y)", expr.Neg(sum).String())
	assert.Equal(t, "(x + y)^2", expr.Pow(sum, expr.Int(2)).String())
}

// TestString_Deterministic verifies rendering is stable across identical
// constructions.
func TestString_Deterministic(t *testing.T) {
	build := func() string {
		chi, r, th := expr.Sym("chi"), expr.Sym("R"), expr.Sym("theta")
		a := expr.Apply("a", expr.Sym("t"))
		g := expr.Mul(
			expr.Pow(a, expr.Int(2)),
			expr.Pow(expr.Mul(r, expr.Sin(expr.Div(chi, r))), expr.Int(2)),
			expr.Pow(expr.Sin(th), expr.Int(2)),
		)
		return g.String()
	}

	first := build()
	for i := 0; i < 16; i++ {
		assert.Equal(t, first, build(), "rendering must be deterministic")
	}
	assert.Equal(t, "R^2*a(t)^2*sin(chi/R)^2*sin(theta)^2", first)
}
