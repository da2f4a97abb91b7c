package expr_test

import (
	"testing"

	"github.com/katalvlaran/spacetime/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdd_LikeTermMerging verifies that repeated symbols merge their exact
// rational coefficients.
func TestAdd_LikeTermMerging(t *testing.T) {
	x := expr.Sym("x")

	sum := expr.Add(x, x, x, expr.Int(2))
	assert.Equal(t, "3*x + 2", sum.String(), "x+x+x+2 must merge to 3*x + 2")
}

// TestAdd_CancellationYieldsZero verifies x + (-x) collapses to the
// constant 0.
func TestAdd_CancellationYieldsZero(t *testing.T) {
	x := expr.Sym("x")

	sum := expr.Add(x, expr.Neg(x))
	assert.True(t, sum.Equal(expr.Int(0)), "x - x must cancel to 0")
}

// TestAdd_RationalFolding verifies exact fraction arithmetic in sums.
func TestAdd_RationalFolding(t *testing.T) {
	sum := expr.Add(expr.Frac(1, 2), expr.Frac(5, 6))
	assert.Equal(t, "4/3", sum.String(), "1/2 + 5/6 must fold to 4/3")
}

// TestMul_LikeBaseMerging verifies R·R⁻¹ cancels exactly, the identity the
// flat-topology radial profile depends on.
func TestMul_LikeBaseMerging(t *testing.T) {
	chi, r := expr.Sym("chi"), expr.Sym("R")

	prod := expr.Mul(r, expr.Div(chi, r))
	assert.True(t, prod.Equal(chi), "R·(chi/R) must collapse to chi, got %s", prod)
}

// TestMul_ZeroAnnihilates verifies multiplication by zero.
func TestMul_ZeroAnnihilates(t *testing.T) {
	x := expr.Sym("x")

	prod := expr.Mul(x, expr.Int(0), expr.Sym("y"))
	assert.True(t, prod.Equal(expr.Int(0)), "any product with 0 must be 0")
}

// TestMul_DeterministicOrdering verifies commuted products are canonical
// and therefore Equal.
func TestMul_DeterministicOrdering(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")

	assert.True(t, expr.Mul(x, y).Equal(expr.Mul(y, x)), "x·y and y·x must be the same canonical tree")
	assert.True(t, expr.Add(x, y).Equal(expr.Add(y, x)), "x+y and y+x must be the same canonical tree")
}

// TestPow_Identities verifies the power identities x^1, x^0 and 1^x.
func TestPow_Identities(t *testing.T) {
	x := expr.Sym("x")

	assert.True(t, expr.Pow(x, expr.Int(1)).Equal(x), "x^1 must be x")
	assert.True(t, expr.Pow(x, expr.Int(0)).Equal(expr.Int(1)), "x^0 must be 1")
	assert.True(t, expr.Pow(expr.Int(1), x).Equal(expr.Int(1)), "1^x must be 1")
}

// TestPow_RationalFolding verifies exact integer powers of rationals,
// including negative exponents.
func TestPow_RationalFolding(t *testing.T) {
	assert.Equal(t, "1024", expr.Pow(expr.Int(2), expr.Int(10)).String())
	assert.Equal(t, "1/8", expr.Pow(expr.Int(2), expr.Int(-3)).String())
	assert.Equal(t, "9/4", expr.Pow(expr.Frac(3, 2), expr.Int(2)).String())
}

// TestPow_HugeExponentStaysSymbolic verifies that integer exponents beyond
// the exact-folding bound stay symbolic, including exponents too large for
// int64 arithmetic.
func TestPow_HugeExponentStaysSymbolic(t *testing.T) {
	// 2^64 as an exact rational exponent, built without int64 overflow.
	huge := expr.Mul(expr.Int(1<<62), expr.Int(4))

	p := expr.Pow(expr.Int(2), huge)
	require.IsType(t, &expr.Power{}, p)
	assert.Equal(t, "2^18446744073709551616", p.String())

	// The bound itself still folds; one past it stays symbolic.
	assert.IsType(t, &expr.Rational{}, expr.Pow(expr.Int(2), expr.Int(64)))
	assert.IsType(t, &expr.Power{}, expr.Pow(expr.Int(2), expr.Int(65)))
}

// TestPow_DistributesOverProducts verifies (R·sin(chi/R))² distributes into
// R²·sin(chi/R)², the closed-topology angular factor.
func TestPow_DistributesOverProducts(t *testing.T) {
	chi, r := expr.Sym("chi"), expr.Sym("R")

	sq := expr.Pow(expr.Mul(r, expr.Sin(expr.Div(chi, r))), expr.Int(2))
	assert.Equal(t, "R^2*sin(chi/R)^2", sq.String())
}

// TestPow_NestedExponentsMultiply verifies (x^2)^3 = x^6.
func TestPow_NestedExponentsMultiply(t *testing.T) {
	x := expr.Sym("x")

	p := expr.Pow(expr.Pow(x, expr.Int(2)), expr.Int(3))
	assert.True(t, p.Equal(expr.Pow(x, expr.Int(6))), "(x^2)^3 must be x^6")
}

// TestCall_SpecialPoints verifies exact folding at zero arguments.
func TestCall_SpecialPoints(t *testing.T) {
	zero := expr.Int(0)

	assert.True(t, expr.Sin(zero).Equal(expr.Int(0)), "sin(0)=0")
	assert.True(t, expr.Cos(zero).Equal(expr.Int(1)), "cos(0)=1")
	assert.True(t, expr.Sinh(zero).Equal(expr.Int(0)), "sinh(0)=0")
	assert.True(t, expr.Cosh(zero).Equal(expr.Int(1)), "cosh(0)=1")
	assert.True(t, expr.Exp(zero).Equal(expr.Int(1)), "exp(0)=1")
	assert.True(t, expr.Ln(expr.Int(1)).Equal(expr.Int(0)), "ln(1)=0")
}

// TestCall_ExpLnInverse verifies exp/ln cancel each other.
func TestCall_ExpLnInverse(t *testing.T) {
	x := expr.Sym("x")

	assert.True(t, expr.Ln(expr.Exp(x)).Equal(x), "ln(exp(x))=x")
	assert.True(t, expr.Exp(expr.Ln(x)).Equal(x), "exp(ln(x))=x")
}

// TestCall_OpaqueApplication verifies a(t) stays symbolic and prints plainly.
func TestCall_OpaqueApplication(t *testing.T) {
	a := expr.Apply("a", expr.Sym("t"))

	require.IsType(t, &expr.Call{}, a)
	assert.Equal(t, "a(t)", a.String())
	assert.Equal(t, "a(t)^2", expr.Pow(a, expr.Int(2)).String())
}

// TestSub_SignRendering verifies subtraction prints with a minus, not a
// -1 coefficient.
func TestSub_SignRendering(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")

	assert.Equal(t, "x - y", expr.Sub(x, y).String())
	assert.Equal(t, "-x", expr.Neg(x).String())
}

// TestFrac_ZeroDenominatorPanics verifies the programmer-error contract.
func TestFrac_ZeroDenominatorPanics(t *testing.T) {
	assert.Panics(t, func() { expr.Frac(1, 0) }, "zero denominator must panic")
}

// TestSimplification_Idempotent verifies rebuilding a canonical tree
// through the constructors reproduces the same tree.
func TestSimplification_Idempotent(t *testing.T) {
	chi, r := expr.Sym("chi"), expr.Sym("R")
	e := expr.Pow(expr.Mul(r, expr.Sinh(expr.Div(chi, r))), expr.Int(2))

	rebuilt := expr.Mul(e, expr.Int(1))
	assert.True(t, e.Equal(rebuilt), "multiplying by 1 must not change a canonical tree")
	assert.Equal(t, e.String(), rebuilt.String())
}
