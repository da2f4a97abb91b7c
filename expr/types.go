// Package expr: the Expr interface and shared tree helpers.
package expr

import "math/big"

// Expr is an immutable symbolic expression node.
//
// Implementations: *Rational, *Symbol, *Call, *Sum, *Product, *Power.
// Construct values exclusively through the package constructors (Int, Frac,
// Sym, Add, Mul, Pow, Sin, …); they guarantee canonical simplified form so
// that structurally equal algebra compares Equal.
type Expr interface {
	// String renders the expression as deterministic plain text.
	String() string

	// LaTeX renders the expression as a LaTeX fragment.
	LaTeX() string

	// Equal reports structural equality with another expression.
	// Canonical construction makes this a reliable semantic comparison
	// for expressions built through package constructors.
	Equal(other Expr) bool

	// subst rebuilds the tree with every occurrence of the named symbol
	// replaced by value. The result is canonical.
	subst(name string, value Expr) Expr

	// diff returns the partial derivative with respect to the named symbol.
	diff(name string) (Expr, error)

	// eval computes a numeric value under the given environment.
	eval(env map[string]float64) (float64, error)
}

var (
	ratOne    = big.NewRat(1, 1)
	ratNegOne = big.NewRat(-1, 1)
)

// splitCoefficient splits a canonical term into its leading rational
// coefficient and symbolic core. A pure constant yields (value, nil).
// Terms without an explicit coefficient yield (1, term).
func splitCoefficient(e Expr) (*big.Rat, Expr) {
	switch v := e.(type) {
	case *Rational:
		return new(big.Rat).Set(v.val), nil
	case *Product:
		if r, ok := v.factors[0].(*Rational); ok {
			rest := v.factors[1:]
			if len(rest) == 1 {
				return new(big.Rat).Set(r.val), rest[0]
			}
			return new(big.Rat).Set(r.val), &Product{factors: rest}
		}
		return new(big.Rat).Set(ratOne), e
	default:
		return new(big.Rat).Set(ratOne), e
	}
}

// mulRatCore rebuilds coeff·core canonically. core must be non-nil.
func mulRatCore(coeff *big.Rat, core Expr) Expr {
	if coeff.Cmp(ratOne) == 0 {
		return core
	}
	return Mul(&Rational{val: coeff}, core)
}

// checkOperands panics on nil constructor operands (programmer error).
func checkOperands(es []Expr) {
	for _, e := range es {
		if e == nil {
			panic(panicNilOperand)
		}
	}
}
