// Package expr: package-level entry points for substitution, derivatives
// and numeric evaluation.
package expr

// Substitute returns e with every occurrence of the named symbol replaced
// by value. The result is canonical: replaced subtrees re-simplify, so
// Substitute(sin(x), "x", 0) yields 0.
//
// Errors:
//   - ErrNilExpr   — e or value is nil.
//   - ErrEmptyName — name is empty.
//
// Complexity: O(size of e).
func Substitute(e Expr, name string, value Expr) (Expr, error) {
	if e == nil || value == nil {
		return nil, ErrNilExpr
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	return e.subst(name, value), nil
}

// Derivative returns the partial derivative ∂e/∂name.
//
// Rules: linearity over sums, the product rule, the power rule (with the
// general u^v rule when the exponent is symbolic), the chain rule for the
// builtin functions, and primed opaque applications: d/dt a(t) = a'(t).
//
// Errors:
//   - ErrNilExpr           — e is nil.
//   - ErrEmptyName         — name is empty.
//   - ErrNonDifferentiable — e contains a node without a derivative rule.
//
// Complexity: O(size of e · factors per product).
func Derivative(e Expr, name string) (Expr, error) {
	if e == nil {
		return nil, ErrNilExpr
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	return e.diff(name)
}

// Evaluate computes the numeric value of e under env, which binds symbol
// names (and, for opaque applications, their rendered form such as "a(t)")
// to float64 values.
//
// Errors:
//   - ErrNilExpr         — e is nil.
//   - ErrUnboundSymbol   — a free symbol has no binding.
//   - ErrUnknownFunction — an opaque application has no binding.
//   - ErrDomain          — the computation leaves the real domain.
//
// Complexity: O(size of e).
func Evaluate(e Expr, env map[string]float64) (float64, error) {
	if e == nil {
		return 0, ErrNilExpr
	}
	return e.eval(env)
}
