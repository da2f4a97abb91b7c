// Package expr: sentinel error set.
// All user-triggered failures return these sentinels; callers match them
// with errors.Is. Wrapping with fmt.Errorf("ctx: %w", ErrX) is allowed at
// the outer boundary and keeps errors.Is working.
package expr

import "errors"

var (
	// ErrNilExpr indicates that a nil Expr was passed to a package-level
	// operation (Substitute, Derivative, Evaluate).
	ErrNilExpr = errors.New("expr: nil expression")

	// ErrEmptyName indicates an empty symbol or function name was supplied
	// to a package-level operation.
	ErrEmptyName = errors.New("expr: empty name")

	// ErrUnboundSymbol is returned by Evaluate when a free symbol has no
	// binding in the environment.
	ErrUnboundSymbol = errors.New("expr: unbound symbol")

	// ErrUnknownFunction is returned by Evaluate when an opaque function
	// application (e.g. a(t)) has no numeric binding.
	ErrUnknownFunction = errors.New("expr: unknown function")

	// ErrDomain is returned by Evaluate when a numeric operation leaves the
	// real domain (ln of a non-positive value, division by zero, non-finite
	// power results).
	ErrDomain = errors.New("expr: evaluation outside real domain")

	// ErrNonDifferentiable is returned by Derivative for nodes with no
	// derivative rule (currently abs).
	ErrNonDifferentiable = errors.New("expr: expression is not differentiable")
)

// Internal panic messages (no magic strings).
const (
	panicNilOperand       = "expr: nil operand passed to constructor"
	panicZeroDenominator  = "expr: zero denominator"
	panicNonFinite        = "expr: non-finite float"
	panicEmptySymbolName  = "expr: Sym: empty symbol name"
	panicEmptyFnName      = "expr: Apply: empty function name"
	panicNilFunctionArg   = "expr: function argument is nil"
	panicNilPowerOperand  = "expr: Pow: nil base or exponent"
)
