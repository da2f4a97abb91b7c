// Package expr: named unary function applications.
package expr

import (
	"fmt"
	"math"
	"math/big"
)

// Call is a named unary function application: sin(x), cosh(χ/R), a(t).
// Names with a builtin rule (sin, cos, tan, sinh, cosh, tanh, exp, ln, abs)
// simplify, differentiate and evaluate; any other name is treated as an
// opaque function symbol such as the scale factor a(t).
type Call struct {
	fn  string
	arg Expr
}

// Fn returns the function name.
func (c *Call) Fn() string { return c.fn }

// Arg returns the function argument.
func (c *Call) Arg() Expr { return c.arg }

// Trigonometric, hyperbolic and exponential constructors.
// All auto-simplify at known special points.
func Sin(arg Expr) Expr  { return newCall("sin", arg) }
func Cos(arg Expr) Expr  { return newCall("cos", arg) }
func Tan(arg Expr) Expr  { return newCall("tan", arg) }
func Sinh(arg Expr) Expr { return newCall("sinh", arg) }
func Cosh(arg Expr) Expr { return newCall("cosh", arg) }
func Tanh(arg Expr) Expr { return newCall("tanh", arg) }
func Exp(arg Expr) Expr  { return newCall("exp", arg) }
func Ln(arg Expr) Expr   { return newCall("ln", arg) }
func Abs(arg Expr) Expr  { return newCall("abs", arg) }

// Apply builds an opaque function application fn(arg), e.g. Apply("a", t)
// for the cosmological scale factor a(t).
// Panics on an empty function name or nil argument (programmer error).
func Apply(fn string, arg Expr) Expr {
	if fn == "" {
		panic(panicEmptyFnName)
	}
	return newCall(fn, arg)
}

func newCall(fn string, arg Expr) Expr {
	if arg == nil {
		panic(panicNilFunctionArg)
	}
	if out, ok := foldCall(fn, arg); ok {
		return out
	}
	return &Call{fn: fn, arg: arg}
}

// foldCall applies exact special-point rules. Only identities that stay in
// exact rational arithmetic are folded; sin(1/2) and friends remain symbolic.
func foldCall(fn string, arg Expr) (Expr, bool) {
	if r, ok := arg.(*Rational); ok {
		switch fn {
		case "sin", "tan", "sinh", "tanh":
			if r.IsZero() {
				return Int(0), true
			}
		case "cos", "cosh", "exp":
			if r.IsZero() {
				return Int(1), true
			}
		case "ln":
			if r.IsOne() {
				return Int(0), true
			}
		case "abs":
			if r.Sign() >= 0 {
				return r, true
			}
			return &Rational{val: new(big.Rat).Abs(r.val)}, true
		}
	}
	if inner, ok := arg.(*Call); ok {
		if fn == "ln" && inner.fn == "exp" {
			return inner.arg, true
		}
		if fn == "exp" && inner.fn == "ln" {
			return inner.arg, true
		}
	}
	return nil, false
}

func (c *Call) String() string { return c.fn + "(" + c.arg.String() + ")" }

func (c *Call) LaTeX() string {
	switch c.fn {
	case "sin", "cos", "tan", "sinh", "cosh", "tanh", "exp", "ln":
		return "\\" + c.fn + "\\left(" + c.arg.LaTeX() + "\\right)"
	case "abs":
		return "\\left|" + c.arg.LaTeX() + "\\right|"
	}
	// Opaque applications like a(t) keep their plain shape.
	return c.fn + "\\left(" + c.arg.LaTeX() + "\\right)"
}

func (c *Call) Equal(other Expr) bool {
	o, ok := other.(*Call)
	return ok && c.fn == o.fn && c.arg.Equal(o.arg)
}

func (c *Call) subst(name string, value Expr) Expr {
	return newCall(c.fn, c.arg.subst(name, value))
}

func (c *Call) diff(name string) (Expr, error) {
	du, err := c.arg.diff(name)
	if err != nil {
		return nil, err
	}
	if r, ok := du.(*Rational); ok && r.IsZero() {
		return Int(0), nil
	}
	var outer Expr
	switch c.fn {
	case "sin":
		outer = Cos(c.arg)
	case "cos":
		outer = Neg(Sin(c.arg))
	case "tan":
		outer = Pow(Cos(c.arg), Int(-2))
	case "sinh":
		outer = Cosh(c.arg)
	case "cosh":
		outer = Sinh(c.arg)
	case "tanh":
		outer = Pow(Cosh(c.arg), Int(-2))
	case "exp":
		outer = Exp(c.arg)
	case "ln":
		outer = Pow(c.arg, Int(-1))
	case "abs":
		return nil, fmt.Errorf("%w: abs", ErrNonDifferentiable)
	default:
		// Opaque application: d/dx f(u) = f'(u)·u'.
		outer = &Call{fn: c.fn + "'", arg: c.arg}
	}
	return Mul(outer, du), nil
}

func (c *Call) eval(env map[string]float64) (float64, error) {
	// Opaque applications may be bound by their rendered form, e.g.
	// env["a(t)"] = 2.5.
	if _, known := callEvalTable[c.fn]; !known {
		if v, ok := env[c.String()]; ok {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %s", ErrUnknownFunction, c.fn)
	}
	u, err := c.arg.eval(env)
	if err != nil {
		return 0, err
	}
	if c.fn == "ln" && u <= 0 {
		return 0, fmt.Errorf("%w: ln(%v)", ErrDomain, u)
	}
	return callEvalTable[c.fn](u), nil
}

var callEvalTable = map[string]func(float64) float64{
	"sin": math.Sin, "cos": math.Cos, "tan": math.Tan,
	"sinh": math.Sinh, "cosh": math.Cosh, "tanh": math.Tanh,
	"exp": math.Exp, "ln": math.Log, "abs": math.Abs,
}
