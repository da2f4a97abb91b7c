// Package expr: powers.
package expr

import (
	"fmt"
	"math"
	"math/big"
)

// Power is a canonical base^exponent node. Integer rational powers of
// rational bases fold to exact constants; powers of powers multiply their
// exponents; integer powers distribute over products.
type Power struct {
	base Expr
	exp  Expr
}

// Base returns the base expression.
func (p *Power) Base() Expr { return p.base }

// Exponent returns the exponent expression.
func (p *Power) Exponent() Expr { return p.exp }

// foldExpLimit bounds exact folding of rational^integer so pathological
// exponents do not allocate huge big.Rat values.
const foldExpLimit = 64

// Pow returns the canonical power base^exp.
//
// Simplification:
//   - x^0 → 1 (0^0 and 0^negative stay symbolic), x^1 → x, 1^x → 1;
//   - rational^integer folds exactly for |integer| ≤ 64;
//   - (x^a)^b → x^(a·b);
//   - (x·y)^n → x^n·y^n for integer rational n.
//
// Panics on nil operands (programmer error).
func Pow(base, exp Expr) Expr {
	if base == nil || exp == nil {
		panic(panicNilPowerOperand)
	}

	if er, ok := exp.(*Rational); ok {
		if er.IsZero() {
			if br, ok2 := base.(*Rational); ok2 && br.IsZero() {
				return &Power{base: base, exp: exp} // 0^0 is indeterminate
			}
			return Int(1)
		}
		if er.IsOne() {
			return base
		}
	}

	if br, ok := base.(*Rational); ok {
		if br.IsZero() {
			if er, ok2 := exp.(*Rational); ok2 {
				if er.Sign() < 0 {
					return &Power{base: base, exp: exp} // 1/0 stays symbolic
				}
				return Int(0)
			}
			return &Power{base: base, exp: exp}
		}
		if br.IsOne() {
			return Int(1)
		}
		if er, ok2 := exp.(*Rational); ok2 && er.IsInteger() {
			if folded, ok3 := foldRationalPower(br, er); ok3 {
				return folded
			}
		}
	}

	if bp, ok := base.(*Power); ok {
		return Pow(bp.base, Mul(bp.exp, exp))
	}

	if bm, ok := base.(*Product); ok {
		if er, ok2 := exp.(*Rational); ok2 && er.IsInteger() {
			parts := make([]Expr, len(bm.factors))
			for i, f := range bm.factors {
				parts[i] = Pow(f, exp)
			}
			return Mul(parts...)
		}
	}

	return &Power{base: base, exp: exp}
}

// foldRationalPower computes br^er exactly for integer er with |er| ≤ foldExpLimit.
func foldRationalPower(br, er *Rational) (Expr, bool) {
	if !er.val.Num().IsInt64() {
		return nil, false
	}
	e := er.val.Num().Int64()
	mag := e
	if mag < 0 {
		mag = -mag
	}
	if mag > foldExpLimit {
		return nil, false
	}
	out := new(big.Rat).Set(ratOne)
	for i := int64(0); i < mag; i++ {
		out.Mul(out, br.val)
	}
	if e < 0 {
		out.Inv(out)
	}
	return &Rational{val: out}, true
}

func (p *Power) String() string {
	if r, ok := p.exp.(*Rational); ok && r.Sign() < 0 {
		return "1/" + powDisplay(p.base, &Rational{val: new(big.Rat).Neg(r.val)})
	}
	return powDisplay(p.base, p.exp)
}

// powDisplay prints base^exp with parentheses where precedence demands.
func powDisplay(base, exp Expr) string {
	bs := base.String()
	switch v := base.(type) {
	case *Sum, *Product, *Power:
		bs = "(" + bs + ")"
	case *Rational:
		if v.Sign() < 0 || !v.IsInteger() {
			bs = "(" + bs + ")"
		}
	}
	if r, ok := exp.(*Rational); ok && r.IsOne() {
		return bs
	}
	es := exp.String()
	switch v := exp.(type) {
	case *Sum, *Product, *Power:
		es = "(" + es + ")"
	case *Rational:
		if v.Sign() < 0 || !v.IsInteger() {
			es = "(" + es + ")"
		}
	}
	return bs + "^" + es
}

func (p *Power) LaTeX() string {
	if r, ok := p.exp.(*Rational); ok && r.Sign() < 0 {
		return "\\frac{1}{" + powDisplayLaTeX(p.base, &Rational{val: new(big.Rat).Neg(r.val)}) + "}"
	}
	return powDisplayLaTeX(p.base, p.exp)
}

func powDisplayLaTeX(base, exp Expr) string {
	bs := base.LaTeX()
	switch v := base.(type) {
	case *Sum, *Product, *Power:
		bs = "\\left(" + bs + "\\right)"
	case *Rational:
		if v.Sign() < 0 || !v.IsInteger() {
			bs = "\\left(" + bs + "\\right)"
		}
	}
	if r, ok := exp.(*Rational); ok && r.IsOne() {
		return bs
	}
	return bs + "^{" + exp.LaTeX() + "}"
}

func (p *Power) Equal(other Expr) bool {
	o, ok := other.(*Power)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (p *Power) subst(name string, value Expr) Expr {
	return Pow(p.base.subst(name, value), p.exp.subst(name, value))
}

func (p *Power) diff(name string) (Expr, error) {
	du, err := p.base.diff(name)
	if err != nil {
		return nil, err
	}

	// Constant exponent: d(u^c) = c·u^(c-1)·u'.
	if _, ok := p.exp.(*Rational); ok {
		if r, ok2 := du.(*Rational); ok2 && r.IsZero() {
			return Int(0), nil
		}
		return Mul(p.exp, Pow(p.base, Sub(p.exp, Int(1))), du), nil
	}

	dv, err := p.exp.diff(name)
	if err != nil {
		return nil, err
	}
	// General rule: d(u^v) = u^v · (v'·ln u + v·u'/u).
	inner := Add(
		Mul(dv, Ln(p.base)),
		Mul(p.exp, du, Pow(p.base, Int(-1))),
	)
	return Mul(Pow(p.base, p.exp), inner), nil
}

func (p *Power) eval(env map[string]float64) (float64, error) {
	b, err := p.base.eval(env)
	if err != nil {
		return 0, err
	}
	e, err := p.exp.eval(env)
	if err != nil {
		return 0, err
	}
	out := math.Pow(b, e)
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, fmt.Errorf("%w: %v^%v", ErrDomain, b, e)
	}
	return out, nil
}
