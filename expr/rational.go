// Package expr: exact rational constants.
package expr

import (
	"math"
	"math/big"
)

// Rational is an exact rational constant backed by math/big.Rat.
// The zero value is not usable; construct via Int, Frac or Float.
type Rational struct {
	val *big.Rat
}

// Int returns the integer constant n.
func Int(n int64) *Rational {
	return &Rational{val: new(big.Rat).SetInt64(n)}
}

// Frac returns the exact fraction p/q.
// Panics when q == 0 (programmer error).
func Frac(p, q int64) *Rational {
	if q == 0 {
		panic(panicZeroDenominator)
	}
	return &Rational{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// Float returns the exact rational value of f.
// Panics when f is NaN or ±Inf (programmer error).
func Float(f float64) *Rational {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(panicNonFinite)
	}
	return &Rational{val: new(big.Rat).SetFloat64(f)}
}

// IsZero reports whether the constant equals 0.
func (r *Rational) IsZero() bool { return r.val.Sign() == 0 }

// IsOne reports whether the constant equals 1.
func (r *Rational) IsOne() bool { return r.val.Cmp(ratOne) == 0 }

// Sign returns -1, 0 or +1.
func (r *Rational) Sign() int { return r.val.Sign() }

// IsInteger reports whether the constant is a whole number.
func (r *Rational) IsInteger() bool { return r.val.IsInt() }

// Float64 returns the nearest float64 value.
func (r *Rational) Float64() float64 {
	f, _ := r.val.Float64()
	return f
}

// Rat returns a defensive copy of the underlying big.Rat.
func (r *Rational) Rat() *big.Rat { return new(big.Rat).Set(r.val) }

func (r *Rational) String() string {
	if r.val.IsInt() {
		return r.val.Num().String()
	}
	return r.val.RatString()
}

func (r *Rational) LaTeX() string {
	if r.val.IsInt() {
		return r.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(r.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return sign + "\\frac{" + v.Num().String() + "}{" + v.Denom().String() + "}"
}

func (r *Rational) Equal(other Expr) bool {
	o, ok := other.(*Rational)
	return ok && r.val.Cmp(o.val) == 0
}

func (r *Rational) subst(string, Expr) Expr { return r }

func (r *Rational) diff(string) (Expr, error) { return Int(0), nil }

func (r *Rational) eval(map[string]float64) (float64, error) { return r.Float64(), nil }
