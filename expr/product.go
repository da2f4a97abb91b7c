// Package expr: n-ary products with like-base merging.
package expr

import (
	"math/big"
	"sort"
	"strings"
)

// Product is a canonical n-ary product. Like bases are merged into powers,
// rational factors are folded into a single leading coefficient, and the
// remaining factors are ordered by their deterministic sort key.
// A canonical Product always has at least two factors; a rational
// coefficient, when present and different from 1, is the first factor.
type Product struct {
	factors []Expr
}

// Factors returns the canonical factor list (shared, do not mutate).
func (p *Product) Factors() []Expr { return p.factors }

// Mul returns the canonical product of the given factors.
//
// Simplification:
//  1. flatten nested products;
//  2. fold rational constants into one coefficient (0 annihilates);
//  3. merge like bases: x·x² → x³, R·R⁻¹ → 1;
//  4. order factors deterministically, coefficient first.
//
// Panics on nil operands (programmer error).
func Mul(factors ...Expr) Expr {
	checkOperands(factors)
	return mulCanonical(factors)
}

// Div returns a/b, represented as a·b⁻¹.
func Div(a, b Expr) Expr { return Mul(a, Pow(b, Int(-1))) }

func mulCanonical(factors []Expr) Expr {
	flat := flattenProduct(factors)

	coeff := new(big.Rat).Set(ratOne)
	type group struct {
		base Expr
		exps []Expr
	}
	groups := make(map[string]*group, len(flat))
	keys := make([]string, 0, len(flat))
	addBase := func(base, exp Expr) {
		k := base.String()
		if g, ok := groups[k]; ok {
			g.exps = append(g.exps, exp)
			return
		}
		groups[k] = &group{base: base, exps: []Expr{exp}}
		keys = append(keys, k)
	}

	for _, f := range flat {
		switch v := f.(type) {
		case *Rational:
			coeff.Mul(coeff, v.val)
		case *Power:
			addBase(v.base, v.exp)
		default:
			addBase(f, Int(1))
		}
	}
	if coeff.Sign() == 0 {
		return Int(0)
	}

	rebuilt := make([]Expr, 0, len(keys))
	reflow := false
	for _, k := range keys {
		g := groups[k]
		f := Pow(g.base, Add(g.exps...))
		switch v := f.(type) {
		case *Rational:
			coeff.Mul(coeff, v.val)
		case *Product:
			// Exponent merging enabled a distribution; reflow once more.
			rebuilt = append(rebuilt, v)
			reflow = true
		default:
			rebuilt = append(rebuilt, f)
		}
	}
	if coeff.Sign() == 0 {
		return Int(0)
	}
	if reflow {
		if coeff.Cmp(ratOne) != 0 {
			rebuilt = append(rebuilt, &Rational{val: coeff})
		}
		return mulCanonical(rebuilt)
	}

	sort.Slice(rebuilt, func(i, j int) bool {
		return rebuilt[i].String() < rebuilt[j].String()
	})

	switch {
	case len(rebuilt) == 0:
		return &Rational{val: coeff}
	case coeff.Cmp(ratOne) == 0 && len(rebuilt) == 1:
		return rebuilt[0]
	case coeff.Cmp(ratOne) == 0:
		return &Product{factors: rebuilt}
	default:
		return &Product{factors: append([]Expr{&Rational{val: coeff}}, rebuilt...)}
	}
}

func flattenProduct(factors []Expr) []Expr {
	flat := make([]Expr, 0, len(factors))
	for _, f := range factors {
		if inner, ok := f.(*Product); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, f)
		}
	}
	return flat
}

func (p *Product) String() string { return p.render(false) }

// render prints the product, splitting reciprocal powers into a divisor and
// folding the leading coefficient. stripSign drops a negative coefficient's
// sign (used by Sum for "a - b" printing).
func (p *Product) render(stripSign bool) string {
	factors := p.factors
	prefix := ""
	if r, ok := factors[0].(*Rational); ok {
		v := new(big.Rat).Set(r.val)
		if stripSign {
			v.Abs(v)
		}
		factors = factors[1:]
		switch {
		case v.Cmp(ratNegOne) == 0:
			prefix = "-"
		case v.Cmp(ratOne) != 0:
			prefix = (&Rational{val: v}).String() + "*"
		}
	}

	var num, den []string
	for _, f := range factors {
		if pw, ok := f.(*Power); ok {
			if r, ok2 := pw.exp.(*Rational); ok2 && r.Sign() < 0 {
				den = append(den, powDisplay(pw.base, &Rational{val: new(big.Rat).Neg(r.val)}))
				continue
			}
		}
		num = append(num, factorDisplay(f))
	}

	s := strings.Join(num, "*")
	if len(num) == 0 {
		s = "1"
	}
	if len(den) > 0 {
		d := strings.Join(den, "*")
		if len(den) > 1 {
			d = "(" + d + ")"
		}
		s += "/" + d
	}
	return prefix + s
}

func (p *Product) LaTeX() string { return p.renderLaTeX(false) }

func (p *Product) renderLaTeX(stripSign bool) string {
	factors := p.factors
	prefix := ""
	if r, ok := factors[0].(*Rational); ok {
		v := new(big.Rat).Set(r.val)
		if stripSign {
			v.Abs(v)
		}
		factors = factors[1:]
		switch {
		case v.Cmp(ratNegOne) == 0:
			prefix = "-"
		case v.Cmp(ratOne) != 0:
			prefix = (&Rational{val: v}).LaTeX() + " "
		}
	}

	var num, den []string
	for _, f := range factors {
		if pw, ok := f.(*Power); ok {
			if r, ok2 := pw.exp.(*Rational); ok2 && r.Sign() < 0 {
				den = append(den, powDisplayLaTeX(pw.base, &Rational{val: new(big.Rat).Neg(r.val)}))
				continue
			}
		}
		num = append(num, factorDisplayLaTeX(f))
	}

	s := strings.Join(num, " ")
	if len(num) == 0 {
		s = "1"
	}
	if len(den) > 0 {
		return prefix + "\\frac{" + s + "}{" + strings.Join(den, " ") + "}"
	}
	return prefix + s
}

// factorDisplay parenthesizes sums inside a product.
func factorDisplay(f Expr) string {
	if _, ok := f.(*Sum); ok {
		return "(" + f.String() + ")"
	}
	return f.String()
}

func factorDisplayLaTeX(f Expr) string {
	if _, ok := f.(*Sum); ok {
		return "\\left(" + f.LaTeX() + "\\right)"
	}
	return f.LaTeX()
}

func (p *Product) Equal(other Expr) bool {
	o, ok := other.(*Product)
	if !ok || len(p.factors) != len(o.factors) {
		return false
	}
	for i := range p.factors {
		if !p.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (p *Product) subst(name string, value Expr) Expr {
	out := make([]Expr, len(p.factors))
	for i, f := range p.factors {
		out[i] = f.subst(name, value)
	}
	return Mul(out...)
}

func (p *Product) diff(name string) (Expr, error) {
	// Product rule over all factors.
	terms := make([]Expr, 0, len(p.factors))
	for i, fi := range p.factors {
		dfi, err := fi.diff(name)
		if err != nil {
			return nil, err
		}
		if r, ok := dfi.(*Rational); ok && r.IsZero() {
			continue
		}
		rest := make([]Expr, 0, len(p.factors))
		rest = append(rest, dfi)
		for j, fj := range p.factors {
			if j != i {
				rest = append(rest, fj)
			}
		}
		terms = append(terms, Mul(rest...))
	}
	return Add(terms...), nil
}

func (p *Product) eval(env map[string]float64) (float64, error) {
	total := 1.0
	for _, f := range p.factors {
		v, err := f.eval(env)
		if err != nil {
			return 0, err
		}
		total *= v
	}
	return total, nil
}
