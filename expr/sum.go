// Package expr: n-ary sums with like-term merging.
package expr

import (
	"math/big"
	"sort"
	"strings"
)

// Sum is a canonical n-ary sum. Terms are stored with merged rational
// coefficients, ordered by their deterministic sort key, constant last.
// A canonical Sum always has at least two terms.
type Sum struct {
	terms []Expr
}

// Terms returns the canonical term list (shared, do not mutate).
func (s *Sum) Terms() []Expr { return s.terms }

// Add returns the canonical sum of the given terms.
//
// Simplification:
//  1. flatten nested sums;
//  2. fold rational constants into a single accumulator;
//  3. merge like terms by symbolic core, summing exact coefficients;
//  4. drop zero terms; order remaining terms deterministically.
//
// Panics on nil operands (programmer error).
func Add(terms ...Expr) Expr {
	checkOperands(terms)
	flat := flattenSum(terms)

	acc := new(big.Rat)
	type group struct {
		coeff *big.Rat
		core  Expr
	}
	groups := make(map[string]*group, len(flat))
	for _, t := range flat {
		c, core := splitCoefficient(t)
		if core == nil {
			acc.Add(acc, c)
			continue
		}
		k := core.String()
		if g, ok := groups[k]; ok {
			g.coeff.Add(g.coeff, c)
		} else {
			groups[k] = &group{coeff: c, core: core}
		}
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Expr, 0, len(keys)+1)
	for _, k := range keys {
		g := groups[k]
		if g.coeff.Sign() == 0 {
			continue
		}
		out = append(out, mulRatCore(g.coeff, g.core))
	}
	if acc.Sign() != 0 {
		out = append(out, &Rational{val: acc})
	}

	switch len(out) {
	case 0:
		return Int(0)
	case 1:
		return out[0]
	default:
		return &Sum{terms: out}
	}
}

// Sub returns a - b.
func Sub(a, b Expr) Expr { return Add(a, Neg(b)) }

// Neg returns -e.
func Neg(e Expr) Expr { return Mul(Int(-1), e) }

func flattenSum(terms []Expr) []Expr {
	flat := make([]Expr, 0, len(terms))
	for _, t := range terms {
		if inner, ok := t.(*Sum); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, t)
		}
	}
	return flat
}

func (s *Sum) String() string {
	var b strings.Builder
	for i, t := range s.terms {
		neg, body := renderTerm(t)
		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		b.WriteString(body)
	}
	return b.String()
}

func (s *Sum) LaTeX() string {
	var b strings.Builder
	for i, t := range s.terms {
		neg, body := renderTermLaTeX(t)
		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		b.WriteString(body)
	}
	return b.String()
}

// renderTerm splits a term into its sign and unsigned plain-text body,
// so sums print "a - b" instead of "a + -1*b".
func renderTerm(t Expr) (neg bool, body string) {
	switch v := t.(type) {
	case *Rational:
		if v.Sign() < 0 {
			return true, (&Rational{val: new(big.Rat).Abs(v.val)}).String()
		}
	case *Product:
		if r, ok := v.factors[0].(*Rational); ok && r.Sign() < 0 {
			return true, v.render(true)
		}
	}
	return false, t.String()
}

func renderTermLaTeX(t Expr) (neg bool, body string) {
	switch v := t.(type) {
	case *Rational:
		if v.Sign() < 0 {
			return true, (&Rational{val: new(big.Rat).Abs(v.val)}).LaTeX()
		}
	case *Product:
		if r, ok := v.factors[0].(*Rational); ok && r.Sign() < 0 {
			return true, v.renderLaTeX(true)
		}
	}
	return false, t.LaTeX()
}

func (s *Sum) Equal(other Expr) bool {
	o, ok := other.(*Sum)
	if !ok || len(s.terms) != len(o.terms) {
		return false
	}
	for i := range s.terms {
		if !s.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (s *Sum) subst(name string, value Expr) Expr {
	out := make([]Expr, len(s.terms))
	for i, t := range s.terms {
		out[i] = t.subst(name, value)
	}
	return Add(out...)
}

func (s *Sum) diff(name string) (Expr, error) {
	out := make([]Expr, len(s.terms))
	for i, t := range s.terms {
		d, err := t.diff(name)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return Add(out...), nil
}

func (s *Sum) eval(env map[string]float64) (float64, error) {
	total := 0.0
	for _, t := range s.terms {
		v, err := t.eval(env)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}
