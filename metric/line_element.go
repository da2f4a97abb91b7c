// SPDX-License-Identifier: MIT

// Package metric: the ds² expansion.
package metric

import "github.com/katalvlaran/spacetime/expr"

// DifferentialPrefix is prepended to coordinate names to form the
// differential symbols of the line element, e.g. chi → dchi.
const DifferentialPrefix = "d"

// LineElement expands the tensor into its line element
//
//	ds² = Σ g_{μν} dx^μ dx^ν
//
// as a single expression over differential symbols named
// DifferentialPrefix + coordinate. Zero components are skipped; symmetric
// off-diagonal pairs contribute one term with coefficient 2.
func (t *Tensor) LineElement() expr.Expr {
	zero := expr.Int(0)
	terms := make([]expr.Expr, 0, len(t.coords))
	for i, ci := range t.coords {
		di := expr.Sym(DifferentialPrefix + ci)
		if g := t.comps[i][i]; !g.Equal(zero) {
			terms = append(terms, expr.Mul(g, expr.Pow(di, expr.Int(2))))
		}
		for j := i + 1; j < len(t.coords); j++ {
			if g := t.comps[i][j]; !g.Equal(zero) {
				dj := expr.Sym(DifferentialPrefix + t.coords[j])
				terms = append(terms, expr.Mul(expr.Int(2), g, di, dj))
			}
		}
	}
	return expr.Add(terms...)
}
