// SPDX-License-Identifier: MIT

// Package metric: structural analysis of a tensor.
package metric

import (
	"fmt"

	"github.com/katalvlaran/spacetime/expr"
)

// IsDiagonal reports whether every off-diagonal component equals 0.
func (t *Tensor) IsDiagonal() bool {
	zero := expr.Int(0)
	for i := range t.coords {
		for j := range t.coords {
			if i != j && !t.comps[i][j].Equal(zero) {
				return false
			}
		}
	}
	return true
}

// Signature returns the sign (−1 or +1) of each diagonal component of a
// diagonal tensor, in coordinate order. Signs are determined syntactically:
// rational constants carry their sign, even integer powers are positive,
// and products multiply the signs of their factors.
//
// Errors:
//   - ErrNotDiagonal    — the tensor has non-zero off-diagonal entries.
//   - ErrIndefiniteSign — a diagonal entry's sign cannot be determined.
func (t *Tensor) Signature() ([]int, error) {
	if !t.IsDiagonal() {
		return nil, ErrNotDiagonal
	}
	out := make([]int, len(t.coords))
	for i := range t.coords {
		s := signOf(t.comps[i][i])
		if s == 0 {
			return nil, fmt.Errorf("%w: g(%s,%s) = %s",
				ErrIndefiniteSign, t.coords[i], t.coords[i], t.comps[i][i])
		}
		out[i] = s
	}
	return out, nil
}

// signOf determines the syntactic sign of e: -1, +1, or 0 when unknown.
// Even integer powers of any base count as positive; the nondegenerate
// components of a metric are nonzero on the region where the chart is valid.
func signOf(e expr.Expr) int {
	switch v := e.(type) {
	case *expr.Rational:
		return v.Sign()
	case *expr.Power:
		if r, ok := v.Exponent().(*expr.Rational); ok && r.IsInteger() {
			if r.Rat().Num().Int64()%2 == 0 {
				return 1 // even power
			}
			return signOf(v.Base())
		}
		return 0
	case *expr.Product:
		sign := 1
		for _, f := range v.Factors() {
			fs := signOf(f)
			if fs == 0 {
				return 0
			}
			sign *= fs
		}
		return sign
	default:
		return 0
	}
}

// Trace returns the sum of the diagonal components Σ g_{ii}.
func (t *Tensor) Trace() expr.Expr {
	return expr.Add(t.Diagonal()...)
}

// Determinant returns det g as a symbolic expression: the product of the
// diagonal for diagonal tensors, cofactor expansion along the first row
// otherwise.
//
// Complexity: O(dim) diagonal, O(dim!) general — fine for spacetime sizes.
func (t *Tensor) Determinant() expr.Expr {
	if t.IsDiagonal() {
		return expr.Mul(t.Diagonal()...)
	}
	return determinant(t.comps)
}

func determinant(m [][]expr.Expr) expr.Expr {
	n := len(m)
	if n == 1 {
		return m[0][0]
	}
	terms := make([]expr.Expr, 0, n)
	sign := int64(1)
	for c := 0; c < n; c++ {
		minor := make([][]expr.Expr, 0, n-1)
		for r := 1; r < n; r++ {
			row := make([]expr.Expr, 0, n-1)
			for cc := 0; cc < n; cc++ {
				if cc != c {
					row = append(row, m[r][cc])
				}
			}
			minor = append(minor, row)
		}
		terms = append(terms, expr.Mul(expr.Int(sign), m[0][c], determinant(minor)))
		sign = -sign
	}
	return expr.Add(terms...)
}
