// SPDX-License-Identifier: MIT

// Package metric: validated construction.
package metric

import (
	"fmt"

	"github.com/katalvlaran/spacetime/expr"
)

// New builds a metric tensor from an ordered coordinate list and a square
// component matrix.
//
// Validation order (first failure wins):
//  1. len(coords) ≥ 2               — ErrTooFewCoords
//  2. coordinate names unique, non-empty — ErrDuplicateCoord
//  3. components form a dim×dim matrix   — ErrBadShape
//  4. every entry non-nil                — ErrNilComponent
//  5. g[i][j] structurally equals g[j][i] — ErrAsymmetric
//
// The component matrix is copied; later mutation of the caller's slices
// does not affect the tensor.
//
// Complexity: O(dim² · component size) for the symmetry check.
func New(coords []string, components [][]expr.Expr) (*Tensor, error) {
	dim := len(coords)
	if dim < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewCoords, dim)
	}
	index := make(map[string]int, dim)
	for i, c := range coords {
		if c == "" {
			return nil, fmt.Errorf("%w: empty name at %d", ErrDuplicateCoord, i)
		}
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCoord, c)
		}
		index[c] = i
	}

	if len(components) != dim {
		return nil, fmt.Errorf("%w: %d rows for dim %d", ErrBadShape, len(components), dim)
	}
	comps := make([][]expr.Expr, dim)
	for i, row := range components {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: row %d has %d columns for dim %d", ErrBadShape, i, len(row), dim)
		}
		comps[i] = make([]expr.Expr, dim)
		for j, e := range row {
			if e == nil {
				return nil, fmt.Errorf("%w: (%d,%d)", ErrNilComponent, i, j)
			}
			comps[i][j] = e
		}
	}

	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			if !comps[i][j].Equal(comps[j][i]) {
				return nil, fmt.Errorf("%w: (%s,%s)", ErrAsymmetric, coords[i], coords[j])
			}
		}
	}

	cs := make([]string, dim)
	copy(cs, coords)

	return &Tensor{coords: cs, comps: comps, index: index}, nil
}

// NewDiagonal builds a diagonal metric from the given diagonal entries;
// every off-diagonal component is 0.
//
// Errors: as New, plus ErrBadShape when len(diag) != len(coords).
func NewDiagonal(coords []string, diag []expr.Expr) (*Tensor, error) {
	dim := len(coords)
	if len(diag) != dim {
		return nil, fmt.Errorf("%w: %d diagonal entries for dim %d", ErrBadShape, len(diag), dim)
	}
	zero := expr.Int(0)
	comps := make([][]expr.Expr, dim)
	for i := 0; i < dim; i++ {
		comps[i] = make([]expr.Expr, dim)
		for j := 0; j < dim; j++ {
			if i == j {
				comps[i][j] = diag[i]
			} else {
				comps[i][j] = zero
			}
		}
	}
	return New(coords, comps)
}
