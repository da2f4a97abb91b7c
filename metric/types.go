// SPDX-License-Identifier: MIT

// Package metric: the Tensor type and its accessors.
package metric

import (
	"fmt"

	"github.com/katalvlaran/spacetime/expr"
)

// Tensor is an immutable symmetric symbolic metric g_{μν} over an ordered
// coordinate list. Construct via New or NewDiagonal; the zero value is not
// usable.
type Tensor struct {
	coords []string
	comps  [][]expr.Expr
	index  map[string]int
}

// Dim returns the number of coordinates.
func (t *Tensor) Dim() int { return len(t.coords) }

// Coords returns a copy of the ordered coordinate names.
func (t *Tensor) Coords() []string {
	out := make([]string, len(t.coords))
	copy(out, t.coords)
	return out
}

// At returns the component g[i][j].
//
// Errors:
//   - ErrOutOfRange — i or j outside [0, Dim).
func (t *Tensor) At(i, j int) (expr.Expr, error) {
	if i < 0 || i >= len(t.coords) || j < 0 || j >= len(t.coords) {
		return nil, fmt.Errorf("%w: (%d,%d) in dim %d", ErrOutOfRange, i, j, len(t.coords))
	}
	return t.comps[i][j], nil
}

// Component returns the component addressed by coordinate names, e.g.
// Component("theta", "theta").
//
// Errors:
//   - ErrUnknownCoord — either name is not a coordinate of this tensor.
func (t *Tensor) Component(a, b string) (expr.Expr, error) {
	i, ok := t.index[a]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCoord, a)
	}
	j, ok := t.index[b]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCoord, b)
	}
	return t.comps[i][j], nil
}

// Diagonal returns a copy of the diagonal component slice.
func (t *Tensor) Diagonal() []expr.Expr {
	out := make([]expr.Expr, len(t.coords))
	for i := range t.coords {
		out[i] = t.comps[i][i]
	}
	return out
}
