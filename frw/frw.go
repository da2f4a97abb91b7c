// SPDX-License-Identifier: MIT

// Package frw: metric construction.
package frw

import (
	"github.com/katalvlaran/spacetime/expr"
	"github.com/katalvlaran/spacetime/metric"
)

// ProfileFunc is a topology's radial profile f applied to an expression.
type ProfileFunc func(x expr.Expr) expr.Expr

// RadialProfile returns the radial profile f for the topology:
// identity (Flat), sin (Closed) or sinh (Open).
//
// Errors:
//   - ErrUnknownTopology — top is not a known topology value.
func RadialProfile(top Topology) (ProfileFunc, error) {
	switch top {
	case Flat:
		return func(x expr.Expr) expr.Expr { return x }, nil
	case Closed:
		return expr.Sin, nil
	case Open:
		return expr.Sinh, nil
	default:
		return nil, ErrUnknownTopology
	}
}

// Metric builds the FRW metric tensor over (t, χ, θ, φ):
//
//	g_tt = −1
//	g_χχ = a(t)²
//	g_θθ = a(t)²·(R·f(χ/R))²
//	g_φφ = a(t)²·(R·f(χ/R))²·sin²θ
//
// with every off-diagonal component zero. For the Flat topology the
// radial factor R·f(χ/R) collapses exactly to χ, so the curvature radius
// never appears in the result. MostlyMinus flips the sign of every
// component.
//
// Errors:
//   - ErrUnknownTopology — top is not a known topology value.
//   - metric sentinels   — duplicate coordinate names via WithCoordinates.
//
// Complexity: O(1) — a fixed number of expr constructions.
func Metric(top Topology, opts ...Option) (*metric.Tensor, error) {
	o := gatherOptions(opts)

	f, err := RadialProfile(top)
	if err != nil {
		return nil, err
	}

	timeSym := expr.Sym(o.coords[0])
	chi := expr.Sym(o.coords[1])
	theta := expr.Sym(o.coords[2])

	var radius expr.Expr = expr.Sym(o.radiusSymbol)
	if o.radiusValue > 0 {
		radius = expr.Float(o.radiusValue)
	}

	// a(t)² and the squared radial factor (R·f(χ/R))².
	scale2 := expr.Pow(expr.Apply(o.scaleFunc, timeSym), expr.Int(2))
	radial2 := expr.Pow(expr.Mul(radius, f(expr.Div(chi, radius))), expr.Int(2))
	angular := expr.Mul(scale2, radial2)

	diag := []expr.Expr{
		expr.Int(-1),
		scale2,
		angular,
		expr.Mul(angular, expr.Pow(expr.Sin(theta), expr.Int(2))),
	}
	if o.signature == MostlyMinus {
		for i, g := range diag {
			diag[i] = expr.Neg(g)
		}
	}

	return metric.NewDiagonal(o.coords[:], diag)
}

// LineElement builds the metric and expands its ds² in one step.
//
// Errors: as Metric.
func LineElement(top Topology, opts ...Option) (expr.Expr, error) {
	g, err := Metric(top, opts...)
	if err != nil {
		return nil, err
	}
	return g.LineElement(), nil
}
