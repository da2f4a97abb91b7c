// SPDX-License-Identifier: MIT

// Package frw constructs the Friedmann–Robertson–Walker (FRW) spacetime
// metric for the three homogeneous, isotropic cosmological topologies.
//
// 🚀 What is the FRW metric?
//
//	The line element of an expanding universe in comoving coordinates
//	(t, χ, θ, φ):
//
//	  ds² = −dt² + a(t)²·[dχ² + (R·f(χ/R))²·(dθ² + sin²θ·dφ²)]
//
//	with a topology-dependent radial profile f:
//	  • Flat   (k = 0):  f(x) = x      — Euclidean spatial slices
//	  • Closed (k = +1): f(x) = sin x  — 3-sphere of curvature radius R
//	  • Open   (k = −1): f(x) = sinh x — hyperbolic slices
//
//	For the flat topology R·f(χ/R) collapses exactly to χ, so R drops out
//	of every component.
//
// ✨ Key features:
//   - Metric builds the full 4×4 diagonal tensor as a metric.Tensor
//   - RadialProfile exposes the topology → f(x) selection on its own
//   - Functional options: scale-factor name, curvature-radius symbol or
//     numeric value, coordinate names, overall signature convention
//   - Unknown topology labels fail loudly with ErrUnknownTopology
//
// ⚙️ Usage:
//
//	g, err := frw.Metric(frw.Closed)
//	if err != nil { … }
//	fmt.Println(g.LineElement())
//
// Complexity: construction is a fixed number of expr operations — O(1)
// time and memory for all topologies.
package frw
