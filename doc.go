// Package spacetime is your symbolic playground for building, inspecting
// and rendering Friedmann–Robertson–Walker metric tensors.
//
// 🚀 What is spacetime?
//
//	A small, exact, CLI-friendly library that brings together:
//		• Symbolic kernel: exact rationals, canonical sums/products/powers
//		• Calculus: substitution, differentiation, numeric evaluation
//		• Metric tensors: validated symmetric g_{μν} containers
//		• FRW construction: flat, closed and open spatial topologies
//		• Display: aligned plain text, LaTeX pmatrix, styled terminal grids
//
// ✨ Why choose spacetime?
//
//   - Exact by construction – big.Rat coefficients, no floating-point drift
//   - Canonical output – identical expressions always print identically
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Batteries included – a cobra CLI with an interactive explorer
//
// Under the hood, everything is organized under four subpackages:
//
//	expr/   — symbolic expressions: rationals, symbols, sums, products, powers, calls
//	metric/ — the Tensor type, validation, signature/trace/determinant, ds²
//	frw/    — topology selection and FRW metric construction
//	render/ — plain, LaTeX and lipgloss terminal formatting
//
// Quick line element:
//
//	ds² = −dt² + a(t)²·[ dχ² + (R·f(χ/R))²·(dθ² + sin²θ·dφ²) ]
//
//	where f is x, sin x or sinh x depending on the spatial curvature.
//
// Dive into README.md for full examples and the CLI reference.
//
//	go get github.com/katalvlaran/spacetime
package spacetime
