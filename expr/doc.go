// Package expr implements a small deterministic symbolic-expression kernel:
// immutable expression trees over exact rational constants, free symbols,
// named unary functions, sums, products and powers.
//
// 🚀 What is expr?
//
//	The algebra layer underneath the spacetime packages. It provides just
//	enough computer algebra to build, simplify, differentiate and display
//	metric-tensor components:
//	  • Exact rationals (math/big.Rat) — no floating-point drift
//	  • Auto-simplifying constructors: x+0, x·1, x·0, x^1, x^0, sin(0), …
//	  • Like-term and like-base merging with stable, deterministic ordering
//	  • Substitution, partial derivatives, numeric evaluation
//	  • Plain-text and LaTeX rendering
//
// ✨ Design rules:
//
//   - Expressions are immutable once constructed; all operations return
//     new trees and never mutate their operands.
//   - Constructors always return canonical (simplified) forms, so two
//     expressions built from the same algebra compare Equal.
//   - User-facing failures are sentinel errors checked via errors.Is;
//     panics are reserved for programmer errors (nil operands, zero
//     denominators, non-finite floats).
//
// ⚙️ Usage:
//
//	chi, r := expr.Sym("chi"), expr.Sym("R")
//	f := expr.Mul(r, expr.Sin(expr.Div(chi, r))) // R·sin(χ/R)
//	fmt.Println(f)        // R*sin(chi/R)
//	fmt.Println(f.LaTeX())
//
// Opaque function applications such as a(t) are built with Apply("a", t);
// differentiating them yields primed applications a'(t).
package expr
