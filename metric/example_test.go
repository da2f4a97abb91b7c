package metric_test

import (
	"fmt"

	"github.com/katalvlaran/spacetime/expr"
	"github.com/katalvlaran/spacetime/metric"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewDiagonal
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 2D toy spacetime diag(-1, a(t)²) over (t, x): build it, read one
//	component back, and expand the line element.
func ExampleNewDiagonal() {
	a2 := expr.Pow(expr.Apply("a", expr.Sym("t")), expr.Int(2))

	g, err := metric.NewDiagonal([]string{"t", "x"}, []expr.Expr{expr.Int(-1), a2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	gxx, _ := g.Component("x", "x")
	fmt.Println("g_xx =", gxx)
	fmt.Println("ds^2 =", g.LineElement())
	// Output:
	// g_xx = a(t)^2
	// ds^2 = a(t)^2*dx^2 - dt^2
}
