package frw_test

import (
	"fmt"

	"github.com/katalvlaran/spacetime/frw"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMetric
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Build the flat-topology FRW metric and read the diagonal back. The
//	curvature radius R cancels for flat slices, so only a(t) and the
//	coordinates remain.
func ExampleMetric() {
	g, err := frw.Metric(frw.Flat)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for i, c := range g.Coords() {
		e, _ := g.At(i, i)
		fmt.Printf("g_%s%s = %s\n", c, c, e)
	}
	// Output:
	// g_tt = -1
	// g_chichi = a(t)^2
	// g_thetatheta = a(t)^2*chi^2
	// g_phiphi = a(t)^2*chi^2*sin(theta)^2
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleLineElement
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Expand ds² for the closed (spherical) universe; the angular sector
//	carries sin(χ/R)² where the flat case carries χ².
func ExampleLineElement() {
	ds2, err := frw.LineElement(frw.Closed)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ds2)
	// Output:
	// R^2*a(t)^2*dphi^2*sin(chi/R)^2*sin(theta)^2 + R^2*a(t)^2*dtheta^2*sin(chi/R)^2 + a(t)^2*dchi^2 - dt^2
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleParseTopology
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Labels arrive from a CLI or config file; geometric aliases map onto
//	the canonical topologies and unknown labels fail loudly.
func ExampleParseTopology() {
	top, _ := frw.ParseTopology("spherical")
	fmt.Println(top)

	if _, err := frw.ParseTopology("donut"); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// closed
	// error: frw: unknown topology: "donut"
}
