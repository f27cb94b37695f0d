package rosetta_test

import (
	"fmt"

	"rosetta"
)

func ExamplePolyline() {
	p := rosetta.Polyline([]rosetta.Point{
		rosetta.Pt(0, 0),
		rosetta.Pt(10, 0),
		rosetta.Pt(10, 10),
	})
	fmt.Println(p.SVG(rosetta.SVGOptions{}))
	// Output: M0,0 L10,0 L10,10
}

func ExampleHypotrochoid_ComputePoints() {
	// Zero steps sample a single point, which recentering maps to the
	// origin.
	h := rosetta.Hypotrochoid{OuterRadius: 150, InnerRadius: 52.5, PenOffset: 97.5}
	pts, err := h.ComputePoints()
	if err != nil {
		panic(err)
	}
	fmt.Println(len(pts), pts[0])
	// Output: 1 (0, 0)
}
