package render

import (
	"time"

	"rosetta"
)

// DefaultSteps is the sampling resolution used by [DefaultStyles].
const DefaultSteps = 3000

// RosettaStyle pairs a curve with its presentation.
type RosettaStyle struct {
	Curve rosetta.Hypotrochoid
	// Color is the stroke color of the curve.
	Color string
	// Duration is the time of one full rotation of the curve.
	Duration time.Duration
}

// GridStyle describes the background grid.
type GridStyle struct {
	// Step is the spacing between grid lines.
	Step int
	// Color is the color of the grid lines.
	Color string
	// StrokeWidth is the width of the grid lines.
	StrokeWidth float64
	// Opacity is the opacity of the grid lines.
	Opacity float64
}

// DefaultGrid is the grid used when [Document.Grid] is left zero.
var DefaultGrid = GridStyle{
	Step:        50,
	Color:       "white",
	StrokeWidth: 0.5,
	Opacity:     0.2,
}

// DefaultStyles returns the reference set of animated rosettas.
func DefaultStyles() []RosettaStyle {
	return []RosettaStyle{
		{
			Curve:    rosetta.Hypotrochoid{OuterRadius: 150, InnerRadius: 52.5, PenOffset: 97.5, Steps: DefaultSteps},
			Color:    "cyan",
			Duration: 6 * time.Second,
		},
		{
			Curve:    rosetta.Hypotrochoid{OuterRadius: 160, InnerRadius: 110, PenOffset: 85, Steps: DefaultSteps},
			Color:    "gold",
			Duration: 14 * time.Second,
		},
		{
			Curve:    rosetta.Hypotrochoid{OuterRadius: 120, InnerRadius: 33, PenOffset: 66, Steps: DefaultSteps},
			Color:    "orange",
			Duration: 4 * time.Second,
		},
	}
}
