// Package rosetta computes hypotrochoid ("rosetta") curves and
// serializes them as SVG path data.
//
// A hypotrochoid is the curve traced by a pen attached to a circle
// rolling without slipping inside a larger fixed circle.
// [Hypotrochoid] describes one such curve. Its
// [Hypotrochoid.ComputePoints] method samples the curve into a finite
// point sequence and recenters it so that the sequence's bounding box
// is centered on the origin.
//
// [Polyline] converts a point sequence into a sequence of path
// elements, and [SVG] and [WriteSVG] serialize path elements into SVG
// path commands. [Shape] describes shapes that can report their
// perimeter and bounding box and express themselves as path elements;
// [Hypotrochoid] implements it.
//
// The render subpackage assembles complete animated SVG documents from
// styled curves, and cmd/rosettas renders a predefined set of them to
// a file.
package rosetta
