package rosetta

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// DefaultRevolutions is the number of full parameter sweeps used when
// [Hypotrochoid.Revolutions] is zero.
//
// The revolution count that closes the curve exactly is
// inner/gcd(outer, inner) for integer radii. A fixed count is used
// instead; curves whose exact count exceeds it will not quite close.
const DefaultRevolutions = 16.0

// ErrInvalidParameter is returned, wrapped, when the parameters of a
// [Hypotrochoid] describe a degenerate geometry.
var ErrInvalidParameter = errors.New("invalid hypotrochoid parameter")

// Hypotrochoid describes the curve traced by a pen attached to a circle
// rolling without slipping inside a larger fixed circle.
type Hypotrochoid struct {
	// OuterRadius is the radius of the fixed circle. It must exceed
	// InnerRadius.
	OuterRadius float64
	// InnerRadius is the radius of the rolling circle. It must be
	// positive; a rolling circle as large as the fixed one cannot roll
	// inside it.
	InnerRadius float64
	// PenOffset is the distance from the center of the rolling circle
	// to the traced point. It may be negative.
	PenOffset float64
	// Steps is the number of segments used to approximate the curve;
	// Steps+1 points are sampled. A value of 0 degenerates to a single
	// point.
	Steps int
	// Revolutions is the number of full parameter sweeps covered by
	// the sampling. If zero, DefaultRevolutions is used.
	Revolutions float64
}

var _ Shape = Hypotrochoid{}

func (h Hypotrochoid) revolutions() float64 {
	if h.Revolutions == 0 {
		return DefaultRevolutions
	}
	return h.Revolutions
}

// Validate checks the curve's parameters. It returns an error wrapping
// [ErrInvalidParameter] if the geometry is degenerate: a non-positive
// inner radius, an outer radius not exceeding the inner one, or a
// negative step count.
func (h Hypotrochoid) Validate() error {
	switch {
	case h.InnerRadius <= 0:
		return fmt.Errorf("%w: inner radius %g is not positive", ErrInvalidParameter, h.InnerRadius)
	case h.OuterRadius <= h.InnerRadius:
		return fmt.Errorf("%w: outer radius %g does not exceed inner radius %g", ErrInvalidParameter, h.OuterRadius, h.InnerRadius)
	case h.Steps < 0:
		return fmt.Errorf("%w: negative step count %d", ErrInvalidParameter, h.Steps)
	}
	return nil
}

// Eval evaluates the raw parametric equation of the curve at t ∈ [0, 1],
// where t covers [Hypotrochoid.Revolutions] full sweeps. The result is
// not recentered.
//
// The pen's sin term is subtracted, not added; the sign determines the
// rolling direction, and flipping it mirrors the curve.
func (h Hypotrochoid) Eval(t float64) Point {
	rDiff := h.OuterRadius - h.InnerRadius
	ratio := rDiff / h.InnerRadius
	theta := 2 * math.Pi * t * h.revolutions()
	return Point{
		X: rDiff*math.Cos(theta) + h.PenOffset*math.Cos(ratio*theta),
		Y: rDiff*math.Sin(theta) - h.PenOffset*math.Sin(ratio*theta),
	}
}

// ComputePoints samples the curve into Steps+1 points and recenters
// them so that their bounding box is centered on the origin. The
// returned sequence is owned by the caller.
//
// If the parameters are invalid (see [Hypotrochoid.Validate]), an
// error wrapping [ErrInvalidParameter] is returned instead, never a
// sequence with non-finite coordinates.
func (h Hypotrochoid) ComputePoints() ([]Point, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h.computePoints(), nil
}

func (h Hypotrochoid) computePoints() []Point {
	pts := make([]Point, h.Steps+1)
	var bbox Rect
	for j := range pts {
		// With Steps == 0 the single sample sits at t = 0.
		var t float64
		if h.Steps > 0 {
			t = float64(j) / float64(h.Steps)
		}
		p := h.Eval(t)
		pts[j] = p
		if j == 0 {
			bbox = NewRectFromPoints(p, p)
		} else {
			bbox = bbox.UnionPoint(p)
		}
	}
	offset := Vec2(bbox.Center()).Negate()
	for j := range pts {
		pts[j] = pts[j].Translate(offset)
	}
	return pts
}

// Perimeter returns the length of the sampled polyline. The accuracy
// argument is ignored; the resolution is fixed by Steps.
//
// Like the other [Shape] methods, Perimeter returns a zero value for
// invalid parameters; [Hypotrochoid.ComputePoints] is the validating
// entry point.
func (h Hypotrochoid) Perimeter(accuracy float64) float64 {
	pts, err := h.ComputePoints()
	if err != nil {
		return 0
	}
	var length float64
	for i := 1; i < len(pts); i++ {
		length += pts[i].Distance(pts[i-1])
	}
	return length
}

// BoundingBox returns the bounding box of the sampled curve. As the
// samples are recentered, the box is centered on the origin.
func (h Hypotrochoid) BoundingBox() Rect {
	pts, err := h.ComputePoints()
	if err != nil {
		return Rect{}
	}
	bbox := NewRectFromPoints(pts[0], pts[0])
	for _, p := range pts[1:] {
		bbox = bbox.UnionPoint(p)
	}
	return bbox
}

// PathElements returns the sampled curve as a "move to" followed by
// one "line to" per remaining sample. The tolerance argument is
// ignored; the resolution is fixed by Steps. Invalid parameters yield
// an empty sequence.
func (h Hypotrochoid) PathElements(tolerance float64) iter.Seq[PathElement] {
	pts, _ := h.ComputePoints()
	return Polyline(pts).Elements()
}

func (h Hypotrochoid) Path(tolerance float64) Path {
	pts, _ := h.ComputePoints()
	return Polyline(pts)
}
