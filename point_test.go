package rosetta

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, -4), Pt(5, 1).Sub(Pt(2, 5)))
	diff(t, Vec(-3, 4), Pt(5, 1).Sub(Pt(2, 5)).Negate())
	if m := Pt(3, 4).Sub(Pt(0, 0)).Hypot(); m != 5 {
		t.Errorf("got magnitude %v, want 5", m)
	}
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointMidpoint(t *testing.T) {
	diff(t, Pt(1, -3), Pt(-2, -4).Midpoint(Pt(4, -2)))
}
