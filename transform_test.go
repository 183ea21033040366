package sprig

import (
	"math"
	"testing"
)

func TestIdentityApply(t *testing.T) {
	p := Identity().Apply(Pt(12, -7))
	if p.X != 12 || p.Y != -7 {
		t.Errorf("identity moved point: got (%f, %f)", p.X, p.Y)
	}
}

func TestTranslateApply(t *testing.T) {
	p := Translate(10, 20).Apply(Pt(1, 2))
	if p.X != 11 || p.Y != 22 {
		t.Errorf("got (%f, %f), want (11, 22)", p.X, p.Y)
	}
}

func TestScaleApply(t *testing.T) {
	p := Scale(2, 3).Apply(Pt(4, 5))
	if p.X != 8 || p.Y != 15 {
		t.Errorf("got (%f, %f), want (8, 15)", p.X, p.Y)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	p := Rotate(math.Pi / 2).Apply(Pt(1, 0))
	if math.Abs(p.X) > 1e-12 || math.Abs(p.Y-1) > 1e-12 {
		t.Errorf("got (%f, %f), want (0, 1)", p.X, p.Y)
	}
}

func TestMulOrder(t *testing.T) {
	// t.Mul(other) applies other first: scale then translate.
	m := Translate(100, 0).Mul(Scale(2, 2))
	p := m.Apply(Pt(1, 1))
	if p.X != 102 || p.Y != 2 {
		t.Errorf("got (%f, %f), want (102, 2)", p.X, p.Y)
	}

	// Reverse composition: translate first, then scale.
	m = Scale(2, 2).Mul(Translate(100, 0))
	p = m.Apply(Pt(1, 1))
	if p.X != 202 || p.Y != 2 {
		t.Errorf("got (%f, %f), want (202, 2)", p.X, p.Y)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	m := Translate(15, -4).Mul(Rotate(0.7)).Mul(Scale(2, 0.5))
	inv := m.Invert()

	orig := Pt(3, 9)
	back := inv.Apply(m.Apply(orig))
	if math.Abs(back.X-orig.X) > 1e-9 || math.Abs(back.Y-orig.Y) > 1e-9 {
		t.Errorf("round trip = (%f, %f), want (%f, %f)", back.X, back.Y, orig.X, orig.Y)
	}
}

func TestInvertSingularReturnsIdentity(t *testing.T) {
	singular := Scale(0, 0)
	if singular.Invert() != Identity() {
		t.Error("singular inverse should be identity")
	}
}

func TestApplyRectIsAABBOfCorners(t *testing.T) {
	r := Rotate(math.Pi / 4).ApplyRect(Rect{X: -1, Y: -1, Width: 2, Height: 2})
	want := 2 * math.Sqrt2
	if math.Abs(r.Width-want) > 1e-9 || math.Abs(r.Height-want) > 1e-9 {
		t.Errorf("rotated unit square bounds = %v, want %f x %f", r, want, want)
	}
}

func TestTransformLerp(t *testing.T) {
	from := Identity()
	to := Scale(3, 3)

	mid := from.Lerp(to, 0.5)
	if mid[0] != 2 || mid[3] != 2 {
		t.Errorf("midpoint scale = (%f, %f), want (2, 2)", mid[0], mid[3])
	}
	if from.Lerp(to, 0) != from {
		t.Error("Lerp(0) should return from")
	}
	if from.Lerp(to, 1) != to {
		t.Error("Lerp(1) should return to")
	}
}

func TestShearApply(t *testing.T) {
	// 45° x-shear maps (0, 1) to (1, 1).
	p := Shear(math.Pi/4, 0).Apply(Pt(0, 1))
	if math.Abs(p.X-1) > 1e-12 || p.Y != 1 {
		t.Errorf("got (%f, %f), want (1, 1)", p.X, p.Y)
	}
}
