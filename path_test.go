package sprig

import (
	"math"
	"testing"
)

func TestEmptyPath(t *testing.T) {
	p := NewPathBuilder().Build()
	if !p.Empty() {
		t.Error("expected empty path")
	}
	if p.BoundingBox() != (Rect{}) {
		t.Errorf("empty path bounds = %v, want zero rect", p.BoundingBox())
	}
}

func TestQuadBoundsIncludeExtrema(t *testing.T) {
	// Control point (5, 10) pulls the curve up to y = 5 at t = 0.5; the
	// control point itself is never reached.
	p := NewPathBuilder().
		MoveTo(0, 0).
		QuadTo(5, 10, 10, 0).
		Build()

	b := p.BoundingBox()
	if math.Abs(b.Y) > 1e-9 || math.Abs(b.Height-5) > 1e-9 {
		t.Errorf("quad bounds = %v, want y span [0, 5]", b)
	}
	if b.X != 0 || b.Width != 10 {
		t.Errorf("quad bounds = %v, want x span [0, 10]", b)
	}
}

func TestCubicBoundsIncludeExtrema(t *testing.T) {
	// Symmetric cubic arch: maximum height 7.5 at t = 0.5, below the
	// control hull's 10.
	p := NewPathBuilder().
		MoveTo(0, 0).
		CubicTo(0, 10, 10, 10, 10, 0).
		Build()

	b := p.BoundingBox()
	if math.Abs(b.Height-7.5) > 1e-9 {
		t.Errorf("cubic bounds height = %f, want 7.5", b.Height)
	}
}

func TestMoveToCountsTowardBounds(t *testing.T) {
	p := NewPathBuilder().
		MoveTo(-5, -5).
		MoveTo(10, 10).
		LineTo(20, 20).
		Build()

	b := p.BoundingBox()
	if b.X != -5 || b.Y != -5 {
		t.Errorf("bounds = %v, should include bare MoveTo point (-5, -5)", b)
	}
}

func TestPathSegmentsResolved(t *testing.T) {
	p := NewPathBuilder().
		MoveTo(0, 0).
		LineTo(10, 0).
		Close().
		Build()

	segs := p.Segments()
	if len(segs) != 3 {
		t.Fatalf("len(segments) = %d, want 3", len(segs))
	}
	if _, ok := segs[0].(MoveTo); !ok {
		t.Errorf("segment 0 = %T, want MoveTo", segs[0])
	}
	if _, ok := segs[1].(LineTo); !ok {
		t.Errorf("segment 1 = %T, want LineTo", segs[1])
	}
	if _, ok := segs[2].(Close); !ok {
		t.Errorf("segment 2 = %T, want Close", segs[2])
	}
}

func TestArcLowersToCubics(t *testing.T) {
	p := NewPathBuilder().
		Arc(0, 0, 10, 0, math.Pi, false).
		Build()

	segs := p.Segments()
	if _, ok := segs[0].(MoveTo); !ok {
		t.Fatalf("segment 0 = %T, want MoveTo", segs[0])
	}
	cubics := 0
	for _, s := range segs[1:] {
		if _, ok := s.(CubicTo); ok {
			cubics++
		} else {
			t.Errorf("unexpected segment %T in lowered arc", s)
		}
	}
	// A half circle splits into two ≤90° cubic segments.
	if cubics != 2 {
		t.Errorf("cubic count = %d, want 2", cubics)
	}
}
