package sprig

import "math"

// Segment is a single resolved element of a finalized path. Coordinates are
// already in final space: any transform context active when the originating
// command was appended has been applied.
//
// The algebra is closed over five variants: MoveTo, LineTo, QuadTo, CubicTo,
// and Close. Arcs and composite shapes are lowered to cubic Bézier segments
// at append time.
type Segment interface {
	isSegment()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isSegment() {}

// LineTo draws a straight segment to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isSegment() {}

// QuadTo draws a quadratic Bézier segment with one control point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isSegment() {}

// CubicTo draws a cubic Bézier segment with two control points.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isSegment() {}

// Close draws a straight segment back to the start of the current subpath and
// marks the subpath closed.
type Close struct{}

func (Close) isSegment() {}

// Path is an immutable, finalized sequence of resolved segments organized
// into one or more subpaths. A Path is produced by PathBuilder.Build and is
// never mutated afterwards, so it is safe to share across goroutines.
type Path struct {
	segments []Segment
	bounds   Rect
}

// Segments returns the path's resolved segments. The returned slice is the
// path's backing store and must not be modified.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Empty reports whether the path contains no segments.
func (p *Path) Empty() bool {
	return len(p.segments) == 0
}

// BoundingBox returns the minimal axis-aligned rectangle enclosing the
// path's geometry. Curve extrema are included, so the box is tight rather
// than a control-point hull. An empty path has a zero bounding box.
func (p *Path) BoundingBox() Rect {
	return p.bounds
}

// --- Bounds computation ---

// boundsAccum accumulates a running min/max box over visited points.
type boundsAccum struct {
	minX, minY, maxX, maxY float64
	any                    bool
}

func (b *boundsAccum) add(p Point) {
	if !b.any {
		b.minX, b.maxX = p.X, p.X
		b.minY, b.maxY = p.Y, p.Y
		b.any = true
		return
	}
	if p.X < b.minX {
		b.minX = p.X
	}
	if p.X > b.maxX {
		b.maxX = p.X
	}
	if p.Y < b.minY {
		b.minY = p.Y
	}
	if p.Y > b.maxY {
		b.maxY = p.Y
	}
}

func (b *boundsAccum) rect() Rect {
	if !b.any {
		return Rect{}
	}
	return Rect{X: b.minX, Y: b.minY, Width: b.maxX - b.minX, Height: b.maxY - b.minY}
}

// segmentBounds walks the segment list and returns the tight bounding box.
func segmentBounds(segments []Segment) Rect {
	var acc boundsAccum
	var current Point

	for _, seg := range segments {
		switch s := seg.(type) {
		case MoveTo:
			acc.add(s.Point)
			current = s.Point
		case LineTo:
			acc.add(s.Point)
			current = s.Point
		case QuadTo:
			acc.add(s.Point)
			addQuadExtrema(&acc, current, s.Control, s.Point)
			current = s.Point
		case CubicTo:
			acc.add(s.Point)
			addCubicExtrema(&acc, current, s.Control1, s.Control2, s.Point)
			current = s.Point
		case Close:
			// The closing line only revisits existing endpoints.
		}
	}
	return acc.rect()
}

// addQuadExtrema adds the interior axis extrema of a quadratic Bézier.
// The derivative is linear per axis: zero at t = (p0-p1) / (p0 - 2p1 + p2).
func addQuadExtrema(acc *boundsAccum, p0, p1, p2 Point) {
	for axis := 0; axis < 2; axis++ {
		a0, a1, a2 := axisOf(p0, axis), axisOf(p1, axis), axisOf(p2, axis)
		denom := a0 - 2*a1 + a2
		if denom == 0 {
			continue
		}
		t := (a0 - a1) / denom
		if t > 0 && t < 1 {
			acc.add(evalQuad(p0, p1, p2, t))
		}
	}
}

// addCubicExtrema adds the interior axis extrema of a cubic Bézier by solving
// the quadratic derivative per axis.
func addCubicExtrema(acc *boundsAccum, p0, p1, p2, p3 Point) {
	for axis := 0; axis < 2; axis++ {
		c0 := axisOf(p1, axis) - axisOf(p0, axis)
		c1 := axisOf(p2, axis) - axisOf(p1, axis)
		c2 := axisOf(p3, axis) - axisOf(p2, axis)

		// B'(t)/3 = (c0 - 2c1 + c2)t² + 2(c1 - c0)t + c0
		a := c0 - 2*c1 + c2
		b := 2 * (c1 - c0)
		c := c0

		if math.Abs(a) < 1e-12 {
			if b != 0 {
				if t := -c / b; t > 0 && t < 1 {
					acc.add(evalCubic(p0, p1, p2, p3, t))
				}
			}
			continue
		}

		disc := b*b - 4*a*c
		if disc < 0 {
			continue
		}
		sq := math.Sqrt(disc)
		for _, t := range [2]float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)} {
			if t > 0 && t < 1 {
				acc.add(evalCubic(p0, p1, p2, p3, t))
			}
		}
	}
}

func axisOf(p Point, axis int) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// evalQuad evaluates a quadratic Bézier at parameter t.
func evalQuad(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

// evalCubic evaluates a cubic Bézier at parameter t.
func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
		Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
	}
}
