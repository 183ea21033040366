package sprig

import "math"

// kappa is the control-point distance factor for approximating a quarter
// circle with a cubic Bézier: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

const twoPi = 2 * math.Pi

// PathBuilder accumulates drawing commands into a Path. All methods return
// the builder for chaining:
//
//	path := sprig.NewPathBuilder().
//		MoveTo(50, 0).
//		LineTo(100, 100).
//		LineTo(0, 100).
//		Close().
//		Build()
//
// A transform context can be set with Transform and cleared with NoTransform.
// The active transform is applied to each command at the moment it is
// appended; changing the transform never affects commands appended earlier.
//
// A builder is single-owner and consumed exactly once by Build. Any use after
// Build panics. Concurrent use of one builder is not supported.
type PathBuilder struct {
	segments []Segment
	xform    Transform
	hasXform bool

	start      Point // resolved start of the current subpath
	current    Point // resolved current point
	hasCurrent bool

	built bool
}

// NewPathBuilder creates an empty path builder with no transform context.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{
		segments: make([]Segment, 0, 16),
	}
}

func (b *PathBuilder) ensureUsable() {
	if b.built {
		panic("sprig: PathBuilder used after Build")
	}
}

// apply maps a command-space point through the active transform context.
func (b *PathBuilder) apply(p Point) Point {
	if b.hasXform {
		return b.xform.Apply(p)
	}
	return p
}

// commandSpaceCurrent maps the resolved current point back into the command
// space of the active transform, for constructions (ArcTo) that combine the
// current point with untransformed command coordinates.
func (b *PathBuilder) commandSpaceCurrent() Point {
	if b.hasXform {
		return b.xform.Invert().Apply(b.current)
	}
	return b.current
}

// --- Raw appends (points already resolved) ---

func (b *PathBuilder) rawMove(p Point) {
	b.segments = append(b.segments, MoveTo{Point: p})
	b.start = p
	b.current = p
	b.hasCurrent = true
}

func (b *PathBuilder) rawLine(p Point) {
	b.segments = append(b.segments, LineTo{Point: p})
	b.current = p
	b.hasCurrent = true
}

func (b *PathBuilder) rawQuad(c, p Point) {
	b.segments = append(b.segments, QuadTo{Control: c, Point: p})
	b.current = p
	b.hasCurrent = true
}

func (b *PathBuilder) rawCubic(c1, c2, p Point) {
	b.segments = append(b.segments, CubicTo{Control1: c1, Control2: c2, Point: p})
	b.current = p
	b.hasCurrent = true
}

func (b *PathBuilder) rawClose() {
	b.segments = append(b.segments, Close{})
	b.current = b.start
}

// --- Transform context ---

// Transform sets the transform context applied to all subsequent commands.
// It stays active until changed or cleared with NoTransform. Commands already
// appended are unaffected.
func (b *PathBuilder) Transform(t Transform) *PathBuilder {
	b.ensureUsable()
	b.xform = t
	b.hasXform = true
	return b
}

// NoTransform clears the transform context. Subsequent commands are appended
// untransformed.
func (b *PathBuilder) NoTransform() *PathBuilder {
	b.ensureUsable()
	b.hasXform = false
	return b
}

// --- Core commands ---

// MoveTo starts a new subpath at (x, y). The new subpath does not connect to
// any previous one.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.ensureUsable()
	b.rawMove(b.apply(Pt(x, y)))
	return b
}

// LineTo appends a straight segment from the current point to (x, y). If no
// current point exists, the position is established as if by MoveTo.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.ensureUsable()
	p := b.apply(Pt(x, y))
	if !b.hasCurrent {
		b.rawMove(p)
	} else {
		b.rawLine(p)
	}
	return b
}

// Close appends a straight segment back to the current subpath's starting
// point and marks the subpath closed. The closing point becomes the current
// point, so a following LineTo continues from there. Without an open subpath
// this is a no-op.
func (b *PathBuilder) Close() *PathBuilder {
	b.ensureUsable()
	if b.hasCurrent {
		b.rawClose()
	}
	return b
}

// QuadTo appends a quadratic Bézier segment from the current point with
// control point (cx, cy) ending at (x, y). If no current point exists, one is
// established at the control point.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	b.ensureUsable()
	c := b.apply(Pt(cx, cy))
	p := b.apply(Pt(x, y))
	if !b.hasCurrent {
		b.rawMove(c)
	}
	b.rawQuad(c, p)
	return b
}

// CubicTo appends a cubic Bézier segment from the current point with control
// points (c1x, c1y) and (c2x, c2y) ending at (x, y). If no current point
// exists, one is established at the first control point.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.ensureUsable()
	c1 := b.apply(Pt(c1x, c1y))
	c2 := b.apply(Pt(c2x, c2y))
	p := b.apply(Pt(x, y))
	if !b.hasCurrent {
		b.rawMove(c1)
	}
	b.rawCubic(c1, c2, p)
	return b
}

// --- Arcs ---

// Arc appends a circular arc around (cx, cy) with the given radius, from
// startAngle to endAngle (radians, measured from the positive x-axis). The
// clockwise flag selects the sweep direction regardless of the numeric sign
// of endAngle - startAngle: the sweep is normalized into [0, 2π) for
// counter-clockwise arcs and (-2π, 0] for clockwise ones.
//
// If a current point exists, a straight segment connects it to the arc's
// start point; otherwise the arc starts a new subpath. A radius ≤ 0 produces
// no segment.
func (b *PathBuilder) Arc(cx, cy, radius, startAngle, endAngle float64, clockwise bool) *PathBuilder {
	b.ensureUsable()
	if radius <= 0 {
		return b
	}

	sweep := math.Mod(endAngle-startAngle, twoPi)
	if clockwise {
		if sweep > 0 {
			sweep -= twoPi
		}
		if sweep == 0 && endAngle != startAngle {
			sweep = -twoPi
		}
	} else {
		if sweep < 0 {
			sweep += twoPi
		}
		if sweep == 0 && endAngle != startAngle {
			sweep = twoPi
		}
	}

	b.connectToArcStart(Pt(cx, cy), radius, startAngle)
	b.appendArcCurves(Pt(cx, cy), radius, startAngle, sweep)
	return b
}

// RelativeArc appends a circular arc around (cx, cy) starting at startAngle
// and sweeping by delta radians. The sign of delta selects the direction
// (positive = counter-clockwise); sweeps beyond a full turn are kept as
// given. A radius ≤ 0 produces no segment.
func (b *PathBuilder) RelativeArc(cx, cy, radius, startAngle, delta float64) *PathBuilder {
	b.ensureUsable()
	if radius <= 0 {
		return b
	}
	b.connectToArcStart(Pt(cx, cy), radius, startAngle)
	b.appendArcCurves(Pt(cx, cy), radius, startAngle, delta)
	return b
}

// ArcTo appends a straight segment to the tangent point nearest the current
// point, followed by an arc of the given radius tangent to the lines
// current→(x1,y1) and (x1,y1)→(x2,y2) — the standard rounded-corner
// construction.
//
// Degenerate cases fall back to a straight line to (x1, y1): radius ≤ 0, a
// zero-length tangent leg, or colinear tangent lines. With no current point,
// one is established at (x1, y1) and nothing else is drawn.
func (b *PathBuilder) ArcTo(x1, y1, x2, y2, radius float64) *PathBuilder {
	b.ensureUsable()

	p1 := Pt(x1, y1)
	p2 := Pt(x2, y2)

	if !b.hasCurrent {
		b.rawMove(b.apply(p1))
		return b
	}

	p0 := b.commandSpaceCurrent()
	v1 := p0.Sub(p1)
	v2 := p2.Sub(p1)
	l1 := v1.Length()
	l2 := v2.Length()

	if radius <= 0 || l1 == 0 || l2 == 0 || math.Abs(v1.Cross(v2)) < 1e-12 {
		return b.LineTo(x1, y1)
	}

	u1 := v1.Mul(1 / l1)
	u2 := v2.Mul(1 / l2)

	// Half the corner angle at p1; tangent points lie r/tan(half) from p1
	// along each leg, the arc center r/sin(half) along the bisector.
	half := math.Acos(math.Max(-1, math.Min(1, u1.Dot(u2)))) / 2
	dist := radius / math.Tan(half)
	t1 := p1.Add(u1.Mul(dist))
	t2 := p1.Add(u2.Mul(dist))
	center := p1.Add(u1.Add(u2).Normalize().Mul(radius / math.Sin(half)))

	a1 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	a2 := math.Atan2(t2.Y-center.Y, t2.X-center.X)

	// The corner arc is always the minor arc from t1 to t2.
	sweep := math.Mod(a2-a1, twoPi)
	if sweep > math.Pi {
		sweep -= twoPi
	} else if sweep < -math.Pi {
		sweep += twoPi
	}

	b.rawLine(b.apply(t1))
	b.appendArcCurves(center, radius, a1, sweep)
	return b
}

// connectToArcStart draws a line (or move) to the arc's starting point.
func (b *PathBuilder) connectToArcStart(center Point, radius, startAngle float64) {
	sin, cos := math.Sincos(startAngle)
	p := b.apply(Point{X: center.X + radius*cos, Y: center.Y + radius*sin})
	if b.hasCurrent {
		b.rawLine(p)
	} else {
		b.rawMove(p)
	}
}

// appendArcCurves lowers an arc sweep into cubic Bézier segments of at most
// 90° each. The current point must already be at the arc's start point.
func (b *PathBuilder) appendArcCurves(center Point, radius, startAngle, sweep float64) {
	if sweep == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)

	for i := 0; i < n; i++ {
		a1 := startAngle + float64(i)*step
		a2 := a1 + step

		// Control-point offset for a cubic approximation of the segment;
		// direction-aware through the sign of sin(a2-a1).
		tanHalf := math.Tan((a2 - a1) / 2)
		alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*tanHalf*tanHalf) - 1) / 3

		sin1, cos1 := math.Sincos(a1)
		sin2, cos2 := math.Sincos(a2)

		from := Point{X: center.X + radius*cos1, Y: center.Y + radius*sin1}
		to := Point{X: center.X + radius*cos2, Y: center.Y + radius*sin2}
		c1 := Point{X: from.X - alpha*radius*sin1, Y: from.Y + alpha*radius*cos1}
		c2 := Point{X: to.X + alpha*radius*sin2, Y: to.Y - alpha*radius*cos2}

		b.rawCubic(b.apply(c1), b.apply(c2), b.apply(to))
	}
}

// --- Shapes ---

// Rect appends a rectangle as an independent closed subpath.
func (b *PathBuilder) Rect(x, y, width, height float64) *PathBuilder {
	b.ensureUsable()
	b.rawMove(b.apply(Pt(x, y)))
	b.rawLine(b.apply(Pt(x+width, y)))
	b.rawLine(b.apply(Pt(x+width, y+height)))
	b.rawLine(b.apply(Pt(x, y+height)))
	b.rawClose()
	return b
}

// RoundedRect appends a rectangle with uniformly rounded corners as an
// independent closed subpath.
func (b *PathBuilder) RoundedRect(x, y, width, height, cornerRadius float64) *PathBuilder {
	return b.RoundedRectAsymmetric(x, y, width, height, cornerRadius, cornerRadius)
}

// RoundedRectAsymmetric appends a rectangle with elliptical corners of
// horizontal radius rx and vertical radius ry as an independent closed
// subpath. Radii are clamped to half the rectangle's extent; non-positive
// radii degrade to a plain rectangle.
func (b *PathBuilder) RoundedRectAsymmetric(x, y, width, height, rx, ry float64) *PathBuilder {
	b.ensureUsable()

	rx = math.Min(rx, width/2)
	ry = math.Min(ry, height/2)
	if rx <= 0 || ry <= 0 {
		return b.Rect(x, y, width, height)
	}

	kx := kappa * rx
	ky := kappa * ry

	b.rawMove(b.apply(Pt(x+rx, y)))
	b.rawLine(b.apply(Pt(x+width-rx, y)))
	b.rawCubic(b.apply(Pt(x+width-rx+kx, y)), b.apply(Pt(x+width, y+ry-ky)), b.apply(Pt(x+width, y+ry)))
	b.rawLine(b.apply(Pt(x+width, y+height-ry)))
	b.rawCubic(b.apply(Pt(x+width, y+height-ry+ky)), b.apply(Pt(x+width-rx+kx, y+height)), b.apply(Pt(x+width-rx, y+height)))
	b.rawLine(b.apply(Pt(x+rx, y+height)))
	b.rawCubic(b.apply(Pt(x+rx-kx, y+height)), b.apply(Pt(x, y+height-ry+ky)), b.apply(Pt(x, y+height-ry)))
	b.rawLine(b.apply(Pt(x, y+ry)))
	b.rawCubic(b.apply(Pt(x, y+ry-ky)), b.apply(Pt(x+rx-kx, y)), b.apply(Pt(x+rx, y)))
	b.rawClose()
	return b
}

// Ellipse appends an ellipse inscribed in the given bounding rectangle as an
// independent closed subpath. A non-positive width or height is a no-op.
func (b *PathBuilder) Ellipse(x, y, width, height float64) *PathBuilder {
	b.ensureUsable()
	if width <= 0 || height <= 0 {
		return b
	}

	rx := width / 2
	ry := height / 2
	cx := x + rx
	cy := y + ry
	kx := kappa * rx
	ky := kappa * ry

	b.rawMove(b.apply(Pt(cx+rx, cy)))
	b.rawCubic(b.apply(Pt(cx+rx, cy+ky)), b.apply(Pt(cx+kx, cy+ry)), b.apply(Pt(cx, cy+ry)))
	b.rawCubic(b.apply(Pt(cx-kx, cy+ry)), b.apply(Pt(cx-rx, cy+ky)), b.apply(Pt(cx-rx, cy)))
	b.rawCubic(b.apply(Pt(cx-rx, cy-ky)), b.apply(Pt(cx-kx, cy-ry)), b.apply(Pt(cx, cy-ry)))
	b.rawCubic(b.apply(Pt(cx+kx, cy-ry)), b.apply(Pt(cx+rx, cy-ky)), b.apply(Pt(cx+rx, cy)))
	b.rawClose()
	return b
}

// Circle appends a circle centered at (cx, cy) with the given diameter,
// defined as an ellipse in a square bounding box. A diameter ≤ 0 is a no-op.
func (b *PathBuilder) Circle(cx, cy, diameter float64) *PathBuilder {
	radius := diameter / 2
	return b.Ellipse(cx-radius, cy-radius, diameter, diameter)
}

// --- Composition ---

// AddPath appends every subpath of an already-finalized path. The other
// path's geometry is treated as resolved and is transformed as a whole by
// the active transform context.
func (b *PathBuilder) AddPath(other *Path) *PathBuilder {
	b.ensureUsable()
	if other == nil {
		return b
	}
	for _, seg := range other.segments {
		switch s := seg.(type) {
		case MoveTo:
			b.rawMove(b.apply(s.Point))
		case LineTo:
			b.rawLine(b.apply(s.Point))
		case QuadTo:
			b.rawQuad(b.apply(s.Control), b.apply(s.Point))
		case CubicTo:
			b.rawCubic(b.apply(s.Control1), b.apply(s.Control2), b.apply(s.Point))
		case Close:
			b.rawClose()
		}
	}
	return b
}

// Lines appends a polyline: a MoveTo to the first point followed by a LineTo
// to each subsequent point. Fewer than two points is a no-op.
func (b *PathBuilder) Lines(points []Point) *PathBuilder {
	b.ensureUsable()
	if len(points) < 2 {
		return b
	}
	b.rawMove(b.apply(points[0]))
	for _, p := range points[1:] {
		b.rawLine(b.apply(p))
	}
	return b
}

// --- Queries and finalization ---

// BoundingBox returns the minimal axis-aligned rectangle enclosing all
// geometry appended so far. It does not consume the builder and can be
// called at any point during construction.
func (b *PathBuilder) BoundingBox() Rect {
	b.ensureUsable()
	return segmentBounds(b.segments)
}

// Build consumes the builder and returns the finalized immutable Path.
// The builder must not be used afterwards; any further call panics.
func (b *PathBuilder) Build() *Path {
	b.ensureUsable()
	b.built = true
	segs := b.segments
	b.segments = nil
	return &Path{
		segments: segs,
		bounds:   segmentBounds(segs),
	}
}
