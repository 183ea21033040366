package sprig

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultFlattenTolerance is the maximum distance a flattened polyline may
// deviate from the true curve, in pixels.
const DefaultFlattenTolerance = 0.25

// FlattenPath converts a path's curves into per-subpath polylines using
// adaptive De Casteljau subdivision. Each subpath yields one point slice; a
// closed subpath repeats its first point at the end. A tolerance ≤ 0 selects
// DefaultFlattenTolerance.
func FlattenPath(p *Path, tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = DefaultFlattenTolerance
	}

	var subpaths [][]Point
	var pts []Point
	var current Point

	flush := func() {
		if len(pts) > 0 {
			subpaths = append(subpaths, pts)
			pts = nil
		}
	}

	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			flush()
			current = s.Point
			pts = append(pts, current)
		case LineTo:
			current = s.Point
			pts = append(pts, current)
		case QuadTo:
			flattenQuad(current, s.Control, s.Point, tolerance, &pts)
			current = s.Point
		case CubicTo:
			flattenCubic(current, s.Control1, s.Control2, s.Point, tolerance, &pts)
			current = s.Point
		case Close:
			if len(pts) > 0 {
				current = pts[0]
				pts = append(pts, current)
			}
		}
	}
	flush()
	return subpaths
}

// flattenQuad recursively subdivides a quadratic Bézier until the control
// point is within tolerance of the chord, appending endpoints to pts.
func flattenQuad(p0, p1, p2 Point, tolerance float64, pts *[]Point) {
	if distanceToLine(p1, p0, p2) < tolerance {
		*pts = append(*pts, p2)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	mid := q0.Lerp(q1, 0.5)
	flattenQuad(p0, q0, mid, tolerance, pts)
	flattenQuad(mid, q1, p2, tolerance, pts)
}

// flattenCubic recursively subdivides a cubic Bézier until both control
// points are within tolerance of the chord, appending endpoints to pts.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, pts *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		*pts = append(*pts, p3)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	mid := r0.Lerp(r1, 0.5)
	flattenCubic(p0, q0, r0, mid, tolerance, pts)
	flattenCubic(mid, r1, q2, p3, tolerance, pts)
}

// distanceToLine returns the perpendicular distance from p to segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 < 1e-20 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / abLen2
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}

// PathMesh flattens a path and fan-triangulates each subpath of at least
// three points into ebiten vertices tinted with the given color. Fan
// triangulation assumes convex subpaths; N points yield 3*(N-2) indices.
// The vertices reference a 1x1 white source image (see WhitePixel).
func PathMesh(p *Path, tint Color, tolerance float64) ([]ebiten.Vertex, []uint16) {
	var verts []ebiten.Vertex
	var inds []uint16

	for _, sub := range FlattenPath(p, tolerance) {
		// Drop the closing duplicate point before triangulating.
		if len(sub) > 1 && sub[0] == sub[len(sub)-1] {
			sub = sub[:len(sub)-1]
		}
		if len(sub) < 3 {
			continue
		}
		base := uint16(len(verts))
		for _, pt := range sub {
			verts = append(verts, ebiten.Vertex{
				DstX:   float32(pt.X),
				DstY:   float32(pt.Y),
				ColorR: float32(tint.R),
				ColorG: float32(tint.G),
				ColorB: float32(tint.B),
				ColorA: float32(tint.A),
			})
		}
		for i := 2; i < len(sub); i++ {
			inds = append(inds, base, base+uint16(i-1), base+uint16(i))
		}
	}
	return verts, inds
}

// TransformVertices applies an affine transform and color tint to src
// vertices, writing the result into dst. dst must be at least len(src).
func TransformVertices(dst, src []ebiten.Vertex, t Transform, tint Color) {
	a, b, c, d, tx, ty := t[0], t[1], t[2], t[3], t[4], t[5]
	cr := float32(tint.R)
	cg := float32(tint.G)
	cb := float32(tint.B)
	ca := float32(tint.A)

	for i := range src {
		s := &src[i]
		ox := float64(s.DstX)
		oy := float64(s.DstY)
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr,
			ColorG: s.ColorG * cg,
			ColorB: s.ColorB * cb,
			ColorA: s.ColorA * ca,
		}
	}
}

// --- White pixel singleton (lazy; no sync.Once — sprig is single-threaded) ---

var whitePixelImage *ebiten.Image

// WhitePixel returns a shared 1x1 white image used as the source for
// untextured path meshes and particles.
func WhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}
