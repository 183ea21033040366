package sprig

import "math"

// Transform is a 2D affine transformation matrix.
// Layout: [a, b, c, d, tx, ty] representing:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// Where a, d carry scale, b, c carry rotation/skew, and tx, ty translation.
// The zero value is NOT the identity; use Identity.
type Transform [6]float64

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation transform.
func Translate(tx, ty float64) Transform {
	return Transform{1, 0, 0, 1, tx, ty}
}

// Scale returns a scale transform.
func Scale(sx, sy float64) Transform {
	return Transform{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a rotation transform (angle in radians, measured from the
// positive x-axis).
func Rotate(radians float64) Transform {
	sin, cos := math.Sincos(radians)
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// Shear returns a shear transform with the given x and y shear angles
// (radians).
func Shear(sx, sy float64) Transform {
	return Transform{1, math.Tan(sy), math.Tan(sx), 1, 0, 0}
}

// Mul multiplies this transform by other: result = t * other.
// This applies other first, then t.
func (t Transform) Mul(other Transform) Transform {
	return Transform{
		t[0]*other[0] + t[2]*other[1],
		t[1]*other[0] + t[3]*other[1],
		t[0]*other[2] + t[2]*other[3],
		t[1]*other[2] + t[3]*other[3],
		t[0]*other[4] + t[2]*other[5] + t[4],
		t[1]*other[4] + t[3]*other[5] + t[5],
	}
}

// Invert returns the inverse transform.
// Returns the identity if the transform is singular (determinant ≈ 0).
func (t Transform) Invert() Transform {
	det := t[0]*t[3] - t[2]*t[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity()
	}
	invDet := 1.0 / det
	a := t[3] * invDet
	b := -t[1] * invDet
	c := -t[2] * invDet
	d := t[0] * invDet
	return Transform{
		a, b, c, d,
		-(a*t[4] + c*t[5]),
		-(b*t[4] + d*t[5]),
	}
}

// Apply applies the transform to a point.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t[0]*p.X + t[2]*p.Y + t[4],
		Y: t[1]*p.X + t[3]*p.Y + t[5],
	}
}

// ApplyRect transforms a rectangle and returns the axis-aligned bounding box
// of its four transformed corners.
func (t Transform) ApplyRect(r Rect) Rect {
	p0 := t.Apply(Point{r.X, r.Y})
	p1 := t.Apply(Point{r.X + r.Width, r.Y})
	p2 := t.Apply(Point{r.X + r.Width, r.Y + r.Height})
	p3 := t.Apply(Point{r.X, r.Y + r.Height})

	minX := math.Min(p0.X, math.Min(p1.X, math.Min(p2.X, p3.X)))
	minY := math.Min(p0.Y, math.Min(p1.Y, math.Min(p2.Y, p3.Y)))
	maxX := math.Max(p0.X, math.Max(p1.X, math.Max(p2.X, p3.X)))
	maxY := math.Max(p0.Y, math.Max(p1.Y, math.Max(p2.Y, p3.Y)))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Lerp interpolates each coefficient toward other. Used by transform-valued
// animations, which interpolate component-wise.
func (t Transform) Lerp(other Transform, f float64) Transform {
	var out Transform
	for i := range t {
		out[i] = t[i] + (other[i]-t[i])*f
	}
	return out
}
