package strand

import (
	"math"
)

// Affine is a 2D affine transform with coefficients (a, b, c, d, e, f),
// mapping (x, y) to
//
//	x' = a·x + c·y + e
//	y' = b·x + d·y + f
//
// The order matches SVG's matrix(a b c d e f), so the coefficients can be
// written out as they are. Every copy produced by a [Symmetry] is an Affine.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity leaves points where they are.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translate returns the transform that moves points by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate returns the rotation by th radians about the origin. Positive
// angles turn +x toward +y, which is clockwise on a y-down screen.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout returns the rotation by th radians about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c).Mul(Rotate(th)).Mul(Translate(c.Negate()))
}

// Reflect returns the reflection across the line through pt with the given
// direction.
func Reflect(pt Point, direction Vec2) Affine {
	// Householder reflection about the line's unit normal.
	n := Vec(direction.Y, -direction.X).Normalize()
	xy := -2 * n.X * n.Y
	aff := Affine{
		1 - 2*n.X*n.X, xy,
		xy, 1 - 2*n.Y*n.Y,
		pt.X, pt.Y,
	}
	return aff.Mul(Translate(Vec2(pt).Negate()))
}

// Coefficients returns (a, b, c, d, e, f).
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

// Mul returns the composition that applies o first and then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

func (aff Affine) determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the inverse transform. Singular transforms yield NaNs;
// symmetry transforms are rigid motions and never singular.
func (aff Affine) Invert() Affine {
	inv := 1 / aff.determinant()
	return Affine{
		inv * aff.N3,
		-inv * aff.N1,
		-inv * aff.N2,
		inv * aff.N0,
		inv * (aff.N2*aff.N5 - aff.N3*aff.N4),
		inv * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// IsIdentity reports whether aff is exactly [Identity].
func (aff Affine) IsIdentity() bool {
	return aff == Identity
}

// Translation returns the offset aff applies to the origin.
func (aff Affine) Translation() Vec2 {
	return Vec(aff.N4, aff.N5)
}

// TransformRectBoundingBox returns the axis-aligned bounds of rect after
// transforming its four corners.
func (aff Affine) TransformRectBoundingBox(rect Rect) Rect {
	out := emptyRect
	for _, pt := range [...]Point{
		{rect.X0, rect.Y0},
		{rect.X1, rect.Y0},
		{rect.X0, rect.Y1},
		{rect.X1, rect.Y1},
	} {
		out = out.UnionPoint(pt.Transform(aff))
	}
	return out
}
