package strand

import (
	"fmt"
	"math"
)

// Point is a position in canvas pixel space, with y growing downward.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate moves pt by v.
func (pt Point) Translate(v Vec2) Point {
	return Point{pt.X + v.X, pt.Y + v.Y}
}

// Transform maps pt through aff.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{pt.X - o.X, pt.Y - o.Y}
}

// Lerp returns the point a fraction t of the way from pt to o.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

func (pt Point) Midpoint(o Point) Point {
	return pt.Lerp(o, 0.5)
}

func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Hypot2()
}

// IsNaN reports whether either coordinate is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
