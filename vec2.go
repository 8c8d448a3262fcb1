package strand

import (
	"fmt"
	"math"
)

// Vec2 is a displacement, such as a tangent or a ribbon offset.
type Vec2 struct {
	X, Y float64
}

// Vec is shorthand for Vec2{x, y}.
func Vec(x, y float64) Vec2 {
	return Vec2{x, y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Negate() Vec2 { return Vec2{-v.X, -v.Y} }

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared length of v.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Normalize scales v to unit length. Vectors shorter than 1e-12 become the
// zero vector, so coincident points get a zero offset rather than NaN.
func (v Vec2) Normalize() Vec2 {
	h := v.Hypot()
	if h < 1e-12 {
		return Vec2{}
	}
	return v.Mul(1 / h)
}

// Turn90 returns ⟨-y, x⟩, a clockwise quarter turn on a y-down screen.
func (v Vec2) Turn90() Vec2 {
	return Vec2{-v.Y, v.X}
}
