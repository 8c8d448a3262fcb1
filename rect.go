package strand

import (
	"math"
)

// Rect is an axis-aligned box from (X0, Y0) to (X1, Y1). Bounds computed by
// this package always have X0 ≤ X1 and Y0 ≤ Y1 unless they are empty.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// emptyRect contains nothing. Growing it with UnionPoint yields the bounds of
// the points added.
var emptyRect = Rect{
	X0: math.Inf(1),
	Y0: math.Inf(1),
	X1: math.Inf(-1),
	Y1: math.Inf(-1),
}

// IsEmpty reports whether r holds no points. A degenerate box around a single
// point is not empty.
func (r Rect) IsEmpty() bool {
	return !(r.X0 <= r.X1 && r.Y0 <= r.Y1)
}

// Contains reports whether pt lies in r. The far edges are exclusive.
func (r Rect) Contains(pt Point) bool {
	return r.X0 <= pt.X && pt.X < r.X1 && r.Y0 <= pt.Y && pt.Y < r.Y1
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{0.5 * (r.X0 + r.X1), 0.5 * (r.Y0 + r.Y1)}
}

// UnionPoint grows r to include pt.
func (r Rect) UnionPoint(pt Point) Rect {
	r.X0 = min(r.X0, pt.X)
	r.Y0 = min(r.Y0, pt.Y)
	r.X1 = max(r.X1, pt.X)
	r.Y1 = max(r.Y1, pt.Y)
	return r
}

// Overlaps reports whether r and o share a point; touching edges count.
func (r Rect) Overlaps(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.X0 <= o.X1 && o.X0 <= r.X1 && r.Y0 <= o.Y1 && o.Y0 <= r.Y1
}

// Inflate pads r by dx on the left and right and by dy on the top and bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{r.X0 - dx, r.Y0 - dy, r.X1 + dx, r.Y1 + dy}
}
