package strand

import "math"

// Line is the straight segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Eval returns the point at parameter t, where 0 is P0 and 1 is P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest finds the point on the segment closest to pt. It returns that
// point's parameter t in [0, 1] and its squared distance to pt. A segment
// of zero length reports P0.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	proj := d.Dot(pt.Sub(l.P0))
	switch lenSq := d.Hypot2(); {
	case proj <= 0:
		return pt.DistanceSquared(l.P0), 0
	case proj >= lenSq:
		return pt.DistanceSquared(l.P1), 1
	default:
		t = proj / lenSq
		return pt.DistanceSquared(l.Eval(t)), t
	}
}

// distance is the perpendicular distance from pt to the infinite line
// through l. A segment of zero length measures to P0 instead.
func (l Line) distance(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	n := d.Hypot()
	if n == 0 {
		return pt.Distance(l.P0)
	}
	return math.Abs(d.Cross(pt.Sub(l.P0))) / n
}
