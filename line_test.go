package strand

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	epsilon := 1e-9
	if d := math.Abs(l.Length() - want); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
	assertNear(t, l.Eval(0.5), Pt(0.5, 0.5), epsilon)
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	tests := []struct {
		pt     Point
		distSq float64
		t      float64
	}{
		{Pt(5, 3), 9, 0.5},
		{Pt(-3, 4), 25, 0},
		{Pt(13, 4), 25, 1},
		{Pt(10, 0), 0, 1},
	}
	for _, tt := range tests {
		d, pt := l.Nearest(tt.pt)
		if d != tt.distSq || pt != tt.t {
			t.Errorf("Nearest(%v) = (%v, %v), want (%v, %v)", tt.pt, d, pt, tt.distSq, tt.t)
		}
	}

	// Degenerate segments measure to their start.
	d, _ := Line{Pt(1, 1), Pt(1, 1)}.Nearest(Pt(4, 5))
	if d != 25 {
		t.Errorf("got %v, want 25", d)
	}
}

func TestLineDistance(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	// The distance is to the infinite line, not the segment.
	if d := l.distance(Pt(20, -3)); d != 3 {
		t.Errorf("got %v, want 3", d)
	}
	if d := (Line{Pt(1, 1), Pt(1, 1)}).distance(Pt(4, 5)); d != 5 {
		t.Errorf("got %v, want 5", d)
	}
}
