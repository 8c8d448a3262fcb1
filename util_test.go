package strand

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertNearFloat(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if d := math.Abs(got - want); d > epsilon {
		t.Fatalf("got %g, expected %g", got, want)
	}
}

// polyline returns n points spaced step apart along the positive x axis.
func polyline(n int, step float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Pt(float64(i)*step, 0)
	}
	return pts
}
