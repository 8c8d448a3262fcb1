package strand

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSimplifyKeepsCorner(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}}
	got := Canonicalize(pts, 1, 0)
	diff(t, pts, got)

	r := BuildRibbon(got, 6, 0, Linear)
	if l := r.TotalLength(); l != 20 {
		t.Errorf("got total length %v, want 20", l)
	}
}

func TestSimplifyDropsCorner(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}}
	diff(t, []Point{{0, 0}, {10, 10}}, Canonicalize(pts, 100, 0))
}

func TestSimplifyCollinear(t *testing.T) {
	diff(t, []Point{{0, 0}, {40, 0}}, Simplify(polyline(5, 10), 0.5))
}

func TestSimplifyZeroLengthChord(t *testing.T) {
	// A stroke that returns to where it started has a degenerate chord. Its
	// turning point must be judged by its distance from the start.
	pts := []Point{{0, 0}, {5, 0}, {0, 0}}
	diff(t, pts, Simplify(pts, 1))
	diff(t, []Point{{0, 0}, {0, 0}}, Simplify(pts, 10))
}

func TestSimplifyRecursion(t *testing.T) {
	// Points close to the sides of the tent are dropped, its apex is kept.
	pts := []Point{{0, 0}, {5, 2.6}, {10, 5}, {15, 2.6}, {20, 0}}
	diff(t, []Point{{0, 0}, {10, 5}, {20, 0}}, Simplify(pts, 1))
}

func TestSimplifyDoesNotAlias(t *testing.T) {
	for _, tol := range []float64{0, 1} {
		pts := []Point{{0, 0}, {10, 0}, {10, 10}}
		orig := slices.Clone(pts)
		got := Simplify(pts, tol)
		got[0] = Pt(-1, -1)
		diff(t, orig, pts)
	}
}

func TestSmooth(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}}
	want := []Point{{0, 0}, {2.5, 0}, {7.5, 0}, {10, 2.5}, {10, 7.5}, {10, 10}}
	diff(t, want, Smooth(pts, 1))

	for n := range 4 {
		got := Smooth(pts, n)
		if wantLen := len(pts) << n; len(got) != wantLen {
			t.Errorf("%d iterations: got %d points, want %d", n, len(got), wantLen)
		}
		if got[0] != pts[0] || got[len(got)-1] != pts[len(pts)-1] {
			t.Errorf("%d iterations: endpoints moved: %v", n, got)
		}
	}

	// Too few points to have a corner.
	two := []Point{{0, 0}, {10, 0}}
	diff(t, two, Smooth(two, 3))
}

func TestCanonicalizeDeterministic(t *testing.T) {
	raw := []Point{{0, 0}, {3, 1}, {7, -2}, {12, 4}, {12.5, 4.1}, {20, 0}, {25, 9}}
	a := Canonicalize(raw, 0.5, 2)
	b := Canonicalize(slices.Clone(raw), 0.5, 2)
	diff(t, a, b)

	// Fractional smoothing counts are truncated.
	diff(t, Canonicalize(raw, 0.5, 1), Canonicalize(raw, 0.5, 1.9))
}

func TestCanonicalizeIdempotent(t *testing.T) {
	raw := []Point{{0, 0}, {3, 1}, {7, -2}, {12, 4}, {12.5, 4.1}, {20, 0}, {25, 9}, {31, 8.5}, {40, 12}}
	// Canonicalizing with neither simplification nor smoothing must not
	// change what a later pass produces.
	plain := Canonicalize(raw, 0, 0)
	diff(t, raw, plain)
	for _, tt := range []struct {
		simplification float64
		smoothing      float64
	}{
		{0, 0},
		{0.5, 0},
		{0, 1},
		{0.5, 2},
		{3, 1.5},
		{1, 2.9},
		{100, 4},
	} {
		want := Canonicalize(raw, tt.simplification, tt.smoothing)
		got := Canonicalize(plain, tt.simplification, tt.smoothing)
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("simplification %g, smoothing %g: (-want +got)\n%s", tt.simplification, tt.smoothing, d)
		}
	}
}

func TestCanonicalizeEmpty(t *testing.T) {
	if got := Canonicalize(nil, 1, 2); len(got) != 0 {
		t.Errorf("got %v, want no points", got)
	}
	diff(t, []Point{{4, 2}}, Canonicalize([]Point{{4, 2}}, 1, 2))
}
