package strand

import (
	"math"
	"testing"
)

func TestRibbonTaper(t *testing.T) {
	r := BuildRibbon(polyline(5, 25), 10, 50, Linear)
	want := []float64{MinWidth, 5, 10, 5, MinWidth}
	for i, w := range want {
		assertNearFloat(t, r.WidthAt(i), w, 1e-12)
	}
}

func TestRibbonTaperOverlap(t *testing.T) {
	// With 100% taper both zones cover the whole stroke; the narrower factor
	// wins.
	r := BuildRibbon(polyline(3, 50), 10, 100, Linear)
	assertNearFloat(t, r.WidthAt(1), 5, 1e-12)

	r = BuildRibbon(polyline(5, 25), 10, 100, EaseIn)
	// At a quarter of the way, the start zone gives 0.25² and the end zone
	// 0.75².
	assertNearFloat(t, r.WidthAt(1), 10*0.0625, 1e-12)
}

func TestRibbonOffsets(t *testing.T) {
	r := BuildRibbon(polyline(5, 10), 6, 0, Linear)
	for i := range r.Len() {
		x := float64(i) * 10
		diff(t, Pt(x, 3), r.Left[i])
		diff(t, Pt(x, -3), r.Right[i])
	}
	diff(t, Rect{0, -3, 40, 3}, r.Bounds)
	if l := r.TotalLength(); l != 40 {
		t.Errorf("got total length %v, want 40", l)
	}
}

func TestRibbonLengthsMonotonic(t *testing.T) {
	raw := []Point{{0, 0}, {3, 1}, {3, 1}, {7, -2}, {12, 4}, {12.5, 4.1}, {20, 0}, {25, 9}}
	r := BuildRibbon(Canonicalize(raw, 0.5, 2), 4, 20, Sine)
	if r.Lengths[0] != 0 {
		t.Errorf("first length is %v, want 0", r.Lengths[0])
	}
	for i := 1; i < r.Len(); i++ {
		if r.Lengths[i] < r.Lengths[i-1] {
			t.Fatalf("lengths decrease at %d: %v", i, r.Lengths)
		}
	}
	for i := range r.Len() {
		if !(r.WidthAt(i) >= MinWidth-1e-12) {
			t.Errorf("vertex %d has width %v, narrower than the minimum", i, r.WidthAt(i))
		}
		if !r.Bounds.Inflate(1e-9, 1e-9).Contains(r.Left[i]) || !r.Bounds.Inflate(1e-9, 1e-9).Contains(r.Right[i]) {
			t.Errorf("vertex %d lies outside the bounds %v", i, r.Bounds)
		}
	}
}

func TestRibbonDegenerate(t *testing.T) {
	for _, pts := range [][]Point{nil, {{1, 2}}} {
		r := BuildRibbon(pts, 6, 0, Linear)
		if !r.IsEmpty() {
			t.Errorf("ribbon of %v isn't empty", pts)
		}
		if !r.Bounds.IsEmpty() {
			t.Errorf("ribbon of %v has bounds %v", pts, r.Bounds)
		}
		if l := r.TotalLength(); l != 0 {
			t.Errorf("ribbon of %v has length %v", pts, l)
		}
	}

	// Coincident points have no direction and get a zero offset.
	r := BuildRibbon([]Point{{0, 0}, {0, 0}}, 6, 0, Linear)
	for i := range r.Len() {
		if r.Left[i].IsNaN() || r.Right[i].IsNaN() {
			t.Fatalf("NaN offset at vertex %d", i)
		}
	}
	diff(t, Pt(0, 0), r.Left[0])
	if r.TotalLength() != 0 || math.IsNaN(r.TotalLength()) {
		t.Errorf("got total length %v, want 0", r.TotalLength())
	}
}
