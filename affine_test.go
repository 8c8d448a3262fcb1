package strand

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
}

func TestAffineCompose(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{1, 2, 3, 4, 5, 6}
	b := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	inv := b.Invert()

	for _, p := range []Point{{1, 0}, {0, 1}, {1, 1}, {-7, 2.5}} {
		assertNear(t, p.Transform(a.Mul(b)), p.Transform(b).Transform(a), epsilon)
		assertNear(t, p.Transform(b).Transform(inv), p, epsilon)
		assertNear(t, p.Transform(inv).Transform(b), p, epsilon)
	}
}

func TestRotateAbout(t *testing.T) {
	const epsilon = 1e-9
	c := Pt(50, 50)
	aff := RotateAbout(math.Pi/2, c)
	assertNear(t, c.Transform(aff), c, epsilon)
	assertNear(t, Pt(60, 50).Transform(aff), Pt(50, 60), epsilon)
	assertNear(t, Pt(60, 50).Transform(aff.Invert()), Pt(50, 40), epsilon)
	got := aff.Mul(aff.Invert()).Coefficients()
	want := Identity.Coefficients()
	for i := range got {
		assertNearFloat(t, got[i], want[i], epsilon)
	}
}

func TestReflection(t *testing.T) {
	const epsilon = 1e-9
	for _, tt := range []struct {
		through Point
		dir     Vec2
		want    Affine
	}{
		{Pt(0, 0), Vec(1, 0), Affine{1, 0, 0, -1, 0, 0}},
		{Pt(0, 0), Vec(0, 1), Affine{-1, 0, 0, 1, 0, 0}},
		{Pt(0, 0), Vec(1, 1), Affine{0, 1, 1, 0, 0, 0}},
		{Pt(0, 0), Vec(-3, -3), Affine{0, 1, 1, 0, 0, 0}},
		{Pt(50, 40), Vec(0, 1), Affine{-1, 0, 0, 1, 100, 0}},
		{Pt(50, 40), Vec(1, 0), Affine{1, 0, 0, -1, 0, 80}},
	} {
		got := Reflect(tt.through, tt.dir).Coefficients()
		want := tt.want.Coefficients()
		for i := range got {
			if math.Abs(got[i]-want[i]) > epsilon {
				t.Errorf("Reflect(%v, %v) = %v, want %v", tt.through, tt.dir, got, want)
				break
			}
		}
	}

	// The line y = x - 1 is fixed, everything else swaps sides.
	aff := Reflect(Pt(1, 0), Vec(1, 1))
	assertNear(t, Pt(1, 0).Transform(aff), Pt(1, 0), epsilon)
	assertNear(t, Pt(4, 3).Transform(aff), Pt(4, 3), epsilon)
	assertNear(t, Pt(2, 2).Transform(aff), Pt(3, 1), epsilon)
	assertNear(t, Pt(10, 7).Transform(Reflect(Pt(50, 40), Vec(0, 1))), Pt(90, 7), epsilon)
}

func TestTransformRectBoundingBox(t *testing.T) {
	r := Rect{0, 0, 10, 20}
	got := Rotate(math.Pi / 2).TransformRectBoundingBox(r)
	const epsilon = 1e-9
	assertNear(t, Pt(got.X0, got.Y0), Pt(-20, 0), epsilon)
	assertNear(t, Pt(got.X1, got.Y1), Pt(0, 10), epsilon)

	diff(t, Rect{5, 5, 15, 25}, Translate(Vec(5, 5)).TransformRectBoundingBox(r))
}
