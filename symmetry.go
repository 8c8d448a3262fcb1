package strand

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSymmetry is returned by [Symmetry.Validate].
var ErrInvalidSymmetry = errors.New("invalid symmetry")

// SymmetryKind selects one of the symmetry families.
type SymmetryKind int

const (
	// A single copy.
	SymmetryNone SymmetryKind = iota
	// Mirrored about the viewport's vertical centerline.
	MirrorX
	// Mirrored about the viewport's horizontal centerline.
	MirrorY
	// Mirrored about both centerlines, for four copies.
	MirrorXY
	// Copies rotated about the viewport's center.
	Radial
	// Copies translated on an infinite square lattice.
	Grid
)

var symmetryNames = [...]string{
	SymmetryNone: "none",
	MirrorX:      "mirror-x",
	MirrorY:      "mirror-y",
	MirrorXY:     "mirror-xy",
	Radial:       "radial",
	Grid:         "grid",
}

func (k SymmetryKind) String() string {
	if k < 0 || int(k) >= len(symmetryNames) {
		return "SymmetryKind(invalid)"
	}
	return symmetryNames[k]
}

// ParseSymmetryKind returns the kind with the given name, as produced by
// [SymmetryKind.String].
func ParseSymmetryKind(s string) (SymmetryKind, bool) {
	for i, name := range symmetryNames {
		if name == s {
			return SymmetryKind(i), true
		}
	}
	return SymmetryNone, false
}

// Symmetry describes how a stroke is replicated. Copies and PhaseShift only
// apply to [Radial], Gap only to [Grid].
type Symmetry struct {
	Kind SymmetryKind
	// Number of radial copies, at least 2.
	Copies int
	// Phase offset, in animation cycles, between successive radial copies.
	PhaseShift float64
	// Lattice spacing in pixels, greater than 0. However small the gap, at
	// most MaxGridSpan offsets per axis are used.
	Gap float64
}

// Validate reports whether the parameters required by s's kind are in range.
func (s Symmetry) Validate() error {
	switch s.Kind {
	case SymmetryNone, MirrorX, MirrorY, MirrorXY:
		return nil
	case Radial:
		if s.Copies < 2 {
			return fmt.Errorf("%w: radial symmetry needs at least 2 copies, got %d", ErrInvalidSymmetry, s.Copies)
		}
		return nil
	case Grid:
		if !(s.Gap > 0) {
			return fmt.Errorf("%w: grid gap must be positive, got %g", ErrInvalidSymmetry, s.Gap)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidSymmetry, s.Kind)
	}
}

// Instance is one copy of a stroke: the transform that places it and the
// phase offset its animation runs at.
type Instance struct {
	Transform   Affine
	PhaseOffset float64
}

func identityInstance() []Instance {
	return []Instance{{Transform: Identity}}
}

// Instances enumerates the copies of a stroke whose untransformed bounding
// box is bounds, on a viewport. pad widens the viewport for the grid
// intersection test, to account for caps and stroke width.
//
// The result is never empty. Strokes with empty bounds, invalid parameters
// and unknown kinds yield a single identity instance.
func (s Symmetry) Instances(viewport, bounds Rect, pad float64) []Instance {
	if s.Validate() != nil {
		return identityInstance()
	}
	center := viewport.Center()
	vertical := Vec(0, 1)
	horizontal := Vec(1, 0)

	switch s.Kind {
	case SymmetryNone:
		return identityInstance()
	case MirrorX:
		return []Instance{
			{Transform: Identity},
			{Transform: Reflect(center, vertical)},
		}
	case MirrorY:
		return []Instance{
			{Transform: Identity},
			{Transform: Reflect(center, horizontal)},
		}
	case MirrorXY:
		return []Instance{
			{Transform: Identity},
			{Transform: Reflect(center, vertical)},
			{Transform: Reflect(center, horizontal)},
			{Transform: Reflect(center, vertical).Mul(Reflect(center, horizontal))},
		}
	case Radial:
		if bounds.IsEmpty() {
			return identityInstance()
		}
		out := make([]Instance, s.Copies)
		step := 2 * math.Pi / float64(s.Copies)
		for i := range out {
			out[i] = Instance{
				Transform:   RotateAbout(float64(i)*step, center),
				PhaseOffset: float64(i) * s.PhaseShift,
			}
		}
		return out
	case Grid:
		if bounds.IsEmpty() {
			return identityInstance()
		}
		return s.gridInstances(viewport.Inflate(pad, pad), bounds)
	default:
		panic(fmt.Sprintf("unhandled symmetry kind %d", s.Kind))
	}
}

// gridInstances returns a translation for every lattice offset (x·gap, y·gap)
// at which bounds still intersects area.
func (s Symmetry) gridInstances(area, bounds Rect) []Instance {
	x0, x1 := latticeRange(area.X0, area.X1, bounds.X0, bounds.X1, s.Gap)
	y0, y1 := latticeRange(area.Y0, area.Y1, bounds.Y0, bounds.Y1, s.Gap)
	if x0 > x1 || y0 > y1 {
		// The stroke cannot be seen at any offset. Keep it hit-testable and
		// drawable where it is.
		return identityInstance()
	}
	out := make([]Instance, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			off := Vec(float64(x)*s.Gap, float64(y)*s.Gap)
			out = append(out, Instance{Transform: Translate(off)})
		}
	}
	return out
}

// MaxGridSpan is the largest number of lattice offsets a [Grid] symmetry
// uses along either axis, bounding it to MaxGridSpan² instances.
const MaxGridSpan = 64

// maxLattice bounds lattice offsets so that they convert to int on every
// platform.
const maxLattice = 1 << 30

// latticeRange returns the inclusive range of integers k for which the
// interval [b0+k·gap, b1+k·gap] intersects [a0, a1]. Ranges longer than
// MaxGridSpan are cut down to the MaxGridSpan offsets around the one nearest
// zero, the stroke's own position.
func latticeRange(a0, a1, b0, b1, gap float64) (int, int) {
	lo := math.Ceil((a0 - b1) / gap)
	hi := math.Floor((a1 - b0) / gap)
	if !(lo <= hi) {
		return 1, 0
	}
	lo = min(max(lo, -maxLattice), maxLattice)
	hi = min(max(hi, -maxLattice), maxLattice)
	if hi-lo >= MaxGridSpan {
		c := min(max(0, lo), hi)
		lo = min(max(c-MaxGridSpan/2, lo), hi-MaxGridSpan+1)
		hi = lo + MaxGridSpan - 1
	}
	return int(lo), int(hi)
}

// Visible reports whether the copy of a shape whose untransformed bounds,
// grown by pad, are bounds intersects viewport. Consumers use it to skip
// copies that would be drawn entirely off-screen.
func (inst Instance) Visible(bounds Rect, pad float64, viewport Rect) bool {
	if bounds.IsEmpty() {
		return false
	}
	return inst.Transform.TransformRectBoundingBox(bounds.Inflate(pad, pad)).Overlaps(viewport)
}
