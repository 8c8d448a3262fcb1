package strand

// Cap defines the shape to be drawn at the ends of a stroke.
type Cap int

const (
	// Flat cap.
	ButtCap Cap = iota
	// Square cap extending by half the local width.
	SquareCap
	// Rounded cap with radius equal to half the local width.
	RoundCap
)

var capNames = [...]string{
	ButtCap:   "butt",
	SquareCap: "square",
	RoundCap:  "round",
}

func (c Cap) String() string {
	if c < 0 || int(c) >= len(capNames) {
		return "Cap(invalid)"
	}
	return capNames[c]
}

// ParseCap returns the cap with the given name, as produced by [Cap.String].
func ParseCap(s string) (Cap, bool) {
	for i, name := range capNames {
		if name == s {
			return Cap(i), true
		}
	}
	return RoundCap, false
}

// CapShape is the geometry of a single cap.
//
// Round caps are circles described by Center and Radius. Square caps are the
// quadrilateral Corners: the boundary's left point, left pushed outward,
// right pushed outward, and the boundary's right point.
type CapShape struct {
	Cap     Cap
	Center  Point
	Radius  float64
	Corners [4]Point
}

// newCapShape builds the cap for the boundary pair (left, right). dir is +1
// for caps that extend along the path's forward direction and −1 for caps
// that extend against it.
func newCapShape(c Cap, left, right Point, dir float64) (CapShape, bool) {
	d := left.Sub(right)
	radius := d.Hypot() / 2
	if radius == 0 {
		return CapShape{}, false
	}
	shape := CapShape{
		Cap:    c,
		Center: left.Midpoint(right),
		Radius: radius,
	}
	switch c {
	case ButtCap:
		return CapShape{}, false
	case RoundCap:
		return shape, true
	case SquareCap:
		// left − right is the normal scaled by the width; turning it back
		// by 90° recovers the forward tangent.
		out := Vec(d.Y, -d.X).Normalize().Mul(dir * radius)
		shape.Corners = [4]Point{
			left,
			left.Translate(out),
			right.Translate(out),
			right,
		}
		return shape, true
	default:
		return CapShape{}, false
	}
}
