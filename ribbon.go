package strand

// MinWidth is the narrowest a ribbon ever gets. Tapered ends are clamped to
// it so that the offset polygon never inverts.
const MinWidth = 0.1

// Ribbon is the variable-width outline around a polyline: one left and one
// right offset point per polyline vertex, the cumulative arc length at each
// vertex, and the bounding box of all offset points.
//
// Ribbons are immutable once built. Code that needs different geometry builds
// a new ribbon; it never edits one that may be in use.
type Ribbon struct {
	Left  []Point
	Right []Point
	// Lengths[i] is the arc length of the polyline from its first vertex to
	// vertex i. Lengths[0] is 0 and the sequence is non-decreasing.
	Lengths []float64
	Bounds  Rect
}

// BuildRibbon offsets points by half the local width along the local normal.
//
// Interior vertices use the central difference of their neighbors as the
// tangent, the end vertices the direction to or from their single neighbor.
// Vertices with a degenerate tangent get a zero offset.
//
// Within taper percent of the total length from either end, the width is
// scaled by easing applied to the relative position inside the tapered zone.
// Widths never drop below [MinWidth].
//
// Fewer than two points produce an empty ribbon.
func BuildRibbon(points []Point, width, taper float64, easing Easing) *Ribbon {
	n := len(points)
	if n < 2 {
		return &Ribbon{Bounds: emptyRect}
	}

	lengths := make([]float64, n)
	for i := 1; i < n; i++ {
		lengths[i] = lengths[i-1] + points[i].Distance(points[i-1])
	}
	total := lengths[n-1]
	taperLen := total * taper / 100

	r := &Ribbon{
		Left:    make([]Point, n),
		Right:   make([]Point, n),
		Lengths: lengths,
		Bounds:  emptyRect,
	}
	for i, pt := range points {
		var tangent Vec2
		switch i {
		case 0:
			tangent = points[1].Sub(pt)
		case n - 1:
			tangent = pt.Sub(points[n-2])
		default:
			tangent = points[i+1].Sub(points[i-1])
		}
		normal := tangent.Normalize().Turn90()

		w := width * taperFactor(lengths[i], total, taperLen, easing)
		off := normal.Mul(max(w, MinWidth) / 2)

		r.Left[i] = pt.Translate(off)
		r.Right[i] = pt.Translate(off.Negate())
		r.Bounds = r.Bounds.UnionPoint(r.Left[i]).UnionPoint(r.Right[i])
	}
	return r
}

// taperFactor returns the width multiplier for a vertex at arc length d.
// Where the start and end zones overlap, the narrower factor wins.
func taperFactor(d, total, taperLen float64, easing Easing) float64 {
	if taperLen <= 0 {
		return 1
	}
	f := 1.0
	if d < taperLen {
		f = min(f, easing.Apply(d/taperLen))
	}
	if rest := total - d; rest < taperLen {
		f = min(f, easing.Apply(rest/taperLen))
	}
	return f
}

// IsEmpty reports whether the ribbon has nothing to draw.
func (r *Ribbon) IsEmpty() bool {
	return r == nil || len(r.Lengths) < 2
}

// Len returns the number of vertices.
func (r *Ribbon) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Lengths)
}

// TotalLength returns the arc length of the whole ribbon.
func (r *Ribbon) TotalLength() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Lengths[len(r.Lengths)-1]
}

// WidthAt returns the distance between the left and right offset of vertex i.
func (r *Ribbon) WidthAt(i int) float64 {
	return r.Left[i].Distance(r.Right[i])
}
