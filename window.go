package strand

import (
	"iter"
	"sort"
)

// Boundary is one end of a [Window]: the ribbon's left and right offset
// interpolated at an arc length.
type Boundary struct {
	Left  Point
	Right Point
	// Arc length at which the boundary was interpolated.
	Length float64
	// The boundary lies on the segment from vertex Index to Index+1, at
	// parameter T ∈ [0, 1].
	Index int
	T     float64
}

// Center returns the centerline point of the boundary.
func (b Boundary) Center() Point {
	return b.Left.Midpoint(b.Right)
}

// Window is the portion of a ribbon between two arc lengths. It consists of
// the interpolated boundaries at both ends and the inclusive range First..Last
// of whole vertices that lie strictly between them. First > Last if no
// vertex does.
//
// The renderer, the SVG exporter and the selection highlighter all derive
// their geometry from a Window, which keeps them in agreement about indices
// and interpolation.
type Window struct {
	ribbon *Ribbon
	Start  Boundary
	End    Boundary
	First  int
	Last   int
}

// Window extracts the portion of r between the arc lengths start and end.
// Both are clamped to [0, r.TotalLength()] first. If the ribbon is empty or
// the clamped interval is empty, ok is false and there is nothing to draw.
func (r *Ribbon) Window(start, end float64) (w Window, ok bool) {
	if r.IsEmpty() {
		return Window{}, false
	}
	total := r.TotalLength()
	start = min(max(start, 0), total)
	end = min(max(end, 0), total)
	if !(end > start) {
		return Window{}, false
	}

	w = Window{
		ribbon: r,
		Start:  r.boundary(start),
		End:    r.boundary(end),
	}
	w.First = w.Start.Index + 1
	w.Last = w.End.Index
	// Vertices at the boundaries' arc lengths, including the far ends of
	// zero-length segments, are already represented by the boundaries.
	for w.First <= w.Last && r.Lengths[w.First] <= start {
		w.First++
	}
	for w.Last >= w.First && r.Lengths[w.Last] >= end {
		w.Last--
	}
	return w, true
}

// FullWindow returns the window covering the whole ribbon.
func (r *Ribbon) FullWindow() (Window, bool) {
	return r.Window(0, r.TotalLength())
}

// locate finds the segment containing the arc length and the parameter of
// the arc length on that segment.
func (r *Ribbon) locate(length float64) (int, float64) {
	n := len(r.Lengths)
	// First vertex strictly past length; the segment starts one before it.
	i := sort.Search(n, func(i int) bool { return r.Lengths[i] > length }) - 1
	i = min(max(i, 0), n-2)

	seg := r.Lengths[i+1] - r.Lengths[i]
	if seg <= 0 {
		// Only the clamped final segment can be degenerate here, and length
		// is at or past its end.
		return i, 1
	}
	t := (length - r.Lengths[i]) / seg
	return i, min(max(t, 0), 1)
}

func (r *Ribbon) boundary(length float64) Boundary {
	i, t := r.locate(length)
	return Boundary{
		Left:   r.Left[i].Lerp(r.Left[i+1], t),
		Right:  r.Right[i].Lerp(r.Right[i+1], t),
		Length: length,
		Index:  i,
		T:      t,
	}
}

// Polygon yields the closed outline of the window: the start boundary's left
// point, the left offsets of the inner vertices, the end boundary's left and
// right points, the right offsets of the inner vertices in reverse, and the
// start boundary's right point. The polygon is implicitly closed.
func (w Window) Polygon() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if w.ribbon == nil {
			return
		}
		if !yield(w.Start.Left) {
			return
		}
		for i := w.First; i <= w.Last; i++ {
			if !yield(w.ribbon.Left[i]) {
				return
			}
		}
		if !yield(w.End.Left) || !yield(w.End.Right) {
			return
		}
		for i := w.Last; i >= w.First; i-- {
			if !yield(w.ribbon.Right[i]) {
				return
			}
		}
		yield(w.Start.Right)
	}
}

// Spine yields the centerline of the window, from the start boundary through
// the inner vertices to the end boundary.
func (w Window) Spine() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if w.ribbon == nil {
			return
		}
		if !yield(w.Start.Center()) {
			return
		}
		for i := w.First; i <= w.Last; i++ {
			if !yield(w.ribbon.Left[i].Midpoint(w.ribbon.Right[i])) {
				return
			}
		}
		yield(w.End.Center())
	}
}

// Quad is the piece of a window between two consecutive boundary pairs.
type Quad struct {
	// Left start, left end, right end, right start.
	Points [4]Point
	// Arc length at the middle of the quad.
	Offset float64
}

// Quads yields the window split at every inner vertex. Filling each quad in
// a color sampled at its Offset approximates a gradient along the stroke.
func (w Window) Quads() iter.Seq[Quad] {
	return func(yield func(Quad) bool) {
		if w.ribbon == nil {
			return
		}
		prev := w.Start
		emit := func(next Boundary) bool {
			q := Quad{
				Points: [4]Point{prev.Left, next.Left, next.Right, prev.Right},
				Offset: 0.5 * (prev.Length + next.Length),
			}
			prev = next
			return yield(q)
		}
		for i := w.First; i <= w.Last; i++ {
			b := Boundary{
				Left:   w.ribbon.Left[i],
				Right:  w.ribbon.Right[i],
				Length: w.ribbon.Lengths[i],
				Index:  i,
			}
			if !emit(b) {
				return
			}
		}
		emit(w.End)
	}
}

// StartCap returns the cap drawn at the start boundary, pointing against the
// direction of the path. ok is false for [ButtCap] and for zero-width
// boundaries.
func (w Window) StartCap(c Cap) (shape CapShape, ok bool) {
	return newCapShape(c, w.Start.Left, w.Start.Right, -1)
}

// EndCap returns the cap drawn at the end boundary, pointing along the
// direction of the path.
func (w Window) EndCap(c Cap) (shape CapShape, ok bool) {
	return newCapShape(c, w.End.Left, w.End.Right, 1)
}
