package strand

import (
	"fmt"
)

// Drawing is an ordered collection of strokes on a viewport. Strokes are
// kept in insertion order: later strokes are drawn on top and hit-tested
// first.
type Drawing struct {
	Viewport Size
	// Background color as a CSS hex string. Empty means transparent.
	Background string

	strokes []*Stroke
}

// NewDrawing returns an empty drawing with the given viewport.
func NewDrawing(viewport Size) *Drawing {
	return &Drawing{Viewport: viewport}
}

// Add canonicalizes a finalized sequence of raw points with the given style
// and appends the resulting stroke. At least two points are required.
func (d *Drawing) Add(raw []Point, style Style) (*Stroke, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("adding stroke: %w: got %d, need 2", ErrTooFewPoints, len(raw))
	}
	s, err := NewStroke(raw, style)
	if err != nil {
		return nil, err
	}
	d.strokes = append(d.strokes, s)
	return s, nil
}

// Append adds existing strokes on top of the drawing.
func (d *Drawing) Append(strokes ...*Stroke) {
	d.strokes = append(d.strokes, strokes...)
}

// Strokes returns the strokes in drawing order. The slice must not be
// modified.
func (d *Drawing) Strokes() []*Stroke { return d.strokes }

// Len returns the number of strokes.
func (d *Drawing) Len() int { return len(d.strokes) }

// Stroke returns the i-th stroke.
func (d *Drawing) Stroke(i int) *Stroke { return d.strokes[i] }

// Remove deletes the i-th stroke.
func (d *Drawing) Remove(i int) {
	d.strokes = append(d.strokes[:i:i], d.strokes[i+1:]...)
}

// Clear removes all strokes.
func (d *Drawing) Clear() {
	d.strokes = nil
}

// Restyle applies style to the i-th stroke. See [Stroke.SetStyle].
func (d *Drawing) Restyle(i int, style Style) {
	d.strokes[i].SetStyle(style)
}

// HitTest returns the index of the topmost stroke that has a copy within
// tolerance of pt.
//
// Instead of transforming each copy's geometry, pt is mapped back through the
// inverse of every copy's transform and tested against the untransformed
// stroke. The whole stroke is tested regardless of its animation state.
func (d *Drawing) HitTest(pt Point, tolerance float64) (int, bool) {
	for i := len(d.strokes) - 1; i >= 0; i-- {
		if d.strokes[i].HitTest(pt, d.Viewport, tolerance) {
			return i, true
		}
	}
	return -1, false
}

// HitTest reports whether any copy of the stroke on viewport lies within
// tolerance of pt.
func (s *Stroke) HitTest(pt Point, viewport Size, tolerance float64) bool {
	style, g := s.Snapshot()
	reach := style.Width/2 + tolerance
	for _, inst := range Instances(style, g, viewport) {
		local := pt
		if !inst.Transform.IsIdentity() {
			local = pt.Transform(inst.Transform.Invert())
		}
		if nearPolyline(g.Points, local, reach) {
			return true
		}
	}
	return false
}

// nearPolyline reports whether pt is within reach of any segment of pts, or
// of the single point if there is only one.
func nearPolyline(pts []Point, pt Point, reach float64) bool {
	r2 := reach * reach
	switch len(pts) {
	case 0:
		return false
	case 1:
		return pts[0].DistanceSquared(pt) <= r2
	}
	for i := range len(pts) - 1 {
		if d2, _ := (Line{pts[i], pts[i+1]}).Nearest(pt); d2 <= r2 {
			return true
		}
	}
	return false
}
