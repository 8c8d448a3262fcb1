// Package render draws strand drawings onto gg contexts.
//
// Each stroke is drawn by pushing every symmetry copy's transform onto the
// context and filling the copy's window polygon and caps in untransformed
// coordinates. Gradient strokes are filled one window quad at a time.
package render

import (
	"iter"
	"slices"

	"github.com/gogpu/gg"

	"honnef.co/go/strand"
)

// Options control how a frame is drawn.
type Options struct {
	// Draw every stroke in full instead of its animated window.
	Full bool
}

// Matrix converts an affine transform to a gg matrix.
func Matrix(aff strand.Affine) gg.Matrix {
	return gg.Matrix{
		A: aff.N0, B: aff.N2, C: aff.N4,
		D: aff.N1, E: aff.N3, F: aff.N5,
	}
}

// Frame clears dc to the drawing's background and draws all strokes at time
// t, bottom to top.
func Frame(dc *gg.Context, d *strand.Drawing, t float64, opts Options) error {
	if d.Background != "" {
		dc.ClearWithColor(gg.Hex(d.Background))
	} else {
		dc.Clear()
	}
	for _, s := range d.Strokes() {
		if err := Stroke(dc, s, d.Viewport, t, opts); err != nil {
			return err
		}
	}
	return nil
}

// Stroke draws all visible copies of s at time t.
func Stroke(dc *gg.Context, s *strand.Stroke, viewport strand.Size, t float64, opts Options) error {
	style, g := s.Snapshot()
	view := viewport.Rect()
	// Ribbons overlap themselves in tight turns.
	dc.SetFillRule(gg.FillRuleNonZero)

	if len(g.Points) == 1 {
		// A stroke that has only just begun; show a dot so it is visible.
		dc.SetFillBrush(gg.Solid(gg.Hex(style.Color)))
		for _, inst := range strand.Instances(style, g, viewport) {
			pt := g.Points[0].Transform(inst.Transform)
			dc.DrawCircle(pt.X, pt.Y, max(style.Width, strand.MinWidth)/2)
			if err := dc.Fill(); err != nil {
				return err
			}
		}
		return nil
	}

	for _, inst := range strand.Instances(style, g, viewport) {
		if !inst.Visible(g.Ribbon.Bounds, style.Width, view) {
			continue
		}
		w, ok := strand.FrameWindow(style, g, t, inst.PhaseOffset, opts.Full)
		if !ok {
			continue
		}
		dc.Push()
		dc.Transform(Matrix(inst.Transform))
		err := fillWindow(dc, style, g.TotalLength, w)
		dc.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

func fillWindow(dc *gg.Context, style strand.Style, total float64, w strand.Window) error {
	start := gg.Hex(style.Color)
	end := start
	if style.EndColor != "" {
		end = gg.Hex(style.EndColor)
		for q := range w.Quads() {
			dc.SetFillBrush(gg.Solid(start.Lerp(end, strand.GradientPosition(q.Offset, total))))
			path(dc, slices.Values(q.Points[:]))
			dc.ClosePath()
			if err := dc.Fill(); err != nil {
				return err
			}
		}
	} else {
		dc.SetFillBrush(gg.Solid(start))
		path(dc, w.Polygon())
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	if c, ok := w.StartCap(style.StartCap); ok {
		dc.SetFillBrush(gg.Solid(start.Lerp(end, strand.GradientPosition(w.Start.Length, total))))
		if err := fillCap(dc, c); err != nil {
			return err
		}
	}
	if c, ok := w.EndCap(style.EndCap); ok {
		dc.SetFillBrush(gg.Solid(start.Lerp(end, strand.GradientPosition(w.End.Length, total))))
		if err := fillCap(dc, c); err != nil {
			return err
		}
	}
	return nil
}

func fillCap(dc *gg.Context, c strand.CapShape) error {
	switch c.Cap {
	case strand.RoundCap:
		dc.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
	case strand.SquareCap:
		path(dc, slices.Values(c.Corners[:]))
		dc.ClosePath()
	case strand.ButtCap:
		return nil
	default:
		return nil
	}
	return dc.Fill()
}

// path appends an open polyline through pts to the current path.
func path(dc *gg.Context, pts iter.Seq[strand.Point]) {
	first := true
	for pt := range pts {
		if first {
			dc.MoveTo(pt.X, pt.Y)
			first = false
		} else {
			dc.LineTo(pt.X, pt.Y)
		}
	}
}
