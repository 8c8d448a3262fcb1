package render

import (
	"github.com/gogpu/gg"

	"honnef.co/go/strand"
)

// HighlightOptions control how a selected stroke is marked.
type HighlightOptions struct {
	// CSS hex color of the spine.
	Color string
	// Line width of the spine in pixels.
	Width float64
	// Trace the whole stroke instead of its animated window.
	Full bool
}

// DefaultHighlight is a thin cyan spine that follows the animation.
var DefaultHighlight = HighlightOptions{
	Color: "#00e5ff",
	Width: 1.5,
}

// Highlight traces the centerline of every visible copy of s, using the same
// windows and transforms [Stroke] draws with, so that the spine stays on top
// of the stroke as it animates.
func Highlight(dc *gg.Context, s *strand.Stroke, viewport strand.Size, t float64, opts HighlightOptions) error {
	style, g := s.Snapshot()
	view := viewport.Rect()

	dc.SetStrokeBrush(gg.Solid(gg.Hex(opts.Color)))
	dc.SetLineWidth(opts.Width)
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
		path(dc, w.Spine())
		err := dc.Stroke()
		dc.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}
