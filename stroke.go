package strand

import (
	"errors"
	"sync/atomic"
)

// ErrTooFewPoints is returned when a stroke is created without enough raw
// points.
var ErrTooFewPoints = errors.New("too few points")

// Style describes the visual and animation parameters of a stroke.
type Style struct {
	// Base color as a CSS hex string.
	Color string
	// If non-empty, the stroke is colored with a gradient from Color at its
	// start to EndColor at its end.
	EndColor string
	// Width of the stroke in pixels.
	Width float64
	// Percentage, 0–100, of the total length over which each end tapers.
	Taper       float64
	TaperEasing Easing
	StartCap    Cap
	EndCap      Cap
	// Number of smoothing rounds. Fractions are truncated.
	Smoothing float64
	// Simplification tolerance in pixels.
	Simplification float64
	Animation      Animation
	Symmetry       Symmetry
	// Whether the stroke was produced by the physics cursor. Only persisted.
	Physics bool
}

// DefaultStyle is the style used for new strokes unless configured
// otherwise.
var DefaultStyle = Style{
	Color:          "#f2f2f2",
	Width:          6,
	TaperEasing:    Linear,
	StartCap:       RoundCap,
	EndCap:         RoundCap,
	Smoothing:      2,
	Simplification: 1,
	Animation: Animation{
		Speed:  0.25,
		Easing: Linear,
		Mode:   Loop,
	},
}

func (s Style) WithColor(c string) Style               { s.Color = c; return s }
func (s Style) WithGradient(start, end string) Style   { s.Color, s.EndColor = start, end; return s }
func (s Style) WithWidth(width float64) Style          { s.Width = width; return s }
func (s Style) WithTaper(pct float64, e Easing) Style  { s.Taper, s.TaperEasing = pct, e; return s }
func (s Style) WithStartCap(c Cap) Style               { s.StartCap = c; return s }
func (s Style) WithEndCap(c Cap) Style                 { s.EndCap = c; return s }
func (s Style) WithCaps(c Cap) Style                   { s.StartCap, s.EndCap = c, c; return s }
func (s Style) WithSmoothing(iterations float64) Style { s.Smoothing = iterations; return s }
func (s Style) WithSimplification(tol float64) Style   { s.Simplification = tol; return s }
func (s Style) WithAnimation(a Animation) Style        { s.Animation = a; return s }
func (s Style) WithSymmetry(sym Symmetry) Style        { s.Symmetry = sym; return s }

// sameGeometry reports whether s and o produce the same canonical polyline
// and ribbon.
func (s Style) sameGeometry(o Style) bool {
	return s.Width == o.Width &&
		s.Taper == o.Taper &&
		s.TaperEasing == o.TaperEasing &&
		int(s.Smoothing) == int(o.Smoothing) &&
		s.Simplification == o.Simplification
}

// Geometry is the derived geometry of a stroke. It is never modified after
// construction; len(Points) equals Ribbon.Len() whenever there are at least
// two points.
type Geometry struct {
	// The canonical polyline.
	Points      []Point
	TotalLength float64
	Ribbon      *Ribbon
}

func newGeometry(raw []Point, style Style) *Geometry {
	pts := Canonicalize(raw, style.Simplification, style.Smoothing)
	r := BuildRibbon(pts, style.Width, style.Taper, style.TaperEasing)
	return &Geometry{
		Points:      pts,
		TotalLength: r.TotalLength(),
		Ribbon:      r,
	}
}

// Stroke is a single freehand stroke: the points it was drawn with, its
// style, and the geometry derived from both.
type Stroke struct {
	raw   []Point
	state atomic.Pointer[strokeState]
}

// strokeState pairs a style with the geometry built for it. Both are
// replaced together.
type strokeState struct {
	style Style
	geom  *Geometry
}

// NewStroke creates a stroke from captured points. The points are copied.
func NewStroke(raw []Point, style Style) (*Stroke, error) {
	if len(raw) == 0 {
		return nil, ErrTooFewPoints
	}
	s := &Stroke{raw: clonePoints(raw)}
	s.state.Store(&strokeState{
		style: style,
		geom:  newGeometry(s.raw, style),
	})
	return s, nil
}

// RawPoints returns the points the stroke was drawn with. The slice must not
// be modified.
func (s *Stroke) RawPoints() []Point { return s.raw }

func (s *Stroke) Style() Style { return s.state.Load().style }

// Geometry returns the current geometry. Consumers should fetch it once per
// use; a restyle replaces it wholesale instead of editing it.
func (s *Stroke) Geometry() *Geometry { return s.state.Load().geom }

// Snapshot returns the style and the geometry built for it, read together.
func (s *Stroke) Snapshot() (Style, *Geometry) {
	st := s.state.Load()
	return st.style, st.geom
}

// Points returns the canonical polyline.
func (s *Stroke) Points() []Point { return s.Geometry().Points }

// TotalLength returns the arc length of the canonical polyline.
func (s *Stroke) TotalLength() float64 { return s.Geometry().TotalLength }

// Ribbon returns the stroke's current ribbon.
func (s *Stroke) Ribbon() *Ribbon { return s.Geometry().Ribbon }

// SetStyle changes the stroke's style, rebuilding its geometry if any
// geometry-affecting parameter changed.
func (s *Stroke) SetStyle(style Style) {
	old := s.state.Load()
	next := &strokeState{style: style, geom: old.geom}
	if !old.style.sameGeometry(style) {
		next.geom = newGeometry(s.raw, style)
		Logger().Debug("rebuilt stroke geometry",
			"raw", len(s.raw), "points", len(next.geom.Points), "length", next.geom.TotalLength)
	}
	s.state.Store(next)
}

// Instances returns the symmetry copies of the stroke on a viewport. The
// renderer, the exporter and the hit tester all enumerate copies through this
// function so that they agree on which copies exist.
func Instances(style Style, g *Geometry, viewport Size) []Instance {
	return style.Symmetry.Instances(viewport.Rect(), g.Ribbon.Bounds, style.Width)
}

// Instances is shorthand for [Instances] on the stroke's current snapshot.
func (s *Stroke) Instances(viewport Size) []Instance {
	style, g := s.Snapshot()
	return Instances(style, g, viewport)
}

// AnimatedWindow returns the part of g's ribbon visible at time t for a copy
// with the given phase offset.
func AnimatedWindow(style Style, g *Geometry, t, phaseOffset float64) (Window, bool) {
	start, end := style.Animation.Window(g.TotalLength, t, phaseOffset)
	return g.Ribbon.Window(start, end)
}

// Window is shorthand for [AnimatedWindow] on the stroke's current snapshot.
func (s *Stroke) Window(t, phaseOffset float64) (Window, bool) {
	style, g := s.Snapshot()
	return AnimatedWindow(style, g, t, phaseOffset)
}

// FrameWindow returns the window a consumer draws for one copy: the whole
// ribbon if full is set, the animated window at time t otherwise.
func FrameWindow(style Style, g *Geometry, t, phaseOffset float64, full bool) (Window, bool) {
	if full {
		return g.Ribbon.FullWindow()
	}
	return AnimatedWindow(style, g, t, phaseOffset)
}

// GradientPosition returns where along a gradient, from 0 at the start to 1
// at the end, the arc length lies on a stroke of length total.
func GradientPosition(length, total float64) float64 {
	if !(total > 0) {
		return 0
	}
	return min(max(length/total, 0), 1)
}
