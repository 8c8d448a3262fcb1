package strand

import (
	"context"
	"fmt"
	"time"
)

// MaxFrameDelta bounds the wall time a single frame may advance the clock.
// Longer gaps, such as a suspended display, are treated as this long so
// that animations continue where they left off instead of jumping.
const MaxFrameDelta = 100 * time.Millisecond

// FrameLoop owns the state that persists between frames of an interactive
// drawing surface: the scaled animation time, the points of the stroke being
// drawn, and the style new strokes get.
//
// A FrameLoop is not safe for concurrent use. Its methods are meant to be
// called from the frame callback and the input handlers of a single
// goroutine.
type FrameLoop struct {
	Drawing *Drawing
	// Global speed multiplier for all animations.
	Speed float64
	// Style given to strokes finished with PenUp.
	Style Style

	time    float64
	pen     []Point
	penDown bool
}

// NewFrameLoop returns a frame loop for d at normal speed, using
// [DefaultStyle] for new strokes.
func NewFrameLoop(d *Drawing) *FrameLoop {
	return &FrameLoop{
		Drawing: d,
		Speed:   1,
		Style:   DefaultStyle,
	}
}

// Time returns the scaled animation time in seconds.
func (fl *FrameLoop) Time() float64 { return fl.time }

// Advance moves the animation clock forward by delta of wall time, scaled by
// the global speed, and returns the new time. Changing Speed rescales future
// progress without resetting the clock.
func (fl *FrameLoop) Advance(delta time.Duration) float64 {
	delta = min(max(delta, 0), MaxFrameDelta)
	fl.time += delta.Seconds() * fl.Speed
	return fl.time
}

// PenDown starts a new stroke at pt, discarding any unfinished one.
func (fl *FrameLoop) PenDown(pt Point) {
	fl.pen = append(fl.pen[:0], pt)
	fl.penDown = true
}

// PenMove extends the stroke being drawn. It does nothing while the pen is
// up.
func (fl *FrameLoop) PenMove(pt Point) {
	if !fl.penDown {
		return
	}
	fl.pen = append(fl.pen, pt)
}

// PenUp finishes the stroke being drawn and adds it to the drawing. Strokes
// with fewer than two points are dropped, in which case the returned stroke
// is nil and err is nil.
func (fl *FrameLoop) PenUp() (*Stroke, error) {
	if !fl.penDown {
		return nil, nil
	}
	fl.penDown = false
	pts := fl.pen
	fl.pen = nil
	if len(pts) < 2 {
		return nil, nil
	}
	return fl.Drawing.Add(pts, fl.Style)
}

// Pending returns a stroke for the points drawn so far, for previewing, or
// nil if the pen is up. A single point already produces a stroke, so that a
// fresh stroke is visible at once.
func (fl *FrameLoop) Pending() *Stroke {
	if !fl.penDown || len(fl.pen) == 0 {
		return nil
	}
	s, _ := NewStroke(fl.pen, fl.Style)
	return s
}

// Run calls frame on every tick of interval, after advancing the clock by the
// elapsed wall time, until ctx is done or frame returns an error. The error
// from frame is returned; cancellation returns nil. interval must be
// positive.
func (fl *FrameLoop) Run(ctx context.Context, interval time.Duration, frame func(t float64) error) error {
	if interval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	Logger().Debug("frame loop started", "interval", interval)
	defer Logger().Debug("frame loop stopped", "time", fl.time)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			t := fl.Advance(now.Sub(last))
			last = now
			if err := frame(t); err != nil {
				return err
			}
		}
	}
}
