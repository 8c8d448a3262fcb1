package strand

import (
	"fmt"
)

// Size is the extent of a drawing surface.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// Rect returns the rectangle spanning from the origin to (width, height).
func (sz Size) Rect() Rect {
	return Rect{X1: sz.Width, Y1: sz.Height}
}

// Center returns the center of the rectangle spanned by the size.
func (sz Size) Center() Point {
	return Point{
		X: 0.5 * sz.Width,
		Y: 0.5 * sz.Height,
	}
}

// IsEmpty reports whether either dimension is not positive.
func (sz Size) IsEmpty() bool {
	return !(sz.Width > 0) || !(sz.Height > 0)
}
