package render

import (
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
)

// EncodePNG writes img as a PNG, resampled by scale. A scale of 1 (or any
// non-positive value) writes img unchanged.
func EncodePNG(w io.Writer, img image.Image, scale float64) error {
	if scale <= 0 || scale == 1 {
		return png.Encode(w, img)
	}
	b := img.Bounds()
	width := max(1, int(math.Round(float64(b.Dx())*scale)))
	height := max(1, int(math.Round(float64(b.Dy())*scale)))
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return png.Encode(w, dst)
}
