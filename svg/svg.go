// Package svg exports strand drawings as static SVG documents.
//
// The exporter mirrors the raster renderer: every visible symmetry copy
// becomes a group whose transform attribute carries the copy's transform,
// and the group holds the copy's window polygon and caps in untransformed
// coordinates. Gradients are approximated by one solid quad per window
// segment.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"honnef.co/go/strand"
)

// Options control what is exported.
type Options struct {
	// Export every stroke in full instead of its animated window.
	Full bool
}

type rectElem struct {
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Fill   string `xml:"fill,attr"`
}

type pathElem struct {
	D           string `xml:"d,attr"`
	Fill        string `xml:"fill,attr"`
	FillOpacity string `xml:"fill-opacity,attr,omitempty"`
}

type circleElem struct {
	CX          string `xml:"cx,attr"`
	CY          string `xml:"cy,attr"`
	R           string `xml:"r,attr"`
	Fill        string `xml:"fill,attr"`
	FillOpacity string `xml:"fill-opacity,attr,omitempty"`
}

var (
	rectName   = xml.StartElement{Name: xml.Name{Local: "rect"}}
	pathName   = xml.StartElement{Name: xml.Name{Local: "path"}}
	circleName = xml.StartElement{Name: xml.Name{Local: "circle"}}
)

// Encode writes d as it looks at time t.
func Encode(w io.Writer, d *strand.Drawing, t float64, opts Options) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	width, height := d.Viewport.Splat()
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
			{Name: xml.Name{Local: "width"}, Value: num(width)},
			{Name: xml.Name{Local: "height"}, Value: num(height)},
			{Name: xml.Name{Local: "viewBox"}, Value: fmt.Sprintf("0 0 %s %s", num(width), num(height))},
		},
	}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	if d.Background != "" {
		fill, _ := paint(gg.Hex(d.Background))
		bg := rectElem{X: "0", Y: "0", Width: num(width), Height: num(height), Fill: fill}
		if err := enc.EncodeElement(bg, rectName); err != nil {
			return err
		}
	}
	for i, s := range d.Strokes() {
		if err := encodeStroke(enc, s, d.Viewport, t, opts); err != nil {
			return fmt.Errorf("exporting stroke %d: %w", i, err)
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	return enc.Flush()
}

func encodeStroke(enc *xml.Encoder, s *strand.Stroke, viewport strand.Size, t float64, opts Options) error {
	style, g := s.Snapshot()
	view := viewport.Rect()

	if len(g.Points) == 1 {
		fill, opacity := paint(gg.Hex(style.Color))
		for _, inst := range strand.Instances(style, g, viewport) {
			pt := g.Points[0].Transform(inst.Transform)
			c := circleElem{
				CX:          num(pt.X),
				CY:          num(pt.Y),
				R:           num(max(style.Width, strand.MinWidth) / 2),
				Fill:        fill,
				FillOpacity: opacity,
			}
			if err := enc.EncodeElement(c, circleName); err != nil {
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
		group := xml.StartElement{Name: xml.Name{Local: "g"}}
		if !inst.Transform.IsIdentity() {
			group.Attr = []xml.Attr{{Name: xml.Name{Local: "transform"}, Value: transform(inst.Transform)}}
		}
		if err := enc.EncodeToken(group); err != nil {
			return err
		}
		if err := encodeWindow(enc, style, g.TotalLength, w); err != nil {
			return err
		}
		if err := enc.EncodeToken(group.End()); err != nil {
			return err
		}
	}
	return nil
}

func encodeWindow(enc *xml.Encoder, style strand.Style, total float64, w strand.Window) error {
	start := gg.Hex(style.Color)
	end := start
	if style.EndColor != "" {
		end = gg.Hex(style.EndColor)
		for q := range w.Quads() {
			if err := encodePath(enc, slices.Values(q.Points[:]), start.Lerp(end, strand.GradientPosition(q.Offset, total))); err != nil {
				return err
			}
		}
	} else {
		if err := encodePath(enc, w.Polygon(), start); err != nil {
			return err
		}
	}

	if c, ok := w.StartCap(style.StartCap); ok {
		if err := encodeCap(enc, c, start.Lerp(end, strand.GradientPosition(w.Start.Length, total))); err != nil {
			return err
		}
	}
	if c, ok := w.EndCap(style.EndCap); ok {
		if err := encodeCap(enc, c, start.Lerp(end, strand.GradientPosition(w.End.Length, total))); err != nil {
			return err
		}
	}
	return nil
}

func encodeCap(enc *xml.Encoder, c strand.CapShape, col gg.RGBA) error {
	switch c.Cap {
	case strand.RoundCap:
		fill, opacity := paint(col)
		return enc.EncodeElement(circleElem{
			CX:          num(c.Center.X),
			CY:          num(c.Center.Y),
			R:           num(c.Radius),
			Fill:        fill,
			FillOpacity: opacity,
		}, circleName)
	case strand.SquareCap:
		return encodePath(enc, slices.Values(c.Corners[:]), col)
	case strand.ButtCap:
		return nil
	default:
		return nil
	}
}

func encodePath(enc *xml.Encoder, pts iter.Seq[strand.Point], col gg.RGBA) error {
	fill, opacity := paint(col)
	return enc.EncodeElement(pathElem{
		D:           pathData(pts),
		Fill:        fill,
		FillOpacity: opacity,
	}, pathName)
}

// pathData returns the data of a closed polygon through pts.
func pathData(pts iter.Seq[strand.Point]) string {
	var sb strings.Builder
	for pt := range pts {
		if sb.Len() == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString(" L")
		}
		sb.WriteString(num(pt.X))
		sb.WriteByte(' ')
		sb.WriteString(num(pt.Y))
	}
	if sb.Len() > 0 {
		sb.WriteString(" Z")
	}
	return sb.String()
}

// transform formats aff as an SVG matrix transform. strand.Affine uses SVG's
// coefficient order.
func transform(aff strand.Affine) string {
	n := aff.Coefficients()
	parts := make([]string, len(n))
	for i, v := range n {
		parts[i] = num(v)
	}
	return "matrix(" + strings.Join(parts, " ") + ")"
}

// paint returns the fill color and, for translucent colors, the fill opacity.
func paint(c gg.RGBA) (fill, opacity string) {
	fill = fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
	if c.A < 1 {
		opacity = num(min(max(c.A, 0), 1))
	}
	return fill, opacity
}

func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		// Avoid "-0".
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
