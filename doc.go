// Package strand turns freehand strokes into animated, symmetric ribbons. It
// was designed for drawing applications that continuously redraw and erase
// what the user drew, but the geometry is independent of any particular
// display.
//
// # Features
//
// We provide the following notable features:
//
//   - Canonicalizing noisy input (see [Canonicalize])
//   - Variable-width, tapered ribbons (see [BuildRibbon])
//   - Arc-length windows into ribbons (see [Ribbon.Window])
//   - An animation clock with easing (see [Animation.Window])
//   - Six symmetry families (see [Symmetry.Instances])
//   - Hit testing under symmetry (see [Drawing.HitTest])
//   - A JSON project format (see [MarshalProject] and [UnmarshalProject])
//
// Rendering to a raster lives in the render sub-package, vector export in the
// svg sub-package.
//
// # Pipeline
//
// A [Stroke] keeps the points it was drawn with and never changes them. From
// those raw points, [Canonicalize] derives the canonical polyline by first
// removing points with Ramer–Douglas–Peucker simplification and then rounding
// corners with Chaikin's algorithm. There is no curve fitting; the canonical
// polyline is all the geometry there is.
//
// [BuildRibbon] offsets the canonical polyline to both sides, producing a
// [Ribbon]: a left and a right point per vertex, the cumulative arc length at
// each vertex, and a bounding box. Widths can taper toward the ends.
//
// Every frame, the stroke's [Animation] maps the current time to an interval
// of arc length, and [Ribbon.Window] cuts the ribbon down to that interval.
// The [Window] describes the cut exactly, down to the interpolation factors
// at both ends. The raster renderer, the SVG exporter and the selection
// highlighter all build their shapes from a Window, which keeps them in
// agreement.
//
// Finally, the stroke's [Symmetry] enumerates the copies to draw. Each
// [Instance] has a transform and a phase offset for the animation clock, so
// that radial copies can chase each other.
//
// # Immutability
//
// A [Geometry] (the canonical polyline together with its ribbon) is never
// modified once built. Changing a stroke's style builds a new Geometry and
// swaps it in, so code that holds a Geometry always sees points and ribbon
// that belong together.
//
// # Degenerate input
//
// Nothing in this package fails on degenerate geometry. Coincident points
// produce zero offsets rather than NaNs, ribbons with fewer than two vertices
// are empty and simply not drawn, and empty windows are not drawn either.
// The only errors are about input that cannot be interpreted at all, such as
// project files that are not arrays of stroke records.
package strand
