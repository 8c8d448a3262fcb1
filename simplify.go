package strand

// Simplify reduces a polyline with the Ramer–Douglas–Peucker algorithm.
//
// A point is kept only if its perpendicular distance from the chord between
// the endpoints of its current subrange exceeds tolerance. When a chord has
// zero length, the euclidean distance to its endpoint is used instead.
//
// Simplify never modifies pts and always returns a fresh slice. With
// tolerance ≤ 0 or at most two points, the result is a copy of the input.
func Simplify(pts []Point, tolerance float64) []Point {
	if tolerance <= 0 || len(pts) <= 2 {
		return clonePoints(pts)
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	out = simplifyRange(out, pts, tolerance)
	return out
}

// simplifyRange appends the points of pts that survive simplification,
// excluding pts[0], which the caller has already emitted.
func simplifyRange(out []Point, pts []Point, tolerance float64) []Point {
	last := len(pts) - 1
	if last < 2 {
		return append(out, pts[1:]...)
	}
	chord := Line{pts[0], pts[last]}
	var (
		dmax float64
		idx  int
	)
	for i := 1; i < last; i++ {
		if d := chord.distance(pts[i]); d > dmax {
			dmax = d
			idx = i
		}
	}
	if dmax <= tolerance {
		return append(out, pts[last])
	}
	out = simplifyRange(out, pts[:idx+1], tolerance)
	return simplifyRange(out, pts[idx:], tolerance)
}

// Smooth applies iterations rounds of Chaikin corner cutting to an open
// polyline.
//
// Every segment is replaced by the points at 0.25 and 0.75 along it, while
// the first and last points are kept exactly. Each round thus turns n points
// into 2n points. Fewer than three points or iterations ≤ 0 return a copy of
// the input.
func Smooth(pts []Point, iterations int) []Point {
	if iterations <= 0 || len(pts) < 3 {
		return clonePoints(pts)
	}
	cur := pts
	for range iterations {
		next := make([]Point, 0, 2*len(cur))
		next = append(next, cur[0])
		for i := range len(cur) - 1 {
			p0, p1 := cur[i], cur[i+1]
			next = append(next, p0.Lerp(p1, 0.25), p0.Lerp(p1, 0.75))
		}
		next = append(next, cur[len(cur)-1])
		cur = next
	}
	return cur
}

// Canonicalize turns captured points into the polyline used for all
// downstream geometry: it first simplifies with the given tolerance, then
// smooths the simplified skeleton. Fractional smoothing counts are truncated
// toward zero.
//
// The result depends only on its arguments, so it can be re-derived from
// raw points at any time.
func Canonicalize(raw []Point, simplification, smoothing float64) []Point {
	return Smooth(Simplify(raw, simplification), int(smoothing))
}

func clonePoints(pts []Point) []Point {
	if pts == nil {
		return nil
	}
	return append(make([]Point, 0, len(pts)), pts...)
}
