package stillness

import "math"

// FlattenTolerance is the default maximum distance between a curve and
// its polyline approximation, in canvas units.
const FlattenTolerance = 0.1

// maxFlattenDepth bounds curve subdivision so non-finite input terminates.
const maxFlattenDepth = 16

// FlatPath is one flattened subpath.
type FlatPath struct {
	Points []Point
	Closed bool
}

// Flatten converts the path into polylines, one per subpath, replacing
// curves with line segments no further than tolerance from the curve.
// A tolerance <= 0 selects FlattenTolerance.
func (p *Path) Flatten(tolerance float64) []FlatPath {
	if tolerance <= 0 {
		tolerance = FlattenTolerance
	}

	var (
		lines   []FlatPath
		cur     *FlatPath
		current Point
	)
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			lines = append(lines, FlatPath{Points: []Point{e.Point}})
			cur = &lines[len(lines)-1]
			current = e.Point
		case LineTo:
			if cur == nil {
				continue
			}
			cur.Points = append(cur.Points, e.Point)
			current = e.Point
		case QuadTo:
			if cur == nil {
				continue
			}
			flattenQuadratic(current, e.Control, e.Point, tolerance, maxFlattenDepth, &cur.Points)
			current = e.Point
		case CubicTo:
			if cur == nil {
				continue
			}
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, maxFlattenDepth, &cur.Points)
			current = e.Point
		case Close:
			if cur == nil {
				continue
			}
			cur.Closed = true
			// Drop an explicit return to the start; Closed implies it.
			if n := len(cur.Points); n > 1 && cur.Points[n-1] == cur.Points[0] {
				cur.Points = cur.Points[:n-1]
			}
			current = cur.Points[0]
		}
	}
	return lines
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve and
// appends the end points of the resulting segments.
func flattenQuadratic(p0, p1, p2 Point, tolerance float64, depth int, points *[]Point) {
	if depth == 0 || !(distanceToSegment(p1, p0, p2) >= tolerance) {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadratic(p0, q0, q2, tolerance, depth-1, points)
	flattenQuadratic(q2, q1, p2, tolerance, depth-1, points)
}

// flattenCubic recursively subdivides a cubic Bezier curve using
// de Casteljau's algorithm.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, depth int, points *[]Point) {
	d := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if depth == 0 || !(d >= tolerance) {
		*points = append(*points, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, depth-1, points)
	flattenCubic(s, r1, q2, p3, tolerance, depth-1, points)
}

// distanceToSegment returns the distance from p to the segment a-b.
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 < 1e-20 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
