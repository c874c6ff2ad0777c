package stillness

import "math"

// Smooth replaces the path with a Catmull-Rom spline through its anchor
// points. alpha selects the parametrisation: 0 uniform, 0.5 centripetal,
// 1 chordal. Closed paths wrap their neighbours around the start; open
// paths treat the end points as their own outer neighbours.
//
// Only the first subpath is kept; every shape built in this package has
// exactly one.
func (p *Path) Smooth(alpha float64) *Path {
	pts := p.firstSubpathAnchors()
	closed := p.IsClosed()
	n := len(pts)
	if n < 2 {
		return p.Clone()
	}

	at := func(i int) Point {
		if closed {
			return pts[((i%n)+n)%n]
		}
		return pts[max(0, min(n-1, i))]
	}

	result := NewPath()
	result.MoveTo(pts[0].X, pts[0].Y)
	segments := n - 1
	if closed {
		segments = n
	}
	for i := 0; i < segments; i++ {
		c1, c2 := catmullRomControls(at(i-1), at(i), at(i+1), at(i+2), alpha)
		end := at(i + 1)
		result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	}
	if closed {
		result.Close()
	}
	return result
}

// catmullRomControls returns the cubic Bezier control points of the
// Catmull-Rom segment p1→p2 with outer neighbours p0 and p3.
func catmullRomControls(p0, p1, p2, p3 Point, alpha float64) (Point, Point) {
	d1 := math.Pow(p0.Distance(p1), alpha)
	d2 := math.Pow(p1.Distance(p2), alpha)
	d3 := math.Pow(p2.Distance(p3), alpha)
	d1s, d2s, d3s := d1*d1, d2*d2, d3*d3

	c1 := p1
	if den := 3 * d1 * (d1 + d2); den != 0 && p0 != p1 {
		num := 2*d1s + 3*d1*d2 + d2s
		c1 = p2.Mul(d1s).Sub(p0.Mul(d2s)).Add(p1.Mul(num)).Div(den)
	}

	c2 := p2
	if den := 3 * d3 * (d3 + d2); den != 0 && p2 != p3 {
		num := 2*d3s + 3*d3*d2 + d2s
		c2 = p1.Mul(d3s).Sub(p3.Mul(d2s)).Add(p2.Mul(num)).Div(den)
	}
	return c1, c2
}

// firstSubpathAnchors returns the anchors of the first subpath.
func (p *Path) firstSubpathAnchors() []Point {
	var pts []Point
	for i, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if i > 0 {
				return pts
			}
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case QuadTo:
			pts = append(pts, e.Point)
		case CubicTo:
			pts = append(pts, e.Point)
		case Close:
			// A closing segment that ends on the start point adds nothing.
			if n := len(pts); n > 1 && pts[n-1] == pts[0] {
				pts = pts[:n-1]
			}
		}
	}
	return pts
}
