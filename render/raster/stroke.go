package raster

import (
	"golang.org/x/image/vector"

	"github.com/gogpu/stillness"
)

// strokeTolerance is the flattening tolerance for outlines, in pixels.
const strokeTolerance = 0.25

// addStroke adds the outline of p at the given width to r, shifted by
// -origin. Each segment becomes a quadrilateral and each vertex a disc
// for a round join. All pieces share the same winding so the
// rasterizer's accumulation covers overlaps instead of cancelling them.
func addStroke(r *vector.Rasterizer, p *stillness.Path, width float64, origin stillness.Point) {
	hw := width / 2
	if !(hw > 0) {
		return
	}
	for _, line := range p.Flatten(strokeTolerance) {
		pts := line.Points
		n := len(pts)
		segments := n - 1
		if line.Closed {
			segments = n
		}
		for i := range segments {
			addSegment(r, pts[i].Sub(origin), pts[(i+1)%n].Sub(origin), hw)
		}
		for _, q := range pts {
			addDisc(r, q.Sub(origin), hw)
		}
	}
}

func addSegment(r *vector.Rasterizer, p0, p1 stillness.Point, hw float64) {
	d := p1.Sub(p0)
	if d.Length() == 0 {
		return
	}
	n := d.Normalize().Perp().Mul(hw)
	a, b := p0.Sub(n), p1.Sub(n)
	c, e := p1.Add(n), p0.Add(n)
	r.MoveTo(f32(a.X), f32(a.Y))
	r.LineTo(f32(b.X), f32(b.Y))
	r.LineTo(f32(c.X), f32(c.Y))
	r.LineTo(f32(e.X), f32(e.Y))
	r.ClosePath()
}

func addDisc(r *vector.Rasterizer, c stillness.Point, radius float64) {
	disc := stillness.NewPath()
	disc.Circle(c.X, c.Y, radius)
	addPath(r, disc, stillness.Point{})
}

// addPath adds the subpaths of p to r, shifted by -origin. Curves are
// passed to the rasterizer as curves.
func addPath(r *vector.Rasterizer, p *stillness.Path, origin stillness.Point) {
	open := false
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case stillness.MoveTo:
			if open {
				r.ClosePath()
			}
			q := e.Point.Sub(origin)
			r.MoveTo(f32(q.X), f32(q.Y))
			open = true
		case stillness.LineTo:
			q := e.Point.Sub(origin)
			r.LineTo(f32(q.X), f32(q.Y))
		case stillness.QuadTo:
			c, q := e.Control.Sub(origin), e.Point.Sub(origin)
			r.QuadTo(f32(c.X), f32(c.Y), f32(q.X), f32(q.Y))
		case stillness.CubicTo:
			c1, c2, q := e.Control1.Sub(origin), e.Control2.Sub(origin), e.Point.Sub(origin)
			r.CubeTo(f32(c1.X), f32(c1.Y), f32(c2.X), f32(c2.Y), f32(q.X), f32(q.Y))
		case stillness.Close:
			r.ClosePath()
			open = false
		}
	}
	if open {
		r.ClosePath()
	}
}

func f32(v float64) float32 {
	return float32(v)
}
