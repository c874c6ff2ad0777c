package stillness

import "math"

// ringStep is the largest angular step, in degrees, between two samples
// of a ring segment arc.
const ringStep = 4.0

// RingSegment returns the closed annular sector between radii r1 and r2
// around (cx, cy), swept from startDeg to endDeg. The outer arc is sampled
// from start to end inclusive, then the inner arc in reverse.
//
// Angles use the Polar convention and may lie outside [0, 360). The
// result is nil when r2 is not a finite positive radius, when r1 >= r2
// or when the sweep is zero or not finite. A negative r1 is treated as 0,
// which yields a pie slice, and a sweep larger than a full turn is cut
// to 360 degrees in the same direction.
func RingSegment(cx, cy, r1, r2, startDeg, endDeg float64) *Shape {
	sweep := endDeg - startDeg
	inner := math.Max(r1, 0)
	if math.IsNaN(r1) || !(r2 > 0) || math.IsInf(r2, 0) || inner >= r2 ||
		sweep == 0 || math.IsNaN(sweep) || math.IsInf(sweep, 0) {
		Logger().Debug("ring segment skipped",
			"r1", r1, "r2", r2, "start", startDeg, "end", endDeg)
		return nil
	}
	r1 = inner
	if math.Abs(sweep) > 360 {
		sweep = math.Copysign(360, sweep)
	}

	steps := int(math.Ceil(math.Abs(sweep) / ringStep))
	pts := make([]Point, 0, 2*(steps+1))
	for k := 0; k <= steps; k++ {
		pts = append(pts, Polar(cx, cy, r2, startDeg+sweep*float64(k)/float64(steps)))
	}
	if r1 == 0 {
		pts = append(pts, Pt(cx, cy))
	} else {
		for k := steps; k >= 0; k-- {
			pts = append(pts, Polar(cx, cy, r1, startDeg+sweep*float64(k)/float64(steps)))
		}
	}

	s := Polygon(pts...)
	s.Kind = KindPath
	return s
}

// radialFrame returns the base point at radius r, the tip at r+length,
// the outward unit axis and its clockwise perpendicular for a primitive
// lying along the ray at angleDeg from (cx, cy).
func radialFrame(cx, cy, r, angleDeg, length float64) (base, tip, axis, normal Point) {
	base = Polar(cx, cy, r, angleDeg)
	tip = Polar(cx, cy, r+length, angleDeg)
	axis = Polar(0, 0, 1, angleDeg)
	normal = axis.Perp()
	return base, tip, axis, normal
}

// Petal returns an almond-shaped leaf along the ray at angleDeg from
// (cx, cy). It starts at radius r, reaches length further out and is
// width wide on each side of the ray at its middle.
func Petal(cx, cy, r, angleDeg, width, length float64) *Shape {
	base, tip, _, n := radialFrame(cx, cy, r, angleDeg, length)
	mid := base.Lerp(tip, 0.5)

	// A quadratic peaks at half its control offset.
	c1 := mid.Add(n.Mul(2 * width))
	c2 := mid.Sub(n.Mul(2 * width))

	p := NewPath()
	p.MoveTo(base.X, base.Y)
	p.QuadraticTo(c1.X, c1.Y, tip.X, tip.Y)
	p.QuadraticTo(c2.X, c2.Y, base.X, base.Y)
	p.Close()
	return newShape(KindPath, p)
}

// Diamond returns a rhombus along the ray at angleDeg from (cx, cy), with
// corners at the base, the tip and width to either side of the midpoint.
func Diamond(cx, cy, r, angleDeg, width, length float64) *Shape {
	base, tip, _, n := radialFrame(cx, cy, r, angleDeg, length)
	mid := base.Lerp(tip, 0.5)

	s := Polygon(base, mid.Add(n.Mul(width)), tip, mid.Sub(n.Mul(width)))
	s.Kind = KindPath
	return s
}

// Teardrop returns a drop along the ray at angleDeg from (cx, cy) with a
// rounded end at radius r narrowing to a point length further out. Its
// half-width peaks at width.
func Teardrop(cx, cy, r, angleDeg, width, length float64) *Shape {
	base, tip, axis, n := radialFrame(cx, cy, r, angleDeg, length)

	// A cubic whose two controls share offset h peaks at 3h/4.
	h := width * 4 / 3
	shoulder := base.Add(axis.Mul(length / 2))

	p := NewPath()
	p.MoveTo(tip.X, tip.Y)
	c1, c2 := shoulder.Add(n.Mul(h)), base.Add(n.Mul(h))
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, base.X, base.Y)
	c1, c2 = base.Sub(n.Mul(h)), shoulder.Sub(n.Mul(h))
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, tip.X, tip.Y)
	p.Close()
	return newShape(KindPath, p)
}
