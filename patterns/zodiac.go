package patterns

import "github.com/gogpu/stillness"

// signMotif draws the symbol of one sign into its sector of the sign
// band, centred on the ray at angle degrees from (x, y).
type signMotif func(c *stillness.Context, s Sign, x, y, angle float64)

// Zodiac is a twelve-sector year wheel: a calendar border, a band holding
// one symbol per zodiac sign, seasonal and celestial rings, and a sun at
// the centre.
func Zodiac(c *stillness.Context) {
	zodiacWith(c, drawSign)
}

func zodiacWith(c *stillness.Context, motif signMotif) {
	const n = 12
	const da = 360.0 / n
	background(c)

	c.Ring("calendar", n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 360, 385, a, a+da)
	})
	c.Ring("calendar dots", n, func(_ int, a float64) {
		p := stillness.Polar(cx, cy, 372, a)
		c.Circle(p.X, p.Y, 6)
	})

	c.Ring("sign band", n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 280, 360, a, a+da)
	})
	c.Layer("signs", 0)
	for i, s := range Signs() {
		motif(c, s, cx, cy, float64(i)*da+da/2)
	}

	c.Ring("season band", n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 220, 280, a, a+da)
	})
	c.Ring("seasons", 4, func(_ int, a float64) {
		c.Petal(cx, cy, 230, a, 18, 42)
		p := stillness.Polar(cx, cy, 250, a)
		c.Circle(p.X, p.Y, 8)
	})
	c.Ring("months", n, func(_ int, a float64) {
		c.Diamond(cx, cy, 235, a+da/2, 10, 32)
	})

	c.Ring("celestial band", n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 150, 220, a, a+da)
	})
	c.Ring("stars and moons", n/2, func(_ int, a float64) {
		p := stillness.Polar(cx, cy, 185, a+da/2)
		c.Star(p.X, p.Y, 5, 6, 14)
		m := stillness.Polar(cx, cy, 185, a+da+da/2)
		// Offset along the ray, not by fixed (dx, dy), to keep six-fold symmetry.
		q := stillness.Polar(cx, cy, 190, a+da+da/2+1)
		c.Circle(m.X, m.Y, 10)
		c.Circle(q.X, q.Y, 8)
	})
	c.Ring("celestial dots", 2*n, func(_ int, a float64) {
		p := stillness.Polar(cx, cy, 165, a)
		c.Circle(p.X, p.Y, 4)
	})

	c.Ring("centre band", n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 90, 150, a, a+da)
	})
	c.Ring("centre petals", n, func(_ int, a float64) {
		c.Petal(cx, cy, 95, a, 12, 48)
	})
	c.Ring("inner band", n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 50, 90, a, a+da)
	})
	c.Ring("inner teardrops", n, func(_ int, a float64) {
		c.Teardrop(cx, cy, 55, a+da/2, 14, 30)
	})

	c.Layer("sun", 1)
	c.Circle(cx, cy, 50)
	c.Star(cx, cy, 8, 20, 40)
	c.Circle(cx, cy, 20)
	c.Circle(cx, cy, 8)
	c.Ring("sun rays", 8, func(_ int, a float64) {
		c.Diamond(cx, cy, 25, a, 4, 12)
	})
}
