package patterns

import (
	"fmt"

	"github.com/gogpu/stillness"
)

// background drops any earlier content and fills the canvas on the
// "background" layer.
func background(c *stillness.Context) {
	c.Clear()
	c.Layer("background", 0)
	c.Background()
}

// Mandala is a twelve-fold mandala of petals, diamonds and teardrops in
// concentric bands around a star core.
func Mandala(c *stillness.Context) {
	const n = 12
	const da = 360.0 / n
	background(c)

	c.Ring("border", n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 360, 390, a, a+da)
	})
	c.Ring("outer petals", n, func(_ int, a float64) {
		c.Petal(cx, cy, 250, a, 28, 105)
		c.Diamond(cx, cy, 270, a+da/2, 14, 70)
	})
	c.Ring("band", n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 200, 245, a, a+da)
		p := stillness.Polar(cx, cy, 222, a+da/2)
		c.Circle(p.X, p.Y, 8)
	})
	c.Ring("mid petals", n, func(_ int, a float64) {
		c.Petal(cx, cy, 110, a, 20, 85)
		c.Teardrop(cx, cy, 120, a+da/2, 12, 60)
	})
	c.Ring("inner band", n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 60, 100, a, a+da)
		c.Petal(cx, cy, 65, a+da/2, 10, 32)
	})

	c.Layer("core", 1)
	c.Circle(cx, cy, 55)
	c.Star(cx, cy, n, 45, 22)
	c.Circle(cx, cy, 18)
}

// Floral is an eight-fold flower with leaves, veined petals and a seed
// head, framed by a rosette in every corner.
func Floral(c *stillness.Context) {
	const n = 8
	const da = 360.0 / n
	background(c)

	c.Ring("border", 2*n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 365, 392, a, a+da/2)
	})
	c.Ring("leaves", n, func(_ int, a float64) {
		c.Teardrop(cx, cy, 230, a+da/2, 40, 120)
	})
	c.Ring("outer petals", n, func(_ int, a float64) {
		c.Petal(cx, cy, 150, a, 55, 190)
		c.Petal(cx, cy, 170, a, 14, 140)
	})
	c.Ring("mid petals", n, func(_ int, a float64) {
		c.Petal(cx, cy, 80, a+da/2, 38, 130)
	})
	c.Ring("inner petals", 2*n, func(_ int, a float64) {
		c.Petal(cx, cy, 45, a, 14, 60)
	})

	c.Layer("core", 1)
	c.Circle(cx, cy, 50)
	c.Ring("seeds", 12, func(_ int, a float64) {
		p := stillness.Polar(cx, cy, 38, a)
		c.Circle(p.X, p.Y, 5)
	})
	c.Layer("core", 1)
	c.Circle(cx, cy, 22)

	c.Layer("corners", 4)
	for _, p := range []stillness.Point{{X: 70, Y: 70}, {X: 730, Y: 70}, {X: 730, Y: 730}, {X: 70, Y: 730}} {
		flower(c, p.X, p.Y, 8, 10, 10, 45)
	}
}

// Geometric is a six-fold composition of long diamonds and hexagons.
func Geometric(c *stillness.Context) {
	const n = 6
	const da = 360.0 / n
	background(c)

	c.Ring("border", 4*n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 365, 390, a, a+da/4)
	})
	c.Ring("studs", 2*n, func(_ int, a float64) {
		p := stillness.Polar(cx, cy, 330, a+da/4)
		c.RegularPolygon(p.X, p.Y, 6, 14, a+da/4)
	})
	c.Ring("diamonds", n, func(_ int, a float64) {
		c.Diamond(cx, cy, 150, a, 60, 210)
		c.Diamond(cx, cy, 170, a+da/2, 35, 150)
	})
	c.Ring("hex band", n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 110, 140, a, a+da)
	})

	c.Layer("core", 1)
	c.RegularPolygon(cx, cy, 6, 100, 0)
	c.RegularPolygon(cx, cy, 6, 70, 30)
	c.Star(cx, cy, n, 60, 25)
	c.Circle(cx, cy, 18)
}

// Zentangle is a sixteen-fold tangle of scallops, spokes and offset
// bands.
func Zentangle(c *stillness.Context) {
	const n = 16
	const da = 360.0 / n
	background(c)

	c.Ring("border", n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 370, 392, a, a+da)
	})
	c.Ring("scallops", n, func(_ int, a float64) {
		p := stillness.Polar(cx, cy, 345, a+da/2)
		c.Circle(p.X, p.Y, 18)
	})
	c.Ring("spokes", n, func(_ int, a float64) {
		c.Diamond(cx, cy, 230, a, 8, 95)
		c.Teardrop(cx, cy, 240, a+da/2, 14, 70)
	})
	for k := range 4 {
		r := 130 + float64(k)*22
		off := float64(k%2) * da / 2
		c.Ring(fmt.Sprintf("band %d", k), n, func(_ int, a float64) {
			c.RingSegment(cx, cy, r, r+18, a+off, a+off+da)
		})
	}
	c.Ring("inner petals", n, func(_ int, a float64) {
		c.Petal(cx, cy, 40, a, 9, 80)
	})

	c.Layer("core", 1)
	c.Circle(cx, cy, 40)
	c.Star(cx, cy, n, 32, 18)
	c.Circle(cx, cy, 14)
}

// Celestial is a twelve-fold sun wheel ringed by stars and crescent
// moons around a smiling face.
func Celestial(c *stillness.Context) {
	const n = 12
	const da = 360.0 / n
	background(c)

	c.Ring("border", 2*n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 365, 392, a, a+da/2)
	})
	c.Ring("stars", n, func(_ int, a float64) {
		p := stillness.Polar(cx, cy, 330, a+da/2)
		c.Star(p.X, p.Y, 5, 18, 8).RotateAbout(a+da/2+90, p)
	})
	c.Ring("moons", n, func(_ int, a float64) {
		p := stillness.Polar(cx, cy, 330, a)
		q := stillness.Polar(cx, cy, 336, a)
		c.Circle(p.X, p.Y, 16)
		c.Circle(q.X, q.Y, 13)
	})
	c.Ring("rays", 2*n, func(_ int, a float64) {
		c.Diamond(cx, cy, 150, a, 14, 130)
		c.Petal(cx, cy, 150, a+da/4, 10, 95)
	})
	c.Ring("corona", n, func(_ int, a float64) {
		c.RingSegment(cx, cy, 110, 150, a, a+da)
		p := stillness.Polar(cx, cy, 130, a+da/2)
		c.Circle(p.X, p.Y, 7)
	})

	c.Layer("face", 0)
	c.Circle(cx, cy, 110)
	c.Circle(cx, cy, 80)
	c.Circle(cx-30, cy-15, 10)
	c.Circle(cx+30, cy-15, 10)
	c.RingSegment(cx, cy, 40, 48, 30, 150)
}
