package patterns

import "github.com/gogpu/stillness"

// Butterfly is a butterfly with patterned wings, mirror-symmetric about
// the vertical centre line of the canvas, framed by corner rosettes.
func Butterfly(c *stillness.Context) {
	background(c)

	c.Layer("corners", 0)
	for _, p := range [][2]float64{{80, 80}, {720, 80}, {80, 720}, {720, 720}} {
		flower(c, p[0], p[1], 8, 12, 11, 48)
	}

	// Angles of the right wings; the left wings use 180-a.
	const upper, lower = 325.0, 35.0
	const ux, uy = cx, 380.0
	const lx, ly = cx, 420.0

	c.Layer("wings", 0)
	for _, a := range []float64{180 - upper, upper} {
		c.Petal(ux, uy, 20, a, 110, 260)
		c.Petal(ux, uy, 50, a, 70, 190)
		c.Teardrop(ux, uy, 90, a, 30, 110)
	}
	for _, a := range []float64{180 - lower, lower} {
		c.Petal(lx, ly, 20, a, 80, 190)
		c.Petal(lx, ly, 45, a, 48, 130)
		c.Teardrop(lx, ly, 70, a, 18, 70)
	}

	c.Layer("eyespots", 0)
	for _, a := range []float64{180 - upper, upper} {
		p := stillness.Polar(ux, uy, 200, a)
		c.Circle(p.X, p.Y, 22)
		c.Circle(p.X, p.Y, 11)
		for k := -1; k <= 1; k++ {
			d := stillness.Polar(ux, uy, 250, a+float64(k)*9)
			c.Circle(d.X, d.Y, 7)
		}
	}
	for _, a := range []float64{180 - lower, lower} {
		p := stillness.Polar(lx, ly, 150, a)
		c.Circle(p.X, p.Y, 16)
		c.Circle(p.X, p.Y, 7)
	}

	c.Layer("body", 0)
	c.Ellipse(cx, 400, 36, 240)
	for k := range 4 {
		c.Ellipse(cx, 330+float64(k)*45, 24, 30)
	}
	c.Circle(cx, 265, 24)
	for _, a := range []float64{250, 290} {
		c.Diamond(cx, 250, 20, a, 3, 110)
		p := stillness.Polar(cx, 250, 135, a)
		c.Circle(p.X, p.Y, 7)
	}
}
