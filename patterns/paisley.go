package patterns

import "github.com/gogpu/stillness"

// Paisley is a field of five large paisley drops, each with nested
// bodies, a curl at the tip and a petal fringe, between small flowers.
func Paisley(c *stillness.Context) {
	background(c)

	c.Layer("flowers", 0)
	for _, f := range [][2]float64{{400, 110}, {90, 420}, {720, 430}, {400, 745}, {110, 95}, {705, 95}} {
		flower(c, f[0], f[1], 6, 8, 8, 24)
	}

	c.Layer("paisleys", 0)
	for _, p := range [][4]float64{
		{220, 250, 220, -50},
		{590, 240, 200, 230},
		{410, 450, 230, -120},
		{230, 610, 190, 20},
		{600, 620, 200, 200},
	} {
		paisley(c, p[0], p[1], p[2], p[3])
	}
}

// paisley draws one drop whose round end sits at (x, y) and whose tip
// points along angle, size units away.
func paisley(c *stillness.Context, x, y, size, angle float64) {
	bulb := stillness.Polar(x, y, size*0.3, angle)
	for k := -3; k <= 3; k++ {
		c.Petal(bulb.X, bulb.Y, size*0.46, angle+180+float64(k)*25, size*0.05, size*0.16)
	}
	c.Teardrop(x, y, 0, angle, size*0.45, size)
	c.Teardrop(x, y, size*0.12, angle, size*0.3, size*0.7)
	c.Teardrop(x, y, size*0.22, angle, size*0.17, size*0.45)
	c.Circle(bulb.X, bulb.Y, size*0.08)

	// The curl opens back toward the body.
	tip := stillness.Polar(x, y, size*1.05, angle)
	c.RingSegment(tip.X, tip.Y, size*0.04, size*0.08, angle+225, angle+495)
}
