package patterns

import "github.com/gogpu/stillness"

// Elephant is a festival elephant in front of a petal halo, dressed in a
// tasselled blanket and headdress, standing among flowers.
func Elephant(c *stillness.Context) {
	background(c)

	const hx, hy = 400.0, 360.0
	c.Layer("halo", 0)
	for i := range 24 {
		a := float64(i) * 15
		c.RingSegment(hx, hy, 230, 248, a, a+15)
	}
	for i := range 24 {
		c.Petal(hx, hy, 250, float64(i)*15+7.5, 18, 110)
	}

	c.Layer("ground", 0)
	c.Rect(0, 640, stillness.Size, stillness.Size-640)
	for i := range 6 {
		flower(c, 70+float64(i)*132, 730, 6, 6, 7, 20)
	}

	c.Layer("elephant", 0)
	for _, l := range [][4]float64{
		{250, 500, 50, 150},
		{320, 510, 50, 140},
		{450, 510, 50, 140},
		{520, 500, 50, 150},
	} {
		x, y, w, h := l[0], l[1], l[2], l[3]
		c.Rect(x, y, w, h)
		for t := range 3 {
			c.Circle(x+10+float64(t)*15, y+h-4, 6)
		}
	}
	c.Diamond(220, 430, 0, 150, 6, 60)
	c.Ellipse(400, 430, 360, 230)

	const bx, by = 400.0, 300.0
	for i := range 6 {
		a := 30 + float64(i)*20
		c.RingSegment(bx, by, 60, 118, a, a+20)
	}
	for i := range 5 {
		c.Diamond(bx, by, 118, 50+float64(i)*20, 5, 24)
	}

	const headX, headY = 560.0, 340.0
	c.Circle(headX, headY, 95)
	c.Teardrop(headX, headY, 20, 200, 60, 120)
	for j := -2; j <= 2; j++ {
		c.Diamond(headX, headY, 75, -90+float64(j)*20, 8, 40)
	}
	top := stillness.Polar(headX, headY, 122, -90)
	c.Circle(top.X, top.Y, 10)
	c.Circle(590, 315, 9)
	c.Circle(590, 315, 4)

	for k := range 8 {
		fk := float64(k)
		c.Circle(640+8*fk, 390+38*fk-2.5*fk*fk, 24-2.2*fk)
	}
	c.Petal(600, 400, 0, 60, 8, 70)
}
