package patterns

import "github.com/gogpu/stillness"

// Garden is a sunny garden: a picket fence, clouds, a row of flowers,
// grass tufts and a stepping-stone path.
func Garden(c *stillness.Context) {
	background(c)

	c.Layer("sky", 0)
	const sunX, sunY = 690.0, 110.0
	for i := range 12 {
		c.Diamond(sunX, sunY, 52, float64(i)*30, 6, 26)
	}
	c.Circle(sunX, sunY, 45)
	c.Circle(sunX, sunY, 28)
	for _, cl := range [][2]float64{{150, 100}, {420, 150}} {
		x, y := cl[0], cl[1]
		c.Ellipse(x, y+10, 140, 40)
		c.Circle(x-40, y, 28)
		c.Circle(x, y-15, 36)
		c.Circle(x+40, y, 28)
	}

	c.Layer("ground", 0)
	c.Rect(0, 560, stillness.Size, stillness.Size-560)

	c.Layer("fence", 0)
	c.Rect(0, 470, stillness.Size, 14)
	c.Rect(0, 520, stillness.Size, 14)
	for i := range 10 {
		x := 20 + float64(i)*80
		c.Polygon(
			stillness.Pt(x, 560),
			stillness.Pt(x, 450),
			stillness.Pt(x+20, 430),
			stillness.Pt(x+40, 450),
			stillness.Pt(x+40, 560),
		)
	}

	c.Layer("stones", 0)
	for _, s := range [][4]float64{
		{330, 770, 90, 34},
		{455, 728, 80, 30},
		{370, 690, 70, 26},
	} {
		c.Ellipse(s[0], s[1], s[2], s[3])
	}

	c.Layer("flowers", 0)
	for i := range 7 {
		x := 70 + float64(i)*110
		y := 420 + float64(i%3)*30
		c.Rect(x-3, y, 6, 660-y)
		c.Petal(x, y+90, 0, 200, 10, 45)
		c.Petal(x, y+120, 0, -20, 10, 45)
		flower(c, x, y, 5+i%3, 10, 12, 34)
	}

	c.Layer("grass", 0)
	for i := range 20 {
		c.Diamond(20+float64(i)*40, stillness.Size, 0, -90+float64(i%3-1)*12, 6, 40)
	}
}
