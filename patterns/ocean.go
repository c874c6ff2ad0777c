package patterns

import (
	"math"

	"github.com/gogpu/stillness"
)

// Ocean is an underwater scene: layered wave bands over a sandy floor,
// fish, bubbles, jellyfish, seaweed, starfish, a shell and coral.
func Ocean(c *stillness.Context) {
	background(c)

	c.Layer("water", 0)
	for k := range 6 {
		c.Sty(waveBand(80+float64(k)*120, 16, float64(k)))
	}

	c.Layer("jellyfish", 0)
	for _, j := range [][2]float64{{300, 170}, {640, 130}} {
		jellyfish(c, j[0], j[1])
	}

	c.Layer("fish", 0)
	for _, f := range []struct{ x, y, size, dir float64 }{
		{180, 260, 40, 1},
		{560, 240, 48, -1},
		{330, 420, 36, 1},
		{620, 420, 44, -1},
		{150, 560, 32, -1},
		{480, 580, 30, 1},
	} {
		fish(c, f.x, f.y, f.size, f.dir)
	}

	c.Layer("bubbles", 0)
	for _, b := range [][3]float64{
		{230, 200, 8}, {240, 170, 5}, {250, 148, 3},
		{500, 190, 7}, {492, 160, 5},
		{395, 360, 6}, {405, 335, 4},
		{90, 480, 7}, {100, 452, 4},
	} {
		c.Circle(b[0], b[1], b[2])
	}

	c.Layer("seaweed", 0)
	for _, x := range []float64{60, 250, 470, 740} {
		for j, sway := range []float64{-15, 0, 15} {
			c.Teardrop(x+sway, 795, 0, -90+sway, 14, 110+float64(j%2)*50)
		}
	}

	c.Layer("starfish", 0)
	for _, s := range [][2]float64{{130, 740}, {560, 750}} {
		c.Star(s[0], s[1], 5, 30, 13)
		c.Circle(s[0], s[1], 6)
	}

	c.Layer("shell", 0)
	const shellX, shellY, ribs = 370.0, 775.0, 7
	for i := range ribs {
		a := 180 + float64(i)*180/ribs
		c.RingSegment(shellX, shellY, 10, 58, a, a+180.0/ribs)
	}
	c.Circle(shellX, shellY, 10)

	c.Layer("coral", 0)
	const coralX, coralY = 680.0, 785.0
	for i := range 5 {
		a := -150 + float64(i)*30
		length := 90 + float64(i%2)*30
		c.Diamond(coralX, coralY, 0, a, 10, length)
		tip := stillness.Polar(coralX, coralY, length+6, a)
		c.Circle(tip.X, tip.Y, 7)
	}
}

// waveBand returns the region below a smoothed sine wave at height y,
// reaching past the bottom of the canvas.
func waveBand(y, amp, phase float64) *stillness.Shape {
	var pts []stillness.Point
	for x := -20.0; x <= stillness.Size+20; x += 70 {
		pts = append(pts, stillness.Pt(x, y+amp*math.Sin(x/120*math.Pi+phase)))
	}
	s := stillness.Polyline(pts...).Smooth(0.5)
	first, last := pts[0], pts[len(pts)-1]
	s.Path.LineTo(last.X, stillness.Size+20)
	s.Path.LineTo(first.X, stillness.Size+20)
	s.Path.Close()
	s.Closed = true
	return s
}

// fish draws a fish of body length 2.2*size facing right when dir is 1
// and left when dir is -1.
func fish(c *stillness.Context, x, y, size, dir float64) {
	c.Polygon(
		stillness.Pt(x-dir*size, y),
		stillness.Pt(x-dir*size*1.6, y-size*0.5),
		stillness.Pt(x-dir*size*1.6, y+size*0.5),
	)
	c.Ellipse(x, y, size*2.2, size)
	c.Petal(x, y-size*0.3, 0, -90-dir*25, size*0.15, size*0.45)
	gill := 0.0
	if dir < 0 {
		gill = 180
	}
	c.RingSegment(x, y, size*0.3, size*0.38, gill-50, gill+50)
	c.Circle(x+dir*size*0.65, y-size*0.1, size*0.12)
}

func jellyfish(c *stillness.Context, x, y float64) {
	for t := range 4 {
		c.Petal(x-24+float64(t)*16, y, 0, 90, 5, 70)
	}
	c.RingSegment(x, y, 0, 42, 180, 360)
	c.RingSegment(x, y, 0, 24, 200, 340)
}
