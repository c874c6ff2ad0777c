package patterns

import (
	"math"

	"github.com/gogpu/stillness"
)

// Space is a deep-space scene: a spiral galaxy, a nebula, a rocket, a
// space station, an astronaut and a satellite among asteroids, planets,
// stars and meteors. Cluster stars, nebula outlines and asteroids are
// jittered with the Context's random source.
func Space(c *stillness.Context) {
	background(c)
	galaxy(c, 220, 280, 90)
	nebula(c, 600, 150, 80)
	rocket(c, 650, 500, 100)
	station(c, 150, 120)
	astronaut(c, 120, 550)
	satellite(c, 580, 650)
	asteroidBelt(c)
	swirls(c, 80, 720)
	planets(c)
	starField(c)
	meteors(c)
	wormhole(c, 760, 360)
	dustClouds(c)
	supernova(c, 720, 580)
	detailStars(c)
}

func galaxy(c *stillness.Context, x, y, r float64) {
	c.Layer("galaxy", 0)
	c.Circle(x, y, r*0.18)
	c.Circle(x, y, r*0.35)
	c.Circle(x, y, r*0.55)

	for arm := range 4 {
		base := float64(arm) * 90
		for i := range 12 {
			t := float64(i) / 12
			angle := base + t*180
			w := 12 - t*6
			p := stillness.Polar(x, y, r*0.55+t*r*0.8, angle)
			c.Ellipse(p.X, p.Y, w*2.5, w).Rotate(angle + 15)
		}
	}

	rng := c.Rand()
	for i := range 20 {
		p := stillness.Polar(x, y, r*(0.4+rng.Float64()*0.5), float64(i)*73)
		c.Star(p.X, p.Y, 4, 2, 4)
	}
}

func nebula(c *stillness.Context, x, y, r float64) {
	c.Layer("nebula", 0)
	rng := c.Rand()
	for layer := range 5 {
		n := 8 + layer*2
		pts := make([]stillness.Point, n)
		for i := range n {
			rad := r * (0.5 + float64(layer)*0.15) * (0.8 + math.Sin(float64(i)*3)*0.2)
			rad *= 0.95 + rng.Float64()*0.1
			pts[i] = stillness.Polar(x, y, rad, float64(i)/float64(n)*360)
		}
		c.Sty(stillness.Polygon(pts...).Smooth(0.5))
	}
	for i := range 12 {
		p := stillness.Polar(x, y, r*0.4, float64(i)*30)
		c.Circle(p.X, p.Y, 6+float64(i%3)*2)
	}
}

func rocket(c *stillness.Context, x, y, h float64) {
	c.Layer("rocket", 0)
	c.Polygon(
		stillness.Pt(x, y-h*0.5),
		stillness.Pt(x-15, y-h*0.3),
		stillness.Pt(x+15, y-h*0.3),
	)
	c.Rect(x-15, y-h*0.3, 30, h*0.25)
	c.Rect(x-15, y-h*0.05, 30, h*0.25)
	c.Rect(x-15, y+h*0.2, 30, h*0.2)
	for _, side := range []float64{-1, 1} {
		c.Polygon(
			stillness.Pt(x+side*15, y+h*0.3),
			stillness.Pt(x+side*35, y+h*0.5),
			stillness.Pt(x+side*15, y+h*0.4),
		)
	}
	c.Circle(x, y-h*0.18, 6)
	c.Circle(x, y+5, 5)
	for i := range 3 {
		c.Diamond(x+float64(i-1)*8, y+h*0.4, 0, 90, 4, 18+float64(i)*4)
	}
}

func station(c *stillness.Context, x, y float64) {
	c.Layer("station", 0)
	c.Circle(x, y, 25)
	c.Circle(x, y, 15)
	for i := range 4 {
		a := float64(i) * 90
		m := stillness.Polar(x, y, 40, a)
		c.Rect(m.X-12, m.Y-10, 24, 20)
		c.RingSegment(x, y, 25, 40, a-3, a+3)
		for w := range 2 {
			c.Circle(m.X-6+float64(w)*12, m.Y, 3)
		}
	}
	for i, side := range []float64{-1, 1} {
		px := x + side*70
		for s := range 6 {
			c.Rect(px-8, y-18+float64(s)*6, 16, 5)
		}
		armX := x + 25
		if i == 0 {
			armX = x - 40
		}
		c.Rect(armX, y-2, 30, 4)
	}
}

func astronaut(c *stillness.Context, x, y float64) {
	c.Layer("astronaut", 0)
	c.Circle(x, y-35, 22)
	c.Circle(x, y-35, 16)
	c.Rect(x-18, y-15, 36, 45)
	c.Rect(x-12, y-8, 24, 16)
	for i := range 6 {
		c.Rect(x-10+float64(i%3)*8, y-6+float64(i/3)*8, 6, 6)
	}
	c.Rect(x-28, y-12, 10, 30)
	c.Rect(x+18, y-12, 10, 30)
	c.Rect(x-14, y+30, 12, 35)
	c.Rect(x+2, y+30, 12, 35)
	c.Rect(x-14, y+65, 14, 10)
	c.Rect(x+2, y+65, 14, 10)
	c.Rect(x-16, y-10, 32, 28)
	for i := range 4 {
		c.Circle(x-10+float64(i%2)*20, y-2+float64(i/2)*12, 4)
	}
}

func satellite(c *stillness.Context, x, y float64) {
	c.Layer("satellite", 0)
	c.Rect(x-20, y-15, 40, 30)
	c.Rect(x-2, y-40, 4, 25)
	c.Circle(x, y-42, 5)
	c.Ellipse(x, y-15, 50, 20)
	c.Circle(x, y-15, 8)
	for _, side := range []float64{-1, 1} {
		for i := range 4 {
			c.Rect(x+side*(25+float64(i)*14), y-10, 12, 20)
		}
	}
	for i := range 4 {
		c.Rect(x-16+float64(i%2)*16, y-11+float64(i/2)*12, 12, 10)
	}
}

// asteroids lists the belt's rocks as {x, y, radius}.
var asteroids = [][3]float64{
	{350, 200, 15}, {410, 240, 22}, {480, 190, 18}, {520, 260, 16},
	{300, 340, 20}, {370, 380, 14}, {440, 360, 19}, {510, 400, 17},
	{280, 460, 16}, {340, 500, 21}, {410, 480, 15}, {475, 520, 18},
}

func asteroidBelt(c *stillness.Context) {
	c.Layer("asteroids", 0)
	rng := c.Rand()
	for _, a := range asteroids {
		x, y, r := a[0], a[1], a[2]
		n := 6 + rng.IntN(3)
		pts := make([]stillness.Point, n)
		for i := range n {
			pts[i] = stillness.Polar(x, y, r*(0.7+rng.Float64()*0.3), float64(i)/float64(n)*360)
		}
		c.Polygon(pts...)
		for i := range 3 {
			p := stillness.Polar(x, y, r*0.5, float64(i)*120)
			c.Circle(p.X, p.Y, r*0.2)
		}
	}
}

func swirls(c *stillness.Context, x, y float64) {
	c.Layer("swirls", 0)
	for i := range 6 {
		r := 25 + float64(i)*12
		c.RingSegment(x, y, r, r+8, 180+float64(i)*10, 360-float64(i)*8)
	}
}

type planet struct {
	x, y, r float64
	bands   int
	ringed  bool
}

var planetList = []planet{
	{420, 80, 18, 2, true},
	{720, 240, 22, 3, false},
	{180, 380, 16, 2, false},
	{700, 620, 20, 3, true},
	{250, 680, 14, 2, false},
}

func planets(c *stillness.Context) {
	c.Layer("planets", 0)
	for _, p := range planetList {
		c.Circle(p.x, p.y, p.r)
		for i := 1; i <= p.bands; i++ {
			by := p.y - p.r + 2*p.r/float64(p.bands+1)*float64(i)
			half := math.Sqrt(math.Max(0, p.r*p.r-(by-p.y)*(by-p.y)))
			c.Polygon(
				stillness.Pt(p.x-half, by-2),
				stillness.Pt(p.x+half, by-2),
				stillness.Pt(p.x+half, by+2),
				stillness.Pt(p.x-half, by+2),
			)
		}
		if p.ringed {
			c.RingSegment(p.x, p.y, p.r+4, p.r+10, 160, 380)
			c.RingSegment(p.x, p.y, p.r+11, p.r+16, 165, 375)
		}
	}
}

// fieldStars lists the background stars as {x, y, outer radius}.
var fieldStars = [][3]float64{
	{60, 50, 3}, {180, 40, 4}, {320, 35, 3}, {560, 70, 5}, {740, 90, 4},
	{45, 180, 4}, {290, 160, 3}, {510, 140, 4}, {680, 180, 3}, {760, 220, 5},
	{30, 280, 3}, {440, 300, 4}, {630, 320, 3}, {750, 360, 4},
	{70, 420, 5}, {540, 440, 3}, {740, 480, 4},
	{40, 560, 4}, {280, 580, 3}, {480, 600, 5}, {680, 560, 3},
	{160, 680, 4}, {400, 720, 3}, {540, 740, 4}, {720, 700, 5},
}

func starField(c *stillness.Context) {
	c.Layer("star field", 0)
	for _, s := range fieldStars {
		c.Star(s[0], s[1], 4, s[2]*0.4, s[2])
	}
}

func meteors(c *stillness.Context) {
	c.Layer("meteors", 0)
	for i := range 5 {
		x := 450 + float64(i)*60
		y := 50 + float64(i)*30
		c.Circle(x, y, 5)
		c.Polygon(
			stillness.Pt(x+3, y-3),
			stillness.Pt(x+25, y-22),
			stillness.Pt(x+28, y-18),
			stillness.Pt(x+5, y+1),
		)
	}
}

func wormhole(c *stillness.Context, x, y float64) {
	c.Layer("wormhole", 0)
	for i := range 8 {
		r := 15 + float64(i)*8
		c.RingSegment(x, y, r, r+6, 90, 270)
	}
}

var dustList = [][3]float64{
	{240, 60, 12}, {350, 90, 10}, {500, 55, 11},
	{120, 240, 9}, {550, 280, 10},
}

func dustClouds(c *stillness.Context) {
	c.Layer("dust", 0)
	for _, d := range dustList {
		for i := range 6 {
			p := stillness.Polar(d[0], d[1], d[2]*0.8, float64(i)*60)
			c.Circle(p.X, p.Y, 3+float64(i%3))
		}
	}
}

func supernova(c *stillness.Context, x, y float64) {
	c.Layer("supernova", 0)
	c.Circle(x, y, 8)
	c.Circle(x, y, 4)
	for i := range 16 {
		length := 25.0
		if i%2 == 0 {
			length = 35
		}
		c.Petal(x, y, 8, float64(i)*22.5, 3, length)
	}
}

var detailList = [][3]float64{
	{115, 90, 2}, {265, 120, 3}, {395, 145, 2}, {455, 95, 3},
	{95, 310, 2}, {335, 270, 3}, {565, 235, 2}, {620, 410, 3},
	{215, 535, 2}, {365, 455, 3}, {505, 565, 2}, {655, 675, 3},
	{305, 635, 2}, {125, 605, 3}, {455, 685, 2}, {600, 730, 3},
}

func detailStars(c *stillness.Context) {
	c.Layer("detail stars", 0)
	for _, d := range detailList {
		c.Star(d[0], d[1], 5, d[2]*0.35, d[2])
	}
}
