package patterns

import "github.com/gogpu/stillness"

// Sashiko is a stitched sampler: overlapping seigaiha wave scales above,
// a field of asanoha stars below, and running stitches framing both.
func Sashiko(c *stillness.Context) {
	background(c)

	c.Layer("seigaiha", 0)
	const scale = 48.0
	for row := range 10 {
		y := 80 + float64(row)*30
		shift := float64(row%2) * 40
		for col := range 11 {
			x := float64(col)*80 + shift - 40
			for k := range 4 {
				r := float64(k) * scale / 4
				c.RingSegment(x, y, r, r+scale/4, 180, 360)
			}
		}
	}

	c.Layer("asanoha", 0)
	for row := range 3 {
		y := 500 + float64(row)*90
		shift := float64(row%2) * 60
		for col := range 6 {
			x := 100 + float64(col)*120 + shift - 30
			for j := range 6 {
				c.Diamond(x, y, 0, float64(j)*60+30, 10, 46)
			}
			c.Circle(x, y, 5)
		}
	}

	c.Layer("stitches", 0)
	for i := range 20 {
		t := 20 + float64(i)*38
		c.Rect(t, 14, 22, 5)
		c.Rect(t, 781, 22, 5)
		c.Rect(14, t, 5, 22)
		c.Rect(781, t, 5, 22)
		c.Rect(t, 428, 22, 5)
	}
}
