package patterns

import "github.com/gogpu/stillness"

// tile is the side length of Mosaic tiles and Kente blocks.
const tile = stillness.Size / 8

// Mosaic is an 8×8 grid of square tiles cycling through four motifs
// along the diagonals.
func Mosaic(c *stillness.Context) {
	background(c)
	c.Layer("tiles", 0)
	for row := range 8 {
		for col := range 8 {
			x, y := float64(col*tile), float64(row*tile)
			c.Rect(x, y, tile, tile)
			mosaicMotif(c, (row+col)%4, x, y)
		}
	}
}

func mosaicMotif(c *stillness.Context, motif int, x, y float64) {
	mx, my := x+tile/2, y+tile/2
	switch motif {
	case 0: // four-petal cross
		for j := range 4 {
			c.Petal(mx, my, 4, 45+float64(j)*90, 12, 40)
		}
		c.Circle(mx, my, 8)
	case 1: // inset diamond
		c.Polygon(
			stillness.Pt(mx, y+8),
			stillness.Pt(x+tile-8, my),
			stillness.Pt(mx, y+tile-8),
			stillness.Pt(x+8, my),
		)
		c.Circle(mx, my, 14)
	case 2: // quarter circles and a compass star
		c.RingSegment(x, y, 0, 40, 0, 90)
		c.RingSegment(x+tile, y+tile, 0, 40, 180, 270)
		c.Star(mx, my, 4, 22, 9)
	default: // concentric rosette
		c.Circle(mx, my, 38)
		c.RegularPolygon(mx, my, 8, 30, 22.5)
		c.Circle(mx, my, 12)
	}
}

// Kente is a woven cloth of eight vertical strips, each made of eight
// blocks with interlocking motifs, separated by warp stripes.
func Kente(c *stillness.Context) {
	background(c)
	c.Layer("blocks", 0)
	for col := range 8 {
		for row := range 8 {
			x, y := float64(col*tile), float64(row*tile)
			c.Rect(x, y, tile, tile)
			kenteMotif(c, (col+row*3)%4, x, y)
		}
	}
	c.Layer("warp", 0)
	for col := 1; col < 8; col++ {
		c.Rect(float64(col*tile)-4, 0, 8, stillness.Size)
	}
}

func kenteMotif(c *stillness.Context, motif int, x, y float64) {
	mx, my := x+tile/2, y+tile/2
	switch motif {
	case 0: // weft bars
		for k := range 3 {
			c.Rect(x, y+14+float64(k)*28, tile, 14)
		}
	case 1: // chevrons
		for _, dy := range []float64{10, 55} {
			top := y + dy
			c.Polygon(
				stillness.Pt(x, top+20),
				stillness.Pt(x+25, top),
				stillness.Pt(x+50, top+20),
				stillness.Pt(x+75, top),
				stillness.Pt(x+tile, top+20),
				stillness.Pt(x+tile, top+35),
				stillness.Pt(x+75, top+15),
				stillness.Pt(x+50, top+35),
				stillness.Pt(x+25, top+15),
				stillness.Pt(x, top+35),
			)
		}
	case 2: // nested diamonds
		for _, inset := range []float64{10, 30} {
			c.Polygon(
				stillness.Pt(mx, y+inset),
				stillness.Pt(x+tile-inset, my),
				stillness.Pt(mx, y+tile-inset),
				stillness.Pt(x+inset, my),
			)
		}
	default: // checks
		for k := range 4 {
			c.Rect(x+10+float64(k%2)*40, y+10+float64(k/2)*40, 40, 40)
		}
	}
}
