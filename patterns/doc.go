// Package patterns contains the built-in colouring-book illustrations and
// the ordered registry that addresses them by index.
//
// Every generator draws onto a [stillness.Context]: it fills the canvas
// with a background rectangle and then lays out its composition with the
// shape primitives. Two families exist. Radially symmetric patterns
// (Mandala, Floral, Geometric, Zentangle, Celestial and the Zodiac wheel)
// build every ring through [stillness.Context.Ring], so each ring holds
// an exact multiple of its symmetry order. Scene patterns place their
// parts at fixed canvas positions.
//
// Space is the only pattern that uses randomness; seed the Context with
// [stillness.WithSeed] for reproducible output.
//
// Typical use:
//
//	c := stillness.NewContext(stillness.WithTheme("Spring Bloom"))
//	art := patterns.Default.Generate(c, 0)
//	fmt.Println(art.Name, len(art.Shapes))
package patterns

import "github.com/gogpu/stillness"

// Centre of the canvas, the pivot of every radially symmetric pattern.
const (
	cx = stillness.Size / 2
	cy = stillness.Size / 2
)

// flower draws a simple blossom: n petals around a round heart.
func flower(c *stillness.Context, x, y float64, n int, r, width, length float64) {
	for j := range n {
		c.Petal(x, y, r, float64(j)*360/float64(n), width, length)
	}
	c.Circle(x, y, r+2)
}
