package patterns

import (
	"fmt"
	"math"

	"github.com/gogpu/stillness"
)

// Sign is one of the twelve zodiac signs, in calendar order starting
// with Aries.
type Sign uint8

// Zodiac signs.
const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces

	signCount
)

var signNames = [signCount]string{
	Aries:       "Aries",
	Taurus:      "Taurus",
	Gemini:      "Gemini",
	Cancer:      "Cancer",
	Leo:         "Leo",
	Virgo:       "Virgo",
	Libra:       "Libra",
	Scorpio:     "Scorpio",
	Sagittarius: "Sagittarius",
	Capricorn:   "Capricorn",
	Aquarius:    "Aquarius",
	Pisces:      "Pisces",
}

// String returns the name of the sign.
func (s Sign) String() string {
	if s < signCount {
		return signNames[s]
	}
	return fmt.Sprintf("Sign(%d)", uint8(s))
}

// Signs returns all twelve signs in calendar order.
func Signs() []Sign {
	signs := make([]Sign, signCount)
	for i := range signs {
		signs[i] = Sign(i)
	}
	return signs
}

// radToDeg converts the small angular offsets the sign symbols are laid
// out with.
const radToDeg = 180 / math.Pi

// spoke draws the thin quadrilateral between radii r1 and r2 bounded by
// the rays at angle+lo and angle+hi, with lo and hi in radians.
func spoke(c *stillness.Context, x, y, r1, r2, angle, lo, hi float64) *stillness.Shape {
	a, b := angle+lo*radToDeg, angle+hi*radToDeg
	return c.Polygon(
		stillness.Polar(x, y, r1, a),
		stillness.Polar(x, y, r2, a),
		stillness.Polar(x, y, r2, b),
		stillness.Polar(x, y, r1, b),
	)
}

// drawSign draws the symbol of s in the sign band of the wheel centred
// on (x, y), on the ray at angle degrees.
func drawSign(c *stillness.Context, s Sign, x, y, angle float64) {
	switch s {
	case Aries: // ram horns
		c.Diamond(x, y, 310, angle-8, 12, 38)
		c.Diamond(x, y, 310, angle+8, 12, 38)
	case Taurus: // bull horns
		c.Petal(x, y, 305, angle-10, 10, 42)
		c.Petal(x, y, 305, angle+10, 10, 42)
	case Gemini: // twin pillars
		for j := range 2 {
			off := (float64(j) - 0.5) * 15
			spoke(c, x, y, 295+off, 335+off, angle, -0.05, 0.05)
		}
	case Cancer: // claws
		c.Teardrop(x, y, 300, angle-9, 16, 45)
		c.Teardrop(x, y, 300, angle+9, 16, 45)
	case Leo: // mane
		for j := -1; j <= 1; j++ {
			c.Petal(x, y, 305, angle+float64(j)*8, 8, 40)
		}
	case Virgo: // wheat stalk
		spoke(c, x, y, 300, 340, angle, -0.02, 0.02)
		for j := range 3 {
			p := stillness.Polar(x, y, 310+float64(j)*12, angle)
			c.Circle(p.X, p.Y, 4)
		}
	case Libra: // balance beam
		spoke(c, x, y, 305, 335, angle, -0.08, -0.06)
		a := angle - 0.07*radToDeg
		for _, r := range []float64{310, 330} {
			p := stillness.Polar(x, y, r, a)
			c.Circle(p.X, p.Y, 8)
		}
	case Scorpio: // stinger
		c.Teardrop(x, y, 295, angle, 20, 50)
		p := stillness.Polar(x, y, 325, angle)
		c.Circle(p.X, p.Y, 6)
	case Sagittarius: // arrow
		spoke(c, x, y, 295, 340, angle, -0.015, 0.015)
		c.Diamond(x, y, 335, angle, 8, 20)
	case Capricorn: // spiral horn
		for j := range 3 {
			p := stillness.Polar(x, y, 300+float64(j)*14, angle+float64(j)*4)
			c.Circle(p.X, p.Y, 5)
		}
	case Aquarius: // two waves
		for j := range 2 {
			r := 310 + float64(j)*20
			pts := make([]stillness.Point, 5)
			for k := range pts {
				pts[k] = stillness.Polar(x, y, r, angle+(-0.06+float64(k)*0.03)*radToDeg)
			}
			c.Polygon(pts...)
		}
	case Pisces: // two fish
		for _, dr := range []float64{-12, 12} {
			p := stillness.Polar(x, y, 315+dr, angle)
			c.Circle(p.X, p.Y, 10)
		}
	default:
		panic(fmt.Sprintf("patterns: drawSign: unknown sign %v", s))
	}
}
