package stillness

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Context carries everything a pattern generator draws with: the palette
// and its colour cursor, the outline style, the random source, the layer
// the next shapes belong to, and the canvas the shapes are collected on.
//
// A Context is not safe for concurrent use. Callers run one generator at
// a time against it; to replace a pattern, Clear the canvas and generate
// again.
type Context struct {
	palette     Palette
	theme       string
	cursor      int
	stroke      Color
	strokeWidth float64
	rng         *rand.Rand

	layer    string
	symmetry int

	shapes []*Shape
}

// NewContext creates a Context with the Default theme, the standard
// outline style and a time-seeded random source. Options override these.
//
// NewContext panics when an option is invalid, such as an unknown theme
// or an empty palette; use SetTheme or SetPalette to handle those errors.
func NewContext(opts ...Option) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.err != nil {
		panic(fmt.Sprintf("stillness: NewContext: %v", options.err))
	}
	if options.rng == nil {
		options.rng = timeSeededRand()
	}

	return &Context{
		palette:     options.palette,
		theme:       options.theme,
		cursor:      options.cursor,
		stroke:      options.stroke,
		strokeWidth: options.strokeWidth,
		rng:         options.rng,
		shapes:      make([]*Shape, 0, 256),
	}
}

// Sty styles s and submits it to the canvas: the fill is the palette
// colour under the cursor, the cursor advances by one, and the outline
// colour, outline width and current layer are applied. It returns s so
// the caller can keep transforming it; the canvas holds the same pointer.
//
// A nil shape is ignored and consumes no colour.
func (c *Context) Sty(s *Shape) *Shape {
	if s == nil {
		return nil
	}
	s.Fill = c.palette.At(c.cursor)
	c.cursor++
	s.Stroke = c.stroke
	s.StrokeWidth = c.strokeWidth
	s.Layer = c.layer
	s.Symmetry = c.symmetry
	c.shapes = append(c.shapes, s)
	return s
}

// SetPalette replaces the palette. The colour cursor keeps its position,
// so repeated generations keep varying their colours. An empty palette is
// rejected and the current one stays in place.
func (c *Context) SetPalette(p Palette) error {
	if len(p) == 0 {
		return ErrEmptyPalette
	}
	c.palette = p.Clone()
	c.theme = ""
	return nil
}

// SetTheme replaces the palette with a built-in theme. Like SetPalette it
// leaves the cursor untouched.
func (c *Context) SetTheme(name string) error {
	p, err := Theme(name)
	if err != nil {
		return err
	}
	c.palette = p
	c.theme = name
	return nil
}

// Palette returns a copy of the active palette.
func (c *Context) Palette() Palette {
	return c.palette.Clone()
}

// Theme returns the name of the active built-in theme, or "" after a
// custom palette was installed.
func (c *Context) Theme() string {
	return c.theme
}

// Cursor returns the colour cursor.
func (c *Context) Cursor() int {
	return c.cursor
}

// ResetCursor moves the colour cursor back to the first palette entry.
func (c *Context) ResetCursor() {
	c.cursor = 0
}

// Rand returns the random source generators draw from.
func (c *Context) Rand() *rand.Rand {
	return c.rng
}

// Layer tags the shapes styled from now on with name and the rotational
// symmetry order of that layer. Order 0 marks a layer without rotational
// symmetry.
func (c *Context) Layer(name string, order int) {
	c.layer = name
	c.symmetry = order
}

// Ring draws one n-fold ring: it switches to layer name with order n and
// calls fn for every sector with its index and base angle i*360/n.
func (c *Context) Ring(name string, n int, fn func(i int, angle float64)) {
	c.Layer(name, n)
	da := 360 / float64(n)
	for i := range n {
		fn(i, float64(i)*da)
	}
}

// Clear removes every shape from the canvas and resets the layer tag.
// The colour cursor is kept.
func (c *Context) Clear() {
	clear(c.shapes)
	c.shapes = c.shapes[:0]
	c.layer = ""
	c.symmetry = 0
}

// Remove takes s off the canvas and reports whether it was there.
func (c *Context) Remove(s *Shape) bool {
	i := slices.Index(c.shapes, s)
	if i < 0 {
		return false
	}
	c.shapes = slices.Delete(c.shapes, i, i+1)
	return true
}

// Shapes returns the shapes on the canvas in drawing order.
// The slice is a copy; the shapes are shared.
func (c *Context) Shapes() []*Shape {
	return slices.Clone(c.shapes)
}

// Len returns the number of shapes on the canvas.
func (c *Context) Len() int {
	return len(c.shapes)
}

// Background fills the whole canvas with a styled rectangle.
func (c *Context) Background() *Shape {
	return c.Sty(Rect(0, 0, Size, Size))
}

// Rect draws a styled rectangle.
func (c *Context) Rect(x, y, w, h float64) *Shape {
	return c.Sty(Rect(x, y, w, h))
}

// Circle draws a styled circle.
func (c *Context) Circle(cx, cy, r float64) *Shape {
	return c.Sty(Circle(cx, cy, r))
}

// Ellipse draws a styled ellipse of full size w×h.
func (c *Context) Ellipse(cx, cy, w, h float64) *Shape {
	return c.Sty(Ellipse(cx, cy, w, h))
}

// Polygon draws a styled closed polygon.
func (c *Context) Polygon(pts ...Point) *Shape {
	return c.Sty(Polygon(pts...))
}

// Star draws a styled star.
func (c *Context) Star(cx, cy float64, points int, r1, r2 float64) *Shape {
	return c.Sty(Star(cx, cy, points, r1, r2))
}

// RegularPolygon draws a styled regular polygon.
func (c *Context) RegularPolygon(cx, cy float64, n int, r, rotation float64) *Shape {
	return c.Sty(RegularPolygon(cx, cy, n, r, rotation))
}

// RingSegment draws a styled ring segment. Degenerate segments draw
// nothing and return nil.
func (c *Context) RingSegment(cx, cy, r1, r2, startDeg, endDeg float64) *Shape {
	return c.Sty(RingSegment(cx, cy, r1, r2, startDeg, endDeg))
}

// Petal draws a styled petal.
func (c *Context) Petal(cx, cy, r, angleDeg, width, length float64) *Shape {
	return c.Sty(Petal(cx, cy, r, angleDeg, width, length))
}

// Diamond draws a styled diamond.
func (c *Context) Diamond(cx, cy, r, angleDeg, width, length float64) *Shape {
	return c.Sty(Diamond(cx, cy, r, angleDeg, width, length))
}

// Teardrop draws a styled teardrop.
func (c *Context) Teardrop(cx, cy, r, angleDeg, width, length float64) *Shape {
	return c.Sty(Teardrop(cx, cy, r, angleDeg, width, length))
}

// Artwork snapshots the canvas as an Artwork named name.
func (c *Context) Artwork(name string) *Artwork {
	return newArtwork(name, c.theme, c.Shapes())
}
