// Package pdf provides a single-page PDF backend for the render package,
// built on seehuhn.de/go/pdf.
//
// Shapes are written as vector paths in DeviceRGB colour with round line
// joins, so the page prints at any size. The canvas is flipped vertically
// to match the bottom-up PDF coordinate system.
//
// # Example
//
//	import _ "github.com/gogpu/stillness/render/pdf"
//
//	b, _ := render.NewBackend("pdf")
//	render.Playback(art, b, 595)
//	b.(render.FileBackend).SaveToFile("pattern.pdf")
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/gogpu/stillness"
	"github.com/gogpu/stillness/render"
)

func init() {
	render.Register("pdf", func() render.Backend {
		return NewBackend()
	})
}

// ErrNotStarted is returned when drawing before Begin or writing before
// End.
var ErrNotStarted = errors.New("pdf: backend not started")

// Backend writes shapes onto a single PDF page held in memory.
type Backend struct {
	buf    bytes.Buffer
	page   *document.Page
	m      stillness.Matrix
	height float64
	done   bool
}

var (
	_ render.WriterBackend = (*Backend)(nil)
	_ render.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new PDF backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{m: stillness.Identity()}
}

// Begin starts a document with one page of width×height points.
func (b *Backend) Begin(width, height int) error {
	b.buf.Reset()
	b.done = false
	b.height = float64(height)

	size := &pdf.Rectangle{URx: float64(width), URy: float64(height)}
	page, err := document.WriteSinglePage(&b.buf, size, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("pdf: begin: %w", err)
	}
	page.SetLineJoin(graphics.LineJoinRound)
	b.page = page
	return nil
}

// SetTransform sets the matrix from canvas to page coordinates, before
// the vertical flip.
func (b *Backend) SetTransform(m stillness.Matrix) {
	b.m = m
}

// DrawShape fills and strokes closed shapes and strokes open ones.
func (b *Backend) DrawShape(s *stillness.Shape) error {
	if b.page == nil || b.done {
		return ErrNotStarted
	}
	m := stillness.Translate(0, b.height).Multiply(stillness.Scale(1, -1)).Multiply(b.m)
	p := s.Path.Transform(m)
	if p.Len() == 0 {
		return nil
	}

	b.page.SetLineWidth(s.StrokeWidth * m.ScaleFactor())
	b.page.SetStrokeColor(deviceRGB(s.Stroke))
	b.page.SetFillColor(deviceRGB(s.Fill))
	b.writePath(p)
	if s.Closed {
		b.page.FillAndStroke()
	} else {
		b.page.Stroke()
	}
	return b.page.Err
}

// writePath emits the path construction operators for p. Quadratic
// segments are raised to cubics.
func (b *Backend) writePath(p *stillness.Path) {
	var current stillness.Point
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case stillness.MoveTo:
			b.page.MoveTo(e.Point.X, e.Point.Y)
			current = e.Point
		case stillness.LineTo:
			b.page.LineTo(e.Point.X, e.Point.Y)
			current = e.Point
		case stillness.QuadTo:
			c1 := current.Lerp(e.Control, 2.0/3)
			c2 := e.Point.Lerp(e.Control, 2.0/3)
			b.page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, e.Point.X, e.Point.Y)
			current = e.Point
		case stillness.CubicTo:
			b.page.CurveTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
			current = e.Point
		case stillness.Close:
			b.page.ClosePath()
		}
	}
}

// End writes the page and closes the document.
func (b *Backend) End() error {
	if b.page == nil {
		return ErrNotStarted
	}
	if b.done {
		return nil
	}
	if err := b.page.Close(); err != nil {
		return fmt.Errorf("pdf: end: %w", err)
	}
	b.done = true
	stillness.Logger().Debug("pdf end", "bytes", b.buf.Len())
	return nil
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, ErrNotStarted
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the finished document to path.
func (b *Backend) SaveToFile(path string) error {
	if !b.done {
		return ErrNotStarted
	}
	if err := os.WriteFile(path, b.buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("pdf: save: %w", err)
	}
	return nil
}

func deviceRGB(c stillness.Color) color.Color {
	r, g, bl, _ := c.Float()
	return color.DeviceRGB(r, g, bl)
}
