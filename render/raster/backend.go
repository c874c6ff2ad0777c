// Package raster provides a PNG backend for the render package.
//
// Fills are scan-converted by golang.org/x/image/vector with curves kept
// as curves. Outlines are expanded into segment quadrilaterals with round
// joins before rasterization. The backend can label the image with the
// pattern name and produce thumbnails.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/stillness/render/raster"
//
//	// Create via registry
//	b, _ := render.NewBackend("png")
//
//	// Or create directly, with a caption strip
//	b := raster.NewBackend(raster.WithCaption(true))
//
//	render.Playback(art, b, 1024)
//	b.SaveToFile("pattern.png")
//	thumb := b.Thumbnail(128)
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/stillness"
	"github.com/gogpu/stillness/render"
)

func init() {
	render.Register("png", func() render.Backend {
		return NewBackend()
	})
}

// ErrNotStarted is returned when drawing before Begin or writing before
// End.
var ErrNotStarted = errors.New("raster: backend not started")

// Option configures a Backend.
type Option func(*Backend)

// WithCaption adds a strip below the artwork showing its title.
func WithCaption(on bool) Option {
	return func(b *Backend) {
		b.caption = on
	}
}

// WithBackground sets the colour the image is cleared to. The default is
// opaque white.
func WithBackground(c color.Color) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// Backend rasterizes shapes into an RGBA image.
type Backend struct {
	img        *image.RGBA
	rast       *vector.Rasterizer
	m          stillness.Matrix
	width      int
	height     int
	title      string
	caption    bool
	background color.Color
	done       bool
}

var (
	_ render.WriterBackend = (*Backend)(nil)
	_ render.FileBackend   = (*Backend)(nil)
	_ render.ImageBackend  = (*Backend)(nil)
	_ render.TitledBackend = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		m:          stillness.Identity(),
		background: color.White,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetTitle sets the caption text.
func (b *Backend) SetTitle(title string) {
	b.title = title
}

// Begin allocates a width×height image, plus the caption strip when
// enabled, and clears it to the background colour.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	b.width, b.height = width, height
	total := height
	if b.caption {
		total += captionHeight(width)
	}
	b.img = image.NewRGBA(image.Rect(0, 0, width, total))
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(b.background), image.Point{}, draw.Src)
	b.rast = vector.NewRasterizer(width, height)
	b.rast.DrawOp = draw.Over
	b.done = false
	stillness.Logger().Debug("raster begin", "width", width, "height", total)
	return nil
}

// SetTransform sets the matrix applied to shape coordinates.
func (b *Backend) SetTransform(m stillness.Matrix) {
	b.m = m
}

// DrawShape fills s when it is closed, then strokes its outline.
func (b *Backend) DrawShape(s *stillness.Shape) error {
	if b.img == nil || b.done {
		return ErrNotStarted
	}
	p := s.Path.Transform(b.m)
	hw := s.StrokeWidth * b.m.ScaleFactor() / 2

	clip, ok := b.pixelBounds(p, hw)
	if !ok {
		return nil
	}
	origin := stillness.Pt(float64(clip.Min.X), float64(clip.Min.Y))

	if s.Closed && s.Fill.A > 0 {
		b.rast.Reset(clip.Dx(), clip.Dy())
		b.rast.DrawOp = draw.Over
		addPath(b.rast, p, origin)
		b.rast.Draw(b.img, clip, image.NewUniform(s.Fill), image.Point{})
	}
	if hw > 0 && s.Stroke.A > 0 {
		b.rast.Reset(clip.Dx(), clip.Dy())
		b.rast.DrawOp = draw.Over
		addStroke(b.rast, p, 2*hw, origin)
		b.rast.Draw(b.img, clip, image.NewUniform(s.Stroke), image.Point{})
	}
	return nil
}

// pixelBounds returns the pixels the outline of p, widened by pad, can
// touch inside the artwork area. The control hull bounds every curve.
func (b *Backend) pixelBounds(p *stillness.Path, pad float64) (image.Rectangle, bool) {
	pts := p.Vertices()
	if len(pts) == 0 {
		return image.Rectangle{}, false
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, q := range pts {
		if !q.IsFinite() {
			return image.Rectangle{}, false
		}
		minX, minY = math.Min(minX, q.X), math.Min(minY, q.Y)
		maxX, maxY = math.Max(maxX, q.X), math.Max(maxY, q.Y)
	}
	r := image.Rect(
		int(math.Floor(minX-pad))-1, int(math.Floor(minY-pad))-1,
		int(math.Ceil(maxX+pad))+1, int(math.Ceil(maxY+pad))+1,
	).Intersect(image.Rect(0, 0, b.width, b.height))
	return r, !r.Empty()
}

// End draws the caption, if enabled, and finishes the image.
func (b *Backend) End() error {
	if b.img == nil {
		return ErrNotStarted
	}
	if b.caption && !b.done {
		if err := drawCaption(b.img, b.title, b.height); err != nil {
			return err
		}
	}
	b.done = true
	stillness.Logger().Debug("raster end", "title", b.title)
	return nil
}

// Image returns the rendered image, or nil before End.
func (b *Backend) Image() image.Image {
	if !b.done {
		return nil
	}
	return b.img
}

// Thumbnail returns a copy of the image scaled so that its longer side
// is maxSide pixels, or nil before End.
func (b *Backend) Thumbnail(maxSide int) image.Image {
	if !b.done || maxSide <= 0 {
		return nil
	}
	src := b.img.Bounds()
	scale := float64(maxSide) / float64(max(src.Dx(), src.Dy()))
	w := max(1, int(math.Round(float64(src.Dx())*scale)))
	h := max(1, int(math.Round(float64(src.Dy())*scale)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), b.img, src, draw.Src, nil)
	return dst
}

// WriteTo encodes the image as PNG to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	if err := png.Encode(cw, b.img); err != nil {
		return cw.n, fmt.Errorf("raster: encode: %w", err)
	}
	return cw.n, nil
}

// SaveToFile encodes the image as PNG into the named file.
func (b *Backend) SaveToFile(path string) (err error) {
	if !b.done {
		return ErrNotStarted
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("raster: save: %w", cerr)
		}
	}()
	_, err = b.WriteTo(f)
	return err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
