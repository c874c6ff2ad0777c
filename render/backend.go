package render

import (
	"image"
	"io"

	"github.com/gogpu/stillness"
)

// Backend is the interface that all output backends implement.
// A backend receives styled shapes in drawing order and translates them
// to its format: SVG elements, raster pixels, PDF content streams.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register in their init functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using render.Register()
//  2. Accept Begin, any number of SetTransform and DrawShape calls, then End
//  3. Apply the current transform to shape geometry and to stroke widths
//  4. Translate coordinates if its format needs it (e.g., PDF Y-flip)
type Backend interface {
	// Begin prepares an output of width×height units.
	// It must be called before any drawing operations.
	Begin(width, height int) error

	// SetTransform sets the matrix from canvas to output coordinates.
	// It replaces any previous transform.
	SetTransform(m stillness.Matrix)

	// DrawShape fills the shape, then strokes its outline.
	DrawShape(s *stillness.Shape) error

	// End finishes the output. After End the capability methods
	// (WriteTo, SaveToFile, Image) can be used.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an
// io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the finished output to w. It is valid after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly
// to a file.
type FileBackend interface {
	Backend

	// SaveToFile writes the finished output to the named file.
	// It is valid after End.
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before End.
	Image() image.Image
}

// TitledBackend is implemented by backends that can label their output,
// as an SVG title or a raster caption. Playback passes the artwork name.
type TitledBackend interface {
	Backend

	// SetTitle sets the label. It must be called before Begin.
	SetTitle(title string)
}
