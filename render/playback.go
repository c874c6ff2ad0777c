package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/stillness"
)

// ErrInvalidSize is returned by Playback for a non-positive output size.
var ErrInvalidSize = errors.New("render: output size must be positive")

// Playback draws every shape of a onto b, scaled so that the canvas
// covers a square output of width units.
func Playback(a *stillness.Artwork, b Backend, width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, width)
	}
	if t, ok := b.(TitledBackend); ok {
		t.SetTitle(a.Name)
	}
	if err := b.Begin(width, width); err != nil {
		return fmt.Errorf("render: begin: %w", err)
	}

	scale := float64(width) / a.Size
	b.SetTransform(stillness.Scale(scale, scale))
	for i, s := range a.Shapes {
		if err := b.DrawShape(s); err != nil {
			return fmt.Errorf("render: shape %d (%s): %w", i, s.Layer, err)
		}
	}

	if err := b.End(); err != nil {
		return fmt.Errorf("render: end: %w", err)
	}
	stillness.Logger().Debug("artwork rendered",
		"pattern", a.Name, "shapes", len(a.Shapes), "width", width)
	return nil
}
