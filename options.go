package stillness

import (
	"math/rand/v2"
	"time"
)

// Option configures a Context during creation.
//
// Example:
//
//	// Default theme, time-derived seed
//	c := stillness.NewContext()
//
//	// Reproducible output in a different theme
//	c := stillness.NewContext(
//	    stillness.WithTheme("Winter Frost"),
//	    stillness.WithSeed(42),
//	)
type Option func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	palette     Palette
	theme       string
	rng         *rand.Rand
	stroke      Color
	strokeWidth float64
	cursor      int
	err         error
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		palette:     themes[DefaultTheme].Clone(),
		theme:       DefaultTheme,
		stroke:      StrokeColor,
		strokeWidth: StrokeWidth,
	}
}

// WithPalette installs a custom palette. The theme name reported by the
// Context becomes empty. An empty palette makes NewContext panic.
func WithPalette(p Palette) Option {
	return func(o *contextOptions) {
		if len(p) == 0 {
			o.err = ErrEmptyPalette
			return
		}
		o.palette = p.Clone()
		o.theme = ""
	}
}

// WithTheme selects one of the built-in themes by name.
// An unknown name makes NewContext panic.
func WithTheme(name string) Option {
	return func(o *contextOptions) {
		p, err := Theme(name)
		if err != nil {
			o.err = err
			return
		}
		o.palette = p
		o.theme = name
	}
}

// WithSeed seeds the random source used by randomised patterns, so that
// two contexts with the same seed produce the same shapes.
func WithSeed(seed uint64) Option {
	return func(o *contextOptions) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand injects a random source. The Context uses it exclusively and
// does not synchronise access.
func WithRand(r *rand.Rand) Option {
	return func(o *contextOptions) {
		o.rng = r
	}
}

// WithStroke overrides the outline colour and width applied by Sty.
func WithStroke(c Color, width float64) Option {
	return func(o *contextOptions) {
		o.stroke = c
		o.strokeWidth = width
	}
}

// WithCursor sets the initial colour cursor.
func WithCursor(cursor int) Option {
	return func(o *contextOptions) {
		o.cursor = cursor
	}
}

// timeSeededRand returns a random source seeded from the wall clock.
func timeSeededRand() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>17|now<<47))
}
