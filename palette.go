package stillness

import "fmt"

// Canvas and stroke constants shared by every pattern.
const (
	// Size is the width and height of the square canvas.
	Size = 800

	// StrokeWidth is the outline width applied by Sty.
	StrokeWidth = 1.5
)

// StrokeColor is the outline colour applied by Sty.
var StrokeColor = MustHex("#2a2a3a")

// Palette is an ordered list of fill colours.
type Palette []Color

// Clone returns a copy of the palette.
func (p Palette) Clone() Palette {
	return append(Palette(nil), p...)
}

// At returns the colour at position i, wrapping modulo the palette length.
// At panics on an empty palette.
func (p Palette) At(i int) Color {
	n := len(p)
	return p[((i%n)+n)%n]
}

// DefaultTheme is the theme a new Context starts with.
const DefaultTheme = "Default"

// themeNames lists the built-in themes in display order.
var themeNames = []string{"Default", "Spring Bloom", "Autumn Warmth", "Winter Frost"}

var themes = map[string]Palette{
	"Default": hexPalette(
		"#e07a5f", "#3d405b", "#81b29a", "#f2cc8f", "#264653",
		"#2a9d8f", "#e9c46a", "#f4a261", "#e76f51", "#606c38",
		"#283618", "#dda15e", "#bc6c25", "#6d6875", "#b5838d",
		"#e5989b", "#ffb4a2", "#6930c3", "#5390d9", "#48bfe3",
		"#72efdd", "#c77dff", "#f72585", "#4cc9f0", "#7209b7",
	),
	"Spring Bloom": hexPalette(
		"#f4a7bb", "#fbc4d4", "#ffe0ec", "#ffd6e0", "#f9e4c8",
		"#fff1c1", "#e8f5b0", "#c8e6a2", "#8ecf6d", "#5bb450",
		"#a0d8b3", "#6ec5a8", "#b5ead7", "#81d4c2", "#a3d9e8",
		"#7ec8e3", "#b6ccfe", "#c3b1e1", "#d5a6e6", "#e6c2f7",
		"#f2d0e0", "#ffb6b9", "#f7c6a3", "#eadbc8", "#c9e4de",
	),
	"Autumn Warmth": hexPalette(
		"#8b2500", "#a63c06", "#c45d1a", "#d4753e", "#e8915a",
		"#c97b3a", "#d4a24e", "#e5b75f", "#daa520", "#b8860b",
		"#8b6914", "#6b4423", "#5c3317", "#7a4e2d", "#a0522d",
		"#8b4513", "#704214", "#5e3a1a", "#556b2f", "#6b7339",
		"#8a7f4b", "#9b8e5e", "#c9b37f", "#705044", "#3e2723",
	),
	"Winter Frost": hexPalette(
		"#e8f0fe", "#d4e4f7", "#b0cde8", "#89b4d6", "#6699cc",
		"#4a7fb5", "#3a6591", "#2b4c6f", "#1b3a5c", "#0f2744",
		"#708090", "#8f9baa", "#b0bec5", "#cfd8dc", "#e0e5ec",
		"#a8b8c8", "#c5cad3", "#7e9aac", "#5c8a9e", "#467f8b",
		"#3d8b8a", "#6eb5b0", "#96cbc7", "#bfdce0", "#d5c6e0",
	),
}

// ThemeNames returns the built-in theme names in display order.
func ThemeNames() []string {
	return append([]string(nil), themeNames...)
}

// Theme returns a copy of the named built-in palette.
func Theme(name string) (Palette, error) {
	p, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return p.Clone(), nil
}

func hexPalette(hex ...string) Palette {
	p := make(Palette, len(hex))
	for i, h := range hex {
		p[i] = MustHex(h)
	}
	return p
}
