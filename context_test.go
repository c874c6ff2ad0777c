package stillness

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

var (
	red   = MustHex("#ff0000")
	green = MustHex("#00ff00")
	blue  = MustHex("#0000ff")
)

func TestNewContextDefaults(t *testing.T) {
	c := NewContext()
	if got := c.Theme(); got != DefaultTheme {
		t.Errorf("Theme() = %q, want %q", got, DefaultTheme)
	}
	want, _ := Theme(DefaultTheme)
	if diff := cmp.Diff(want, c.Palette()); diff != "" {
		t.Errorf("Palette() mismatch (-want +got):\n%s", diff)
	}
	if c.Cursor() != 0 || c.Len() != 0 {
		t.Errorf("Cursor() = %d, Len() = %d, want 0, 0", c.Cursor(), c.Len())
	}
	if c.Rand() == nil {
		t.Error("Rand() = nil")
	}

	s := c.Circle(0, 0, 1)
	if s.Stroke != StrokeColor || s.StrokeWidth != StrokeWidth {
		t.Errorf("outline = %v/%v, want %v/%v", s.Stroke, s.StrokeWidth, StrokeColor, StrokeWidth)
	}
}

func TestNewContextPanicsOnInvalidOption(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"unknown theme", WithTheme("Neon")},
		{"empty palette", WithPalette(Palette{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("NewContext() did not panic")
				}
			}()
			NewContext(tt.opt)
		})
	}
}

func TestStyCyclesPalette(t *testing.T) {
	c := NewContext(WithPalette(Palette{red, green, blue}))
	var got []Color
	for range 7 {
		got = append(got, c.Circle(0, 0, 1).Fill)
	}
	want := []Color{red, green, blue, red, green, blue, red}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fills mismatch (-want +got):\n%s", diff)
	}
	if c.Cursor() != 7 {
		t.Errorf("Cursor() = %d, want 7", c.Cursor())
	}
}

func TestStySingleColourPalette(t *testing.T) {
	c := NewContext(WithPalette(Palette{blue}))
	for i := range 5 {
		if got := c.Rect(0, 0, 1, 1).Fill; got != blue {
			t.Errorf("shape %d fill = %v, want %v", i, got, blue)
		}
	}
}

func TestStyNil(t *testing.T) {
	c := NewContext()
	if got := c.Sty(nil); got != nil {
		t.Errorf("Sty(nil) = %v, want nil", got)
	}
	if got := c.RingSegment(0, 0, 10, 5, 0, 90); got != nil {
		t.Errorf("RingSegment(degenerate) = %v, want nil", got)
	}
	if c.Cursor() != 0 || c.Len() != 0 {
		t.Errorf("after nil shapes Cursor() = %d, Len() = %d, want 0, 0", c.Cursor(), c.Len())
	}
}

func TestStyReturnsSubmittedShape(t *testing.T) {
	c := NewContext()
	s := c.Petal(400, 400, 50, 0, 10, 40)
	s.Rotate(45)
	if got := c.Shapes()[0]; got != s {
		t.Error("canvas does not hold the shape returned by Sty")
	}
}

func TestSetThemeKeepsCursor(t *testing.T) {
	c := NewContext()
	c.Circle(0, 0, 1)
	c.Circle(0, 0, 1)

	if err := c.SetTheme("Winter Frost"); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	if c.Theme() != "Winter Frost" {
		t.Errorf("Theme() = %q, want %q", c.Theme(), "Winter Frost")
	}
	winter, _ := Theme("Winter Frost")
	if got := c.Circle(0, 0, 1).Fill; got != winter.At(2) {
		t.Errorf("fill after theme change = %v, want %v", got, winter.At(2))
	}
}

func TestSetThemeUnknown(t *testing.T) {
	c := NewContext(WithTheme("Autumn Warmth"))
	if err := c.SetTheme("Neon"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("SetTheme(\"Neon\") error = %v, want ErrUnknownTheme", err)
	}
	if c.Theme() != "Autumn Warmth" {
		t.Errorf("Theme() = %q after failed SetTheme, want %q", c.Theme(), "Autumn Warmth")
	}
}

func TestSetPalette(t *testing.T) {
	c := NewContext()
	p := Palette{red, green}
	if err := c.SetPalette(p); err != nil {
		t.Fatalf("SetPalette() error = %v", err)
	}
	p[0] = blue
	if c.Theme() != "" {
		t.Errorf("Theme() = %q after SetPalette, want empty", c.Theme())
	}
	if got := c.Palette()[0]; got != red {
		t.Errorf("Palette()[0] = %v, want %v; SetPalette must copy", got, red)
	}

	if err := c.SetPalette(nil); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("SetPalette(nil) error = %v, want ErrEmptyPalette", err)
	}
	if diff := cmp.Diff(Palette{red, green}, c.Palette()); diff != "" {
		t.Errorf("Palette() changed after rejected SetPalette (-want +got):\n%s", diff)
	}

	got := c.Palette()
	got[1] = blue
	if c.Palette()[1] != green {
		t.Error("Palette() shares storage with the Context")
	}
}

func TestClearKeepsCursor(t *testing.T) {
	c := NewContext(WithPalette(Palette{red, green, blue}))
	c.Layer("petals", 8)
	c.Circle(0, 0, 1)
	c.Circle(0, 0, 1)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if c.Cursor() != 2 {
		t.Errorf("Cursor() after Clear = %d, want 2", c.Cursor())
	}
	s := c.Circle(0, 0, 1)
	if s.Fill != blue {
		t.Errorf("fill after Clear = %v, want %v", s.Fill, blue)
	}
	if s.Layer != "" || s.Symmetry != 0 {
		t.Errorf("layer after Clear = %q/%d, want empty/0", s.Layer, s.Symmetry)
	}

	c.ResetCursor()
	if got := c.Circle(0, 0, 1).Fill; got != red {
		t.Errorf("fill after ResetCursor = %v, want %v", got, red)
	}
}

func TestRemove(t *testing.T) {
	c := NewContext()
	a := c.Circle(0, 0, 1)
	b := c.Circle(1, 1, 1)
	if !c.Remove(a) {
		t.Error("Remove(a) = false, want true")
	}
	if c.Remove(a) {
		t.Error("second Remove(a) = true, want false")
	}
	if shapes := c.Shapes(); len(shapes) != 1 || shapes[0] != b {
		t.Errorf("Shapes() after Remove = %v, want only the second circle", shapes)
	}
}

func TestShapesIsCopy(t *testing.T) {
	c := NewContext()
	c.Circle(0, 0, 1)
	shapes := c.Shapes()
	shapes[0] = nil
	if c.Shapes()[0] == nil {
		t.Error("Shapes() shares its slice with the canvas")
	}
}

func TestLayerAndRing(t *testing.T) {
	c := NewContext()
	c.Layer("background", 0)
	c.Background()

	var angles []float64
	c.Ring("petals", 6, func(i int, a float64) {
		angles = append(angles, a)
		c.Petal(400, 400, 50, a, 10, 40)
	})

	want := []float64{0, 60, 120, 180, 240, 300}
	if diff := cmp.Diff(want, angles); diff != "" {
		t.Errorf("Ring angles mismatch (-want +got):\n%s", diff)
	}

	shapes := c.Shapes()
	if shapes[0].Layer != "background" || shapes[0].Symmetry != 0 {
		t.Errorf("background tagged %q/%d, want background/0", shapes[0].Layer, shapes[0].Symmetry)
	}
	for _, s := range shapes[1:] {
		if s.Layer != "petals" || s.Symmetry != 6 {
			t.Errorf("petal tagged %q/%d, want petals/6", s.Layer, s.Symmetry)
		}
	}
}

func TestWithSeedReproducible(t *testing.T) {
	a := NewContext(WithSeed(42))
	b := NewContext(WithSeed(42))
	c := NewContext(WithSeed(43))
	same := true
	for range 10 {
		x, y, z := a.Rand().Float64(), b.Rand().Float64(), c.Rand().Float64()
		if x != y {
			t.Fatalf("same seed produced %v and %v", x, y)
		}
		if x != z {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical sequences")
	}
}

func TestWithOptions(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	stroke := MustHex("#123456")
	c := NewContext(
		WithPalette(Palette{red, green, blue}),
		WithRand(r),
		WithStroke(stroke, 3),
		WithCursor(1),
	)
	if c.Rand() != r {
		t.Error("WithRand() source not used")
	}
	s := c.Rect(0, 0, 1, 1)
	if s.Fill != green {
		t.Errorf("fill with WithCursor(1) = %v, want %v", s.Fill, green)
	}
	if s.Stroke != stroke || s.StrokeWidth != 3 {
		t.Errorf("outline = %v/%v, want %v/3", s.Stroke, s.StrokeWidth, stroke)
	}
	if c.Theme() != "" {
		t.Errorf("Theme() with a custom palette = %q, want empty", c.Theme())
	}
}

func TestContextShortcuts(t *testing.T) {
	c := NewContext()
	tests := []struct {
		name string
		s    *Shape
		kind ShapeKind
	}{
		{"Background", c.Background(), KindRect},
		{"Rect", c.Rect(0, 0, 10, 10), KindRect},
		{"Circle", c.Circle(0, 0, 10), KindCircle},
		{"Ellipse", c.Ellipse(0, 0, 10, 20), KindEllipse},
		{"Polygon", c.Polygon(Pt(0, 0), Pt(1, 0), Pt(0, 1)), KindPolygon},
		{"Star", c.Star(0, 0, 5, 10, 4), KindStar},
		{"RegularPolygon", c.RegularPolygon(0, 0, 6, 10, 0), KindPolygon},
		{"RingSegment", c.RingSegment(0, 0, 5, 10, 0, 45), KindPath},
		{"Petal", c.Petal(0, 0, 5, 0, 2, 10), KindPath},
		{"Diamond", c.Diamond(0, 0, 5, 0, 2, 10), KindPath},
		{"Teardrop", c.Teardrop(0, 0, 5, 0, 2, 10), KindPath},
	}
	for _, tt := range tests {
		if tt.s.Kind != tt.kind {
			t.Errorf("%s Kind = %v, want %v", tt.name, tt.s.Kind, tt.kind)
		}
	}
	if c.Len() != len(tests) {
		t.Errorf("Len() = %d, want %d", c.Len(), len(tests))
	}
	if min, max := c.Shapes()[0].Bounds(); min != Pt(0, 0) || max != Pt(Size, Size) {
		t.Errorf("Background bounds = %v..%v, want the whole canvas", min, max)
	}
}

func TestArtwork(t *testing.T) {
	c := NewContext(WithTheme("Spring Bloom"))
	c.Layer("background", 0)
	c.Background()
	c.Layer("ring", 12)
	c.Circle(400, 400, 100)
	c.Layer("core", 1)
	c.Circle(400, 400, 10)
	c.Layer("ring", 12)
	c.Circle(400, 400, 200)

	a := c.Artwork("Mandala")
	if a.Name != "Mandala" || a.Theme != "Spring Bloom" || a.Size != Size {
		t.Errorf("Artwork = %q/%q/%v, want Mandala/Spring Bloom/%v", a.Name, a.Theme, a.Size, Size)
	}
	if a.ID == uuid.Nil {
		t.Error("Artwork ID is nil")
	}
	if b := c.Artwork("Mandala"); b.ID == a.ID {
		t.Error("two snapshots share an ID")
	}
	if len(a.Shapes) != 4 {
		t.Errorf("Artwork has %d shapes, want 4", len(a.Shapes))
	}

	if diff := cmp.Diff([]string{"background", "ring", "core"}, a.Layers()); diff != "" {
		t.Errorf("Layers() mismatch (-want +got):\n%s", diff)
	}
	if got := len(a.Layer("ring")); got != 2 {
		t.Errorf("Layer(\"ring\") has %d shapes, want 2", got)
	}
	if got := a.Layer("missing"); got != nil {
		t.Errorf("Layer(\"missing\") = %v, want nil", got)
	}

	c.Clear()
	if len(a.Shapes) != 4 {
		t.Error("Clear() changed an earlier snapshot")
	}
}

func TestNewDrawingState(t *testing.T) {
	want := &DrawingState{
		Tool:         ToolFill,
		Theme:        DefaultTheme,
		GradientType: GradientLinear,
		BrushSize:    5,
		BrushOpacity: 1,
		Volume:       0.5,
	}
	if diff := cmp.Diff(want, NewDrawingState()); diff != "" {
		t.Errorf("NewDrawingState() mismatch (-want +got):\n%s", diff)
	}
	if len(SoundNames) != 8 {
		t.Errorf("SoundNames has %d entries, want 8", len(SoundNames))
	}
}
