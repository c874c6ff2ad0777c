package render

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/stillness"
)

var errDraw = errors.New("draw failed")

func testArtwork() *stillness.Artwork {
	c := stillness.NewContext()
	c.Layer("background", 0)
	c.Background()
	c.Ring("petals", 4, func(_ int, a float64) {
		c.Petal(400, 400, 50, a, 10, 60)
	})
	return c.Artwork("Test")
}

func TestPlayback(t *testing.T) {
	a := testArtwork()
	b := &mockBackend{}
	if err := Playback(a, b, 400); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}

	want := []string{"SetTitle", "Begin", "SetTransform", "DrawShape", "DrawShape", "DrawShape", "DrawShape", "DrawShape", "End"}
	if diff := cmp.Diff(want, b.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if b.title != "Test" {
		t.Errorf("title = %q, want %q", b.title, "Test")
	}
	if b.width != 400 || b.height != 400 {
		t.Errorf("Begin(%d, %d), want Begin(400, 400)", b.width, b.height)
	}
	if b.m != stillness.Scale(0.5, 0.5) {
		t.Errorf("transform = %+v, want Scale(0.5, 0.5)", b.m)
	}
	for i, s := range b.shapes {
		if s != a.Shapes[i] {
			t.Errorf("shape %d drawn out of order", i)
		}
	}
}

func TestPlaybackInvalidSize(t *testing.T) {
	for _, width := range []int{0, -10} {
		b := &mockBackend{}
		if err := Playback(testArtwork(), b, width); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Playback(width %d) error = %v, want ErrInvalidSize", width, err)
		}
		if len(b.calls) != 0 {
			t.Errorf("Playback(width %d) called the backend: %v", width, b.calls)
		}
	}
}

func TestPlaybackDrawError(t *testing.T) {
	b := &mockBackend{failOn: 2}
	err := Playback(testArtwork(), b, 800)
	if !errors.Is(err, errDraw) {
		t.Fatalf("Playback() error = %v, want %v", err, errDraw)
	}
	if got := b.calls[len(b.calls)-1]; got != "DrawShape" {
		t.Errorf("last call = %q, want playback to stop at the failing DrawShape", got)
	}
}
