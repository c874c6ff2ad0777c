package raster

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/stillness"
)

var (
	regularOnce sync.Once
	regular     *opentype.Font
	regularErr  error
)

func regularFont() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// captionHeight returns the height of the caption strip for an image of
// the given width.
func captionHeight(width int) int {
	return max(24, width/16)
}

// drawCaption fills the strip below row top and centres title in it.
func drawCaption(img *image.RGBA, title string, top int) error {
	strip := image.Rect(0, top, img.Bounds().Dx(), img.Bounds().Dy())
	draw.Draw(img, strip, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, top, strip.Dx(), top+1), image.NewUniform(stillness.StrokeColor), image.Point{}, draw.Src)
	if title == "" {
		return nil
	}

	f, err := regularFont()
	if err != nil {
		return fmt.Errorf("raster: caption font: %w", err)
	}
	size := float64(strip.Dy()) * 0.55
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("raster: caption face: %w", err)
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(stillness.StrokeColor),
		Face: face,
	}
	advance := d.MeasureString(title).Ceil()
	m := face.Metrics()
	textHeight := (m.Ascent + m.Descent).Ceil()
	x := (strip.Dx() - advance) / 2
	y := top + (strip.Dy()-textHeight)/2 + m.Ascent.Ceil()
	d.Dot = fixed.P(max(x, 4), y)
	d.DrawString(title)
	return nil
}
