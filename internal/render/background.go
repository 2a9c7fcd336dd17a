package render

import (
	"image"
	"image/draw"

	"github.com/justestif/go-spotify-aura/internal/aura"
)

// RenderBackground returns an opaque tile filled with c lightened toward
// white: each channel gains 255*lighten, capped at 255.
func RenderBackground(c aura.RGBColor, size image.Point, lighten float64) (*image.RGBA, error) {
	if !positive(size) {
		return nil, ErrInvalidSize
	}

	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	fill := lightenColor(c, lighten)
	draw.Draw(img, img.Bounds(), &image.Uniform{C: fill.Opaque()}, image.Point{}, draw.Src)
	return img, nil
}

func lightenColor(c aura.RGBColor, factor float64) aura.RGBColor {
	lift := func(v uint8) uint8 {
		return uint8(max(0, min(255, int(float64(v)+255*factor))))
	}
	return aura.RGBColor{R: lift(c.R), G: lift(c.G), B: lift(c.B)}
}
