package render

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// Composite resamples disc to target and draws it centered over a copy of
// background. The disc's alpha channel decides how much of the background
// shows through; background itself is left untouched.
//
// Bilinear weights are non-negative, so resampled premultiplied pixels
// never carry a channel above their alpha.
func Composite(background, disc image.Image, target image.Point) (*image.RGBA, error) {
	if !positive(target) {
		return nil, ErrInvalidSize
	}

	bounds := background.Bounds()
	if target.X > bounds.Dx() || target.Y > bounds.Dy() {
		return nil, ErrTargetTooLarge
	}

	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), background, bounds.Min, draw.Src)

	scaled := resize.Resize(uint(target.X), uint(target.Y), disc, resize.Bilinear)

	offset := image.Pt((bounds.Dx()-target.X)/2, (bounds.Dy()-target.Y)/2)
	dst := image.Rectangle{Min: offset, Max: offset.Add(target)}
	draw.Draw(out, dst, scaled, scaled.Bounds().Min, draw.Over)
	return out, nil
}
