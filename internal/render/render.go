// Package render rasterizes the aura image: a radial gradient disc
// composited over a lightened background tile.
package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/justestif/go-spotify-aura/internal/aura"
)

// Common errors.
var (
	ErrInvalidSize    = errors.New("image size must be positive")
	ErrInvalidOptions = errors.New("invalid render options")
	ErrTargetTooLarge = errors.New("disc target size exceeds background size")
)

// Options holds aura rendering parameters.
type Options struct {
	DiscSize       image.Point // Size the gradient disc is rasterized at
	Gamma          float64     // Radial falloff exponent; above 1 widens the center color
	BackgroundSize image.Point // Size of the output image
	Lighten        float64     // Fraction of white mixed into the background color
	TargetDiscSize image.Point // Size the disc is resampled to before compositing
}

// DefaultOptions returns the recommended rendering parameters.
func DefaultOptions() Options {
	return Options{
		DiscSize:       image.Pt(665, 665),
		Gamma:          1.3,
		BackgroundSize: image.Pt(450, 450),
		Lighten:        0.06,
		TargetDiscSize: image.Pt(350, 350),
	}
}

// Validate reports whether the options can produce an image.
func (o Options) Validate() error {
	switch {
	case !positive(o.DiscSize), !positive(o.BackgroundSize), !positive(o.TargetDiscSize):
		return fmt.Errorf("%w: sizes must be positive", ErrInvalidOptions)
	case !(o.Gamma > 0):
		return fmt.Errorf("%w: gamma %v must be greater than 0", ErrInvalidOptions, o.Gamma)
	case o.Lighten < 0 || o.Lighten > 1:
		return fmt.Errorf("%w: lighten %v must be within [0, 1]", ErrInvalidOptions, o.Lighten)
	case o.TargetDiscSize.X > o.BackgroundSize.X || o.TargetDiscSize.Y > o.BackgroundSize.Y:
		return fmt.Errorf("%w: %w", ErrInvalidOptions, ErrTargetTooLarge)
	}
	return nil
}

// Aura renders the full aura image. The energy/valence color fills the
// center of the disc, fading to the key color at its rim; the background
// is a lightened key color.
func Aura(ctx context.Context, opts Options, center, edge aura.RGBColor) (*image.RGBA, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	disc, err := RenderDisc(ctx, center, edge, opts.DiscSize, opts.Gamma)
	if err != nil {
		return nil, fmt.Errorf("rendering disc: %w", err)
	}

	background, err := RenderBackground(edge, opts.BackgroundSize, opts.Lighten)
	if err != nil {
		return nil, fmt.Errorf("rendering background: %w", err)
	}

	out, err := Composite(background, disc, opts.TargetDiscSize)
	if err != nil {
		return nil, fmt.Errorf("compositing: %w", err)
	}
	return out, nil
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func positive(p image.Point) bool {
	return p.X > 0 && p.Y > 0
}
