package render

import (
	"context"
	"image"
	"image/color"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/justestif/go-spotify-aura/internal/aura"
)

// RenderDisc rasterizes a radial gradient from center to edge inside a
// circle of radius min(width, height)/2. Pixels outside the circle are
// fully transparent.
//
// The factor at distance d is min(1, (d/radius)^gamma). Rows are split into
// bands and rendered concurrently; a cancelled ctx stops rendering and its
// error is returned.
func RenderDisc(ctx context.Context, center, edge aura.RGBColor, size image.Point, gamma float64) (*image.RGBA, error) {
	if !positive(size) {
		return nil, ErrInvalidSize
	}

	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	g := gradient{
		cx:     size.X / 2,
		cy:     size.Y / 2,
		radius: float64(min(size.X/2, size.Y/2)),
		gamma:  gamma,
		center: center,
		edge:   edge,
	}

	bands := min(runtime.GOMAXPROCS(0), size.Y)
	rowsPerBand := (size.Y + bands - 1) / bands

	eg, ctx := errgroup.WithContext(ctx)
	for y0 := 0; y0 < size.Y; y0 += rowsPerBand {
		y1 := min(y0+rowsPerBand, size.Y)
		eg.Go(func() error {
			for y := y0; y < y1; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				for x := 0; x < size.X; x++ {
					if c, ok := g.at(x, y); ok {
						img.SetRGBA(x, y, c)
					}
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

// gradient holds the fixed inputs of the per-pixel disc color.
type gradient struct {
	cx, cy       int
	radius       float64
	gamma        float64
	center, edge aura.RGBColor
}

// at returns the color of pixel (x, y), or false if it lies outside the disc.
func (g gradient) at(x, y int) (color.RGBA, bool) {
	dx, dy := float64(x-g.cx), float64(y-g.cy)
	distance := math.Sqrt(dx*dx + dy*dy)
	if distance > g.radius {
		return color.RGBA{}, false
	}

	var factor float64
	if distance > 0 {
		factor = math.Min(1, math.Pow(distance/g.radius, g.gamma))
	}

	return color.RGBA{
		R: lerp(g.center.R, g.edge.R, factor),
		G: lerp(g.center.G, g.edge.G, factor),
		B: lerp(g.center.B, g.edge.B, factor),
		A: 255,
	}, true
}

// lerp interpolates between two channel values and truncates the result.
func lerp(from, to uint8, factor float64) uint8 {
	return uint8(float64(from)*(1-factor) + float64(to)*factor)
}
