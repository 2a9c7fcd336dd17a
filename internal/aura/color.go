package aura

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor is an opaque 8-bit color.
type RGBColor struct {
	R, G, B uint8
}

// Opaque converts the color to a fully opaque color.RGBA.
func (c RGBColor) Opaque() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// CSS formats the color as a CSS rgb() value.
func (c RGBColor) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// CSSA formats the color as a CSS rgba() value with the given alpha.
func (c RGBColor) CSSA(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, alpha)
}

// Hex formats the color as #rrggbb.
func (c RGBColor) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// baseSaturation is added to every channel of the energy/valence color.
const baseSaturation = 30

// quadrant is one energy/valence region and its base color.
type quadrant struct {
	name   string
	color  RGBColor
	weight func(energy, valence float64) float64
}

// Quadrants of the energy/valence plane. A point on a 0.5 boundary lies in
// none of them.
//
//   - Q1 low energy, high valence: blue
//   - Q2 high energy, high valence: green
//   - Q3 low energy, low valence: purple
//   - Q4 high energy, low valence: red
var quadrants = [4]quadrant{
	{"Q1", RGBColor{51, 51, 255}, func(e, v float64) float64 {
		if e < 0.5 && v > 0.5 {
			return (1 - e) * v
		}
		return 0
	}},
	{"Q2", RGBColor{73, 254, 54}, func(e, v float64) float64 {
		if e > 0.5 && v > 0.5 {
			return e * v
		}
		return 0
	}},
	{"Q3", RGBColor{156, 43, 154}, func(e, v float64) float64 {
		if e < 0.5 && v < 0.5 {
			return (1 - e) * (1 - v)
		}
		return 0
	}},
	{"Q4", RGBColor{255, 51, 51}, func(e, v float64) float64 {
		if e > 0.5 && v < 0.5 {
			return e * (1 - v)
		}
		return 0
	}},
}

// EnergyValenceColor blends the quadrant colors using the median energy
// and valence of tracks, each rounded to 2 decimals.
func EnergyValenceColor(tracks []TrackFeatures) (RGBColor, error) {
	energy, err := roundedMedian(tracks, func(t TrackFeatures) float64 { return t.Energy })
	if err != nil {
		return RGBColor{}, err
	}
	valence, err := roundedMedian(tracks, func(t TrackFeatures) float64 { return t.Valence })
	if err != nil {
		return RGBColor{}, err
	}
	return QuadrantColor(energy, valence), nil
}

// QuadrantColor blends the quadrant base colors for a single energy/valence
// point. Weights are square-root compressed and renormalized to sum to 1.
// When every weight is zero the result is the base saturation gray.
func QuadrantColor(energy, valence float64) RGBColor {
	var weights [len(quadrants)]float64
	var total float64
	for i, q := range quadrants {
		weights[i] = q.weight(energy, valence)
		total += weights[i]
	}

	if total > 0 {
		var rootTotal float64
		for i := range weights {
			weights[i] = math.Sqrt(weights[i])
			rootTotal += weights[i]
		}
		for i := range weights {
			weights[i] /= rootTotal
		}
	}

	r, g, b := float64(baseSaturation), float64(baseSaturation), float64(baseSaturation)
	for i, q := range quadrants {
		r += float64(q.color.R) * weights[i]
		g += float64(q.color.G) * weights[i]
		b += float64(q.color.B) * weights[i]
	}
	return RGBColor{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// keyColors maps pitch classes -1..11 to colors, indexed by key+1.
var keyColors = [13]RGBColor{
	{255, 255, 255}, // no key: white
	{32, 178, 170},  // C: green
	{100, 253, 207}, // C#/Db: green-cyan
	{159, 230, 231}, // D: cyan
	{100, 206, 252}, // D#/Eb: blue-cyan
	{69, 156, 236},  // E: blue
	{192, 136, 230}, // F: purple
	{253, 132, 144}, // F#/Gb: red
	{247, 183, 165}, // G: red-orange
	{245, 199, 126}, // G#/Ab: orange
	{255, 208, 87},  // A: orange-yellow
	{252, 240, 136}, // A#/Bb: yellow
	{205, 249, 138}, // B: green-yellow
}

var unknownKeyColor = RGBColor{255, 255, 255}

// KeyColor returns the color of the most common key across tracks.
func KeyColor(tracks []TrackFeatures) (RGBColor, error) {
	key, err := keyMode(tracks)
	if err != nil {
		return RGBColor{}, err
	}
	return KeyColorFor(key), nil
}

// KeyColorFor returns the color for a pitch class. Keys outside -1..11 map
// to white.
func KeyColorFor(key int) RGBColor {
	if key < -1 || key > 11 {
		return unknownKeyColor
	}
	return keyColors[key+1]
}

// clampChannel clamps v to 0..255 and truncates it.
func clampChannel(v float64) uint8 {
	return uint8(min(255, max(0, v)))
}
