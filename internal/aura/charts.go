package aura

import (
	"math"
	"strings"
)

// Axis names one dimension of the radar chart.
type Axis string

// Radar chart axes.
const (
	AxisEnergy      Axis = "Energy"
	AxisPositivity  Axis = "Positivity"
	AxisGrooviness  Axis = "Grooviness"
	AxisNaturalness Axis = "Naturalness"
	AxisIntensity   Axis = "Intensity"
)

// Axes lists the radar chart axes in display order.
var Axes = []Axis{AxisEnergy, AxisPositivity, AxisGrooviness, AxisNaturalness, AxisIntensity}

// NormalizedFeatures maps each axis to a value on a nominal 0-100 scale.
type NormalizedFeatures map[Axis]float64

// StarGlyph is the glyph repeated in star ratings.
const StarGlyph = "✦"

// RadarChartData returns the normalized median features of tracks.
func RadarChartData(tracks []TrackFeatures) (NormalizedFeatures, error) {
	stats, err := CalculateMedianFeatures(tracks)
	if err != nil {
		return nil, err
	}
	return NormalizeFeatures(stats), nil
}

// StarRatings renders each normalized axis as a row of stars, one star per
// 20 points. Ratings are not capped at five.
func StarRatings(tracks []TrackFeatures) (map[Axis]string, error) {
	normalized, err := RadarChartData(tracks)
	if err != nil {
		return nil, err
	}

	stars := make(map[Axis]string, len(normalized))
	for axis, value := range normalized {
		stars[axis] = Stars(value)
	}
	return stars, nil
}

// Stars renders a single normalized value. Halves round to even.
func Stars(value float64) string {
	n := int(math.RoundToEven(value / 20))
	if n <= 0 {
		return ""
	}
	return strings.Repeat(StarGlyph, n)
}
