// Package aura maps a listener's per-track audio features to the colors,
// adjectives and chart data that make up their aura.
package aura

import "errors"

// ErrEmptyInput is returned when a median or mode is requested over no tracks.
var ErrEmptyInput = errors.New("no tracks to aggregate")

// TrackFeatures holds the audio features of a single track.
type TrackFeatures struct {
	ID string

	Danceability float64 // 0..1
	Energy       float64 // 0..1
	Valence      float64 // 0..1
	Acousticness float64 // 0..1
	Loudness     float64 // decibels, typically -60..0

	Key  int // pitch class 0..11, -1 if no key was detected
	Mode int // 0 minor, 1 major
}

// SummaryStatistics holds the median of each aggregated feature.
type SummaryStatistics struct {
	Danceability float64
	Energy       float64
	Valence      float64
	Acousticness float64
	Loudness     float64
}
