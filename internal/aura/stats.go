package aura

import (
	"slices"
	"strconv"
)

// CalculateMedianFeatures returns the median of each aggregated feature.
// Returns ErrEmptyInput if tracks is empty.
func CalculateMedianFeatures(tracks []TrackFeatures) (SummaryStatistics, error) {
	if len(tracks) == 0 {
		return SummaryStatistics{}, ErrEmptyInput
	}

	return SummaryStatistics{
		Danceability: medianOf(tracks, func(t TrackFeatures) float64 { return t.Danceability }),
		Energy:       medianOf(tracks, func(t TrackFeatures) float64 { return t.Energy }),
		Valence:      medianOf(tracks, func(t TrackFeatures) float64 { return t.Valence }),
		Acousticness: medianOf(tracks, func(t TrackFeatures) float64 { return t.Acousticness }),
		Loudness:     medianOf(tracks, func(t TrackFeatures) float64 { return t.Loudness }),
	}, nil
}

// NormalizeFeatures rescales summary statistics to the 0-100 chart range.
// Values are not clamped: loudness above 0 dB or below -60 dB pushes
// Intensity outside the range.
func NormalizeFeatures(stats SummaryStatistics) NormalizedFeatures {
	return NormalizedFeatures{
		AxisEnergy:      stats.Energy * 100,
		AxisPositivity:  stats.Valence * 100,
		AxisGrooviness:  stats.Danceability * 100,
		AxisNaturalness: stats.Acousticness * 100,
		AxisIntensity:   ((stats.Loudness + 60) / 60) * 100,
	}
}

// medianOf extracts one feature from every track and returns its median.
// tracks must not be empty.
func medianOf(tracks []TrackFeatures, feature func(TrackFeatures) float64) float64 {
	values := make([]float64, len(tracks))
	for i, t := range tracks {
		values[i] = feature(t)
	}
	return median(values)
}

// median sorts values in place and returns the middle element, or the mean
// of the two middle elements for an even count.
func median(values []float64) float64 {
	slices.Sort(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return (values[mid-1] + values[mid]) / 2
}

// roundedMedian returns the median of one feature rounded to 2 decimals.
func roundedMedian(tracks []TrackFeatures, feature func(TrackFeatures) float64) (float64, error) {
	if len(tracks) == 0 {
		return 0, ErrEmptyInput
	}
	return round2(medianOf(tracks, feature)), nil
}

// round2 rounds v to 2 decimals. strconv rounds the exact binary value
// with ties to even, so 0.495 (stored just below) gives 0.49 and 0.125
// gives 0.12.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

// keyMode returns the most frequent key. When several keys share the
// highest count the first track's key wins.
func keyMode(tracks []TrackFeatures) (int, error) {
	if len(tracks) == 0 {
		return 0, ErrEmptyInput
	}

	counts := make(map[int]int)
	for _, t := range tracks {
		counts[t.Key]++
	}

	mode, best, tied := tracks[0].Key, 0, false
	for key, n := range counts {
		switch {
		case n > best:
			mode, best, tied = key, n, false
		case n == best:
			tied = true
		}
	}
	if tied {
		return tracks[0].Key, nil
	}
	return mode, nil
}
