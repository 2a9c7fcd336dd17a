// Package spotify converts Spotify Web API audio features into aura input.
package spotify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/zmb3/spotify/v2"

	"github.com/justestif/go-spotify-aura/internal/aura"
)

// ErrUnsupportedFormat is returned when input is neither a JSON array nor
// an audio features response object.
var ErrUnsupportedFormat = errors.New("expected a JSON array or an object with audio_features")

// audioFeaturesResponse mirrors the body of GET /v1/audio-features.
type audioFeaturesResponse struct {
	AudioFeatures []*spotify.AudioFeatures `json:"audio_features"`
}

// DecodeAudioFeatures reads audio features as returned by the Spotify Web
// API, either the full response object or a bare array of feature objects.
// Null entries, which Spotify returns for tracks without features, are skipped.
func DecodeAudioFeatures(r io.Reader) ([]aura.TrackFeatures, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading audio features: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrUnsupportedFormat
	}

	var features []*spotify.AudioFeatures
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &features); err != nil {
			return nil, fmt.Errorf("decoding audio features: %w", err)
		}
	case '{':
		var resp audioFeaturesResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return nil, fmt.Errorf("decoding audio features: %w", err)
		}
		features = resp.AudioFeatures
	default:
		return nil, ErrUnsupportedFormat
	}

	return ConvertAudioFeatures(features), nil
}

// ConvertAudioFeatures converts audio features to aura input, preserving
// order. Nil entries are skipped.
func ConvertAudioFeatures(features []*spotify.AudioFeatures) []aura.TrackFeatures {
	tracks := make([]aura.TrackFeatures, 0, len(features))
	for _, f := range features {
		if f == nil {
			continue // Track has no audio features
		}
		tracks = append(tracks, ToTrackFeatures(f))
	}
	return tracks
}

// ToTrackFeatures copies the features the aura uses from f.
func ToTrackFeatures(f *spotify.AudioFeatures) aura.TrackFeatures {
	return aura.TrackFeatures{
		ID:           f.ID.String(),
		Danceability: widen(f.Danceability),
		Energy:       widen(f.Energy),
		Valence:      widen(f.Valence),
		Acousticness: widen(f.Acousticness),
		Loudness:     widen(f.Loudness),
		Key:          int(f.Key),
		Mode:         int(f.Mode),
	}
}

// widen converts a decoded float32 back to the decimal Spotify sent.
// float64(float32(0.7)) is 0.699999988, which lands on the other side of
// the two-decimal rounding and star thresholds.
func widen(f float32) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	if err != nil {
		return float64(f)
	}
	return v
}
