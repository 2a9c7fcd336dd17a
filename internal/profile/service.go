// Package profile builds a listener's aura profile from their track features.
package profile

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/justestif/go-spotify-aura/internal/aura"
	"github.com/justestif/go-spotify-aura/internal/render"
)

// ErrNoImage is returned when saving a profile that has no rendered image.
var ErrNoImage = errors.New("profile has no rendered image")

const (
	timestampFormat = "20060102150405"
	defaultUsername = "listener"
)

// Profile contains everything displayed for a listener.
type Profile struct {
	EnergyValenceColor aura.RGBColor // Disc center color
	KeyColor           aura.RGBColor // Disc rim and background color
	ValenceAdjective   string
	KeyAdjective       string
	Radar              aura.NormalizedFeatures
	Stars              map[aura.Axis]string
	Image              *image.RGBA
	TrackCount         int
}

// Service builds aura profiles.
type Service struct {
	opts   render.Options
	logger zerolog.Logger
}

// New creates a new profile service.
func New(opts render.Options, logger zerolog.Logger) *Service {
	return &Service{opts: opts, logger: logger}
}

// Build computes the colors, adjectives and chart data for tracks and
// renders the aura image. Returns aura.ErrEmptyInput if tracks is empty.
func (s *Service) Build(ctx context.Context, tracks []aura.TrackFeatures) (*Profile, error) {
	if len(tracks) == 0 {
		return nil, aura.ErrEmptyInput
	}

	evColor, err := aura.EnergyValenceColor(tracks)
	if err != nil {
		return nil, fmt.Errorf("energy/valence color: %w", err)
	}
	keyColor, err := aura.KeyColor(tracks)
	if err != nil {
		return nil, fmt.Errorf("key color: %w", err)
	}

	valenceAdj, err := aura.ValenceAdjective(tracks)
	if err != nil {
		return nil, fmt.Errorf("valence adjective: %w", err)
	}
	keyAdj, err := aura.KeyAdjective(tracks)
	if err != nil {
		return nil, fmt.Errorf("key adjective: %w", err)
	}

	radar, err := aura.RadarChartData(tracks)
	if err != nil {
		return nil, fmt.Errorf("radar chart data: %w", err)
	}
	stars, err := aura.StarRatings(tracks)
	if err != nil {
		return nil, fmt.Errorf("star ratings: %w", err)
	}

	start := time.Now()
	img, err := render.Aura(ctx, s.opts, evColor, keyColor)
	if err != nil {
		return nil, fmt.Errorf("rendering aura: %w", err)
	}
	s.logger.Debug().
		Int("tracks", len(tracks)).
		Str("center", evColor.Hex()).
		Str("edge", keyColor.Hex()).
		Dur("elapsed", time.Since(start)).
		Msg("aura rendered")

	return &Profile{
		EnergyValenceColor: evColor,
		KeyColor:           keyColor,
		ValenceAdjective:   valenceAdj,
		KeyAdjective:       keyAdj,
		Radar:              radar,
		Stars:              stars,
		Image:              img,
		TrackCount:         len(tracks),
	}, nil
}

// Save writes the profile image to dir as
// <username>_aura_<timestamp>_<uuid>.png and returns its path.
func (s *Service) Save(p *Profile, dir, username string, now time.Time) (string, error) {
	if p == nil || p.Image == nil {
		return "", ErrNoImage
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	name := fmt.Sprintf("%s_aura_%s_%s.png", sanitizeUsername(username), now.Format(timestampFormat), uuid.New())
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := render.EncodePNG(f, p.Image); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}

	s.logger.Info().Str("path", path).Msg("aura saved")
	return path, nil
}

// sanitizeUsername keeps ASCII letters, digits, '-' and '_' so the name is
// safe to use in a file name.
func sanitizeUsername(username string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, username)

	if clean == "" {
		return defaultUsername
	}
	return clean
}
