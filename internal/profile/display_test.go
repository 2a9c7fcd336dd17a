package profile

import (
	"strings"
	"testing"

	"github.com/justestif/go-spotify-aura/internal/aura"
)

func TestFormatSummary(t *testing.T) {
	makeProfile := func(count int) *Profile {
		return &Profile{
			EnergyValenceColor: aura.RGBColor{R: 103, G: 255, B: 84},
			KeyColor:           aura.RGBColor{R: 247, G: 183, B: 165},
			ValenceAdjective:   "Joyful",
			KeyAdjective:       "Mellow",
			Radar: aura.NormalizedFeatures{
				aura.AxisEnergy:      90,
				aura.AxisPositivity:  90,
				aura.AxisGrooviness:  75,
				aura.AxisNaturalness: 10,
				aura.AxisIntensity:   125,
			},
			Stars: map[aura.Axis]string{
				aura.AxisEnergy:      aura.Stars(90),
				aura.AxisPositivity:  aura.Stars(90),
				aura.AxisGrooviness:  aura.Stars(75),
				aura.AxisNaturalness: aura.Stars(10),
				aura.AxisIntensity:   aura.Stars(125),
			},
			TrackCount: count,
		}
	}

	tests := []struct {
		name           string
		profile        *Profile
		username       string
		wantContains   []string
		wantNotContain []string
	}{
		{
			name:     "named listener",
			profile:  makeProfile(3),
			username: "alice",
			wantContains: []string{
				"alice's aura from 3 tracks: Joyful & Mellow",
				"Mood color: rgb(103, 255, 84) #67ff54",
				"Key color:  rgba(247, 183, 165, 1) #f7b7a5",
				"Energy        90.0  ✦✦✦✦",
				"Intensity    125.0  ✦✦✦✦✦✦",
			},
		},
		{
			name:     "anonymous listener with one track",
			profile:  makeProfile(1),
			username: "",
			wantContains: []string{
				"listener's aura from 1 track:",
			},
			wantNotContain: []string{
				"1 tracks",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSummary(tt.profile, tt.username)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("FormatSummary() missing expected content %q\nGot:\n%s", want, got)
				}
			}
			for _, notWant := range tt.wantNotContain {
				if strings.Contains(got, notWant) {
					t.Errorf("FormatSummary() contains unexpected content %q\nGot:\n%s", notWant, got)
				}
			}
		})
	}
}

func TestFormatSummaryAxisOrder(t *testing.T) {
	p := &Profile{Radar: aura.NormalizedFeatures{}, Stars: map[aura.Axis]string{}, TrackCount: 2}
	got := FormatSummary(p, "bob")

	last := -1
	for _, axis := range aura.Axes {
		i := strings.Index(got, string(axis))
		if i <= last {
			t.Errorf("axis %s at offset %d, want after %d\nGot:\n%s", axis, i, last, got)
		}
		last = i
	}
}
