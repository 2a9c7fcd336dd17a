package profile

import (
	"fmt"
	"strings"

	"github.com/justestif/go-spotify-aura/internal/aura"
)

// FormatSummary returns a human-readable summary of a profile: the aura's
// adjectives and colors followed by one line per radar axis.
func FormatSummary(p *Profile, username string) string {
	var sb strings.Builder

	name := username
	if name == "" {
		name = defaultUsername
	}

	trackWord := "track"
	if p.TrackCount != 1 {
		trackWord = "tracks"
	}

	// Header
	sb.WriteString(fmt.Sprintf("%s's aura from %d %s: %s & %s\n",
		name, p.TrackCount, trackWord, p.ValenceAdjective, p.KeyAdjective))
	sb.WriteString(fmt.Sprintf("  Mood color: %s %s\n", p.EnergyValenceColor.CSS(), p.EnergyValenceColor.Hex()))
	sb.WriteString(fmt.Sprintf("  Key color:  %s %s\n", p.KeyColor.CSSA(1), p.KeyColor.Hex()))
	sb.WriteString("\n")

	// Axes in display order
	for _, axis := range aura.Axes {
		sb.WriteString(fmt.Sprintf("  %-12s %5.1f  %s\n", axis, p.Radar[axis], p.Stars[axis]))
	}

	return sb.String()
}
