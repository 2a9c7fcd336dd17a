package aura

// valenceBin labels a closed valence range.
type valenceBin struct {
	lower, upper float64
	label        string
}

// valenceBins are checked in order. Bounds are inclusive on both ends, so
// a value on a shared boundary takes the lower bin's label.
var valenceBins = []valenceBin{
	{0.00, 0.10, "Sorrowful"},
	{0.10, 0.20, "Gloomy"},
	{0.20, 0.30, "Melancholic"},
	{0.30, 0.40, "Somber"},
	{0.40, 0.50, "Wistful"},
	{0.50, 0.60, "Neutral"},
	{0.60, 0.70, "Content"},
	{0.70, 0.80, "Cheerful"},
	{0.80, 0.90, "Joyful"},
	{0.90, 1.00, "Ecstatic"},
}

const unknownValenceAdjective = "Mysterious"

// keyAdjectives maps pitch classes -1..11 to adjectives, indexed by key+1.
var keyAdjectives = [13]string{
	"Varied",
	"Pure",
	"Introspective",
	"Lively",
	"Majestic",
	"Vibrant",
	"Soulful",
	"Pensive",
	"Mellow",
	"Sentimental",
	"Spirited",
	"Dramatic",
	"Bold",
}

const unknownKeyAdjective = "Varied"

// ValenceAdjective describes the median valence of tracks.
func ValenceAdjective(tracks []TrackFeatures) (string, error) {
	valence, err := roundedMedian(tracks, func(t TrackFeatures) float64 { return t.Valence })
	if err != nil {
		return "", err
	}
	return ValenceCategory(valence), nil
}

// ValenceCategory returns the adjective for a valence value. Values outside
// 0..1 are "Mysterious".
func ValenceCategory(valence float64) string {
	for _, bin := range valenceBins {
		if bin.lower <= valence && valence <= bin.upper {
			return bin.label
		}
	}
	return unknownValenceAdjective
}

// KeyAdjective describes the most common key across tracks.
func KeyAdjective(tracks []TrackFeatures) (string, error) {
	key, err := keyMode(tracks)
	if err != nil {
		return "", err
	}
	return KeyCategory(key), nil
}

// KeyCategory returns the adjective for a pitch class.
func KeyCategory(key int) string {
	if key < -1 || key > 11 {
		return unknownKeyAdjective
	}
	return keyAdjectives[key+1]
}
