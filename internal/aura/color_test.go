package aura

import (
	"errors"
	"testing"
)

func tracksWith(energies, valences []float64) []TrackFeatures {
	tracks := make([]TrackFeatures, len(energies))
	for i := range energies {
		tracks[i] = TrackFeatures{Energy: energies[i], Valence: valences[i]}
	}
	return tracks
}

func TestQuadrantColor(t *testing.T) {
	tests := []struct {
		name    string
		energy  float64
		valence float64
		want    RGBColor
	}{
		{"low energy high valence is blue", 0.2, 0.8, RGBColor{81, 81, 255}},
		{"high energy high valence is green", 0.9, 0.9, RGBColor{103, 255, 84}},
		{"low energy low valence is purple", 0.2, 0.2, RGBColor{186, 73, 184}},
		{"high energy low valence is red", 0.8, 0.2, RGBColor{255, 81, 81}},
		{"center is base saturation", 0.5, 0.5, RGBColor{30, 30, 30}},
		{"energy boundary is base saturation", 0.5, 0.9, RGBColor{30, 30, 30}},
		{"valence boundary is base saturation", 0.1, 0.5, RGBColor{30, 30, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuadrantColor(tt.energy, tt.valence)
			if got != tt.want {
				t.Errorf("QuadrantColor(%v, %v) = %v, want %v", tt.energy, tt.valence, got, tt.want)
			}
		})
	}
}

func TestEnergyValenceColorAllOnCenter(t *testing.T) {
	tracks := tracksWith([]float64{0.5, 0.5, 0.5}, []float64{0.5, 0.5, 0.5})

	got, err := EnergyValenceColor(tracks)
	if err != nil {
		t.Fatalf("EnergyValenceColor() error = %v", err)
	}
	if want := (RGBColor{30, 30, 30}); got != want {
		t.Errorf("EnergyValenceColor() = %v, want %v", got, want)
	}
}

func TestEnergyValenceColorNearestQuadrant(t *testing.T) {
	tracks := tracksWith([]float64{0.85, 0.9, 0.95}, []float64{0.95, 0.9, 0.85})

	got, err := EnergyValenceColor(tracks)
	if err != nil {
		t.Fatalf("EnergyValenceColor() error = %v", err)
	}

	distance := func(a, b RGBColor) int {
		abs := func(v int) int {
			if v < 0 {
				return -v
			}
			return v
		}
		return abs(int(a.R)-int(b.R)) + abs(int(a.G)-int(b.G)) + abs(int(a.B)-int(b.B))
	}

	green := quadrants[1].color
	for _, q := range quadrants {
		if q.name == "Q2" {
			continue
		}
		if distance(got, green) >= distance(got, q.color) {
			t.Errorf("EnergyValenceColor() = %v is not closer to %v than to %s %v", got, green, q.name, q.color)
		}
	}
}

func TestEnergyValenceColorOrderIndependent(t *testing.T) {
	energies := []float64{0.12, 0.33, 0.41, 0.27}
	valences := []float64{0.21, 0.08, 0.36, 0.44}

	want, err := EnergyValenceColor(tracksWith(energies, valences))
	if err != nil {
		t.Fatalf("EnergyValenceColor() error = %v", err)
	}

	permutations := [][]int{
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}
	for _, perm := range permutations {
		e := make([]float64, len(perm))
		v := make([]float64, len(perm))
		for i, p := range perm {
			e[i], v[i] = energies[p], valences[p]
		}
		got, err := EnergyValenceColor(tracksWith(e, v))
		if err != nil {
			t.Fatalf("EnergyValenceColor() error = %v", err)
		}
		if got != want {
			t.Errorf("EnergyValenceColor(perm %v) = %v, want %v", perm, got, want)
		}
	}
}

func TestEnergyValenceColorRoundsMedians(t *testing.T) {
	tests := []struct {
		name     string
		energies []float64
		want     RGBColor
	}{
		// 0.502 rounds onto the boundary, so no quadrant contributes.
		{"rounds onto boundary", []float64{0.502}, RGBColor{30, 30, 30}},
		// The mean of 0.49 and 0.50 is stored just below 0.495.
		{"even median below half", []float64{0.49, 0.50}, RGBColor{81, 81, 255}},
		{"half hundredth above boundary", []float64{0.505}, RGBColor{103, 255, 84}},
		{"half hundredth below boundary", []float64{0.495}, RGBColor{81, 81, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valences := make([]float64, len(tt.energies))
			for i := range valences {
				valences[i] = 0.9
			}

			got, err := EnergyValenceColor(tracksWith(tt.energies, valences))
			if err != nil {
				t.Fatalf("EnergyValenceColor() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("EnergyValenceColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyColorFor(t *testing.T) {
	tests := []struct {
		key  int
		want RGBColor
	}{
		{-1, RGBColor{255, 255, 255}},
		{0, RGBColor{32, 178, 170}},
		{1, RGBColor{100, 253, 207}},
		{2, RGBColor{159, 230, 231}},
		{3, RGBColor{100, 206, 252}},
		{4, RGBColor{69, 156, 236}},
		{5, RGBColor{192, 136, 230}},
		{6, RGBColor{253, 132, 144}},
		{7, RGBColor{247, 183, 165}},
		{8, RGBColor{245, 199, 126}},
		{9, RGBColor{255, 208, 87}},
		{10, RGBColor{252, 240, 136}},
		{11, RGBColor{205, 249, 138}},
		{12, RGBColor{255, 255, 255}},
		{-2, RGBColor{255, 255, 255}},
	}

	for _, tt := range tests {
		if got := KeyColorFor(tt.key); got != tt.want {
			t.Errorf("KeyColorFor(%d) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestKeyColor(t *testing.T) {
	tracks := []TrackFeatures{{Key: 4}, {Key: 9}, {Key: 9}}

	got, err := KeyColor(tracks)
	if err != nil {
		t.Fatalf("KeyColor() error = %v", err)
	}
	if want := KeyColorFor(9); got != want {
		t.Errorf("KeyColor() = %v, want %v", got, want)
	}

	if _, err := KeyColor(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("KeyColor(nil) error = %v, want %v", err, ErrEmptyInput)
	}
}

func TestRGBColorFormatting(t *testing.T) {
	c := RGBColor{R: 32, G: 178, B: 170}

	if got, want := c.CSS(), "rgb(32, 178, 170)"; got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
	if got, want := c.CSSA(1), "rgba(32, 178, 170, 1)"; got != want {
		t.Errorf("CSSA(1) = %q, want %q", got, want)
	}
	if got, want := c.Hex(), "#20b2aa"; got != want {
		t.Errorf("Hex() = %q, want %q", got, want)
	}
	if got := c.Opaque(); got.A != 255 || got.R != 32 {
		t.Errorf("RGBA() = %v, want opaque with R=32", got)
	}
}
