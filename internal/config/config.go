// Package config loads aura rendering configuration from a YAML file with
// environment variable overrides.
package config

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/justestif/go-spotify-aura/internal/render"
)

// ErrInvalidConfig is returned when a loaded configuration cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

type contextKey string

const configKey contextKey = "config"

// Environment variables that override file settings.
const (
	EnvOutputDir = "AURA_OUTPUT_DIR"
	EnvGamma     = "AURA_DISC_GAMMA"
	EnvLighten   = "AURA_BACKGROUND_LIGHTEN"
)

// Config holds all application configuration.
type Config struct {
	// Directory rendered auras are written to
	OutputDir string `yaml:"output_dir"`

	Render RenderConfig `yaml:"render"`
}

// RenderConfig holds image rendering settings.
type RenderConfig struct {
	Disc       Size    `yaml:"disc"`
	Gamma      float64 `yaml:"gamma"`
	Background Size    `yaml:"background"`
	Lighten    float64 `yaml:"lighten"`
	Target     Size    `yaml:"target"`
}

// Size is a width and height in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func (s Size) point() image.Point {
	return image.Pt(s.Width, s.Height)
}

func sizeOf(p image.Point) Size {
	return Size{Width: p.X, Height: p.Y}
}

// Options converts the settings to render options.
func (r RenderConfig) Options() render.Options {
	return render.Options{
		DiscSize:       r.Disc.point(),
		Gamma:          r.Gamma,
		BackgroundSize: r.Background.point(),
		Lighten:        r.Lighten,
		TargetDiscSize: r.Target.point(),
	}
}

// Load reads configuration from path, or from the first config file found
// in the default locations when path is empty. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the default configuration.
func Default() *Config {
	opts := render.DefaultOptions()
	return &Config{
		OutputDir: ".",
		Render: RenderConfig{
			Disc:       sizeOf(opts.DiscSize),
			Gamma:      opts.Gamma,
			Background: sizeOf(opts.BackgroundSize),
			Lighten:    opts.Lighten,
			Target:     sizeOf(opts.TargetDiscSize),
		},
	}
}

// Validate reports whether the configuration can render an aura.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalidConfig)
	}
	if err := c.Render.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if err := envFloat(EnvGamma, &c.Render.Gamma); err != nil {
		return err
	}
	return envFloat(EnvLighten, &c.Render.Lighten)
}

// envFloat overwrites dst with the value of key when it is set.
func envFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, key, v)
	}
	*dst = f
	return nil
}

func findConfigFile() string {
	candidates := []string{
		"./aura.yaml",
		"./aura.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".spotify-aura", "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// WithConfig stores cfg in ctx.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext returns the config stored in ctx, or the defaults.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	return Default()
}
